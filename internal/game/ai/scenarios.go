package ai

import (
	"sort"

	"shengji-tractor/internal/game/domain"
)

// FollowContext carries everything a scenario handler needs to pick a
// follow play.
type FollowContext struct {
	Hand             []domain.Card
	Trick            domain.Trick // plays so far this trick; Plays[0] is the lead
	Trump            domain.TrumpInfo
	PartnerIsWinning bool

	// IsLastToAct reports whether no one plays after this seat in the
	// current trick.
	IsLastToAct bool
	// RemainingOpponentsVoidOfTrump reports whether every opponent seat
	// still to act this trick has already shown void of trump.
	RemainingOpponentsVoidOfTrump bool
	// TrickPoints is the point value already committed to the trick.
	TrickPoints int
}

// SelectFollow picks the cards to play in response to a lead, routing
// through the four scenario handlers of spec §4.8 - contribute when a
// partner is already winning, otherwise try to beat as cheaply as
// possible, falling back to the lowest-value discard available.
// Grounded on BrandonDedolph-euchre's playFollowSuit/playTrump split:
// "is a partner already in control" decides contribute vs. compete,
// and losing plays always shed the least valuable cards.
func SelectFollow(ctx FollowContext) []domain.Card {
	lead := ctx.Trick.Plays[0].Cards
	scenario := AnalyzeAvailability(ctx.Hand, lead, ctx.Trump)

	switch scenario {
	case ScenarioVoid:
		if cards, ok := trumpIn(ctx); ok {
			return cards
		}
		return lowestValue(ctx.Hand, len(lead), ctx.Trump)
	case ScenarioInsufficient:
		if ctx.PartnerIsWinning {
			return contribute(ctx.Hand, lead, ctx.Trump)
		}
		return padWithGroup(ctx.Hand, lead, ctx.Trump)
	case ScenarioEnoughRemaining:
		if ctx.PartnerIsWinning {
			return contribute(ctx.Hand, lead, ctx.Trump)
		}
		return lowestFromGroup(ctx.Hand, lead, ctx.Trump)
	default: // ScenarioValidCombos
		if ctx.PartnerIsWinning {
			return contribute(ctx.Hand, lead, ctx.Trump)
		}
		if beat, ok := lowestBeating(ctx); ok {
			return beat
		}
		return lowestFromGroup(ctx.Hand, lead, ctx.Trump)
	}
}

// trumpIn looks for a trump combo matching the lead's shape and length
// that beats the trick's current best play, for a seat that is void of
// the led group entirely (spec §4.8). Trumping in only when void is
// safe to attempt once it can't be overtrumped behind us: either this
// seat is last to act, or every opponent yet to act has already shown
// void of trump - and absent being last to act, it's only worth the
// trump spent when the trick is carrying points.
func trumpIn(ctx FollowContext) ([]domain.Card, bool) {
	if !ctx.IsLastToAct && !ctx.RemainingOpponentsVoidOfTrump {
		return nil, false
	}
	if !ctx.IsLastToAct && ctx.TrickPoints == 0 {
		return nil, false
	}
	lead := ctx.Trick.Plays[0].Cards
	winnerIdx, err := domain.ResolveTrick(ctx.Trick, ctx.Trump)
	if err != nil {
		return nil, false
	}
	best := ctx.Trick.Plays[winnerIdx].Cards
	trumpGroup := domain.Group{IsTrump: true}
	leadShape := domain.Shape(lead, ctx.Trump)

	var candidates [][]domain.Card
	for _, combo := range domain.IdentifyCombos(ctx.Hand, ctx.Trump) {
		if !combo.Group.Equal(trumpGroup) || combo.Length() != len(lead) {
			continue
		}
		if !sameShape(domain.Shape(combo.Cards, ctx.Trump), leadShape) {
			continue
		}
		if domain.CompareCards(highestCard(combo.Cards, ctx.Trump), highestCard(best, ctx.Trump), ctx.Trump) > 0 {
			candidates = append(candidates, combo.Cards)
		}
	}
	if len(candidates) == 0 {
		return nil, false
	}
	sort.Slice(candidates, func(i, j int) bool {
		return domain.CompareCards(highestCard(candidates[i], ctx.Trump), highestCard(candidates[j], ctx.Trump), ctx.Trump) < 0
	})
	return candidates[0], true
}

// lowestBeating finds the cheapest combo from the lead's group that
// outranks the current best play of the trick, if any exists.
func lowestBeating(ctx FollowContext) ([]domain.Card, bool) {
	lead := ctx.Trick.Plays[0].Cards
	winnerIdx, err := domain.ResolveTrick(ctx.Trick, ctx.Trump)
	if err != nil {
		return nil, false
	}
	best := ctx.Trick.Plays[winnerIdx].Cards
	leadGroup := domain.GroupOf(lead[0], ctx.Trump)
	leadShape := domain.Shape(lead, ctx.Trump)

	var candidates [][]domain.Card
	for _, combo := range domain.IdentifyCombos(ctx.Hand, ctx.Trump) {
		if !combo.Group.Equal(leadGroup) || combo.Length() != len(lead) {
			continue
		}
		if !sameShape(domain.Shape(combo.Cards, ctx.Trump), leadShape) {
			continue
		}
		if domain.CompareCards(highestCard(combo.Cards, ctx.Trump), highestCard(best, ctx.Trump), ctx.Trump) > 0 {
			candidates = append(candidates, combo.Cards)
		}
	}
	if len(candidates) == 0 {
		return nil, false
	}
	sort.Slice(candidates, func(i, j int) bool {
		return domain.CompareCards(highestCard(candidates[i], ctx.Trump), highestCard(candidates[j], ctx.Trump), ctx.Trump) < 0
	})
	return candidates[0], true
}

func sameShape(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// contribute feeds point cards to a partner already winning the trick,
// still preserving any intact pair the lead's shape calls for. When
// there aren't even enough cards in the led group to pad with, it
// still pads with the highest-value cards available rather than the
// cheapest, since every card played this trick goes to the partner.
func contribute(hand, lead []domain.Card, trump domain.TrumpInfo) []domain.Card {
	group := domain.GroupOf(lead[0], trump)
	pool := cardsInGroup(hand, group, trump)
	if len(pool) < len(lead) {
		return padGroup(hand, lead, trump, true)
	}
	more := func(a, b domain.Card) bool {
		return domain.StrategicValue(a, trump, domain.ValueContribute) >
			domain.StrategicValue(b, trump, domain.ValueContribute)
	}
	return selectPreservingPairs(pool, len(lead), pairsNeededFor(lead, trump), more)
}

// lowestFromGroup plays the cheapest cards available in the lead's
// group when the hand can't match its exact shape, still preserving
// any intact pair the lead's shape calls for rather than splitting one
// up when a cheap single elsewhere in the group would do.
func lowestFromGroup(hand, lead []domain.Card, trump domain.TrumpInfo) []domain.Card {
	group := domain.GroupOf(lead[0], trump)
	pool := cardsInGroup(hand, group, trump)
	less := func(a, b domain.Card) bool {
		return domain.StrategicValue(a, trump, domain.ValueStrategic) <
			domain.StrategicValue(b, trump, domain.ValueStrategic)
	}
	return selectPreservingPairs(pool, len(lead), pairsNeededFor(lead, trump), less)
}

// pairsNeededFor reports how many intact pairs a follow of lead's
// shape must preserve from the led group (spec §4.9's combo-shape
// rule: one pair per paired piece, two per tractor, and so on).
func pairsNeededFor(lead []domain.Card, trump domain.TrumpInfo) int {
	needed := 0
	for _, length := range domain.Shape(lead, trump) {
		if length >= 2 {
			needed += length / 2
		}
	}
	return needed
}

// selectPreservingPairs picks count cards from pool ordered by less,
// first committing up to minPairs intact pairs (themselves ordered by
// less applied to one member of each) and then filling the remainder
// from whatever is left - so a required pair is never split apart in
// favor of a cheaper single elsewhere in the same group.
func selectPreservingPairs(pool []domain.Card, count, minPairs int, less func(a, b domain.Card) bool) []domain.Card {
	pairs, singles := splitPairs(pool)
	sort.Slice(pairs, func(i, j int) bool { return less(pairs[i][0], pairs[j][0]) })

	pairsUsed := minPairs
	if max := count / 2; pairsUsed > max {
		pairsUsed = max
	}
	if pairsUsed > len(pairs) {
		pairsUsed = len(pairs)
	}

	out := make([]domain.Card, 0, count)
	for i := 0; i < pairsUsed; i++ {
		out = append(out, pairs[i][0], pairs[i][1])
	}

	rest := append([]domain.Card(nil), singles...)
	for i := pairsUsed; i < len(pairs); i++ {
		rest = append(rest, pairs[i][0], pairs[i][1])
	}
	sort.Slice(rest, func(i, j int) bool { return less(rest[i], rest[j]) })

	need := count - len(out)
	if need > len(rest) {
		need = len(rest)
	}
	if need > 0 {
		out = append(out, rest[:need]...)
	}
	return out
}

// splitPairs greedily pairs off same-face cards, returning the
// complete pairs found and whatever cards are left unpaired.
func splitPairs(cards []domain.Card) ([][2]domain.Card, []domain.Card) {
	used := make([]bool, len(cards))
	var pairs [][2]domain.Card
	for i := range cards {
		if used[i] {
			continue
		}
		for j := i + 1; j < len(cards); j++ {
			if used[j] {
				continue
			}
			if cards[i].IsSameFace(cards[j]) {
				used[i], used[j] = true, true
				pairs = append(pairs, [2]domain.Card{cards[i], cards[j]})
				break
			}
		}
	}
	var singles []domain.Card
	for i, c := range cards {
		if !used[i] {
			singles = append(singles, c)
		}
	}
	return pairs, singles
}

// padWithGroup plays every held card of the lead's group, topped up
// with the cheapest remaining cards from anywhere else in hand.
func padWithGroup(hand, lead []domain.Card, trump domain.TrumpInfo) []domain.Card {
	return padGroup(hand, lead, trump, false)
}

// padGroup plays every held card of the lead's group, topped up with
// cards from elsewhere in hand. In contribute mode the pad favors the
// highest-value cards (feeding a winning partner); otherwise it favors
// the cheapest (minimizing the loss on a play that can't win).
func padGroup(hand, lead []domain.Card, trump domain.TrumpInfo, contribute bool) []domain.Card {
	group := domain.GroupOf(lead[0], trump)
	pool := cardsInGroup(hand, group, trump)
	out := append([]domain.Card(nil), pool...)
	need := len(lead) - len(out)
	if need <= 0 {
		return out
	}
	rest := difference(hand, pool)
	sort.Slice(rest, func(i, j int) bool {
		if contribute {
			return domain.StrategicValue(rest[i], trump, domain.ValueContribute) >
				domain.StrategicValue(rest[j], trump, domain.ValueContribute)
		}
		return domain.StrategicValue(rest[i], trump, domain.ValueStrategic) <
			domain.StrategicValue(rest[j], trump, domain.ValueStrategic)
	})
	if need > len(rest) {
		need = len(rest)
	}
	return append(out, rest[:need]...)
}

// lowestValue picks the count cheapest cards in hand - used for a free
// discard when void in the lead's group entirely.
func lowestValue(hand []domain.Card, count int, trump domain.TrumpInfo) []domain.Card {
	pool := append([]domain.Card(nil), hand...)
	sort.Slice(pool, func(i, j int) bool {
		return domain.StrategicValue(pool[i], trump, domain.ValueStrategic) <
			domain.StrategicValue(pool[j], trump, domain.ValueStrategic)
	})
	if count > len(pool) {
		count = len(pool)
	}
	return pool[:count]
}

func highestCard(cards []domain.Card, trump domain.TrumpInfo) domain.Card {
	best := cards[0]
	for _, c := range cards[1:] {
		if domain.CompareCards(c, best, trump) > 0 {
			best = c
		}
	}
	return best
}

func difference(all, remove []domain.Card) []domain.Card {
	removed := make([]bool, len(all))
	for _, r := range remove {
		for i, c := range all {
			if !removed[i] && c.IsEqual(r) {
				removed[i] = true
				break
			}
		}
	}
	var out []domain.Card
	for i, c := range all {
		if !removed[i] {
			out = append(out, c)
		}
	}
	return out
}
