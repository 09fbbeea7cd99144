package domain

import "sort"

// TrickPlay is one player's contribution to a trick, in play order.
type TrickPlay struct {
	PlayerID string `json:"player_id"`
	Cards    []Card `json:"cards"`
}

// Trick holds every play made so far in one round of the game, in the
// order they were played. Plays[0] is always the leader.
type Trick struct {
	Plays []TrickPlay `json:"plays"`
}

// PointValue sums the scoring value of every card played to the trick,
// regardless of who wins it.
func (t Trick) PointValue() int {
	total := 0
	for _, p := range t.Plays {
		for _, c := range p.Cards {
			total += c.PointValue()
		}
	}
	return total
}

// LeadGroup returns the trump group established by the leader's play.
func (t Trick) LeadGroup(trump TrumpInfo) (Group, bool) {
	if len(t.Plays) == 0 || len(t.Plays[0].Cards) == 0 {
		return Group{}, false
	}
	return GroupOf(t.Plays[0].Cards[0], trump), true
}

// piece is one structural component (single/pair/tractor) of a
// decomposed play, used only to compare shapes within ResolveTrick.
type piece struct {
	kind  ComboType
	cards []Card
}

// canonicalPieces greedily decomposes an already-played set of cards
// into the largest tractors possible, then leftover pairs, then
// leftover singles. Unlike IdentifyCombos (which enumerates every
// possibility from a whole hand), this picks one canonical shape for a
// single play already committed to the table.
func canonicalPieces(cards []Card, trump TrumpInfo) []piece {
	classes := map[faceKey][]Card{}
	for _, c := range cards {
		k := keyOf(c)
		classes[k] = append(classes[k], c)
	}

	type slotPair struct {
		slot int
		pair []Card
	}
	var pairs []slotPair
	leftoverSingles := []Card{}
	for _, members := range classes {
		for len(members) >= 2 {
			slot, eligible := tractorSlot(members[0], trump)
			if !eligible {
				slot = -1 - len(pairs) // unique non-adjacent slot, still a standalone pair
			}
			pairs = append(pairs, slotPair{slot: slot, pair: []Card{members[0], members[1]}})
			members = members[2:]
		}
		leftoverSingles = append(leftoverSingles, members...)
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].slot < pairs[j].slot })

	var pieces []piece
	used := make([]bool, len(pairs))
	for i := 0; i < len(pairs); i++ {
		if used[i] || pairs[i].slot < 0 {
			continue
		}
		run := []slotPair{pairs[i]}
		used[i] = true
		for j := i + 1; j < len(pairs); j++ {
			if pairs[j].slot == run[len(run)-1].slot+1 {
				run = append(run, pairs[j])
				used[j] = true
			} else if pairs[j].slot > run[len(run)-1].slot+1 {
				break
			}
		}
		if len(run) >= 2 {
			var cs []Card
			for _, sp := range run {
				cs = append(cs, sp.pair...)
			}
			pieces = append(pieces, piece{kind: ComboTractor, cards: cs})
		} else {
			pieces = append(pieces, piece{kind: ComboPair, cards: run[0].pair})
		}
	}
	for i, sp := range pairs {
		if !used[i] && sp.slot < 0 {
			pieces = append(pieces, piece{kind: ComboPair, cards: sp.pair})
		}
	}
	for _, c := range leftoverSingles {
		pieces = append(pieces, piece{kind: ComboSingle, cards: []Card{c}})
	}
	return pieces
}

// shapeSignature is the sorted-descending list of piece lengths that
// defines whether two plays have a matching structural shape.
func shapeSignature(pieces []piece) []int {
	lens := make([]int, len(pieces))
	for i, p := range pieces {
		lens[i] = len(p.cards)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(lens)))
	return lens
}

func sameSignature(a, b []int) bool {
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

// defyingCard returns the highest-value card within a play, used as
// the tiebreak comparator between two matching-shape plays.
func defyingCard(cards []Card, trump TrumpInfo) Card {
	best := cards[0]
	for _, c := range cards[1:] {
		if CompareCards(c, best, trump) > 0 {
			best = c
		}
	}
	return best
}

// Shape returns the sorted-descending piece-length signature of an
// already-selected set of cards (e.g. [4, 2] for a tractor plus a
// pair), the same structural fingerprint ResolveTrick uses to decide
// whether a follow matches a lead. Exported for the AI package's
// suit-availability analysis.
func Shape(cards []Card, trump TrumpInfo) []int {
	return shapeSignature(canonicalPieces(cards, trump))
}

// ResolveTrick determines which player won a completed trick, per spec
// §4.4: only plays in the leader's trump group - or, against a
// non-trump lead, plays made entirely of trump - can win, and only if
// they match the leader's exact combo shape (count and piece
// structure); among those, the play with the highest defining card
// wins. Returns the winning player's index into t.Plays.
func ResolveTrick(t Trick, trump TrumpInfo) (winnerIndex int, err error) {
	if len(t.Plays) == 0 {
		return 0, ErrEmptyTrick
	}
	leadGroup, ok := t.LeadGroup(trump)
	if !ok {
		return 0, ErrEmptyTrick
	}
	leadPieces := canonicalPieces(t.Plays[0].Cards, trump)
	leadSig := shapeSignature(leadPieces)

	winner := 0
	winnerCard := defyingCard(t.Plays[0].Cards, trump)
	for i := 1; i < len(t.Plays); i++ {
		play := t.Plays[i]
		inLeadGroup := allInGroup(play.Cards, leadGroup, trump)
		cutWithTrump := !leadGroup.IsTrump && allInGroup(play.Cards, Group{IsTrump: true}, trump)
		if !inLeadGroup && !cutWithTrump {
			continue
		}
		pieces := canonicalPieces(play.Cards, trump)
		if !sameSignature(shapeSignature(pieces), leadSig) {
			continue
		}
		candidate := defyingCard(play.Cards, trump)
		if CompareCards(candidate, winnerCard, trump) > 0 {
			winner = i
			winnerCard = candidate
		}
	}
	return winner, nil
}

func allInGroup(cards []Card, group Group, trump TrumpInfo) bool {
	for _, c := range cards {
		if !GroupOf(c, trump).Equal(group) {
			return false
		}
	}
	return true
}
