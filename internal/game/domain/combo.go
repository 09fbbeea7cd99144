package domain

import "sort"

// Group identifies a trump group: either "the trump group" as a whole,
// or one specific non-trump suit. Two cards are in the same group iff
// they would be compared directly under follow-suit rules.
type Group struct {
	IsTrump bool `json:"is_trump"`
	Suit    Suit `json:"suit,omitempty"`
}

// Equal reports whether two groups are the same trump group / suit.
func (g Group) Equal(other Group) bool {
	if g.IsTrump != other.IsTrump {
		return false
	}
	return g.IsTrump || g.Suit == other.Suit
}

// GroupOf buckets a card into its trump group per spec §4.2: trump
// cards (jokers, trump rank, trump suit) all share the trump group;
// everything else belongs to its own suit's group.
func GroupOf(c Card, trump TrumpInfo) Group {
	if IsTrump(c, trump) {
		return Group{IsTrump: true}
	}
	return Group{IsTrump: false, Suit: c.Suit}
}

// ComboType names the structural shape of a playable card group.
type ComboType int

const (
	ComboSingle ComboType = iota
	ComboPair
	ComboTractor
)

func (t ComboType) String() string {
	switch t {
	case ComboSingle:
		return "Single"
	case ComboPair:
		return "Pair"
	case ComboTractor:
		return "Tractor"
	default:
		return "Unknown"
	}
}

// Combo is one playable grouping of cards drawn from a single hand.
type Combo struct {
	Type  ComboType `json:"type"`
	Cards []Card    `json:"cards"`
	Group Group     `json:"group"`
}

// Length returns the number of cards in the combo.
func (c Combo) Length() int { return len(c.Cards) }

// PointValue sums the scoring value of every card in the combo.
func (c Combo) PointValue() int {
	total := 0
	for _, card := range c.Cards {
		total += card.PointValue()
	}
	return total
}

// faceKey identifies cards that are equal-in-play (can pair together).
type faceKey struct {
	joker bool
	kind  JokerKind
	suit  Suit
	rank  Rank
}

func keyOf(c Card) faceKey {
	if c.IsJoker {
		return faceKey{joker: true, kind: c.Joker}
	}
	return faceKey{suit: c.Suit, rank: c.Rank}
}

// tractorSlot returns the adjacency position of a card within its
// trump group for tractor-building purposes, and whether the card is
// eligible to participate in a tractor at all. Off-suit trump-rank
// cards and jokers-as-singles have no ordinary adjacency and (per the
// off-suit trump rank case) are excluded from tractor formation
// entirely, matching real Shengji play.
func tractorSlot(c Card, trump TrumpInfo) (slot int, eligible bool) {
	g := GroupOf(c, trump)
	if !g.IsTrump {
		return int(c.Rank), true
	}
	if c.IsJoker {
		if c.Joker == BigJoker {
			return int(Ace) + 3, true
		}
		return int(Ace) + 2, true
	}
	if c.Rank == trump.Rank {
		if trump.IsTrumpSuit(c.Suit) {
			return int(Ace) + 1, true
		}
		return 0, false // off-suit trump rank: never tractor-eligible
	}
	// trump-suit non-rank card: natural rank order, trump rank's slot
	// already reserved above Ace so consecutiveness breaks correctly
	// around it.
	return int(c.Rank), true
}

// IdentifyCombos enumerates every single, pair, and tractor available
// in hand under the given trump definition (spec §4.2).
func IdentifyCombos(hand []Card, trump TrumpInfo) []Combo {
	combos := make([]Combo, 0, len(hand))

	// Singles: every card.
	for _, c := range hand {
		combos = append(combos, Combo{Type: ComboSingle, Cards: []Card{c}, Group: GroupOf(c, trump)})
	}

	// Bucket cards by trump group for pair/tractor enumeration.
	buckets := map[Group][]Card{}
	for _, c := range hand {
		g := GroupOf(c, trump)
		buckets[g] = append(buckets[g], c)
	}

	for g, cards := range buckets {
		classes := map[faceKey][]Card{}
		for _, c := range cards {
			k := keyOf(c)
			classes[k] = append(classes[k], c)
		}

		// Pairs: every 2-card combination within an equality class.
		for _, members := range classes {
			for i := 0; i < len(members); i++ {
				for j := i + 1; j < len(members); j++ {
					combos = append(combos, Combo{
						Type:  ComboPair,
						Cards: []Card{members[i], members[j]},
						Group: g,
					})
				}
			}
		}

		combos = append(combos, tractorsInBucket(classes, g, trump)...)
	}

	return combos
}

// tractorsInBucket finds every maximal run of slot-consecutive pairs
// in one trump-group bucket and emits every sub-tractor of length >= 4
// (i.e. >= 2 pairs), with the leading pair varying, per spec §4.2.
func tractorsInBucket(classes map[faceKey][]Card, g Group, trump TrumpInfo) []Combo {
	type slotPair struct {
		slot int
		pair []Card
	}
	var slotPairs []slotPair
	for _, members := range classes {
		if len(members) < 2 {
			continue
		}
		slot, eligible := tractorSlot(members[0], trump)
		if !eligible {
			continue
		}
		slotPairs = append(slotPairs, slotPair{slot: slot, pair: []Card{members[0], members[1]}})
	}
	if len(slotPairs) < 2 {
		return nil
	}
	sort.Slice(slotPairs, func(i, j int) bool { return slotPairs[i].slot < slotPairs[j].slot })

	var combos []Combo
	// Partition into maximal runs of consecutive slots.
	runStart := 0
	for i := 1; i <= len(slotPairs); i++ {
		if i == len(slotPairs) || slotPairs[i].slot != slotPairs[i-1].slot+1 {
			run := slotPairs[runStart:i]
			if len(run) >= 2 {
				for start := 0; start < len(run); start++ {
					for end := start + 1; end < len(run); end++ {
						cards := make([]Card, 0, (end-start+1)*2)
						for k := start; k <= end; k++ {
							cards = append(cards, run[k].pair...)
						}
						combos = append(combos, Combo{Type: ComboTractor, Cards: cards, Group: g})
					}
				}
			}
			runStart = i
		}
	}
	return combos
}
