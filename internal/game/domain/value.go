package domain

// ValueMode selects which strategic-value curve to apply to a card.
type ValueMode int

const (
	// ValueBasic is the raw positional strength used for play/beat
	// decisions; it tracks CompareCards tier-for-tier.
	ValueBasic ValueMode = iota
	// ValueStrategic adds a conservation premium so that jokers and
	// trump-rank cards are strongly preferred to keep in hand.
	ValueStrategic
	// ValueContribute additionally inflates point cards (K/10/5) so a
	// player feeding points to a winning partner prefers them.
	ValueContribute
)

// StrategicValue scores a single card under the requested mode. Higher
// is "stronger" (basic) or "more worth keeping" (strategic/contribute).
// The exact constants are design-level knobs; only the inequalities
// documented below are load-bearing.
func StrategicValue(c Card, trump TrumpInfo, mode ValueMode) int {
	base := basicValue(c, trump)
	if mode == ValueBasic {
		return base
	}

	strategic := strategicPremium(c, trump)
	if mode == ValueStrategic {
		return strategic
	}

	return strategic + c.PointValue()*10
}

// basicValue is the positional rank used for beat/outrank comparisons;
// it is monotone with CompareCards's tier ordering.
func basicValue(c Card, trump TrumpInfo) int {
	switch tier(c, trump) {
	case tierBigJoker:
		return 1000
	case tierSmallJoker:
		return 990
	case tierTrumpRankInSuit:
		return 980
	case tierTrumpRankOffSuit:
		return 970
	case tierTrumpSuitPlain:
		return 900 + int(c.Rank)
	default:
		return int(c.Rank)
	}
}

// strategicPremium implements the conservation curve: jokers and
// trump-rank-in-trump-suit exceed 170, trump-suit A/K exceed 110,
// non-trump Ace exceeds 10.
func strategicPremium(c Card, trump TrumpInfo) int {
	switch tier(c, trump) {
	case tierBigJoker:
		return 200
	case tierSmallJoker:
		return 190
	case tierTrumpRankInSuit:
		return 180
	case tierTrumpRankOffSuit:
		return 165
	case tierTrumpSuitPlain:
		return 100 + (int(c.Rank)-2)*2
	default:
		return 2 + (int(c.Rank) - 2)
	}
}
