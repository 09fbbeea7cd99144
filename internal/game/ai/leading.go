package ai

import (
	"sort"

	"shengji-tractor/internal/game/domain"
)

// SelectLead picks the combo a computer seat plays when it is first to
// act in a trick, per spec §4.9. It prefers the longest, safest combo
// available: a maximal non-trump tractor (guaranteed to draw out
// whatever the table holds without risking a trump cut), then a
// non-trump pair, then falls back to a lone high card - spending trump
// only when the hand is trump-heavy enough that holding onto singles
// would waste its length advantage. Grounded on
// BrandonDedolph-euchre's selectLead (lead the strongest safe suit
// before ever leading trump).
func SelectLead(hand []domain.Card, trump domain.TrumpInfo) []domain.Card {
	combos := domain.IdentifyCombos(hand, trump)
	nonTrump := filterCombos(combos, func(c domain.Combo) bool { return !c.Group.IsTrump })
	trumpCombos := filterCombos(combos, func(c domain.Combo) bool { return c.Group.IsTrump })

	if best, ok := longestOf(nonTrump, domain.ComboTractor); ok {
		return best.Cards
	}

	trumpHeavy := trumpCardCount(hand, trump) > len(hand)/2
	if trumpHeavy {
		if best, ok := longestOf(trumpCombos, domain.ComboTractor); ok {
			return best.Cards
		}
	}

	if best, ok := longestOf(nonTrump, domain.ComboPair); ok {
		return best.Cards
	}
	if trumpHeavy {
		if best, ok := longestOf(trumpCombos, domain.ComboPair); ok {
			return best.Cards
		}
	}

	pool := nonTrump
	if len(pool) == 0 {
		pool = trumpCombos
	}
	singles := filterCombos(pool, func(c domain.Combo) bool { return c.Type == domain.ComboSingle })
	if len(singles) == 0 {
		// Only reached with an empty hand.
		return hand
	}
	sort.Slice(singles, func(i, j int) bool {
		return domain.StrategicValue(singles[i].Cards[0], trump, domain.ValueStrategic) >
			domain.StrategicValue(singles[j].Cards[0], trump, domain.ValueStrategic)
	})
	return singles[0].Cards
}

func trumpCardCount(hand []domain.Card, trump domain.TrumpInfo) int {
	n := 0
	for _, c := range hand {
		if domain.IsTrump(c, trump) {
			n++
		}
	}
	return n
}

func filterCombos(combos []domain.Combo, keep func(domain.Combo) bool) []domain.Combo {
	var out []domain.Combo
	for _, c := range combos {
		if keep(c) {
			out = append(out, c)
		}
	}
	return out
}

// longestOf returns the longest combo of the given type, breaking ties
// by the combo's total point value, higher first.
func longestOf(combos []domain.Combo, t domain.ComboType) (domain.Combo, bool) {
	matches := filterCombos(combos, func(c domain.Combo) bool { return c.Type == t })
	if len(matches) == 0 {
		return domain.Combo{}, false
	}
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Length() != matches[j].Length() {
			return matches[i].Length() > matches[j].Length()
		}
		return comboValue(matches[i]) > comboValue(matches[j])
	})
	return matches[0], true
}

func comboValue(c domain.Combo) int {
	total := 0
	for _, card := range c.Cards {
		total += card.PointValue()
	}
	return total
}
