// Package ai implements the rule-based decision pipeline a computer
// seat uses to pick its play: first classify how well the hand can
// answer the lead, then hand off to the matching scenario handler.
package ai

import "shengji-tractor/internal/game/domain"

// Scenario classifies how a hand can respond to a given lead, per
// spec §4.7.
type Scenario int

const (
	// ScenarioValidCombos: enough cards in the lead's group, and they
	// can be arranged into the exact shape the lead requires.
	ScenarioValidCombos Scenario = iota
	// ScenarioEnoughRemaining: enough cards in the lead's group, but
	// they can't be arranged into the lead's exact shape (e.g. no
	// tractor available, so singles/pairs must be broken up).
	ScenarioEnoughRemaining
	// ScenarioInsufficient: some but not enough cards in the group;
	// every one of them must be played, padded out with discards.
	ScenarioInsufficient
	// ScenarioVoid: no cards at all in the lead's group.
	ScenarioVoid
)

func (s Scenario) String() string {
	switch s {
	case ScenarioValidCombos:
		return "ValidCombos"
	case ScenarioEnoughRemaining:
		return "EnoughRemaining"
	case ScenarioInsufficient:
		return "Insufficient"
	case ScenarioVoid:
		return "Void"
	default:
		return "Unknown"
	}
}

// AnalyzeAvailability classifies hand's ability to follow lead.
func AnalyzeAvailability(hand, lead []domain.Card, trump domain.TrumpInfo) Scenario {
	leadGroup := domain.GroupOf(lead[0], trump)
	available := cardsInGroup(hand, leadGroup, trump)

	if len(available) == 0 {
		return ScenarioVoid
	}
	if len(available) < len(lead) {
		return ScenarioInsufficient
	}
	if canMatchShape(hand, leadGroup, domain.Shape(lead, trump), trump) {
		return ScenarioValidCombos
	}
	return ScenarioEnoughRemaining
}

// canMatchShape reports whether hand contains a combo in group at
// least as long as the lead's largest piece, a necessary condition
// for being able to answer a tractor/pair lead in matching shape. It is
// a practical approximation of the full shape-matching search: a hand
// that holds a combo at least as long as the lead's biggest piece can
// assemble a matching reply; the engine's IsValidPlay layer is the
// final authority on legality.
func canMatchShape(hand []domain.Card, group domain.Group, leadShape []int, trump domain.TrumpInfo) bool {
	if len(leadShape) == 0 {
		return false
	}
	want := leadShape[0]
	for _, combo := range domain.IdentifyCombos(hand, trump) {
		if combo.Group.Equal(group) && combo.Length() >= want {
			return true
		}
	}
	return false
}

func cardsInGroup(hand []domain.Card, group domain.Group, trump domain.TrumpInfo) []domain.Card {
	var out []domain.Card
	for _, c := range hand {
		if domain.GroupOf(c, trump).Equal(group) {
			out = append(out, c)
		}
	}
	return out
}
