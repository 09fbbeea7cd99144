package domain

import "testing"

func trumpSuit(s Suit) TrumpInfo {
	return TrumpInfo{Rank: Two, Suit: &s}
}

func countByType(combos []Combo, t ComboType) int {
	n := 0
	for _, c := range combos {
		if c.Type == t {
			n++
		}
	}
	return n
}

func hasTractorOfLen(combos []Combo, length int) bool {
	for _, c := range combos {
		if c.Type == ComboTractor && c.Length() == length {
			return true
		}
	}
	return false
}

func TestIdentifyCombos_Singles(t *testing.T) {
	trump := trumpSuit(Spades)
	hand := []Card{
		NewCard(Hearts, Four, 0),
		NewCard(Clubs, King, 0),
	}
	combos := IdentifyCombos(hand, trump)
	if got := countByType(combos, ComboSingle); got != 2 {
		t.Fatalf("expected 2 singles, got %d", got)
	}
}

func TestIdentifyCombos_Pair(t *testing.T) {
	trump := trumpSuit(Spades)
	hand := []Card{
		NewCard(Hearts, Four, 0),
		NewCard(Hearts, Four, 1),
		NewCard(Clubs, King, 0),
	}
	combos := IdentifyCombos(hand, trump)
	if got := countByType(combos, ComboPair); got != 1 {
		t.Fatalf("expected 1 pair, got %d", got)
	}
}

func TestIdentifyCombos_NonTrumpTractor(t *testing.T) {
	trump := trumpSuit(Spades)
	hand := []Card{
		NewCard(Hearts, Four, 0), NewCard(Hearts, Four, 1),
		NewCard(Hearts, Five, 0), NewCard(Hearts, Five, 1),
	}
	combos := IdentifyCombos(hand, trump)
	if !hasTractorOfLen(combos, 4) {
		t.Fatalf("expected a 4-card tractor, got %+v", combos)
	}
}

func TestIdentifyCombos_TrumpRankBreaksTrumpSuitAdjacency(t *testing.T) {
	trump := TrumpInfo{Rank: Five, Suit: ptrSuit(Spades)}
	hand := []Card{
		NewCard(Spades, Four, 0), NewCard(Spades, Four, 1),
		NewCard(Spades, Six, 0), NewCard(Spades, Six, 1),
	}
	combos := IdentifyCombos(hand, trump)
	if hasTractorOfLen(combos, 4) {
		t.Fatalf("4/6 should not form a tractor once 5 is pulled out as trump rank: %+v", combos)
	}
}

func TestIdentifyCombos_TrumpRankInSuitAdjacentToAce(t *testing.T) {
	trump := TrumpInfo{Rank: Five, Suit: ptrSuit(Spades)}
	hand := []Card{
		NewCard(Spades, Ace, 0), NewCard(Spades, Ace, 1),
		NewCard(Spades, Five, 0), NewCard(Spades, Five, 1),
	}
	combos := IdentifyCombos(hand, trump)
	if !hasTractorOfLen(combos, 4) {
		t.Fatalf("trump-rank-in-suit pair should chain after Ace pair: %+v", combos)
	}
}

func TestIdentifyCombos_JokerTractorChain(t *testing.T) {
	trump := TrumpInfo{Rank: Five, Suit: ptrSuit(Spades)}
	hand := []Card{
		NewCard(Spades, Five, 0), NewCard(Spades, Five, 1),
		NewJoker(SmallJoker, 0), NewJoker(SmallJoker, 1),
		NewJoker(BigJoker, 0), NewJoker(BigJoker, 1),
	}
	combos := IdentifyCombos(hand, trump)
	if !hasTractorOfLen(combos, 6) {
		t.Fatalf("trump-rank + small joker + big joker pairs should chain into a 6-card tractor: %+v", combos)
	}
}

func TestIdentifyCombos_OffSuitTrumpRankPairNotTractorEligible(t *testing.T) {
	trump := TrumpInfo{Rank: Five, Suit: ptrSuit(Spades)}
	hand := []Card{
		NewCard(Hearts, Five, 0), NewCard(Hearts, Five, 1),
		NewJoker(SmallJoker, 0), NewJoker(SmallJoker, 1),
	}
	combos := IdentifyCombos(hand, trump)
	if hasTractorOfLen(combos, 4) {
		t.Fatalf("off-suit trump rank pair must never chain into a tractor: %+v", combos)
	}
}

func TestIdentifyCombos_SubTractorsEnumerated(t *testing.T) {
	trump := trumpSuit(Spades)
	hand := []Card{
		NewCard(Hearts, Four, 0), NewCard(Hearts, Four, 1),
		NewCard(Hearts, Five, 0), NewCard(Hearts, Five, 1),
		NewCard(Hearts, Six, 0), NewCard(Hearts, Six, 1),
	}
	combos := IdentifyCombos(hand, trump)
	if !hasTractorOfLen(combos, 4) {
		t.Fatalf("expected a 4-card sub-tractor within the 4-5-6 run")
	}
	if !hasTractorOfLen(combos, 6) {
		t.Fatalf("expected the maximal 6-card tractor")
	}
}

func ptrSuit(s Suit) *Suit { return &s }
