package domain

import "testing"

func TestPlayer_HasCards_RequiresDistinctPhysicalCards(t *testing.T) {
	p := Player{Hand: []Card{NewCard(Hearts, Four, 0)}}
	pair := []Card{NewCard(Hearts, Four, 0), NewCard(Hearts, Four, 1)}
	if p.HasCards(pair) {
		t.Fatalf("single physical card should not satisfy a pair request")
	}
}

func TestPlayer_HasCards_MatchesWhenBothPresent(t *testing.T) {
	p := Player{Hand: []Card{NewCard(Hearts, Four, 0), NewCard(Hearts, Four, 1)}}
	pair := []Card{NewCard(Hearts, Four, 0), NewCard(Hearts, Four, 1)}
	if !p.HasCards(pair) {
		t.Fatalf("expected pair to be satisfied")
	}
}

func TestPlayer_RemoveCards_LeavesHandUnaffectedOnOriginal(t *testing.T) {
	original := Player{Hand: []Card{NewCard(Hearts, Four, 0), NewCard(Clubs, King, 0)}}
	next := original.RemoveCards([]Card{NewCard(Hearts, Four, 0)})
	if len(original.Hand) != 2 {
		t.Fatalf("original hand must be unchanged, got %d cards", len(original.Hand))
	}
	if len(next.Hand) != 1 {
		t.Fatalf("expected 1 card remaining, got %d", len(next.Hand))
	}
}

func TestPlayer_SuitCount_CountsTrumpGroupTogether(t *testing.T) {
	trump := trumpSuit(Spades)
	p := Player{Hand: []Card{
		NewCard(Spades, Four, 0),
		NewJoker(BigJoker, 0),
		NewCard(Spades, Two, 1), // trump rank, off trump suit would differ; here trump rank is Two
		NewCard(Hearts, King, 0),
	}}
	if got := p.SuitCount(Group{IsTrump: true}, trump); got != 3 {
		t.Fatalf("expected 3 trump cards (spade, big joker, trump rank), got %d", got)
	}
}
