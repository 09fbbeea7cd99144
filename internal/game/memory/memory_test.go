package memory

import (
	"testing"

	"shengji-tractor/internal/game/domain"
)

func memState() domain.GameState {
	suit := domain.Spades
	return domain.GameState{
		TrumpRank: domain.Two,
		Declarations: domain.TrumpDeclarationState{
			Current: &domain.Declaration{Suit: suit},
		},
		Players: [4]domain.Player{
			{ID: "north"}, {ID: "east"}, {ID: "south"}, {ID: "west"},
		},
	}
}

func TestBuild_MarksVoidWhenFollowerDiscardsOffSuit(t *testing.T) {
	g := memState()
	trump := g.Trump()
	g.CompletedTricks = []domain.Trick{{Plays: []domain.TrickPlay{
		{PlayerID: "north", Cards: []domain.Card{domain.NewCard(domain.Hearts, domain.Nine, 0)}},
		{PlayerID: "east", Cards: []domain.Card{domain.NewCard(domain.Clubs, domain.Three, 0)}},
	}}}
	m := Build(g, trump)
	leadGroup := domain.GroupOf(domain.NewCard(domain.Hearts, domain.Nine, 0), trump)
	if !m.IsVoid(1, leadGroup) {
		t.Fatalf("expected east (seat 1) to be inferred void in Hearts")
	}
}

func TestBuild_DoesNotMarkVoidWhenFollowingSuit(t *testing.T) {
	g := memState()
	trump := g.Trump()
	g.CompletedTricks = []domain.Trick{{Plays: []domain.TrickPlay{
		{PlayerID: "north", Cards: []domain.Card{domain.NewCard(domain.Hearts, domain.Nine, 0)}},
		{PlayerID: "east", Cards: []domain.Card{domain.NewCard(domain.Hearts, domain.Three, 0)}},
	}}}
	m := Build(g, trump)
	leadGroup := domain.GroupOf(domain.NewCard(domain.Hearts, domain.Nine, 0), trump)
	if m.IsVoid(1, leadGroup) {
		t.Fatalf("east followed suit, should not be marked void")
	}
}

func TestUnseenCopies_AccountsForPlayedAndHeldCards(t *testing.T) {
	m := New()
	m.Played = []domain.Card{domain.NewCard(domain.Hearts, domain.King, 0)}
	myHand := []domain.Card{domain.NewCard(domain.Hearts, domain.King, 1)}
	if got := m.UnseenCopies(domain.NewCard(domain.Hearts, domain.King, 0), myHand); got != 0 {
		t.Fatalf("expected 0 unseen copies (1 played + 1 held), got %d", got)
	}
}

func TestUnseenCopies_FullCountWhenNothingSeen(t *testing.T) {
	m := New()
	if got := m.UnseenCopies(domain.NewCard(domain.Spades, domain.Ace, 0), nil); got != 2 {
		t.Fatalf("expected 2 unseen copies, got %d", got)
	}
}
