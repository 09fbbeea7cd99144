package round

import (
	"testing"

	"shengji-tractor/internal/game/domain"
)

func freshDealingState() domain.GameState {
	deck := domain.NewDeck()
	deck.Shuffle(42)
	return domain.GameState{
		ID:         "t1",
		Phase:      domain.PhaseDealing,
		TrumpRank:  domain.Two,
		DealerSeat: 0,
		Deck:       deck,
		Players: [4]domain.Player{
			{ID: "north", Team: domain.TeamAttackers},
			{ID: "east", Team: domain.TeamDefenders},
			{ID: "south", Team: domain.TeamAttackers},
			{ID: "west", Team: domain.TeamDefenders},
		},
	}
}

func TestDealNext_DealsOneCardAndAdvancesTurn(t *testing.T) {
	g := freshDealingState()
	next, err := DealNext(g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(next.Players[0].Hand) != 1 {
		t.Fatalf("expected seat 0 to receive a card, got %d", len(next.Players[0].Hand))
	}
	if next.CurrentTurn != 1 {
		t.Fatalf("expected turn to advance to seat 1, got %d", next.CurrentTurn)
	}
	if len(g.Players[0].Hand) != 0 {
		t.Fatalf("original state must be unaffected by DealNext")
	}
}

func TestDealNext_SetsKittyAsideWhenDeckReachesKittySize(t *testing.T) {
	g := freshDealingState()
	for g.Deck.Remaining() > KittySize+1 {
		var err error
		g, err = DealNext(g)
		if err != nil {
			t.Fatalf("unexpected error dealing: %v", err)
		}
	}
	next, err := DealNext(g)
	if err != nil {
		t.Fatalf("unexpected error on final deal: %v", err)
	}
	if next.Phase != domain.PhaseKittySwap {
		t.Fatalf("expected phase KittySwap once kitty is set aside, got %v", next.Phase)
	}
	if len(next.Kitty) != KittySize {
		t.Fatalf("expected %d kitty cards, got %d", KittySize, len(next.Kitty))
	}
	total := len(next.Kitty)
	for _, p := range next.Players {
		total += len(p.Hand)
	}
	if total != domain.TotalCards {
		t.Fatalf("expected all %d cards accounted for, got %d", domain.TotalCards, total)
	}
}

func TestDealNext_WrongPhaseRejected(t *testing.T) {
	g := freshDealingState()
	g.Phase = domain.PhasePlaying
	if _, err := DealNext(g); err != ErrWrongPhase {
		t.Fatalf("expected ErrWrongPhase, got %v", err)
	}
}

func TestDeclare_RejectsCardsNotHeld(t *testing.T) {
	g := freshDealingState()
	g.Players[0].Hand = []domain.Card{domain.NewCard(domain.Hearts, domain.Two, 0)}
	decl := domain.Declaration{
		PlayerID: "north",
		Type:     domain.SingleTrumpRank,
		Suit:     domain.Spades,
		Cards:    []domain.Card{domain.NewCard(domain.Spades, domain.Two, 0)},
	}
	if _, err := Declare(g, decl); err != ErrDeclarationCardsNotHeld {
		t.Fatalf("expected ErrDeclarationCardsNotHeld, got %v", err)
	}
}

func TestDeclare_AcceptsHeldCardsAndOverridesWeaker(t *testing.T) {
	g := freshDealingState()
	g.Players[0].Hand = []domain.Card{domain.NewCard(domain.Hearts, domain.Two, 0)}
	g.Players[1].Hand = []domain.Card{
		domain.NewCard(domain.Spades, domain.Two, 0),
		domain.NewCard(domain.Spades, domain.Two, 1),
	}

	g, err := Declare(g, domain.Declaration{
		PlayerID: "north", Type: domain.SingleTrumpRank, Suit: domain.Hearts,
		Cards: []domain.Card{domain.NewCard(domain.Hearts, domain.Two, 0)},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	g, err = Declare(g, domain.Declaration{
		PlayerID: "east", Type: domain.PairTrumpRank, Suit: domain.Spades,
		Cards: []domain.Card{domain.NewCard(domain.Spades, domain.Two, 0), domain.NewCard(domain.Spades, domain.Two, 1)},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.Declarations.Current.PlayerID != "east" {
		t.Fatalf("expected east's pair to override north's single")
	}
}
