// Package round implements the stateful parts of a round that aren't
// pure card-comparison rules: progressive dealing with overridable
// trump declarations, the kitty exchange, and end-of-round scoring.
package round

import (
	"errors"

	"shengji-tractor/internal/game/domain"
)

// KittySize is the number of cards set aside for the eventual
// declarer/dealer to exchange at the end of dealing.
const KittySize = 8

// CardsPerPlayer is how many cards each of the four seats ends up
// holding once dealing (minus the kitty) completes.
const CardsPerPlayer = (domain.TotalCards - KittySize) / 4

var (
	// ErrWrongPhase is returned when an operation is attempted outside
	// the phase it applies to.
	ErrWrongPhase = errors.New("round: operation not valid in the current phase")
	// ErrDeckEmpty is returned when DealNext is called with no deck or
	// no cards left to deal.
	ErrDeckEmpty = errors.New("round: no cards left to deal")
	// ErrUnknownPlayer is returned when a declaration names a seat that
	// isn't part of the table.
	ErrUnknownPlayer = errors.New("round: unknown player")
	// ErrDeclarationCardsNotHeld is returned when a declaration claims
	// cards the declaring player doesn't actually hold.
	ErrDeclarationCardsNotHeld = errors.New("round: declared cards are not in the player's hand")
)

// DealNext deals one card to the seat whose turn it is, advances the
// turn, and - once only KittySize cards remain - sets the kitty aside
// and transitions to the kitty-exchange phase. The deck is expected to
// have been seeded and shuffled by the caller (engine façade) before
// dealing starts.
func DealNext(g domain.GameState) (domain.GameState, error) {
	if g.Phase != domain.PhaseDealing {
		return g, ErrWrongPhase
	}
	if g.Deck == nil || g.Deck.Remaining() == 0 {
		return g, ErrDeckEmpty
	}

	next := g.DeepCopy()
	dealt, err := next.Deck.Deal(1)
	if err != nil {
		return g, err
	}
	next.Players[next.CurrentTurn] = next.Players[next.CurrentTurn].AddCards(dealt)
	next.CurrentTurn = domain.NextSeat(next.CurrentTurn)

	if next.Deck.Remaining() == KittySize {
		kitty, err := next.Deck.Deal(KittySize)
		if err != nil {
			return g, err
		}
		next.Kitty = kitty
		next.Phase = domain.PhaseKittySwap
		next.CurrentTurn = declarerSeat(next)
	}
	return next, nil
}

// declarerSeat returns the seat that will receive the kitty: the
// current strongest declarer, or the dealer if nobody declared.
func declarerSeat(g domain.GameState) int {
	if g.Declarations.Current == nil {
		return g.DealerSeat
	}
	return g.SeatOf(g.Declarations.Current.PlayerID)
}

// Declare registers a trump declaration made while dealing is still in
// progress. It only succeeds if the declaration outranks the current
// one (domain.TrumpDeclarationState.Outranks: strictly stronger, or
// equal-or-stronger from the same player) and the declaring
// player actually holds the cards they're showing.
func Declare(g domain.GameState, decl domain.Declaration) (domain.GameState, error) {
	if g.Phase != domain.PhaseDealing {
		return g, ErrWrongPhase
	}
	player, ok := g.PlayerByID(decl.PlayerID)
	if !ok {
		return g, ErrUnknownPlayer
	}
	if !player.HasCards(decl.Cards) {
		return g, ErrDeclarationCardsNotHeld
	}

	next := g.DeepCopy()
	if err := next.Declarations.Declare(decl); err != nil {
		return g, err
	}
	return next, nil
}
