package round

import (
	"errors"

	"shengji-tractor/internal/game/domain"
)

// ErrWrongPlayer is returned when someone other than the declarer (or
// dealer, if nobody declared) attempts the kitty exchange.
var ErrWrongPlayer = errors.New("round: only the declarer may exchange the kitty")

// ErrWrongKittySize is returned when a put-back selection isn't
// exactly KittySize cards.
var ErrWrongKittySize = errors.New("round: must put back exactly KittySize cards")

// PutBackKitty gives the kitty to the declaring seat and has them
// discard exactly KittySize cards back out of their now-expanded hand.
// The discarded cards are kept on the state (Kitty) so scoring can
// double their point value to the attackers if they win the last
// trick (spec §4.6).
func PutBackKitty(g domain.GameState, playerID string, putBack []domain.Card) (domain.GameState, error) {
	if g.Phase != domain.PhaseKittySwap {
		return g, ErrWrongPhase
	}
	seat := g.SeatOf(playerID)
	if seat == -1 {
		return g, ErrUnknownPlayer
	}
	if seat != g.CurrentTurn {
		return g, ErrWrongPlayer
	}
	if len(putBack) != KittySize {
		return g, ErrWrongKittySize
	}

	next := g.DeepCopy()
	expanded := next.Players[seat].AddCards(next.Kitty)
	if !expanded.HasCards(putBack) {
		return g, ErrDeclarationCardsNotHeld
	}
	next.Players[seat] = expanded.RemoveCards(putBack)
	next.Kitty = append([]domain.Card(nil), putBack...)
	next.Phase = domain.PhasePlaying
	next.CurrentTurn = seat
	return next, nil
}

// KittyPointValue returns the face point value locked up in the
// discarded kitty; ScoreRound doubles it when crediting the attackers.
func KittyPointValue(g domain.GameState) int {
	total := 0
	for _, c := range g.Kitty {
		total += c.PointValue()
	}
	return total
}
