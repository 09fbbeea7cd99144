// Package engine exposes the game's entire lifecycle as a set of pure
// façade operations: each takes a GameState and returns a new one,
// never mutating the caller's copy (spec §5). It is the only package
// a server handler or CLI driver needs to import.
package engine

import (
	"shengji-tractor/internal/game/domain"
	"shengji-tractor/internal/game/play"
	"shengji-tractor/internal/game/round"
)

// InitializeGame builds a fresh table: a shuffled deck, four empty
// seats, and the Dealing phase ready for DealNextCard. seed drives the
// shuffle so a game can be replayed exactly (spec's only reproducibility
// guarantee).
func InitializeGame(id string, seats [4]domain.Player, dealerSeat int, trumpRank domain.Rank, seed int64) domain.GameState {
	deck := domain.NewDeck()
	deck.Shuffle(seed)

	for i := range seats {
		seats[i].SeatNo = i
		if i%2 == dealerSeat%2 {
			seats[i].Team = domain.TeamDefenders
		} else {
			seats[i].Team = domain.TeamAttackers
		}
	}

	// Teams are indexed by fixed physical partnership (seat parity),
	// not by role - partnership p == dealerSeat%2 starts as defenders,
	// but whichever of these two slots is defending can change every
	// round, so each slot keeps climbing its own rank independently.
	var teams [2]domain.Team
	for p := 0; p < 2; p++ {
		isDefending := p == dealerSeat%2
		role := domain.TeamAttackers
		if isDefending {
			role = domain.TeamDefenders
		}
		var players []string
		for seat := p; seat < len(seats); seat += 2 {
			players = append(players, seats[seat].ID)
		}
		teams[p] = domain.Team{ID: role, Players: players, CurrentRank: trumpRank, IsDefending: isDefending}
	}

	return domain.GameState{
		ID:          id,
		Phase:       domain.PhaseDealing,
		Players:     seats,
		DealerSeat:  dealerSeat,
		CurrentTurn: domain.NextSeat(dealerSeat),
		TrumpRank:   trumpRank,
		Deck:        deck,
		Teams:       teams,
	}
}

// DealNextCard deals the next card in rotation, transitioning to the
// kitty-exchange phase once only the kitty remains.
func DealNextCard(g domain.GameState) (domain.GameState, error) {
	next, err := round.DealNext(g)
	if err != nil {
		return g, translateRoundErr(err)
	}
	return next, nil
}

// MakeTrumpDeclaration registers a trump declaration made mid-deal.
func MakeTrumpDeclaration(g domain.GameState, decl domain.Declaration) (domain.GameState, error) {
	next, err := round.Declare(g, decl)
	if err != nil {
		return g, translateDeclareErr(err)
	}
	return next, nil
}

// PutbackKittyCards has the declarer (or dealer, if no one declared)
// exchange the kitty for an equal number of cards from their hand.
func PutbackKittyCards(g domain.GameState, playerID string, cards []domain.Card) (domain.GameState, error) {
	next, err := round.PutBackKitty(g, playerID, cards)
	if err != nil {
		return g, translateKittyErr(err)
	}
	return next, nil
}

// ProcessPlay validates and applies one player's play to the current
// trick. It does not resolve a completed trick - call
// ClearCompletedTrick once the fourth play lands.
func ProcessPlay(g domain.GameState, playerID string, cards []domain.Card) (domain.GameState, error) {
	if g.Phase != domain.PhasePlaying {
		return g, newError(WrongPhase, "cannot play outside the Playing phase", nil)
	}
	seat := g.SeatOf(playerID)
	if seat == -1 {
		return g, newError(WrongPlayer, "unknown player", nil)
	}
	if seat != g.CurrentTurn {
		return g, newError(WrongPlayer, "it is not this player's turn", nil)
	}

	player := g.Players[seat]
	var lead []domain.Card
	if len(g.CurrentTrick.Plays) > 0 {
		lead = g.CurrentTrick.Plays[0].Cards
	}
	if err := play.IsValidPlay(cards, lead, player.Hand, g.Trump()); err != nil {
		return g, newError(IllegalPlay, "play rejected", err)
	}

	next := g.DeepCopy()
	next.Players[seat] = next.Players[seat].RemoveCards(cards)
	next.CurrentTrick.Plays = append(next.CurrentTrick.Plays, domain.TrickPlay{PlayerID: playerID, Cards: cards})
	next.CurrentTurn = domain.NextSeat(seat)
	return next, nil
}

// ClearCompletedTrick resolves a four-play trick: determines the
// winner, banks it into CompletedTricks/TrickWinners, and hands the
// lead to the winning seat. If every hand is now empty, the round
// moves to the Scoring phase.
func ClearCompletedTrick(g domain.GameState) (domain.GameState, error) {
	if len(g.CurrentTrick.Plays) != 4 {
		return g, newError(WrongPhase, "trick is not yet complete", nil)
	}
	winnerIdx, err := domain.ResolveTrick(g.CurrentTrick, g.Trump())
	if err != nil {
		return g, newError(InternalInconsistency, "could not resolve a complete trick", err)
	}
	winnerID := g.CurrentTrick.Plays[winnerIdx].PlayerID
	winnerSeat := g.SeatOf(winnerID)
	if winnerSeat == -1 {
		return g, newError(InternalInconsistency, "trick winner is not a seated player", nil)
	}

	next := g.DeepCopy()
	next.CompletedTricks = append(next.CompletedTricks, next.CurrentTrick)
	next.TrickWinners = append(next.TrickWinners, winnerID)
	next.CurrentTrick = domain.Trick{}
	next.CurrentTurn = winnerSeat
	if next.IsRoundOver() {
		next.Phase = domain.PhaseScoring
	}
	return next, nil
}

// RoundOutcome bundles a round's score with the state it was computed
// from, since EndRound both scores the round and updates it.
type RoundOutcome struct {
	Result round.RoundResult
	State  domain.GameState
}

// EndRound scores a completed round, advances whichever side earned
// the advance by its own rank (and, on a role reversal, swaps which
// partnership is defending) per spec §4.6 - each side's rank climbs
// independently, so a team resumes defending from its own historical
// rank rather than the other side's.
func EndRound(g domain.GameState) (RoundOutcome, error) {
	if g.Phase != domain.PhaseScoring {
		return RoundOutcome{}, newError(WrongPhase, "round is not ready to be scored", nil)
	}
	result := round.ScoreRound(g)

	next := g.DeepCopy()

	advancingIdx := -1
	for i, t := range next.Teams {
		role := domain.TeamAttackers
		if t.IsDefending {
			role = domain.TeamDefenders
		}
		if role == result.AdvancingTeam {
			advancingIdx = i
			break
		}
	}

	var wrapped bool
	if advancingIdx != -1 {
		newRank, w := round.AdvanceRank(next.Teams[advancingIdx].CurrentRank, result.RanksAdvanced)
		next.Teams[advancingIdx].CurrentRank = newRank
		wrapped = w
	}

	if result.AdvancingTeam == domain.TeamAttackers && result.RanksAdvanced > 0 {
		for i := range next.Teams {
			next.Teams[i].IsDefending = !next.Teams[i].IsDefending
		}
		for i := range next.Players {
			if next.Players[i].Team == domain.TeamAttackers {
				next.Players[i].Team = domain.TeamDefenders
			} else {
				next.Players[i].Team = domain.TeamAttackers
			}
		}
	}

	next.TrumpRank = next.DefendingTeam().CurrentRank
	if wrapped {
		next.Phase = domain.PhaseGameOver
	}
	return RoundOutcome{Result: result, State: next}, nil
}

// PrepareNextRound resets a scored table for another round of dealing,
// keeping the trump rank and team assignments EndRound just computed.
func PrepareNextRound(g domain.GameState, seed int64) (domain.GameState, error) {
	if g.Phase != domain.PhaseScoring && g.Phase != domain.PhaseGameOver {
		return g, newError(WrongPhase, "previous round has not been scored yet", nil)
	}
	next := g.DeepCopy()
	deck := domain.NewDeck()
	deck.Shuffle(seed)
	next.Deck = deck
	next.Kitty = nil
	next.CurrentTrick = domain.Trick{}
	next.CompletedTricks = nil
	next.TrickWinners = nil
	next.Declarations = domain.TrumpDeclarationState{}
	next.DealerSeat = domain.NextSeat(g.DealerSeat)
	next.CurrentTurn = domain.NextSeat(next.DealerSeat)
	next.RoundNumber = g.RoundNumber + 1
	next.Phase = domain.PhaseDealing
	for i := range next.Players {
		next.Players[i].Hand = nil
	}
	return next, nil
}

func translateRoundErr(err error) *Error {
	switch err {
	case round.ErrWrongPhase:
		return newError(WrongPhase, "dealing is not in progress", err)
	case round.ErrDeckEmpty:
		return newError(InternalInconsistency, "deck exhausted mid-deal", err)
	default:
		return newError(InternalInconsistency, "unexpected dealing error", err)
	}
}

func translateDeclareErr(err error) *Error {
	switch err {
	case round.ErrWrongPhase:
		return newError(WrongPhase, "declarations are only accepted while dealing", err)
	case round.ErrUnknownPlayer:
		return newError(WrongPlayer, "unknown player", err)
	case round.ErrDeclarationCardsNotHeld, domain.ErrDeclarationTooWeak:
		return newError(IllegalDeclaration, "declaration rejected", err)
	default:
		return newError(InternalInconsistency, "unexpected declaration error", err)
	}
}

func translateKittyErr(err error) *Error {
	switch err {
	case round.ErrWrongPhase:
		return newError(WrongPhase, "kitty exchange is not in progress", err)
	case round.ErrUnknownPlayer:
		return newError(WrongPlayer, "unknown player", err)
	case round.ErrWrongPlayer:
		return newError(WrongPlayer, "only the declarer may exchange the kitty", err)
	case round.ErrWrongKittySize, round.ErrDeclarationCardsNotHeld:
		return newError(IllegalDeclaration, "kitty exchange rejected", err)
	default:
		return newError(InternalInconsistency, "unexpected kitty exchange error", err)
	}
}
