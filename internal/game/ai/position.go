package ai

import (
	"shengji-tractor/internal/game/domain"
	"shengji-tractor/internal/game/memory"
)

// BuildFollowContext derives the FollowContext a computer seat needs
// from the live game state: whose team currently holds the trick,
// whether this seat is the last to act (spec §4.10 - 2nd/3rd seat play
// conservatively to preserve options for the partner yet to act; 4th
// seat commits fully since no one plays after), and whether every
// opponent yet to act has already shown void of trump (spec §4.8's
// void-handler threshold for trumping in before the last seat).
func BuildFollowContext(g domain.GameState, seat int) FollowContext {
	hand := g.Players[seat].Hand
	trick := g.CurrentTrick
	trump := g.Trump()
	ctx := FollowContext{
		Hand:        hand,
		Trick:       trick,
		Trump:       trump,
		IsLastToAct: IsLastToAct(g, seat),
		TrickPoints: trick.PointValue(),
	}

	if len(trick.Plays) == 0 {
		return ctx
	}
	winnerIdx, err := domain.ResolveTrick(trick, trump)
	if err != nil {
		return ctx
	}
	winnerSeat := g.SeatOf(trick.Plays[winnerIdx].PlayerID)
	ctx.PartnerIsWinning = winnerSeat == domain.PartnerSeat(seat)
	ctx.RemainingOpponentsVoidOfTrump = remainingOpponentsVoidOfTrump(g, trick, seat, trump)
	return ctx
}

// remainingOpponentsVoidOfTrump reports whether every seat still to
// act this trick after seat, other than seat's partner, has already
// been observed void of the trump group - meaning nobody left in the
// trick can overtrump a trump play made now.
func remainingOpponentsVoidOfTrump(g domain.GameState, trick domain.Trick, seat int, trump domain.TrumpInfo) bool {
	if len(trick.Plays) == 0 {
		return false
	}
	leadSeat := g.SeatOf(trick.Plays[0].PlayerID)
	if leadSeat == -1 {
		return false
	}
	mem := memory.Build(g, trump)
	trumpGroup := domain.Group{IsTrump: true}
	for s := domain.NextSeat(seat); s != leadSeat; s = domain.NextSeat(s) {
		if s == domain.PartnerSeat(seat) {
			continue
		}
		if !mem.IsVoid(s, trumpGroup) {
			return false
		}
	}
	return true
}

// IsLastToAct reports whether seat is the final player to act in the
// current trick (every other seat has already played).
func IsLastToAct(g domain.GameState, seat int) bool {
	return len(g.CurrentTrick.Plays) == 3
}
