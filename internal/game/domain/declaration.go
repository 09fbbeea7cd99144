package domain

import "errors"

// ErrDeclarationTooWeak is returned when a proposed trump declaration
// does not outrank the current one (see Outranks).
var ErrDeclarationTooWeak = errors.New("domain: declaration does not outrank the current one")

// DeclarationType ranks the four ways a player can claim the trump
// suit during dealing, strictly increasing in strength (spec §4.5):
// a single trump-rank card is weakest, a pair of big jokers strongest.
type DeclarationType int

const (
	NoDeclaration DeclarationType = iota
	SingleTrumpRank
	PairTrumpRank
	SmallJokerPair
	BigJokerPair
)

func (t DeclarationType) String() string {
	switch t {
	case NoDeclaration:
		return "None"
	case SingleTrumpRank:
		return "SingleTrumpRank"
	case PairTrumpRank:
		return "PairTrumpRank"
	case SmallJokerPair:
		return "SmallJokerPair"
	case BigJokerPair:
		return "BigJokerPair"
	default:
		return "Unknown"
	}
}

// Declaration is one player's claim on the trump suit, made by
// revealing cards from their hand while dealing is still in progress.
type Declaration struct {
	PlayerID string          `json:"player_id"`
	Type     DeclarationType `json:"type"`
	Suit     Suit            `json:"suit"`
	Cards    []Card          `json:"cards"`
}

// TrumpDeclarationState tracks the strongest declaration made so far
// this round, and the full history for display purposes.
type TrumpDeclarationState struct {
	Current *Declaration  `json:"current,omitempty"`
	History []Declaration `json:"history"`
}

// Outranks reports whether next may override the current declaration:
// any stronger declaration from anyone, or an equal-or-stronger one
// from the same player replacing their own (spec §4.5 lets a player
// upgrade their own claim without having to strictly beat it).
func (s TrumpDeclarationState) Outranks(next Declaration) bool {
	if s.Current == nil {
		return next.Type != NoDeclaration
	}
	if next.PlayerID == s.Current.PlayerID {
		return next.Type >= s.Current.Type
	}
	return next.Type > s.Current.Type
}

// Declare attempts to register next as the new strongest declaration.
// Declarations that don't outrank the current one are rejected: a
// weaker type never overrides, and a matching type only overrides when
// it's the same player replacing their own declaration.
func (s *TrumpDeclarationState) Declare(next Declaration) error {
	if !s.Outranks(next) {
		return ErrDeclarationTooWeak
	}
	decl := next
	s.Current = &decl
	s.History = append(s.History, next)
	return nil
}

// ResolvedTrumpInfo converts the declaration state into the round's
// TrumpInfo. With no declaration at all, or with the strongest
// declaration being a joker pair (which calls no suit - only jokers
// and the trump rank), the round plays "no trump": only the trump rank
// itself is trump, in no particular suit.
func (s TrumpDeclarationState) ResolvedTrumpInfo(rank Rank) TrumpInfo {
	if s.Current == nil {
		return TrumpInfo{Rank: rank}
	}
	switch s.Current.Type {
	case SmallJokerPair, BigJokerPair:
		return TrumpInfo{Rank: rank}
	default:
		suit := s.Current.Suit
		return TrumpInfo{Rank: rank, Suit: &suit}
	}
}
