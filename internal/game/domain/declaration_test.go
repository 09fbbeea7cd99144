package domain

import "testing"

func TestTrumpDeclarationState_FirstDeclarationAlwaysAccepted(t *testing.T) {
	var s TrumpDeclarationState
	err := s.Declare(Declaration{PlayerID: "north", Type: SingleTrumpRank, Suit: Hearts})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Current == nil || s.Current.Type != SingleTrumpRank {
		t.Fatalf("expected current declaration to be set")
	}
}

func TestTrumpDeclarationState_StrictlyHigherTypeOverrides(t *testing.T) {
	var s TrumpDeclarationState
	_ = s.Declare(Declaration{PlayerID: "north", Type: SingleTrumpRank, Suit: Hearts})
	err := s.Declare(Declaration{PlayerID: "east", Type: PairTrumpRank, Suit: Spades})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Current.PlayerID != "east" || s.Current.Suit != Spades {
		t.Fatalf("expected east's pair declaration to override, got %+v", s.Current)
	}
}

func TestTrumpDeclarationState_SameTypeDifferentSuitRejected(t *testing.T) {
	var s TrumpDeclarationState
	_ = s.Declare(Declaration{PlayerID: "north", Type: SingleTrumpRank, Suit: Hearts})
	err := s.Declare(Declaration{PlayerID: "east", Type: SingleTrumpRank, Suit: Spades})
	if err != ErrDeclarationTooWeak {
		t.Fatalf("expected ErrDeclarationTooWeak, got %v", err)
	}
	if s.Current.PlayerID != "north" {
		t.Fatalf("current declaration should be unchanged")
	}
}

func TestTrumpDeclarationState_SamePlayerCanReplaceWithEqualOrHigherType(t *testing.T) {
	var s TrumpDeclarationState
	_ = s.Declare(Declaration{PlayerID: "north", Type: SingleTrumpRank, Suit: Hearts})
	err := s.Declare(Declaration{PlayerID: "north", Type: SingleTrumpRank, Suit: Spades})
	if err != nil {
		t.Fatalf("unexpected error replacing own declaration with an equal type: %v", err)
	}
	if s.Current.Suit != Spades {
		t.Fatalf("expected north's updated suit to take effect, got %+v", s.Current)
	}

	err = s.Declare(Declaration{PlayerID: "north", Type: PairTrumpRank, Suit: Spades})
	if err != nil {
		t.Fatalf("unexpected error replacing own declaration with a higher type: %v", err)
	}
	if s.Current.Type != PairTrumpRank {
		t.Fatalf("expected north's pair declaration to take effect, got %+v", s.Current)
	}
}

func TestTrumpDeclarationState_SamePlayerCannotReplaceWithWeakerType(t *testing.T) {
	var s TrumpDeclarationState
	_ = s.Declare(Declaration{PlayerID: "north", Type: PairTrumpRank, Suit: Hearts})
	err := s.Declare(Declaration{PlayerID: "north", Type: SingleTrumpRank, Suit: Hearts})
	if err != ErrDeclarationTooWeak {
		t.Fatalf("expected ErrDeclarationTooWeak, got %v", err)
	}
}

func TestTrumpDeclarationState_WeakerTypeRejected(t *testing.T) {
	var s TrumpDeclarationState
	_ = s.Declare(Declaration{PlayerID: "north", Type: BigJokerPair})
	err := s.Declare(Declaration{PlayerID: "east", Type: SmallJokerPair})
	if err != ErrDeclarationTooWeak {
		t.Fatalf("expected ErrDeclarationTooWeak, got %v", err)
	}
}

func TestTrumpDeclarationState_ResolvedTrumpInfo_NoDeclarationMeansNoSuit(t *testing.T) {
	var s TrumpDeclarationState
	info := s.ResolvedTrumpInfo(Two)
	if info.HasSuit() {
		t.Fatalf("expected no trump suit when nothing was declared")
	}
	if info.Rank != Two {
		t.Fatalf("expected trump rank to still be set")
	}
}

func TestTrumpDeclarationState_ResolvedTrumpInfo_JokerPairMeansNoSuit(t *testing.T) {
	var s TrumpDeclarationState
	_ = s.Declare(Declaration{PlayerID: "north", Type: BigJokerPair})
	info := s.ResolvedTrumpInfo(Two)
	if info.HasSuit() {
		t.Fatalf("a joker-pair declaration calls no suit, expected no-trump-suit round, got %+v", info)
	}
}

func TestTrumpDeclarationState_ResolvedTrumpInfo_UsesDeclaredSuit(t *testing.T) {
	var s TrumpDeclarationState
	_ = s.Declare(Declaration{PlayerID: "north", Type: SingleTrumpRank, Suit: Diamonds})
	info := s.ResolvedTrumpInfo(Two)
	if !info.IsTrumpSuit(Diamonds) {
		t.Fatalf("expected declared suit Diamonds, got %+v", info)
	}
}
