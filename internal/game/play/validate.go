// Package play implements the rule that decides whether a proposed set
// of cards is a legal play given a hand and (for a follow) the cards
// the trick's leader already committed to the table.
package play

import (
	"errors"

	"shengji-tractor/internal/game/domain"
)

var (
	// ErrNotInHand is returned when a play uses a card the player does
	// not hold.
	ErrNotInHand = errors.New("play: card not in hand")
	// ErrEmptyPlay is returned for a zero-length play.
	ErrEmptyPlay = errors.New("play: cannot play zero cards")
	// ErrWrongLength is returned when a follow doesn't match the
	// leader's card count.
	ErrWrongLength = errors.New("play: must play the same number of cards as the lead")
	// ErrMustFollowGroup is returned when a follower has enough cards
	// in the leader's trump group but didn't play all from it.
	ErrMustFollowGroup = errors.New("play: must follow with cards from the led suit/trump group while able")
	// ErrInvalidLeadShape is returned when a lead's cards don't form a
	// coherent single/pair/tractor/multi-part combo from one group.
	ErrInvalidLeadShape = errors.New("play: lead must be a single, pair, tractor, or combination from one suit")
	// ErrMustPreservePairs is returned when a follower breaks up a pair
	// they hold in the led group instead of playing it, while the lead
	// itself contains a pair or tractor and another single was
	// available to pad with instead.
	ErrMustPreservePairs = errors.New("play: must play intact pairs from the led group before breaking them up")
)

// IsValidPlay reports whether played is legal. lead is nil/empty when
// played would be the trick's leading play; otherwise it holds the
// cards the leader already played this trick.
func IsValidPlay(played, lead, hand []domain.Card, trump domain.TrumpInfo) error {
	if len(played) == 0 {
		return ErrEmptyPlay
	}
	if !subsetOf(played, hand) {
		return ErrNotInHand
	}
	if len(lead) == 0 {
		return validateLead(played, trump)
	}
	return validateFollow(played, lead, hand, trump)
}

func validateLead(played []domain.Card, trump domain.TrumpInfo) error {
	group := domain.GroupOf(played[0], trump)
	for _, c := range played[1:] {
		if !domain.GroupOf(c, trump).Equal(group) {
			return ErrInvalidLeadShape
		}
	}
	return nil
}

func validateFollow(played, lead, hand []domain.Card, trump domain.TrumpInfo) error {
	if len(played) != len(lead) {
		return ErrWrongLength
	}
	leadGroup := domain.GroupOf(lead[0], trump)
	available := cardsInGroup(hand, leadGroup, trump)

	if len(available) >= len(lead) {
		// Enough cards to follow in full: every played card must come
		// from the led group, exhausting it before any discard.
		for _, c := range played {
			if !domain.GroupOf(c, trump).Equal(leadGroup) {
				return ErrMustFollowGroup
			}
		}
		return validateShape(played, available, lead, trump)
	}

	// Insufficient cards in the led group: every held card from that
	// group must be used, padded out with any other cards.
	if !subsetOf(available, played) {
		return ErrMustFollowGroup
	}
	return nil
}

// validateShape enforces the combo-shape rule: a follower with enough
// cards to match the lead's length in full must also preserve as many
// of their own intact pairs from the led group as the lead's shape
// calls for (one pair's worth per paired piece, two per tractor, and
// so on), rather than splitting a held pair when a single elsewhere in
// the group could have padded the play instead.
func validateShape(played, available, lead []domain.Card, trump domain.TrumpInfo) error {
	pairsNeeded := 0
	for _, length := range domain.Shape(lead, trump) {
		if length >= 2 {
			pairsNeeded += length / 2
		}
	}
	if pairsNeeded == 0 {
		return nil
	}
	required := pairsNeeded
	if availablePairs := countIntactPairs(available); availablePairs < required {
		required = availablePairs
	}
	if countIntactPairs(played) < required {
		return ErrMustPreservePairs
	}
	return nil
}

// countIntactPairs greedily pairs off same-face cards, reporting how
// many complete pairs the set contains.
func countIntactPairs(cards []domain.Card) int {
	used := make([]bool, len(cards))
	pairs := 0
	for i := range cards {
		if used[i] {
			continue
		}
		for j := i + 1; j < len(cards); j++ {
			if used[j] {
				continue
			}
			if cards[i].IsSameFace(cards[j]) {
				used[i], used[j] = true, true
				pairs++
				break
			}
		}
	}
	return pairs
}

func subsetOf(want, from []domain.Card) bool {
	remaining := make([]domain.Card, len(from))
	copy(remaining, from)
	for _, w := range want {
		found := -1
		for i, c := range remaining {
			if c.IsEqual(w) {
				found = i
				break
			}
		}
		if found == -1 {
			return false
		}
		remaining = append(remaining[:found], remaining[found+1:]...)
	}
	return true
}

func cardsInGroup(hand []domain.Card, group domain.Group, trump domain.TrumpInfo) []domain.Card {
	var out []domain.Card
	for _, c := range hand {
		if domain.GroupOf(c, trump).Equal(group) {
			out = append(out, c)
		}
	}
	return out
}
