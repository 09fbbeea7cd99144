// Package memory reconstructs what a card-counting player could infer
// from the tricks played so far: which cards are already gone, and
// which seats have shown they hold none of a given suit or trump.
package memory

import "shengji-tractor/internal/game/domain"

// CardMemory is a running summary of public information: every card
// played this round, and every seat/group pair a player has proven
// void in by discarding off-suit rather than following.
type CardMemory struct {
	Played []domain.Card                `json:"played"`
	Voids  map[int]map[domain.Group]bool `json:"-"`
}

// New returns an empty memory context.
func New() CardMemory {
	return CardMemory{Voids: map[int]map[domain.Group]bool{}}
}

// Build reconstructs a CardMemory from every trick completed so far in
// the round, plus the plays already made to the current trick. A seat is inferred void in the lead's group whenever its
// play didn't come entirely from that group - the only way the rules
// allow that is insufficient or zero cards of the group in hand.
func Build(g domain.GameState, trump domain.TrumpInfo) CardMemory {
	m := New()
	for _, tr := range g.CompletedTricks {
		m.absorb(tr, g, trump)
	}
	m.absorb(g.CurrentTrick, g, trump)
	return m
}

func (m *CardMemory) absorb(tr domain.Trick, g domain.GameState, trump domain.TrumpInfo) {
	if len(tr.Plays) == 0 {
		return
	}
	leadGroup, _ := tr.LeadGroup(trump)
	for i, p := range tr.Plays {
		m.Played = append(m.Played, p.Cards...)
		if i == 0 {
			continue
		}
		if !allInGroup(p.Cards, leadGroup, trump) {
			seat := g.SeatOf(p.PlayerID)
			if seat != -1 {
				m.MarkVoid(seat, leadGroup)
			}
		}
	}
}

func allInGroup(cards []domain.Card, group domain.Group, trump domain.TrumpInfo) bool {
	for _, c := range cards {
		if !domain.GroupOf(c, trump).Equal(group) {
			return false
		}
	}
	return true
}

// MarkVoid records that seat has shown no cards remain in group.
func (m *CardMemory) MarkVoid(seat int, group domain.Group) {
	if m.Voids == nil {
		m.Voids = map[int]map[domain.Group]bool{}
	}
	if m.Voids[seat] == nil {
		m.Voids[seat] = map[domain.Group]bool{}
	}
	m.Voids[seat][group] = true
}

// IsVoid reports whether seat has been observed void in group.
func (m CardMemory) IsVoid(seat int, group domain.Group) bool {
	return m.Voids[seat] != nil && m.Voids[seat][group]
}

// copiesPerFace is how many physical copies of a given face exist in
// a full double deck: two of every rank/suit combination and two of
// each joker kind.
const copiesPerFace = 2

// UnseenCopies returns how many copies of a card's face (same rank and
// suit, or same joker kind) are neither already played nor sitting in
// myHand - i.e. could still be in an opponent's hand or the kitty.
func (m CardMemory) UnseenCopies(face domain.Card, myHand []domain.Card) int {
	remaining := copiesPerFace
	for _, c := range m.Played {
		if c.IsSameFace(face) {
			remaining--
		}
	}
	for _, c := range myHand {
		if c.IsSameFace(face) {
			remaining--
		}
	}
	if remaining < 0 {
		return 0
	}
	return remaining
}
