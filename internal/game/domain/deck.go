package domain

import (
	"fmt"
	"math/rand"
)

// TotalCards is the size of a full Shengji double deck: two 52-card
// decks plus two Small and two Big Jokers.
const TotalCards = 108

// Deck is the undealt stack of cards. Cards are dealt from the front.
type Deck struct {
	Cards []Card `json:"cards"`
}

// NewDeck builds a fresh, unshuffled double deck.
func NewDeck() *Deck {
	cards := make([]Card, 0, TotalCards)
	for deckID := 0; deckID <= 1; deckID++ {
		for _, suit := range AllSuits {
			for _, rank := range AllRanks {
				cards = append(cards, NewCard(suit, rank, deckID))
			}
		}
		cards = append(cards, NewJoker(SmallJoker, deckID))
		cards = append(cards, NewJoker(BigJoker, deckID))
	}
	return &Deck{Cards: cards}
}

// Shuffle randomizes card order in place using the given seed. Seeding
// the shuffle is the only reproducibility guarantee the engine makes
// (spec Non-goals: no broader deterministic-RNG contract).
func (d *Deck) Shuffle(seed int64) {
	r := rand.New(rand.NewSource(seed))
	r.Shuffle(len(d.Cards), func(i, j int) {
		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	})
}

// Deal removes and returns count cards from the front of the deck.
func (d *Deck) Deal(count int) ([]Card, error) {
	if count < 0 || count > len(d.Cards) {
		return nil, fmt.Errorf("cannot deal %d cards, only %d remaining", count, len(d.Cards))
	}
	dealt := make([]Card, count)
	copy(dealt, d.Cards[:count])
	d.Cards = d.Cards[count:]
	return dealt, nil
}

// Remaining returns the number of undealt cards left.
func (d *Deck) Remaining() int {
	return len(d.Cards)
}
