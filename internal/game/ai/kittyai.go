package ai

import (
	"sort"

	"shengji-tractor/internal/game/round"

	"shengji-tractor/internal/game/domain"
)

// SelectKittyDiscard chooses KittySize cards to bury from an already
// kitty-expanded hand, per spec §4.6's kitty exchange and §4.9's AI
// decision pipeline. It keeps trump and point cards (fives, tens,
// kings) back whenever it can, discarding the least useful low
// non-trump cards first, since those cards are doubled to the
// attackers if they win the last trick.
func SelectKittyDiscard(hand []domain.Card, trump domain.TrumpInfo) []domain.Card {
	pool := append([]domain.Card(nil), hand...)
	sort.Slice(pool, func(i, j int) bool {
		return discardScore(pool[i], trump) < discardScore(pool[j], trump)
	})
	if len(pool) < round.KittySize {
		return pool
	}
	return pool[:round.KittySize]
}

func discardScore(c domain.Card, trump domain.TrumpInfo) int {
	return domain.StrategicValue(c, trump, domain.ValueStrategic) + c.PointValue()*3
}
