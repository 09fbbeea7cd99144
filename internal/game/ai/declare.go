package ai

import "shengji-tractor/internal/game/domain"

// SelectDeclaration looks at a computer seat's hand-in-progress during
// dealing and proposes the strongest trump declaration it can make
// that would actually improve on the current one, per spec §4.5/§4.9.
// ok is false when the hand has nothing worth declaring.
func SelectDeclaration(playerID string, hand []domain.Card, trumpRank domain.Rank, current domain.TrumpDeclarationState) (domain.Declaration, bool) {
	candidate, found := strongestCandidate(playerID, hand, trumpRank)
	if !found {
		return domain.Declaration{}, false
	}
	if !current.Outranks(candidate) {
		return domain.Declaration{}, false
	}
	return candidate, true
}

func strongestCandidate(playerID string, hand []domain.Card, trumpRank domain.Rank) (domain.Declaration, bool) {
	bigJokers := jokersOf(hand, domain.BigJoker)
	if len(bigJokers) >= 2 {
		return domain.Declaration{PlayerID: playerID, Type: domain.BigJokerPair, Cards: bigJokers[:2]}, true
	}
	smallJokers := jokersOf(hand, domain.SmallJoker)
	if len(smallJokers) >= 2 {
		return domain.Declaration{PlayerID: playerID, Type: domain.SmallJokerPair, Cards: smallJokers[:2]}, true
	}

	bySuit := map[domain.Suit][]domain.Card{}
	for _, c := range hand {
		if !c.IsJoker && c.Rank == trumpRank {
			bySuit[c.Suit] = append(bySuit[c.Suit], c)
		}
	}
	var bestPairSuit domain.Suit
	havePair := false
	for suit, cards := range bySuit {
		if len(cards) >= 2 && (!havePair || suit < bestPairSuit) {
			bestPairSuit = suit
			havePair = true
		}
	}
	if havePair {
		return domain.Declaration{PlayerID: playerID, Type: domain.PairTrumpRank, Suit: bestPairSuit, Cards: bySuit[bestPairSuit][:2]}, true
	}

	var bestSingleSuit domain.Suit
	haveSingle := false
	for suit, cards := range bySuit {
		if len(cards) >= 1 && (!haveSingle || suit < bestSingleSuit) {
			bestSingleSuit = suit
			haveSingle = true
		}
	}
	if haveSingle {
		return domain.Declaration{PlayerID: playerID, Type: domain.SingleTrumpRank, Suit: bestSingleSuit, Cards: bySuit[bestSingleSuit][:1]}, true
	}

	return domain.Declaration{}, false
}

func jokersOf(hand []domain.Card, kind domain.JokerKind) []domain.Card {
	var out []domain.Card
	for _, c := range hand {
		if c.IsJoker && c.Joker == kind {
			out = append(out, c)
		}
	}
	return out
}
