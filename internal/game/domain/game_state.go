package domain

// GamePhase names a stage in the round lifecycle (spec §4.5-§4.6).
type GamePhase int

const (
	PhaseDealing GamePhase = iota
	PhaseDeclaring
	PhaseKittySwap
	PhasePlaying
	PhaseScoring
	PhaseGameOver
)

func (p GamePhase) String() string {
	switch p {
	case PhaseDealing:
		return "Dealing"
	case PhaseDeclaring:
		return "Declaring"
	case PhaseKittySwap:
		return "KittySwap"
	case PhasePlaying:
		return "Playing"
	case PhaseScoring:
		return "Scoring"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

const numSeats = 4

// GameState is the complete state of one table: four seats, the
// current round's dealing/declaration/trick progress, and both teams'
// cumulative scores. Every engine façade operation takes a GameState
// and returns a new one; nothing in this package mutates a GameState
// that a caller still holds a reference to (spec §5).
type GameState struct {
	ID              string                `json:"id"`
	Phase           GamePhase             `json:"phase"`
	Players         [numSeats]Player      `json:"players"`
	DealerSeat      int                   `json:"dealer_seat"`
	CurrentTurn     int                   `json:"current_turn"`
	TrumpRank       Rank                  `json:"trump_rank"`
	Declarations    TrumpDeclarationState `json:"declarations"`
	Deck            *Deck                 `json:"deck,omitempty"`
	Kitty           []Card                `json:"kitty"`
	CurrentTrick    Trick                 `json:"current_trick"`
	CompletedTricks []Trick               `json:"completed_tricks"`
	TrickWinners    []string              `json:"trick_winners"`
	Teams           [2]Team               `json:"teams"`
	RoundNumber     int                   `json:"round_number"`
}

// Trump resolves the round's current TrumpInfo from the declaration
// state and the trump rank in play.
func (g GameState) Trump() TrumpInfo {
	return g.Declarations.ResolvedTrumpInfo(g.TrumpRank)
}

// PlayerByID finds a seated player, or ok=false if no seat matches.
func (g GameState) PlayerByID(id string) (Player, bool) {
	for _, p := range g.Players {
		if p.ID == id {
			return p, true
		}
	}
	return Player{}, false
}

// SeatOf returns the seat index of a player, or -1 if not seated.
func (g GameState) SeatOf(id string) int {
	for i, p := range g.Players {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// NextSeat returns the seat index of the player after seat, in
// clockwise play order.
func NextSeat(seat int) int {
	return (seat + 1) % numSeats
}

// PartnerSeat returns the seat directly across the table, the fixed
// partnership in four-player Shengji.
func PartnerSeat(seat int) int {
	return (seat + 2) % numSeats
}

// TeamOf returns the role (attacker/defender) a seat currently holds.
func (g GameState) TeamOf(seat int) TeamID {
	return g.Players[seat].Team
}

// DefendingTeam returns the partnership currently holding the
// defending role, whose CurrentRank is the rank in play this round.
func (g GameState) DefendingTeam() Team {
	for _, t := range g.Teams {
		if t.IsDefending {
			return t
		}
	}
	return Team{}
}

// Teammates returns the other players sharing a team with seat (just the
// partner, in four-player Shengji, but returned as a slice so the
// shape generalizes if the table size ever changes).
func (g GameState) Teammates(seat int) []Player {
	return []Player{g.Players[PartnerSeat(seat)]}
}

// IsRoundOver reports whether every player has emptied their hand and
// no kitty swap is pending - the round has been played out to its
// final trick.
func (g GameState) IsRoundOver() bool {
	for _, p := range g.Players {
		if len(p.Hand) > 0 {
			return false
		}
	}
	return true
}

// DeepCopy returns a fully independent copy of the state, safe for a
// façade operation to mutate internally before returning it.
func (g GameState) DeepCopy() GameState {
	next := g
	for i, p := range g.Players {
		hand := make([]Card, len(p.Hand))
		copy(hand, p.Hand)
		next.Players[i].Hand = hand
	}
	if g.Deck != nil {
		deckCopy := *g.Deck
		deckCopy.Cards = make([]Card, len(g.Deck.Cards))
		copy(deckCopy.Cards, g.Deck.Cards)
		next.Deck = &deckCopy
	}
	next.Kitty = make([]Card, len(g.Kitty))
	copy(next.Kitty, g.Kitty)

	next.CurrentTrick.Plays = make([]TrickPlay, len(g.CurrentTrick.Plays))
	for i, p := range g.CurrentTrick.Plays {
		cards := make([]Card, len(p.Cards))
		copy(cards, p.Cards)
		next.CurrentTrick.Plays[i] = TrickPlay{PlayerID: p.PlayerID, Cards: cards}
	}

	next.CompletedTricks = make([]Trick, len(g.CompletedTricks))
	for i, tr := range g.CompletedTricks {
		plays := make([]TrickPlay, len(tr.Plays))
		for j, p := range tr.Plays {
			cards := make([]Card, len(p.Cards))
			copy(cards, p.Cards)
			plays[j] = TrickPlay{PlayerID: p.PlayerID, Cards: cards}
		}
		next.CompletedTricks[i] = Trick{Plays: plays}
	}
	next.TrickWinners = append([]string(nil), g.TrickWinners...)

	if g.Declarations.Current != nil {
		cur := *g.Declarations.Current
		cur.Cards = append([]Card(nil), g.Declarations.Current.Cards...)
		next.Declarations.Current = &cur
	}
	next.Declarations.History = append([]Declaration(nil), g.Declarations.History...)

	for i, team := range g.Teams {
		next.Teams[i].Players = append([]string(nil), team.Players...)
	}

	return next
}
