// Command simulate drives an entire unattended game through the
// engine façade: every seat is played by the AI pipeline, round after
// round, until a partnership's rank advances past Ace or a round limit
// is reached. It exercises exactly the operations a human-driven client
// would call, with no HTTP or persistence layer in the way.
package main

import (
	"flag"
	"fmt"
	"log"

	"shengji-tractor/internal/game/domain"
	"shengji-tractor/internal/game/engine"
)

func main() {
	seed := flag.Int64("seed", 1, "deck shuffle seed for the first round")
	maxRounds := flag.Int("rounds", 50, "stop after this many rounds even if the game hasn't ended")
	flag.Parse()

	seats := [4]domain.Player{
		{ID: "north", Name: "North"},
		{ID: "east", Name: "East"},
		{ID: "south", Name: "South"},
		{ID: "west", Name: "West"},
	}

	g := engine.InitializeGame("simulation", seats, 0, domain.Two, *seed)

	rounds := 0
	for rounds < *maxRounds && g.Phase != domain.PhaseGameOver {
		rounds++
		var err error
		g, err = playRound(g, *seed+int64(rounds))
		if err != nil {
			log.Fatalf("round %d: rule violation: %v", rounds, err)
		}

		outcome, err := engine.EndRound(g)
		if err != nil {
			log.Fatalf("round %d: failed to score: %v", rounds, err)
		}
		g = outcome.State
		fmt.Printf("round %d: %s advanced %d rank(s), attacker points %d, trump rank now %s\n",
			rounds, outcome.Result.AdvancingTeam, outcome.Result.RanksAdvanced, outcome.Result.AttackerPoints, g.TrumpRank)

		if g.Phase != domain.PhaseGameOver {
			g, err = engine.PrepareNextRound(g, *seed+int64(rounds)+1000)
			if err != nil {
				log.Fatalf("round %d: failed to prepare next round: %v", rounds, err)
			}
		}
	}

	fmt.Printf("\nsimulation finished after %d round(s)\n", rounds)
	for _, team := range g.Teams {
		status := "attacking"
		if team.IsDefending {
			status = "defending"
		}
		fmt.Printf("partnership %v: rank %s, currently %s\n", team.Players, team.CurrentRank, status)
	}
	if g.Phase == domain.PhaseGameOver {
		fmt.Println("a partnership's rank passed Ace: game over")
	} else {
		fmt.Println("round limit reached before the game concluded")
	}
}

// playRound deals a full round, lets the declaring seat's AI bury the
// kitty, then plays every trick to completion with GetAIMove.
func playRound(g domain.GameState, seed int64) (domain.GameState, error) {
	var err error
	for g.Deck.Remaining() > 0 {
		g, err = engine.DealNextCard(g)
		if err != nil {
			return g, fmt.Errorf("dealing: %w", err)
		}
	}

	declarer := g.CurrentTurn
	putBack := engine.GetAIKittySwap(g, declarer)
	g, err = engine.PutbackKittyCards(g, g.Players[declarer].ID, putBack)
	if err != nil {
		return g, fmt.Errorf("kitty exchange: %w", err)
	}

	for !g.IsRoundOver() {
		for i := 0; i < 4; i++ {
			seat := g.CurrentTurn
			move := engine.GetAIMove(g, seat)
			g, err = engine.ProcessPlay(g, g.Players[seat].ID, move)
			if err != nil {
				return g, fmt.Errorf("seat %d play: %w", seat, err)
			}
		}
		g, err = engine.ClearCompletedTrick(g)
		if err != nil {
			return g, fmt.Errorf("clearing trick: %w", err)
		}
	}

	return g, nil
}
