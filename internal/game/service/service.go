// Package service orchestrates the pure engine façade with the
// persistence and caching layers: every mutating call loads the
// current state (cache first, repository on a miss), applies one
// engine operation, then writes the result back to both.
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"shengji-tractor/internal/common/database"
	"shengji-tractor/internal/game/domain"
	"shengji-tractor/internal/game/engine"
	"shengji-tractor/internal/game/repository"

	"github.com/google/uuid"
)

func unmarshalState(raw string, g *domain.GameState) error {
	return json.Unmarshal([]byte(raw), g)
}

// GameService is the orchestration boundary the HTTP handler talks
// to. Every method is safe to call concurrently for different game
// ids; concurrent calls against the same id are not - the caller
// (handler) is expected to serialize per-game traffic, matching the
// engine's own purity contract of one state in, one state out.
type GameService interface {
	CreateGame(ctx context.Context, seatNames [4]string, dealerSeat int, trumpRank domain.Rank, seed int64) (domain.GameState, error)
	GetGameState(ctx context.Context, id string) (domain.GameState, error)
	DealNextCard(ctx context.Context, id string) (domain.GameState, error)
	MakeTrumpDeclaration(ctx context.Context, id string, decl domain.Declaration) (domain.GameState, error)
	PutbackKittyCards(ctx context.Context, id, playerID string, cards []domain.Card) (domain.GameState, error)
	ProcessPlay(ctx context.Context, id, playerID string, cards []domain.Card) (domain.GameState, error)
	ClearCompletedTrick(ctx context.Context, id string) (domain.GameState, error)
	EndRound(ctx context.Context, id string) (engine.RoundOutcome, error)
	PrepareNextRound(ctx context.Context, id string, seed int64) (domain.GameState, error)
	GetAIMove(ctx context.Context, id string, seat int) ([]domain.Card, error)
	GetAIKittySwap(ctx context.Context, id string, seat int) ([]domain.Card, error)
	GetAITrumpDeclaration(ctx context.Context, id string, seat int) (domain.Declaration, bool, error)
}

type gameService struct {
	repo  repository.GameRepository
	cache database.Cache
}

// NewGameService wires the engine façade to a repository and cache.
func NewGameService(repo repository.GameRepository, cache database.Cache) GameService {
	return &gameService{repo: repo, cache: cache}
}

func (s *gameService) CreateGame(ctx context.Context, seatNames [4]string, dealerSeat int, trumpRank domain.Rank, seed int64) (domain.GameState, error) {
	var players [4]domain.Player
	for i, name := range seatNames {
		players[i] = domain.Player{ID: uuid.New().String(), Name: name, SeatNo: i}
	}

	state := engine.InitializeGame(uuid.New().String(), players, dealerSeat, trumpRank, seed)
	if err := s.repo.Create(ctx, state); err != nil {
		return domain.GameState{}, fmt.Errorf("service: failed to persist new game: %w", err)
	}
	s.storeSnapshot(ctx, state)
	return state, nil
}

func (s *gameService) GetGameState(ctx context.Context, id string) (domain.GameState, error) {
	return s.load(ctx, id)
}

func (s *gameService) DealNextCard(ctx context.Context, id string) (domain.GameState, error) {
	return s.apply(ctx, id, func(g domain.GameState) (domain.GameState, error) {
		return engine.DealNextCard(g)
	})
}

func (s *gameService) MakeTrumpDeclaration(ctx context.Context, id string, decl domain.Declaration) (domain.GameState, error) {
	return s.apply(ctx, id, func(g domain.GameState) (domain.GameState, error) {
		return engine.MakeTrumpDeclaration(g, decl)
	})
}

func (s *gameService) PutbackKittyCards(ctx context.Context, id, playerID string, cards []domain.Card) (domain.GameState, error) {
	return s.apply(ctx, id, func(g domain.GameState) (domain.GameState, error) {
		return engine.PutbackKittyCards(g, playerID, cards)
	})
}

func (s *gameService) ProcessPlay(ctx context.Context, id, playerID string, cards []domain.Card) (domain.GameState, error) {
	return s.apply(ctx, id, func(g domain.GameState) (domain.GameState, error) {
		return engine.ProcessPlay(g, playerID, cards)
	})
}

func (s *gameService) ClearCompletedTrick(ctx context.Context, id string) (domain.GameState, error) {
	return s.apply(ctx, id, func(g domain.GameState) (domain.GameState, error) {
		return engine.ClearCompletedTrick(g)
	})
}

func (s *gameService) EndRound(ctx context.Context, id string) (engine.RoundOutcome, error) {
	g, err := s.load(ctx, id)
	if err != nil {
		return engine.RoundOutcome{}, err
	}
	outcome, err := engine.EndRound(g)
	if err != nil {
		return engine.RoundOutcome{}, err
	}
	if err := s.save(ctx, outcome.State); err != nil {
		return engine.RoundOutcome{}, err
	}
	return outcome, nil
}

func (s *gameService) PrepareNextRound(ctx context.Context, id string, seed int64) (domain.GameState, error) {
	return s.apply(ctx, id, func(g domain.GameState) (domain.GameState, error) {
		return engine.PrepareNextRound(g, seed)
	})
}

func (s *gameService) GetAIMove(ctx context.Context, id string, seat int) ([]domain.Card, error) {
	g, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return engine.GetAIMove(g, seat), nil
}

func (s *gameService) GetAIKittySwap(ctx context.Context, id string, seat int) ([]domain.Card, error) {
	g, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return engine.GetAIKittySwap(g, seat), nil
}

func (s *gameService) GetAITrumpDeclaration(ctx context.Context, id string, seat int) (domain.Declaration, bool, error) {
	g, err := s.load(ctx, id)
	if err != nil {
		return domain.Declaration{}, false, err
	}
	decl, ok := engine.GetAITrumpDeclaration(g, seat)
	return decl, ok, nil
}

// apply loads the current state, runs one engine operation against
// it, and persists the result - the read-mutate-write cycle every
// mutating façade call shares.
func (s *gameService) apply(ctx context.Context, id string, op func(domain.GameState) (domain.GameState, error)) (domain.GameState, error) {
	g, err := s.load(ctx, id)
	if err != nil {
		return domain.GameState{}, err
	}
	next, err := op(g)
	if err != nil {
		return domain.GameState{}, err
	}
	if err := s.save(ctx, next); err != nil {
		return domain.GameState{}, err
	}
	return next, nil
}

// load prefers the cached snapshot (it reflects every in-flight
// round's last write) and falls back to the durable repository, the
// way the teacher's warmup strategy treats Redis as the hot path.
func (s *gameService) load(ctx context.Context, id string) (domain.GameState, error) {
	if s.cache != nil {
		if raw, err := s.cache.GetGameState(ctx, id); err == nil {
			var g domain.GameState
			if jsonErr := unmarshalState(raw, &g); jsonErr == nil {
				return g, nil
			}
		}
	}
	return s.repo.Load(ctx, id)
}

func (s *gameService) save(ctx context.Context, g domain.GameState) error {
	if err := s.repo.Save(ctx, g); err != nil {
		return fmt.Errorf("service: failed to persist game state: %w", err)
	}
	s.storeSnapshot(ctx, g)
	return nil
}

func (s *gameService) storeSnapshot(ctx context.Context, g domain.GameState) {
	if s.cache == nil {
		return
	}
	_ = s.cache.SetGameState(ctx, g.ID, g, database.DefaultGameStateTTL)
	_ = s.cache.SetTTL(ctx, database.GameStateKeyPrefix+g.ID, cacheTTLFor(g))
}

func cacheTTLFor(g domain.GameState) time.Duration {
	if g.Phase == domain.PhaseGameOver {
		return time.Minute
	}
	return database.DefaultGameStateTTL
}
