// Package repository persists domain.GameState behind the envelope
// schema defined in internal/common/database: a stable id, a schema
// version, and the state itself serialized as JSON.
package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"shengji-tractor/internal/common/database"
	"shengji-tractor/internal/game/domain"

	"gorm.io/datatypes"
)

// SchemaVersion is stamped on every record this package writes, and
// checked on every record it loads. A mismatch means the on-disk
// shape predates a breaking change to domain.GameState and cannot be
// safely restored.
const SchemaVersion = 1

// ErrVersionMismatch is returned by Load when a stored record's
// version does not match SchemaVersion.
var ErrVersionMismatch = errors.New("repository: stored game record has an incompatible schema version")

// GameRepository persists and restores whole-table game state.
type GameRepository interface {
	Create(ctx context.Context, state domain.GameState) error
	Load(ctx context.Context, id string) (domain.GameState, error)
	Save(ctx context.Context, state domain.GameState) error
	Delete(ctx context.Context, id string) error
	ListInProgress(ctx context.Context, limit, offset int) ([]string, error)
}

type gameRepository struct {
	store database.Repository
}

// NewGameRepository wraps a database.Repository with GameState
// marshaling and the schema-version round-trip check spec.md §6
// requires of a persistence store.
func NewGameRepository(store database.Repository) GameRepository {
	return &gameRepository{store: store}
}

func (r *gameRepository) Create(ctx context.Context, state domain.GameState) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("repository: failed to marshal game state: %w", err)
	}

	record := &database.GameRecord{
		ID:          state.ID,
		Version:     SchemaVersion,
		RoundNumber: state.RoundNumber,
		Completed:   state.Phase == domain.PhaseGameOver,
		State:       datatypes.JSON(payload),
	}
	return r.store.CreateGame(ctx, record)
}

func (r *gameRepository) Load(ctx context.Context, id string) (domain.GameState, error) {
	record, err := r.store.GetGameByID(ctx, id)
	if err != nil {
		return domain.GameState{}, err
	}
	if record.Version != SchemaVersion {
		return domain.GameState{}, ErrVersionMismatch
	}

	var state domain.GameState
	if err := json.Unmarshal(record.State, &state); err != nil {
		return domain.GameState{}, fmt.Errorf("repository: failed to unmarshal game state: %w", err)
	}
	if state.Phase < domain.PhaseDealing || state.Phase > domain.PhaseGameOver ||
		state.CurrentTurn < 0 || state.CurrentTurn >= len(state.Players) {
		return domain.GameState{}, fmt.Errorf("repository: stored game state %s has an invalid phase or current turn", id)
	}
	return state, nil
}

func (r *gameRepository) Save(ctx context.Context, state domain.GameState) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("repository: failed to marshal game state: %w", err)
	}

	record := &database.GameRecord{
		ID:          state.ID,
		Version:     SchemaVersion,
		RoundNumber: state.RoundNumber,
		Completed:   state.Phase == domain.PhaseGameOver,
		State:       datatypes.JSON(payload),
	}
	return r.store.UpdateGame(ctx, record)
}

func (r *gameRepository) Delete(ctx context.Context, id string) error {
	return r.store.DeleteGame(ctx, id)
}

func (r *gameRepository) ListInProgress(ctx context.Context, limit, offset int) ([]string, error) {
	records, err := r.store.ListIncompleteGames(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(records))
	for i, rec := range records {
		ids[i] = rec.ID
	}
	return ids, nil
}
