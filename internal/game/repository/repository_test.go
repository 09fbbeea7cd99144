package repository

import (
	"context"
	"testing"

	"shengji-tractor/internal/common/database"
	"shengji-tractor/internal/game/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupRepo(t *testing.T) GameRepository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, database.NewMigrationManager(db).RunMigrations(context.Background()))
	return NewGameRepository(database.NewGormRepository(db))
}

func TestGameRepository_CreateLoadRoundTrip(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	state := domain.GameState{ID: "g1", Phase: domain.PhaseDealing, TrumpRank: domain.Two, RoundNumber: 1}
	require.NoError(t, repo.Create(ctx, state))

	loaded, err := repo.Load(ctx, "g1")
	assert.NoError(t, err)
	assert.Equal(t, state.ID, loaded.ID)
	assert.Equal(t, state.Phase, loaded.Phase)
	assert.Equal(t, state.TrumpRank, loaded.TrumpRank)
}

func TestGameRepository_SaveUpdatesExistingRecord(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	state := domain.GameState{ID: "g1", Phase: domain.PhaseDealing, RoundNumber: 1}
	require.NoError(t, repo.Create(ctx, state))

	state.Phase = domain.PhasePlaying
	state.RoundNumber = 2
	require.NoError(t, repo.Save(ctx, state))

	loaded, err := repo.Load(ctx, "g1")
	assert.NoError(t, err)
	assert.Equal(t, domain.PhasePlaying, loaded.Phase)
	assert.Equal(t, 2, loaded.RoundNumber)
}

func TestGameRepository_ListInProgressExcludesCompleted(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, domain.GameState{ID: "active", Phase: domain.PhasePlaying}))
	require.NoError(t, repo.Create(ctx, domain.GameState{ID: "done", Phase: domain.PhaseGameOver}))

	ids, err := repo.ListInProgress(ctx, 10, 0)
	assert.NoError(t, err)
	assert.Equal(t, []string{"active"}, ids)
}

func TestGameRepository_LoadRejectsVersionMismatch(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, database.NewMigrationManager(db).RunMigrations(context.Background()))
	store := database.NewGormRepository(db)

	require.NoError(t, store.CreateGame(context.Background(), &database.GameRecord{
		ID:      "stale",
		Version: SchemaVersion + 1,
		State:   []byte(`{}`),
	}))

	repo := NewGameRepository(store)
	_, err = repo.Load(context.Background(), "stale")
	assert.ErrorIs(t, err, ErrVersionMismatch)
}
