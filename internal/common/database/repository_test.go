package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) (*gorm.DB, Repository) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	migrationManager := NewMigrationManager(db)
	err = migrationManager.RunMigrations(context.Background())
	require.NoError(t, err)

	repo := NewGormRepository(db)
	return db, repo
}

func TestGameRepository_CreateAndGet(t *testing.T) {
	_, repo := setupTestDB(t)
	ctx := context.Background()

	game := &GameRecord{
		Version:     1,
		RoundNumber: 1,
		State:       datatypes.JSON(`{"phase":"Dealing"}`),
	}

	err := repo.CreateGame(ctx, game)
	assert.NoError(t, err)
	assert.NotEmpty(t, game.ID)
	assert.NotZero(t, game.CreatedAt)

	retrieved, err := repo.GetGameByID(ctx, game.ID)
	assert.NoError(t, err)
	assert.Equal(t, game.RoundNumber, retrieved.RoundNumber)
	assert.JSONEq(t, `{"phase":"Dealing"}`, string(retrieved.State))
}

func TestGameRepository_Update(t *testing.T) {
	_, repo := setupTestDB(t)
	ctx := context.Background()

	game := &GameRecord{Version: 1, State: datatypes.JSON(`{"phase":"Dealing"}`)}
	require.NoError(t, repo.CreateGame(ctx, game))

	game.State = datatypes.JSON(`{"phase":"Playing"}`)
	game.RoundNumber = 2
	require.NoError(t, repo.UpdateGame(ctx, game))

	retrieved, err := repo.GetGameByID(ctx, game.ID)
	assert.NoError(t, err)
	assert.Equal(t, 2, retrieved.RoundNumber)
	assert.JSONEq(t, `{"phase":"Playing"}`, string(retrieved.State))
}

func TestGameRepository_Delete(t *testing.T) {
	_, repo := setupTestDB(t)
	ctx := context.Background()

	game := &GameRecord{Version: 1, State: datatypes.JSON(`{}`)}
	require.NoError(t, repo.CreateGame(ctx, game))

	require.NoError(t, repo.DeleteGame(ctx, game.ID))

	_, err := repo.GetGameByID(ctx, game.ID)
	assert.Error(t, err)
}

func TestGameRepository_ListIncompleteGames(t *testing.T) {
	_, repo := setupTestDB(t)
	ctx := context.Background()

	done := &GameRecord{Version: 1, Completed: true, State: datatypes.JSON(`{}`)}
	inProgress := &GameRecord{Version: 1, Completed: false, State: datatypes.JSON(`{}`)}
	require.NoError(t, repo.CreateGame(ctx, done))
	require.NoError(t, repo.CreateGame(ctx, inProgress))

	games, err := repo.ListIncompleteGames(ctx, 10, 0)
	assert.NoError(t, err)
	assert.Len(t, games, 1)
	assert.Equal(t, inProgress.ID, games[0].ID)
}
