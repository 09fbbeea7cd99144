package database

import (
	"context"
)

// Repository defines persistence operations over the game envelope.
// The in-progress GameState itself is serialized JSON inside
// GameRecord.State - this layer only knows about the envelope, never
// about cards or tricks.
type Repository interface {
	CreateGame(ctx context.Context, game *GameRecord) error
	GetGameByID(ctx context.Context, id string) (*GameRecord, error)
	UpdateGame(ctx context.Context, game *GameRecord) error
	DeleteGame(ctx context.Context, id string) error
	ListIncompleteGames(ctx context.Context, limit, offset int) ([]GameRecord, error)
}
