package database

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormRepository implements Repository using GORM.
type gormRepository struct {
	db *gorm.DB
}

// NewGormRepository creates a new GORM-backed repository instance.
func NewGormRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) CreateGame(ctx context.Context, game *GameRecord) error {
	if game.ID == "" {
		game.ID = uuid.New().String()
	}
	return r.db.WithContext(ctx).Create(game).Error
}

func (r *gormRepository) GetGameByID(ctx context.Context, id string) (*GameRecord, error) {
	var game GameRecord
	err := r.db.WithContext(ctx).First(&game, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &game, nil
}

func (r *gormRepository) UpdateGame(ctx context.Context, game *GameRecord) error {
	return r.db.WithContext(ctx).Save(game).Error
}

func (r *gormRepository) DeleteGame(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&GameRecord{}, "id = ?", id).Error
}

func (r *gormRepository) ListIncompleteGames(ctx context.Context, limit, offset int) ([]GameRecord, error) {
	var games []GameRecord
	err := r.db.WithContext(ctx).
		Where("completed = ?", false).
		Order("updated_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&games).Error
	return games, err
}
