package database

import (
	"time"

	"gorm.io/datatypes"
)

// GameRecord is the persistence envelope for one game: a stable id, a
// schema version for safe round-tripping, and the serialized
// domain.GameState itself. Everything about who is playing lives
// inside State — there is no separate user/room schema to join
// against.
type GameRecord struct {
	ID          string         `json:"id" gorm:"type:varchar(36);primaryKey"`
	Version     int            `json:"version" gorm:"not null"`
	RoundNumber int            `json:"round_number"`
	Completed   bool           `json:"completed" gorm:"default:false"`
	State       datatypes.JSON `json:"state" gorm:"type:jsonb;not null"`
	CreatedAt   time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
}

// GetAllModels returns every model the migration manager should
// auto-migrate.
func GetAllModels() []interface{} {
	return []interface{}{
		&GameRecord{},
	}
}
