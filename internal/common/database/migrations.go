package database

import (
	"context"
	"fmt"
	"log"

	"gorm.io/gorm"
)

// MigrationManager handles database migrations.
type MigrationManager struct {
	db *gorm.DB
}

// NewMigrationManager creates a new migration manager.
func NewMigrationManager(db *gorm.DB) *MigrationManager {
	return &MigrationManager{db: db}
}

// RunMigrations executes all database migrations.
func (m *MigrationManager) RunMigrations(ctx context.Context) error {
	log.Println("Starting database migrations...")

	if err := m.enableUUIDExtension(ctx); err != nil {
		return fmt.Errorf("failed to enable UUID extension: %w", err)
	}

	models := GetAllModels()
	for _, model := range models {
		if err := m.db.WithContext(ctx).AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate model %T: %w", model, err)
		}
		log.Printf("Migrated model: %T", model)
	}

	if err := m.createIndexes(ctx); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// enableUUIDExtension enables the UUID extension in PostgreSQL. Other
// dialects (sqlite, used by the repository tests) have no such extension and
// are skipped.
func (m *MigrationManager) enableUUIDExtension(ctx context.Context) error {
	if m.db.Dialector.Name() == "postgres" {
		return m.db.WithContext(ctx).Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\"").Error
	}
	return nil
}

// createIndexes creates additional indexes for performance optimization.
func (m *MigrationManager) createIndexes(ctx context.Context) error {
	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_game_records_completed ON game_records(completed)",
		"CREATE INDEX IF NOT EXISTS idx_game_records_updated_at ON game_records(updated_at)",
	}

	for _, indexSQL := range indexes {
		if err := m.db.WithContext(ctx).Exec(indexSQL).Error; err != nil {
			log.Printf("Warning: Failed to create index: %s, Error: %v", indexSQL, err)
		}
	}

	return nil
}

// DropAllTables drops all tables (useful for testing).
func (m *MigrationManager) DropAllTables(ctx context.Context) error {
	log.Println("Dropping all tables...")

	models := GetAllModels()
	for i := len(models) - 1; i >= 0; i-- {
		if err := m.db.WithContext(ctx).Migrator().DropTable(models[i]); err != nil {
			log.Printf("Warning: Failed to drop table for model %T: %v", models[i], err)
		}
	}

	log.Println("All tables dropped successfully")
	return nil
}

// RunMigrations is a convenience function to run migrations.
func RunMigrations(db *gorm.DB) error {
	manager := NewMigrationManager(db)
	return manager.RunMigrations(context.Background())
}
