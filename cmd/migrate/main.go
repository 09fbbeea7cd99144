package main

import (
	"log"

	"shengji-tractor/internal/common/config"
	"shengji-tractor/internal/common/database"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg := config.Load()

	db, err := database.NewPostgresConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	log.Println("Starting manual database migrations...")

	tables := []string{
		`CREATE TABLE IF NOT EXISTS game_records (
			id VARCHAR(36) PRIMARY KEY,
			version INTEGER NOT NULL,
			round_number INTEGER DEFAULT 0,
			completed BOOLEAN DEFAULT FALSE,
			state JSONB NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_game_records_completed ON game_records(completed)`,
		`CREATE INDEX IF NOT EXISTS idx_game_records_updated_at ON game_records(updated_at)`,
	}

	for _, table := range tables {
		if err := db.Exec(table).Error; err != nil {
			log.Printf("Warning: Failed to create table/index: %v", err)
		}
	}

	log.Println("Manual database migrations completed successfully")
}
