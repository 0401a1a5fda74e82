package main

import (
	"log"

	"exambook/internal/config"
	"exambook/internal/database"
	"exambook/internal/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Logger)
	l := logger.Get()
	defer l.Sync()

	if cfg.Storage.Backend != "sqlite" {
		log.Fatalf("Migrations only apply to the sqlite backend, got %q", cfg.Storage.Backend)
	}

	if err := database.RunMigrations(cfg.Storage.SQLite.Path, "database/migrations"); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	l.Info("Migrations completed successfully")
}
