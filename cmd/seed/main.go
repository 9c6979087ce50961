package main

import (
	"os"

	"family-planner/infrastructure/postgres"
	"family-planner/pkg/config"
	"family-planner/pkg/logger"
)

// Seeds the database with the household members and a starter week of
// chores. Safe to re-run; it only fills empty tables.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}

	if err := logger.Init(logger.DefaultConfig()); err != nil {
		panic("Failed to init logger: " + err.Error())
	}

	db, err := postgres.NewDatabase(postgres.DatabaseConfig{
		Host:       cfg.Database.Host,
		Port:       cfg.Database.Port,
		User:       cfg.Database.User,
		Password:   cfg.Database.Password,
		DBName:     cfg.Database.DBName,
		SSLMode:    cfg.Database.SSLMode,
		LogQueries: cfg.IsDevelopment(),
	})
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	if err := postgres.Migrate(db); err != nil {
		logger.Error("Failed to migrate database", "error", err)
		os.Exit(1)
	}

	if err := postgres.Seed(db); err != nil {
		logger.Error("Failed to seed database", "error", err)
		os.Exit(1)
	}

	logger.Info("Database seeded", "db", cfg.Database.DBName)
}
