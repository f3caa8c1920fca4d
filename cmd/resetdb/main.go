// Command resetdb drops every storefront table, recreates the schema and
// loads the sample catalog again. All carts and subscribers are lost.
package main

import (
	"langnghe/internal/config"
	"langnghe/internal/repositories"
	"langnghe/internal/seed"
	"langnghe/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("Invalid configuration")
	}
	logger.Init(logger.Options{Production: cfg.IsProduction()})

	if cfg.IsProduction() {
		logger.Fatal().Msg("Refusing to reset the database in production")
	}

	store, err := repositories.Open(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to open storage")
	}
	defer store.Close()

	db, ok := store.(*repositories.GORMStorage)
	if !ok {
		logger.Fatal().Str("storage", store.Name()).Msg("Nothing to reset, DATABASE_URL does not point to a database")
	}

	logger.Warn().Str("storage", db.Name()).Msg("Dropping all tables")
	if err := db.Reset(); err != nil {
		logger.Fatal().Err(err).Msg("Reset failed")
	}
	if err := seed.Run(db); err != nil {
		logger.Fatal().Err(err).Msg("Seeding failed")
	}
	logger.Info().Msg("Database reset complete")
}
