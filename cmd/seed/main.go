// Command seed loads the sample catalog into the configured database. It is
// a no-op when the catalog already has categories.
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

	if cfg.DatabaseURL == "" {
		logger.Fatal().Msg("DATABASE_URL is not set, the in-memory backend is seeded at server start")
	}

	store, err := repositories.Open(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to open storage")
	}
	defer store.Close()

	if err := seed.Run(store); err != nil {
		logger.Fatal().Err(err).Msg("Seeding failed")
	}
	logger.Info().Str("storage", store.Name()).Msg("Seeding finished")
}
