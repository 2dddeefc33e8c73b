// Command seed populates the database with fixture data from a directory of
// JSON files. The directory is taken from the -data flag or the SEED_DATA_DIR
// environment variable.
package main

import (
	"context"

	"github.com/joho/godotenv"

	"github.com/MKhiriev/go-biz-reviews/internal/config"
	"github.com/MKhiriev/go-biz-reviews/internal/logger"
	"github.com/MKhiriev/go-biz-reviews/internal/seed"
	"github.com/MKhiriev/go-biz-reviews/internal/store"
)

func main() {
	_ = godotenv.Load()

	log := logger.NewLogger("biz-reviews-seed")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if cfg.Seed.DataDir == "" {
		log.Fatal().Msg("no seed data directory configured")
	}

	ctx := context.Background()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error running migrations")
	}

	repositories := store.NewRepositories(db, log)
	loader := seed.NewLoader(repositories, cfg.Seed.DataDir, log)

	if err := loader.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("seeding failed")
	}

	log.Info().Str("dir", cfg.Seed.DataDir).Msg("database seeded")
}
