package main

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"

	"github.com/MKhiriev/go-biz-reviews/internal/config"
	myHTTP "github.com/MKhiriev/go-biz-reviews/internal/handler/http"
	"github.com/MKhiriev/go-biz-reviews/internal/logger"
	"github.com/MKhiriev/go-biz-reviews/internal/server"
	"github.com/MKhiriev/go-biz-reviews/internal/service"
	"github.com/MKhiriev/go-biz-reviews/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	// a missing .env file is fine; the environment may be set directly
	_ = godotenv.Load()

	log := logger.NewLogger("biz-reviews-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

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
	services := service.NewServices(repositories, cfg.App, log)
	handler := myHTTP.NewHandler(services, log)

	srv, err := server.NewServer(handler, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
