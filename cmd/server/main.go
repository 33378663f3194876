package main

import (
	"context"
	"fmt"

	"github.com/ddanshin/staffdir/internal/config"
	"github.com/ddanshin/staffdir/internal/handler"
	"github.com/ddanshin/staffdir/internal/identity"
	"github.com/ddanshin/staffdir/internal/logger"
	"github.com/ddanshin/staffdir/internal/server"
	"github.com/ddanshin/staffdir/internal/service"
	"github.com/ddanshin/staffdir/internal/store"
	"github.com/ddanshin/staffdir/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("staffdir-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	db, err := store.NewConnectPostgres(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}

	if err := migrations.Migrate(db.DB); err != nil {
		log.Fatal().Err(err).Msg("error running database migrations")
	}

	identityClient, err := identity.NewHTTPClient(cfg.Identity, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating identity client")
	}

	storages := store.NewStorages(db, log)
	services := service.NewServices(storages, identityClient, cfg, log)

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
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
