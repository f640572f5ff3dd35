package main

import (
	"context"
	"fmt"

	"github.com/rta-cma/camtrack/internal/authz"
	"github.com/rta-cma/camtrack/internal/config"
	httphandler "github.com/rta-cma/camtrack/internal/handler/http"
	"github.com/rta-cma/camtrack/internal/logger"
	"github.com/rta-cma/camtrack/internal/server"
	"github.com/rta-cma/camtrack/internal/service"
	"github.com/rta-cma/camtrack/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("camtrack-server")
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

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	repos := store.NewRepositories(db, log)
	evaluator := authz.NewEvaluator()
	services := service.NewServices(repos, evaluator, cfg.App, log)
	handler := httphandler.NewHandler(services, cfg.Query, log)

	srv, err := server.NewServer(handler.Init(), cfg.Server, log)
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
