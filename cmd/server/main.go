package main

import (
	"context"
	"fmt"

	"github.com/bestbytes/movie-review-api/internal/config"
	handlerhttp "github.com/bestbytes/movie-review-api/internal/handler/http"
	"github.com/bestbytes/movie-review-api/internal/logger"
	"github.com/bestbytes/movie-review-api/internal/server"
	"github.com/bestbytes/movie-review-api/internal/service"
	"github.com/bestbytes/movie-review-api/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("movie-review-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	storages := store.NewStorages(cfg.Storage, log)

	services, err := service.NewServices(context.Background(), storages, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handler := handlerhttp.NewHandler(services, log)

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
