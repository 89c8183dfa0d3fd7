package main

import (
	"context"
	"fmt"

	"github.com/lushkiwi/UT-Marketplace/internal/config"
	"github.com/lushkiwi/UT-Marketplace/internal/handler"
	"github.com/lushkiwi/UT-Marketplace/internal/logger"
	"github.com/lushkiwi/UT-Marketplace/internal/server"
	"github.com/lushkiwi/UT-Marketplace/internal/service"
	"github.com/lushkiwi/UT-Marketplace/internal/store"
	"github.com/lushkiwi/UT-Marketplace/internal/utils"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("marketplace-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().
		Str("http_address", cfg.Server.HTTPAddress).
		Str("version", cfg.App.Version).
		Msg("received configs")

	// the hasher pool backs the message integrity middleware
	utils.InitHasherPool(cfg.App.HashKey)

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	services, err := service.NewServices(storages, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

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
