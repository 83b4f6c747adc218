// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-crm-sync/internal/config"
	"github.com/MKhiriev/go-crm-sync/internal/handler"
	"github.com/MKhiriev/go-crm-sync/internal/logger"
	"github.com/MKhiriev/go-crm-sync/internal/server"
	"github.com/MKhiriev/go-crm-sync/internal/service"
	"github.com/MKhiriev/go-crm-sync/internal/store"
	"github.com/MKhiriev/go-crm-sync/internal/utils"
	"github.com/MKhiriev/go-crm-sync/internal/workers"
	"github.com/MKhiriev/go-crm-sync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	build := printBuildInfo()

	log := logger.NewLogger("go-crm-sync")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	cipher, err := utils.NewTokenCipher([]byte(cfg.App.TokenEncryptionKey))
	if err != nil {
		log.Fatal().Err(err).Msg("error creating token cipher")
	}

	repos := store.NewRepositories(db, cipher, log)

	services, err := service.NewServices(repos, *cfg, build, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, db, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	scheduler := workers.NewSyncScheduler(repos.CredentialRepository, services.SyncEngine, *cfg, log)

	srv, err := server.NewServer(handlers, cfg.Server, log, workers.NewWorkers(scheduler))
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(ctx); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
	}
}

func printBuildInfo() models.AppBuildInfo {
	if buildVersion == "" {
		buildVersion = models.BuildValueUnknown
	}

	if buildDate == "" {
		buildDate = models.BuildValueUnknown
	}

	if buildCommit == "" {
		buildCommit = models.BuildValueUnknown
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)

	return models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
}
