// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/worklog-auth/internal/config"
	"github.com/MKhiriev/worklog-auth/internal/handler"
	"github.com/MKhiriev/worklog-auth/internal/logger"
	"github.com/MKhiriev/worklog-auth/internal/server"
	"github.com/MKhiriev/worklog-auth/internal/service"
	"github.com/MKhiriev/worklog-auth/internal/store"
	"github.com/MKhiriev/worklog-auth/internal/workers"
	"github.com/MKhiriev/worklog-auth/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	log := logger.NewLogger("worklog-auth-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = log.SetLevel(cfg.App.LogLevel); err != nil {
		log.Warn().Err(err).Str("level", cfg.App.LogLevel).Msg("unknown log level, keeping debug")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	db, err := store.NewConnect(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if !cfg.Storage.DB.SkipMigrations {
		if err = db.Migrate(); err != nil {
			log.Fatal().Err(err).Msg("error applying migrations")
		}
	}

	services, err := service.NewServices(store.NewStorages(db), *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, workers.NewWorkers(services, cfg.Workers, log), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
