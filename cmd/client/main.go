// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/MKhiriev/worklog-auth/internal/adapter"
	"github.com/MKhiriev/worklog-auth/internal/config"
	"github.com/MKhiriev/worklog-auth/internal/logger"
	"github.com/MKhiriev/worklog-auth/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	// stdout is reserved for command output
	fmt.Fprint(os.Stderr, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewClientLogger("worklog-auth-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = log.SetLevel(cfg.LogLevel); err != nil {
		log.Warn().Err(err).Str("level", cfg.LogLevel).Msg("unknown log level, keeping debug")
	}

	authAdapter, err := adapter.NewHTTPAuthAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create http adapter")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err = run(ctx, authAdapter, os.Args[1:], os.Stdout); err != nil {
		stop()
		log.Fatal().Err(err).Msg("client run error")
	}
}
