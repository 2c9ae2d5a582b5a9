// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/worklog-auth/internal/config"
	"github.com/MKhiriev/worklog-auth/internal/crypto"
	"github.com/MKhiriev/worklog-auth/internal/logger"
	"github.com/MKhiriev/worklog-auth/internal/store"
	"github.com/MKhiriev/worklog-auth/internal/token"
)

type Services struct {
	AuthService    AuthService
	SessionService SessionService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	issuer, err := token.NewIssuer(cfg.App)
	if err != nil {
		return nil, fmt.Errorf("error creating token issuer: %w", err)
	}

	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		AuthService:    NewAuthService(storages, issuer, crypto.NewBcryptHasher(cfg.App.PasswordCost), logger),
		SessionService: NewSessionService(storages.SessionRepository, logger),
		AppInfoService: appInfoService,
	}, nil
}
