// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/MKhiriev/worklog-auth/internal/config"
	"github.com/MKhiriev/worklog-auth/internal/logger"
	"github.com/MKhiriev/worklog-auth/internal/service"
	"github.com/MKhiriev/worklog-auth/internal/validators"
)

// maxBodyBytes caps every JSON request body.
const maxBodyBytes = 1 << 20

type Handler struct {
	services  *service.Services
	validator validators.Validator

	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		validator:      validators.NewAuthRequestValidator(),
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}
}
