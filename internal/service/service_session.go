// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/worklog-auth/internal/logger"
	"github.com/MKhiriev/worklog-auth/internal/store"
)

type sessionService struct {
	sessionRepository store.SessionRepository
	now               func() time.Time

	logger *logger.Logger
}

func NewSessionService(sessionRepository store.SessionRepository, logger *logger.Logger) SessionService {
	return &sessionService{
		sessionRepository: sessionRepository,
		now:               time.Now,
		logger:            logger,
	}
}

func (s *sessionService) PurgeExpiredSessions(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	deleted, err := s.sessionRepository.DeleteExpiredSessions(ctx, s.now().UTC())
	if err != nil {
		log.Err(err).Str("func", "*sessionService.PurgeExpiredSessions").Msg("expired sessions purge failed")
		return 0, internal(err)
	}

	log.Info().Int64("deleted", deleted).Msg("expired sessions purged")
	return deleted, nil
}
