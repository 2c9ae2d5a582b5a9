// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/worklog-auth/internal/logger"
	"github.com/MKhiriev/worklog-auth/internal/service"
)

// SessionReaper periodically deletes expired refresh sessions. Login only
// removes the expired sessions of the user logging in, so without the
// reaper rows of users who never come back stay forever.
type SessionReaper struct {
	sessionService service.SessionService
	interval       time.Duration

	logger *logger.Logger
}

func NewSessionReaper(sessionService service.SessionService, interval time.Duration, logger *logger.Logger) *SessionReaper {
	return &SessionReaper{
		sessionService: sessionService,
		interval:       interval,
		logger:         logger,
	}
}

// Run sweeps once per interval until ctx is cancelled. A failed sweep is
// logged and retried on the next tick.
func (r *SessionReaper) Run(ctx context.Context) {
	t := time.NewTicker(r.interval)
	defer t.Stop()

	ctx = r.logger.WithContext(ctx)
	for {
		select {
		case <-ctx.Done():
			r.logger.Info().Msg("session reaper stopped")
			return
		case <-t.C:
			if _, err := r.sessionService.PurgeExpiredSessions(ctx); err != nil {
				r.logger.Err(err).Str("func", "*SessionReaper.Run").Msg("session sweep failed")
			}
		}
	}
}
