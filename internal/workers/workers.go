// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/worklog-auth/internal/config"
	"github.com/MKhiriev/worklog-auth/internal/logger"
	"github.com/MKhiriev/worklog-auth/internal/service"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the workers enabled by cfg. The session reaper only
// runs when a sweep interval is configured.
func NewWorkers(services *service.Services, cfg config.Workers, logger *logger.Logger) *Workers {
	w := &Workers{}

	if cfg.SessionSweepInterval > 0 {
		w.workers = append(w.workers, NewSessionReaper(services.SessionService, cfg.SessionSweepInterval, logger))
		logger.Info().Dur("interval", cfg.SessionSweepInterval).Msg("session reaper enabled")
	}

	return w
}

// Add registers an additional worker.
func (w *Workers) Add(worker Worker) {
	w.workers = append(w.workers, worker)
}

// Len reports how many workers are registered.
func (w *Workers) Len() int {
	return len(w.workers)
}

// Run starts every worker in its own goroutine and blocks until all of
// them have returned.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Go(func() {
			worker.Run(ctx)
		})
	}
	wg.Wait()
}
