// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server defines the lifecycle contract of the application server.
type Server interface {
	// RunServer serves until SIGTERM, SIGINT or SIGQUIT is received and
	// then shuts down gracefully.
	RunServer()

	// Run serves until ctx is cancelled or the listener fails. It returns
	// only after the HTTP server and all workers have stopped.
	Run(ctx context.Context) error

	// Shutdown gracefully stops the HTTP server.
	Shutdown()
}
