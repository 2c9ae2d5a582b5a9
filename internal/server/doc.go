// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server wires and runs the application's HTTP server together with
// its background workers.
//
// It owns the lifecycle of both: startup, signal handling, and graceful
// shutdown, during which in-flight requests are drained and every worker is
// waited for before the process exits.
package server
