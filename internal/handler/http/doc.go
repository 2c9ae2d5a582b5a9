// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the auth service.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Cross-cutting concerns such as request tracing, access logging, panic
// recovery, request timeouts, bearer-token authentication, role checks and
// ownership checks are handled in this package before requests are delegated
// to the service layer. Every body produced here is a [models.Response]
// envelope.
package http
