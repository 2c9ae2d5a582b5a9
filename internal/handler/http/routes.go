// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/worklog-auth/models"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
		r.Post("/api/auth/logout", h.logout)
		r.Post("/api/auth/refresh", h.refresh)

		r.With(h.optionalAuthenticate).Get("/api/version", h.getServerVersion)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.authenticate)

		r.Get("/api/auth/me", h.me)
		r.With(h.checkOwnership).Get("/api/users/{userId}", h.getUser)
		r.With(h.authorize(models.RoleAdmin, models.RoleSystemAdmin)).
			Post("/api/admin/sessions/purge", h.purgeExpiredSessions)
	})

	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.checkHTTPMethod(router))

	return router
}
