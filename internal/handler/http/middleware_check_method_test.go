// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/worklog-auth/internal/logger"
)

// buildMethodRouter creates a minimal chi.Mux without services.
func buildMethodRouter() *chi.Mux {
	h := &Handler{logger: logger.Nop()}
	router := chi.NewRouter()

	router.Get("/api/sessions", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("sessions"))
	})
	router.Post("/api/sessions", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})
	router.Get("/api/users/{userId}", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(chi.URLParam(r, "userId")))
	})

	router.MethodNotAllowed(h.checkHTTPMethod(router))
	return router
}

func TestCheckHTTPMethod(t *testing.T) {
	router := buildMethodRouter()

	tests := []struct {
		method   string
		path     string
		status   int
		body     string
		envelope bool
	}{
		{method: http.MethodGet, path: "/api/sessions", status: http.StatusOK, body: "sessions"},
		{method: http.MethodPost, path: "/api/sessions", status: http.StatusCreated},
		{method: http.MethodGet, path: "/api/users/u-42", status: http.StatusOK, body: "u-42"},
		{method: http.MethodDelete, path: "/api/sessions", status: http.StatusNotFound, envelope: true},
		{method: http.MethodPatch, path: "/api/sessions", status: http.StatusNotFound, envelope: true},
		{method: http.MethodPost, path: "/api/users/u-42", status: http.StatusNotFound, envelope: true},
		{method: http.MethodDelete, path: "/api/users/u-42", status: http.StatusNotFound, envelope: true},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.status, rr.Code)
			assert.NotEqual(t, http.StatusMethodNotAllowed, rr.Code)
			if tt.body != "" {
				assert.Equal(t, tt.body, rr.Body.String())
			}
			if tt.envelope {
				assert.JSONEq(t, `{"success":false,"error":{"message":"not found"}}`, rr.Body.String())
			}
		})
	}
}
