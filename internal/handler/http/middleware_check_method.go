// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// checkHTTPMethod is registered as the router's MethodNotAllowed handler.
// A request whose path is known but whose method is not answers 404 with the
// regular error envelope instead of chi's 405, so unsupported methods do not
// reveal which routes exist.
//
// Matching goes through [chi.Mux.Match], so parameterised patterns such as
// /api/users/{userId} are resolved the same way the router resolves them.
func (h *Handler) checkHTTPMethod(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if router.Match(chi.NewRouteContext(), r.Method, r.URL.Path) {
			router.ServeHTTP(w, r)
			return
		}

		h.notFound(w, r)
	}
}
