// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/worklog-auth/internal/utils"
)

// getUser returns the public profile named by the {userId} path parameter.
// checkOwnership rejects foreign ids before the service is reached; the
// service repeats the check for callers outside this router.
func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	principal, ok := utils.PrincipalFromContext(ctx)
	if !ok {
		writeError(w, r, ErrAuthenticationRequired)
		return
	}

	user, err := h.services.AuthService.GetUser(ctx, principal, chi.URLParam(r, userIDParam))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, r, http.StatusOK, user)
}
