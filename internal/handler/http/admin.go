// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/worklog-auth/models"
)

func (h *Handler) purgeExpiredSessions(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.services.SessionService.PurgeExpiredSessions(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, r, http.StatusOK, models.PurgeResponse{Deleted: deleted})
}
