// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/worklog-auth/internal/utils"
	"github.com/MKhiriev/worklog-auth/models"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	response := models.VersionResponse{
		Version: h.services.AppInfoService.GetAppVersion(ctx),
	}
	if principal, ok := utils.PrincipalFromContext(ctx); ok {
		response.Viewer = &principal
	}

	writeData(w, r, http.StatusOK, response)
}
