// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/worklog-auth/internal/logger"
	"github.com/MKhiriev/worklog-auth/internal/utils"
	"github.com/MKhiriev/worklog-auth/internal/validators"
	"github.com/MKhiriev/worklog-auth/models"
)

func writeData(w http.ResponseWriter, r *http.Request, status int, data any) {
	if _, err := utils.WriteJSON(w, models.Response{Success: true, Data: data}, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}

// writeError answers with the status mapped from err. Server-side failures
// are reported with a generic message; the cause only goes to the log.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, target := statusFromError(err)

	message := http.StatusText(status)
	if target != nil && status < http.StatusInternalServerError {
		message = target.Error()
	}

	var details any
	var verr *validators.ValidationError
	if errors.As(err, &verr) {
		details = verr.Fields
	}

	if status >= http.StatusInternalServerError {
		logger.FromRequest(r).Err(err).Int("status", status).Msg("request failed")
	}

	writeErrorMessage(w, r, status, message, details)
}

func writeErrorMessage(w http.ResponseWriter, r *http.Request, status int, message string, details any) {
	body := models.Response{Error: &models.Error{Message: message, Details: details}}
	if _, err := utils.WriteJSON(w, body, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}

// decodeJSON reads a JSON body of at most maxBodyBytes into v.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, ErrNotFound)
}
