// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/worklog-auth/internal/service"
	"github.com/MKhiriev/worklog-auth/internal/validators"
)

var errorStatusMap = map[error]int{
	validators.ErrValidation: http.StatusBadRequest,
	ErrInvalidJSON:           http.StatusBadRequest,

	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrInvalidRefreshToken:     http.StatusUnauthorized,
	service.ErrRefreshTokenExpired:     http.StatusUnauthorized,
	service.ErrTokenExpired:            http.StatusUnauthorized,
	service.ErrTokenInvalid:            http.StatusUnauthorized,
	service.ErrTokenVerificationFailed: http.StatusUnauthorized,
	ErrTokenRequired:                   http.StatusUnauthorized,
	ErrBadFormat:                       http.StatusUnauthorized,
	ErrAuthenticationRequired:          http.StatusUnauthorized,

	service.ErrForbidden:       http.StatusForbidden,
	ErrInsufficientPermissions: http.StatusForbidden,
	ErrOwnResourceOnly:         http.StatusForbidden,

	service.ErrUserNotFound: http.StatusNotFound,
	ErrNotFound:             http.StatusNotFound,

	service.ErrEmailAlreadyInUse: http.StatusConflict,

	service.ErrHashing:  http.StatusInternalServerError,
	service.ErrInternal: http.StatusInternalServerError,
}

// statusFromError returns the HTTP status of err together with the
// sentinel it matched, or 500 and nil for unknown errors.
func statusFromError(err error) (int, error) {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status, target
		}
	}
	return http.StatusInternalServerError, nil
}
