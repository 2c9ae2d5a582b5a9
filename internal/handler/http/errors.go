// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrTokenRequired is returned when the "Authorization" header is absent
	// or carries the Bearer scheme with no token after it.
	ErrTokenRequired = errors.New("token required")

	// ErrBadFormat is returned when the "Authorization" header does not use
	// the Bearer scheme.
	ErrBadFormat = errors.New("bad format")

	ErrAuthenticationRequired  = errors.New("authentication required")
	ErrInsufficientPermissions = errors.New("insufficient permissions")
	ErrOwnResourceOnly         = errors.New("own resource only")

	ErrInvalidJSON = errors.New("invalid JSON was passed")
	ErrNotFound    = errors.New("not found")
)
