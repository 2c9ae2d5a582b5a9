// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the worklog-auth HTTP API.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/worklog-auth/models"
)

// AuthAdapter talks to the authentication API. Implementations unwrap the
// response envelope and map non-2xx statuses to the sentinel errors of this
// package.
type AuthAdapter interface {
	// Register creates an account and returns the first token pair.
	Register(ctx context.Context, req models.RegisterRequest) (models.AuthResult, error)

	// Login exchanges credentials for a token pair.
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResult, error)

	// Refresh rotates refreshToken. The old token is unusable afterwards.
	Refresh(ctx context.Context, refreshToken string) (models.AuthResult, error)

	// Logout revokes refreshToken.
	Logout(ctx context.Context, refreshToken string) error

	// Me returns the profile of the owner of accessToken.
	Me(ctx context.Context, accessToken string) (models.PublicUser, error)

	// Version reports the server version. When accessToken is not empty the
	// server also echoes the caller it resolved from it.
	Version(ctx context.Context, accessToken string) (models.VersionResponse, error)
}
