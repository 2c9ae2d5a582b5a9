// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/MKhiriev/worklog-auth/models"
)

// AuthService drives the session lifecycle of a user:
// unauthenticated -> authenticated -> refreshed -> logged out.
//
// Every error returned belongs to this package's taxonomy (see errors.go);
// storage and crypto failures never escape unwrapped.
type AuthService interface {
	// Register creates an account with the least-privileged role and opens
	// its first session.
	Register(ctx context.Context, req models.RegisterRequest) (models.AuthResult, error)
	// Login checks credentials and opens a new session.
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResult, error)
	// Logout closes the session holding refreshToken. Unknown tokens are a no-op.
	Logout(ctx context.Context, refreshToken string) error
	// Refresh rotates refreshToken: the old token becomes unusable and a new
	// pair is returned.
	Refresh(ctx context.Context, refreshToken string) (models.AuthResult, error)
	// GetCurrentUser returns the public profile of userID.
	GetCurrentUser(ctx context.Context, userID string) (models.PublicUser, error)
	// GetUser returns the public profile of userID as seen by viewer. Only
	// the owner and administrative roles may read it; anyone else gets
	// ErrForbidden.
	GetUser(ctx context.Context, viewer models.Principal, userID string) (models.PublicUser, error)
	// VerifyAccessToken decodes a bearer token into the request principal.
	VerifyAccessToken(ctx context.Context, accessToken string) (models.Principal, error)
}

// SessionService maintains the session table.
type SessionService interface {
	// PurgeExpiredSessions removes every expired session and reports how many
	// went away.
	PurgeExpiredSessions(ctx context.Context) (int64, error)
}

// AppInfoService exposes build information of the running server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// TokenIssuer signs and verifies the token pair. *token.Issuer implements it.
type TokenIssuer interface {
	AccessTTL() time.Duration
	RefreshTTL() time.Duration
	IssueAccessToken(subjectID, email string, role models.Role) (string, error)
	IssueRefreshToken(subjectID string) (string, error)
	VerifyAccessToken(tokenString string) (models.Principal, error)
	VerifyRefreshToken(tokenString string) (models.RefreshClaims, error)
	// DecodeWithoutVerification reads the payload of a token without any
	// checks. Only for diagnostics.
	DecodeWithoutVerification(tokenString string) (map[string]any, bool)
}
