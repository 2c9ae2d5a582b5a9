// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"
	"database/sql"
	"time"

	"github.com/MKhiriev/worklog-auth/models"
)

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser inserts user. A duplicate email yields [ErrEmailAlreadyExists].
	CreateUser(ctx context.Context, user models.User) error
	// FindUserByEmail returns the user with email or [ErrUserNotFound].
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	// FindUserByID returns the user with id or [ErrUserNotFound].
	FindUserByID(ctx context.Context, id string) (models.User, error)
}

// SessionRepository persists refresh-token sessions.
type SessionRepository interface {
	// CreateSession inserts session. An unknown owner yields [ErrUserNotFound],
	// a duplicate token [ErrSessionAlreadyExists].
	CreateSession(ctx context.Context, session models.Session) error
	// FindSessionByToken returns the session holding token together with its
	// owning user, or [ErrSessionNotFound].
	FindSessionByToken(ctx context.Context, token string) (models.Session, error)
	// DeleteSessionByToken removes the session holding token and reports how
	// many rows went away. Deleting an absent token is not an error.
	DeleteSessionByToken(ctx context.Context, token string) (int64, error)
	// DeleteExpiredUserSessions removes the sessions of userID that expired
	// at or before now.
	DeleteExpiredUserSessions(ctx context.Context, userID string, now time.Time) (int64, error)
	// DeleteExpiredSessions removes every session that expired at or before now.
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error)
}

// Transactor runs a unit of work atomically.
type Transactor interface {
	// WithinTransaction calls fn with a [SessionRepository] bound to a single
	// transaction. The transaction commits when fn returns nil and rolls back
	// otherwise; fn's error is returned unchanged.
	WithinTransaction(ctx context.Context, fn func(ctx context.Context, sessions SessionRepository) error) error
}

// ErrorClassificator maps backend driver errors onto this package's
// sentinels and tells transient failures apart.
type ErrorClassificator interface {
	// Classify reports whether the failed operation may be retried.
	Classify(err error) ErrorClassification
	// Translate returns the sentinel matching err, or nil when err carries
	// no known domain meaning.
	Translate(err error) error
}

// queryer is the subset of *sql.DB and *sql.Tx the repositories need.
type queryer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
