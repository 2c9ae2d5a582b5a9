// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
// Backend-specific driver errors never cross this package boundary unwrapped.
var (
	// ErrEmailAlreadyExists is returned when a user insert violates the
	// unique email constraint.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUserNotFound is returned when a lookup by email or id matches no
	// user, or when a session references a user that does not exist.
	ErrUserNotFound = errors.New("no user was found")

	// ErrSessionNotFound is returned when no session holds the given token.
	ErrSessionNotFound = errors.New("session was not found")

	// ErrSessionAlreadyExists is returned when a session insert collides
	// with an existing id or token.
	ErrSessionAlreadyExists = errors.New("session already exists")

	// ErrUnsupportedDSN is returned when the DSN scheme selects no known
	// backend.
	ErrUnsupportedDSN = errors.New("unsupported database DSN")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a statement against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")
)
