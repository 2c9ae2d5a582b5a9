// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"strings"

	"github.com/mattn/go-sqlite3"
)

// SQLiteErrorClassifier implements [ErrorClassificator] for go-sqlite3.
type SQLiteErrorClassifier struct{}

// NewSQLiteErrorClassifier constructs a [SQLiteErrorClassifier].
func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

// Classify reports SQLITE_BUSY and SQLITE_LOCKED as [Retryable].
func (c *SQLiteErrorClassifier) Classify(err error) ErrorClassification {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code {
		case sqlite3.ErrBusy, sqlite3.ErrLocked:
			return Retryable
		}
	}

	return NonRetryable
}

// Translate maps constraint failures onto store sentinels. SQLite reports
// the violated column only in the message ("UNIQUE constraint failed:
// users.email"), so unique violations are told apart by it.
func (c *SQLiteErrorClassifier) Translate(err error) error {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return nil
	}

	switch sqliteErr.ExtendedCode {
	case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
		msg := sqliteErr.Error()
		switch {
		case strings.Contains(msg, "users.email"):
			return ErrEmailAlreadyExists
		case strings.Contains(msg, "sessions."):
			return ErrSessionAlreadyExists
		}
	case sqlite3.ErrConstraintForeignKey:
		return ErrUserNotFound
	}

	return nil
}
