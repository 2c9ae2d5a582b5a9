// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/worklog-auth/internal/config"
	"github.com/MKhiriev/worklog-auth/internal/logger"
)

func newMockDB(t *testing.T, dialect Dialect) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	var classificator ErrorClassificator = NewPostgresErrorClassifier()
	if dialect == DialectSQLite {
		classificator = NewSQLiteErrorClassifier()
	}

	return newDB(conn, dialect, classificator, logger.Nop()), mock
}

func newSQLiteDB(t *testing.T) *DB {
	t.Helper()

	db, err := NewConnectSQLite(context.Background(), config.DB{DSN: "sqlite://:memory:"}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, db.Migrate())

	return db
}

func pgError(code, constraint string) error {
	return &pgconn.PgError{Code: code, ConstraintName: constraint}
}
