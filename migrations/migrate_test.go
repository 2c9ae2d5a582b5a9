// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_DBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	_ = mock // goose talks to the database on its own; no expectations means every query fails

	err = Migrate(db, DialectPostgres)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migration error")
}

func TestMigrate_NilDB(t *testing.T) {
	err := Migrate(nil, DialectSQLite)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nil database")
}

func TestMigrate_UnknownDialect(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	err = Migrate(db, "oracle")
	assert.ErrorIs(t, err, ErrUnknownDialect)
}

func TestMigrate_SQLite(t *testing.T) {
	db, err := sql.Open("sqlite3", "file::memory:?_foreign_keys=1")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	defer db.Close()

	require.NoError(t, Migrate(db, DialectSQLite))
	// second run is a no-op
	require.NoError(t, Migrate(db, DialectSQLite))

	for _, table := range []string{"users", "sessions"} {
		var name string
		err = db.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		require.NoError(t, err, table)
		assert.Equal(t, table, name)
	}

	_, err = db.Exec(`INSERT INTO users (id, email, password_hash, name, role, created_at, updated_at)
		VALUES ('u1', 'a@example.com', 'h', 'A', 'ROOT', CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)`)
	assert.Error(t, err, "role check constraint")

	_, err = db.Exec(`INSERT INTO sessions (id, token, user_id, expires_at, created_at)
		VALUES ('s1', 't1', 'missing', CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)`)
	assert.Error(t, err, "foreign key constraint")
}

func TestEmbeddedMigrations_PerDialect(t *testing.T) {
	for dialect, dir := range dialectDirs {
		entries, err := embedMigrations.ReadDir(dir)
		require.NoError(t, err, dialect)
		assert.Len(t, entries, 2, dialect)
	}
}
