// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/worklog-auth/internal/config"
	"github.com/MKhiriev/worklog-auth/internal/logger"
	"github.com/MKhiriev/worklog-auth/migrations"
)

// Dialect names the SQL backend behind a [DB].
type Dialect string

const (
	DialectPostgres Dialect = migrations.DialectPostgres
	DialectSQLite   Dialect = migrations.DialectSQLite
)

// DB is an open connection pool together with the query builder and error
// classification of its dialect.
type DB struct {
	*sql.DB
	dialect            Dialect
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

func newDB(conn *sql.DB, dialect Dialect, classificator ErrorClassificator, log *logger.Logger) *DB {
	placeholder := sq.PlaceholderFormat(sq.Question)
	if dialect == DialectPostgres {
		placeholder = sq.Dollar
	}

	return &DB{
		DB:                 conn,
		dialect:            dialect,
		builder:            sq.StatementBuilder.PlaceholderFormat(placeholder),
		errorClassificator: classificator,
		logger:             log,
	}
}

// NewConnect opens the backend selected by the DSN scheme:
// postgres:// and postgresql:// use pgx, sqlite:// and file: use SQLite.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch dsn := cfg.DSN; {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return NewConnectPostgres(ctx, cfg, log)
	case strings.HasPrefix(dsn, "sqlite://"), strings.HasPrefix(dsn, "file:"):
		return NewConnectSQLite(ctx, cfg, log)
	default:
		log.Error().Str("func", "NewConnect").Msg("unsupported database DSN scheme")
		return nil, ErrUnsupportedDSN
	}
}

// Dialect returns the backend of db.
func (db *DB) Dialect() Dialect {
	return db.dialect
}

// Migrate applies the embedded schema migrations of the db dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, string(db.dialect))
}

// translate wraps err with the sentinel the classificator finds for it, or
// with fallback when there is none.
func (db *DB) translate(err error, fallback error) error {
	if known := db.errorClassificator.Translate(err); known != nil {
		return fmt.Errorf("%w: %w", known, err)
	}
	return fmt.Errorf("%w: %w", fallback, err)
}
