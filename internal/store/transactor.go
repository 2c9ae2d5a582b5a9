// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/worklog-auth/internal/logger"
)

// maxTxAttempts bounds how often a transaction failing with a retryable
// backend error (serialization failure, deadlock, busy database) is re-run.
const maxTxAttempts = 3

type transactor struct {
	db *DB
}

// NewTransactor constructs a [Transactor] over db.
func NewTransactor(db *DB) Transactor {
	return &transactor{db: db}
}

// WithinTransaction implements [Transactor]. Repositories handed to fn use
// the transaction only; fn must not touch the pool directly, since a SQLite
// pool holds a single connection.
func (t *transactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context, sessions SessionRepository) error) error {
	log := logger.FromContext(ctx)

	var err error
	for attempt := 1; attempt <= maxTxAttempts; attempt++ {
		err = t.run(ctx, fn)
		if err == nil || t.db.errorClassificator.Classify(err) != Retryable || ctx.Err() != nil {
			return err
		}

		log.Warn().Err(err).
			Str("func", "*transactor.WithinTransaction").
			Int("attempt", attempt).
			Msg("retrying transaction")
	}

	return err
}

func (t *transactor) run(ctx context.Context, fn func(ctx context.Context, sessions SessionRepository) error) error {
	log := logger.FromContext(ctx)

	tx, err := t.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*transactor.WithinTransaction").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if err = fn(ctx, &sessionRepository{db: t.db, q: tx}); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*transactor.WithinTransaction").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}
