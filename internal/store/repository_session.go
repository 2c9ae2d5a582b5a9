// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/worklog-auth/internal/logger"
	"github.com/MKhiriev/worklog-auth/models"
)

// sessionRepository is the SQL implementation of [SessionRepository]. The
// same type serves plain connections and open transactions through q.
type sessionRepository struct {
	db *DB
	q  queryer
}

// NewSessionRepository constructs a [SessionRepository] running directly on
// the db pool.
func NewSessionRepository(db *DB) SessionRepository {
	db.logger.Debug().Msg("creating session repository")
	return &sessionRepository{db: db, q: db.DB}
}

func (r *sessionRepository) CreateSession(ctx context.Context, session models.Session) error {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateSessionQuery(r.db.builder, session)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.CreateSession").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.q.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*sessionRepository.CreateSession").
			Str("user_id", session.UserID).
			Msg("error inserting session")
		return r.db.translate(err, ErrExecutingQuery)
	}

	return nil
}

func (r *sessionRepository) FindSessionByToken(ctx context.Context, token string) (models.Session, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindSessionByTokenQuery(r.db.builder, token)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.FindSessionByToken").Msg("error building query")
		return models.Session{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var session models.Session
	var role string
	err = r.q.QueryRowContext(ctx, query, args...).Scan(
		&session.ID,
		&session.Token,
		&session.UserID,
		&session.ExpiresAt,
		&session.CreatedAt,
		&session.User.ID,
		&session.User.Email,
		&session.User.PasswordHash,
		&session.User.Name,
		&role,
		&session.User.CreatedAt,
		&session.User.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug().Str("func", "*sessionRepository.FindSessionByToken").Msg("session not found")
		return models.Session{}, ErrSessionNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.FindSessionByToken").Msg("error scanning session")
		return models.Session{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	session.User.Role = models.Role(role)

	return session, nil
}

func (r *sessionRepository) DeleteSessionByToken(ctx context.Context, token string) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteSessionByTokenQuery(r.db.builder, token)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.DeleteSessionByToken").Msg("error building query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.exec(ctx, "*sessionRepository.DeleteSessionByToken", query, args)
}

func (r *sessionRepository) DeleteExpiredUserSessions(ctx context.Context, userID string, now time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	if userID == "" {
		return 0, fmt.Errorf("%w: empty user id", ErrBuildingSQLQuery)
	}

	query, args, err := buildDeleteExpiredSessionsQuery(r.db.builder, userID, now)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.DeleteExpiredUserSessions").Msg("error building query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.exec(ctx, "*sessionRepository.DeleteExpiredUserSessions", query, args)
}

func (r *sessionRepository) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteExpiredSessionsQuery(r.db.builder, "", now)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.DeleteExpiredSessions").Msg("error building query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.exec(ctx, "*sessionRepository.DeleteExpiredSessions", query, args)
}

func (r *sessionRepository) exec(ctx context.Context, funcName, query string, args []any) (int64, error) {
	log := logger.FromContext(ctx)

	res, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error executing query")
		return 0, r.db.translate(err, ErrExecutingQuery)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error reading affected rows")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	log.Debug().Str("func", funcName).Int64("deleted", affected).Msg("sessions deleted")
	return affected, nil
}
