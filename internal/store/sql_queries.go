// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/worklog-auth/models"
)

var userColumns = []string{
	"id",
	"email",
	"password_hash",
	"name",
	"role",
	"created_at",
	"updated_at",
}

var sessionWithUserColumns = []string{
	"s.id",
	"s.token",
	"s.user_id",
	"s.expires_at",
	"s.created_at",
	"u.id",
	"u.email",
	"u.password_hash",
	"u.name",
	"u.role",
	"u.created_at",
	"u.updated_at",
}

func buildCreateUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(user.TableName()).
		Columns(userColumns...).
		Values(
			user.ID,
			user.Email,
			user.PasswordHash,
			user.Name,
			string(user.Role),
			user.CreatedAt.UTC(),
			user.UpdatedAt.UTC(),
		).
		ToSql()
}

func buildFindUserQuery(b sq.StatementBuilderType, where sq.Eq) (string, []any, error) {
	return b.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(where).
		Limit(1).
		ToSql()
}

func buildCreateSessionQuery(b sq.StatementBuilderType, session models.Session) (string, []any, error) {
	return b.Insert(session.TableName()).
		Columns("id", "token", "user_id", "expires_at", "created_at").
		Values(
			session.ID,
			session.Token,
			session.UserID,
			session.ExpiresAt.UTC(),
			session.CreatedAt.UTC(),
		).
		ToSql()
}

func buildFindSessionByTokenQuery(b sq.StatementBuilderType, token string) (string, []any, error) {
	return b.Select(sessionWithUserColumns...).
		From("sessions s").
		Join("users u ON u.id = s.user_id").
		Where(sq.Eq{"s.token": token}).
		ToSql()
}

func buildDeleteSessionByTokenQuery(b sq.StatementBuilderType, token string) (string, []any, error) {
	return b.Delete(models.Session{}.TableName()).
		Where(sq.Eq{"token": token}).
		ToSql()
}

func buildDeleteExpiredSessionsQuery(b sq.StatementBuilderType, userID string, now time.Time) (string, []any, error) {
	where := sq.And{sq.LtOrEq{"expires_at": now.UTC()}}
	if userID != "" {
		where = append(where, sq.Eq{"user_id": userID})
	}

	return b.Delete(models.Session{}.TableName()).
		Where(where).
		ToSql()
}
