// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildQueries_Placeholders(t *testing.T) {
	dollar := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	question := sq.StatementBuilder.PlaceholderFormat(sq.Question)

	query, args, err := buildFindSessionByTokenQuery(dollar, "tok")
	require.NoError(t, err)
	assert.Contains(t, query, "s.token = $1")
	assert.Equal(t, []any{"tok"}, args)

	query, args, err = buildFindSessionByTokenQuery(question, "tok")
	require.NoError(t, err)
	assert.Contains(t, query, "s.token = ?")
	assert.Equal(t, []any{"tok"}, args)
}

func Test_buildCreateUserQuery_StoresUTC(t *testing.T) {
	u := testUser()
	u.CreatedAt = u.CreatedAt.In(time.FixedZone("UTC+3", 3*3600))

	_, args, err := buildCreateUserQuery(sq.StatementBuilder, u)
	require.NoError(t, err)
	require.Len(t, args, len(userColumns))

	createdAt, ok := args[5].(time.Time)
	require.True(t, ok)
	assert.Equal(t, time.UTC, createdAt.Location())
	assert.True(t, createdAt.Equal(u.CreatedAt))
}

func Test_buildFindSessionByTokenQuery_SelectsUserColumns(t *testing.T) {
	query, _, err := buildFindSessionByTokenQuery(sq.StatementBuilder, "tok")
	require.NoError(t, err)

	q := strings.ToLower(query)
	for _, c := range sessionWithUserColumns {
		assert.Contains(t, q, c)
	}
	assert.Contains(t, q, "join users u on u.id = s.user_id")
}

func Test_buildDeleteExpiredSessionsQuery(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		userID    string
		wantQuery string
		wantArgs  []any
	}{
		{
			name:      "all users",
			wantQuery: "DELETE FROM sessions WHERE (expires_at <= ?)",
			wantArgs:  []any{now},
		},
		{
			name:      "one user",
			userID:    "u1",
			wantQuery: "DELETE FROM sessions WHERE (expires_at <= ? AND user_id = ?)",
			wantArgs:  []any{now, "u1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildDeleteExpiredSessionsQuery(sq.StatementBuilder, tt.userID, now)
			require.NoError(t, err)
			assert.Equal(t, tt.wantQuery, query)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}
