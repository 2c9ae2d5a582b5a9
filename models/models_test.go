// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	for _, r := range Roles() {
		got, err := ParseRole(string(r))
		require.NoError(t, err)
		assert.Equal(t, r, got)
	}

	_, err := ParseRole("admin")
	assert.ErrorIs(t, err, ErrUnknownRole)

	_, err = ParseRole("")
	assert.ErrorIs(t, err, ErrUnknownRole)
}

func TestRole_IsAdministrative(t *testing.T) {
	tests := []struct {
		role Role
		want bool
	}{
		{RoleUser, false},
		{RoleManager, false},
		{RoleAdmin, true},
		{RoleSystemAdmin, true},
		{Role("ROOT"), false},
	}

	for _, tt := range tests {
		t.Run(tt.role.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.role.IsAdministrative())
		})
	}
}

func TestRole_In(t *testing.T) {
	assert.True(t, RoleAdmin.In(RoleAdmin, RoleSystemAdmin))
	assert.False(t, RoleUser.In(RoleAdmin, RoleSystemAdmin))
	assert.False(t, RoleUser.In())
}

func TestUser_PublicDropsPasswordHash(t *testing.T) {
	now := time.Now()
	u := User{ID: "u1", Email: "a@b.c", Name: "A", PasswordHash: "secret", Role: RoleUser, CreatedAt: now}

	p := u.Public()

	assert.Equal(t, PublicUser{ID: "u1", Email: "a@b.c", Name: "A", Role: RoleUser, CreatedAt: now}, p)
}

func TestSession_IsExpired(t *testing.T) {
	now := time.Now()

	assert.False(t, Session{ExpiresAt: now.Add(time.Second)}.IsExpired(now))
	assert.True(t, Session{ExpiresAt: now}.IsExpired(now))
	assert.True(t, Session{ExpiresAt: now.Add(-time.Second)}.IsExpired(now))
}

func TestAppBuildInfo_Defaults(t *testing.T) {
	info := NewAppBuildInfo("", "2026-10-18", "")

	assert.Equal(t, "N/A", info.BuildVersion())
	assert.Equal(t, "2026-10-18", info.BuildDate())
	assert.Equal(t, "N/A", info.BuildCommit())
	assert.Contains(t, info.String(), "Build date: 2026-10-18")
}
