// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Session is the persisted record of a live refresh token. A refresh token
// can mint new tokens only while its Session exists and has not expired.
type Session struct {
	ID        string
	Token     string
	UserID    string
	ExpiresAt time.Time
	CreatedAt time.Time

	// User is the owning account. It is populated by lookups that join the
	// users table so a refresh can mint tokens without a second query.
	User User
}

// IsExpired reports whether the session is past its expiry at now.
func (s Session) IsExpired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// TableName returns the name of the database table
// associated with the Session model.
func (s Session) TableName() string {
	return "sessions"
}
