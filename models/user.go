// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User is an account of the work journal. PasswordHash is the bcrypt output
// of the user's password and never leaves the server: it is excluded from
// JSON and dropped by [User.Public].
type User struct {
	// ID is the server-assigned identifier (UUIDv7 string). It is the "sub"
	// claim of every token issued for the user.
	ID string `json:"id"`

	// Email is the unique login identifier, stored trimmed and lower-cased.
	Email string `json:"email"`

	// Name is the display name shown in the UI.
	Name string `json:"name"`

	// PasswordHash is the salted one-way hash of the password.
	PasswordHash string `json:"-"`

	// Role is the authorization role. New accounts get [RoleUser].
	Role Role `json:"role"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PublicUser is the part of [User] that may be returned to clients.
type PublicUser struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// Public strips credential data from u.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
