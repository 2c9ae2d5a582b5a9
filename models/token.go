// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Principal is the authenticated identity attached to a request after its
// access token has been verified. It lives only for the duration of the
// request.
type Principal struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
}

// RefreshClaims is the decoded content of a verified refresh token.
type RefreshClaims struct {
	UserID string
}

// TokenPair is the access/refresh pair handed to a client.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`

	// ExpiresIn is the access token lifetime in seconds.
	ExpiresIn int64  `json:"expiresIn"`
	TokenType string `json:"tokenType"`
}

// AuthResult is returned by register, login and refresh.
type AuthResult struct {
	TokenPair
	User PublicUser `json:"user"`
}
