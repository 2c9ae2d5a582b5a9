// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/worklog-auth/internal/crypto"
	"github.com/MKhiriev/worklog-auth/internal/token"
)

var (
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
	ErrEmailAlreadyInUse   = errors.New("email already in use")
	ErrUserNotFound        = errors.New("user not found")
	ErrForbidden           = errors.New("forbidden")

	// ErrInternal wraps every failure that has no meaning for the caller,
	// such as a lost database connection.
	ErrInternal = errors.New("internal error")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// Access-token verification failures surface unchanged from the issuer.
var (
	ErrTokenExpired            = token.ErrTokenExpired
	ErrTokenInvalid            = token.ErrTokenInvalid
	ErrTokenVerificationFailed = token.ErrTokenVerificationFailed

	ErrHashing = crypto.ErrHashing
)
