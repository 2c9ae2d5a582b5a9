// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package token

import (
	"errors"

	"github.com/MKhiriev/worklog-auth/internal/utils"
)

var (
	// ErrTokenExpired is returned when the token's exp claim has passed.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenInvalid is returned for a bad signature, an unexpected signing
	// method, a foreign issuer or a malformed token.
	ErrTokenInvalid = errors.New("invalid token")
	// ErrTokenVerificationFailed covers every other decode failure.
	ErrTokenVerificationFailed = errors.New("token verification failed")
	// ErrInvalidTokenParams is returned by [NewIssuer] for unusable settings.
	ErrInvalidTokenParams = errors.New("invalid params for token issuer")
	// ErrUnsupportedUnit is returned by [Issuer.ComputeExpiry] for a
	// lifetime suffix other than s, m, h or d.
	ErrUnsupportedUnit = utils.ErrUnsupportedUnit
)
