// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/worklog-auth/internal/config"
	"github.com/MKhiriev/worklog-auth/internal/utils"
	"github.com/MKhiriev/worklog-auth/models"
)

type accessClaims struct {
	Email string      `json:"email"`
	Role  models.Role `json:"role"`
	jwt.RegisteredClaims
}

type refreshClaims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

// Issuer signs and verifies access and refresh tokens. It holds no mutable
// state and is safe for concurrent use.
type Issuer struct {
	accessSecret  []byte
	refreshSecret []byte
	issuer        string

	accessTTL  time.Duration
	refreshTTL time.Duration

	ids utils.UUIDGenerator
	now func() time.Time
}

// Option customizes an [Issuer].
type Option func(*Issuer)

// WithClock replaces the wall clock used for iat/exp stamping and expiry
// checks.
func WithClock(now func() time.Time) Option {
	return func(i *Issuer) {
		if now != nil {
			i.now = now
		}
	}
}

// NewIssuer builds an [Issuer] from the application config. Both secrets
// must be set and differ, the issuer label must be set and both lifetimes
// must be valid, non-zero duration specs.
func NewIssuer(cfg config.App, opts ...Option) (*Issuer, error) {
	if cfg.AccessTokenSecret == "" || cfg.RefreshTokenSecret == "" {
		return nil, fmt.Errorf("%w: empty signing secret", ErrInvalidTokenParams)
	}
	if cfg.AccessTokenSecret == cfg.RefreshTokenSecret {
		return nil, fmt.Errorf("%w: access and refresh secrets are equal", ErrInvalidTokenParams)
	}
	if cfg.TokenIssuer == "" {
		return nil, fmt.Errorf("%w: empty issuer", ErrInvalidTokenParams)
	}

	accessTTL, err := utils.ParseDurationSpec(cfg.AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("%w: access token ttl: %w", ErrInvalidTokenParams, err)
	}
	if accessTTL == 0 {
		return nil, fmt.Errorf("%w: access token ttl is zero", ErrInvalidTokenParams)
	}
	refreshTTL, err := utils.ParseDurationSpec(cfg.RefreshTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("%w: refresh token ttl: %w", ErrInvalidTokenParams, err)
	}
	if refreshTTL == 0 {
		return nil, fmt.Errorf("%w: refresh token ttl is zero", ErrInvalidTokenParams)
	}

	i := &Issuer{
		accessSecret:  []byte(cfg.AccessTokenSecret),
		refreshSecret: []byte(cfg.RefreshTokenSecret),
		issuer:        cfg.TokenIssuer,
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(i)
	}

	return i, nil
}

// AccessTTL returns the lifetime of issued access tokens.
func (i *Issuer) AccessTTL() time.Duration { return i.accessTTL }

// RefreshTTL returns the lifetime of issued refresh tokens.
func (i *Issuer) RefreshTTL() time.Duration { return i.refreshTTL }

// IssueAccessToken signs a short-lived token for the given principal.
func (i *Issuer) IssueAccessToken(subjectID, email string, role models.Role) (string, error) {
	claims := &accessClaims{
		Email:            email,
		Role:             role,
		RegisteredClaims: i.registeredClaims(subjectID, i.accessTTL),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.accessSecret)
	if err != nil {
		return "", fmt.Errorf("error occurred during signing access token: %w", err)
	}
	return signed, nil
}

// IssueRefreshToken signs a long-lived token carrying only the subject.
func (i *Issuer) IssueRefreshToken(subjectID string) (string, error) {
	claims := &refreshClaims{
		UserID:           subjectID,
		RegisteredClaims: i.registeredClaims(subjectID, i.refreshTTL),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.refreshSecret)
	if err != nil {
		return "", fmt.Errorf("error occurred during signing refresh token: %w", err)
	}
	return signed, nil
}

// VerifyAccessToken checks signature, issuer and expiry with the access
// secret and returns the embedded principal.
func (i *Issuer) VerifyAccessToken(tokenString string) (models.Principal, error) {
	claims := &accessClaims{}
	if _, err := jwt.ParseWithClaims(tokenString, claims, keyFunc(i.accessSecret), i.parserOptions()...); err != nil {
		return models.Principal{}, classify(err)
	}

	if claims.Subject == "" {
		return models.Principal{}, fmt.Errorf("%w: empty subject", ErrTokenInvalid)
	}
	if !claims.Role.Valid() {
		return models.Principal{}, fmt.Errorf("%w: unknown role %q", ErrTokenInvalid, claims.Role)
	}

	return models.Principal{
		UserID: claims.Subject,
		Email:  claims.Email,
		Role:   claims.Role,
	}, nil
}

// VerifyRefreshToken checks a refresh token with the refresh secret and
// returns its subject.
func (i *Issuer) VerifyRefreshToken(tokenString string) (models.RefreshClaims, error) {
	claims := &refreshClaims{}
	if _, err := jwt.ParseWithClaims(tokenString, claims, keyFunc(i.refreshSecret), i.parserOptions()...); err != nil {
		return models.RefreshClaims{}, classify(err)
	}

	if claims.Subject == "" {
		return models.RefreshClaims{}, fmt.Errorf("%w: empty subject", ErrTokenInvalid)
	}

	return models.RefreshClaims{UserID: claims.Subject}, nil
}

// DecodeWithoutVerification returns the payload of tokenString without
// checking signature or expiry. The result must never drive an
// authorization decision; it is meant for logging and debugging.
func (i *Issuer) DecodeWithoutVerification(tokenString string) (map[string]any, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return nil, false
	}
	return claims, true
}

// ComputeExpiry returns now plus the lifetime described by spec
// (<integer><s|m|h|d>).
func (i *Issuer) ComputeExpiry(spec string) (time.Time, error) {
	d, err := utils.ParseDurationSpec(spec)
	if err != nil {
		return time.Time{}, err
	}
	return i.now().Add(d), nil
}

func (i *Issuer) registeredClaims(subjectID string, ttl time.Duration) jwt.RegisteredClaims {
	now := i.now()
	return jwt.RegisteredClaims{
		ID:        i.ids.Generate(),
		Issuer:    i.issuer,
		Subject:   subjectID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
}

func (i *Issuer) parserOptions() []jwt.ParserOption {
	return []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(i.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(i.now),
	}
}

func keyFunc(secret []byte) jwt.Keyfunc {
	return func(*jwt.Token) (any, error) {
		return secret, nil
	}
}

func classify(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return fmt.Errorf("%w: %w", ErrTokenExpired, err)
	case errors.Is(err, jwt.ErrTokenMalformed),
		errors.Is(err, jwt.ErrTokenSignatureInvalid),
		errors.Is(err, jwt.ErrSignatureInvalid),
		errors.Is(err, jwt.ErrTokenUnverifiable),
		errors.Is(err, jwt.ErrTokenInvalidIssuer):
		return fmt.Errorf("%w: %w", ErrTokenInvalid, err)
	default:
		return fmt.Errorf("%w: %w", ErrTokenVerificationFailed, err)
	}
}
