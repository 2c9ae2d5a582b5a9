// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/worklog-auth/internal/crypto"
	"github.com/MKhiriev/worklog-auth/internal/logger"
	"github.com/MKhiriev/worklog-auth/internal/store"
	"github.com/MKhiriev/worklog-auth/internal/utils"
	"github.com/MKhiriev/worklog-auth/models"
)

// TokenTypeBearer is the scheme clients put in front of the access token.
const TokenTypeBearer = "Bearer"

// dummyPassword is hashed once per service so that a login for an unknown
// email spends the same bcrypt work as a wrong password.
const dummyPassword = "worklog-plus-timing-equalizer"

// fallbackDummyHash is a well-formed bcrypt hash used when hashing
// dummyPassword fails at construction, so the unknown-email path still pays
// for a full comparison.
const fallbackDummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// authService is the concrete implementation of AuthService.
// Users are read and written through userRepository; sessions outside a
// rotation go through sessionRepository, and rotation itself runs inside
// transactor.
type authService struct {
	userRepository    store.UserRepository
	sessionRepository store.SessionRepository
	transactor        store.Transactor

	issuer TokenIssuer
	hasher crypto.PasswordHasher

	ids utils.UUIDGenerator
	now func() time.Time

	dummyHash string

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService over the given storages.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(storages *store.Storages, issuer TokenIssuer, hasher crypto.PasswordHasher, logger *logger.Logger) AuthService {
	dummyHash, err := hasher.Hash(dummyPassword)
	if err != nil || dummyHash == "" {
		logger.Error().Err(err).Str("func", "NewAuthService").Msg("dummy hash generation failed, using fallback")
		dummyHash = fallbackDummyHash
	}

	return &authService{
		userRepository:    storages.UserRepository,
		sessionRepository: storages.SessionRepository,
		transactor:        storages.Transactor,
		issuer:            issuer,
		hasher:            hasher,
		now:               time.Now,
		dummyHash:         dummyHash,
		logger:            logger,
	}
}

// Register creates a new user account.
//
// Returns the token pair and the public user, or:
//   - ErrEmailAlreadyInUse if the email is taken (also when a concurrent
//     registration wins the insert).
//   - ErrHashing if the password cannot be hashed.
//   - ErrInternal for storage and signing failures.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResult, error) {
	log := logger.FromContext(ctx)
	email := normalizeEmail(req.Email)

	_, err := a.userRepository.FindUserByEmail(ctx, email)
	switch {
	case err == nil:
		log.Debug().Str("func", "*authService.Register").Msg("email already registered")
		return models.AuthResult{}, ErrEmailAlreadyInUse
	case !errors.Is(err, store.ErrUserNotFound):
		log.Err(err).Str("func", "*authService.Register").Msg("user lookup by email failed")
		return models.AuthResult{}, internal(err)
	}

	passwordHash, err := a.hasher.Hash(req.Password)
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Msg("password hashing failed")
		return models.AuthResult{}, fmt.Errorf("%w: %v", ErrHashing, err)
	}

	now := a.now().UTC()
	user := models.User{
		ID:           a.ids.Generate(),
		Email:        email,
		Name:         strings.TrimSpace(req.Name),
		PasswordHash: passwordHash,
		Role:         models.DefaultRole,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err = a.userRepository.CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			return models.AuthResult{}, ErrEmailAlreadyInUse
		}
		log.Err(err).Str("func", "*authService.Register").Msg("user creation ended with error")
		return models.AuthResult{}, internal(err)
	}

	result, err := a.openSession(ctx, user, now)
	if err != nil {
		return models.AuthResult{}, err
	}

	log.Info().Str("user_id", user.ID).Msg("user registered")
	return result, nil
}

// Login authenticates an existing user.
//
// An unknown email and a wrong password both yield ErrInvalidCredentials
// after one bcrypt comparison each. Expired sessions of the user are
// removed on the way; a failure there is only logged.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.AuthResult, error) {
	log := logger.FromContext(ctx)
	email := normalizeEmail(req.Email)

	user, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			a.hasher.Verify(req.Password, a.dummyHash)
			return models.AuthResult{}, ErrInvalidCredentials
		}
		log.Err(err).Str("func", "*authService.Login").Msg("user search by email failed")
		return models.AuthResult{}, internal(err)
	}

	if !a.hasher.Verify(req.Password, user.PasswordHash) {
		log.Debug().Str("func", "*authService.Login").Str("user_id", user.ID).Msg("wrong password")
		return models.AuthResult{}, ErrInvalidCredentials
	}

	now := a.now().UTC()
	deleted, err := a.sessionRepository.DeleteExpiredUserSessions(ctx, user.ID, now)
	if err != nil {
		log.Warn().Err(err).Str("func", "*authService.Login").Str("user_id", user.ID).Msg("expired sessions cleanup failed")
	} else if deleted > 0 {
		log.Debug().Int64("deleted", deleted).Str("user_id", user.ID).Msg("expired sessions removed")
	}

	return a.openSession(ctx, user, now)
}

// Logout deletes the session holding refreshToken. The token itself is not
// verified: whatever string the client holds is removed if present.
func (a *authService) Logout(ctx context.Context, refreshToken string) error {
	log := logger.FromContext(ctx)

	deleted, err := a.sessionRepository.DeleteSessionByToken(ctx, refreshToken)
	if err != nil {
		log.Err(err).Str("func", "*authService.Logout").Msg("session deletion failed")
		return internal(err)
	}

	log.Debug().Int64("deleted", deleted).Msg("logout")
	return nil
}

// Refresh exchanges a live refresh token for a new pair.
//
// The token must verify, must still have a session, and the session must
// not be expired; otherwise ErrInvalidRefreshToken or ErrRefreshTokenExpired
// is returned. The old session is deleted and the new one inserted in one
// transaction. If the delete removes nothing, a concurrent refresh already
// consumed the token and the call fails with ErrInvalidRefreshToken.
func (a *authService) Refresh(ctx context.Context, refreshToken string) (models.AuthResult, error) {
	log := logger.FromContext(ctx)

	claims, err := a.issuer.VerifyRefreshToken(refreshToken)
	if err != nil {
		a.withUnverifiedClaims(log.Debug(), refreshToken).
			Err(err).Str("func", "*authService.Refresh").Msg("refresh token rejected")
		return models.AuthResult{}, ErrInvalidRefreshToken
	}

	session, err := a.sessionRepository.FindSessionByToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			log.Debug().Str("user_id", claims.UserID).Msg("refresh token has no session")
			return models.AuthResult{}, ErrInvalidRefreshToken
		}
		log.Err(err).Str("func", "*authService.Refresh").Msg("session lookup failed")
		return models.AuthResult{}, internal(err)
	}

	if session.UserID != claims.UserID {
		log.Warn().Str("func", "*authService.Refresh").Str("session_user_id", session.UserID).
			Str("claims_user_id", claims.UserID).Msg("session owner does not match token subject")
		return models.AuthResult{}, ErrInvalidRefreshToken
	}

	now := a.now().UTC()
	if session.IsExpired(now) {
		if _, err = a.sessionRepository.DeleteSessionByToken(ctx, refreshToken); err != nil {
			log.Warn().Err(err).Str("func", "*authService.Refresh").Msg("expired session deletion failed")
		}
		return models.AuthResult{}, ErrRefreshTokenExpired
	}

	pair, newSession, err := a.issuePair(session.User, now)
	if err != nil {
		log.Err(err).Str("func", "*authService.Refresh").Msg("token issuing failed")
		return models.AuthResult{}, err
	}

	err = a.transactor.WithinTransaction(ctx, func(ctx context.Context, sessions store.SessionRepository) error {
		deleted, err := sessions.DeleteSessionByToken(ctx, refreshToken)
		if err != nil {
			return err
		}
		if deleted == 0 {
			return ErrInvalidRefreshToken
		}
		return sessions.CreateSession(ctx, newSession)
	})
	switch {
	case err == nil:
	case errors.Is(err, ErrInvalidRefreshToken):
		log.Info().Str("user_id", session.UserID).Msg("refresh token already rotated by a concurrent request")
		return models.AuthResult{}, ErrInvalidRefreshToken
	case errors.Is(err, store.ErrUserNotFound):
		return models.AuthResult{}, ErrUserNotFound
	default:
		log.Err(err).Str("func", "*authService.Refresh").Msg("session rotation failed")
		return models.AuthResult{}, internal(err)
	}

	return models.AuthResult{TokenPair: pair, User: session.User.Public()}, nil
}

// GetCurrentUser returns the public profile of userID or ErrUserNotFound
// when the account is gone.
func (a *authService) GetCurrentUser(ctx context.Context, userID string) (models.PublicUser, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.PublicUser{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "*authService.GetCurrentUser").Msg("user search by id failed")
		return models.PublicUser{}, internal(err)
	}

	return user.Public(), nil
}

// GetUser returns the profile of userID when viewer owns it or holds an
// administrative role, and ErrForbidden otherwise.
func (a *authService) GetUser(ctx context.Context, viewer models.Principal, userID string) (models.PublicUser, error) {
	if viewer.UserID != userID && !viewer.Role.IsAdministrative() {
		logger.FromContext(ctx).Warn().Str("func", "*authService.GetUser").
			Str("viewer_id", viewer.UserID).Str("user_id", userID).Msg("foreign profile requested")
		return models.PublicUser{}, ErrForbidden
	}

	return a.GetCurrentUser(ctx, userID)
}

// VerifyAccessToken returns the principal of a valid access token, or one
// of ErrTokenExpired, ErrTokenInvalid and ErrTokenVerificationFailed.
func (a *authService) VerifyAccessToken(ctx context.Context, accessToken string) (models.Principal, error) {
	principal, err := a.issuer.VerifyAccessToken(accessToken)
	if err != nil {
		a.withUnverifiedClaims(logger.FromContext(ctx).Debug(), accessToken).
			Err(err).Str("func", "*authService.VerifyAccessToken").Msg("access token rejected")
		return models.Principal{}, err
	}

	return principal, nil
}

// withUnverifiedClaims adds the unchecked subject and expiry of tok to e.
// Nothing here is trusted; it only helps tell apart expired, foreign and
// garbage tokens in the logs.
func (a *authService) withUnverifiedClaims(e *zerolog.Event, tok string) *zerolog.Event {
	if !e.Enabled() {
		return e
	}

	claims, ok := a.issuer.DecodeWithoutVerification(tok)
	if !ok {
		return e.Bool("decodable", false)
	}
	if sub, ok := claims["sub"].(string); ok {
		e = e.Str("unverified_sub", sub)
	}
	if exp, ok := claims["exp"].(float64); ok {
		e = e.Time("unverified_exp", time.Unix(int64(exp), 0).UTC())
	}
	return e
}

// openSession issues a pair for user and stores its refresh session.
func (a *authService) openSession(ctx context.Context, user models.User, now time.Time) (models.AuthResult, error) {
	log := logger.FromContext(ctx)

	pair, session, err := a.issuePair(user, now)
	if err != nil {
		log.Err(err).Str("func", "*authService.openSession").Msg("token issuing failed")
		return models.AuthResult{}, err
	}

	if err = a.sessionRepository.CreateSession(ctx, session); err != nil {
		log.Err(err).Str("func", "*authService.openSession").Str("user_id", user.ID).Msg("session creation failed")
		if errors.Is(err, store.ErrUserNotFound) {
			return models.AuthResult{}, ErrUserNotFound
		}
		return models.AuthResult{}, internal(err)
	}

	return models.AuthResult{TokenPair: pair, User: user.Public()}, nil
}

// issuePair signs an access and a refresh token for user and builds the
// session that will hold the refresh token.
func (a *authService) issuePair(user models.User, now time.Time) (models.TokenPair, models.Session, error) {
	accessToken, err := a.issuer.IssueAccessToken(user.ID, user.Email, user.Role)
	if err != nil {
		return models.TokenPair{}, models.Session{}, internal(err)
	}

	refreshToken, err := a.issuer.IssueRefreshToken(user.ID)
	if err != nil {
		return models.TokenPair{}, models.Session{}, internal(err)
	}

	pair := models.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(a.issuer.AccessTTL() / time.Second),
		TokenType:    TokenTypeBearer,
	}
	session := models.Session{
		ID:        a.ids.Generate(),
		Token:     refreshToken,
		UserID:    user.ID,
		ExpiresAt: now.Add(a.issuer.RefreshTTL()),
		CreatedAt: now,
	}

	return pair, session, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// internal hides err behind ErrInternal. Only the message survives.
func internal(err error) error {
	return fmt.Errorf("%w: %v", ErrInternal, err)
}
