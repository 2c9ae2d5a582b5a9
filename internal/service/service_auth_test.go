// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/worklog-auth/internal/config"
	"github.com/MKhiriev/worklog-auth/internal/crypto"
	"github.com/MKhiriev/worklog-auth/internal/logger"
	"github.com/MKhiriev/worklog-auth/internal/mock"
	"github.com/MKhiriev/worklog-auth/internal/store"
	"github.com/MKhiriev/worklog-auth/internal/token"
	"github.com/MKhiriev/worklog-auth/models"
)

func testAppConfig() config.App {
	return config.App{
		AccessTokenSecret:  "access-secret-access-secret-access-secret",
		RefreshTokenSecret: "refresh-secret-refresh-secret-refresh-secret",
		AccessTokenTTL:     "15m",
		RefreshTokenTTL:    "7d",
		TokenIssuer:        "worklog-plus",
		Version:            "1.0.0",
	}
}

type authFixture struct {
	svc *authService

	users      *mock.MockUserRepository
	sessions   *mock.MockSessionRepository
	txSessions *mock.MockSessionRepository
	hasher     *mock.MockPasswordHasher
	issuer     *token.Issuer

	now time.Time
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &authFixture{
		users:      mock.NewMockUserRepository(ctrl),
		sessions:   mock.NewMockSessionRepository(ctrl),
		txSessions: mock.NewMockSessionRepository(ctrl),
		hasher:     mock.NewMockPasswordHasher(ctrl),
		now:        time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	clock := func() time.Time { return f.now }

	issuer, err := token.NewIssuer(testAppConfig(), token.WithClock(clock))
	require.NoError(t, err)
	f.issuer = issuer

	transactor := mock.NewMockTransactor(ctrl)
	transactor.EXPECT().WithinTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, store.SessionRepository) error) error {
			return fn(ctx, f.txSessions)
		},
	).AnyTimes()

	storages := &store.Storages{
		UserRepository:    f.users,
		SessionRepository: f.sessions,
		Transactor:        transactor,
	}
	f.hasher.EXPECT().Hash(dummyPassword).Return("dummy-hash", nil)
	f.svc = NewAuthService(storages, issuer, f.hasher, logger.Nop()).(*authService)
	f.svc.now = clock

	return f
}

func (f *authFixture) alice() models.User {
	return models.User{
		ID:           "0195a3c4-0000-7000-8000-000000000001",
		Email:        "alice@example.com",
		Name:         "Alice",
		PasswordHash: "stored-hash",
		Role:         models.RoleUser,
		CreatedAt:    f.now.Add(-time.Hour),
		UpdatedAt:    f.now.Add(-time.Hour),
	}
}

var errDB = errors.New("connection reset by peer")

// ── Register ─────────────────────────────────────────────────────────────────

func TestAuthService_Register_Success(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	var created models.User
	var session models.Session

	gomock.InOrder(
		f.users.EXPECT().FindUserByEmail(ctx, "alice@example.com").
			Return(models.User{}, fmt.Errorf("%w: no rows", store.ErrUserNotFound)),
		f.hasher.EXPECT().Hash("Passw0rd!").Return("bcrypt-hash", nil),
		f.users.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, u models.User) error {
				created = u
				return nil
			},
		),
		f.sessions.EXPECT().CreateSession(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, s models.Session) error {
				session = s
				return nil
			},
		),
	)

	result, err := f.svc.Register(ctx, models.RegisterRequest{
		Email:    "  Alice@Example.COM ",
		Password: "Passw0rd!",
		Name:     " Alice ",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "alice@example.com", created.Email)
	assert.Equal(t, "Alice", created.Name)
	assert.Equal(t, "bcrypt-hash", created.PasswordHash)
	assert.Equal(t, models.RoleUser, created.Role)

	assert.Equal(t, created.ID, result.User.ID)
	assert.Equal(t, models.RoleUser, result.User.Role)
	assert.Equal(t, int64(900), result.ExpiresIn)
	assert.Equal(t, TokenTypeBearer, result.TokenType)

	assert.Equal(t, result.RefreshToken, session.Token)
	assert.Equal(t, created.ID, session.UserID)
	assert.Equal(t, f.now.Add(7*24*time.Hour), session.ExpiresAt)

	principal, err := f.issuer.VerifyAccessToken(result.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, models.Principal{UserID: created.ID, Email: "alice@example.com", Role: models.RoleUser}, principal)
}

func TestAuthService_Register_EmailTaken(t *testing.T) {
	f := newAuthFixture(t)

	f.users.EXPECT().FindUserByEmail(gomock.Any(), "alice@example.com").Return(f.alice(), nil)

	_, err := f.svc.Register(context.Background(), models.RegisterRequest{
		Email: "alice@example.com", Password: "Passw0rd!", Name: "Alice",
	})
	require.ErrorIs(t, err, ErrEmailAlreadyInUse)
}

func TestAuthService_Register_Failures(t *testing.T) {
	req := models.RegisterRequest{Email: "alice@example.com", Password: "Passw0rd!", Name: "Alice"}
	notFound := fmt.Errorf("%w: no rows", store.ErrUserNotFound)

	tests := []struct {
		name    string
		setup   func(f *authFixture)
		wantErr error
	}{
		{
			name: "lookup fails",
			setup: func(f *authFixture) {
				f.users.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).
					Return(models.User{}, fmt.Errorf("%w: %w", store.ErrExecutingQuery, errDB))
			},
			wantErr: ErrInternal,
		},
		{
			name: "hashing fails",
			setup: func(f *authFixture) {
				f.users.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(models.User{}, notFound)
				f.hasher.EXPECT().Hash(gomock.Any()).Return("", ErrHashing)
			},
			wantErr: ErrHashing,
		},
		{
			name: "concurrent registration wins the insert",
			setup: func(f *authFixture) {
				f.users.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(models.User{}, notFound)
				f.hasher.EXPECT().Hash(gomock.Any()).Return("bcrypt-hash", nil)
				f.users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
					Return(fmt.Errorf("%w: duplicate key", store.ErrEmailAlreadyExists))
			},
			wantErr: ErrEmailAlreadyInUse,
		},
		{
			name: "session insert fails",
			setup: func(f *authFixture) {
				f.users.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(models.User{}, notFound)
				f.hasher.EXPECT().Hash(gomock.Any()).Return("bcrypt-hash", nil)
				f.users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(nil)
				f.sessions.EXPECT().CreateSession(gomock.Any(), gomock.Any()).Return(errDB)
			},
			wantErr: ErrInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAuthFixture(t)
			tt.setup(f)

			result, err := f.svc.Register(context.Background(), req)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, result.AccessToken)
		})
	}
}

func TestAuthService_Register_DoesNotLeakStoreErrors(t *testing.T) {
	f := newAuthFixture(t)
	f.users.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).
		Return(models.User{}, fmt.Errorf("%w: %w", store.ErrExecutingQuery, errDB))

	_, err := f.svc.Register(context.Background(), models.RegisterRequest{Email: "a@b.c"})
	require.ErrorIs(t, err, ErrInternal)
	assert.NotErrorIs(t, err, store.ErrExecutingQuery)
	assert.NotErrorIs(t, err, errDB)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAuthService_Login_Success(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	alice := f.alice()

	gomock.InOrder(
		f.users.EXPECT().FindUserByEmail(ctx, "alice@example.com").Return(alice, nil),
		f.hasher.EXPECT().Verify("Passw0rd!", "stored-hash").Return(true),
		f.sessions.EXPECT().DeleteExpiredUserSessions(ctx, alice.ID, f.now).Return(int64(2), nil),
		f.sessions.EXPECT().CreateSession(ctx, gomock.Any()).Return(nil),
	)

	result, err := f.svc.Login(ctx, models.LoginRequest{Email: "ALICE@example.com", Password: "Passw0rd!"})
	require.NoError(t, err)

	assert.Equal(t, alice.Public(), result.User)
	assert.NotEmpty(t, result.AccessToken)
	assert.NotEmpty(t, result.RefreshToken)
}

func TestAuthService_Login_CleanupFailureIsIgnored(t *testing.T) {
	f := newAuthFixture(t)
	alice := f.alice()

	f.users.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(alice, nil)
	f.hasher.EXPECT().Verify(gomock.Any(), gomock.Any()).Return(true)
	f.sessions.EXPECT().DeleteExpiredUserSessions(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), errDB)
	f.sessions.EXPECT().CreateSession(gomock.Any(), gomock.Any()).Return(nil)

	_, err := f.svc.Login(context.Background(), models.LoginRequest{Email: alice.Email, Password: "Passw0rd!"})
	require.NoError(t, err)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	f := newAuthFixture(t)

	f.users.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(f.alice(), nil)
	f.hasher.EXPECT().Verify("nope", "stored-hash").Return(false)

	_, err := f.svc.Login(context.Background(), models.LoginRequest{Email: "alice@example.com", Password: "nope"})
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownEmailRunsDummyComparison(t *testing.T) {
	f := newAuthFixture(t)
	notFound := fmt.Errorf("%w: no rows", store.ErrUserNotFound)

	f.users.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(models.User{}, notFound).Times(2)
	// the dummy hash was computed by the constructor; no Hash call here
	f.hasher.EXPECT().Verify("Passw0rd!", "dummy-hash").Return(false).Times(2)

	for range 2 {
		_, err := f.svc.Login(context.Background(), models.LoginRequest{Email: "ghost@example.com", Password: "Passw0rd!"})
		require.ErrorIs(t, err, ErrInvalidCredentials)
	}
}

func TestNewAuthService_DummyHashFallback(t *testing.T) {
	tests := []struct {
		name    string
		hash    string
		hashErr error
	}{
		{name: "hashing fails", hashErr: errors.New("cost out of range")},
		{name: "empty hash", hash: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			users := mock.NewMockUserRepository(ctrl)
			hasher := mock.NewMockPasswordHasher(ctrl)

			hasher.EXPECT().Hash(dummyPassword).Return(tt.hash, tt.hashErr).Times(1)
			issuer, err := token.NewIssuer(testAppConfig())
			require.NoError(t, err)

			svc := NewAuthService(&store.Storages{UserRepository: users}, issuer, hasher, logger.Nop())

			users.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).
				Return(models.User{}, fmt.Errorf("%w: no rows", store.ErrUserNotFound))
			hasher.EXPECT().Verify("Passw0rd!", fallbackDummyHash).Return(false).Times(1)

			_, err = svc.Login(context.Background(), models.LoginRequest{Email: "ghost@example.com", Password: "Passw0rd!"})
			require.ErrorIs(t, err, ErrInvalidCredentials)
		})
	}
}

func TestFallbackDummyHash_IsWellFormedBcrypt(t *testing.T) {
	cost, err := bcrypt.Cost([]byte(fallbackDummyHash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
	assert.False(t, crypto.NewBcryptHasher(bcrypt.MinCost).Verify(dummyPassword, fallbackDummyHash))
}

func TestAuthService_Login_LookupFails(t *testing.T) {
	f := newAuthFixture(t)
	f.users.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(models.User{}, errDB)

	_, err := f.svc.Login(context.Background(), models.LoginRequest{Email: "alice@example.com", Password: "x"})
	require.ErrorIs(t, err, ErrInternal)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

// ── Logout ───────────────────────────────────────────────────────────────────

func TestAuthService_Logout(t *testing.T) {
	t.Run("unknown token is a no-op", func(t *testing.T) {
		f := newAuthFixture(t)
		f.sessions.EXPECT().DeleteSessionByToken(gomock.Any(), "whatever").Return(int64(0), nil)

		require.NoError(t, f.svc.Logout(context.Background(), "whatever"))
	})

	t.Run("store failure", func(t *testing.T) {
		f := newAuthFixture(t)
		f.sessions.EXPECT().DeleteSessionByToken(gomock.Any(), gomock.Any()).Return(int64(0), errDB)

		require.ErrorIs(t, f.svc.Logout(context.Background(), "token"), ErrInternal)
	})
}

// ── Refresh ──────────────────────────────────────────────────────────────────

func (f *authFixture) liveSession(t *testing.T) (string, models.Session) {
	t.Helper()

	alice := f.alice()
	refreshToken, err := f.issuer.IssueRefreshToken(alice.ID)
	require.NoError(t, err)

	return refreshToken, models.Session{
		ID:        "session-1",
		Token:     refreshToken,
		UserID:    alice.ID,
		ExpiresAt: f.now.Add(time.Hour),
		CreatedAt: f.now.Add(-time.Hour),
		User:      alice,
	}
}

func TestAuthService_Refresh_Rotates(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	oldToken, session := f.liveSession(t)

	var inserted models.Session
	gomock.InOrder(
		f.sessions.EXPECT().FindSessionByToken(ctx, oldToken).Return(session, nil),
		f.txSessions.EXPECT().DeleteSessionByToken(ctx, oldToken).Return(int64(1), nil),
		f.txSessions.EXPECT().CreateSession(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, s models.Session) error {
				inserted = s
				return nil
			},
		),
	)

	result, err := f.svc.Refresh(ctx, oldToken)
	require.NoError(t, err)

	assert.NotEqual(t, oldToken, result.RefreshToken)
	assert.Equal(t, result.RefreshToken, inserted.Token)
	assert.Equal(t, session.UserID, inserted.UserID)
	assert.Equal(t, session.UserID, result.User.ID)

	principal, err := f.issuer.VerifyAccessToken(result.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, session.UserID, principal.UserID)
}

func TestAuthService_Refresh_ReplayAfterRotation(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	oldToken, session := f.liveSession(t)

	gomock.InOrder(
		f.sessions.EXPECT().FindSessionByToken(ctx, oldToken).Return(session, nil),
		f.txSessions.EXPECT().DeleteSessionByToken(ctx, oldToken).Return(int64(1), nil),
		f.txSessions.EXPECT().CreateSession(ctx, gomock.Any()).Return(nil),
		f.sessions.EXPECT().FindSessionByToken(ctx, oldToken).
			Return(models.Session{}, fmt.Errorf("%w: no rows", store.ErrSessionNotFound)),
	)

	_, err := f.svc.Refresh(ctx, oldToken)
	require.NoError(t, err)

	_, err = f.svc.Refresh(ctx, oldToken)
	require.ErrorIs(t, err, ErrInvalidRefreshToken)
}

func TestAuthService_Refresh_LosesRace(t *testing.T) {
	f := newAuthFixture(t)
	oldToken, session := f.liveSession(t)

	f.sessions.EXPECT().FindSessionByToken(gomock.Any(), oldToken).Return(session, nil)
	f.txSessions.EXPECT().DeleteSessionByToken(gomock.Any(), oldToken).Return(int64(0), nil)

	_, err := f.svc.Refresh(context.Background(), oldToken)
	require.ErrorIs(t, err, ErrInvalidRefreshToken)
}

func TestAuthService_Refresh_ExpiredSession(t *testing.T) {
	f := newAuthFixture(t)
	oldToken, session := f.liveSession(t)
	session.ExpiresAt = f.now.Add(-time.Second)

	f.sessions.EXPECT().FindSessionByToken(gomock.Any(), oldToken).Return(session, nil)
	f.sessions.EXPECT().DeleteSessionByToken(gomock.Any(), oldToken).Return(int64(1), nil)

	_, err := f.svc.Refresh(context.Background(), oldToken)
	require.ErrorIs(t, err, ErrRefreshTokenExpired)
}

func TestAuthService_Refresh_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(t *testing.T, f *authFixture) string
		wantErr error
	}{
		{
			name:    "garbage",
			setup:   func(t *testing.T, f *authFixture) string { return "not.a.jwt" },
			wantErr: ErrInvalidRefreshToken,
		},
		{
			name: "access token instead of refresh token",
			setup: func(t *testing.T, f *authFixture) string {
				tok, err := f.issuer.IssueAccessToken("user-1", "a@b.c", models.RoleUser)
				require.NoError(t, err)
				return tok
			},
			wantErr: ErrInvalidRefreshToken,
		},
		{
			name: "expired jwt",
			setup: func(t *testing.T, f *authFixture) string {
				tok, _ := f.liveSession(t)
				f.now = f.now.Add(8 * 24 * time.Hour)
				return tok
			},
			wantErr: ErrInvalidRefreshToken,
		},
		{
			name: "no session",
			setup: func(t *testing.T, f *authFixture) string {
				tok, _ := f.liveSession(t)
				f.sessions.EXPECT().FindSessionByToken(gomock.Any(), tok).
					Return(models.Session{}, fmt.Errorf("%w: no rows", store.ErrSessionNotFound))
				return tok
			},
			wantErr: ErrInvalidRefreshToken,
		},
		{
			name: "session belongs to somebody else",
			setup: func(t *testing.T, f *authFixture) string {
				tok, session := f.liveSession(t)
				session.UserID = "someone-else"
				f.sessions.EXPECT().FindSessionByToken(gomock.Any(), tok).Return(session, nil)
				return tok
			},
			wantErr: ErrInvalidRefreshToken,
		},
		{
			name: "lookup fails",
			setup: func(t *testing.T, f *authFixture) string {
				tok, _ := f.liveSession(t)
				f.sessions.EXPECT().FindSessionByToken(gomock.Any(), tok).Return(models.Session{}, errDB)
				return tok
			},
			wantErr: ErrInternal,
		},
		{
			name: "user deleted during rotation",
			setup: func(t *testing.T, f *authFixture) string {
				tok, session := f.liveSession(t)
				f.sessions.EXPECT().FindSessionByToken(gomock.Any(), tok).Return(session, nil)
				f.txSessions.EXPECT().DeleteSessionByToken(gomock.Any(), tok).Return(int64(1), nil)
				f.txSessions.EXPECT().CreateSession(gomock.Any(), gomock.Any()).
					Return(fmt.Errorf("%w: fk", store.ErrUserNotFound))
				return tok
			},
			wantErr: ErrUserNotFound,
		},
		{
			name: "transaction fails",
			setup: func(t *testing.T, f *authFixture) string {
				tok, session := f.liveSession(t)
				f.sessions.EXPECT().FindSessionByToken(gomock.Any(), tok).Return(session, nil)
				f.txSessions.EXPECT().DeleteSessionByToken(gomock.Any(), tok).Return(int64(0), errDB)
				return tok
			},
			wantErr: ErrInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAuthFixture(t)
			tok := tt.setup(t, f)

			result, err := f.svc.Refresh(context.Background(), tok)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, result.RefreshToken)
		})
	}
}

// ── GetCurrentUser / VerifyAccessToken ───────────────────────────────────────

func TestAuthService_GetCurrentUser(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		f := newAuthFixture(t)
		alice := f.alice()
		f.users.EXPECT().FindUserByID(gomock.Any(), alice.ID).Return(alice, nil)

		got, err := f.svc.GetCurrentUser(context.Background(), alice.ID)
		require.NoError(t, err)
		assert.Equal(t, alice.Public(), got)
	})

	t.Run("deleted after token issued", func(t *testing.T) {
		f := newAuthFixture(t)
		f.users.EXPECT().FindUserByID(gomock.Any(), "gone").
			Return(models.User{}, fmt.Errorf("%w: no rows", store.ErrUserNotFound))

		_, err := f.svc.GetCurrentUser(context.Background(), "gone")
		require.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("store failure", func(t *testing.T) {
		f := newAuthFixture(t)
		f.users.EXPECT().FindUserByID(gomock.Any(), gomock.Any()).Return(models.User{}, errDB)

		_, err := f.svc.GetCurrentUser(context.Background(), "id")
		require.ErrorIs(t, err, ErrInternal)
	})
}

func TestAuthService_GetUser(t *testing.T) {
	t.Run("owner", func(t *testing.T) {
		f := newAuthFixture(t)
		alice := f.alice()
		f.users.EXPECT().FindUserByID(gomock.Any(), alice.ID).Return(alice, nil)

		viewer := models.Principal{UserID: alice.ID, Email: alice.Email, Role: models.RoleUser}
		got, err := f.svc.GetUser(context.Background(), viewer, alice.ID)
		require.NoError(t, err)
		assert.Equal(t, alice.Public(), got)
	})

	t.Run("administrative roles read any profile", func(t *testing.T) {
		for _, role := range []models.Role{models.RoleAdmin, models.RoleSystemAdmin} {
			f := newAuthFixture(t)
			alice := f.alice()
			f.users.EXPECT().FindUserByID(gomock.Any(), alice.ID).Return(alice, nil)

			got, err := f.svc.GetUser(context.Background(), models.Principal{UserID: "admin-1", Role: role}, alice.ID)
			require.NoError(t, err, role)
			assert.Equal(t, alice.ID, got.ID)
		}
	})

	t.Run("foreign profile is forbidden without a lookup", func(t *testing.T) {
		for _, role := range []models.Role{models.RoleUser, models.RoleManager} {
			f := newAuthFixture(t)
			// no FindUserByID expectation: a call fails the test

			_, err := f.svc.GetUser(context.Background(), models.Principal{UserID: "user-2", Role: role}, f.alice().ID)
			require.ErrorIs(t, err, ErrForbidden, role)
		}
	})

	t.Run("missing user", func(t *testing.T) {
		f := newAuthFixture(t)
		f.users.EXPECT().FindUserByID(gomock.Any(), "ghost").
			Return(models.User{}, fmt.Errorf("%w: no rows", store.ErrUserNotFound))

		_, err := f.svc.GetUser(context.Background(), models.Principal{UserID: "admin-1", Role: models.RoleAdmin}, "ghost")
		require.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestAuthService_VerifyAccessToken(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	tok, err := f.issuer.IssueAccessToken("user-1", "alice@example.com", models.RoleAdmin)
	require.NoError(t, err)

	principal, err := f.svc.VerifyAccessToken(ctx, tok)
	require.NoError(t, err)
	assert.Equal(t, models.Principal{UserID: "user-1", Email: "alice@example.com", Role: models.RoleAdmin}, principal)

	_, err = f.svc.VerifyAccessToken(ctx, "garbage")
	require.ErrorIs(t, err, ErrTokenInvalid)

	f.now = f.now.Add(16 * time.Minute)
	_, err = f.svc.VerifyAccessToken(ctx, tok)
	require.ErrorIs(t, err, ErrTokenExpired)
}

// debugContext returns a context carrying a debug-level logger that writes
// JSON lines into buf.
func debugContext(buf *bytes.Buffer) context.Context {
	zl := zerolog.New(buf).Level(zerolog.DebugLevel)
	return zl.WithContext(context.Background())
}

func TestAuthService_VerifyAccessToken_LogsUnverifiedClaims(t *testing.T) {
	f := newAuthFixture(t)
	tok, err := f.issuer.IssueAccessToken("user-1", "alice@example.com", models.RoleUser)
	require.NoError(t, err)
	f.now = f.now.Add(16 * time.Minute)

	var buf bytes.Buffer
	_, err = f.svc.VerifyAccessToken(debugContext(&buf), tok)
	require.ErrorIs(t, err, ErrTokenExpired)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "access token rejected", entry["message"])
	assert.Equal(t, "user-1", entry["unverified_sub"])
	assert.Equal(t, f.now.Add(-time.Minute).UTC().Format(time.RFC3339), entry["unverified_exp"])
}

func TestAuthService_Refresh_LogsUndecodableToken(t *testing.T) {
	f := newAuthFixture(t)

	var buf bytes.Buffer
	_, err := f.svc.Refresh(debugContext(&buf), "not-a-jwt")
	require.ErrorIs(t, err, ErrInvalidRefreshToken)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "refresh token rejected", entry["message"])
	assert.Equal(t, false, entry["decodable"])
	assert.NotContains(t, entry, "unverified_sub")
}

func TestAuthService_Refresh_ForgedTokenLogsClaimedSubject(t *testing.T) {
	f := newAuthFixture(t)
	issuer := mock.NewMockTokenIssuer(gomock.NewController(t))
	f.svc.issuer = issuer

	issuer.EXPECT().VerifyRefreshToken("forged").Return(models.RefreshClaims{}, token.ErrTokenInvalid)
	issuer.EXPECT().DecodeWithoutVerification("forged").
		Return(map[string]any{"sub": "victim-id", "exp": float64(1767225600)}, true)

	var buf bytes.Buffer
	_, err := f.svc.Refresh(debugContext(&buf), "forged")
	require.ErrorIs(t, err, ErrInvalidRefreshToken)

	assert.Contains(t, buf.String(), `"unverified_sub":"victim-id"`)
	assert.Contains(t, buf.String(), `"unverified_exp":"2026-01-01T00:00:00Z"`)
}

func TestAuthService_RejectionSkipsDecodeWhenDebugIsOff(t *testing.T) {
	f := newAuthFixture(t)
	issuer := mock.NewMockTokenIssuer(gomock.NewController(t))
	f.svc.issuer = issuer

	// no DecodeWithoutVerification expectation: a call fails the test
	issuer.EXPECT().VerifyAccessToken("tok").Return(models.Principal{}, token.ErrTokenInvalid)

	zl := zerolog.New(io.Discard).Level(zerolog.InfoLevel)
	_, err := f.svc.VerifyAccessToken(zl.WithContext(context.Background()), "tok")
	require.ErrorIs(t, err, ErrTokenInvalid)
}

// ── SessionService ───────────────────────────────────────────────────────────

func TestSessionService_PurgeExpiredSessions(t *testing.T) {
	ctrl := gomock.NewController(t)
	sessions := mock.NewMockSessionRepository(ctrl)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	svc := NewSessionService(sessions, logger.Nop()).(*sessionService)
	svc.now = func() time.Time { return now }

	sessions.EXPECT().DeleteExpiredSessions(gomock.Any(), now).Return(int64(3), nil)
	deleted, err := svc.PurgeExpiredSessions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), deleted)

	sessions.EXPECT().DeleteExpiredSessions(gomock.Any(), now).Return(int64(0), errDB)
	_, err = svc.PurgeExpiredSessions(context.Background())
	require.ErrorIs(t, err, ErrInternal)
}

func TestAuthService_Login_SigningFails(t *testing.T) {
	f := newAuthFixture(t)
	issuer := mock.NewMockTokenIssuer(gomock.NewController(t))
	f.svc.issuer = issuer

	f.users.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(f.alice(), nil)
	f.hasher.EXPECT().Verify(gomock.Any(), gomock.Any()).Return(true)
	f.sessions.EXPECT().DeleteExpiredUserSessions(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), nil)
	issuer.EXPECT().IssueAccessToken(gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("hmac failure"))

	_, err := f.svc.Login(context.Background(), models.LoginRequest{Email: "alice@example.com", Password: "Passw0rd!"})
	require.ErrorIs(t, err, ErrInternal)
}
