// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 UT Marketplace Authors

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lushkiwi/UT-Marketplace/internal/logger"
	"github.com/lushkiwi/UT-Marketplace/internal/store"
	"github.com/lushkiwi/UT-Marketplace/internal/utils"
	"github.com/lushkiwi/UT-Marketplace/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock: store.UserRepository
// ─────────────────────────────────────────────

type mockUserRepository struct {
	createFn func(ctx context.Context, user models.User) (models.User, error)
	findFn   func(ctx context.Context, user models.User) (models.User, error)
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	return user, nil
}

func (m *mockUserRepository) FindUserByLogin(ctx context.Context, user models.User) (models.User, error) {
	if m.findFn != nil {
		return m.findFn(ctx, user)
	}
	return user, nil
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

const (
	testHashKey  = "test-password-hash-key"
	testSignKey  = "test-token-sign-key"
	testIssuer   = "marketplace-test"
	testDuration = time.Hour
)

// newRawAuthService builds the bare *authService with fixed test keys so the
// hashing and token behaviour is deterministic.
func newRawAuthService(users *mockUserRepository, keys *mockKeyRepository) *authService {
	return &authService{
		userRepository: users,
		keyRepository:  keys,
		hashKey:        testHashKey,
		tokenSignKey:   testSignKey,
		tokenIssuer:    testIssuer,
		tokenDuration:  testDuration,
		logger:         logger.Nop(),
	}
}

var errStorage = errors.New("storage error")

// ─────────────────────────────────────────────
// RegisterUser
// ─────────────────────────────────────────────

func TestAuthService_RegisterUser_Success_WithoutKeyBundle(t *testing.T) {
	keySaveCalled := false
	users := &mockUserRepository{
		createFn: func(_ context.Context, user models.User) (models.User, error) {
			assert.Equal(t, "alice", user.Login)
			assert.Equal(t, "Alice", user.Name)
			assert.Equal(t, utils.HashString("secret", testHashKey), user.AuthHash)
			assert.Empty(t, user.Password, "plaintext password must not reach the repository")

			user.UserID = 42
			return user, nil
		},
	}
	keys := &mockKeyRepository{
		saveFn: func(_ context.Context, _ models.KeyRecord) error {
			keySaveCalled = true
			return nil
		},
	}
	svc := newRawAuthService(users, keys)

	registered, err := svc.RegisterUser(context.Background(), models.RegisterRequest{
		Login:    "alice",
		Name:     "Alice",
		Password: "secret",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(42), registered.UserID)
	assert.False(t, keySaveCalled, "no key record should be written when the request carries no bundle")
}

func TestAuthService_RegisterUser_Success_WithKeyBundle(t *testing.T) {
	var savedRecord models.KeyRecord
	users := &mockUserRepository{
		createFn: func(_ context.Context, user models.User) (models.User, error) {
			user.UserID = 7
			return user, nil
		},
	}
	keys := &mockKeyRepository{
		saveFn: func(_ context.Context, record models.KeyRecord) error {
			savedRecord = record
			return nil
		},
	}
	svc := newRawAuthService(users, keys)

	_, err := svc.RegisterUser(context.Background(), models.RegisterRequest{
		Login:               "bob",
		Password:            "secret",
		PublicKey:           "pub-b64",
		EncryptedPrivateKey: "blob-b64",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(7), savedRecord.UserID, "key record must reference the freshly created user")
	assert.Equal(t, "pub-b64", savedRecord.PublicKey)
	assert.Equal(t, "blob-b64", savedRecord.EncryptedPrivateKey)
}

func TestAuthService_RegisterUser_HalfBundleSkipsKeySave(t *testing.T) {
	keySaveCalled := false
	users := &mockUserRepository{
		createFn: func(_ context.Context, user models.User) (models.User, error) {
			user.UserID = 1
			return user, nil
		},
	}
	keys := &mockKeyRepository{
		saveFn: func(_ context.Context, _ models.KeyRecord) error {
			keySaveCalled = true
			return nil
		},
	}
	svc := newRawAuthService(users, keys)

	// Rejecting half bundles is the validation layer's job; the service
	// itself only persists complete ones.
	_, err := svc.RegisterUser(context.Background(), models.RegisterRequest{
		Login:     "carol",
		Password:  "secret",
		PublicKey: "pub-only",
	})

	require.NoError(t, err)
	assert.False(t, keySaveCalled)
}

func TestAuthService_RegisterUser_EmptyLogin(t *testing.T) {
	svc := newRawAuthService(nil, nil)

	_, err := svc.RegisterUser(context.Background(), models.RegisterRequest{
		Password: "secret",
	})

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestAuthService_RegisterUser_EmptyPassword(t *testing.T) {
	svc := newRawAuthService(nil, nil)

	_, err := svc.RegisterUser(context.Background(), models.RegisterRequest{
		Login: "alice",
	})

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestAuthService_RegisterUser_LoginAlreadyTaken(t *testing.T) {
	users := &mockUserRepository{
		createFn: func(_ context.Context, _ models.User) (models.User, error) {
			return models.User{}, store.ErrLoginAlreadyExists
		},
	}
	svc := newRawAuthService(users, nil)

	_, err := svc.RegisterUser(context.Background(), models.RegisterRequest{
		Login:    "alice",
		Password: "secret",
	})

	require.ErrorIs(t, err, store.ErrLoginAlreadyExists)
}

func TestAuthService_RegisterUser_KeyRecordError(t *testing.T) {
	users := &mockUserRepository{
		createFn: func(_ context.Context, user models.User) (models.User, error) {
			user.UserID = 3
			return user, nil
		},
	}
	keys := &mockKeyRepository{
		saveFn: func(_ context.Context, _ models.KeyRecord) error {
			return errStorage
		},
	}
	svc := newRawAuthService(users, keys)

	_, err := svc.RegisterUser(context.Background(), models.RegisterRequest{
		Login:               "dave",
		Password:            "secret",
		PublicKey:           "pub",
		EncryptedPrivateKey: "blob",
	})

	require.ErrorIs(t, err, errStorage)
}

// ─────────────────────────────────────────────
// Login
// ─────────────────────────────────────────────

func TestAuthService_Login_Success(t *testing.T) {
	stored := models.User{
		UserID:   11,
		Login:    "alice",
		Name:     "Alice",
		AuthHash: utils.HashString("correct", testHashKey),
	}
	users := &mockUserRepository{
		findFn: func(_ context.Context, user models.User) (models.User, error) {
			assert.Equal(t, "alice", user.Login)
			return stored, nil
		},
	}
	svc := newRawAuthService(users, nil)

	found, err := svc.Login(context.Background(), models.User{Login: "alice", Password: "correct"})

	require.NoError(t, err)
	assert.Equal(t, stored, found)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	users := &mockUserRepository{
		findFn: func(_ context.Context, _ models.User) (models.User, error) {
			return models.User{
				UserID:   11,
				Login:    "alice",
				AuthHash: utils.HashString("correct", testHashKey),
			}, nil
		},
	}
	svc := newRawAuthService(users, nil)

	_, err := svc.Login(context.Background(), models.User{Login: "alice", Password: "wrong"})

	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestAuthService_Login_UserNotFound(t *testing.T) {
	users := &mockUserRepository{
		findFn: func(_ context.Context, _ models.User) (models.User, error) {
			return models.User{}, store.ErrNoUserWasFound
		},
	}
	svc := newRawAuthService(users, nil)

	_, err := svc.Login(context.Background(), models.User{Login: "ghost", Password: "secret"})

	require.ErrorIs(t, err, store.ErrNoUserWasFound)
}

func TestAuthService_Login_EmptyCredentials(t *testing.T) {
	svc := newRawAuthService(nil, nil)

	_, err := svc.Login(context.Background(), models.User{})

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

// ─────────────────────────────────────────────
// CreateToken / ParseToken
// ─────────────────────────────────────────────

func TestAuthService_TokenRoundTrip(t *testing.T) {
	svc := newRawAuthService(nil, nil)

	token, err := svc.CreateToken(context.Background(), models.User{UserID: 77})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(context.Background(), token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(77), parsed.UserID)
}

func TestAuthService_ParseToken_Garbage(t *testing.T) {
	svc := newRawAuthService(nil, nil)

	_, err := svc.ParseToken(context.Background(), "not.a.token")

	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_ParseToken_Expired(t *testing.T) {
	svc := newRawAuthService(nil, nil)
	svc.tokenDuration = -time.Minute

	token, err := svc.CreateToken(context.Background(), models.User{UserID: 5})
	require.NoError(t, err)

	_, err = svc.ParseToken(context.Background(), token.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_ParseToken_WrongIssuer(t *testing.T) {
	issuing := newRawAuthService(nil, nil)
	issuing.tokenIssuer = "some-other-service"

	token, err := issuing.CreateToken(context.Background(), models.User{UserID: 5})
	require.NoError(t, err)

	verifying := newRawAuthService(nil, nil)
	_, err = verifying.ParseToken(context.Background(), token.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}
