package service

import (
	"context"
	"testing"

	"github.com/lushkiwi/UT-Marketplace/internal/validators"
	"github.com/lushkiwi/UT-Marketplace/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mocks
// ─────────────────────────────────────────────

type mockInnerAuthService struct {
	registerFn    func(ctx context.Context, request models.RegisterRequest) (models.User, error)
	loginFn       func(ctx context.Context, user models.User) (models.User, error)
	createTokenFn func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn  func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockInnerAuthService) RegisterUser(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	if m.registerFn != nil {
		return m.registerFn(ctx, request)
	}
	return models.User{}, nil
}

func (m *mockInnerAuthService) Login(ctx context.Context, user models.User) (models.User, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, user)
	}
	return user, nil
}

func (m *mockInnerAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if m.createTokenFn != nil {
		return m.createTokenFn(ctx, user)
	}
	return models.Token{}, nil
}

func (m *mockInnerAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.parseTokenFn != nil {
		return m.parseTokenFn(ctx, tokenString)
	}
	return models.Token{}, nil
}

// ─────────────────────────────────────────────
// Helper
// ─────────────────────────────────────────────

// newValidatingAuthService wires the real MessagingValidator so the tests
// cover the decorator and the rules it enforces together.
func newValidatingAuthService(inner AuthService) AuthService {
	return NewAuthValidationService().Wrap(inner)
}

// ─────────────────────────────────────────────
// RegisterUser
// ─────────────────────────────────────────────

func TestAuthValidation_RegisterUser_Success(t *testing.T) {
	called := false
	inner := &mockInnerAuthService{
		registerFn: func(_ context.Context, request models.RegisterRequest) (models.User, error) {
			called = true
			assert.Equal(t, "alice", request.Login)
			return models.User{UserID: 42, Login: request.Login}, nil
		},
	}
	svc := newValidatingAuthService(inner)

	registered, err := svc.RegisterUser(context.Background(), models.RegisterRequest{
		Login:               "alice",
		Password:            "secret",
		PublicKey:           "pub-b64",
		EncryptedPrivateKey: "blob-b64",
	})

	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, int64(42), registered.UserID)
}

func TestAuthValidation_RegisterUser_KeylessSignupAllowed(t *testing.T) {
	called := false
	inner := &mockInnerAuthService{
		registerFn: func(_ context.Context, _ models.RegisterRequest) (models.User, error) {
			called = true
			return models.User{}, nil
		},
	}
	svc := newValidatingAuthService(inner)

	_, err := svc.RegisterUser(context.Background(), models.RegisterRequest{
		Login:    "bob",
		Password: "secret",
	})

	require.NoError(t, err)
	assert.True(t, called, "a signup without any key material is a valid legacy-style signup")
}

func TestAuthValidation_RegisterUser_HalfBundleRejected(t *testing.T) {
	svc := newValidatingAuthService(nil)

	_, err := svc.RegisterUser(context.Background(), models.RegisterRequest{
		Login:     "carol",
		Password:  "secret",
		PublicKey: "pub-only",
	})

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrPartialKeyBundle)
}

func TestAuthValidation_RegisterUser_BlobOnlyRejected(t *testing.T) {
	svc := newValidatingAuthService(nil)

	_, err := svc.RegisterUser(context.Background(), models.RegisterRequest{
		Login:               "carol",
		Password:            "secret",
		EncryptedPrivateKey: "blob-only",
	})

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrPartialKeyBundle)
}

func TestAuthValidation_RegisterUser_EmptyLogin(t *testing.T) {
	svc := newValidatingAuthService(nil)

	_, err := svc.RegisterUser(context.Background(), models.RegisterRequest{
		Password: "secret",
	})

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrEmptyLogin)
}

func TestAuthValidation_RegisterUser_EmptyPassword(t *testing.T) {
	svc := newValidatingAuthService(nil)

	_, err := svc.RegisterUser(context.Background(), models.RegisterRequest{
		Login: "alice",
	})

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrEmptyPassword)
}

// ─────────────────────────────────────────────
// Login
// ─────────────────────────────────────────────

func TestAuthValidation_Login_Success(t *testing.T) {
	inner := &mockInnerAuthService{
		loginFn: func(_ context.Context, user models.User) (models.User, error) {
			assert.Equal(t, "alice", user.Login)
			return models.User{UserID: 11}, nil
		},
	}
	svc := newValidatingAuthService(inner)

	found, err := svc.Login(context.Background(), models.User{Login: "alice", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, int64(11), found.UserID)
}

func TestAuthValidation_Login_EmptyCredentials(t *testing.T) {
	svc := newValidatingAuthService(nil)

	_, err := svc.Login(context.Background(), models.User{})

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

// ─────────────────────────────────────────────
// Token passthrough
// ─────────────────────────────────────────────

func TestAuthValidation_TokenMethodsDelegate(t *testing.T) {
	inner := &mockInnerAuthService{
		createTokenFn: func(_ context.Context, user models.User) (models.Token, error) {
			assert.Equal(t, int64(5), user.UserID)
			return models.Token{SignedString: "signed"}, nil
		},
		parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
			assert.Equal(t, "signed", tokenString)
			return models.Token{UserID: 5}, nil
		},
	}
	svc := newValidatingAuthService(inner)

	token, err := svc.CreateToken(context.Background(), models.User{UserID: 5})
	require.NoError(t, err)
	assert.Equal(t, "signed", token.SignedString)

	parsed, err := svc.ParseToken(context.Background(), token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(5), parsed.UserID)
}
