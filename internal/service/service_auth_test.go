package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-save-keeper/internal/config"
	"github.com/MKhiriev/go-save-keeper/internal/logger"
	"github.com/MKhiriev/go-save-keeper/internal/mock"
	"github.com/MKhiriev/go-save-keeper/internal/store"
	"github.com/MKhiriev/go-save-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type authFixture struct {
	accounts     *mock.MockAccountRepository
	progressions *mock.MockProgressionRepository
	hasher       *mock.MockPasswordHasher
	svc          AuthService
}

func newAuthFixture(t *testing.T) authFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := authFixture{
		accounts:     mock.NewMockAccountRepository(ctrl),
		progressions: mock.NewMockProgressionRepository(ctrl),
		hasher:       mock.NewMockPasswordHasher(ctrl),
	}
	f.svc = NewAuthService(f.accounts, f.progressions, f.hasher, config.ServerApp{
		TokenSignKey:  "sign-key",
		TokenIssuer:   "save-keeper",
		TokenDuration: time.Hour,
	}, logger.Nop())

	return f
}

// ─────────────────────────────────────────────
// Register
// ─────────────────────────────────────────────

func TestAuthService_Register_Success(t *testing.T) {
	f := newAuthFixture(t)
	hash, salt := []byte("hash"), []byte("salt")

	f.hasher.EXPECT().Hash("p@ss").Return(hash, salt, nil)
	f.accounts.EXPECT().
		CreateAccount(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, a models.Account) (models.Account, error) {
			assert.NotEmpty(t, a.ID)
			assert.Equal(t, "hero", a.Username)
			assert.Equal(t, "hero@example.com", a.Email)
			assert.Equal(t, hash, a.PasswordHash)
			assert.Equal(t, salt, a.PasswordSalt)
			a.CreatedAt = time.Now()
			return a, nil
		})

	account, err := f.svc.Register(context.Background(), models.Credentials{
		Username: "  hero ",
		Email:    "hero@example.com",
		Password: "p@ss",
	})

	require.NoError(t, err)
	assert.Equal(t, "hero", account.Username)
}

func TestAuthService_Register_InvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		creds   models.Credentials
		wantErr error
	}{
		{"empty username", models.Credentials{Email: "a@b.co", Password: "x"}, ErrInvalidDataProvided},
		{"blank username", models.Credentials{Username: "   ", Email: "a@b.co", Password: "x"}, ErrInvalidDataProvided},
		{"empty password", models.Credentials{Username: "hero", Email: "a@b.co"}, ErrInvalidDataProvided},
		{"email as username", models.Credentials{Username: "alice@example.com", Email: "a@b.co", Password: "x"}, ErrInvalidDataProvided},
		{"slash in username", models.Credentials{Username: "a/b", Email: "a@b.co", Password: "x"}, ErrInvalidDataProvided},
		{"no at sign", models.Credentials{Username: "hero", Email: "hero.example.com", Password: "x"}, ErrInvalidEmail},
		{"no tld", models.Credentials{Username: "hero", Email: "hero@example", Password: "x"}, ErrInvalidEmail},
		{"empty email", models.Credentials{Username: "hero", Password: "x"}, ErrInvalidEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAuthFixture(t)

			_, err := f.svc.Register(context.Background(), tt.creds)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAuthService_Register_AlreadyExists(t *testing.T) {
	f := newAuthFixture(t)

	f.hasher.EXPECT().Hash("p@ss").Return([]byte("h"), []byte("s"), nil)
	f.accounts.EXPECT().CreateAccount(gomock.Any(), gomock.Any()).Return(models.Account{}, store.ErrAccountAlreadyExists)

	_, err := f.svc.Register(context.Background(), models.Credentials{Username: "hero", Email: "hero@example.com", Password: "p@ss"})
	assert.ErrorIs(t, err, store.ErrAccountAlreadyExists)
}

func TestAuthService_Register_HashFailure(t *testing.T) {
	f := newAuthFixture(t)

	f.hasher.EXPECT().Hash("p@ss").Return(nil, nil, errors.New("no entropy"))

	_, err := f.svc.Register(context.Background(), models.Credentials{Username: "hero", Email: "hero@example.com", Password: "p@ss"})
	require.Error(t, err)
}

// ─────────────────────────────────────────────
// Login
// ─────────────────────────────────────────────

func storedAccount() models.Account {
	return models.Account{
		ID:           "0192e0a4-0000-7000-8000-000000000001",
		Username:     "hero",
		Email:        "hero@example.com",
		PasswordHash: []byte("hash"),
		PasswordSalt: []byte("salt"),
	}
}

func TestAuthService_Login_AttachesProgression(t *testing.T) {
	f := newAuthFixture(t)
	stored := storedAccount()
	progression := models.Progression{Owner: "hero", MonstersKilled: 4, DistanceTraveled: 90}

	f.accounts.EXPECT().FindAccount(gomock.Any(), models.LoginByEmail, "hero@example.com").Return(stored, nil)
	f.hasher.EXPECT().Verify("p@ss", stored.PasswordHash, stored.PasswordSalt).Return(true)
	f.progressions.EXPECT().GetProgression(gomock.Any(), "hero").Return(progression, nil)

	account, err := f.svc.Login(context.Background(), models.Credentials{Email: "hero@example.com", Password: "p@ss"})

	require.NoError(t, err)
	require.NotNil(t, account.Progression)
	assert.Equal(t, progression, *account.Progression)
}

func TestAuthService_Login_WithoutProgression(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"not found", store.ErrProgressionNotFound},
		{"lookup failure", errors.New("db down")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAuthFixture(t)
			stored := storedAccount()

			f.accounts.EXPECT().FindAccount(gomock.Any(), models.LoginByUsername, "hero").Return(stored, nil)
			f.hasher.EXPECT().Verify("p@ss", gomock.Any(), gomock.Any()).Return(true)
			f.progressions.EXPECT().GetProgression(gomock.Any(), "hero").Return(models.Progression{}, tt.err)

			account, err := f.svc.Login(context.Background(), models.Credentials{Username: "hero", Password: "p@ss"})

			require.NoError(t, err)
			assert.Nil(t, account.Progression)
		})
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	f := newAuthFixture(t)

	f.accounts.EXPECT().FindAccount(gomock.Any(), models.LoginByUsername, "hero").Return(storedAccount(), nil)
	f.hasher.EXPECT().Verify("nope", gomock.Any(), gomock.Any()).Return(false)

	_, err := f.svc.Login(context.Background(), models.Credentials{Username: "hero", Password: "nope"})
	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestAuthService_Login_UnknownAccountLooksLikeWrongPassword(t *testing.T) {
	f := newAuthFixture(t)

	f.accounts.EXPECT().FindAccount(gomock.Any(), models.LoginByUsername, "ghost").Return(models.Account{}, store.ErrAccountNotFound)

	_, err := f.svc.Login(context.Background(), models.Credentials{Username: "ghost", Password: "p@ss"})
	assert.ErrorIs(t, err, ErrWrongPassword)
	assert.NotErrorIs(t, err, store.ErrAccountNotFound)
}

func TestAuthService_Login_RepositoryFailure(t *testing.T) {
	f := newAuthFixture(t)
	dbErr := errors.New("connection reset")

	f.accounts.EXPECT().FindAccount(gomock.Any(), models.LoginByUsername, "hero").Return(models.Account{}, dbErr)

	_, err := f.svc.Login(context.Background(), models.Credentials{Username: "hero", Password: "p@ss"})
	assert.ErrorIs(t, err, dbErr)
}

func TestAuthService_Login_EmptyCredentials(t *testing.T) {
	f := newAuthFixture(t)

	_, err := f.svc.Login(context.Background(), models.Credentials{Username: "hero"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = f.svc.Login(context.Background(), models.Credentials{Password: "p@ss"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

// ─────────────────────────────────────────────
// CreateToken / ParseToken
// ─────────────────────────────────────────────

func TestAuthService_TokenRoundTrip(t *testing.T) {
	f := newAuthFixture(t)

	token, err := f.svc.CreateToken(context.Background(), models.Account{Username: "hero"})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := f.svc.ParseToken(context.Background(), token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, "hero", parsed.Username)
}

func TestAuthService_ParseToken_Rejects(t *testing.T) {
	f := newAuthFixture(t)

	other := NewAuthService(nil, nil, nil, config.ServerApp{
		TokenSignKey:  "other-key",
		TokenIssuer:   "save-keeper",
		TokenDuration: time.Hour,
	}, logger.Nop())
	foreign, err := other.CreateToken(context.Background(), models.Account{Username: "hero"})
	require.NoError(t, err)

	expiring := NewAuthService(nil, nil, nil, config.ServerApp{
		TokenSignKey:  "sign-key",
		TokenIssuer:   "save-keeper",
		TokenDuration: -time.Minute,
	}, logger.Nop())
	expired, err := expiring.CreateToken(context.Background(), models.Account{Username: "hero"})
	require.NoError(t, err)

	for name, raw := range map[string]string{
		"garbage":       "not.a.jwt",
		"foreign key":   foreign.SignedString,
		"expired token": expired.SignedString,
		"empty":         "",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := f.svc.ParseToken(context.Background(), raw)
			assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
		})
	}
}
