package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-save-keeper/internal/config"
	"github.com/MKhiriev/go-save-keeper/internal/crypto"
	"github.com/MKhiriev/go-save-keeper/internal/logger"
	"github.com/MKhiriev/go-save-keeper/internal/store"
	"github.com/MKhiriev/go-save-keeper/internal/utils"
	"github.com/MKhiriev/go-save-keeper/internal/validators"
	"github.com/MKhiriev/go-save-keeper/models"
)

// authService is the concrete implementation of AuthService.
// It handles account registration, credential verification, and JWT token
// lifecycle.
type authService struct {
	// accountRepository is the data-access layer used to create and look up
	// accounts.
	accountRepository store.AccountRepository

	// progressionRepository supplies the progression attached on login.
	progressionRepository store.ProgressionRepository

	hasher    crypto.PasswordHasher
	ids       *utils.UUIDGenerator
	validator validators.Validator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(accounts store.AccountRepository, progressions store.ProgressionRepository, hasher crypto.PasswordHasher, cfg config.ServerApp, logger *logger.Logger) AuthService {
	return &authService{
		accountRepository:     accounts,
		progressionRepository: progressions,
		hasher:                hasher,
		ids:                   utils.NewUUIDGenerator(),
		validator:             validators.NewGameRequestValidator(),
		tokenSignKey:          cfg.TokenSignKey,
		tokenIssuer:           cfg.TokenIssuer,
		tokenDuration:         cfg.TokenDuration,
		logger:                logger,
	}
}

// Register creates a new account.
//
// Returns:
//   - ErrInvalidDataProvided if the username or the password is empty.
//   - ErrInvalidEmail if the email is not of the form local@domain.tld.
//   - A wrapped storage error if the repository call fails (e.g. username
//     already taken, see store.ErrAccountAlreadyExists).
func (a *authService) Register(ctx context.Context, credentials models.Credentials) (models.Account, error) {
	log := logger.FromContext(ctx)

	credentials.Username = strings.TrimSpace(credentials.Username)
	credentials.Email = strings.TrimSpace(credentials.Email)

	err := a.validator.Validate(ctx, credentials, validators.FieldUsername, validators.FieldPassword, validators.FieldEmail)
	if errors.Is(err, validators.ErrInvalidEmail) {
		log.Error().Str("username", credentials.Username).Msg("invalid email provided")
		return models.Account{}, ErrInvalidEmail
	}
	if err != nil {
		log.Error().Err(err).Str("username", credentials.Username).Msg("invalid account data provided")
		return models.Account{}, ErrInvalidDataProvided
	}

	hash, salt, err := a.hasher.Hash(credentials.Password)
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Msg("password hashing failed")
		return models.Account{}, fmt.Errorf("password hashing failed: %w", err)
	}

	account, err := a.accountRepository.CreateAccount(ctx, models.Account{
		ID:           a.ids.Generate(),
		Username:     credentials.Username,
		Email:        credentials.Email,
		PasswordHash: hash,
		PasswordSalt: salt,
	})
	if err != nil {
		log.Err(err).Str("username", credentials.Username).Msg("account creation ended with error")
		return models.Account{}, fmt.Errorf("account creation ended with error: %w", err)
	}

	return account, nil
}

// Login authenticates an existing account.
//
// An unknown identifier and a wrong password both yield ErrWrongPassword so
// that logins cannot be used to discover accounts.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.Account, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, credentials, validators.FieldIdentifier, validators.FieldPassword); err != nil {
		log.Error().Err(err).Msg("invalid credentials provided")
		return models.Account{}, ErrInvalidDataProvided
	}
	by, identifier := credentials.Lookup()
	identifier = strings.TrimSpace(identifier)

	account, err := a.accountRepository.FindAccount(ctx, by, identifier)
	if errors.Is(err, store.ErrAccountNotFound) {
		log.Warn().Str("identifier", identifier).Msg("login for unknown account")
		return models.Account{}, ErrWrongPassword
	}
	if err != nil {
		log.Err(err).Str("identifier", identifier).Msg("account search failed")
		return models.Account{}, fmt.Errorf("account search failed: %w", err)
	}

	if !a.hasher.Verify(credentials.Password, account.PasswordHash, account.PasswordSalt) {
		log.Warn().Str("username", account.Username).Msg("wrong password")
		return models.Account{}, ErrWrongPassword
	}

	progression, err := a.progressionRepository.GetProgression(ctx, account.Username)
	switch {
	case err == nil:
		account.Progression = &progression
	case !errors.Is(err, store.ErrProgressionNotFound):
		// login still succeeds without the summary
		log.Err(err).Str("username", account.Username).Msg("could not attach progression")
	}

	return account, nil
}

// CreateToken issues a signed JWT whose subject is the account username.
func (a *authService) CreateToken(ctx context.Context, account models.Account) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, account.Username, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates a raw JWT string. Any validation failure (expired,
// wrong issuer, malformed) is normalised to ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
