package service

import (
	"context"
	"errors"
	"strings"

	"github.com/MKhiriev/go-save-keeper/internal/adapter"
	"github.com/MKhiriev/go-save-keeper/internal/logger"
	"github.com/MKhiriev/go-save-keeper/internal/validators"
	"github.com/MKhiriev/go-save-keeper/models"
)

type clientAuthService struct {
	adapter   adapter.ServerAdapter
	validator validators.Validator
	logger    *logger.Logger
}

func NewClientAuthService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{
		adapter:   serverAdapter,
		validator: validators.NewGameRequestValidator(),
		logger:    logger,
	}
}

func (a *clientAuthService) Register(ctx context.Context, credentials models.Credentials) models.AuthResult {
	credentials.Username = strings.TrimSpace(credentials.Username)
	credentials.Email = strings.TrimSpace(credentials.Email)

	err := a.validator.Validate(ctx, credentials)
	if errors.Is(err, validators.ErrInvalidEmail) {
		return models.AuthFailed("Please enter a valid email address.")
	}
	if errors.Is(err, validators.ErrInvalidUsername) {
		return models.AuthFailed("Usernames may only contain letters, digits, '.', '_' and '-'.")
	}
	if err != nil {
		return models.AuthFailed("Username and password are required.")
	}

	account, err := a.adapter.Register(ctx, credentials)
	if err != nil {
		a.logger.Err(err).Str("func", "clientAuthService.Register").Str("username", credentials.Username).Msg("registration failed")
		return models.AuthFailed(describeAuthError(err))
	}

	a.logger.Info().Str("username", account.Username).Msg("registered")
	return models.AuthSucceeded(account)
}

func (a *clientAuthService) Login(ctx context.Context, credentials models.Credentials) models.AuthResult {
	credentials.Username = strings.TrimSpace(credentials.Username)
	credentials.Email = strings.TrimSpace(credentials.Email)

	if a.validator.Validate(ctx, credentials, validators.FieldIdentifier, validators.FieldPassword) != nil {
		return models.AuthFailed("Username or email and password are required.")
	}

	account, err := a.adapter.Login(ctx, credentials)
	if err != nil {
		a.logger.Err(err).Str("func", "clientAuthService.Login").Str("identifier", credentials.Identifier()).Msg("login failed")
		return models.AuthFailed(describeAuthError(err))
	}

	a.logger.Info().Str("username", account.Username).Msg("logged in")
	return models.AuthSucceeded(account)
}
