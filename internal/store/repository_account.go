package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-save-keeper/internal/logger"
	"github.com/MKhiriev/go-save-keeper/models"
	"github.com/jackc/pgerrcode"
)

// accountRepository is the PostgreSQL-backed implementation of
// [AccountRepository]. It handles account creation and lookup against the
// "accounts" table.
type accountRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAccountRepository constructs an [AccountRepository] backed by the
// provided database connection and logger.
func NewAccountRepository(db *DB, logger *logger.Logger) AccountRepository {
	logger.Debug().Msg("creating account repository")
	return &accountRepository{
		db:     db,
		logger: logger,
	}
}

// CreateAccount persists a new account and returns it with server-assigned
// fields (CreatedAt) filled in.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrAccountAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *accountRepository) CreateAccount(ctx context.Context, account models.Account) (models.Account, error) {
	log := logger.FromContext(ctx)

	var created models.Account
	err := r.db.withRetry(ctx, func() error {
		row := r.db.QueryRowContext(ctx, createAccount,
			account.ID, account.Username, account.Email, account.PasswordHash, account.PasswordSalt)

		return row.Scan(&created.ID, &created.Username, &created.Email,
			&created.PasswordHash, &created.PasswordSalt, &created.CreatedAt)
	})
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.CreateAccount").Str("username", account.Username).Msg("error creating account")

		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.Account{}, ErrAccountAlreadyExists
		}
		return models.Account{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// FindAccount retrieves the account whose username or email (as chosen by
// by) equals value. Returns [ErrAccountNotFound] when nothing matches.
func (r *accountRepository) FindAccount(ctx context.Context, by models.LoginField, value string) (models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindAccountQuery(ctx, by, value)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.FindAccount").Msg("failed to create query")
		return models.Account{}, err
	}

	var found models.Account
	row := r.db.QueryRowContext(ctx, query, args...)
	err = row.Scan(&found.ID, &found.Username, &found.Email,
		&found.PasswordHash, &found.PasswordSalt, &found.CreatedAt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Account{}, ErrAccountNotFound
	case err != nil:
		log.Err(err).Str("func", "*accountRepository.FindAccount").Msg("error scanning account")
		return models.Account{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return found, nil
}
