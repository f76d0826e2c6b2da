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

// saveRepository is the PostgreSQL-backed implementation of [SaveRepository].
// Each owner has at most one row in "saves"; a new save replaces it.
type saveRepository struct {
	*DB
	logger *logger.Logger
}

// NewSaveRepository constructs a [SaveRepository].
func NewSaveRepository(db *DB, logger *logger.Logger) SaveRepository {
	return &saveRepository{
		DB:     db,
		logger: logger,
	}
}

// StoreRecord upserts the owner's sealed record.
func (s *saveRepository) StoreRecord(ctx context.Context, record models.SealedRecord) error {
	log := logger.FromContext(ctx)

	err := s.withRetry(ctx, func() error {
		_, err := s.ExecContext(ctx, upsertSave,
			record.Owner, int(record.Version), record.Salt, record.Nonce, record.Tag, record.Data)
		return err
	})
	if err != nil {
		log.Err(err).
			Str("func", "saveRepository.StoreRecord").
			Str("owner", record.Owner).
			Msg("failed to upsert sealed record")

		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return fmt.Errorf("%w: %s", ErrAccountNotFound, record.Owner)
		}
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// GetRecord returns the owner's sealed record or [ErrRecordNotFound].
func (s *saveRepository) GetRecord(ctx context.Context, owner string) (models.SealedRecord, error) {
	log := logger.FromContext(ctx)

	var (
		record  models.SealedRecord
		version int
	)
	err := s.QueryRowContext(ctx, getSave, owner).
		Scan(&record.Owner, &version, &record.Salt, &record.Nonce, &record.Tag, &record.Data)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.SealedRecord{}, ErrRecordNotFound
	case err != nil:
		log.Err(err).
			Str("func", "saveRepository.GetRecord").
			Str("owner", owner).
			Msg("failed to scan sealed record")
		return models.SealedRecord{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	record.Version = models.RecordVersion(version)
	return record, nil
}
