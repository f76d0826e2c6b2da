package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-save-keeper/internal/logger"
)

// Storages groups the server repositories.
type Storages struct {
	AccountRepository     AccountRepository
	SaveRepository        SaveRepository
	ProgressionRepository ProgressionRepository

	db *DB
}

// NewStorages connects to PostgreSQL, applies migrations and builds the
// repositories.
func NewStorages(ctx context.Context, dsn string, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, dsn, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		AccountRepository:     NewAccountRepository(db, logger),
		SaveRepository:        NewSaveRepository(db, logger),
		ProgressionRepository: NewProgressionRepository(db, logger),
		db:                    db,
	}, nil
}

// Close releases the database connection pool.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
