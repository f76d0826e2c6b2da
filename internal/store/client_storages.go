package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-save-keeper/internal/logger"
)

// ClientStorages groups all client-side storage repositories.
type ClientStorages struct {
	// LocalSaveRepository is the SQLite-backed cache of the last save.
	LocalSaveRepository LocalSaveRepository

	db *DB
}

// NewClientStorages opens the SQLite cache at dsn, creating the file if
// needed, applies migrations and builds the repositories.
func NewClientStorages(ctx context.Context, dsn string, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, dsn, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		LocalSaveRepository: NewLocalSaveRepository(db, logger),
		db:                  db,
	}, nil
}

// Close releases the database connection.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
