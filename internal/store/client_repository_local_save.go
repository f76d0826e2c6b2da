package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-save-keeper/internal/logger"
	"github.com/MKhiriev/go-save-keeper/models"
)

type localSaveRepository struct {
	*DB
	logger *logger.Logger
}

// NewLocalSaveRepository constructs a [LocalSaveRepository] over the client
// SQLite cache.
func NewLocalSaveRepository(db *DB, logger *logger.Logger) LocalSaveRepository {
	return &localSaveRepository{
		DB:     db,
		logger: logger,
	}
}

func (l *localSaveRepository) SaveLocal(ctx context.Context, save models.LocalSave) error {
	log := logger.FromContext(ctx)

	game, err := json.Marshal(save.Game)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingLocalSave, err)
	}

	p := save.Progression
	_, err = l.ExecContext(ctx, upsertLocalSave,
		p.Owner,
		game,
		p.MonstersKilled,
		p.DistanceTraveled,
		p.AsOf.UTC(),
		p.Signature,
	)
	if err != nil {
		log.Err(err).
			Str("func", "localSaveRepository.SaveLocal").
			Str("owner", p.Owner).
			Msg("failed to execute upsert for local save")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (l *localSaveRepository) GetLocalSave(ctx context.Context, owner string) (models.LocalSave, error) {
	log := logger.FromContext(ctx)

	var (
		save models.LocalSave
		game []byte
		asOf time.Time
	)
	err := l.QueryRowContext(ctx, getLocalSave, owner).Scan(
		&save.Progression.Owner,
		&game,
		&save.Progression.MonstersKilled,
		&save.Progression.DistanceTraveled,
		&asOf,
		&save.Progression.Signature,
	)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.LocalSave{}, ErrLocalSaveNotFound
	case err != nil:
		log.Err(err).
			Str("func", "localSaveRepository.GetLocalSave").
			Str("owner", owner).
			Msg("failed to scan local save row")
		return models.LocalSave{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if err = json.Unmarshal(game, &save.Game); err != nil {
		return models.LocalSave{}, fmt.Errorf("%w: %w", ErrEncodingLocalSave, err)
	}
	save.Progression.AsOf = asOf.UTC()

	return save, nil
}

func (l *localSaveRepository) DeleteLocalSave(ctx context.Context, owner string) error {
	log := logger.FromContext(ctx)

	if _, err := l.ExecContext(ctx, deleteLocalSave, owner); err != nil {
		log.Err(err).
			Str("func", "localSaveRepository.DeleteLocalSave").
			Str("owner", owner).
			Msg("failed to delete local save")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
