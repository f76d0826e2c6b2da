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

// progressionRepository is the PostgreSQL-backed implementation of
// [ProgressionRepository] over the "progressions" table.
type progressionRepository struct {
	*DB
	logger *logger.Logger
}

// NewProgressionRepository constructs a [ProgressionRepository].
func NewProgressionRepository(db *DB, logger *logger.Logger) ProgressionRepository {
	return &progressionRepository{
		DB:     db,
		logger: logger,
	}
}

// GetProgression returns the owner's progression or [ErrProgressionNotFound].
func (p *progressionRepository) GetProgression(ctx context.Context, owner string) (models.Progression, error) {
	log := logger.FromContext(ctx)

	var progression models.Progression
	err := p.QueryRowContext(ctx, getProgression, owner).Scan(
		&progression.Owner,
		&progression.MonstersKilled,
		&progression.DistanceTraveled,
		&progression.AsOf,
		&progression.Signature,
	)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Progression{}, ErrProgressionNotFound
	case err != nil:
		log.Err(err).
			Str("func", "progressionRepository.GetProgression").
			Str("owner", owner).
			Msg("failed to scan progression row")
		return models.Progression{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return progression, nil
}

// AdvanceProgression implements [ProgressionRepository]. The monotonicity
// guard lives in the statement itself so concurrent pushes cannot regress a
// row between a read and a write.
func (p *progressionRepository) AdvanceProgression(ctx context.Context, progression models.Progression) error {
	log := logger.FromContext(ctx)

	query, args, err := buildAdvanceProgressionQuery(ctx, progression)
	if err != nil {
		log.Err(err).Str("func", "progressionRepository.AdvanceProgression").Msg("failed to create query")
		return err
	}

	var affected int64
	err = p.withRetry(ctx, func() error {
		res, execErr := p.ExecContext(ctx, query, args...)
		if execErr != nil {
			return execErr
		}
		affected, execErr = res.RowsAffected()
		return execErr
	})
	if err != nil {
		log.Err(err).
			Str("func", "progressionRepository.AdvanceProgression").
			Str("owner", progression.Owner).
			Msg("failed to upsert progression")

		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return fmt.Errorf("%w: %s", ErrAccountNotFound, progression.Owner)
		}
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected == 0 {
		return ErrProgressionNotAdvanced
	}

	return nil
}

// ListProgressions returns progressions ordered by kills, then distance,
// both descending.
func (p *progressionRepository) ListProgressions(ctx context.Context, limit uint64) ([]models.Progression, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildLeaderboardQuery(ctx, limit)
	if err != nil {
		log.Err(err).Str("func", "progressionRepository.ListProgressions").Msg("failed to create query")
		return nil, err
	}

	rows, err := p.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "progressionRepository.ListProgressions").Msg("failed to execute leaderboard query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.Progression, 0, 50)
	for rows.Next() {
		var item models.Progression
		if scanErr := rows.Scan(
			&item.Owner,
			&item.MonstersKilled,
			&item.DistanceTraveled,
			&item.AsOf,
			&item.Signature,
		); scanErr != nil {
			log.Err(scanErr).Str("func", "progressionRepository.ListProgressions").Msg("failed to scan progression row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		results = append(results, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "progressionRepository.ListProgressions").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}
