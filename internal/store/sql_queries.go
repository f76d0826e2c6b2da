package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-save-keeper/models"
)

const (
	createAccount = `INSERT INTO accounts (id, username, email, password_hash, password_salt)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING id, username, email, password_hash, password_salt, created_at;`

	upsertSave = `INSERT INTO saves (owner, version, salt, nonce, tag, data, updated_at)
    VALUES ($1, $2, $3, $4, $5, $6, NOW())
    ON CONFLICT (owner) DO UPDATE SET
        version = EXCLUDED.version,
        salt = EXCLUDED.salt,
        nonce = EXCLUDED.nonce,
        tag = EXCLUDED.tag,
        data = EXCLUDED.data,
        updated_at = NOW();`

	getSave = `SELECT owner, version, salt, nonce, tag, data
    FROM saves
    WHERE owner = $1;`

	getProgression = `SELECT owner, monsters_killed, distance_traveled, as_of, signature
    FROM progressions
    WHERE owner = $1;`
)

var (
	psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	accountColumns     = []string{"id", "username", "email", "password_hash", "password_salt", "created_at"}
	progressionColumns = []string{"owner", "monsters_killed", "distance_traveled", "as_of", "signature"}
)

// buildFindAccountQuery selects the account whose column by equals value.
// Only username and email lookups are allowed.
func buildFindAccountQuery(ctx context.Context, by models.LoginField, value string) (string, []any, error) {
	if by != models.LoginByUsername && by != models.LoginByEmail {
		return "", nil, fmt.Errorf("%w: unknown login field %q", ErrBuildingSQLQuery, by)
	}

	query, args, err := psql.Select(accountColumns...).
		From("accounts").
		Where(sq.Eq{string(by): value}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildAdvanceProgressionQuery upserts p. The conflict branch only fires when
// neither stored counter is higher than the incoming one, so a regressing
// update affects zero rows.
func buildAdvanceProgressionQuery(ctx context.Context, p models.Progression) (string, []any, error) {
	query, args, err := psql.Insert("progressions").
		Columns(progressionColumns...).
		Values(p.Owner, p.MonstersKilled, p.DistanceTraveled, p.AsOf, p.Signature).
		Suffix(`ON CONFLICT (owner) DO UPDATE SET
        monsters_killed = EXCLUDED.monsters_killed,
        distance_traveled = EXCLUDED.distance_traveled,
        as_of = EXCLUDED.as_of,
        signature = EXCLUDED.signature
    WHERE progressions.monsters_killed <= EXCLUDED.monsters_killed
        AND progressions.distance_traveled <= EXCLUDED.distance_traveled`).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildLeaderboardQuery lists progressions best first. A zero limit means no
// limit.
func buildLeaderboardQuery(ctx context.Context, limit uint64) (string, []any, error) {
	builder := psql.Select(progressionColumns...).
		From("progressions").
		OrderBy("monsters_killed DESC", "distance_traveled DESC", "owner ASC")
	if limit > 0 {
		builder = builder.Limit(limit)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
