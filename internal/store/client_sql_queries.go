// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	upsertLocalSave = `
		INSERT INTO local_saves (
			owner,
			game,
			monsters_killed,
			distance_traveled,
			as_of,
			signature,
			updated_at
		) VALUES (?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (owner) DO UPDATE SET
			game = excluded.game,
			monsters_killed = excluded.monsters_killed,
			distance_traveled = excluded.distance_traveled,
			as_of = excluded.as_of,
			signature = excluded.signature,
			updated_at = CURRENT_TIMESTAMP;`

	getLocalSave = `
		SELECT
			owner,
			game,
			monsters_killed,
			distance_traveled,
			as_of,
			signature
		FROM local_saves
		WHERE owner = ?;`

	deleteLocalSave = `DELETE FROM local_saves WHERE owner = ?;`
)
