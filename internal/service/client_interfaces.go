package service

import (
	"context"

	"github.com/MKhiriev/go-save-keeper/models"
)

// SaveCodec turns game state into a sealed record and back.
//
// Save serializes state to JSON, derives a key from password and a fresh
// salt, and seals the plaintext. Load re-derives the key from the record's
// salt, opens it according to its version and decodes it into target.
// Every Load failure wraps [ErrLoadFailed].
type SaveCodec interface {
	Save(state any, owner, password string) (models.SealedRecord, error)
	Load(record models.SealedRecord, password string, target any) error
}

// ProgressionSyncService decides how a local progression and the server's
// progression are reconciled. It performs no I/O.
type ProgressionSyncService interface {
	// ReconcileLoaded handles a progression that came out of a freshly
	// opened save. A nil server means the server has no progression yet.
	ReconcileLoaded(ctx context.Context, local models.Progression, server *models.Progression) (models.Reconciliation, error)

	// ReconcileCached handles a progression read from the local cache. Its
	// signature must verify before it is considered at all.
	ReconcileCached(ctx context.Context, cached models.Progression, server *models.Progression) (models.Reconciliation, error)
}

// ClientAuthService registers and logs in accounts on behalf of the console
// client. Failures are reported inside the result, never as an error.
type ClientAuthService interface {
	Register(ctx context.Context, credentials models.Credentials) models.AuthResult
	Login(ctx context.Context, credentials models.Credentials) models.AuthResult
}

// ClientGameService runs the save and load pipeline of the client.
type ClientGameService interface {
	// SaveGame seals game, uploads the record, caches a signed progression
	// locally and pushes the progression to the server.
	SaveGame(ctx context.Context, owner, password string, game models.GameState) error

	// LoadGame fetches and opens the owner's save and reconciles its
	// progression with the server. A missing or unreadable save yields a
	// fresh game.
	LoadGame(ctx context.Context, owner, password string) (models.GameState, models.Reconciliation, error)

	// SyncCachedProgression reconciles the locally cached progression with
	// the server.
	SyncCachedProgression(ctx context.Context, owner string) (models.Reconciliation, error)
}

// ClientLeaderboardService fetches the ranked leaderboard.
type ClientLeaderboardService interface {
	Leaderboard(ctx context.Context) ([]models.LeaderboardEntry, error)
}
