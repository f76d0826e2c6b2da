package service

import (
	"context"

	"github.com/MKhiriev/go-save-keeper/models"
)

// AuthService registers and authenticates accounts and manages their bearer
// tokens.
type AuthService interface {
	// Register validates credentials, hashes the password and creates the
	// account.
	Register(ctx context.Context, credentials models.Credentials) (models.Account, error)

	// Login looks the account up by username or email and checks the
	// password. The last known progression is attached when present.
	Login(ctx context.Context, credentials models.Credentials) (models.Account, error)

	CreateToken(ctx context.Context, account models.Account) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// SaveService stores and serves sealed records. The server never sees the
// key and treats the record as opaque apart from its shape.
type SaveService interface {
	StoreRecord(ctx context.Context, owner string, record models.SealedRecord) error
	LoadRecord(ctx context.Context, owner string) (models.SealedRecord, error)
}

// ProgressionService keeps one signed, monotonic progression per account.
type ProgressionService interface {
	GetProgression(ctx context.Context, owner string) (models.Progression, error)

	// PushProgression signs and stores the counters. Lowering either stored
	// counter fails with ErrProgressionRegression.
	PushProgression(ctx context.Context, owner string, req models.ProgressionPushRequest) (models.Progression, error)
}

// LeaderboardService ranks all progressions and labels their integrity.
type LeaderboardService interface {
	Leaderboard(ctx context.Context) ([]models.LeaderboardEntry, error)
}

// AppInfoService reports the running build.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) models.BuildInfo
}
