package store

import (
	"context"

	"github.com/MKhiriev/go-save-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// AccountRepository persists player accounts.
type AccountRepository interface {
	CreateAccount(ctx context.Context, account models.Account) (models.Account, error)
	// FindAccount looks an account up by exactly one of username or email.
	FindAccount(ctx context.Context, by models.LoginField, value string) (models.Account, error)
}

// SaveRepository persists one sealed record per owner. The server never
// sees the plaintext.
type SaveRepository interface {
	StoreRecord(ctx context.Context, record models.SealedRecord) error
	GetRecord(ctx context.Context, owner string) (models.SealedRecord, error)
}

// ProgressionRepository persists signed progression summaries.
type ProgressionRepository interface {
	GetProgression(ctx context.Context, owner string) (models.Progression, error)
	// AdvanceProgression stores p unless it would lower either counter of
	// the stored row, in which case ErrProgressionNotAdvanced is returned.
	AdvanceProgression(ctx context.Context, p models.Progression) error
	ListProgressions(ctx context.Context, limit uint64) ([]models.Progression, error)
}

// ErrorClassificator decides whether a failed database call may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
