package store

import (
	"context"

	"github.com/MKhiriev/go-save-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalSaveRepository is the client's SQLite cache of the last save and its
// locally signed progression.
type LocalSaveRepository interface {
	SaveLocal(ctx context.Context, save models.LocalSave) error
	GetLocalSave(ctx context.Context, owner string) (models.LocalSave, error)
	DeleteLocalSave(ctx context.Context, owner string) error
}
