package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-save-keeper/internal/logger"
	"github.com/MKhiriev/go-save-keeper/internal/store"
	"github.com/MKhiriev/go-save-keeper/internal/validators"
	"github.com/MKhiriev/go-save-keeper/models"
)

type saveService struct {
	saveRepository store.SaveRepository
	validator      validators.Validator
	logger         *logger.Logger
}

func NewSaveService(saves store.SaveRepository, logger *logger.Logger) SaveService {
	return &saveService{
		saveRepository: saves,
		validator:      validators.NewGameRequestValidator(),
		logger:         logger,
	}
}

// StoreRecord checks that the record belongs to owner and has the shape its
// version requires, then replaces the owner's save.
func (s *saveService) StoreRecord(ctx context.Context, owner string, record models.SealedRecord) error {
	log := logger.FromContext(ctx)

	if record.Owner != owner {
		log.Warn().Str("owner", owner).Str("record_owner", record.Owner).Msg("attempt to store a record of another account")
		return ErrOwnerMismatch
	}
	if err := s.validator.Validate(ctx, record, validators.FieldRecordLayout); err != nil {
		log.Warn().Err(err).Str("owner", owner).Msg("malformed sealed record")
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if err := s.saveRepository.StoreRecord(ctx, record); err != nil {
		return fmt.Errorf("store sealed record: %w", err)
	}

	log.Info().Str("owner", owner).Stringer("version", record.Version).Msg("sealed record stored")
	return nil
}

func (s *saveService) LoadRecord(ctx context.Context, owner string) (models.SealedRecord, error) {
	if owner == "" {
		return models.SealedRecord{}, ErrInvalidDataProvided
	}

	record, err := s.saveRepository.GetRecord(ctx, owner)
	if err != nil {
		return models.SealedRecord{}, fmt.Errorf("load sealed record: %w", err)
	}

	return record, nil
}
