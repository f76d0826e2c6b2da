// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-save-keeper/internal/crypto"
	"github.com/MKhiriev/go-save-keeper/internal/logger"
	"github.com/MKhiriev/go-save-keeper/internal/store"
	"github.com/MKhiriev/go-save-keeper/internal/validators"
	"github.com/MKhiriev/go-save-keeper/models"
)

// progressionService signs progressions with the server secret before they
// are stored. Pushed deltas are not proven to come from play; only the stored
// value is bound to its signature.
type progressionService struct {
	progressionRepository store.ProgressionRepository
	signer                crypto.Signer
	validator             validators.Validator
	now                   func() time.Time
	logger                *logger.Logger
}

func NewProgressionService(progressions store.ProgressionRepository, signer crypto.Signer, logger *logger.Logger) ProgressionService {
	return &progressionService{
		progressionRepository: progressions,
		signer:                signer,
		validator:             validators.NewGameRequestValidator(),
		now:                   time.Now,
		logger:                logger,
	}
}

func (p *progressionService) GetProgression(ctx context.Context, owner string) (models.Progression, error) {
	if owner == "" {
		return models.Progression{}, ErrInvalidDataProvided
	}

	progression, err := p.progressionRepository.GetProgression(ctx, owner)
	if err != nil {
		return models.Progression{}, fmt.Errorf("get progression: %w", err)
	}

	return progression, nil
}

func (p *progressionService) PushProgression(ctx context.Context, owner string, req models.ProgressionPushRequest) (models.Progression, error) {
	log := logger.FromContext(ctx)

	if owner == "" || p.validator.Validate(ctx, req, validators.FieldCounters) != nil {
		log.Warn().
			Str("owner", owner).
			Int32("monsters_killed", req.MonstersKilled).
			Int32("distance_traveled", req.DistanceTraveled).
			Msg("invalid progression push")
		return models.Progression{}, ErrInvalidDataProvided
	}

	asOf := req.AsOf.UTC()
	if req.AsOf.IsZero() {
		asOf = p.now().UTC()
	}

	progression := models.Progression{
		Owner:            owner,
		MonstersKilled:   req.MonstersKilled,
		DistanceTraveled: req.DistanceTraveled,
		AsOf:             asOf,
		Signature:        p.signer.Sign(req.MonstersKilled),
	}

	err := p.progressionRepository.AdvanceProgression(ctx, progression)
	if errors.Is(err, store.ErrProgressionNotAdvanced) {
		log.Warn().Str("owner", owner).Msg("rejected regressing progression")
		return models.Progression{}, ErrProgressionRegression
	}
	if err != nil {
		return models.Progression{}, fmt.Errorf("advance progression: %w", err)
	}

	return progression, nil
}
