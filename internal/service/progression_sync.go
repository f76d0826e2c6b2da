// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-save-keeper/internal/crypto"
	"github.com/MKhiriev/go-save-keeper/models"
)

type progressionSyncService struct {
	signer crypto.Signer
}

// NewProgressionSyncService returns a [ProgressionSyncService] that trusts
// cached progressions only when they verify under signer.
func NewProgressionSyncService(signer crypto.Signer) ProgressionSyncService {
	return &progressionSyncService{signer: signer}
}

// ReconcileLoaded implements [ProgressionSyncService].
//
// The server wins on kills when it is ahead; the local distance is kept
// either way and is only sent along with a push.
func (p *progressionSyncService) ReconcileLoaded(ctx context.Context, local models.Progression, server *models.Progression) (models.Reconciliation, error) {
	if err := ctx.Err(); err != nil {
		return models.Reconciliation{State: models.Unreconciled}, err
	}

	if server != nil && local.MonstersKilled < server.MonstersKilled {
		return models.Reconciliation{
			State:            models.Reconciled,
			Action:           models.ActionAdoptServer,
			MonstersKilled:   server.MonstersKilled,
			DistanceTraveled: local.DistanceTraveled,
		}, nil
	}

	return models.Reconciliation{
		State:            models.Reconciled,
		Action:           models.ActionPush,
		MonstersKilled:   local.MonstersKilled,
		DistanceTraveled: local.DistanceTraveled,
	}, nil
}

// ReconcileCached implements [ProgressionSyncService].
func (p *progressionSyncService) ReconcileCached(ctx context.Context, cached models.Progression, server *models.Progression) (models.Reconciliation, error) {
	if err := ctx.Err(); err != nil {
		return models.Reconciliation{State: models.Unreconciled}, err
	}

	if !p.signer.Verify(cached.MonstersKilled, cached.Signature) {
		rec := models.Reconciliation{State: models.Reconciled, Action: models.ActionDiscard}
		if server != nil {
			rec.MonstersKilled = server.MonstersKilled
			rec.DistanceTraveled = server.DistanceTraveled
		}
		return rec, nil
	}

	// both counters must move forward; one improving stat cannot carry a
	// rolled back one
	if server != nil && cached.Exceeds(*server) {
		return models.Reconciliation{
			State:            models.Reconciled,
			Action:           models.ActionPush,
			MonstersKilled:   cached.MonstersKilled,
			DistanceTraveled: cached.DistanceTraveled,
		}, nil
	}

	rec := models.Reconciliation{
		State:            models.Reconciled,
		Action:           models.ActionNone,
		MonstersKilled:   cached.MonstersKilled,
		DistanceTraveled: cached.DistanceTraveled,
	}
	if server != nil {
		rec.MonstersKilled = server.MonstersKilled
		rec.DistanceTraveled = server.DistanceTraveled
	}
	return rec, nil
}
