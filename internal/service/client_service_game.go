// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-save-keeper/internal/adapter"
	"github.com/MKhiriev/go-save-keeper/internal/crypto"
	"github.com/MKhiriev/go-save-keeper/internal/logger"
	"github.com/MKhiriev/go-save-keeper/internal/store"
	"github.com/MKhiriev/go-save-keeper/models"
)

type clientGameService struct {
	codec      SaveCodec
	sync       ProgressionSyncService
	signer     crypto.Signer
	adapter    adapter.ServerAdapter
	localSaves store.LocalSaveRepository
	now        func() time.Time
	logger     *logger.Logger
}

func NewClientGameService(
	codec SaveCodec,
	sync ProgressionSyncService,
	signer crypto.Signer,
	serverAdapter adapter.ServerAdapter,
	localSaves store.LocalSaveRepository,
	logger *logger.Logger,
) ClientGameService {
	return &clientGameService{
		codec:      codec,
		sync:       sync,
		signer:     signer,
		adapter:    serverAdapter,
		localSaves: localSaves,
		now:        time.Now,
		logger:     logger,
	}
}

// SaveGame implements [ClientGameService]. Only sealing and uploading the
// record can fail the call; the local cache and the progression push are
// best effort.
func (g *clientGameService) SaveGame(ctx context.Context, owner, password string, game models.GameState) error {
	if owner == "" {
		return ErrNotLoggedIn
	}

	record, err := g.codec.Save(game, owner, password)
	if err != nil {
		return err
	}

	if err = g.adapter.StoreSealedRecord(ctx, record); err != nil {
		g.logger.Err(err).Str("func", "clientGameService.SaveGame").Str("owner", owner).Msg("upload of sealed record failed")
		return fmt.Errorf("upload save: %w", mapAdapterError(err))
	}

	progression := game.ProgressionFor(owner)
	progression.AsOf = g.now().UTC()
	progression.Signature = g.signer.Sign(progression.MonstersKilled)

	if err = g.localSaves.SaveLocal(ctx, models.LocalSave{Game: game, Progression: progression}); err != nil {
		g.logger.Warn().Err(err).Str("owner", owner).Msg("could not cache save locally")
	}

	g.push(ctx, progression)
	return nil
}

// LoadGame implements [ClientGameService].
func (g *clientGameService) LoadGame(ctx context.Context, owner, password string) (models.GameState, models.Reconciliation, error) {
	if owner == "" {
		return models.GameState{}, models.Reconciliation{}, ErrNotLoggedIn
	}

	game, err := g.openSave(ctx, owner, password)
	if err != nil {
		return models.GameState{}, models.Reconciliation{}, err
	}

	server, err := g.serverProgression(ctx, owner)
	if err != nil {
		g.logger.Warn().Err(err).Str("owner", owner).Msg("server progression unavailable, skipping reconciliation")
		return game, models.Reconciliation{State: models.Unreconciled}, nil
	}

	local := game.ProgressionFor(owner)
	local.AsOf = g.now().UTC()

	rec, err := g.sync.ReconcileLoaded(ctx, local, server)
	if err != nil {
		return models.GameState{}, models.Reconciliation{}, err
	}

	game.MonstersKilled = rec.MonstersKilled
	game.DistanceTraveled = rec.DistanceTraveled

	if rec.ShouldPush() {
		g.push(ctx, local)
	}

	g.logger.Info().
		Str("owner", owner).
		Stringer("action", rec.Action).
		Int32("monsters_killed", game.MonstersKilled).
		Msg("progression reconciled")

	return game, rec, nil
}

// openSave returns the owner's saved game, or a fresh one when there is no
// save or it cannot be opened with password.
func (g *clientGameService) openSave(ctx context.Context, owner, password string) (models.GameState, error) {
	record, err := g.adapter.FetchSealedRecord(ctx, owner)
	if errors.Is(err, adapter.ErrNotFound) {
		g.logger.Info().Str("owner", owner).Msg("no save on server, starting fresh")
		return models.NewGameState(), nil
	}
	if err != nil {
		return models.GameState{}, fmt.Errorf("fetch save: %w", mapAdapterError(err))
	}

	var game models.GameState
	if err = g.codec.Load(record, password, &game); err != nil {
		g.logger.Warn().Err(err).Str("owner", owner).Msg("no valid save found, starting fresh")
		return models.NewGameState(), nil
	}

	return game, nil
}

// SyncCachedProgression implements [ClientGameService]. A cache row whose
// signature does not verify is deleted and reported with
// [ErrSignatureInvalid].
func (g *clientGameService) SyncCachedProgression(ctx context.Context, owner string) (models.Reconciliation, error) {
	if owner == "" {
		return models.Reconciliation{}, ErrNotLoggedIn
	}

	cached, err := g.localSaves.GetLocalSave(ctx, owner)
	if errors.Is(err, store.ErrLocalSaveNotFound) {
		return models.Reconciliation{State: models.Reconciled, Action: models.ActionNone}, nil
	}
	if err != nil {
		return models.Reconciliation{}, fmt.Errorf("read local cache: %w", err)
	}

	server, err := g.serverProgression(ctx, owner)
	if err != nil {
		return models.Reconciliation{}, err
	}

	rec, err := g.sync.ReconcileCached(ctx, cached.Progression, server)
	if err != nil {
		return models.Reconciliation{}, err
	}

	switch {
	case rec.Discarded():
		g.logger.Warn().Str("owner", owner).Msg("cached progression failed verification, discarding")
		if err = g.localSaves.DeleteLocalSave(ctx, owner); err != nil {
			g.logger.Err(err).Str("owner", owner).Msg("could not delete tampered cache")
		}
		return rec, fmt.Errorf("%w: cache of %s dropped", ErrSignatureInvalid, owner)
	case rec.ShouldPush():
		g.push(ctx, cached.Progression)
	}

	return rec, nil
}

// serverProgression returns nil when the server has no progression for owner.
func (g *clientGameService) serverProgression(ctx context.Context, owner string) (*models.Progression, error) {
	progression, err := g.adapter.FetchServerProgression(ctx, owner)
	if errors.Is(err, adapter.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("fetch server progression: %w", mapAdapterError(err))
	}

	return &progression, nil
}

// push sends p to the server. Failures are logged and not escalated.
func (g *clientGameService) push(ctx context.Context, p models.Progression) {
	_, err := g.adapter.PushProgression(ctx, p.Owner, p.MonstersKilled, p.DistanceTraveled, p.AsOf)
	if err == nil {
		return
	}

	if errors.Is(mapAdapterError(err), ErrProgressionRegression) {
		g.logger.Warn().Str("owner", p.Owner).Msg("server refused a regressing progression")
		return
	}
	g.logger.Warn().Err(err).Str("owner", p.Owner).Msg("progression push failed")
}
