// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-save-keeper/internal/logger"
	"github.com/MKhiriev/go-save-keeper/internal/service"
)

// DefaultSyncInterval is used when no positive interval is configured.
const DefaultSyncInterval = time.Minute

// ProgressionSyncWorker periodically reconciles the locally cached
// progression of the current player with the server.
type ProgressionSyncWorker struct {
	games    service.ClientGameService
	owner    func() string
	interval time.Duration
	logger   *logger.Logger
}

// NewProgressionSyncWorker returns a worker that syncs the cache of the
// account reported by owner. Ticks with no logged-in account are skipped.
func NewProgressionSyncWorker(games service.ClientGameService, owner func() string, interval time.Duration, logger *logger.Logger) *ProgressionSyncWorker {
	if interval <= 0 {
		interval = DefaultSyncInterval
	}

	return &ProgressionSyncWorker{
		games:    games,
		owner:    owner,
		interval: interval,
		logger:   logger,
	}
}

// Run implements [Worker]. It returns nil once ctx is cancelled.
func (w *ProgressionSyncWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.logger.Info().Dur("interval", w.interval).Msg("progression sync worker started")

	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Msg("progression sync worker stopped")
			return nil
		case <-ticker.C:
			w.syncOnce(ctx)
		}
	}
}

func (w *ProgressionSyncWorker) syncOnce(ctx context.Context) {
	owner := w.owner()
	if owner == "" {
		return
	}

	rec, err := w.games.SyncCachedProgression(ctx, owner)
	switch {
	case errors.Is(err, service.ErrSignatureInvalid):
		w.logger.Warn().Str("owner", owner).Msg("tampered progression cache discarded")
	case err != nil:
		w.logger.Warn().Err(err).Str("owner", owner).Msg("cached progression sync failed")
	default:
		w.logger.Debug().Str("owner", owner).Stringer("action", rec.Action).Msg("cached progression synced")
	}
}
