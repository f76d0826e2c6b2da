package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-save-keeper/internal/crypto"
	"github.com/MKhiriev/go-save-keeper/internal/logger"
	"github.com/MKhiriev/go-save-keeper/internal/store"
	"github.com/MKhiriev/go-save-keeper/models"
)

type leaderboardService struct {
	progressionRepository store.ProgressionRepository
	signer                crypto.Signer
	logger                *logger.Logger
}

func NewLeaderboardService(progressions store.ProgressionRepository, signer crypto.Signer, logger *logger.Logger) LeaderboardService {
	return &leaderboardService{
		progressionRepository: progressions,
		signer:                signer,
		logger:                logger,
	}
}

// Leaderboard returns every progression, best first. Each entry is labelled
// VALID when its stored signature verifies, TAMPERED when it does not and
// UNKNOWN when it has none.
func (l *leaderboardService) Leaderboard(ctx context.Context) ([]models.LeaderboardEntry, error) {
	progressions, err := l.progressionRepository.ListProgressions(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("list progressions: %w", err)
	}

	entries := make([]models.LeaderboardEntry, 0, len(progressions))
	for _, p := range progressions {
		entries = append(entries, models.LeaderboardEntry{
			Username:         p.Owner,
			MonstersKilled:   p.MonstersKilled,
			DistanceTraveled: p.DistanceTraveled,
			ScoreDate:        p.AsOf.UTC(),
			Integrity:        l.integrity(p),
		})
	}
	models.SortLeaderboard(entries)

	return entries, nil
}

func (l *leaderboardService) integrity(p models.Progression) string {
	switch {
	case len(p.Signature) == 0:
		return models.IntegrityUnknown
	case l.signer.Verify(p.MonstersKilled, p.Signature):
		return models.IntegrityValid
	default:
		return models.IntegrityTampered
	}
}
