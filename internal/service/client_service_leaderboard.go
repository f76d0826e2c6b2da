package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-save-keeper/internal/adapter"
	"github.com/MKhiriev/go-save-keeper/models"
)

type clientLeaderboardService struct {
	adapter adapter.ServerAdapter
}

func NewClientLeaderboardService(serverAdapter adapter.ServerAdapter) ClientLeaderboardService {
	return &clientLeaderboardService{adapter: serverAdapter}
}

// Leaderboard returns the server's leaderboard re-sorted locally, with
// missing integrity labels reported as UNKNOWN.
func (l *clientLeaderboardService) Leaderboard(ctx context.Context) ([]models.LeaderboardEntry, error) {
	entries, err := l.adapter.Leaderboard(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch leaderboard: %w", mapAdapterError(err))
	}

	for i := range entries {
		entries[i].Integrity = entries[i].IntegrityLabel()
	}
	models.SortLeaderboard(entries)

	return entries, nil
}
