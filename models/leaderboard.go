package models

import (
	"sort"
	"time"
)

// Integrity states reported for a leaderboard entry.
const (
	IntegrityValid    = "VALID"
	IntegrityTampered = "TAMPERED"
	IntegrityUnknown  = "UNKNOWN"
)

// LeaderboardEntry is one row of the public leaderboard.
type LeaderboardEntry struct {
	Username         string    `json:"username"`
	MonstersKilled   int32     `json:"monsters_killed"`
	DistanceTraveled int32     `json:"distance_traveled"`
	ScoreDate        time.Time `json:"score_date_utc"`
	Integrity        string    `json:"integrity"`
}

// IntegrityLabel returns Integrity, or [IntegrityUnknown] when it is empty.
func (e LeaderboardEntry) IntegrityLabel() string {
	if e.Integrity == "" {
		return IntegrityUnknown
	}
	return e.Integrity
}

// SortLeaderboard orders entries by kills, then by distance, both
// descending. Ties keep their relative order.
func SortLeaderboard(entries []LeaderboardEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].MonstersKilled != entries[j].MonstersKilled {
			return entries[i].MonstersKilled > entries[j].MonstersKilled
		}
		return entries[i].DistanceTraveled > entries[j].DistanceTraveled
	})
}
