package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-save-keeper/internal/app"
	"github.com/MKhiriev/go-save-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLeaderboard(t *testing.T) {
	services := newTestServices()
	services.LeaderboardService = &stubLeaderboardService{entries: []models.LeaderboardEntry{
		{Username: "a", MonstersKilled: 9, Integrity: models.IntegrityValid},
		{Username: "b", MonstersKilled: 1, Integrity: models.IntegrityTampered},
	}}

	rec := serve(services, http.MethodGet, "/api/leaderboard", "", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var entries []models.LeaderboardEntry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, models.IntegrityTampered, entries[1].Integrity)
}

func TestGetLeaderboard_EmptyIsArray(t *testing.T) {
	rec := serve(newTestServices(), http.MethodGet, "/api/leaderboard", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", bodyText(rec))
}

func TestGetLeaderboard_Failure(t *testing.T) {
	services := newTestServices()
	services.LeaderboardService = &stubLeaderboardService{err: errors.New("db down")}

	rec := serve(services, http.MethodGet, "/api/leaderboard", "", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, app.MsgInternalServerError, bodyText(rec))
}
