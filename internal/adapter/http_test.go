// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-save-keeper/internal/config"
	"github.com/MKhiriev/go-save-keeper/internal/logger"
	"github.com/MKhiriev/go-save-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAdapter creates an httpServerAdapter pointed at the test server.
func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	adapterCfg := config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 5 * time.Second}

	a, err := NewHTTPServerAdapter(adapterCfg, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

// ── NewHTTPServerAdapter ─────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{"localhost:8080", "http://localhost:8080", false},
		{"https://saves.example.com/", "https://saves.example.com", false},
		{"  http://127.0.0.1:9000  ", "http://127.0.0.1:9000", false},
		{"", "", true},
		{"http://", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPServerAdapter_EmptyAddress(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.ClientAdapter{}, logger.Nop())
	assert.Error(t, err)
}

// ── Register / Login ─────────────────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	creds := models.Credentials{Username: "hero", Email: "hero@example.com", Password: "p@ss"}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/account/register", r.URL.Path)

		var got models.Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, creds, got)

		w.Header().Set("Authorization", "Bearer token-123")
		writeJSON(t, w, http.StatusCreated, models.Account{ID: "id-1", Username: "hero", Email: "hero@example.com"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	account, err := a.Register(context.Background(), creds)

	require.NoError(t, err)
	assert.Equal(t, "hero", account.Username)
	assert.Equal(t, "token-123", a.Token())
}

func TestRegister_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte("account already exists"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Register(context.Background(), models.Credentials{Username: "hero"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)
	assert.Contains(t, err.Error(), "account already exists")
	assert.Empty(t, a.Token())
}

func TestLogin_MissingBearer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/account/login", r.URL.Path)
		writeJSON(t, w, http.StatusOK, models.Account{Username: "hero"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.Credentials{Username: "hero", Password: "p"})

	require.Error(t, err)
	assert.Empty(t, a.Token())
}

func TestLogin_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("invalid login/password"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.Credentials{Username: "hero"})

	assert.ErrorIs(t, err, ErrUnauthorized)
}

// ── Sealed records ───────────────────────────────────────────────────────────

func TestFetchSealedRecord_RequiresToken(t *testing.T) {
	a := newTestAdapter(t, "http://localhost:1")

	_, err := a.FetchSealedRecord(context.Background(), "hero")
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestFetchSealedRecord_Success(t *testing.T) {
	want := models.SealedRecord{
		Version: models.RecordVersionAEAD,
		Owner:   "hero",
		Salt:    make([]byte, 16),
		Nonce:   make([]byte, 12),
		Tag:     make([]byte, 16),
		Data:    []byte("cipher"),
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/game/load", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		writeJSON(t, w, http.StatusOK, want)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("tok")

	got, err := a.FetchSealedRecord(context.Background(), "hero")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFetchSealedRecord_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("tok")

	_, err := a.FetchSealedRecord(context.Background(), "hero")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFetchSealedRecord_OwnerMismatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, models.SealedRecord{Owner: "villain"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("tok")

	_, err := a.FetchSealedRecord(context.Background(), "hero")
	assert.ErrorIs(t, err, ErrOwnerMismatch)
}

func TestStoreSealedRecord_Success(t *testing.T) {
	record := models.SealedRecord{Version: models.RecordVersionCBC, Owner: "hero", Data: []byte{1, 2, 3}}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/game/save", r.URL.Path)

		var got models.SealedRecord
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, record, got)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("tok")

	assert.NoError(t, a.StoreSealedRecord(context.Background(), record))
}

func TestStoreSealedRecord_BadRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte("malformed sealed record"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("tok")

	err := a.StoreSealedRecord(context.Background(), models.SealedRecord{Owner: "hero"})
	assert.ErrorIs(t, err, ErrBadRequest)
}

// ── Progression ──────────────────────────────────────────────────────────────

func TestFetchServerProgression_EscapesUsername(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/progression/sir%20hero", r.URL.EscapedPath())
		writeJSON(t, w, http.StatusOK, models.Progression{Owner: "sir hero", MonstersKilled: 4})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)

	got, err := a.FetchServerProgression(context.Background(), "sir hero")
	require.NoError(t, err)
	assert.Equal(t, int32(4), got.MonstersKilled)
}

func TestPushProgression_Success(t *testing.T) {
	asOf := time.Date(2026, 2, 3, 4, 5, 6, 0, time.UTC)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/progression", r.URL.Path)

		var req models.ProgressionPushRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, int32(12), req.MonstersKilled)
		assert.Equal(t, int32(340), req.DistanceTraveled)
		assert.True(t, asOf.Equal(req.AsOf))

		writeJSON(t, w, http.StatusOK, models.Progression{
			Owner: "hero", MonstersKilled: 12, DistanceTraveled: 340, AsOf: asOf, Signature: []byte("sig"),
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("tok")

	got, err := a.PushProgression(context.Background(), "hero", 12, 340, asOf)
	require.NoError(t, err)
	assert.Equal(t, []byte("sig"), got.Signature)
}

func TestPushProgression_Regression(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte("progression would regress"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("tok")

	_, err := a.PushProgression(context.Background(), "hero", 1, 1, time.Now())
	assert.ErrorIs(t, err, ErrConflict)
}

// ── Leaderboard / Version ────────────────────────────────────────────────────

func TestLeaderboard_Success(t *testing.T) {
	entries := []models.LeaderboardEntry{
		{Username: "a", MonstersKilled: 9, Integrity: models.IntegrityValid},
		{Username: "b", MonstersKilled: 3, Integrity: models.IntegrityTampered},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/leaderboard", r.URL.Path)
		writeJSON(t, w, http.StatusOK, entries)
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).Leaderboard(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, models.IntegrityTampered, got[1].Integrity)
}

func TestLeaderboard_BadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("{not json"))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Leaderboard(context.Background())
	assert.Error(t, err)
}

func TestVersion_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/version/", r.URL.Path)
		writeJSON(t, w, http.StatusOK, models.BuildInfo{Version: "1.2.3", Date: "today", Commit: "abc"})
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).Version(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1.2.3", got.Version)
}

// ── mapHTTPError ─────────────────────────────────────────────────────────────

func TestMapHTTPError_Statuses(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusBadRequest, ErrBadRequest},
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusForbidden, ErrForbidden},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusConflict, ErrConflict},
		{http.StatusInternalServerError, ErrInternalServerError},
		{http.StatusBadGateway, ErrBadGateway},
		{http.StatusServiceUnavailable, ErrServiceUnavailable},
		{http.StatusGatewayTimeout, ErrServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			resp, err := newTestAdapter(t, srv.URL).client.R().Get("/")
			require.NoError(t, err)
			assert.ErrorIs(t, mapHTTPError(resp), tt.want)
		})
	}
}

func TestMapHTTPError_Unknown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	resp, err := newTestAdapter(t, srv.URL).client.R().Get("/")
	require.NoError(t, err)

	mapped := mapHTTPError(resp)
	require.Error(t, mapped)
	assert.Equal(t, "http 418: I'm a teapot", mapped.Error())
}

func TestMapHTTPError_KeepsServerMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "progression would regress", http.StatusConflict)
	}))
	defer srv.Close()

	resp, err := newTestAdapter(t, srv.URL).client.R().Get("/")
	require.NoError(t, err)

	assert.EqualError(t, mapHTTPError(resp), "conflict: progression would regress")
}
