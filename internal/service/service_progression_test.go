// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-save-keeper/internal/logger"
	"github.com/MKhiriev/go-save-keeper/internal/mock"
	"github.com/MKhiriev/go-save-keeper/internal/store"
	"github.com/MKhiriev/go-save-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ── GetProgression ───────────────────────────────────────────────────────────

func TestProgressionService_GetProgression(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockProgressionRepository(ctrl)
	svc := NewProgressionService(repo, newTestSigner(t), logger.Nop())

	want := models.Progression{Owner: "hero", MonstersKilled: 3, DistanceTraveled: 40}
	repo.EXPECT().GetProgression(gomock.Any(), "hero").Return(want, nil)
	repo.EXPECT().GetProgression(gomock.Any(), "ghost").Return(models.Progression{}, store.ErrProgressionNotFound)

	got, err := svc.GetProgression(context.Background(), "hero")
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = svc.GetProgression(context.Background(), "ghost")
	assert.ErrorIs(t, err, store.ErrProgressionNotFound)

	_, err = svc.GetProgression(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

// ── PushProgression ──────────────────────────────────────────────────────────

func TestProgressionService_PushProgression_SignsAndStores(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockProgressionRepository(ctrl)
	signer := newTestSigner(t)
	svc := NewProgressionService(repo, signer, logger.Nop())

	asOf := time.Date(2026, 3, 1, 12, 0, 0, 0, time.FixedZone("UTC+3", 3*3600))

	repo.EXPECT().
		AdvanceProgression(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p models.Progression) error {
			assert.Equal(t, "hero", p.Owner)
			assert.Equal(t, int32(12), p.MonstersKilled)
			assert.Equal(t, int32(300), p.DistanceTraveled)
			assert.Equal(t, time.UTC, p.AsOf.Location())
			assert.True(t, signer.Verify(12, p.Signature))
			return nil
		})

	got, err := svc.PushProgression(context.Background(), "hero", models.ProgressionPushRequest{
		MonstersKilled:   12,
		DistanceTraveled: 300,
		AsOf:             asOf,
	})

	require.NoError(t, err)
	assert.True(t, asOf.Equal(got.AsOf))
	assert.True(t, signer.Verify(got.MonstersKilled, got.Signature))
}

func TestProgressionService_PushProgression_DefaultsAsOf(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockProgressionRepository(ctrl)
	svc := NewProgressionService(repo, newTestSigner(t), logger.Nop()).(*progressionService)

	fixed := time.Date(2026, 5, 4, 3, 2, 1, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	repo.EXPECT().AdvanceProgression(gomock.Any(), gomock.Any()).Return(nil)

	got, err := svc.PushProgression(context.Background(), "hero", models.ProgressionPushRequest{MonstersKilled: 1, DistanceTraveled: 1})
	require.NoError(t, err)
	assert.Equal(t, fixed, got.AsOf)
}

func TestProgressionService_PushProgression_Rejects(t *testing.T) {
	tests := []struct {
		name  string
		owner string
		req   models.ProgressionPushRequest
	}{
		{"empty owner", "", models.ProgressionPushRequest{MonstersKilled: 1, DistanceTraveled: 1}},
		{"negative kills", "hero", models.ProgressionPushRequest{MonstersKilled: -1, DistanceTraveled: 1}},
		{"negative distance", "hero", models.ProgressionPushRequest{MonstersKilled: 1, DistanceTraveled: -5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := NewProgressionService(mock.NewMockProgressionRepository(ctrl), newTestSigner(t), logger.Nop())

			_, err := svc.PushProgression(context.Background(), tt.owner, tt.req)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestProgressionService_PushProgression_Regression(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockProgressionRepository(ctrl)
	svc := NewProgressionService(repo, newTestSigner(t), logger.Nop())

	repo.EXPECT().AdvanceProgression(gomock.Any(), gomock.Any()).Return(store.ErrProgressionNotAdvanced)

	_, err := svc.PushProgression(context.Background(), "hero", models.ProgressionPushRequest{MonstersKilled: 1, DistanceTraveled: 1})
	assert.ErrorIs(t, err, ErrProgressionRegression)
}

func TestProgressionService_PushProgression_RepositoryFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockProgressionRepository(ctrl)
	svc := NewProgressionService(repo, newTestSigner(t), logger.Nop())

	dbErr := errors.New("deadlock")
	repo.EXPECT().AdvanceProgression(gomock.Any(), gomock.Any()).Return(dbErr)

	_, err := svc.PushProgression(context.Background(), "hero", models.ProgressionPushRequest{MonstersKilled: 1, DistanceTraveled: 1})
	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, ErrProgressionRegression)
}
