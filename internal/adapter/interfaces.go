// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the save-keeper server.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// services from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404, [ErrConflict] for 409).
package adapter

import (
	"context"
	"time"

	"github.com/MKhiriev/go-save-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the save-keeper
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel values
// defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates an account. On success the returned bearer token is
	// stored via SetToken.
	Register(ctx context.Context, credentials models.Credentials) (models.Account, error)

	// Login authenticates by username or email. On success the returned
	// bearer token is stored via SetToken.
	Login(ctx context.Context, credentials models.Credentials) (models.Account, error)

	// FetchSealedRecord returns the owner's sealed save, or [ErrNotFound].
	FetchSealedRecord(ctx context.Context, owner string) (models.SealedRecord, error)

	// StoreSealedRecord replaces the owner's sealed save.
	StoreSealedRecord(ctx context.Context, record models.SealedRecord) error

	// FetchServerProgression returns the owner's signed progression, or
	// [ErrNotFound].
	FetchServerProgression(ctx context.Context, owner string) (models.Progression, error)

	// PushProgression submits new counters for owner. The server rejects a
	// regression with [ErrConflict] and returns the stored, signed
	// progression on success.
	PushProgression(ctx context.Context, owner string, monstersKilled, distanceTraveled int32, asOf time.Time) (models.Progression, error)

	// Leaderboard returns every progression with its integrity label.
	Leaderboard(ctx context.Context) ([]models.LeaderboardEntry, error)

	// Version returns the server build information.
	Version(ctx context.Context) (models.BuildInfo, error)
}
