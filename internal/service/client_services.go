package service

import (
	"fmt"

	"github.com/MKhiriev/go-save-keeper/internal/adapter"
	"github.com/MKhiriev/go-save-keeper/internal/config"
	"github.com/MKhiriev/go-save-keeper/internal/crypto"
	"github.com/MKhiriev/go-save-keeper/internal/logger"
	"github.com/MKhiriev/go-save-keeper/internal/store"
)

type ClientServices struct {
	AuthService        ClientAuthService
	GameService        ClientGameService
	LeaderboardService ClientLeaderboardService
}

func NewClientServices(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, cfg config.ClientApp, logger *logger.Logger) (*ClientServices, error) {
	signer, err := crypto.NewSigner([]byte(cfg.SignatureSecret))
	if err != nil {
		return nil, fmt.Errorf("create progression signer: %w", err)
	}

	return &ClientServices{
		AuthService: NewClientAuthService(serverAdapter, logger),
		GameService: NewClientGameService(
			NewSaveCodec(),
			NewProgressionSyncService(signer),
			signer,
			serverAdapter,
			localStore.LocalSaveRepository,
			logger,
		),
		LeaderboardService: NewClientLeaderboardService(serverAdapter),
	}, nil
}
