package service

import (
	"fmt"

	"github.com/MKhiriev/go-save-keeper/internal/config"
	"github.com/MKhiriev/go-save-keeper/internal/crypto"
	"github.com/MKhiriev/go-save-keeper/internal/logger"
	"github.com/MKhiriev/go-save-keeper/internal/store"
	"github.com/MKhiriev/go-save-keeper/models"
)

type Services struct {
	AuthService        AuthService
	SaveService        SaveService
	ProgressionService ProgressionService
	LeaderboardService LeaderboardService
	AppInfoService     AppInfoService
}

func NewServices(storages *store.Storages, cfg config.ServerApp, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	signer, err := crypto.NewSigner([]byte(cfg.SignatureSecret))
	if err != nil {
		return nil, fmt.Errorf("create progression signer: %w", err)
	}

	return &Services{
		AuthService:        NewAuthService(storages.AccountRepository, storages.ProgressionRepository, crypto.NewPasswordHasher(), cfg, logger),
		SaveService:        NewSaveService(storages.SaveRepository, logger),
		ProgressionService: NewProgressionService(storages.ProgressionRepository, signer, logger),
		LeaderboardService: NewLeaderboardService(storages.ProgressionRepository, signer, logger),
		AppInfoService:     NewAppInfoService(build, cfg.Version, logger),
	}, nil
}
