package service

import (
	"context"

	"github.com/MKhiriev/go-save-keeper/internal/logger"
	"github.com/MKhiriev/go-save-keeper/models"
)

type appInfoService struct {
	info models.BuildInfo

	logger *logger.Logger
}

// NewAppInfoService reports build. A configured version overrides the
// version linked into the binary.
func NewAppInfoService(build models.AppBuildInfo, configuredVersion string, logger *logger.Logger) AppInfoService {
	info := build.Info()
	if configuredVersion != "" {
		info.Version = configuredVersion
	}

	return &appInfoService{
		info:   info,
		logger: logger,
	}
}

func (s *appInfoService) GetAppVersion(ctx context.Context) models.BuildInfo {
	return s.info
}
