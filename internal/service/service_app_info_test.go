package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-save-keeper/internal/logger"
	"github.com/MKhiriev/go-save-keeper/models"
	"github.com/stretchr/testify/assert"
)

// ─────────────────────────────────────────────
// NewAppInfoService
// ─────────────────────────────────────────────

func TestNewAppInfoService_ReturnsAppInfoServiceInterface(t *testing.T) {
	svc := NewAppInfoService(models.NewAppBuildInfo("1.0.0", "", ""), "", logger.Nop())

	// compile-time check: returned value must satisfy the interface
	var _ AppInfoService = svc
}

// ─────────────────────────────────────────────
// GetAppVersion
// ─────────────────────────────────────────────

func TestGetAppVersion_ReturnsBuildInfo(t *testing.T) {
	build := models.NewAppBuildInfo("3.1.4", "2026-02-01", "abc123")
	svc := NewAppInfoService(build, "", logger.Nop())

	got := svc.GetAppVersion(context.Background())

	assert.Equal(t, models.BuildInfo{Version: "3.1.4", Date: "2026-02-01", Commit: "abc123"}, got)
}

func TestGetAppVersion_ConfiguredVersionOverrides(t *testing.T) {
	build := models.NewAppBuildInfo("3.1.4", "2026-02-01", "abc123")
	svc := NewAppInfoService(build, "3.2.0-rc1", logger.Nop())

	got := svc.GetAppVersion(context.Background())

	assert.Equal(t, "3.2.0-rc1", got.Version)
	assert.Equal(t, "abc123", got.Commit)
}

func TestGetAppVersion_UnsetValuesReportNA(t *testing.T) {
	svc := NewAppInfoService(models.AppBuildInfo{}, "", logger.Nop())

	got := svc.GetAppVersion(context.Background())

	assert.Equal(t, models.BuildInfo{Version: "N/A", Date: "N/A", Commit: "N/A"}, got)
}

func TestGetAppVersion_IgnoresContext(t *testing.T) {
	svc := NewAppInfoService(models.NewAppBuildInfo("1.0.0", "", ""), "", logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Equal(t, "1.0.0", svc.GetAppVersion(ctx).Version)
}
