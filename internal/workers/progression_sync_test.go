package workers

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-save-keeper/internal/logger"
	"github.com/MKhiriev/go-save-keeper/internal/service"
	"github.com/MKhiriev/go-save-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubGameService records SyncCachedProgression calls.
type stubGameService struct {
	service.ClientGameService

	mu     sync.Mutex
	owners []string
	err    error
}

func (s *stubGameService) SyncCachedProgression(_ context.Context, owner string) (models.Reconciliation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.owners = append(s.owners, owner)
	return models.Reconciliation{State: models.Reconciled}, s.err
}

func (s *stubGameService) calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.owners...)
}

func runFor(t *testing.T, w Worker, d time.Duration) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), d)
	defer cancel()
	require.NoError(t, w.Run(ctx))
}

func TestProgressionSyncWorker_SyncsCurrentOwner(t *testing.T) {
	games := &stubGameService{}
	w := NewProgressionSyncWorker(games, func() string { return "hero" }, 10*time.Millisecond, logger.Nop())

	runFor(t, w, 100*time.Millisecond)

	calls := games.calls()
	require.NotEmpty(t, calls)
	for _, owner := range calls {
		assert.Equal(t, "hero", owner)
	}
}

func TestProgressionSyncWorker_SkipsWhenLoggedOut(t *testing.T) {
	games := &stubGameService{}
	w := NewProgressionSyncWorker(games, func() string { return "" }, 5*time.Millisecond, logger.Nop())

	runFor(t, w, 50*time.Millisecond)

	assert.Empty(t, games.calls())
}

func TestProgressionSyncWorker_KeepsRunningAfterErrors(t *testing.T) {
	for _, err := range []error{service.ErrSignatureInvalid, errors.New("server down")} {
		games := &stubGameService{err: err}
		w := NewProgressionSyncWorker(games, func() string { return "hero" }, 5*time.Millisecond, logger.Nop())

		runFor(t, w, 60*time.Millisecond)

		assert.Greater(t, len(games.calls()), 1)
	}
}

func TestNewProgressionSyncWorker_DefaultInterval(t *testing.T) {
	w := NewProgressionSyncWorker(&stubGameService{}, func() string { return "" }, 0, logger.Nop())

	assert.Equal(t, DefaultSyncInterval, w.interval)
}
