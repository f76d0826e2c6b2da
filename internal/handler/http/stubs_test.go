package http

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"

	"github.com/MKhiriev/go-save-keeper/internal/logger"
	"github.com/MKhiriev/go-save-keeper/internal/service"
	"github.com/MKhiriev/go-save-keeper/models"
)

// ─────────────────────────────────────────────
// Service stubs
// ─────────────────────────────────────────────

// stubAuthService implements service.AuthService. ParseToken accepts tokens
// of the form "valid-<username>" unless parseTokenFn is set.
type stubAuthService struct {
	registerFn    func(ctx context.Context, credentials models.Credentials) (models.Account, error)
	loginFn       func(ctx context.Context, credentials models.Credentials) (models.Account, error)
	createTokenFn func(ctx context.Context, account models.Account) (models.Token, error)
	parseTokenFn  func(ctx context.Context, tokenString string) (models.Token, error)
}

func (s *stubAuthService) Register(ctx context.Context, credentials models.Credentials) (models.Account, error) {
	return s.registerFn(ctx, credentials)
}

func (s *stubAuthService) Login(ctx context.Context, credentials models.Credentials) (models.Account, error) {
	return s.loginFn(ctx, credentials)
}

func (s *stubAuthService) CreateToken(ctx context.Context, account models.Account) (models.Token, error) {
	if s.createTokenFn != nil {
		return s.createTokenFn(ctx, account)
	}
	return models.Token{SignedString: "valid-" + account.Username, Username: account.Username}, nil
}

func (s *stubAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if s.parseTokenFn != nil {
		return s.parseTokenFn(ctx, tokenString)
	}
	username, ok := strings.CutPrefix(tokenString, "valid-")
	if !ok {
		return models.Token{}, service.ErrTokenIsExpiredOrInvalid
	}
	return models.Token{SignedString: tokenString, Username: username}, nil
}

type stubSaveService struct {
	storeFn func(ctx context.Context, owner string, record models.SealedRecord) error
	loadFn  func(ctx context.Context, owner string) (models.SealedRecord, error)
}

func (s *stubSaveService) StoreRecord(ctx context.Context, owner string, record models.SealedRecord) error {
	return s.storeFn(ctx, owner, record)
}

func (s *stubSaveService) LoadRecord(ctx context.Context, owner string) (models.SealedRecord, error) {
	return s.loadFn(ctx, owner)
}

type stubProgressionService struct {
	getFn  func(ctx context.Context, owner string) (models.Progression, error)
	pushFn func(ctx context.Context, owner string, req models.ProgressionPushRequest) (models.Progression, error)
}

func (s *stubProgressionService) GetProgression(ctx context.Context, owner string) (models.Progression, error) {
	return s.getFn(ctx, owner)
}

func (s *stubProgressionService) PushProgression(ctx context.Context, owner string, req models.ProgressionPushRequest) (models.Progression, error) {
	return s.pushFn(ctx, owner, req)
}

type stubLeaderboardService struct {
	entries []models.LeaderboardEntry
	err     error
}

func (s *stubLeaderboardService) Leaderboard(context.Context) ([]models.LeaderboardEntry, error) {
	return s.entries, s.err
}

type stubAppInfoService struct {
	info models.BuildInfo
}

func (s *stubAppInfoService) GetAppVersion(context.Context) models.BuildInfo {
	return s.info
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func newTestServices() *service.Services {
	return &service.Services{
		AuthService:        &stubAuthService{},
		SaveService:        &stubSaveService{},
		ProgressionService: &stubProgressionService{},
		LeaderboardService: &stubLeaderboardService{entries: []models.LeaderboardEntry{}},
		AppInfoService:     &stubAppInfoService{info: models.BuildInfo{Version: "1.0.0", Date: "N/A", Commit: "N/A"}},
	}
}

// serve runs a request through the full router.
func serve(services *service.Services, method, path, body, token string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	NewHandler(services, logger.Nop()).Init().ServeHTTP(rec, req)
	return rec
}

func bodyText(rec *httptest.ResponseRecorder) string {
	return strings.TrimSpace(rec.Body.String())
}
