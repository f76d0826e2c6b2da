package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-save-keeper/internal/config"
	"github.com/MKhiriev/go-save-keeper/internal/logger"
	"github.com/MKhiriev/go-save-keeper/internal/utils"
	"github.com/MKhiriev/go-save-keeper/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and request
// timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent authenticated requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [ServerAdapter]. It POSTs the credentials to
// POST /api/account/register and keeps the bearer token from the
// Authorization response header.
func (h *httpServerAdapter) Register(ctx context.Context, credentials models.Credentials) (models.Account, error) {
	return h.authenticate(ctx, "/api/account/register", credentials)
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// POST /api/account/login and keeps the bearer token from the Authorization
// response header.
func (h *httpServerAdapter) Login(ctx context.Context, credentials models.Credentials) (models.Account, error) {
	return h.authenticate(ctx, "/api/account/login", credentials)
}

func (h *httpServerAdapter) authenticate(ctx context.Context, path string, credentials models.Credentials) (models.Account, error) {
	var account models.Account

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(credentials).
		SetResult(&account).
		Post(path)
	if err != nil {
		return models.Account{}, fmt.Errorf("%s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Account{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.Account{}, fmt.Errorf("%s parse bearer token: %w", path, err)
	}

	h.SetToken(token)
	return account, nil
}

// FetchSealedRecord implements [ServerAdapter]. It GETs /api/game/load for the
// authenticated account and checks that the record belongs to owner.
func (h *httpServerAdapter) FetchSealedRecord(ctx context.Context, owner string) (models.SealedRecord, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.SealedRecord{}, err
	}

	var record models.SealedRecord
	resp, err := req.SetResult(&record).Get("/api/game/load")
	if err != nil {
		return models.SealedRecord{}, fmt.Errorf("load request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SealedRecord{}, err
	}

	if record.Owner != owner {
		h.logger.Warn().
			Str("func", "httpServerAdapter.FetchSealedRecord").
			Str("owner", owner).
			Str("record_owner", record.Owner).
			Msg("server returned a record of another account")
		return models.SealedRecord{}, ErrOwnerMismatch
	}

	return record, nil
}

// StoreSealedRecord implements [ServerAdapter]. It POSTs the record to
// POST /api/game/save.
func (h *httpServerAdapter) StoreSealedRecord(ctx context.Context, record models.SealedRecord) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(record).
		Post("/api/game/save")
	if err != nil {
		return fmt.Errorf("save request: %w", err)
	}

	return mapHTTPError(resp)
}

// FetchServerProgression implements [ServerAdapter]. The endpoint
// GET /api/progression/{username} is public.
func (h *httpServerAdapter) FetchServerProgression(ctx context.Context, owner string) (models.Progression, error) {
	var progression models.Progression

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("username", owner).
		SetResult(&progression).
		Get("/api/progression/{username}")
	if err != nil {
		return models.Progression{}, fmt.Errorf("progression request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Progression{}, err
	}

	return progression, nil
}

// PushProgression implements [ServerAdapter]. It POSTs the counters to
// POST /api/progression; the owner is taken from the bearer token by the
// server and checked against owner here.
func (h *httpServerAdapter) PushProgression(ctx context.Context, owner string, monstersKilled, distanceTraveled int32, asOf time.Time) (models.Progression, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.Progression{}, err
	}

	var stored models.Progression
	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(models.ProgressionPushRequest{
			MonstersKilled:   monstersKilled,
			DistanceTraveled: distanceTraveled,
			AsOf:             asOf.UTC(),
		}).
		SetResult(&stored).
		Post("/api/progression")
	if err != nil {
		return models.Progression{}, fmt.Errorf("push progression request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Progression{}, err
	}

	if stored.Owner != owner {
		return models.Progression{}, ErrOwnerMismatch
	}

	return stored, nil
}

// Leaderboard implements [ServerAdapter].
func (h *httpServerAdapter) Leaderboard(ctx context.Context) ([]models.LeaderboardEntry, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/leaderboard")
	if err != nil {
		return nil, fmt.Errorf("leaderboard request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var entries []models.LeaderboardEntry
	if err = json.Unmarshal(resp.Body(), &entries); err != nil {
		return nil, fmt.Errorf("decode leaderboard response: %w", err)
	}

	return entries, nil
}

// Version implements [ServerAdapter].
func (h *httpServerAdapter) Version(ctx context.Context) (models.BuildInfo, error) {
	var info models.BuildInfo

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&info).
		Get("/api/version/")
	if err != nil {
		return models.BuildInfo{}, fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.BuildInfo{}, err
	}

	return info, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) (*resty.Request, error) {
	token := h.Token()
	if token == "" {
		return nil, ErrNotAuthenticated
	}

	return h.client.R().
		SetContext(ctx).
		SetAuthToken(token), nil
}
