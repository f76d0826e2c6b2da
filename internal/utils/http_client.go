package utils

import (
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	httpClientRetryCount   = 2
	httpClientRetryWait    = 200 * time.Millisecond
	httpClientRetryMaxWait = 2 * time.Second
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().Get("https://example.com")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates and returns a new HTTPClient instance.
//
// Requests that fail at the transport level or return 502, 503 or 504 are
// retried twice with a short backoff. Other statuses are returned as is.
func NewHTTPClient() *HTTPClient {
	client := resty.New().
		SetRetryCount(httpClientRetryCount).
		SetRetryWaitTime(httpClientRetryWait).
		SetRetryMaxWaitTime(httpClientRetryMaxWait).
		AddRetryCondition(retryOnUnavailable)

	return &HTTPClient{Client: client}
}

func retryOnUnavailable(resp *resty.Response, err error) bool {
	if err != nil {
		return true
	}
	if resp == nil {
		return false
	}

	switch resp.StatusCode() {
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return true
	}
	return false
}
