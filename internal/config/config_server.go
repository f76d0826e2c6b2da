package config

import (
	"fmt"
	"time"
)

// ServerApp holds the server's secrets and token settings.
type ServerApp struct {
	SignatureSecret string
	TokenSignKey    string
	TokenIssuer     string
	TokenDuration   time.Duration
	Version         string
	LogLevel        string
}

// ServerHTTP holds the listener settings.
type ServerHTTP struct {
	Address        string
	RequestTimeout time.Duration
}

// ServerStorage holds the PostgreSQL settings.
type ServerStorage struct {
	DSN string
}

// ServerConfig is the REST server configuration assembled from
// [StructuredConfig].
type ServerConfig struct {
	App     ServerApp
	HTTP    ServerHTTP
	Storage ServerStorage
}

// GetServerConfig builds and validates a server-specific config view from
// the merged structured configuration.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newServerConfig(cfg)
}

func newServerConfig(cfg *StructuredConfig) (*ServerConfig, error) {
	serverCfg := &ServerConfig{
		App: ServerApp{
			SignatureSecret: cfg.App.SignatureSecret,
			TokenSignKey:    cfg.App.TokenSignKey,
			TokenIssuer:     cfg.App.TokenIssuer,
			TokenDuration:   cfg.App.TokenDuration,
			Version:         cfg.App.Version,
			LogLevel:        cfg.App.LogLevel,
		},
		HTTP: ServerHTTP{
			Address:        cfg.Server.HTTPAddress,
			RequestTimeout: cfg.Server.RequestTimeout,
		},
		Storage: ServerStorage{DSN: cfg.Storage.DB.DSN},
	}

	return serverCfg, serverCfg.validate()
}
