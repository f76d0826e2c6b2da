package config

import "time"

// Built-in defaults. Secrets have none.
const (
	defaultServerAddress  = "localhost:8080"
	defaultAdapterAddress = "http://localhost:8080"
	defaultRequestTimeout = 10 * time.Second
	defaultTokenIssuer    = "go-save-keeper"
	defaultTokenDuration  = 24 * time.Hour
	defaultLocalDSN       = "save-keeper.db"
	defaultSyncInterval   = time.Minute
	defaultLogLevel       = "debug"
	defaultLogFile        = "save-keeper.log"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   defaultTokenIssuer,
			TokenDuration: defaultTokenDuration,
			LogLevel:      defaultLogLevel,
			LogFile:       defaultLogFile,
		},
		Storage: Storage{
			Local: Local{DSN: defaultLocalDSN},
		},
		Server: Server{
			HTTPAddress:    defaultServerAddress,
			RequestTimeout: defaultRequestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    defaultAdapterAddress,
			RequestTimeout: defaultRequestTimeout,
		},
		Workers: Workers{SyncInterval: defaultSyncInterval},
	}
}
