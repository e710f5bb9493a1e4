package config

import (
	"fmt"
	"time"
)

// ConsoleBackend holds network settings used by the console transport layer.
type ConsoleBackend struct {
	// RouterURL is the router endpoint base URL.
	RouterURL string
	// AdminURL is the privileged admin surface base URL.
	AdminURL string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
}

// ConsoleDB contains local session database settings for the console.
type ConsoleDB struct {
	// DSN is the SQLite file path of the session database.
	DSN string
}

// ConsoleStorage groups console storage backend settings.
type ConsoleStorage struct {
	// DB holds local database settings.
	DB ConsoleDB
}

// ConsoleDownloads holds certificate save settings.
type ConsoleDownloads struct {
	// Dir is the directory downloaded certificates are written into.
	Dir string
}

// ConsoleToast holds notification presentation settings.
type ConsoleToast struct {
	// AutoClose is the default notification lifetime.
	AutoClose time.Duration
}

// ConsoleConfig is the top-level console configuration assembled from
// [StructuredConfig].
type ConsoleConfig struct {
	// Version is the application version string.
	Version string
	// Backend contains remote endpoint addresses and timeouts.
	Backend ConsoleBackend
	// Storage contains local session storage settings.
	Storage ConsoleStorage
	// Downloads contains certificate save settings.
	Downloads ConsoleDownloads
	// Toast contains notification settings.
	Toast ConsoleToast
}

// Defaults applied by GetConsoleConfig for fields no source provided.
const (
	DefaultRequestTimeout = 15 * time.Second
	DefaultToastAutoClose = 5 * time.Second
	DefaultDownloadsDir   = "downloads"
	DefaultSessionDSN     = "certdesk.db"
)

// GetConsoleConfig builds and validates a console-specific config view from
// the merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the console runtime, applies defaults for optional settings,
// and validates the resulting [ConsoleConfig].
func GetConsoleConfig() (*ConsoleConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	consoleCfg := &ConsoleConfig{
		Version: cfg.App.Version,
		Backend: ConsoleBackend{
			RouterURL:      cfg.Backend.RouterURL,
			AdminURL:       cfg.Backend.AdminURL,
			RequestTimeout: cfg.Backend.RequestTimeout,
		},
		Storage: ConsoleStorage{
			DB: ConsoleDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Downloads: ConsoleDownloads{Dir: cfg.Downloads.Dir},
		Toast:     ConsoleToast{AutoClose: cfg.Toast.AutoClose},
	}
	consoleCfg.applyDefaults()

	return consoleCfg, consoleCfg.validate()
}

func (cfg *ConsoleConfig) applyDefaults() {
	if cfg.Backend.RequestTimeout <= 0 {
		cfg.Backend.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Toast.AutoClose <= 0 {
		cfg.Toast.AutoClose = DefaultToastAutoClose
	}
	if cfg.Downloads.Dir == "" {
		cfg.Downloads.Dir = DefaultDownloadsDir
	}
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = DefaultSessionDSN
	}
}

// MockRouterConfig is the configuration view for the mockrouter dev stub.
type MockRouterConfig struct {
	// Address is the listen address in "host:port" form.
	Address string
}

// GetMockRouterConfig builds the mockrouter config view, defaulting the
// listen address to ":8080" when none is configured.
func GetMockRouterConfig() (*MockRouterConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	mockCfg := &MockRouterConfig{Address: cfg.Server.Address}
	if mockCfg.Address == "" {
		mockCfg.Address = ":8080"
	}

	return mockCfg, nil
}
