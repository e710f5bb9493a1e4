package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJSON_AllFields(t *testing.T) {
	path := writeTempJSON(t, `{
		"app": {"version": "0.9.0"},
		"backend": {
			"router_url": "https://router.example.com",
			"admin_url": "https://admin.example.com",
			"request_timeout": "20s"
		},
		"storage": {"db": {"dsn": "session.db"}},
		"downloads": {"dir": "/tmp/down"},
		"toast": {"auto_close": "4s"},
		"server": {"address": ":9090"}
	}`)

	cfg, err := parseJSON(path)

	require.NoError(t, err)
	assert.Equal(t, "0.9.0", cfg.App.Version)
	assert.Equal(t, "https://router.example.com", cfg.Backend.RouterURL)
	assert.Equal(t, "https://admin.example.com", cfg.Backend.AdminURL)
	assert.Equal(t, 20*time.Second, cfg.Backend.RequestTimeout)
	assert.Equal(t, "session.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/tmp/down", cfg.Downloads.Dir)
	assert.Equal(t, 4*time.Second, cfg.Toast.AutoClose)
	assert.Equal(t, ":9090", cfg.Server.Address)
}

func TestParseJSON_NumericDuration(t *testing.T) {
	path := writeTempJSON(t, `{"backend": {"request_timeout": 1000000000}}`)

	cfg, err := parseJSON(path)

	require.NoError(t, err)
	assert.Equal(t, time.Second, cfg.Backend.RequestTimeout)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON("/no/such/file.json")
	require.Error(t, err)
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	path := writeTempJSON(t, `{not json`)

	_, err := parseJSON(path)
	require.Error(t, err)
}

func TestConsoleConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     ConsoleConfig
		wantErr error
	}{
		{
			name: "valid",
			cfg: ConsoleConfig{
				Backend: ConsoleBackend{RouterURL: "https://r", AdminURL: "https://a"},
				Storage: ConsoleStorage{DB: ConsoleDB{DSN: "session.db"}},
			},
		},
		{
			name: "missing router url",
			cfg: ConsoleConfig{
				Backend: ConsoleBackend{AdminURL: "https://a"},
			},
			wantErr: ErrInvalidBackendConfigs,
		},
		{
			name: "missing admin url",
			cfg: ConsoleConfig{
				Backend: ConsoleBackend{RouterURL: "https://r"},
			},
			wantErr: ErrInvalidBackendConfigs,
		},
		{
			name: "in-memory dsn",
			cfg: ConsoleConfig{
				Backend: ConsoleBackend{RouterURL: "https://r", AdminURL: "https://a"},
				Storage: ConsoleStorage{DB: ConsoleDB{DSN: ":memory:"}},
			},
			wantErr: ErrInvalidStorageConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConsoleConfig_ApplyDefaults(t *testing.T) {
	cfg := &ConsoleConfig{}
	cfg.applyDefaults()

	assert.Equal(t, DefaultRequestTimeout, cfg.Backend.RequestTimeout)
	assert.Equal(t, DefaultToastAutoClose, cfg.Toast.AutoClose)
	assert.Equal(t, DefaultDownloadsDir, cfg.Downloads.Dir)
	assert.Equal(t, DefaultSessionDSN, cfg.Storage.DB.DSN)
}
