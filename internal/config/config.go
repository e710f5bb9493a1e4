package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for certdesk. It
// aggregates all sub-configurations and is populated by merging values from
// environment variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version string.
	App App `envPrefix:"APP_"`

	// Backend holds the endpoints and timeouts of the two remote surfaces
	// the console talks to.
	Backend Backend `envPrefix:"BACKEND_"`

	// Storage holds the local session database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Downloads holds settings for the client-side certificate save flow.
	Downloads Downloads `envPrefix:"DOWNLOADS_"`

	// Toast holds notification presentation settings.
	Toast Toast `envPrefix:"TOAST_"`

	// Server holds listen settings for the mockrouter dev stub.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Backend holds the remote endpoints the console calls.
type Backend struct {
	// RouterURL is the base URL of the serverless router endpoint.
	// Env: BACKEND_ROUTER_URL
	RouterURL string `env:"ROUTER_URL"`

	// AdminURL is the base URL of the privileged admin surface.
	// Env: BACKEND_ADMIN_URL
	AdminURL string `env:"ADMIN_URL"`

	// RequestTimeout is the default timeout for outbound requests
	// (e.g. "15s", "1m").
	// Env: BACKEND_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups local persistence settings.
type Storage struct {
	// DB holds the session database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite session database.
type DB struct {
	// DSN is the SQLite file path (e.g. "certdesk.db").
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Downloads holds settings for saving fetched certificates.
type Downloads struct {
	// Dir is the directory downloaded certificates are saved into.
	// Env: DOWNLOADS_DIR
	Dir string `env:"DIR"`
}

// Toast holds notification presentation settings.
type Toast struct {
	// AutoClose is how long a notification stays visible before it is
	// dismissed automatically (e.g. "5s").
	// Env: TOAST_AUTO_CLOSE
	AutoClose time.Duration `env:"AUTO_CLOSE"`
}

// Server holds listen settings for the mockrouter development stub.
type Server struct {
	// Address is the TCP address the stub listens on, in "host:port" form.
	// Env: SERVER_ADDRESS
	Address string `env:"ADDRESS"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
