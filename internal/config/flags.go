package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-router-url base URL of the router backend
//	-admin-url base URL of the privileged admin surface
//	-a listen address for the mockrouter stub
//	-d session database file path
//	-downloads-dir directory for saved certificates
//	-toast-duration notification auto-close duration (e.g., "5s")
//	-request-timeout outbound request timeout (e.g., "15s")
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var routerURL string
	var adminURL string
	var serverAddress string
	var databaseDSN string
	var downloadsDir string
	var toastDuration time.Duration
	var requestTimeout time.Duration
	var jsonConfigPath string

	flag.StringVar(&routerURL, "router-url", "", "Router backend base URL")
	flag.StringVar(&adminURL, "admin-url", "", "Admin surface base URL")
	flag.StringVar(&serverAddress, "a", "", "Mockrouter listen address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Session database file path")
	flag.StringVar(&downloadsDir, "downloads-dir", "", "Directory for saved certificates")
	flag.DurationVar(&toastDuration, "toast-duration", 0, "Toast auto-close duration (e.g., 5s)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s, 1m)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		Backend: Backend{
			RouterURL:      routerURL,
			AdminURL:       adminURL,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Downloads: Downloads{
			Dir: downloadsDir,
		},
		Toast: Toast{
			AutoClose: toastDuration,
		},
		Server: Server{
			Address: serverAddress,
		},
		JSONFilePath: jsonConfigPath,
	}
}
