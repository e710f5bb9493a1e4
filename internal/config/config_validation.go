package config

// validate checks that the final [ConsoleConfig] satisfies the invariants the
// console needs at startup: both remote endpoints must be configured and the
// session database must live in a real file (the session has to survive
// restarts).
func (cfg *ConsoleConfig) validate() error {
	if cfg.Backend.RouterURL == "" {
		return ErrInvalidBackendConfigs
	}

	if cfg.Backend.AdminURL == "" {
		return ErrInvalidBackendConfigs
	}

	if cfg.Storage.DB.DSN == ":memory:" {
		return ErrInvalidStorageConfigs
	}

	return nil
}
