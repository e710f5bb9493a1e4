package store

import (
	"context"
	"fmt"

	"github.com/certdesk/certdesk/internal/config"
	"github.com/certdesk/certdesk/internal/logger"
)

// ConsoleStorages groups all console-side storage repositories into a single
// value that can be passed around the service layer. Currently it holds only
// [SessionRepository]; additional repositories can be added here as the
// feature set grows.
type ConsoleStorages struct {
	// SessionRepository is the SQLite-backed repository for the locally
	// persisted user session.
	SessionRepository SessionRepository
}

// NewConsoleStorages initialises the console storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DB.DSN,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs and returns a [ConsoleStorages] value wired to a fresh
//     [SessionRepository].
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewConsoleStorages(cfg config.ConsoleStorage, logger *logger.Logger) (*ConsoleStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ConsoleStorages{
		SessionRepository: NewSessionRepository(db, logger),
	}, nil
}
