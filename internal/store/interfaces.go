package store

import (
	"context"

	"github.com/certdesk/certdesk/models"
)

// SessionRepository persists the single local user session. The console
// treats a missing session as a normal, expected condition (the user simply
// has to sign in), so Get returns [ErrSessionNotFound] rather than crashing.
type SessionRepository interface {
	// Save stores the session, replacing any previously stored one.
	Save(ctx context.Context, session models.Session) error

	// Get returns the stored session or [ErrSessionNotFound].
	Get(ctx context.Context) (models.Session, error)

	// Clear removes the stored session. Clearing an absent session is a
	// no-op.
	Clear(ctx context.Context) error
}
