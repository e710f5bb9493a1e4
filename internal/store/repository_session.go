package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/certdesk/certdesk/internal/logger"
	"github.com/certdesk/certdesk/models"
)

// sessionRowID pins the sessions table to a single row: the console holds at
// most one signed-in user at a time.
const sessionRowID = 1

var sb = sq.StatementBuilder.PlaceholderFormat(sq.Question)

type sessionRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	return &sessionRepository{db: db, logger: logger}
}

func (r *sessionRepository) Save(ctx context.Context, session models.Session) error {
	log := logger.FromContext(ctx)

	query, args, err := sb.Insert("sessions").
		Columns("id", "email", "token", "role", "organization_id", "saved_at").
		Values(sessionRowID, session.Email, session.Token, session.Role, session.OrganizationID, session.SavedAt).
		Suffix("ON CONFLICT(id) DO UPDATE SET email=excluded.email, token=excluded.token, role=excluded.role, organization_id=excluded.organization_id, saved_at=excluded.saved_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build save session query: %w", err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "sessionRepository.Save").
			Str("email", session.Email).
			Msg("failed to execute upsert for session")
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}

func (r *sessionRepository) Get(ctx context.Context) (models.Session, error) {
	log := logger.FromContext(ctx)

	query, args, err := sb.Select("email", "token", "role", "organization_id", "saved_at").
		From("sessions").
		Where(sq.Eq{"id": sessionRowID}).
		ToSql()
	if err != nil {
		return models.Session{}, fmt.Errorf("build get session query: %w", err)
	}

	var session models.Session
	row := r.db.QueryRowContext(ctx, query, args...)
	scanErr := row.Scan(&session.Email, &session.Token, &session.Role, &session.OrganizationID, &session.SavedAt)
	if scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			return models.Session{}, ErrSessionNotFound
		}
		log.Err(scanErr).
			Str("func", "sessionRepository.Get").
			Msg("failed to scan session row")
		return models.Session{}, fmt.Errorf("failed to scan session row: %w", scanErr)
	}

	return session, nil
}

func (r *sessionRepository) Clear(ctx context.Context) error {
	log := logger.FromContext(ctx)

	query, args, err := sb.Delete("sessions").
		Where(sq.Eq{"id": sessionRowID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build clear session query: %w", err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "sessionRepository.Clear").
			Msg("failed to delete session row")
		return fmt.Errorf("failed to clear session: %w", err)
	}

	return nil
}
