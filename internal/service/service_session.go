package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/certdesk/certdesk/internal/adapter"
	"github.com/certdesk/certdesk/internal/logger"
	"github.com/certdesk/certdesk/internal/store"
	"github.com/certdesk/certdesk/models"
)

type sessionService struct {
	router adapter.RouterAdapter
	repo   store.SessionRepository
	logger *logger.Logger
}

// NewSessionService constructs the SessionService backed by the router for
// sign-in and the local SQLite repository for persistence.
func NewSessionService(router adapter.RouterAdapter, repo store.SessionRepository, log *logger.Logger) SessionService {
	return &sessionService{router: router, repo: repo, logger: log}
}

func (s *sessionService) Login(ctx context.Context, email, password string) (models.Session, error) {
	session, err := s.router.Login(ctx, email, password)
	if err != nil {
		return models.Session{}, mapAdapterError(err)
	}

	session.SavedAt = time.Now()
	if err = s.repo.Save(ctx, session); err != nil {
		return models.Session{}, fmt.Errorf("persist session: %w", err)
	}

	s.logger.Info().Str("email", email).Str("role", session.Role).Msg("signed in")
	return session, nil
}

func (s *sessionService) Current(ctx context.Context) (models.Session, error) {
	session, err := s.repo.Get(ctx)
	if err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			return models.Session{}, ErrNotAuthenticated
		}
		return models.Session{}, fmt.Errorf("load session: %w", err)
	}

	if tokenExpired(session.Token) {
		// drop the stale record so the next Current is a clean miss
		if err = s.repo.Clear(ctx); err != nil {
			s.logger.Warn().Err(err).Msg("clear expired session")
		}
		return models.Session{}, ErrSessionExpired
	}

	return session, nil
}

func (s *sessionService) Logout(ctx context.Context) error {
	if err := s.repo.Clear(ctx); err != nil && !errors.Is(err, store.ErrSessionNotFound) {
		return fmt.Errorf("clear session: %w", err)
	}

	s.logger.Info().Msg("signed out")
	return nil
}

// tokenExpired inspects the token's exp claim without verifying the
// signature; verification is the backend's job, the console only avoids
// presenting a token it knows is dead. Tokens that cannot be parsed or carry
// no exp are treated as live and left for the backend to reject.
func tokenExpired(tokenString string) bool {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, &jwt.RegisteredClaims{})
	if err != nil {
		return false
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.ExpiresAt == nil {
		return false
	}

	return claims.ExpiresAt.Before(time.Now())
}
