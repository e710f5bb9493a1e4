package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/certdesk/certdesk/internal/adapter"
	"github.com/certdesk/certdesk/internal/logger"
	"github.com/certdesk/certdesk/models"
)

// LearnerOverview bundles the learner list and the aggregate statistics shown
// together on the organization screen.
type LearnerOverview struct {
	Learners   []models.Learner
	Statistics models.LearnerStatistics
}

type learnerService struct {
	sessions SessionService
	router   adapter.RouterAdapter
	admin    adapter.AdminAdapter
	logger   *logger.Logger
}

// NewLearnerService constructs the LearnerService. Reads go through the
// router surface, learner updates through the privileged admin surface.
func NewLearnerService(sessions SessionService, router adapter.RouterAdapter, admin adapter.AdminAdapter, log *logger.Logger) LearnerService {
	return &learnerService{sessions: sessions, router: router, admin: admin, logger: log}
}

func (l *learnerService) List(ctx context.Context, organizationID string) ([]models.Learner, error) {
	session, err := l.sessions.Current(ctx)
	if err != nil {
		return nil, err
	}

	learners, err := l.router.ListOrganizationLearners(ctx, session, organizationID)
	if err != nil {
		return nil, mapAdapterError(err)
	}

	return learners, nil
}

// Overview fetches the learner list and statistics concurrently; the screen
// needs both, and the two router actions are independent.
func (l *learnerService) Overview(ctx context.Context, organizationID string) (LearnerOverview, error) {
	session, err := l.sessions.Current(ctx)
	if err != nil {
		return LearnerOverview{}, err
	}

	var overview LearnerOverview

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		learners, err := l.router.ListOrganizationLearners(gctx, session, organizationID)
		if err != nil {
			return fmt.Errorf("list learners: %w", err)
		}
		overview.Learners = learners
		return nil
	})
	g.Go(func() error {
		stats, err := l.router.LearnerStatistics(gctx, session, organizationID)
		if err != nil {
			return fmt.Errorf("learner statistics: %w", err)
		}
		overview.Statistics = stats
		return nil
	})

	if err = g.Wait(); err != nil {
		return LearnerOverview{}, mapAdapterError(err)
	}

	return overview, nil
}

func (l *learnerService) Update(ctx context.Context, update models.LearnerUpdate) (models.Learner, error) {
	session, err := l.sessions.Current(ctx)
	if err != nil {
		return models.Learner{}, err
	}
	if !session.Privileged() {
		return models.Learner{}, ErrAccessForbidden
	}

	learner, err := l.admin.UpdateLearner(ctx, session, update)
	if err != nil {
		return models.Learner{}, mapAdapterError(err)
	}

	l.logger.Info().Str("learner", update.Email).Msg("learner updated")
	return learner, nil
}
