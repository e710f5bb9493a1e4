package service

import (
	"context"
	"strings"

	"github.com/certdesk/certdesk/internal/adapter"
	"github.com/certdesk/certdesk/internal/logger"
	"github.com/certdesk/certdesk/models"
)

type courseService struct {
	sessions SessionService
	router   adapter.RouterAdapter
	logger   *logger.Logger
}

// NewCourseService constructs the CourseService.
func NewCourseService(sessions SessionService, router adapter.RouterAdapter, log *logger.Logger) CourseService {
	return &courseService{sessions: sessions, router: router, logger: log}
}

func (c *courseService) Create(ctx context.Context, course models.Course) (models.Course, error) {
	if strings.TrimSpace(course.ID) == "" || strings.TrimSpace(course.Title) == "" {
		return models.Course{}, ErrInvalidCourse
	}

	session, err := c.sessions.Current(ctx)
	if err != nil {
		return models.Course{}, err
	}

	created, err := c.router.CreateCourse(ctx, session, course)
	if err != nil {
		return models.Course{}, mapAdapterError(err)
	}

	c.logger.Info().Str("course", created.ID).Msg("course created")
	return created, nil
}
