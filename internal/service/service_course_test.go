package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/certdesk/certdesk/internal/adapter"
	"github.com/certdesk/certdesk/internal/logger"
	"github.com/certdesk/certdesk/models"
)

func TestCourseCreate_Success(t *testing.T) {
	c := NewCourseService(&fakeSessions{session: adminSession}, &fakeRouter{}, logger.Nop())

	created, err := c.Create(context.Background(), models.Course{ID: "go-101", Title: "Go Basics"})

	require.NoError(t, err)
	assert.Equal(t, "go-101", created.ID)
}

func TestCourseCreate_ValidatesInput(t *testing.T) {
	c := NewCourseService(&fakeSessions{session: adminSession}, &fakeRouter{}, logger.Nop())

	_, err := c.Create(context.Background(), models.Course{ID: "  ", Title: "Go Basics"})
	assert.ErrorIs(t, err, ErrInvalidCourse)

	_, err = c.Create(context.Background(), models.Course{ID: "go-101"})
	assert.ErrorIs(t, err, ErrInvalidCourse)
}

func TestCourseCreate_DuplicateMapped(t *testing.T) {
	router := &fakeRouter{courseErr: &adapter.APIError{Status: http.StatusConflict, Code: "COURSE_EXISTS", Message: "course go-101 already exists"}}
	c := NewCourseService(&fakeSessions{session: adminSession}, router, logger.Nop())

	_, err := c.Create(context.Background(), models.Course{ID: "go-101", Title: "Go Basics"})

	assert.ErrorIs(t, err, ErrCourseExists)
}

func TestCourseCreate_NotAuthenticated(t *testing.T) {
	c := NewCourseService(&fakeSessions{err: ErrNotAuthenticated}, &fakeRouter{}, logger.Nop())

	_, err := c.Create(context.Background(), models.Course{ID: "go-101", Title: "Go Basics"})

	assert.ErrorIs(t, err, ErrNotAuthenticated)
}
