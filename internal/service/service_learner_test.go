package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/certdesk/certdesk/internal/adapter"
	"github.com/certdesk/certdesk/internal/logger"
	"github.com/certdesk/certdesk/models"
)

var (
	pocSession   = models.Session{Email: "poc@corp.example", Token: "jwt", Role: models.RolePOC}
	adminSession = models.Session{Email: "admin@corp.example", Token: "jwt", Role: models.RoleAdmin}
)

func TestLearnerList_Success(t *testing.T) {
	router := &fakeRouter{learners: []models.Learner{{Email: "a@x.com"}, {Email: "b@x.com"}}}
	l := NewLearnerService(&fakeSessions{session: pocSession}, router, &fakeAdmin{}, logger.Nop())

	learners, err := l.List(context.Background(), "org-1")

	require.NoError(t, err)
	assert.Len(t, learners, 2)
}

func TestLearnerList_NotAuthenticated(t *testing.T) {
	l := NewLearnerService(&fakeSessions{err: ErrNotAuthenticated}, &fakeRouter{}, &fakeAdmin{}, logger.Nop())

	_, err := l.List(context.Background(), "org-1")

	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestLearnerOverview_FetchesBothConcurrently(t *testing.T) {
	router := &fakeRouter{
		learners: []models.Learner{{Email: "a@x.com"}},
		stats:    models.LearnerStatistics{TotalLearners: 1, CertificatesIssued: 3},
	}
	l := NewLearnerService(&fakeSessions{session: pocSession}, router, &fakeAdmin{}, logger.Nop())

	overview, err := l.Overview(context.Background(), "org-1")

	require.NoError(t, err)
	assert.Len(t, overview.Learners, 1)
	assert.Equal(t, 3, overview.Statistics.CertificatesIssued)
	assert.Equal(t, 1, router.listCalls)
	assert.Equal(t, 1, router.statsCalls)
}

func TestLearnerOverview_OneFailureFailsWhole(t *testing.T) {
	router := &fakeRouter{
		learners: []models.Learner{{Email: "a@x.com"}},
		statsErr: errors.New("connection reset"),
	}
	l := NewLearnerService(&fakeSessions{session: pocSession}, router, &fakeAdmin{}, logger.Nop())

	_, err := l.Overview(context.Background(), "org-1")

	assert.Error(t, err)
}

func TestLearnerUpdate_RequiresPrivilege(t *testing.T) {
	admin := &fakeAdmin{}
	l := NewLearnerService(&fakeSessions{session: pocSession}, &fakeRouter{}, admin, logger.Nop())

	_, err := l.Update(context.Background(), models.LearnerUpdate{Email: "a@x.com"})

	assert.ErrorIs(t, err, ErrAccessForbidden)
	assert.Zero(t, admin.updateCalls)
}

func TestLearnerUpdate_Privileged(t *testing.T) {
	admin := &fakeAdmin{learner: models.Learner{Email: "a@x.com", Name: "Renamed"}}
	l := NewLearnerService(&fakeSessions{session: adminSession}, &fakeRouter{}, admin, logger.Nop())

	learner, err := l.Update(context.Background(), models.LearnerUpdate{Email: "a@x.com"})

	require.NoError(t, err)
	assert.Equal(t, "Renamed", learner.Name)
	assert.Equal(t, 1, admin.updateCalls)
}

func TestLearnerUpdate_NotFoundMapped(t *testing.T) {
	admin := &fakeAdmin{learnerErr: adapter.ErrNotFound}
	l := NewLearnerService(&fakeSessions{session: adminSession}, &fakeRouter{}, admin, logger.Nop())

	_, err := l.Update(context.Background(), models.LearnerUpdate{Email: "ghost@x.com"})

	assert.ErrorIs(t, err, ErrLearnerNotFound)
}
