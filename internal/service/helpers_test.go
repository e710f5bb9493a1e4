package service

import (
	"context"
	"sync"

	"github.com/certdesk/certdesk/internal/store"
	"github.com/certdesk/certdesk/models"
)

// fakeRouter is a scriptable adapter.RouterAdapter.
type fakeRouter struct {
	mu sync.Mutex

	loginSession models.Session
	loginErr     error

	downloadData models.DownloadCertificateData
	downloadErr  error

	resendResult models.ActionResult
	resendErr    error

	learners    []models.Learner
	learnersErr error

	stats    models.LearnerStatistics
	statsErr error

	course    models.Course
	courseErr error

	listCalls  int
	statsCalls int
}

func (f *fakeRouter) Login(ctx context.Context, email, password string) (models.Session, error) {
	if f.loginErr != nil {
		return models.Session{}, f.loginErr
	}
	s := f.loginSession
	s.Email = email
	return s, nil
}

func (f *fakeRouter) DownloadCertificateURL(ctx context.Context, session models.Session, learnerEmail, courseID string) (models.DownloadCertificateData, error) {
	return f.downloadData, f.downloadErr
}

func (f *fakeRouter) ResendCertificate(ctx context.Context, session models.Session, learnerEmail, courseID string) (models.ActionResult, error) {
	return f.resendResult, f.resendErr
}

func (f *fakeRouter) ListOrganizationLearners(ctx context.Context, session models.Session, organizationID string) ([]models.Learner, error) {
	f.mu.Lock()
	f.listCalls++
	f.mu.Unlock()
	return f.learners, f.learnersErr
}

func (f *fakeRouter) LearnerStatistics(ctx context.Context, session models.Session, organizationID string) (models.LearnerStatistics, error) {
	f.mu.Lock()
	f.statsCalls++
	f.mu.Unlock()
	return f.stats, f.statsErr
}

func (f *fakeRouter) CreateCourse(ctx context.Context, session models.Session, course models.Course) (models.Course, error) {
	if f.courseErr != nil {
		return models.Course{}, f.courseErr
	}
	if f.course.ID != "" {
		return f.course, nil
	}
	return course, nil
}

// fakeAdmin is a scriptable adapter.AdminAdapter.
type fakeAdmin struct {
	resendResult models.ActionResult
	resendErr    error

	learner    models.Learner
	learnerErr error

	updateCalls int
}

func (f *fakeAdmin) ResendCertificate(ctx context.Context, session models.Session, learnerEmail, courseID string) (models.ActionResult, error) {
	return f.resendResult, f.resendErr
}

func (f *fakeAdmin) UpdateLearner(ctx context.Context, session models.Session, update models.LearnerUpdate) (models.Learner, error) {
	f.updateCalls++
	if f.learnerErr != nil {
		return models.Learner{}, f.learnerErr
	}
	return f.learner, nil
}

// memorySessionRepo is an in-memory store.SessionRepository.
type memorySessionRepo struct {
	mu      sync.Mutex
	session *models.Session
	saveErr error
}

func (r *memorySessionRepo) Save(ctx context.Context, session models.Session) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.session = &session
	return nil
}

func (r *memorySessionRepo) Get(ctx context.Context) (models.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.session == nil {
		return models.Session{}, store.ErrSessionNotFound
	}
	return *r.session, nil
}

func (r *memorySessionRepo) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.session = nil
	return nil
}

// fakeSessions is a canned SessionService for services built on top of it.
type fakeSessions struct {
	session models.Session
	err     error
}

func (f *fakeSessions) Login(ctx context.Context, email, password string) (models.Session, error) {
	return f.session, f.err
}

func (f *fakeSessions) Current(ctx context.Context) (models.Session, error) {
	return f.session, f.err
}

func (f *fakeSessions) Logout(ctx context.Context) error {
	return f.err
}
