package service

import (
	"context"

	"github.com/certdesk/certdesk/internal/action"
	"github.com/certdesk/certdesk/models"
)

// SessionService owns the locally persisted session: sign-in against the
// router, retrieval with expiry checking, and sign-out.
type SessionService interface {
	// Login exchanges credentials for a session and persists it locally.
	Login(ctx context.Context, email, password string) (models.Session, error)

	// Current returns the persisted session. ErrNotAuthenticated when none
	// is stored, ErrSessionExpired when the stored token's exp has passed.
	Current(ctx context.Context) (models.Session, error)

	// Logout removes the persisted session. Removing an absent session is
	// not an error.
	Logout(ctx context.Context) error
}

// LearnerService reads and mutates learner data for the signed-in POC's
// organization.
type LearnerService interface {
	// List returns the organization's learners.
	List(ctx context.Context, organizationID string) ([]models.Learner, error)

	// Overview fetches the learner list and the aggregate statistics
	// concurrently.
	Overview(ctx context.Context, organizationID string) (LearnerOverview, error)

	// Update applies field updates to a learner through the privileged
	// surface.
	Update(ctx context.Context, update models.LearnerUpdate) (models.Learner, error)
}

// CourseService administers course definitions.
type CourseService interface {
	// Create registers a new course. A duplicate reports ErrCourseExists.
	Create(ctx context.Context, course models.Course) (models.Course, error)
}

// CertificateService drives certificate delivery actions: download with
// progress and per-item deduplicated resend. Methods report outcomes through
// toasts and observable state rather than returned errors; the TUI calls
// them from command goroutines.
type CertificateService interface {
	// Download runs the certificate download state machine for one learner
	// and course. displayName is the caller's file name fallback.
	Download(ctx context.Context, learnerEmail, courseID, displayName string)

	// DownloadState returns the current download machine state.
	DownloadState() action.DownloadState

	// ResetDownload cancels any in-flight download and returns to idle.
	ResetDownload()

	// Resend triggers a certificate resend, routed to the privileged or
	// self-service surface by the session's role.
	Resend(ctx context.Context, learnerEmail, courseID string)

	// IsResendInFlight reports whether a resend for the pair is running.
	IsResendInFlight(learnerEmail, courseID string) bool

	// AnyResendInFlight reports whether any resend is running.
	AnyResendInFlight() bool
}
