package adapter

import (
	"context"

	"github.com/certdesk/certdesk/models"
)

// RouterAdapter is the client of the serverless router backend: one HTTPS
// POST endpoint executing named actions. Authenticated methods take the
// session explicitly; there is no ambient token state.
type RouterAdapter interface {
	// Login exchanges credentials for a session token.
	Login(ctx context.Context, email, password string) (models.Session, error)

	// DownloadCertificateURL exchanges (learner, course, token) for a
	// time-limited object URL and a suggested file name.
	DownloadCertificateURL(ctx context.Context, session models.Session, learnerEmail, courseID string) (models.DownloadCertificateData, error)

	// ResendCertificate triggers the self-service resend surface. The
	// backend's {ok,data,error} shape is normalized into an ActionResult;
	// the returned error is non-nil only for transport-level failures.
	ResendCertificate(ctx context.Context, session models.Session, learnerEmail, courseID string) (models.ActionResult, error)

	// ListOrganizationLearners returns the learners of one organization.
	ListOrganizationLearners(ctx context.Context, session models.Session, organizationID string) ([]models.Learner, error)

	// LearnerStatistics returns aggregate learner counters for one
	// organization.
	LearnerStatistics(ctx context.Context, session models.Session, organizationID string) (models.LearnerStatistics, error)

	// CreateCourse registers a new course definition.
	CreateCourse(ctx context.Context, session models.Session, course models.Course) (models.Course, error)
}

// AdminAdapter is the client of the privileged admin surface. Its responses
// use a bare {success,message} shape rather than the router envelope.
type AdminAdapter interface {
	// ResendCertificate triggers the privileged resend surface, normalized
	// into an ActionResult. The returned error is non-nil only for
	// transport-level failures.
	ResendCertificate(ctx context.Context, session models.Session, learnerEmail, courseID string) (models.ActionResult, error)

	// UpdateLearner applies the given field updates to a learner record.
	UpdateLearner(ctx context.Context, session models.Session, update models.LearnerUpdate) (models.Learner, error)
}

// ObjectFetcher retrieves the bytes behind a signed object URL.
type ObjectFetcher interface {
	// Fetch GETs the object and returns its bytes together with the file
	// name announced via Content-Disposition (empty when absent).
	Fetch(ctx context.Context, url string) ([]byte, string, error)
}
