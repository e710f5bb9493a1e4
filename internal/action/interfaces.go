package action

import (
	"context"

	"github.com/certdesk/certdesk/models"
)

// Notifier is the slice of the toast presenter the action layer needs.
// Satisfied by *toast.Presenter.
type Notifier interface {
	ShowSuccess(title, message string)
	ShowError(title, message string)
}

// Resender triggers one certificate resend on a backend surface. Both the
// self-service router and the privileged admin surface satisfy it with their
// responses already normalized to a tagged [models.ActionResult].
type Resender interface {
	ResendCertificate(ctx context.Context, session models.Session, learnerEmail, courseID string) (models.ActionResult, error)
}

// CertificateURLProvider exchanges (learner, course, token) for a
// time-limited object URL. Satisfied by the router adapter.
type CertificateURLProvider interface {
	DownloadCertificateURL(ctx context.Context, session models.Session, learnerEmail, courseID string) (models.DownloadCertificateData, error)
}

// ObjectFetcher retrieves the bytes behind a signed object URL.
type ObjectFetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, string, error)
}

// FileSaver materializes downloaded bytes under the given file name and
// returns the path written.
type FileSaver interface {
	Save(fileName string, data []byte) (string, error)
}
