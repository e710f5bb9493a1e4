package service

import (
	"context"

	"github.com/certdesk/certdesk/internal/action"
	"github.com/certdesk/certdesk/internal/logger"
	"github.com/certdesk/certdesk/models"
)

type certificateService struct {
	sessions  SessionService
	resends   *action.ResendManager
	downloads *action.Downloader
	notifier  action.Notifier
	logger    *logger.Logger
}

// NewCertificateService wires the resend manager and download machine to the
// persisted session. The machines receive the session explicitly on every
// call; they keep no credential state of their own.
func NewCertificateService(sessions SessionService, resends *action.ResendManager, downloads *action.Downloader, notifier action.Notifier, log *logger.Logger) CertificateService {
	return &certificateService{
		sessions:  sessions,
		resends:   resends,
		downloads: downloads,
		notifier:  notifier,
		logger:    log,
	}
}

func (c *certificateService) Download(ctx context.Context, learnerEmail, courseID, displayName string) {
	session, err := c.sessions.Current(ctx)
	if err != nil {
		// an empty session makes the machine fail fast with its
		// not-authenticated transition and zero network calls
		session = models.Session{}
	}

	c.downloads.Download(ctx, session, learnerEmail, courseID, displayName)
}

func (c *certificateService) DownloadState() action.DownloadState {
	return c.downloads.State()
}

func (c *certificateService) ResetDownload() {
	c.downloads.Reset()
}

func (c *certificateService) Resend(ctx context.Context, learnerEmail, courseID string) {
	session, err := c.sessions.Current(ctx)
	if err != nil {
		c.logger.Warn().Str("learner", learnerEmail).Str("course", courseID).Err(err).Msg("resend without session")
		c.notifier.ShowError("Resend failed", "User not authenticated")
		return
	}

	c.resends.Resend(ctx, session, learnerEmail, courseID, session.Privileged())
}

func (c *certificateService) IsResendInFlight(learnerEmail, courseID string) bool {
	return c.resends.IsInFlight(learnerEmail, courseID)
}

func (c *certificateService) AnyResendInFlight() bool {
	return c.resends.AnyInFlight()
}
