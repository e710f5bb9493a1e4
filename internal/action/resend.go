package action

import (
	"context"
	"sync"

	"github.com/certdesk/certdesk/internal/logger"
	"github.com/certdesk/certdesk/models"
)

// Default user-facing texts for resend outcomes. Backend failure detail is
// logged, never shown verbatim.
const (
	resendSuccessTitle   = "Certificate resent"
	resendDefaultMessage = "The certificate has been resent"
	resendFailureTitle   = "Resend failed"
	resendFailureMessage = "Could not resend the certificate. Please try again"
)

// ResendManager deduplicates concurrent certificate resends per
// (learner, course) pair and routes each one to the surface matching the
// caller's privilege.
//
// At most one resend per key is in flight at a time; a second call for the
// same key while the first is running is a silent no-op with no backend call
// and no toast.
type ResendManager struct {
	mu       sync.Mutex
	inFlight map[string]struct{}

	selfService Resender
	privileged  Resender
	notifier    Notifier
	logger      *logger.Logger
}

// NewResendManager constructs a ResendManager. selfService is the router
// surface, privileged the admin surface.
func NewResendManager(selfService, privileged Resender, notifier Notifier, log *logger.Logger) *ResendManager {
	return &ResendManager{
		inFlight:    make(map[string]struct{}),
		selfService: selfService,
		privileged:  privileged,
		notifier:    notifier,
		logger:      log,
	}
}

func resendKey(learnerEmail, courseID string) string {
	return learnerEmail + "-" + courseID
}

// Resend triggers one certificate resend for the given learner and course.
// usePrivileged selects the admin surface over the self-service one.
//
// Success shows one success toast carrying the server message when present.
// Any failure — a rejected result, a transport error, or a panic in the
// surface — shows one generic failure toast and logs the detail. The
// in-flight marker is released on every exit path.
func (m *ResendManager) Resend(ctx context.Context, session models.Session, learnerEmail, courseID string, usePrivileged bool) {
	key := resendKey(learnerEmail, courseID)
	if !m.acquire(key) {
		return
	}

	defer func() {
		m.release(key)

		if p := recover(); p != nil {
			ne := Classify(p)
			m.logger.Error().
				Str("learner", learnerEmail).
				Str("course", courseID).
				Str("code", ne.Code).
				Str("message", ne.Message).
				Msg("resend panicked")
			m.notifier.ShowError(resendFailureTitle, resendFailureMessage)
		}
	}()

	surface := m.selfService
	if usePrivileged {
		surface = m.privileged
	}

	result, err := surface.ResendCertificate(ctx, session, learnerEmail, courseID)
	if err != nil {
		ne := Classify(err)
		m.logger.Error().
			Str("learner", learnerEmail).
			Str("course", courseID).
			Str("code", ne.Code).
			Str("message", ne.Message).
			Msg("resend transport failure")
		m.notifier.ShowError(resendFailureTitle, resendFailureMessage)
		return
	}

	if !result.Succeeded {
		// backend detail stays in the log, the user gets the generic text
		m.logger.Warn().
			Str("learner", learnerEmail).
			Str("course", courseID).
			Str("code", result.Code).
			Str("message", result.Message).
			Msg("resend rejected by backend")
		m.notifier.ShowError(resendFailureTitle, resendFailureMessage)
		return
	}

	message := result.Message
	if message == "" {
		message = resendDefaultMessage
	}
	m.notifier.ShowSuccess(resendSuccessTitle, message)
}

// IsInFlight reports whether a resend for the given learner and course is
// currently running. The UI uses it to disable the matching button.
func (m *ResendManager) IsInFlight(learnerEmail, courseID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, ok := m.inFlight[resendKey(learnerEmail, courseID)]
	return ok
}

// AnyInFlight reports whether any resend is currently running.
func (m *ResendManager) AnyInFlight() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.inFlight) > 0
}

func (m *ResendManager) acquire(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.inFlight[key]; ok {
		m.logger.Debug().Str("key", key).Msg("resend already in flight, ignoring")
		return false
	}
	m.inFlight[key] = struct{}{}
	return true
}

func (m *ResendManager) release(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.inFlight, key)
}
