package tui

import (
	"context"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/certdesk/certdesk/internal/action"
	"github.com/certdesk/certdesk/internal/service"
	"github.com/certdesk/certdesk/models"
)

// tickInterval drives the UI refresh: the toast queue and download state
// change on other goroutines and are re-read every tick.
const tickInterval = 120 * time.Millisecond

func (m appModel) cmdTick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m appModel) cmdRestoreSession() tea.Cmd {
	ctx := m.ctx
	svc := m.services.SessionService

	return func() tea.Msg {
		session, err := svc.Current(ctx)
		return sessionRestoredMsg{session: session, err: err}
	}
}

func (m appModel) cmdLogin(email, password string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.SessionService

	return func() tea.Msg {
		session, err := svc.Login(ctx, email, password)
		return loginDoneMsg{session: session, err: err}
	}
}

func (m appModel) cmdLogout() tea.Cmd {
	ctx := m.ctx
	svc := m.services.SessionService

	return func() tea.Msg {
		return logoutDoneMsg{err: svc.Logout(ctx)}
	}
}

func (m appModel) cmdLoadOverview() tea.Cmd {
	ctx := m.ctx
	svc := m.services.LearnerService
	runner := m.runner
	orgID := m.session.OrganizationID

	return func() tea.Msg {
		overview, ok := action.Run(ctx, runner, "Load learners", func(ctx context.Context) (service.LearnerOverview, error) {
			return svc.Overview(ctx, orgID)
		})
		return overviewLoadedMsg{overview: overview, ok: ok}
	}
}

func (m appModel) cmdUpdateLearner(update models.LearnerUpdate) tea.Cmd {
	ctx := m.ctx
	svc := m.services.LearnerService
	runner := m.runner

	return func() tea.Msg {
		learner, ok := action.Run(ctx, runner, "Update learner", func(ctx context.Context) (models.Learner, error) {
			return svc.Update(ctx, update)
		})
		return learnerUpdatedMsg{learner: learner, ok: ok}
	}
}

func (m appModel) cmdCreateCourse(course models.Course) tea.Cmd {
	ctx := m.ctx
	svc := m.services.CourseService
	runner := m.runner

	return func() tea.Msg {
		created, ok := action.Run(ctx, runner, "Create course", func(ctx context.Context) (models.Course, error) {
			return svc.Create(ctx, course)
		})
		return courseSavedMsg{course: created, ok: ok}
	}
}

func (m appModel) cmdResend(learnerEmail, courseID string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.CertificateService

	return func() tea.Msg {
		svc.Resend(ctx, learnerEmail, courseID)
		return resendDoneMsg{}
	}
}

func (m appModel) cmdDownload(learnerEmail, courseID string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.CertificateService

	return func() tea.Msg {
		svc.Download(ctx, learnerEmail, courseID, "")
		return downloadDoneMsg{}
	}
}

func cmdCopy(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return clearStatusMsg{}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
