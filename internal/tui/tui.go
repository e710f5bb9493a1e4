// Package tui renders the certdesk console: sign-in, the learner list with
// organization statistics, a learner detail screen with certificate download
// and resend actions, and the course creation form for admins. Notifications
// from the action layer surface through the shared toast presenter.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/certdesk/certdesk/internal/logger"
	"github.com/certdesk/certdesk/internal/service"
	"github.com/certdesk/certdesk/internal/toast"
)

type TUI struct {
	services  *service.Services
	presenter *toast.Presenter
	logger    *logger.Logger
}

func New(services *service.Services, presenter *toast.Presenter, log *logger.Logger) *TUI {
	return &TUI{services: services, presenter: presenter, logger: log}
}

// Run drives the console until the user quits or signs out. It reports
// logout=true when the user signed out, so the caller can restart the
// program loop at the sign-in screen, and ErrUserQuit when the user asked
// to exit.
func (t *TUI) Run(ctx context.Context) (logout bool, err error) {
	model := newAppModel(ctx, t.services, t.presenter, t.logger)

	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}

	return result.logout, result.err
}
