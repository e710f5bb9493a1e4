package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/certdesk/certdesk/internal/action"
	"github.com/certdesk/certdesk/internal/logger"
	"github.com/certdesk/certdesk/internal/service"
	"github.com/certdesk/certdesk/internal/toast"
	"github.com/certdesk/certdesk/models"
)

var ErrUserQuit = errors.New("user quit")

type screen int

const (
	screenLogin screen = iota
	screenList
	screenDetail
	screenCourseForm
)

type appModel struct {
	ctx       context.Context
	services  *service.Services
	presenter *toast.Presenter
	runner    *action.Runner

	currentScreen screen
	session       models.Session

	login      loginModel
	list       listModel
	detail     detailModel
	courseForm courseFormModel

	toasts   []toast.Toast
	pausedID int
	download action.DownloadState

	logout bool
	err    error
}

func newAppModel(ctx context.Context, services *service.Services, presenter *toast.Presenter, log *logger.Logger) appModel {
	return appModel{
		ctx:           ctx,
		services:      services,
		presenter:     presenter,
		runner:        action.NewRunner(presenter, log),
		currentScreen: screenLogin,
		login:         newLoginModel(),
		list:          newListModel(),
		detail:        newDetailModel(),
		courseForm:    newCourseFormModel(),
	}
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.cmdRestoreSession(), m.cmdTick())
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.toasts = m.presenter.Active()
		m.download = m.services.CertificateService.DownloadState()
		return m, m.cmdTick()

	case spinner.TickMsg:
		if !m.list.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.list.spinner, cmd = m.list.spinner.Update(msg)
		return m, cmd

	case sessionRestoredMsg:
		if msg.err != nil {
			m.currentScreen = screenLogin
			return m, nil
		}
		m.session = msg.session
		m.currentScreen = screenList
		m.list.loading = true
		return m, tea.Batch(m.cmdLoadOverview(), m.list.spinner.Tick)

	case loginDoneMsg:
		m.login.submitting = false
		if msg.err != nil {
			m.login.errMsg = humanizeLoginError(msg.err)
			return m, nil
		}
		m.session = msg.session
		m.login.errMsg = ""
		m.currentScreen = screenList
		m.list.loading = true
		return m, tea.Batch(m.cmdLoadOverview(), m.list.spinner.Tick)

	case logoutDoneMsg:
		m.logout = true
		return m, tea.Quit

	case overviewLoadedMsg:
		m.list.loading = false
		if !msg.ok {
			return m, nil
		}
		m.list.learners = msg.overview.Learners
		m.list.stats = msg.overview.Statistics
		if m.list.idx >= len(m.list.learners) {
			m.list.idx = len(m.list.learners) - 1
		}
		if m.list.idx < 0 {
			m.list.idx = 0
		}
		return m, nil

	case learnerUpdatedMsg:
		m.detail.saving = false
		if !msg.ok {
			return m, nil
		}
		m.detail.setLearner(msg.learner)
		m.detail.status = "saved"
		m.list.loading = true
		return m, tea.Batch(m.cmdLoadOverview(), m.list.spinner.Tick, cmdClearStatus())

	case courseSavedMsg:
		m.courseForm.submitting = false
		if !msg.ok {
			return m, nil
		}
		m.presenter.ShowSuccess("Course created", msg.course.ID)
		m.currentScreen = screenList
		return m, nil

	case resendDoneMsg, downloadDoneMsg:
		// outcome arrives through the toast queue and the download state
		m.toasts = m.presenter.Active()
		m.download = m.services.CertificateService.DownloadState()
		return m, nil

	case copiedMsg:
		m.detail.status = "copied"
		return m, cmdClearStatus()

	case clearStatusMsg:
		m.detail.status = ""
		m.list.status = ""
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.err = ErrUserQuit
			return m, tea.Quit
		}
		if cmd, handled := m.handleToastKeys(msg); handled {
			return m, cmd
		}

	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenLogin:
		return m.updateLogin(msg)
	case screenList:
		return m.updateList(msg)
	case screenDetail:
		return m.updateDetail(msg)
	case screenCourseForm:
		return m.updateCourseForm(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	var body string
	switch m.currentScreen {
	case screenLogin:
		body = m.login.View()
	case screenList:
		body = m.list.View(m.session.Privileged())
	case screenDetail:
		body = m.detail.View(m.download, m.services.CertificateService.IsResendInFlight, m.session.Privileged())
	case screenCourseForm:
		body = m.courseForm.View()
	}

	body += renderToasts(m.toasts, m.pausedID)

	return appStyle.Render(body)
}

// handleToastKeys processes dismiss/pause for the newest visible toast. They
// apply on every screen except while a text input has focus.
func (m *appModel) handleToastKeys(msg tea.KeyMsg) (tea.Cmd, bool) {
	if m.typing() || len(m.toasts) == 0 {
		return nil, false
	}

	newest := m.toasts[len(m.toasts)-1]
	switch {
	case key.Matches(msg, keys.dismiss):
		m.presenter.Dismiss(newest.ID)
		if m.pausedID == newest.ID {
			m.pausedID = 0
		}
		m.toasts = m.presenter.Active()
		return nil, true
	case key.Matches(msg, keys.pause):
		if m.pausedID == newest.ID {
			m.presenter.Resume(newest.ID)
			m.pausedID = 0
		} else {
			m.presenter.Pause(newest.ID)
			m.pausedID = newest.ID
		}
		return nil, true
	}

	return nil, false
}

func (m appModel) typing() bool {
	switch m.currentScreen {
	case screenLogin, screenCourseForm:
		return true
	case screenDetail:
		return m.detail.editing
	}
	return false
}

func (m appModel) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.tab):
			m.login.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.login.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			email := strings.TrimSpace(m.login.inputs[0].Value())
			password := m.login.inputs[1].Value()
			if email == "" || password == "" {
				m.login.errMsg = "email and password are required"
				return m, nil
			}
			m.login.submitting = true
			m.login.errMsg = ""
			return m, m.cmdLogin(email, password)
		}
	}

	cmd := m.login.updateInputs(msg)
	return m, cmd
}

func (m appModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.quit):
		m.err = ErrUserQuit
		return m, tea.Quit
	case key.Matches(keyMsg, keys.up):
		if m.list.idx > 0 {
			m.list.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.list.idx < len(m.list.learners)-1 {
			m.list.idx++
		}
	case key.Matches(keyMsg, keys.refresh):
		if m.list.loading {
			return m, nil
		}
		m.list.loading = true
		return m, tea.Batch(m.cmdLoadOverview(), m.list.spinner.Tick)
	case key.Matches(keyMsg, keys.enter):
		learner, ok := m.list.current()
		if !ok {
			m.list.status = "no learners"
			return m, cmdClearStatus()
		}
		m.detail.setLearner(learner)
		m.services.CertificateService.ResetDownload()
		m.currentScreen = screenDetail
	case key.Matches(keyMsg, keys.newItem):
		if !m.session.Privileged() {
			m.list.status = "admin only"
			return m, cmdClearStatus()
		}
		m.courseForm.reset()
		m.currentScreen = screenCourseForm
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.logout):
		return m, m.cmdLogout()
	}

	return m, nil
}

func (m appModel) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.detail.editing {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.detail.editing = false
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			name := strings.TrimSpace(m.detail.nameInput.Value())
			if name == "" {
				return m, nil
			}
			m.detail.saving = true
			return m, m.cmdUpdateLearner(models.LearnerUpdate{Email: m.detail.learner.Email, Name: &name})
		}

		var cmd tea.Cmd
		m.detail.nameInput, cmd = m.detail.nameInput.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(keyMsg, keys.quit):
		m.err = ErrUserQuit
		return m, tea.Quit
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenList
		return m, nil
	case key.Matches(keyMsg, keys.up):
		if m.detail.courseIdx > 0 {
			m.detail.courseIdx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.detail.courseIdx < len(m.detail.learner.Courses)-1 {
			m.detail.courseIdx++
		}
	case key.Matches(keyMsg, keys.download):
		courseID, ok := m.detail.currentCourse()
		if !ok {
			m.detail.status = "no course selected"
			return m, cmdClearStatus()
		}
		return m, m.cmdDownload(m.detail.learner.Email, courseID)
	case key.Matches(keyMsg, keys.resend):
		courseID, ok := m.detail.currentCourse()
		if !ok {
			m.detail.status = "no course selected"
			return m, cmdClearStatus()
		}
		return m, m.cmdResend(m.detail.learner.Email, courseID)
	case key.Matches(keyMsg, keys.edit):
		if !m.session.Privileged() {
			m.detail.status = "admin only"
			return m, cmdClearStatus()
		}
		m.detail.editing = true
		m.detail.nameInput.SetValue(m.detail.learner.Name)
		m.detail.nameInput.Focus()
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.copyMail):
		return m, cmdCopy(m.detail.learner.Email)
	case key.Matches(keyMsg, keys.dismiss):
		m.services.CertificateService.ResetDownload()
		return m, nil
	}

	return m, nil
}

func (m appModel) updateCourseForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenList
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.courseForm.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.courseForm.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			course := models.Course{
				ID:                  strings.TrimSpace(m.courseForm.inputs[0].Value()),
				Title:               strings.TrimSpace(m.courseForm.inputs[1].Value()),
				OrganizationID:      m.session.OrganizationID,
				CertificateTemplate: strings.TrimSpace(m.courseForm.inputs[2].Value()),
			}
			if course.ID == "" || course.Title == "" {
				m.courseForm.errMsg = "id and title are required"
				return m, nil
			}
			m.courseForm.submitting = true
			m.courseForm.errMsg = ""
			return m, m.cmdCreateCourse(course)
		}
	}

	cmd := m.courseForm.updateInputs(msg)
	return m, cmd
}

func humanizeLoginError(err error) string {
	if errors.Is(err, service.ErrWrongCredentials) {
		return "wrong email or password"
	}
	return "server unavailable, try again later"
}
