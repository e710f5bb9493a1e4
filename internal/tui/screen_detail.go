package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/certdesk/certdesk/internal/action"
	"github.com/certdesk/certdesk/models"
)

type detailModel struct {
	learner   models.Learner
	courseIdx int
	status    string

	editing   bool
	nameInput textinput.Model
	saving    bool

	progress progress.Model
}

func newDetailModel() detailModel {
	nameInput := textinput.New()
	nameInput.Placeholder = "learner name"
	nameInput.CharLimit = 120
	nameInput.Width = 40

	return detailModel{
		nameInput: nameInput,
		progress:  progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
	}
}

func (m detailModel) currentCourse() (string, bool) {
	if len(m.learner.Courses) == 0 || m.courseIdx < 0 || m.courseIdx >= len(m.learner.Courses) {
		return "", false
	}
	return m.learner.Courses[m.courseIdx], true
}

func (m *detailModel) setLearner(learner models.Learner) {
	m.learner = learner
	m.courseIdx = 0
	m.status = ""
	m.editing = false
	m.saving = false
}

func (m detailModel) View(download action.DownloadState, resendInFlight func(string, string) bool, privileged bool) string {
	out := titleStyle.Render("certdesk — "+m.learner.Email) + "\n\n"
	out += fmt.Sprintf("name:         %s\n", m.learner.Name)
	out += fmt.Sprintf("organization: %s\n", m.learner.OrganizationID)
	if m.learner.LastActivityAt != nil {
		out += fmt.Sprintf("last active:  %s\n", m.learner.LastActivityAt.Format("2006-01-02 15:04"))
	}

	if m.editing {
		out += "\nnew name: " + m.nameInput.View() + "\n"
		if m.saving {
			out += "saving...\n"
		}
		out += "\n" + helpStyle.Render("enter save  esc cancel")
		return out
	}

	out += "\ncourses:\n"
	if len(m.learner.Courses) == 0 {
		out += "  none\n"
	}
	for i, courseID := range m.learner.Courses {
		cursor := "  "
		if i == m.courseIdx {
			cursor = "> "
		}
		marker := ""
		if resendInFlight(m.learner.Email, courseID) {
			marker = "  (resending...)"
		}
		out += fmt.Sprintf("%s%s%s\n", cursor, courseID, marker)
	}

	switch download.Status {
	case action.StatusDownloading:
		out += "\ndownloading  " + m.progress.ViewAs(float64(download.Progress)/100) + "\n"
	case action.StatusCompleted:
		out += "\n" + successStyle.Render("saved "+download.FileName) + "\n"
	case action.StatusError:
		out += "\n" + errorStyle.Render(download.ErrorMessage) + "\n"
	}

	if m.status != "" {
		out += "\n" + m.status + "\n"
	}

	help := "d download  r resend  c copy email  x clear  esc back"
	if privileged {
		help = "d download  r resend  e edit  c copy email  x clear  esc back"
	}
	out += "\n" + helpStyle.Render(help)
	return out
}
