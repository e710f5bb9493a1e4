package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"

	"github.com/certdesk/certdesk/models"
)

type listModel struct {
	learners []models.Learner
	stats    models.LearnerStatistics
	idx      int
	loading  bool
	spinner  spinner.Model
	status   string
}

func newListModel() listModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return listModel{spinner: s, loading: true}
}

func (m listModel) current() (models.Learner, bool) {
	if len(m.learners) == 0 || m.idx < 0 || m.idx >= len(m.learners) {
		return models.Learner{}, false
	}
	return m.learners[m.idx], true
}

func (m listModel) View(privileged bool) string {
	header := titleStyle.Render("certdesk — learners")
	if m.loading {
		header += "  " + m.spinner.View()
	}
	out := header + "\n"

	out += helpStyle.Render(fmt.Sprintf(
		"learners %d  active %d  certificates %d  in progress %d  completed this month %d",
		m.stats.TotalLearners,
		m.stats.ActiveLearners,
		m.stats.CertificatesIssued,
		m.stats.CoursesInProgress,
		m.stats.CompletedThisMonth,
	)) + "\n\n"

	if m.loading {
		out += "loading...\n"
	} else if len(m.learners) == 0 {
		out += "no learners\n"
	} else {
		for i, learner := range m.learners {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			out += fmt.Sprintf("%s%-30s  %-20s  certs: %d\n", cursor, learner.Email, learner.Name, learner.CertificatesIssued)
		}
	}

	if m.status != "" {
		out += "\n" + m.status + "\n"
	}

	help := "enter open  s refresh  L sign out  q quit"
	if privileged {
		help = "enter open  s refresh  n new course  L sign out  q quit"
	}
	out += "\n" + helpStyle.Render(help)
	return out
}
