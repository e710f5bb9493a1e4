package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/charmbracelet/bubbles/textinput"
)

type courseFormModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

func newCourseFormModel() courseFormModel {
	idInput := textinput.New()
	idInput.Placeholder = "course id"
	idInput.CharLimit = 64
	idInput.Width = 40

	titleInput := textinput.New()
	titleInput.Placeholder = "title"
	titleInput.CharLimit = 120
	titleInput.Width = 40

	templateInput := textinput.New()
	templateInput.Placeholder = "certificate template (optional)"
	templateInput.CharLimit = 64
	templateInput.Width = 40

	return courseFormModel{inputs: []textinput.Model{idInput, titleInput, templateInput}}
}

func (m *courseFormModel) reset() {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
		m.inputs[i].Blur()
	}
	m.focus = 0
	m.inputs[0].Focus()
	m.submitting = false
	m.errMsg = ""
}

func (m *courseFormModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *courseFormModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *courseFormModel) updateInputs(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return cmd
}

func (m courseFormModel) View() string {
	out := titleStyle.Render("certdesk — new course") + "\n\n"
	out += "id:       " + m.inputs[0].View() + "\n"
	out += "title:    " + m.inputs[1].View() + "\n"
	out += "template: " + m.inputs[2].View() + "\n"

	if m.submitting {
		out += "\nsaving...\n"
	}
	if m.errMsg != "" {
		out += "\n" + errorStyle.Render(m.errMsg) + "\n"
	}

	out += "\n" + helpStyle.Render("tab next field  enter save  esc cancel")
	return out
}
