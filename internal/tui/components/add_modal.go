package components

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/animewatch/internal/tui/styles"
)

const (
	fieldTitle = iota
	fieldTotal
)

// AddModal collects a title and an episode total for a new show
type AddModal struct {
	visible bool
	focus   int
	inputs  [2]textinput.Model
	err     string
}

// NewAddModal creates a new add modal
func NewAddModal() AddModal {
	title := textinput.New()
	title.Placeholder = "Show title"
	title.CharLimit = 120
	title.Width = 30
	title.Prompt = ""

	total := textinput.New()
	total.Placeholder = "Episodes"
	total.CharLimit = 6
	total.Width = 8
	total.Prompt = ""

	return AddModal{inputs: [2]textinput.Model{title, total}}
}

// Show displays the modal with empty fields and the title focused
func (m *AddModal) Show() {
	m.visible = true
	m.err = ""
	for i := range m.inputs {
		m.inputs[i].SetValue("")
	}
	m.setFocus(fieldTitle)
}

// Hide dismisses the modal
func (m *AddModal) Hide() {
	m.visible = false
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
}

// IsVisible returns whether the modal is shown
func (m AddModal) IsVisible() bool {
	return m.visible
}

// Values returns the raw title and total text
func (m AddModal) Values() (title, total string) {
	return m.inputs[fieldTitle].Value(), m.inputs[fieldTotal].Value()
}

// SetError shows a validation message under the fields
func (m *AddModal) SetError(msg string) {
	m.err = msg
}

func (m *AddModal) setFocus(field int) {
	m.focus = field
	for i := range m.inputs {
		if i == field {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
}

// Update handles input events, returns (modal, cmd, submitted).
// Enter submits from either field.
func (m AddModal) Update(msg tea.Msg) (AddModal, tea.Cmd, bool) {
	if !m.visible {
		return m, nil, false
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "enter":
			return m, nil, true
		case "esc":
			m.Hide()
			return m, nil, false
		case "tab", "down":
			m.setFocus((m.focus + 1) % len(m.inputs))
			return m, nil, false
		case "shift+tab", "up":
			m.setFocus((m.focus + len(m.inputs) - 1) % len(m.inputs))
			return m, nil, false
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd, false
}

// View renders the add modal
func (m AddModal) View(theme styles.Theme) string {
	if !m.visible {
		return ""
	}

	const modalWidth = 48

	label := theme.Dim.Width(16)
	row := func(name string, field int) string {
		in := m.inputs[field]
		in.TextStyle = theme.App
		in.PlaceholderStyle = theme.Dim
		return lipgloss.JoinHorizontal(lipgloss.Top, label.Render(name), in.View())
	}

	lines := []string{
		theme.ModalTitle.Width(modalWidth).Render("Add to watchlist"),
		"",
		row("title:", fieldTitle),
		row("total episodes:", fieldTotal),
	}
	if m.err != "" {
		lines = append(lines, "", theme.Error.Width(modalWidth).Render(m.err))
	}
	lines = append(lines, "", theme.Dim.Render("enter add · tab next field · esc cancel"))

	return theme.Modal.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
