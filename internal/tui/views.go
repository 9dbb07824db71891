package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/animewatch/internal/domain"
	"github.com/mmcdole/animewatch/internal/tui/styles"
)

const (
	bannerText = "track, organize, and get updates on your favorite anime."
	stepsText  = "steps: 1) add a show  2) mark episodes  3) manage your list"
	costText   = "no account • saved locally • changes apply instantly"

	noSelectionText = "details: (select a show)"
)

// View renders the whole screen
func (m Model) View() string {
	if !m.Ready {
		return "Loading..."
	}

	if m.State == StateHelp {
		return m.fill(m.renderHelp())
	}

	layout := m.calculateLayout(m.Width)
	body := m.renderList(layout.listWidth)
	if m.ShowDetails {
		details := m.renderDetails(layout.detailsWidth)
		if layout.sideBySide {
			body = lipgloss.JoinHorizontal(lipgloss.Top,
				m.Theme.App.Width(layout.listWidth).Render(body), details)
		} else {
			body = lipgloss.JoinVertical(lipgloss.Left, body, details)
		}
	}
	content := lipgloss.JoinVertical(lipgloss.Left, m.renderHeader(), body)

	contentHeight := m.Height - ChromeHeight
	if contentHeight < 0 {
		contentHeight = 0
	}
	content = m.Theme.App.Width(m.Width).Height(contentHeight).MaxHeight(contentHeight).Render(content)

	view := lipgloss.JoinVertical(lipgloss.Left, content, m.renderFooter())

	switch m.State {
	case StateAdding:
		view = m.overlay(m.AddModal.View(m.Theme))
	case StateConfirmRemove:
		view = m.overlay(m.renderRemoveConfirmation())
	}

	return view
}

// fill paints s over the full terminal in the theme background
func (m Model) fill(s string) string {
	return m.Theme.App.Width(m.Width).Height(m.Height).Render(s)
}

// overlay centers a modal on a themed background
func (m Model) overlay(modal string) string {
	return lipgloss.Place(m.Width, m.Height,
		lipgloss.Center, lipgloss.Center,
		modal,
		lipgloss.WithWhitespaceBackground(m.Theme.Palette.Background))
}

func (m Model) renderHeader() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.Theme.Title.Render(bannerText),
		m.Theme.Subtitle.Render(stepsText),
		m.Theme.Dim.Render(costText),
		"",
	)
}

func (m Model) renderList(width int) string {
	shows := m.Watchlist.CurrentList()
	if len(shows) == 0 {
		return m.Theme.Dim.Render("Your watchlist is empty. Press a to add a show.")
	}

	rows := make([]string, len(shows))
	for i, s := range shows {
		rows[i] = m.renderRow(s, i == m.Cursor, width)
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderRow renders one list entry: status glyph, title and progress
func (m Model) renderRow(s domain.Show, selected bool, width int) string {
	style := m.Theme.NormalItem
	if selected {
		style = m.Theme.SelectedItem
	}

	glyph := styles.StatusGlyph(s.Watched, s.Total)
	progress := fmt.Sprintf(" — Progress: %s", s.Description())

	// Leave room for glyph, progress label and padding
	titleWidth := width - lipgloss.Width(glyph) - lipgloss.Width(progress) - 2*m.Theme.RowPadding - 2
	title := styles.Truncate(s.Title, titleWidth)

	return style.Render(fmt.Sprintf("%s %s%s", glyph, title, progress))
}

func (m Model) renderDetails(width int) string {
	// Panel border takes two columns
	panel := m.Theme.Panel.Width(max(width-2, 0))

	show, ok := m.Watchlist.Select(m.Cursor)
	if !ok {
		return panel.Render(m.Theme.Dim.Render(noSelectionText))
	}

	barWidth := min(30, width-6)
	lines := []string{
		m.Theme.App.Render("title: " + show.Title),
		m.Theme.App.Render(fmt.Sprintf("episodes watched: %s", show.Description())),
		m.Theme.App.Render(fmt.Sprintf("progress: %d%%", show.Progress())),
		m.Theme.RenderProgressBar(show.Progress(), barWidth),
		m.Theme.Dim.Render(show.Status().String()),
	}
	return panel.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m Model) renderRemoveConfirmation() string {
	content := lipgloss.JoinVertical(lipgloss.Left,
		m.Theme.ModalTitle.Render("Confirm remove"),
		"",
		m.Theme.App.Render(fmt.Sprintf("Remove %q from watchlist?", m.pendingRemove)),
		"",
		m.Theme.HelpKey.Render("y")+m.Theme.HelpDesc.Render(" remove  ")+
			m.Theme.HelpKey.Render("n")+m.Theme.HelpDesc.Render(" cancel"),
	)
	return m.Theme.Modal.Render(content)
}

func (m Model) renderHelp() string {
	title := m.Theme.Title.Render("Keyboard shortcuts")
	h := m.Help
	h.ShowAll = true
	return lipgloss.JoinVertical(lipgloss.Left, title, "", h.View(Keys), "",
		m.Theme.Dim.Render("press ? or esc to close"))
}

// renderFooter renders a single-line minimal footer
func (m Model) renderFooter() string {
	var left string
	if m.StatusMsg != "" {
		if m.StatusIsErr {
			left = m.Theme.Error.Render(m.StatusMsg)
		} else {
			left = m.Theme.Success.Render(m.StatusMsg)
		}
	} else {
		left = m.Help.ShortHelpView(Keys.ShortHelp())
	}

	// Right side: undo hint when available, then "? help"
	right := m.Theme.HelpKey.Render("?") + m.Theme.HelpDesc.Render(" help")
	if m.Watchlist.CanUndo() {
		right = m.Theme.HelpKey.Render("u") + m.Theme.HelpDesc.Render(" undo  ") + right
	}

	gap := m.Width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}
	return left + m.Theme.App.Render(strings.Repeat(" ", gap)) + right
}
