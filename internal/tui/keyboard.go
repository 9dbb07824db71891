package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// handleKeyMsg handles keyboard input
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Handle state-specific keys
	switch m.State {
	case StateHelp:
		if key.Matches(msg, Keys.Escape, Keys.Help, Keys.Quit) {
			m.State = StateBrowsing
		}
		return m, nil

	case StateConfirmRemove:
		switch {
		case key.Matches(msg, Keys.Confirm):
			cmd := m.confirmRemove()
			return m, cmd
		case key.Matches(msg, Keys.Deny):
			m.State = StateBrowsing
			m.pendingRemove = ""
		}
		return m, nil

	case StateAdding:
		var cmd tea.Cmd
		var submitted bool
		m.AddModal, cmd, submitted = m.AddModal.Update(msg)
		if submitted {
			title, total := m.AddModal.Values()
			return m, m.addShow(title, total)
		}
		if !m.AddModal.IsVisible() {
			m.State = StateBrowsing
		}
		return m, cmd
	}

	// Global keys
	switch {
	case key.Matches(msg, Keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, Keys.Help):
		m.State = StateHelp
		return m, nil

	case key.Matches(msg, Keys.Up):
		if m.Cursor > 0 {
			m.Cursor--
		}
		return m, nil

	case key.Matches(msg, Keys.Down):
		if m.Cursor < m.Watchlist.Len()-1 {
			m.Cursor++
		}
		return m, nil

	case key.Matches(msg, Keys.Home):
		m.Cursor = 0
		return m, nil

	case key.Matches(msg, Keys.End):
		m.Cursor = m.Watchlist.Len() - 1
		m.clampCursor()
		return m, nil

	case key.Matches(msg, Keys.Add):
		m.State = StateAdding
		m.AddModal.Show()
		return m, nil

	case key.Matches(msg, Keys.MarkWatched):
		return m, m.markWatched()

	case key.Matches(msg, Keys.Remove):
		return m, m.requestRemove()

	case key.Matches(msg, Keys.Undo):
		return m, m.undoRemove()

	case key.Matches(msg, Keys.ToggleDetails):
		m.ShowDetails = !m.ShowDetails
		return m, nil

	case key.Matches(msg, Keys.ToggleTheme):
		m.applyAppearance(m.Appearance.ToggleTheme())
		return m, nil

	case key.Matches(msg, Keys.Bigger):
		m.applyAppearance(m.Appearance.Bigger())
		return m, nil

	case key.Matches(msg, Keys.Smaller):
		m.applyAppearance(m.Appearance.Smaller())
		return m, nil
	}

	return m, nil
}
