package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/animewatch/internal/domain"
)

// statusTimeout is how long a status message stays in the footer
const statusTimeout = 4 * time.Second

// ClearStatusCmd returns a command that clears status after a delay
func ClearStatusCmd(seq int, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return ClearStatusMsg{Seq: seq}
	})
}

// addShow validates the modal input and appends the show
func (m *Model) addShow(title, total string) tea.Cmd {
	show, err := m.Watchlist.AddText(title, total)
	if err != nil {
		m.AddModal.SetError(errorMessage(err))
		return nil
	}
	m.AddModal.Hide()
	m.State = StateBrowsing
	m.Cursor = m.Watchlist.Len() - 1
	return m.setStatus(fmt.Sprintf("Added %s", show.Title), false)
}

// markWatched bumps the selected show by one episode
func (m *Model) markWatched() tea.Cmd {
	show, err := m.Watchlist.MarkWatched(m.Cursor)
	if err != nil {
		return m.setStatus(errorMessage(err), true)
	}
	msg := fmt.Sprintf("%s: %s watched", show.Title, show.Description())
	if show.IsComplete() {
		msg = fmt.Sprintf("Finished %s!", show.Title)
	}
	return m.setStatus(msg, false)
}

// requestRemove asks for confirmation before removing the selected show
func (m *Model) requestRemove() tea.Cmd {
	show, ok := m.Watchlist.Select(m.Cursor)
	if !ok {
		return m.setStatus(errorMessage(domain.ErrIndexOutOfRange), true)
	}
	m.pendingRemove = show.Title
	m.State = StateConfirmRemove
	return nil
}

// confirmRemove removes the show the confirmation was opened for
func (m *Model) confirmRemove() tea.Cmd {
	m.State = StateBrowsing
	removed, err := m.Watchlist.Remove(m.Cursor)
	m.pendingRemove = ""
	if err != nil {
		return m.setStatus(errorMessage(err), true)
	}
	m.clampCursor()
	return m.setStatus(fmt.Sprintf("Removed %s (u to undo)", removed.Title), false)
}

// undoRemove restores the last removed show at the end of the list
func (m *Model) undoRemove() tea.Cmd {
	show, err := m.Watchlist.UndoRemove()
	if err != nil {
		return m.setStatus(errorMessage(err), true)
	}
	m.Cursor = m.Watchlist.Len() - 1
	return m.setStatus(fmt.Sprintf("Restored %s", show.Title), false)
}

// setStatus shows msg in the footer and schedules its removal
func (m *Model) setStatus(msg string, isErr bool) tea.Cmd {
	m.statusSeq++
	m.StatusMsg = msg
	m.StatusIsErr = isErr
	return ClearStatusCmd(m.statusSeq, statusTimeout)
}

// errorMessage maps watchlist errors to text for the user
func errorMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrPersistence):
		return "Could not save your watchlist: " + err.Error()
	case errors.Is(err, domain.ErrDuplicateTitle):
		return "That show is already in your watchlist."
	case errors.Is(err, domain.ErrIndexOutOfRange):
		return "Select a show first."
	case errors.Is(err, domain.ErrAlreadyComplete):
		return "You already finished this show."
	case errors.Is(err, domain.ErrNothingToUndo):
		return "Nothing to undo."
	case errors.Is(err, domain.ErrInvalidInput):
		detail := strings.TrimPrefix(err.Error(), domain.ErrInvalidInput.Error()+": ")
		return capitalize(detail) + "."
	default:
		return err.Error()
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
