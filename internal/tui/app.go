package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/animewatch/internal/tui/components"
	"github.com/mmcdole/animewatch/internal/tui/styles"
	"github.com/mmcdole/animewatch/internal/watchlist"
)

// ApplicationState represents the current state of the application
type ApplicationState int

const (
	StateBrowsing ApplicationState = iota
	StateAdding
	StateConfirmRemove
	StateHelp
)

// ChromeHeight is the footer height below the content
const ChromeHeight = 1

// Model is the main Bubble Tea model for the application
type Model struct {
	// Application state
	State ApplicationState
	Ready bool

	// Watchlist is the single source of truth for shows
	Watchlist *watchlist.Watchlist

	// UI Components
	AddModal components.AddModal
	Help     help.Model

	// Appearance
	Appearance  styles.Appearance
	Theme       styles.Theme
	ShowDetails bool

	// Selection
	Cursor int

	// Dimensions
	Width  int
	Height int

	// UI state
	StatusMsg   string
	StatusIsErr bool
	statusSeq   int

	// Title awaiting remove confirmation
	pendingRemove string

	// Shown once at startup, e.g. a failed load
	startupWarning string
}

// NewModel creates a new application model
func NewModel(w *watchlist.Watchlist, appearance styles.Appearance, showDetails bool) Model {
	appearance = appearance.Normalize()
	m := Model{
		State:       StateBrowsing,
		Watchlist:   w,
		AddModal:    components.NewAddModal(),
		Help:        help.New(),
		Appearance:  appearance,
		ShowDetails: showDetails,
	}
	m.applyAppearance(appearance)
	return m
}

// WithStartupWarning shows msg in the footer when the program starts
func (m Model) WithStartupWarning(msg string) Model {
	m.startupWarning = msg
	return m
}

// Init initializes the application
func (m Model) Init() tea.Cmd {
	if m.startupWarning == "" {
		return nil
	}
	msg := m.startupWarning
	return func() tea.Msg {
		return StatusMsg{Message: msg, IsErr: true}
	}
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Help.Width = msg.Width
		m.Ready = true
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case StatusMsg:
		return m, m.setStatus(msg.Message, msg.IsErr)

	case ClearStatusMsg:
		if msg.Seq == m.statusSeq {
			m.StatusMsg = ""
			m.StatusIsErr = false
		}
		return m, nil
	}

	// Forward everything else (cursor blink) to the modal
	if m.State == StateAdding {
		var cmd tea.Cmd
		m.AddModal, cmd, _ = m.AddModal.Update(msg)
		return m, cmd
	}
	return m, nil
}

// applyAppearance rebuilds the theme after a theme or scale change
func (m *Model) applyAppearance(a styles.Appearance) {
	m.Appearance = a
	m.Theme = styles.NewTheme(a)
	m.Help.Styles.ShortKey = m.Theme.HelpKey
	m.Help.Styles.ShortDesc = m.Theme.HelpDesc
	m.Help.Styles.FullKey = m.Theme.HelpKey
	m.Help.Styles.FullDesc = m.Theme.HelpDesc
}

// clampCursor keeps the cursor on an existing row
func (m *Model) clampCursor() {
	n := m.Watchlist.Len()
	if m.Cursor >= n {
		m.Cursor = n - 1
	}
	if m.Cursor < 0 {
		m.Cursor = 0
	}
}
