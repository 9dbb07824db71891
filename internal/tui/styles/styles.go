package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Color palette
var (
	Orange    = lipgloss.Color("#E5A00D")
	SlateDark = lipgloss.Color("#111111")
	Slate     = lipgloss.Color("#374151")
	DimGray   = lipgloss.Color("#6B7280")
	LightGray = lipgloss.Color("#9CA3AF")
	Paper     = lipgloss.Color("#F5F5F5")
	Mist      = lipgloss.Color("#E5E7EB")
	Ink       = lipgloss.Color("#111111")
	Green     = lipgloss.Color("#10B981")
	Red       = lipgloss.Color("#EF4444")
)

// Palette is the set of colors one theme draws with
type Palette struct {
	Background lipgloss.Color
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Accent     lipgloss.Color
	Selection  lipgloss.Color
	Success    lipgloss.Color
	Error      lipgloss.Color
}

var (
	LightPalette = Palette{
		Background: Paper,
		Foreground: Ink,
		Muted:      DimGray,
		Accent:     Orange,
		Selection:  Mist,
		Success:    Green,
		Error:      Red,
	}

	DarkPalette = Palette{
		Background: SlateDark,
		Foreground: Paper,
		Muted:      LightGray,
		Accent:     Orange,
		Selection:  Slate,
		Success:    Green,
		Error:      Red,
	}
)

// PaletteFor returns the palette for the appearance's theme
func PaletteFor(a Appearance) Palette {
	if a.Dark {
		return DarkPalette
	}
	return LightPalette
}

// Raw watch status characters (unstyled)
const (
	UnwatchedChar  = "●"
	InProgressChar = "◐"
	CompleteChar   = "✓"
)

// Theme holds every style the UI renders with for one Appearance
type Theme struct {
	Palette    Palette
	RowPadding int

	App      lipgloss.Style
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Dim      lipgloss.Style
	Accent   lipgloss.Style
	Error    lipgloss.Style
	Success  lipgloss.Style

	NormalItem   lipgloss.Style
	SelectedItem lipgloss.Style

	Panel      lipgloss.Style
	Modal      lipgloss.Style
	ModalTitle lipgloss.Style

	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style

	ProgressFull  lipgloss.Style
	ProgressEmpty lipgloss.Style
}

// NewTheme builds the styles for a
func NewTheme(a Appearance) Theme {
	p := PaletteFor(a)
	pad := a.RowPadding()
	base := lipgloss.NewStyle().Background(p.Background)

	return Theme{
		Palette:    p,
		RowPadding: pad,

		App:      base.Foreground(p.Foreground),
		Title:    base.Foreground(p.Foreground).Bold(true),
		Subtitle: base.Foreground(p.Muted),
		Dim:      base.Foreground(p.Muted),
		Accent:   base.Foreground(p.Accent),
		Error:    base.Foreground(p.Error),
		Success:  base.Foreground(p.Success),

		NormalItem: base.
			Foreground(p.Foreground).
			Padding(0, pad),
		SelectedItem: lipgloss.NewStyle().
			Foreground(p.Accent).
			Background(p.Selection).
			Bold(true).
			Padding(0, pad),

		Panel: base.
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Muted).
			BorderBackground(p.Background).
			Padding(0, 1),
		Modal: base.
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Accent).
			BorderBackground(p.Background).
			Padding(1, 2),
		ModalTitle: base.
			Foreground(p.Foreground).
			Bold(true),

		HelpKey:  base.Foreground(p.Accent),
		HelpDesc: base.Foreground(p.Muted),

		ProgressFull:  base.Foreground(p.Accent),
		ProgressEmpty: base.Foreground(p.Muted),
	}
}

// StatusGlyph returns the unstyled indicator for a show's state
func StatusGlyph(watched, total int) string {
	switch {
	case watched >= total:
		return CompleteChar
	case watched > 0:
		return InProgressChar
	default:
		return UnwatchedChar
	}
}

// Truncate shortens s to width display cells with an ellipsis
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(s, width, "…")
}

// RenderProgressBar renders a progress bar
func (t Theme) RenderProgressBar(percent int, width int) string {
	if width < 3 {
		return ""
	}

	filled := width * percent / 100
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	return t.ProgressFull.Render(strings.Repeat("█", filled)) +
		t.ProgressEmpty.Render(strings.Repeat("░", width-filled))
}
