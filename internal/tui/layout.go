package tui

// Layout proportions for the list and details panel
const (
	// Side-by-side split (details visible, wide terminal)
	ListColumnPercent = 60

	// Below this width the details panel stacks under the list
	SideBySideMinWidth = 90

	MinColumnWidth = 24
)

// columnLayout holds calculated widths for the View
type columnLayout struct {
	listWidth    int
	detailsWidth int  // 0 if details hidden
	sideBySide   bool // details right of the list instead of below it
}

// calculateLayout computes the list and details widths for availableWidth
func (m Model) calculateLayout(availableWidth int) columnLayout {
	layout := columnLayout{listWidth: availableWidth}
	if !m.ShowDetails {
		return layout
	}

	if availableWidth < SideBySideMinWidth {
		// [List]
		// [Details]
		layout.detailsWidth = availableWidth
		return layout
	}

	// [List | Details]
	layout.sideBySide = true
	layout.listWidth = max(availableWidth*ListColumnPercent/100, MinColumnWidth)
	layout.detailsWidth = availableWidth - layout.listWidth
	return layout
}
