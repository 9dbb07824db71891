package tui

// ClearStatusMsg signals that the status line should be cleared.
// Seq identifies the status it was scheduled for; newer statuses are kept.
type ClearStatusMsg struct {
	Seq int
}

// StatusMsg asks the model to show a footer message
type StatusMsg struct {
	Message string
	IsErr   bool
}
