package domain

import (
	"fmt"
	"strings"
)

// Show is one tracked title in the watchlist.
type Show struct {
	Title   string `json:"title"`   // Display title, unique case-insensitively
	Total   int    `json:"total"`   // Total number of episodes (>= 1)
	Watched int    `json:"watched"` // Episodes watched so far (0..Total)
}

// NewShow returns a fresh, unwatched show with a trimmed title.
func NewShow(title string, total int) (Show, error) {
	s := Show{Title: strings.TrimSpace(title), Total: total}
	if err := s.Validate(); err != nil {
		return Show{}, err
	}
	return s, nil
}

// Validate checks the field constraints of a show record.
func (s Show) Validate() error {
	if strings.TrimSpace(s.Title) == "" {
		return fmt.Errorf("%w: title must not be empty", ErrInvalidInput)
	}
	if s.Total < 1 {
		return fmt.Errorf("%w: total episodes must be a positive number", ErrInvalidInput)
	}
	if s.Watched < 0 || s.Watched > s.Total {
		return fmt.Errorf("%w: watched %d out of range 0..%d", ErrInvalidInput, s.Watched, s.Total)
	}
	return nil
}

// IsComplete reports whether every episode has been watched.
func (s Show) IsComplete() bool {
	return s.Watched >= s.Total
}

// Remaining returns the number of episodes left to watch.
func (s Show) Remaining() int {
	if s.IsComplete() {
		return 0
	}
	return s.Total - s.Watched
}

// Progress returns the watched share as a whole percentage, rounded down.
func (s Show) Progress() int {
	if s.Total <= 0 {
		return 0
	}
	return s.Watched * 100 / s.Total
}

// Status returns the watch status for indicator rendering
func (s Show) Status() WatchStatus {
	switch {
	case s.IsComplete():
		return WatchStatusComplete
	case s.Watched > 0:
		return WatchStatusInProgress
	default:
		return WatchStatusUnwatched
	}
}

// Description returns the short progress label, e.g. "3/220".
func (s Show) Description() string {
	return fmt.Sprintf("%d/%d", s.Watched, s.Total)
}

// SameTitle reports whether two titles collide under case-insensitive comparison.
func SameTitle(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

// WatchStatus represents the viewing state of a show
type WatchStatus int

const (
	WatchStatusUnwatched WatchStatus = iota
	WatchStatusInProgress
	WatchStatusComplete
)

// String returns a human-readable representation of the watch status
func (w WatchStatus) String() string {
	switch w {
	case WatchStatusUnwatched:
		return "Unwatched"
	case WatchStatusInProgress:
		return "In Progress"
	case WatchStatusComplete:
		return "Complete"
	default:
		return "Unknown"
	}
}
