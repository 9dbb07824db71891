// Package watchlist owns the ordered list of tracked shows, the single-slot
// undo buffer, and the write-through to a domain.Store.
package watchlist

import (
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/mmcdole/animewatch/internal/domain"
)

// Watchlist is the in-memory store. It is not safe for concurrent use;
// the presentation layer drives it from a single goroutine.
type Watchlist struct {
	store  domain.Store
	logger *slog.Logger

	shows       []domain.Show
	lastRemoved *domain.Show
}

// New creates an empty watchlist backed by store. Call Load to read persisted state.
func New(store domain.Store, logger *slog.Logger) *Watchlist {
	if logger == nil {
		logger = slog.Default()
	}
	return &Watchlist{store: store, logger: logger, shows: []domain.Show{}}
}

// Load replaces the in-memory list with the persisted one.
// On failure the list is empty and the returned error wraps domain.ErrPersistence;
// the error is informational and the watchlist stays usable.
func (w *Watchlist) Load() ([]domain.Show, error) {
	w.lastRemoved = nil

	shows, err := w.store.Load()
	if err != nil {
		w.shows = []domain.Show{}
		w.logger.Warn("watchlist load failed, starting empty", "error", err)
		return w.CurrentList(), fmt.Errorf("%w: %w", domain.ErrPersistence, err)
	}
	if shows == nil {
		shows = []domain.Show{}
	}
	w.shows = shows
	w.logger.Debug("loaded watchlist", "count", len(shows))
	return w.CurrentList(), nil
}

// Save writes the current list to the store.
func (w *Watchlist) Save() error {
	if err := w.store.Save(w.CurrentList()); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrPersistence, err)
	}
	return nil
}

// Add appends a new unwatched show and persists.
func (w *Watchlist) Add(title string, total int) (domain.Show, error) {
	show, err := domain.NewShow(title, total)
	if err != nil {
		return domain.Show{}, err
	}
	if w.indexOfTitle(show.Title) >= 0 {
		return domain.Show{}, fmt.Errorf("%w: %q", domain.ErrDuplicateTitle, show.Title)
	}

	prev := w.snapshot()
	w.shows = append(w.shows, show)
	if err := w.commit(prev); err != nil {
		return domain.Show{}, err
	}
	w.logger.Debug("added show", "title", show.Title, "total", show.Total)
	return show, nil
}

// AddText is Add for raw form input: totalText must be a positive decimal number.
func (w *Watchlist) AddText(title, totalText string) (domain.Show, error) {
	if strings.TrimSpace(title) == "" {
		return domain.Show{}, fmt.Errorf("%w: enter a show title first", domain.ErrInvalidInput)
	}
	total, err := ParseTotal(totalText)
	if err != nil {
		return domain.Show{}, err
	}
	return w.Add(title, total)
}

// ParseTotal parses an episode count typed by the user.
func ParseTotal(text string) (int, error) {
	text = strings.TrimSpace(text)
	invalid := fmt.Errorf("%w: total episodes must be a positive number", domain.ErrInvalidInput)
	if text == "" {
		return 0, invalid
	}
	for _, r := range text {
		if r < '0' || r > '9' {
			return 0, invalid
		}
	}
	n, err := strconv.Atoi(text)
	if err != nil || n <= 0 {
		return 0, invalid
	}
	return n, nil
}

// MarkWatched increments the watched count of the show at index by one and persists.
func (w *Watchlist) MarkWatched(index int) (domain.Show, error) {
	if !w.inRange(index) {
		return domain.Show{}, fmt.Errorf("%w: %d", domain.ErrIndexOutOfRange, index)
	}
	if w.shows[index].IsComplete() {
		return domain.Show{}, fmt.Errorf("%w: %q", domain.ErrAlreadyComplete, w.shows[index].Title)
	}

	prev := w.snapshot()
	w.shows[index].Watched++
	if err := w.commit(prev); err != nil {
		return domain.Show{}, err
	}
	show := w.shows[index]
	w.logger.Debug("marked episode watched", "title", show.Title, "watched", show.Watched, "total", show.Total)
	return show, nil
}

// Remove deletes the show at index, keeps it in the undo buffer, and persists.
func (w *Watchlist) Remove(index int) (domain.Show, error) {
	if !w.inRange(index) {
		return domain.Show{}, fmt.Errorf("%w: %d", domain.ErrIndexOutOfRange, index)
	}

	prev := w.snapshot()
	removed := w.shows[index]
	w.shows = slices.Delete(slices.Clone(w.shows), index, index+1)
	w.lastRemoved = &removed
	if err := w.commit(prev); err != nil {
		return domain.Show{}, err
	}
	w.logger.Debug("removed show", "title", removed.Title)
	return removed, nil
}

// UndoRemove appends the last removed show to the end of the list and persists.
// A title re-added since the removal blocks the undo and keeps the buffer.
func (w *Watchlist) UndoRemove() (domain.Show, error) {
	if w.lastRemoved == nil {
		return domain.Show{}, domain.ErrNothingToUndo
	}
	restored := *w.lastRemoved
	if w.indexOfTitle(restored.Title) >= 0 {
		return domain.Show{}, fmt.Errorf("%w: %q", domain.ErrDuplicateTitle, restored.Title)
	}

	prev := w.snapshot()
	w.shows = append(w.shows, restored)
	w.lastRemoved = nil
	if err := w.commit(prev); err != nil {
		return domain.Show{}, err
	}
	w.logger.Debug("restored show", "title", restored.Title)
	return restored, nil
}

// CurrentList returns a copy of the shows in display order.
func (w *Watchlist) CurrentList() []domain.Show {
	return slices.Clone(w.shows)
}

// Select returns the show at index, or false when nothing is there.
func (w *Watchlist) Select(index int) (domain.Show, bool) {
	if !w.inRange(index) {
		return domain.Show{}, false
	}
	return w.shows[index], true
}

// CanUndo reports whether UndoRemove has something to restore.
func (w *Watchlist) CanUndo() bool { return w.lastRemoved != nil }

// Len returns the number of shows.
func (w *Watchlist) Len() int { return len(w.shows) }

// Close releases the underlying store.
func (w *Watchlist) Close() error { return w.store.Close() }

func (w *Watchlist) inRange(index int) bool {
	return index >= 0 && index < len(w.shows)
}

func (w *Watchlist) indexOfTitle(title string) int {
	return slices.IndexFunc(w.shows, func(s domain.Show) bool {
		return domain.SameTitle(s.Title, title)
	})
}

// state captures everything a mutation may touch.
type state struct {
	shows       []domain.Show
	lastRemoved *domain.Show
}

func (w *Watchlist) snapshot() state {
	return state{shows: slices.Clone(w.shows), lastRemoved: w.lastRemoved}
}

// commit persists the current list, restoring prev if the write fails.
func (w *Watchlist) commit(prev state) error {
	if err := w.Save(); err != nil {
		w.shows = prev.shows
		w.lastRemoved = prev.lastRemoved
		return err
	}
	return nil
}
