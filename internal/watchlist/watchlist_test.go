package watchlist

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/mmcdole/animewatch/internal/adapter"
	"github.com/mmcdole/animewatch/internal/domain"
	"github.com/mmcdole/animewatch/internal/store"
)

// flakyStore is an in-memory domain.Store whose writes can be made to fail.
type flakyStore struct {
	saved   []domain.Show
	saves   int
	failing bool
	loadErr error
}

var errDiskFull = errors.New("disk full")

func (s *flakyStore) Load() ([]domain.Show, error) {
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	return slices.Clone(s.saved), nil
}

func (s *flakyStore) Save(shows []domain.Show) error {
	if s.failing {
		return errDiskFull
	}
	s.saves++
	s.saved = slices.Clone(shows)
	return nil
}

func (s *flakyStore) Close() error { return nil }

func newFileWatchlist(t *testing.T) (*Watchlist, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "animewatch_data.json")
	w := New(store.NewFileStore(path, adapter.NullLogger()), adapter.NullLogger())
	if _, err := w.Load(); err != nil {
		t.Fatalf("load: %v", err)
	}
	return w, path
}

func reload(t *testing.T, path string) []domain.Show {
	t.Helper()
	w := New(store.NewFileStore(path, adapter.NullLogger()), adapter.NullLogger())
	shows, err := w.Load()
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	return shows
}

func TestAddPersists(t *testing.T) {
	w, path := newFileWatchlist(t)

	show, err := w.Add("Naruto", 220)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	want := domain.Show{Title: "Naruto", Total: 220, Watched: 0}
	if show != want {
		t.Fatalf("add returned %+v", show)
	}
	if got := reload(t, path); !slices.Equal(got, []domain.Show{want}) {
		t.Fatalf("persisted %+v", got)
	}
}

func TestAddKeepsInsertionOrder(t *testing.T) {
	w, _ := newFileWatchlist(t)
	for _, title := range []string{"Zetman", "Akira", "Monster"} {
		if _, err := w.Add(title, 1); err != nil {
			t.Fatalf("add %s: %v", title, err)
		}
	}
	var titles []string
	for _, s := range w.CurrentList() {
		titles = append(titles, s.Title)
	}
	if !slices.Equal(titles, []string{"Zetman", "Akira", "Monster"}) {
		t.Fatalf("unexpected order %v", titles)
	}
}

func TestAddInvalidInput(t *testing.T) {
	w, _ := newFileWatchlist(t)

	tests := []struct {
		title string
		total int
	}{
		{"", 10},
		{"   ", 10},
		{"Naruto", 0},
		{"Naruto", -3},
	}
	for _, tt := range tests {
		if _, err := w.Add(tt.title, tt.total); !errors.Is(err, domain.ErrInvalidInput) {
			t.Errorf("Add(%q, %d) error = %v, want ErrInvalidInput", tt.title, tt.total, err)
		}
	}
	if w.Len() != 0 {
		t.Fatalf("invalid adds changed the list: %+v", w.CurrentList())
	}
}

func TestAddDuplicateIgnoresCase(t *testing.T) {
	w, path := newFileWatchlist(t)
	if _, err := w.Add("Naruto", 220); err != nil {
		t.Fatal(err)
	}

	for _, title := range []string{"naruto", "NARUTO", "  Naruto "} {
		if _, err := w.Add(title, 5); !errors.Is(err, domain.ErrDuplicateTitle) {
			t.Errorf("Add(%q) error = %v, want ErrDuplicateTitle", title, err)
		}
	}
	want := []domain.Show{{Title: "Naruto", Total: 220}}
	if !slices.Equal(w.CurrentList(), want) {
		t.Fatalf("list changed: %+v", w.CurrentList())
	}
	if got := reload(t, path); !slices.Equal(got, want) {
		t.Fatalf("persisted %+v", got)
	}
}

func TestAddText(t *testing.T) {
	w, _ := newFileWatchlist(t)

	if _, err := w.AddText("Trigun", " 26 "); err != nil {
		t.Fatalf("AddText: %v", err)
	}
	for _, total := range []string{"", "abc", "-4", "0", "2.5", "+3", "1e3"} {
		if _, err := w.AddText("Other", total); !errors.Is(err, domain.ErrInvalidInput) {
			t.Errorf("AddText total %q error = %v, want ErrInvalidInput", total, err)
		}
	}
	if _, err := w.AddText(" ", "12"); !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("AddText blank title error = %v", err)
	}
}

func TestMarkWatchedUntilComplete(t *testing.T) {
	w, path := newFileWatchlist(t)
	if _, err := w.Add("FLCL", 6); err != nil {
		t.Fatal(err)
	}

	for i := 1; i <= 6; i++ {
		show, err := w.MarkWatched(0)
		if err != nil {
			t.Fatalf("mark %d: %v", i, err)
		}
		if show.Watched != i {
			t.Fatalf("mark %d: watched = %d", i, show.Watched)
		}
	}

	if _, err := w.MarkWatched(0); !errors.Is(err, domain.ErrAlreadyComplete) {
		t.Fatalf("7th mark error = %v, want ErrAlreadyComplete", err)
	}
	got := reload(t, path)
	if got[0].Watched != 6 || got[0].Total != 6 {
		t.Fatalf("persisted %+v", got[0])
	}
}

func TestIndexOutOfRange(t *testing.T) {
	w, _ := newFileWatchlist(t)
	if _, err := w.Add("Akira", 1); err != nil {
		t.Fatal(err)
	}
	for _, idx := range []int{-1, 1, 99} {
		if _, err := w.MarkWatched(idx); !errors.Is(err, domain.ErrIndexOutOfRange) {
			t.Errorf("MarkWatched(%d) error = %v", idx, err)
		}
		if _, err := w.Remove(idx); !errors.Is(err, domain.ErrIndexOutOfRange) {
			t.Errorf("Remove(%d) error = %v", idx, err)
		}
	}
	if w.Len() != 1 {
		t.Fatalf("list changed: %+v", w.CurrentList())
	}
}

func TestRemoveShiftsLeft(t *testing.T) {
	w, path := newFileWatchlist(t)
	for _, title := range []string{"A", "B", "C"} {
		if _, err := w.Add(title, 2); err != nil {
			t.Fatal(err)
		}
	}

	removed, err := w.Remove(1)
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if removed.Title != "B" {
		t.Fatalf("removed %+v", removed)
	}
	want := []domain.Show{{Title: "A", Total: 2}, {Title: "C", Total: 2}}
	if !slices.Equal(w.CurrentList(), want) {
		t.Fatalf("list %+v", w.CurrentList())
	}
	if got := reload(t, path); !slices.Equal(got, want) {
		t.Fatalf("persisted %+v", got)
	}
}

func TestRemoveThenUndo(t *testing.T) {
	w, path := newFileWatchlist(t)
	for _, title := range []string{"A", "B", "C"} {
		if _, err := w.Add(title, 4); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := w.MarkWatched(0); err != nil {
		t.Fatal(err)
	}

	original, _ := w.Select(0)
	if _, err := w.Remove(0); err != nil {
		t.Fatal(err)
	}
	if !w.CanUndo() {
		t.Fatal("expected undo to be available")
	}

	restored, err := w.UndoRemove()
	if err != nil {
		t.Fatalf("undo: %v", err)
	}
	if restored != original {
		t.Fatalf("restored %+v, want %+v", restored, original)
	}
	last, _ := w.Select(w.Len() - 1)
	if last != original {
		t.Fatalf("restored show not appended: %+v", w.CurrentList())
	}
	if got := reload(t, path); got[len(got)-1] != original {
		t.Fatalf("persisted %+v", got)
	}

	if _, err := w.UndoRemove(); !errors.Is(err, domain.ErrNothingToUndo) {
		t.Fatalf("second undo error = %v, want ErrNothingToUndo", err)
	}
}

func TestUndoKeepsOnlyLastRemoval(t *testing.T) {
	w, _ := newFileWatchlist(t)
	for _, title := range []string{"A", "B"} {
		if _, err := w.Add(title, 1); err != nil {
			t.Fatal(err)
		}
	}
	w.Remove(0)
	w.Remove(0)

	restored, err := w.UndoRemove()
	if err != nil {
		t.Fatal(err)
	}
	if restored.Title != "B" {
		t.Fatalf("restored %+v, want B", restored)
	}
	if _, err := w.UndoRemove(); !errors.Is(err, domain.ErrNothingToUndo) {
		t.Fatalf("expected ErrNothingToUndo, got %v", err)
	}
}

func TestUndoBlockedByReAddedTitle(t *testing.T) {
	w, _ := newFileWatchlist(t)
	w.Add("Akira", 1)
	w.Remove(0)
	w.Add("AKIRA", 3)

	if _, err := w.UndoRemove(); !errors.Is(err, domain.ErrDuplicateTitle) {
		t.Fatalf("undo error = %v, want ErrDuplicateTitle", err)
	}
	if !w.CanUndo() {
		t.Fatal("blocked undo must keep the buffer")
	}
	if w.Len() != 1 {
		t.Fatalf("list changed: %+v", w.CurrentList())
	}
}

func TestUndoWithEmptyBuffer(t *testing.T) {
	w, _ := newFileWatchlist(t)
	if _, err := w.UndoRemove(); !errors.Is(err, domain.ErrNothingToUndo) {
		t.Fatalf("error = %v, want ErrNothingToUndo", err)
	}
}

func TestSelect(t *testing.T) {
	w, _ := newFileWatchlist(t)
	if _, ok := w.Select(0); ok {
		t.Fatal("empty list must have no selection")
	}
	w.Add("Akira", 1)
	show, ok := w.Select(0)
	if !ok || show.Title != "Akira" {
		t.Fatalf("Select(0) = %+v, %v", show, ok)
	}
}

func TestCurrentListIsACopy(t *testing.T) {
	w, _ := newFileWatchlist(t)
	w.Add("Akira", 1)
	list := w.CurrentList()
	list[0].Watched = 1
	if show, _ := w.Select(0); show.Watched != 0 {
		t.Fatal("CurrentList leaked internal state")
	}
}

func TestFailedSaveRollsBack(t *testing.T) {
	fs := &flakyStore{}
	w := New(fs, adapter.NullLogger())
	if _, err := w.Add("Akira", 2); err != nil {
		t.Fatal(err)
	}
	if _, err := w.Add("Bebop", 2); err != nil {
		t.Fatal(err)
	}
	fs.failing = true

	before := w.CurrentList()

	if _, err := w.Add("Monster", 74); !errors.Is(err, domain.ErrPersistence) {
		t.Errorf("add error = %v, want ErrPersistence", err)
	}
	if _, err := w.MarkWatched(0); !errors.Is(err, domain.ErrPersistence) || !errors.Is(err, errDiskFull) {
		t.Errorf("mark error = %v", err)
	}
	if _, err := w.Remove(1); !errors.Is(err, domain.ErrPersistence) {
		t.Errorf("remove error = %v", err)
	}
	if w.CanUndo() {
		t.Error("failed remove must not fill the undo buffer")
	}
	if !slices.Equal(w.CurrentList(), before) {
		t.Fatalf("state changed after failed saves: %+v", w.CurrentList())
	}

	// A failed undo keeps the buffer
	fs.failing = false
	w.Remove(1)
	fs.failing = true
	if _, err := w.UndoRemove(); !errors.Is(err, domain.ErrPersistence) {
		t.Errorf("undo error = %v", err)
	}
	if !w.CanUndo() || w.Len() != 1 {
		t.Fatalf("failed undo changed state: len=%d canUndo=%v", w.Len(), w.CanUndo())
	}
}

func TestLoadCorruptFileRecoversEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "animewatch_data.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	w := New(store.NewFileStore(path, adapter.NullLogger()), adapter.NullLogger())
	shows, err := w.Load()
	if !errors.Is(err, domain.ErrPersistence) {
		t.Fatalf("load error = %v, want ErrPersistence", err)
	}
	if len(shows) != 0 || w.Len() != 0 {
		t.Fatalf("expected empty watchlist, got %+v", shows)
	}

	// Still usable, and the next save replaces the bad file
	if _, err := w.Add("Akira", 1); err != nil {
		t.Fatalf("add after failed load: %v", err)
	}
	if got := reload(t, path); len(got) != 1 {
		t.Fatalf("persisted %+v", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	w := New(store.NewFileStore(filepath.Join(t.TempDir(), "none.json"), adapter.NullLogger()), adapter.NullLogger())
	shows, err := w.Load()
	if err != nil {
		t.Fatalf("missing file must not be an error: %v", err)
	}
	if len(shows) != 0 {
		t.Fatalf("got %+v", shows)
	}
}

func TestLoadClearsUndo(t *testing.T) {
	fs := &flakyStore{}
	w := New(fs, adapter.NullLogger())
	w.Add("Akira", 1)
	w.Remove(0)
	fs.loadErr = errors.New("boom")
	w.Load()
	if w.CanUndo() {
		t.Fatal("load must reset the undo buffer")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	for _, backend := range []store.Backend{store.BackendJSON, store.BackendBolt, store.BackendSQLite} {
		t.Run(string(backend), func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "data")
			s, err := store.Open(backend, path, adapter.NullLogger())
			if err != nil {
				t.Fatal(err)
			}
			w := New(s, adapter.NullLogger())
			w.Add("Naruto", 220)
			w.Add("Bebop", 26)
			w.MarkWatched(1)
			want := w.CurrentList()
			w.Close()

			s, err = store.Open(backend, path, adapter.NullLogger())
			if err != nil {
				t.Fatal(err)
			}
			defer s.Close()
			got, err := New(s, adapter.NullLogger()).Load()
			if err != nil {
				t.Fatal(err)
			}
			if !slices.Equal(got, want) {
				t.Fatalf("got %+v, want %+v", got, want)
			}
		})
	}
}

func TestNarutoScenario(t *testing.T) {
	w, path := newFileWatchlist(t)

	if _, err := w.Add("Naruto", 220); err != nil {
		t.Fatal(err)
	}
	if _, err := w.Add("naruto", 5); !errors.Is(err, domain.ErrDuplicateTitle) {
		t.Fatalf("expected ErrDuplicateTitle, got %v", err)
	}
	for i := 0; i < 3; i++ {
		if _, err := w.MarkWatched(0); err != nil {
			t.Fatal(err)
		}
	}
	show, _ := w.Select(0)
	if show.Watched != 3 || show.Total != 220 {
		t.Fatalf("after marks: %+v", show)
	}

	if _, err := w.Remove(0); err != nil {
		t.Fatal(err)
	}
	if w.Len() != 0 {
		t.Fatalf("expected empty list, got %+v", w.CurrentList())
	}

	restored, err := w.UndoRemove()
	if err != nil {
		t.Fatal(err)
	}
	want := domain.Show{Title: "Naruto", Total: 220, Watched: 3}
	if restored != want {
		t.Fatalf("restored %+v", restored)
	}
	if got := reload(t, path); !slices.Equal(got, []domain.Show{want}) {
		t.Fatalf("persisted %+v", got)
	}
}
