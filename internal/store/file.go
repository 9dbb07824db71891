package store

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/mmcdole/animewatch/internal/domain"
)

// FileStore implements domain.Store as a single JSON file.
type FileStore struct {
	path   string
	logger *slog.Logger
}

func NewFileStore(path string, logger *slog.Logger) *FileStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &FileStore{path: path, logger: logger}
}

// Path returns the data file location.
func (s *FileStore) Path() string { return s.path }

func (s *FileStore) Load() ([]domain.Show, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []domain.Show{}, nil
		}
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}

	shows, skipped, err := decodeShows(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.path, err)
	}
	if skipped > 0 {
		s.logger.Warn("skipped invalid watchlist records", "path", s.path, "count", skipped)
	}
	return shows, nil
}

// Save writes shows to a temp file next to the target and renames it into place.
func (s *FileStore) Save(shows []domain.Show) error {
	data, err := encodeShows(shows)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	tmp := s.path + ".tmp"
	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open tmp: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		_ = os.Remove(tmp)
		return fmt.Errorf("write tmp: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("close tmp: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("rename tmp: %w", err)
	}
	return nil
}

func (s *FileStore) Close() error { return nil }
