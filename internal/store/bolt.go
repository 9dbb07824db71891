package store

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/mmcdole/animewatch/internal/domain"
	bolt "go.etcd.io/bbolt"
)

// Bucket and key names
var (
	bucketWatchlist = []byte("watchlist")
	keyShows        = []byte("shows")
)

// BoltStore implements domain.Store using BoltDB.
// The list is stored as one JSON document under a single key.
type BoltStore struct {
	db     *bolt.DB
	logger *slog.Logger
	mu     sync.RWMutex // Protects memory cache

	// Last written document, served without touching the db
	cache []byte
}

// NewBoltStore opens (or creates) the database at dbPath.
// An empty dbPath selects memory-only mode (no persistence).
func NewBoltStore(dbPath string, logger *slog.Logger) (*BoltStore, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if dbPath == "" {
		return &BoltStore{logger: logger}, nil
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, err
	}

	db, err := bolt.Open(dbPath, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketWatchlist)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &BoltStore{db: db, logger: logger}, nil
}

func (s *BoltStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *BoltStore) Load() ([]domain.Show, error) {
	data, err := s.get()
	if err != nil {
		return nil, err
	}
	if data == nil {
		return []domain.Show{}, nil
	}

	shows, skipped, err := decodeShows(data)
	if err != nil {
		return nil, err
	}
	if skipped > 0 {
		s.logger.Warn("skipped invalid watchlist records", "count", skipped)
	}
	return shows, nil
}

func (s *BoltStore) Save(shows []domain.Show) error {
	data, err := encodeShows(shows)
	if err != nil {
		return err
	}
	return s.set(data)
}

func (s *BoltStore) get() ([]byte, error) {
	// Check memory cache first
	s.mu.RLock()
	if s.cache != nil {
		data := s.cache
		s.mu.RUnlock()
		return data, nil
	}
	s.mu.RUnlock()

	if s.db == nil {
		return nil, nil
	}

	var data []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketWatchlist)
		if b == nil {
			return nil
		}
		if v := b.Get(keyShows); v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("read bolt db: %w", err)
	}

	if data != nil {
		// Promote to memory cache
		s.mu.Lock()
		s.cache = data
		s.mu.Unlock()
	}
	return data, nil
}

func (s *BoltStore) set(data []byte) error {
	if s.db != nil {
		err := s.db.Update(func(tx *bolt.Tx) error {
			b, err := tx.CreateBucketIfNotExists(bucketWatchlist)
			if err != nil {
				return err
			}
			return b.Put(keyShows, data)
		})
		if err != nil {
			return fmt.Errorf("write bolt db: %w", err)
		}
	}

	// Cache only what reached the db, so a failed write is not served later
	s.mu.Lock()
	s.cache = data
	s.mu.Unlock()
	return nil
}
