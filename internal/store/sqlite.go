package store

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/mmcdole/animewatch/internal/domain"

	_ "modernc.org/sqlite"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS shows (
	position INTEGER PRIMARY KEY,
	title    TEXT    NOT NULL,
	total    INTEGER NOT NULL,
	watched  INTEGER NOT NULL
);`

// SQLiteStore implements domain.Store with one row per show.
// Row order is the position column.
type SQLiteStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewSQLiteStore opens the database at dbPath, creating the schema if needed.
// The path ":memory:" gives a private in-memory database.
func NewSQLiteStore(dbPath string, logger *slog.Logger) (*SQLiteStore, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if dbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
			return nil, err
		}
	}

	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite db: %w", err)
	}
	// A single connection keeps ":memory:" databases alive across calls.
	db.SetMaxOpenConns(1)

	for _, stmt := range []string{"PRAGMA busy_timeout=1000;", sqliteSchema} {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("init sqlite db: %w", err)
		}
	}

	return &SQLiteStore{db: db, logger: logger}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) Load() ([]domain.Show, error) {
	rows, err := s.db.Query(`SELECT title, total, watched FROM shows ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query shows: %w", err)
	}
	defer rows.Close()

	var raw []domain.Show
	for rows.Next() {
		var sh domain.Show
		if err := rows.Scan(&sh.Title, &sh.Total, &sh.Watched); err != nil {
			return nil, fmt.Errorf("scan show: %w", err)
		}
		raw = append(raw, sh)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate shows: %w", err)
	}

	shows, skipped := Sanitize(raw)
	if skipped > 0 {
		s.logger.Warn("skipped invalid watchlist records", "count", skipped)
	}
	return shows, nil
}

// Save replaces every row in a single transaction.
func (s *SQLiteStore) Save(shows []domain.Show) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM shows`); err != nil {
		return fmt.Errorf("clear shows: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO shows (position, title, total, watched) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, sh := range shows {
		if _, err := stmt.Exec(i, sh.Title, sh.Total, sh.Watched); err != nil {
			return fmt.Errorf("insert show %q: %w", sh.Title, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}
