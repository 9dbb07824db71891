package store

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/mmcdole/animewatch/internal/domain"
)

// Backend names a persistence implementation
type Backend string

const (
	BackendJSON   Backend = "json"
	BackendBolt   Backend = "bolt"
	BackendSQLite Backend = "sqlite"
)

// Open returns the store for backend at path. An empty backend means JSON.
func Open(backend Backend, path string, logger *slog.Logger) (domain.Store, error) {
	switch Backend(strings.ToLower(string(backend))) {
	case "", BackendJSON:
		if path == "" {
			return nil, fmt.Errorf("json store requires a file path")
		}
		return NewFileStore(path, logger), nil
	case BackendBolt:
		return NewBoltStore(path, logger)
	case BackendSQLite:
		if path == "" {
			path = ":memory:"
		}
		return NewSQLiteStore(path, logger)
	default:
		return nil, fmt.Errorf("unknown store backend %q", backend)
	}
}
