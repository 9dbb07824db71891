package domain

// Store persists the whole watchlist as one ordered sequence.
// Implementations live in internal/store (JSON file, BoltDB, SQLite).
type Store interface {
	// Load returns the persisted records in order.
	// A missing data source is an empty watchlist, not an error.
	Load() ([]Show, error)

	// Save overwrites the persisted records with shows.
	Save(shows []Show) error

	Close() error
}
