package store

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/mmcdole/animewatch/internal/domain"
)

// record is the on-disk shape of a show. Pointer fields distinguish a missing
// field from a zero value.
type record struct {
	Title   *string `json:"title"`
	Total   *int    `json:"total"`
	Watched *int    `json:"watched"`
}

func (r record) show() (domain.Show, bool) {
	if r.Title == nil || r.Total == nil || r.Watched == nil {
		return domain.Show{}, false
	}
	return domain.Show{Title: *r.Title, Total: *r.Total, Watched: *r.Watched}, true
}

// decodeShows parses a JSON array of show objects.
// A document that is not an array of correctly typed objects is an error;
// individual records that are incomplete or violate field constraints are
// dropped and counted in skipped.
func decodeShows(data []byte) (shows []domain.Show, skipped int, err error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return []domain.Show{}, 0, nil
	}

	var records []*record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, 0, fmt.Errorf("decode watchlist: %w", err)
	}
	if records == nil {
		return nil, 0, fmt.Errorf("decode watchlist: top-level value is not an array")
	}

	raw := make([]domain.Show, 0, len(records))
	for _, r := range records {
		if r == nil {
			skipped++
			continue
		}
		s, ok := r.show()
		if !ok {
			skipped++
			continue
		}
		raw = append(raw, s)
	}

	shows, dropped := Sanitize(raw)
	return shows, skipped + dropped, nil
}

// encodeShows renders shows as an indented JSON array.
// Non-ASCII titles are written as-is.
func encodeShows(shows []domain.Show) ([]byte, error) {
	if shows == nil {
		shows = []domain.Show{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(shows); err != nil {
		return nil, fmt.Errorf("encode watchlist: %w", err)
	}
	return buf.Bytes(), nil
}
