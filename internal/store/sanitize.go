package store

import (
	"github.com/mmcdole/animewatch/internal/domain"
)

// Sanitize keeps the records that satisfy the field constraints and whose
// title does not collide with an earlier record. Order is preserved.
// It returns the kept records and the number dropped.
func Sanitize(shows []domain.Show) ([]domain.Show, int) {
	kept := make([]domain.Show, 0, len(shows))
	dropped := 0
	for _, s := range shows {
		if s.Validate() != nil || containsTitle(kept, s.Title) {
			dropped++
			continue
		}
		kept = append(kept, s)
	}
	return kept, dropped
}

func containsTitle(shows []domain.Show, title string) bool {
	for _, s := range shows {
		if domain.SameTitle(s.Title, title) {
			return true
		}
	}
	return false
}
