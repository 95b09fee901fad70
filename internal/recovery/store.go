package recovery

import (
	"github.com/WeakCookie/fit-path-hackathon/internal/store"
)

// Store is the recovery data store. On top of the generic store it can
// look up and upsert entries by their date.
type Store struct {
	*store.Store[Entry]
}

func NewStore(seed []Entry) *Store {
	return &Store{
		Store: store.New(seed),
	}
}

// GetByDate returns the first entry with exactly the given date.
func (s *Store) GetByDate(date string) (Entry, bool) {
	found := s.Filter(func(e Entry) bool {
		return e.Date == date
	})
	if len(found) == 0 {
		return Entry{}, false
	}
	return found[0].Clone(), true
}

// UpdateByDate merges the patch into the entry with the given date, or
// appends a new entry holding only the patch and the date when there is none.
// It returns the stored entry.
func (s *Store) UpdateByDate(date string, patch Partial) Entry {
	var updated Entry
	s.Update(func(items []Entry) []Entry {
		for i := range items {
			if items[i].Date == date {
				items[i] = patch.applyTo(items[i])
				updated = items[i]
				return items
			}
		}
		updated = patch.applyTo(Entry{Date: date})
		return append(items, updated)
	})
	return updated.Clone()
}
