package store

import (
	"sort"
	"sync"
)

// Dated is implemented by every entity kept in a Store.
// DateKey must return a YYYY-MM-DD string, which sorts lexicographically by date.
type Dated interface {
	DateKey() string
}

// Store is an in-memory collection kept sorted ascending by date.
// Readers always get copies of the backing slice, never the slice itself.
type Store[T Dated] struct {
	mu    sync.RWMutex
	items []T
	seed  []T
}

func New[T Dated](seed []T) *Store[T] {
	s := &Store[T]{
		seed: clone(seed),
	}
	s.items = sortedCopy(s.seed)
	return s
}

// GetAll returns a copy of all items sorted ascending by date.
func (s *Store[T]) GetAll() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.items)
}

// SetAll replaces all items.
func (s *Store[T]) SetAll(items []T) {
	sorted := sortedCopy(items)
	s.mu.Lock()
	s.items = sorted
	s.mu.Unlock()
}

// Add appends the item and re-sorts. Entries sharing a date keep their relative order.
func (s *Store[T]) Add(item T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := append(clone(s.items), item)
	sortByDate(items)
	s.items = items
}

// Reset restores the seed data.
func (s *Store[T]) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = sortedCopy(s.seed)
}

// Latest returns the entry with the greatest date, i.e. the last element
// of the ascending sort, and false when the store is empty.
func (s *Store[T]) Latest() (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.items) == 0 {
		var zero T
		return zero, false
	}
	return s.items[len(s.items)-1], true
}

func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Update runs fn with exclusive access to a copy of the items and stores
// the (re-sorted) result. Used by typed stores for read-modify-write operations.
func (s *Store[T]) Update(fn func(items []T) []T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := fn(clone(s.items))
	sortByDate(items)
	s.items = items
}

// Filter returns, in ascending date order, the items for which keep returns true.
func (s *Store[T]) Filter(keep func(T) bool) []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var filtered []T
	for _, item := range s.items {
		if keep(item) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// LatestOf returns the last item of an ascending-sorted slice.
func LatestOf[T Dated](items []T) (T, bool) {
	if len(items) == 0 {
		var zero T
		return zero, false
	}
	latest := sortedCopy(items)
	return latest[len(latest)-1], true
}

func sortedCopy[T Dated](items []T) []T {
	c := clone(items)
	sortByDate(c)
	return c
}

func sortByDate[T Dated](items []T) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].DateKey() < items[j].DateKey()
	})
}

func clone[T any](items []T) []T {
	c := make([]T, len(items))
	copy(c, items)
	return c
}
