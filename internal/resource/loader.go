// Package resource implements the five list-shaped resource loaders. Every
// loader follows the same shape: a load replaces the whole local list with
// the response, and a successful mutation triggers a fresh load. There are
// no optimistic updates and no merging.
package resource

import "sync"

// snapshot holds one resource's local list. Loads are tagged with a
// monotonically increasing sequence; a response only commits when its tag is
// still the latest, so overlapping loads with different parameters always
// leave the most recently requested data in place.
type snapshot[T any] struct {
	mu    sync.Mutex
	seq   uint64
	items []T
}

// begin registers a new load and returns its tag.
func (s *snapshot[T]) begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	return s.seq
}

// commit installs items when tag is still current. Stale responses are
// dropped and the prior list is kept.
func (s *snapshot[T]) commit(tag uint64, items []T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if tag != s.seq {
		return false
	}
	s.items = items
	return true
}

// get returns a copy of the current list.
func (s *snapshot[T]) get() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}
