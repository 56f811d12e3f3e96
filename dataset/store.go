package dataset

import "sync/atomic"

// Store is the session's dataset collection. Replacement is a single
// pointer swap, so a reader that took a snapshot before an upload keeps
// seeing the old collection for the rest of its call and never a mixture
// of old and new datasets.
type Store struct {
	current atomic.Pointer[map[string]*Dataset]
}

// NewStore creates an empty store.
func NewStore() *Store {
	s := &Store{}
	empty := map[string]*Dataset{}
	s.current.Store(&empty)
	return s
}

// Replace swaps in a new dataset collection wholesale. The map must not be
// mutated by the caller afterwards.
func (s *Store) Replace(datasets map[string]*Dataset) {
	if datasets == nil {
		datasets = map[string]*Dataset{}
	}
	s.current.Store(&datasets)
}

// Clear drops all datasets.
func (s *Store) Clear() {
	s.Replace(nil)
}

// Snapshot returns the current collection. The returned map is read-only by
// convention; Replace never mutates a published map.
func (s *Store) Snapshot() map[string]*Dataset {
	return *s.current.Load()
}

// Len returns the number of loaded datasets.
func (s *Store) Len() int {
	return len(s.Snapshot())
}

// Names returns the loaded dataset names, unordered.
func (s *Store) Names() []string {
	snap := s.Snapshot()
	names := make([]string, 0, len(snap))
	for name := range snap {
		names = append(names, name)
	}
	return names
}
