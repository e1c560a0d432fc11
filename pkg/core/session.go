package core

import (
	"sort"
	"sync"
)

// LoadedSet tracks which documents a session has already loaded.
//
// It is created empty at session start and owned by exactly one session; the
// resolver only reads it, callers mark ids after actually loading content.
// It is never re-evaluated retroactively: workspace changes after a document
// was loaded do not unload it.
type LoadedSet struct {
	mu  sync.RWMutex
	ids map[string]struct{}
}

// NewLoadedSet creates a LoadedSet seeded with the given ids.
func NewLoadedSet(ids ...string) *LoadedSet {
	s := &LoadedSet{ids: make(map[string]struct{}, len(ids))}
	for _, id := range ids {
		s.ids[id] = struct{}{}
	}
	return s
}

// Has reports whether the document was already loaded in this session.
// A nil set behaves as empty.
func (s *LoadedSet) Has(id string) bool {
	if s == nil {
		return false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.ids[id]
	return ok
}

// MarkLoaded records document ids as loaded.
func (s *LoadedSet) MarkLoaded(ids ...string) {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range ids {
		s.ids[id] = struct{}{}
	}
}

// IDs returns the loaded ids, sorted.
func (s *LoadedSet) IDs() []string {
	if s == nil {
		return nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of loaded documents.
func (s *LoadedSet) Len() int {
	if s == nil {
		return 0
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.ids)
}

// Clear empties the set. Used when a session ends.
func (s *LoadedSet) Clear() {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ids = make(map[string]struct{})
}
