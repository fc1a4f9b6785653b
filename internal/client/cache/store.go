package cache

import (
	"errors"
	"log/slog"
	"sync"
)

// Domain groups cache slots by entity kind. HTTP response handlers and
// realtime patch handlers must use the same domain and id for a given
// entity, otherwise patches land in the wrong slot.
type Domain string

const (
	Products   Domain = "products"
	Categories Domain = "categories"
	Orders     Domain = "orders"
	Tickets    Domain = "tickets"
	Reviews    Domain = "reviews"
)

// ErrNotCached indicates the addressed slot does not exist
var ErrNotCached = errors.New("entry not cached")

// Entry is one element of a cached list. The id is kept explicitly so
// list entries can be addressed without inspecting the value.
type Entry struct {
	ID    string
	Value interface{}
}

// Store is the process-wide in-memory read-model cache: one
// single-entity slot per (domain, id) and a registry of list slots
// keyed by (domain, query signature). Invalidation deletes slots, so
// the next read misses and re-fetches. Nothing here is persisted.
type Store struct {
	mu       sync.RWMutex
	entities map[Domain]map[string]interface{}
	lists    map[Domain]map[string][]Entry
	logger   *slog.Logger
}

// New creates an empty cache store
func New(logger *slog.Logger) *Store {
	return &Store{
		entities: make(map[Domain]map[string]interface{}),
		lists:    make(map[Domain]map[string][]Entry),
		logger:   logger,
	}
}

// SetEntity stores a single-entity snapshot
func (s *Store) SetEntity(d Domain, id string, v interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.entities[d] == nil {
		s.entities[d] = make(map[string]interface{})
	}
	s.entities[d][id] = v
}

// Entity returns the cached snapshot for (domain, id)
func (s *Store) Entity(d Domain, id string) (interface{}, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.entities[d][id]
	return v, ok
}

// DeleteEntity drops the single-entity slot
func (s *Store) DeleteEntity(d Domain, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entities[d], id)
}

// SetList stores a list under its query signature
func (s *Store) SetList(d Domain, signature string, entries []Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.lists[d] == nil {
		s.lists[d] = make(map[string][]Entry)
	}
	cp := make([]Entry, len(entries))
	copy(cp, entries)
	s.lists[d][signature] = cp
}

// List returns the cached list for (domain, signature)
func (s *Store) List(d Domain, signature string) ([]Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entries, ok := s.lists[d][signature]
	if !ok {
		return nil, false
	}
	cp := make([]Entry, len(entries))
	copy(cp, entries)
	return cp, true
}

// ListSignatures returns the signatures of all held lists of a domain
func (s *Store) ListSignatures(d Domain) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sigs := make([]string, 0, len(s.lists[d]))
	for sig := range s.lists[d] {
		sigs = append(sigs, sig)
	}
	return sigs
}

// InvalidateList drops one list slot
func (s *Store) InvalidateList(d Domain, signature string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.lists[d], signature)
}

// InvalidateLists drops every list of a domain. Single-entity slots
// are kept; created entities cannot be placed into lists client-side,
// so only the lists go stale.
func (s *Store) InvalidateLists(d Domain) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.lists, d)
}

// InvalidateDomain drops everything the domain holds, entity slots
// included. Used as the recovery fallback when a patch fails.
func (s *Store) InvalidateDomain(d Domain) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entities, d)
	delete(s.lists, d)
}

// ReplaceEverywhere sets the single-entity slot and replaces the value
// of every list entry with a matching id. Lists that do not contain
// the id are untouched. Returns the number of list entries replaced.
// Replacing by id with an absolute snapshot is idempotent: applying
// the same value twice equals applying it once.
func (s *Store) ReplaceEverywhere(d Domain, id string, v interface{}) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.entities[d] == nil {
		s.entities[d] = make(map[string]interface{})
	}
	s.entities[d][id] = v

	replaced := 0
	for _, entries := range s.lists[d] {
		for i := range entries {
			if entries[i].ID == id {
				entries[i].Value = v
				replaced++
			}
		}
	}
	return replaced
}

// RemoveEverywhere drops the single-entity slot and every list of the
// domain. In-place list removal is not attempted: a trimmed list would
// carry wrong pagination totals, so the lists are invalidated instead.
func (s *Store) RemoveEverywhere(d Domain, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entities[d], id)
	delete(s.lists, d)
}

// PatchEntity applies a field-level patch to the single-entity slot.
// The patch function receives the current value and returns the
// patched one; it must set absolute values so replays are idempotent.
// Returns ErrNotCached when the slot does not exist.
func (s *Store) PatchEntity(d Domain, id string, patch func(v interface{}) (interface{}, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.entities[d][id]
	if !ok {
		return ErrNotCached
	}

	patched, err := patch(v)
	if err != nil {
		return err
	}
	s.entities[d][id] = patched
	return nil
}
