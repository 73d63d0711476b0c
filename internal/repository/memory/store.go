// Package memory provides process-lifetime repositories backed by
// mutex-guarded in-memory collections.
package memory

import (
	"slices"
	"sync"
)

// Store owns the insertion-ordered collection of one entity type. It is the
// only place the collection's membership changes and is safe for concurrent use.
type Store[T any] struct {
	mu     sync.RWMutex
	items  map[int64]T
	order  []int64
	nextID int64
	idOf   func(T) int64
	withID func(T, int64) T
}

// NewStore creates a Store that reads ids with idOf and assigns them with
// withID. The seed entities are inserted in order.
func NewStore[T any](idOf func(T) int64, withID func(T, int64) T, seed ...T) *Store[T] {
	s := &Store[T]{
		items:  make(map[int64]T),
		nextID: 1,
		idOf:   idOf,
		withID: withID,
	}
	for _, v := range seed {
		s.put(v)
	}
	return s
}

// Entities returns the members in insertion order. The slice is a snapshot;
// mutating it does not change the store.
func (s *Store[T]) Entities() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]T, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.items[id])
	}
	return out
}

// Filter returns the members matching keep, in insertion order.
func (s *Store[T]) Filter(keep func(T) bool) []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []T{}
	for _, id := range s.order {
		if v := s.items[id]; keep(v) {
			out = append(out, v)
		}
	}
	return out
}

// Get returns the member with the given id.
func (s *Store[T]) Get(id int64) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.items[id]
	return v, ok
}

// Put appends v, assigning the next id when v has none. A member with the
// same id is removed first. It returns v as stored.
func (s *Store[T]) Put(v T) T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.put(v)
}

// Replace removes the member with v's id and appends v. It reports false,
// leaving the store untouched, when no such member exists.
func (s *Store[T]) Replace(v T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[s.idOf(v)]; !ok {
		return false
	}
	s.put(v)
	return true
}

// Remove deletes the member with the given id and reports whether it existed.
func (s *Store[T]) Remove(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.remove(id)
}

func (s *Store[T]) put(v T) T {
	id := s.idOf(v)
	if id == 0 {
		id = s.nextID
		v = s.withID(v, id)
	}
	if id >= s.nextID {
		s.nextID = id + 1
	}

	s.remove(id)
	s.items[id] = v
	s.order = append(s.order, id)
	return v
}

func (s *Store[T]) remove(id int64) bool {
	if _, ok := s.items[id]; !ok {
		return false
	}
	delete(s.items, id)
	if i := slices.Index(s.order, id); i >= 0 {
		s.order = slices.Delete(s.order, i, i+1)
	}
	return true
}
