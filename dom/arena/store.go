package arena

import (
	"fmt"
	"io"
)

// ID is the identity of a stored item. IDs are assigned sequentially
// starting at 0 and are never reused; an item keeps its ID for the
// lifetime of the store.
type ID uint32

// Next returns the ID that follows id in registration order.
func (id ID) Next() ID {
	return id + 1
}

// Store owns every item registered with it and hands out stable,
// monotonically increasing identities. The store knows nothing about
// tree semantics; callers layer parent/child structure on top of the
// IDs it assigns.
//
// Items are never removed. Detaching something from whatever structure
// references it does not free its slot here.
type Store[T any] struct {
	items []T
}

// NewStore creates an empty store.
func NewStore[T any]() *Store[T] {
	return &Store[T]{}
}

// Register takes ownership of item and returns its assigned identity.
func (s *Store[T]) Register(item T) ID {
	id := ID(len(s.items))
	s.items = append(s.items, item)
	return id
}

// Get returns the item with the given identity, or false when the
// identity was never assigned.
func (s *Store[T]) Get(id ID) (T, bool) {
	if int(id) >= len(s.items) {
		var zero T
		return zero, false
	}
	return s.items[id], true
}

// PeekNextID returns the identity the next Register call would assign,
// without assigning it.
func (s *Store[T]) PeekNextID() ID {
	return ID(len(s.items))
}

// Count returns the number of registered items.
func (s *Store[T]) Count() int {
	return len(s.items)
}

// Dump writes one line per registered item to w, for debugging.
func (s *Store[T]) Dump(w io.Writer) {
	for id, item := range s.items {
		fmt.Fprintf(w, "%d: %v\n", id, item)
	}
}
