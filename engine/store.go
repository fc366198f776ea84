package engine

import (
	"slices"

	"github.com/lixenwraith/arena/core"
	"github.com/lixenwraith/arena/parameter"
)

// Store is a typed component container kept dense and sorted by entity handle
// Iteration order is ascending handle order on every client
// Access is serialized by the world update lock
type Store[T any] struct {
	entities   []core.Entity
	components []T
}

// NewStore creates a new component store for type T
func NewStore[T any]() *Store[T] {
	return &Store[T]{
		entities:   make([]core.Entity, 0, parameter.StoreInitialCapacity),
		components: make([]T, 0, parameter.StoreInitialCapacity),
	}
}

// Set inserts or replaces the component of e
func (s *Store[T]) Set(e core.Entity, val T) {
	i, found := slices.BinarySearch(s.entities, e)
	if found {
		s.components[i] = val
		return
	}
	s.entities = slices.Insert(s.entities, i, e)
	s.components = slices.Insert(s.components, i, val)
}

// Get returns a copy of the component of e
func (s *Store[T]) Get(e core.Entity) (T, bool) {
	if i, found := slices.BinarySearch(s.entities, e); found {
		return s.components[i], true
	}
	var zero T
	return zero, false
}

// Ref returns a mutable borrow of the component of e, nil when absent
// The pointer is invalidated by the next Set of a new entity or Remove on this store
func (s *Store[T]) Ref(e core.Entity) *T {
	if i, found := slices.BinarySearch(s.entities, e); found {
		return &s.components[i]
	}
	return nil
}

// Has checks if e has this component
func (s *Store[T]) Has(e core.Entity) bool {
	_, found := slices.BinarySearch(s.entities, e)
	return found
}

// Remove deletes the component of e, keeping order
func (s *Store[T]) Remove(e core.Entity) {
	i, found := slices.BinarySearch(s.entities, e)
	if !found {
		return
	}
	var zero T
	s.components[i] = zero
	s.entities = slices.Delete(s.entities, i, i+1)
	s.components = slices.Delete(s.components, i, i+1)
}

// All returns a copy of the entities holding this component, ascending
func (s *Store[T]) All() []core.Entity {
	return slices.Clone(s.entities)
}

// AppendEntities appends the holders to out, for systems that reuse a scratch slice
func (s *Store[T]) AppendEntities(out []core.Entity) []core.Entity {
	return append(out, s.entities...)
}

// Count returns number of entities with this component
func (s *Store[T]) Count() int {
	return len(s.entities)
}

// Clear removes all components from this store
func (s *Store[T]) Clear() {
	clear(s.components)
	s.entities = s.entities[:0]
	s.components = s.components[:0]
}
