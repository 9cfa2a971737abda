package vulqian

import (
	"fmt"
	"reflect"
)

// componentStore is the type-erased view of a ComponentStore that the
// ComponentManager keeps per registered type.
type componentStore interface {
	OnEntityDestroyed(e Entity)
	Has(e Entity) bool
	Len() int
}

var _ componentStore = (*ComponentStore[struct{}])(nil)

// ComponentStore keeps every value of one component type packed at the
// front of a fixed array. Slots [0, Len()) hold exactly the attached
// values; removal moves the last value into the hole, so the order of
// values is not stable.
type ComponentStore[T any] struct {
	values        []T      // len = capacity
	indexToEntity []Entity // owner of each dense slot
	entityToIndex []int32  // dense slot of each entity, -1 if absent
	size          int
}

// NewComponentStore allocates a store for entities in [0, capacity).
func NewComponentStore[T any](capacity int) *ComponentStore[T] {
	s := &ComponentStore[T]{
		values:        make([]T, capacity),
		indexToEntity: make([]Entity, capacity),
		entityToIndex: make([]int32, capacity),
	}
	for i := range s.entityToIndex {
		s.entityToIndex[i] = -1
	}
	return s
}

// Insert attaches v to e at the end of the dense prefix.
func (s *ComponentStore[T]) Insert(e Entity, v T) {
	s.checkRange(e)
	if s.entityToIndex[e] >= 0 {
		panic(fmt.Sprintf("ecs: %s added to entity %d more than once", s.typeName(), e))
	}
	idx := s.size
	s.entityToIndex[e] = int32(idx)
	s.indexToEntity[idx] = e
	s.values[idx] = v
	s.size++
}

// Remove detaches the value of e, filling its slot with the last value.
func (s *ComponentStore[T]) Remove(e Entity) {
	s.checkRange(e)
	idx := s.entityToIndex[e]
	if idx < 0 {
		panic(fmt.Sprintf("ecs: removing non-existent %s from entity %d", s.typeName(), e))
	}
	last := s.size - 1
	if int(idx) < last {
		moved := s.indexToEntity[last]
		s.values[idx] = s.values[last]
		s.indexToEntity[idx] = moved
		s.entityToIndex[moved] = idx
	}
	var zero T
	s.values[last] = zero
	s.entityToIndex[e] = -1
	s.size--
}

// Get returns a pointer to the value of e. The pointer stays valid until
// the next Remove on this store.
func (s *ComponentStore[T]) Get(e Entity) *T {
	s.checkRange(e)
	idx := s.entityToIndex[e]
	if idx < 0 {
		panic(fmt.Sprintf("ecs: retrieving non-existent %s from entity %d", s.typeName(), e))
	}
	return &s.values[idx]
}

// Has reports whether e has a value in this store.
func (s *ComponentStore[T]) Has(e Entity) bool {
	return int(e) < len(s.entityToIndex) && s.entityToIndex[e] >= 0
}

// OnEntityDestroyed drops the value of e if there is one.
func (s *ComponentStore[T]) OnEntityDestroyed(e Entity) {
	if s.Has(e) {
		s.Remove(e)
	}
}

// Len returns the number of attached values.
func (s *ComponentStore[T]) Len() int {
	return s.size
}

// Values returns the dense prefix. It is owned by the store and is only
// valid until the next Insert or Remove.
func (s *ComponentStore[T]) Values() []T {
	return s.values[:s.size]
}

// Entities returns the owner of each value in Values, index for index.
func (s *ComponentStore[T]) Entities() []Entity {
	return s.indexToEntity[:s.size]
}

// Each calls fn for every attached value in dense order. fn must not
// insert into or remove from this store.
func (s *ComponentStore[T]) Each(fn func(e Entity, v *T)) {
	for i := 0; i < s.size; i++ {
		fn(s.indexToEntity[i], &s.values[i])
	}
}

func (s *ComponentStore[T]) checkRange(e Entity) {
	if int(e) >= len(s.entityToIndex) {
		panic(fmt.Sprintf("ecs: entity %d out of range (max %d)", e, len(s.entityToIndex)))
	}
}

func (s *ComponentStore[T]) typeName() string {
	return reflect.TypeFor[T]().String()
}
