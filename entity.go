package vulqian

import "fmt"

// EntityManager issues and recycles entity ids and stores the signature of
// every entity.
//
// Free ids are kept in a fixed ring: creation takes from the front and
// destruction appends to the back, so a destroyed id is handed out again
// only after every id freed before it.
type EntityManager struct {
	free       []Entity    // ring of unused ids
	signatures []Signature // indexed by entity id
	alive      []bool      // indexed by entity id
	head       int         // front of the ring
	available  int         // number of ids in the ring
	living     int         // number of live entities
}

// NewEntityManager creates a manager for up to capacity simultaneous
// entities. The free pool starts with ids 0..capacity-1 in order.
func NewEntityManager(capacity int) *EntityManager {
	if capacity <= 0 {
		panic(fmt.Sprintf("ecs: invalid entity capacity %d", capacity))
	}
	m := &EntityManager{
		free:       make([]Entity, capacity),
		signatures: make([]Signature, capacity),
		alive:      make([]bool, capacity),
		available:  capacity,
	}
	for i := range m.free {
		m.free[i] = Entity(i)
	}
	return m
}

// CreateEntity takes the next free id. It panics when capacity is reached.
func (m *EntityManager) CreateEntity() Entity {
	if m.living >= len(m.free) {
		panic(fmt.Sprintf("ecs: too many entities in existence (max %d)", len(m.free)))
	}
	e := m.free[m.head]
	m.head = (m.head + 1) % len(m.free)
	m.available--
	m.alive[e] = true
	m.living++
	return e
}

// DestroyEntity clears the signature of e and returns its id to the back
// of the free pool.
func (m *EntityManager) DestroyEntity(e Entity) {
	m.checkRange(e)
	if !m.alive[e] {
		panic(fmt.Sprintf("ecs: destroying entity %d which is not alive", e))
	}
	m.signatures[e] = 0
	m.alive[e] = false
	tail := (m.head + m.available) % len(m.free)
	m.free[tail] = e
	m.available++
	m.living--
}

// Signature returns the current signature of e.
func (m *EntityManager) Signature(e Entity) Signature {
	m.checkRange(e)
	return m.signatures[e]
}

// SetSignature overwrites the signature of e.
func (m *EntityManager) SetSignature(e Entity, s Signature) {
	m.checkRange(e)
	m.signatures[e] = s
}

// Alive reports whether e is currently allocated. Out of range ids are
// never alive.
func (m *EntityManager) Alive(e Entity) bool {
	return int(e) < len(m.alive) && m.alive[e]
}

// Living returns the number of live entities.
func (m *EntityManager) Living() int {
	return m.living
}

// Capacity returns the maximum number of simultaneous entities.
func (m *EntityManager) Capacity() int {
	return len(m.free)
}

// Each calls fn for every live entity in ascending id order.
func (m *EntityManager) Each(fn func(e Entity, s Signature)) {
	for i, ok := range m.alive {
		if ok {
			fn(Entity(i), m.signatures[i])
		}
	}
}

func (m *EntityManager) checkRange(e Entity) {
	if int(e) >= len(m.signatures) {
		panic(fmt.Sprintf("ecs: entity %d out of range (max %d)", e, len(m.signatures)))
	}
}
