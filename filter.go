package vulqian

// Filter iterates over every entity that has a T, walking the dense store
// of T directly.
//
//	query := vulqian.NewFilter[Position](c)
//	for query.Next() {
//	    p := query.Get()
//	    ...
//	}
type Filter[T any] struct {
	store  *ComponentStore[T]
	curIdx int
}

// NewFilter creates a Filter over T. It panics if T is not registered.
func NewFilter[T any](c *Coordinator) *Filter[T] {
	return &Filter[T]{store: storeOf[T](c.components), curIdx: -1}
}

// Reset rewinds the filter to the first entity.
func (f *Filter[T]) Reset() {
	f.curIdx = -1
}

// Next advances to the next entity and reports whether there was one.
func (f *Filter[T]) Next() bool {
	f.curIdx++
	return f.curIdx < f.store.Len()
}

// Entity returns the current entity. Only valid after Next returned true.
func (f *Filter[T]) Entity() Entity {
	return f.store.indexToEntity[f.curIdx]
}

// Get returns the T of the current entity.
func (f *Filter[T]) Get() *T {
	return &f.store.values[f.curIdx]
}

// Len returns the number of entities the filter visits.
func (f *Filter[T]) Len() int {
	return f.store.Len()
}

// Filter2 iterates over the entities of a system and yields two of their
// components. The system's signature must include T1 and T2.
//
// Adding or removing components during iteration changes the system's
// entity set; collect the entities first when doing so.
type Filter2[T1 any, T2 any] struct {
	sys      *System
	required Signature
	s1       *ComponentStore[T1]
	s2       *ComponentStore[T2]
	curIdx   int
	curEnt   Entity
}

// NewFilter2 creates a Filter2 over the members of sys. It panics if T1 and
// T2 are the same type, if either is unregistered, or if the signature of
// sys does not require both. Reset checks the signature again, so a system
// whose requirement changed fails there instead of inside Get.
func NewFilter2[T1 any, T2 any](c *Coordinator, sys *System) *Filter2[T1, T2] {
	id1 := componentTypeOf[T1](c.components)
	id2 := componentTypeOf[T2](c.components)
	if id1 == id2 {
		panic("ecs: duplicate component types in Filter2")
	}
	f := &Filter2[T1, T2]{
		sys:      sys,
		required: NewSignature(id1, id2),
		s1:       storeOf[T1](c.components),
		s2:       storeOf[T2](c.components),
	}
	f.Reset()
	return f
}

// Reset rewinds the filter to the first entity. It panics if the signature
// of the system no longer requires T1 and T2.
func (f *Filter2[T1, T2]) Reset() {
	if !f.sys.signature.Contains(f.required) {
		panic("ecs: Filter2 components " + f.required.String() +
			" are not part of the system signature " + f.sys.signature.String())
	}
	f.curIdx = -1
}

// Next advances to the next entity and reports whether there was one.
func (f *Filter2[T1, T2]) Next() bool {
	f.curIdx++
	if f.curIdx >= len(f.sys.members) {
		return false
	}
	f.curEnt = f.sys.members[f.curIdx]
	return true
}

// Entity returns the current entity. Only valid after Next returned true.
func (f *Filter2[T1, T2]) Entity() Entity {
	return f.curEnt
}

// Get returns both components of the current entity.
func (f *Filter2[T1, T2]) Get() (*T1, *T2) {
	return f.s1.Get(f.curEnt), f.s2.Get(f.curEnt)
}
