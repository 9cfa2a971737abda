package vulqian

// System is the base every system embeds. It holds the signature a system
// requires and the set of entities whose signature currently contains it.
// The set is maintained by the Coordinator; systems only read it.
//
//	type Gravity struct {
//	    vulqian.System
//	}
//
//	gravity := vulqian.RegisterSystem[Gravity](c)
//	for _, e := range gravity.Entities() { ... }
type System struct {
	signature Signature
	index     []int32  // position of each entity in members, -1 if absent
	members   []Entity // dense, unordered
}

// systemBase is satisfied by any type embedding System.
type systemBase interface {
	base() *System
}

func (s *System) base() *System { return s }

func (s *System) init(capacity int) {
	s.index = make([]int32, capacity)
	for i := range s.index {
		s.index[i] = -1
	}
	s.members = make([]Entity, 0, capacity)
}

// Signature returns the component types this system requires.
func (s *System) Signature() Signature {
	return s.signature
}

// Entities returns the matching entities. The slice is owned by the system
// and changes on the next component mutation; copy it before adding or
// removing components while iterating.
func (s *System) Entities() []Entity {
	return s.members
}

// Has reports whether e currently matches.
func (s *System) Has(e Entity) bool {
	return int(e) < len(s.index) && s.index[e] >= 0
}

// Len returns the number of matching entities.
func (s *System) Len() int {
	return len(s.members)
}

// Each calls fn for every matching entity.
func (s *System) Each(fn func(e Entity)) {
	for _, e := range s.members {
		fn(e)
	}
}

func (s *System) insert(e Entity) {
	if s.index[e] >= 0 {
		return
	}
	s.index[e] = int32(len(s.members))
	s.members = append(s.members, e)
}

func (s *System) erase(e Entity) {
	idx := s.index[e]
	if idx < 0 {
		return
	}
	last := len(s.members) - 1
	moved := s.members[last]
	s.members[idx] = moved
	s.index[moved] = idx
	s.members = s.members[:last]
	s.index[e] = -1
}

func (s *System) clear() {
	for _, e := range s.members {
		s.index[e] = -1
	}
	s.members = s.members[:0]
}
