package vulqian

import (
	"fmt"
	"reflect"
)

// Resources holds at most one value per type for data that belongs to the
// whole Coordinator rather than to an entity, such as the per-frame light
// block or the active camera. Values are stored as pointers; removed ids are
// reused.
type Resources struct {
	items   []any
	types   map[reflect.Type]int
	freeIDs []int
}

// Add stores res and returns its id. It panics when res is nil or when a
// resource of the same type is already present.
func (r *Resources) Add(res any) int {
	if res == nil {
		panic("ecs: cannot add nil resource")
	}
	t := reflect.TypeOf(res)
	if r.types == nil {
		r.types = make(map[reflect.Type]int)
	}
	if _, ok := r.types[t]; ok {
		panic(fmt.Sprintf("ecs: resource of type %s already exists", t))
	}
	var id int
	if n := len(r.freeIDs); n > 0 {
		id = r.freeIDs[n-1]
		r.freeIDs = r.freeIDs[:n-1]
		r.items[id] = res
	} else {
		r.items = append(r.items, res)
		id = len(r.items) - 1
	}
	r.types[t] = id
	return id
}

// Has reports whether id refers to a stored resource.
func (r *Resources) Has(id int) bool {
	return id >= 0 && id < len(r.items) && r.items[id] != nil
}

// Get returns the resource with the given id, or nil.
func (r *Resources) Get(id int) any {
	if !r.Has(id) {
		return nil
	}
	return r.items[id]
}

// Remove deletes the resource with the given id if it exists.
func (r *Resources) Remove(id int) {
	if !r.Has(id) {
		return
	}
	delete(r.types, reflect.TypeOf(r.items[id]))
	r.items[id] = nil
	r.freeIDs = append(r.freeIDs, id)
}

// Len returns the number of stored resources.
func (r *Resources) Len() int {
	return len(r.types)
}

// Clear removes every resource.
func (r *Resources) Clear() {
	clear(r.items)
	r.items = r.items[:0]
	clear(r.types)
	r.freeIDs = r.freeIDs[:0]
}

// AddResource stores res under type *T.
func AddResource[T any](r *Resources, res *T) int {
	if res == nil {
		panic(fmt.Sprintf("ecs: cannot add nil resource %s", reflect.TypeFor[*T]()))
	}
	return r.Add(res)
}

// HasResource reports whether a *T resource exists, and its id or -1.
func HasResource[T any](r *Resources) (bool, int) {
	if id, ok := r.types[reflect.TypeFor[*T]()]; ok {
		return true, id
	}
	return false, -1
}

// GetResource returns the *T resource and its id, or nil and -1.
func GetResource[T any](r *Resources) (*T, int) {
	if id, ok := r.types[reflect.TypeFor[*T]()]; ok {
		return r.items[id].(*T), id
	}
	return nil, -1
}
