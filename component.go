package vulqian

import (
	"fmt"
	"reflect"
)

// ComponentManager maps component types to their index and their store.
//
// A type is looked up once by its reflect.Type; everything after that is
// keyed by the ComponentType handed out from a counter at registration.
type ComponentManager struct {
	typeMap  map[reflect.Type]ComponentType
	types    [MaxComponents]reflect.Type
	stores   [MaxComponents]componentStore
	capacity int
	next     int // counter for assigning new component types
}

// NewComponentManager creates an empty registry whose stores hold up to
// capacity entities.
func NewComponentManager(capacity int) *ComponentManager {
	return &ComponentManager{
		typeMap:  make(map[reflect.Type]ComponentType, 16),
		capacity: capacity,
	}
}

// OnEntityDestroyed tells every store that e is gone.
func (m *ComponentManager) OnEntityDestroyed(e Entity) {
	for i := 0; i < m.next; i++ {
		m.stores[i].OnEntityDestroyed(e)
	}
}

// Registered returns the number of registered component types.
func (m *ComponentManager) Registered() int {
	return m.next
}

// TypeName returns the Go type registered under t, or "" if t is unused.
func (m *ComponentManager) TypeName(t ComponentType) string {
	if int(t) >= m.next {
		return ""
	}
	return m.types[t].String()
}

func registerComponent[T any](m *ComponentManager) ComponentType {
	t := reflect.TypeFor[T]()
	if _, ok := m.typeMap[t]; ok {
		panic(fmt.Sprintf("ecs: registering component type %s more than once", t))
	}
	if m.next >= MaxComponents {
		panic(fmt.Sprintf("ecs: cannot register component %s: maximum number of component types (%d) reached", t, MaxComponents))
	}
	id := ComponentType(m.next)
	m.typeMap[t] = id
	m.types[id] = t
	m.stores[id] = NewComponentStore[T](m.capacity)
	m.next++
	return id
}

func componentTypeOf[T any](m *ComponentManager) ComponentType {
	t := reflect.TypeFor[T]()
	id, ok := m.typeMap[t]
	if !ok {
		panic(fmt.Sprintf("ecs: component %s not registered before use", t))
	}
	return id
}

func lookupComponentType[T any](m *ComponentManager) (ComponentType, bool) {
	id, ok := m.typeMap[reflect.TypeFor[T]()]
	return id, ok
}

func storeOf[T any](m *ComponentManager) *ComponentStore[T] {
	return m.stores[componentTypeOf[T](m)].(*ComponentStore[T])
}

func addComponent[T any](m *ComponentManager, e Entity, v T) {
	storeOf[T](m).Insert(e, v)
}

func removeComponent[T any](m *ComponentManager, e Entity) {
	storeOf[T](m).Remove(e)
}

func getComponent[T any](m *ComponentManager, e Entity) *T {
	return storeOf[T](m).Get(e)
}

func hasComponent[T any](m *ComponentManager, e Entity) bool {
	id, ok := lookupComponentType[T](m)
	return ok && m.stores[id].Has(e)
}
