package vulqian

import (
	"fmt"
	"reflect"
)

// systemSlot is one entry of the SystemManager arena.
type systemSlot struct {
	typ    reflect.Type
	system *System // embedded base of handle
	handle any     // the *T returned to the caller
}

// SystemManager owns one instance of every registered system type and
// keeps their entity sets in step with entity signatures.
type SystemManager struct {
	typeMap  map[reflect.Type]SystemID
	systems  []systemSlot // indexed by SystemID
	capacity int
}

// NewSystemManager creates an empty registry for systems tracking up to
// capacity entities.
func NewSystemManager(capacity int) *SystemManager {
	return &SystemManager{
		typeMap:  make(map[reflect.Type]SystemID, 8),
		systems:  make([]systemSlot, 0, 8),
		capacity: capacity,
	}
}

// EntitySignatureChanged inserts e into every system whose requirement
// is contained in s and erases it from all others.
func (m *SystemManager) EntitySignatureChanged(e Entity, s Signature) {
	for i := range m.systems {
		sys := m.systems[i].system
		if s.Contains(sys.signature) {
			sys.insert(e)
		} else {
			sys.erase(e)
		}
	}
}

// OnEntityDestroyed erases e from every system.
func (m *SystemManager) OnEntityDestroyed(e Entity) {
	for i := range m.systems {
		m.systems[i].system.erase(e)
	}
}

// Registered returns the number of registered systems.
func (m *SystemManager) Registered() int {
	return len(m.systems)
}

// rebuild recomputes the members of one system from the live entities.
func (m *SystemManager) rebuild(id SystemID, entities *EntityManager) {
	sys := m.systems[id].system
	sys.clear()
	entities.Each(func(e Entity, s Signature) {
		if s.Contains(sys.signature) {
			sys.insert(e)
		}
	})
}

func registerSystem[T any, PT interface {
	*T
	systemBase
}](m *SystemManager) (*T, SystemID) {
	t := reflect.TypeFor[T]()
	if _, ok := m.typeMap[t]; ok {
		panic(fmt.Sprintf("ecs: registering system %s more than once", t))
	}
	if len(m.systems) > int(^SystemID(0)) {
		panic("ecs: too many systems")
	}
	handle := new(T)
	sys := PT(handle).base()
	sys.init(m.capacity)
	id := SystemID(len(m.systems))
	m.systems = append(m.systems, systemSlot{typ: t, system: sys, handle: handle})
	m.typeMap[t] = id
	return handle, id
}

func systemIDOf[T any](m *SystemManager) SystemID {
	t := reflect.TypeFor[T]()
	id, ok := m.typeMap[t]
	if !ok {
		panic(fmt.Sprintf("ecs: system %s used before registered", t))
	}
	return id
}

func setSystemSignature[T any](m *SystemManager, s Signature) SystemID {
	id := systemIDOf[T](m)
	m.systems[id].system.signature = s
	return id
}

func systemOf[T any](m *SystemManager) *T {
	return m.systems[systemIDOf[T](m)].handle.(*T)
}
