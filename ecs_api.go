package vulqian

import (
	"fmt"
	"reflect"

	"go.uber.org/zap"
)

// RegisterComponent makes T usable as a component of c and returns the
// ComponentType assigned to it. Types are numbered from 0 in registration
// order. It panics if T is already registered or if MaxComponents types
// exist.
func RegisterComponent[T any](c *Coordinator) ComponentType {
	id := registerComponent[T](c.components)
	c.log.Info("component registered",
		zap.Stringer("type", reflect.TypeFor[T]()),
		zap.Uint8("id", uint8(id)))
	return id
}

// TypeOf returns the ComponentType of T, for building signatures.
// It panics if T is not registered.
func TypeOf[T any](c *Coordinator) ComponentType {
	return componentTypeOf[T](c.components)
}

// AddComponent attaches v to e, sets the bit of T in its signature and
// updates system membership.
//
// It panics if T is not registered, if e already has a T, or if e is out
// of range.
func AddComponent[T any](c *Coordinator, e Entity, v T) {
	c.checkAlive(e)
	addComponent(c.components, e, v)
	id := componentTypeOf[T](c.components)
	s := c.entities.Signature(e).Set(id)
	c.updateSignature(e, s)
	Publish(c.events, ComponentAdded{Entity: e, Type: id, Signature: s})
}

// RemoveComponent detaches the T of e, clears its bit and updates system
// membership. It panics if e has no T.
func RemoveComponent[T any](c *Coordinator, e Entity) {
	c.checkAlive(e)
	removeComponent[T](c.components, e)
	id := componentTypeOf[T](c.components)
	s := c.entities.Signature(e).Unset(id)
	c.updateSignature(e, s)
	Publish(c.events, ComponentRemoved{Entity: e, Type: id, Signature: s})
}

// GetComponent returns a pointer to the T of e for reading or in-place
// mutation. The pointer is invalidated when any T is removed from any
// entity. It panics if e has no T.
func GetComponent[T any](c *Coordinator, e Entity) *T {
	return getComponent[T](c.components, e)
}

// HasComponent reports whether e has a T. Unregistered types are never
// present.
func HasComponent[T any](c *Coordinator, e Entity) bool {
	return hasComponent[T](c.components, e)
}

// ComponentsOf returns the dense store of T. Iterating its Values is the
// fastest way to visit every T regardless of system membership.
func ComponentsOf[T any](c *Coordinator) *ComponentStore[T] {
	return storeOf[T](c.components)
}

// RegisterSystem creates the single instance of system type T and returns
// it. The returned pointer is shared with the Coordinator, which keeps its
// entity set up to date. T must embed System.
//
// Until SetSystemSignature is called the requirement is empty, so every
// live entity matches. It panics if T is already registered.
func RegisterSystem[T any, PT interface {
	*T
	systemBase
}](c *Coordinator) *T {
	handle, id := registerSystem[T, PT](c.systems)
	c.systems.rebuild(id, c.entities)
	c.log.Info("system registered",
		zap.Stringer("type", reflect.TypeFor[T]()),
		zap.Uint16("id", uint16(id)))
	return handle
}

// SetSystemSignature sets the requirement of system T and recomputes its
// entity set from the live entities. It panics if T is not registered.
func SetSystemSignature[T any](c *Coordinator, s Signature) {
	id := setSystemSignature[T](c.systems, s)
	c.systems.rebuild(id, c.entities)
	c.log.Info("system signature set",
		zap.Stringer("type", reflect.TypeFor[T]()),
		zap.Stringer("signature", s))
}

// SystemOf returns the registered instance of system T.
func SystemOf[T any](c *Coordinator) *T {
	return systemOf[T](c.systems)
}

func (c *Coordinator) checkAlive(e Entity) {
	if !c.entities.Alive(e) {
		c.entities.checkRange(e)
		panic(fmt.Sprintf("ecs: entity %d is not alive", e))
	}
}
