package vulqian

import (
	"fmt"
	"reflect"
)

// MaxEventTypes defines the maximum number of unique event types that can be
// registered in the EventBus.
const MaxEventTypes = 256

// EventBus dispatches typed events to subscribed handlers. Delivery is
// synchronous and follows subscription order.
//
// The Coordinator publishes EntityCreated, EntityDestroyed, ComponentAdded
// and ComponentRemoved on its own bus once its state is consistent again.
type EventBus struct {
	eventTypeMap map[reflect.Type]uint8
	handlers     [MaxEventTypes][]any
	next         int
}

// Subscribe registers handler for events of type T.
func Subscribe[T any](bus *EventBus, handler func(T)) {
	id := bus.eventTypeID(reflect.TypeFor[T]())
	if cap(bus.handlers[id]) == 0 {
		bus.handlers[id] = make([]any, 0, 4)
	}
	bus.handlers[id] = append(bus.handlers[id], handler)
}

// Publish calls every handler subscribed to T with event. Publishing a type
// nobody subscribed to is a no-op.
func Publish[T any](bus *EventBus, event T) {
	id, ok := bus.eventTypeMap[reflect.TypeFor[T]()]
	if !ok {
		return
	}
	for _, h := range bus.handlers[id] {
		h.(func(T))(event)
	}
}

// HasSubscribers reports whether at least one handler listens to T.
func HasSubscribers[T any](bus *EventBus) bool {
	id, ok := bus.eventTypeMap[reflect.TypeFor[T]()]
	return ok && len(bus.handlers[id]) > 0
}

func (bus *EventBus) eventTypeID(t reflect.Type) uint8 {
	if bus.eventTypeMap == nil {
		bus.eventTypeMap = make(map[reflect.Type]uint8)
	}
	if id, ok := bus.eventTypeMap[t]; ok {
		return id
	}
	if bus.next >= MaxEventTypes {
		panic(fmt.Sprintf("ecs: too many event types, cannot subscribe to %s", t))
	}
	id := uint8(bus.next)
	bus.next++
	bus.eventTypeMap[t] = id
	return id
}
