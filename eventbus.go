package stitch

import "reflect"

// EntityCreated is published after an entity is created.
type EntityCreated struct {
	Entity Entity
}

// EntityDestroyed is published after an entity and its components are gone.
type EntityDestroyed struct {
	Entity Entity
}

// ArchetypeCreated is published the first time any entity reaches Kind.
type ArchetypeCreated struct {
	Kind Kind
	ID   ArchetypeID
}

// EventBus delivers events to handlers synchronously, in subscription order.
// The World publishes its lifecycle events here; handlers run inside the
// structural operation that triggered them and must not modify the World.
type EventBus struct {
	handlers map[reflect.Type][]any
}

// Subscribe registers handler for events of type T.
//
// Parameters:
//   - bus: The EventBus instance to subscribe to.
//   - handler: A function that takes a single argument of type T.
func Subscribe[T any](bus *EventBus, handler func(T)) {
	if bus.handlers == nil {
		bus.handlers = make(map[reflect.Type][]any)
	}
	t := reflect.TypeFor[T]()
	bus.handlers[t] = append(bus.handlers[t], handler)
}

// Publish calls every handler subscribed to T with event. Publishing with no
// subscribers costs a length check.
func Publish[T any](bus *EventBus, event T) {
	if len(bus.handlers) == 0 {
		return
	}
	for _, h := range bus.handlers[reflect.TypeFor[T]()] {
		h.(func(T))(event)
	}
}

// Subscribers returns how many handlers are subscribed to T.
func Subscribers[T any](bus *EventBus) int {
	return len(bus.handlers[reflect.TypeFor[T]()])
}
