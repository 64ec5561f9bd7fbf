package tuber

import "reflect"

// MaxEventTypes caps the number of distinct event types an EventBus can
// route.
const MaxEventTypes = 256

// EventBus routes typed events between decoupled parts of a simulation,
// typically from the input/window layer into systems. Handlers run
// synchronously, in subscription order; Publish allocates nothing on the hot
// path.
type EventBus struct {
	typeMap  map[reflect.Type]uint8
	handlers [MaxEventTypes][]any
	nextID   uint8
}

// Subscribe registers a handler for events of type T.
func Subscribe[T any](bus *EventBus, handler func(T)) {
	id := bus.eventTypeID(reflect.TypeOf((*T)(nil)).Elem())
	bus.handlers[id] = append(bus.handlers[id], handler)
}

// Publish delivers the event to every handler subscribed for T, in
// subscription order.
func Publish[T any](bus *EventBus, event T) {
	if id, ok := bus.typeMap[reflect.TypeOf((*T)(nil)).Elem()]; ok {
		for _, h := range bus.handlers[id] {
			h.(func(T))(event)
		}
	}
}

func (bus *EventBus) eventTypeID(t reflect.Type) uint8 {
	if bus.typeMap == nil {
		bus.typeMap = make(map[reflect.Type]uint8)
	}
	if id, ok := bus.typeMap[t]; ok {
		return id
	}
	if len(bus.typeMap) >= MaxEventTypes {
		panic("tuber: too many event types")
	}
	id := bus.nextID
	bus.nextID++
	bus.typeMap[t] = id
	return id
}
