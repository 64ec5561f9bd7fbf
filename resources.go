package tuber

import (
	"fmt"
	"reflect"
)

// Resources is the Ecs-scoped store for singleton values living outside the
// entity/component model: a camera, the frame's delta time, an input
// snapshot, physics constants. Resources are keyed by their Go type and share
// the component borrow discipline.
type Resources struct {
	slots map[reflect.Type]*resourceSlot
}

type resourceSlot struct {
	value any // always a *T for the keyed type
	flag  int32
}

func newResources() *Resources {
	return &Resources{slots: make(map[reflect.Type]*resourceSlot)}
}

// Len returns the number of stored resources.
func (r *Resources) Len() int {
	return len(r.slots)
}

// Clear drops every resource. Part of Ecs teardown; clearing while a
// resource is borrowed panics.
func (r *Resources) Clear() {
	for t, slot := range r.slots {
		if slot.flag != 0 {
			panic(fmt.Sprintf("tuber: resource %s is still borrowed", t))
		}
	}
	r.slots = make(map[reflect.Type]*resourceSlot)
}

// InsertResource stores the singleton value of type T. Storing a second value
// of the same type is a programming error and panics.
func InsertResource[T any](e *Ecs, value T) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	if _, ok := e.resources.slots[t]; ok {
		panic(fmt.Sprintf("tuber: resource %s already present", t))
	}
	e.resources.slots[t] = &resourceSlot{value: &value}
}

// HasResource reports whether a resource of type T is stored.
func HasResource[T any](e *Ecs) bool {
	_, ok := e.resources.slots[reflect.TypeOf((*T)(nil)).Elem()]
	return ok
}

// Resource takes a shared borrow of the resource of type T. A missing
// resource is treated as a programming error and panics; release the borrow
// with Done.
func Resource[T any](e *Ecs) Ref[T] {
	slot := mustResourceSlot[T](e)
	return sharedRef(slot.value.(*T), &slot.flag)
}

// ResourceMut takes an exclusive borrow of the resource of type T, for
// mutation. Panics if the resource is missing or otherwise borrowed.
func ResourceMut[T any](e *Ecs) RefMut[T] {
	slot := mustResourceSlot[T](e)
	return exclusiveRef(slot.value.(*T), &slot.flag)
}

// RemoveResource drops the resource of type T, returning whether it existed.
// Removing a borrowed resource panics.
func RemoveResource[T any](e *Ecs) bool {
	t := reflect.TypeOf((*T)(nil)).Elem()
	slot, ok := e.resources.slots[t]
	if !ok {
		return false
	}
	if slot.flag != 0 {
		panic(fmt.Sprintf("tuber: resource %s is still borrowed", t))
	}
	delete(e.resources.slots, t)
	return true
}

func mustResourceSlot[T any](e *Ecs) *resourceSlot {
	t := reflect.TypeOf((*T)(nil)).Elem()
	slot, ok := e.resources.slots[t]
	if !ok {
		panic(fmt.Sprintf("tuber: resource %s not present", t))
	}
	return slot
}
