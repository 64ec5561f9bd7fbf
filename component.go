package tuber

import (
	"fmt"
	"reflect"
)

// ComponentID is the process-wide unique identity of a component type.
type ComponentID uint8

const (
	bitsPerWord       = 64
	maskWords         = 4
	maxComponentTypes = maskWords * bitsPerWord

	// presenceUniverse is the number of entity slots tracked by the
	// per-component presence bitsets. Entities with ids at or beyond this
	// limit are out of contract for presence-based queries.
	presenceUniverse = 65536
)

// TypeMetadata describes a component type to the storage layer: its byte
// size, its alignment and its unique runtime identity. The engine needs
// nothing else; component semantics are entirely the caller's business.
type TypeMetadata struct {
	typ   reflect.Type
	size  uintptr
	align uintptr
	id    ComponentID
}

// ID returns the component identity the metadata describes.
func (m TypeMetadata) ID() ComponentID { return m.id }

// Size returns the component's byte size.
func (m TypeMetadata) Size() uintptr { return m.size }

// Align returns the component's alignment requirement.
func (m TypeMetadata) Align() uintptr { return m.align }

var (
	nextComponentID uint16
	typeToID        map[reflect.Type]ComponentID
	registryMeta    [maxComponentTypes]TypeMetadata
)

func init() {
	typeToID = make(map[reflect.Type]ComponentID, maxComponentTypes)
}

// ResetGlobalRegistry clears the component registry. It exists for tests and
// for applications that rebuild their whole ECS state; live Ecs values must
// not be used across a reset.
func ResetGlobalRegistry() {
	nextComponentID = 0
	typeToID = make(map[reflect.Type]ComponentID, maxComponentTypes)
	registryMeta = [maxComponentTypes]TypeMetadata{}
}

// RegisterComponent registers T as a component type and returns its id. It is
// idempotent: registering an already known type returns the existing id. It
// panics once the fixed id space is exhausted.
func RegisterComponent[T any]() ComponentID {
	var zero T
	t := reflect.TypeOf(zero)
	if id, ok := typeToID[t]; ok {
		return id
	}
	if int(nextComponentID) >= maxComponentTypes {
		panic(fmt.Sprintf("tuber: cannot register component %s: maximum number of component types (%d) reached", t, maxComponentTypes))
	}
	id := ComponentID(nextComponentID)
	typeToID[t] = id
	registryMeta[id] = TypeMetadata{
		typ:   t,
		size:  t.Size(),
		align: uintptr(t.Align()),
		id:    id,
	}
	nextComponentID++
	return id
}

// GetID returns the id of a registered component type. It panics if T was
// never registered.
func GetID[T any]() ComponentID {
	var zero T
	t := reflect.TypeOf(zero)
	id, ok := typeToID[t]
	if !ok {
		panic(fmt.Sprintf("tuber: component type %s not registered", t))
	}
	return id
}

// TryGetID returns the id of T and whether T has been registered.
func TryGetID[T any]() (ComponentID, bool) {
	var zero T
	id, ok := typeToID[reflect.TypeOf(zero)]
	return id, ok
}

// Metadata returns the metadata recorded for a registered component type.
func Metadata[T any]() TypeMetadata {
	return registryMeta[GetID[T]()]
}

func metadataOf(id ComponentID) TypeMetadata {
	return registryMeta[id]
}
