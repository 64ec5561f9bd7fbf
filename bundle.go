package tuber

import "unsafe"

// Bundle is the bridge between a concrete, statically typed tuple of
// component values and the type-erased archetype storage. It is the only
// layer allowed to pair a column index with a Go type, which makes it the
// safety boundary for every unsafe reinterpret underneath.
//
// Bundles exist for one to six component types (Bundle1 through Bundle6);
// larger tuples require extending the family.
type Bundle interface {
	// typeIDs returns one id per tuple element, in declaration order.
	// The component SET they form is the bundle's signature.
	typeIDs() []ComponentID
	// metadata describes each tuple element; it is consulted only when the
	// archetype for the signature does not exist yet.
	metadata() []TypeMetadata
	// writeInto copies every tuple element into its column at the row.
	writeInto(a *archetype, row int)
}

// writeValue copies one component value into its column slot for the row.
func writeValue[T any](a *archetype, row int, v *T) {
	id := RegisterComponent[T]()
	a.writeComponent(a.slot(id), row, metadataOf(id).size, unsafe.Pointer(v))
}

// requireDistinct panics when a bundle or query lists the same component type
// twice; one entity owns at most one value per type.
func requireDistinct(ids ...ComponentID) {
	for i := 1; i < len(ids); i++ {
		for j := 0; j < i; j++ {
			if ids[i] == ids[j] {
				panic("tuber: duplicate component types in bundle")
			}
		}
	}
}

// Bundle1 bundles a single component value.
type Bundle1[A any] struct {
	A A
}

func (b Bundle1[A]) typeIDs() []ComponentID {
	return []ComponentID{RegisterComponent[A]()}
}

func (b Bundle1[A]) metadata() []TypeMetadata {
	return []TypeMetadata{metadataOf(RegisterComponent[A]())}
}

func (b Bundle1[A]) writeInto(a *archetype, row int) {
	writeValue(a, row, &b.A)
}

// entityRow resolves the archetype for a component set and the entity's row
// within it. Both misses are recoverable lookup failures.
func entityRow(e *Ecs, ent Entity, ids ...ComponentID) (*archetype, int, error) {
	arch, err := e.archetypeFor(ids...)
	if err != nil {
		return nil, 0, err
	}
	row, ok := arch.rowOf(ent)
	if !ok {
		return nil, 0, ErrEntityNotFound
	}
	return arch, row, nil
}

// sharedAt takes a shared borrow of the typed slot at (id, row).
func sharedAt[T any](a *archetype, id ComponentID, row int) Ref[T] {
	col := a.slot(id)
	return sharedRef(componentAt[T](a, col, row), a.borrowFlag(col, row))
}

// exclusiveAt takes an exclusive borrow of the typed slot at (id, row).
func exclusiveAt[T any](a *archetype, id ComponentID, row int) RefMut[T] {
	col := a.slot(id)
	return exclusiveRef(componentAt[T](a, col, row), a.borrowFlag(col, row))
}

// GetEntity1 reads back the components of an entity whose signature is
// exactly {A}. It returns ErrArchetypeNotFound when no such bundle was ever
// inserted and ErrEntityNotFound when the entity does not live in that
// archetype. The returned borrow must be released with Done.
func GetEntity1[A any](e *Ecs, ent Entity) (Ref[A], error) {
	idA := RegisterComponent[A]()
	arch, row, err := entityRow(e, ent, idA)
	if err != nil {
		return Ref[A]{}, err
	}
	return sharedAt[A](arch, idA, row), nil
}

// GetEntityMut1 is GetEntity1 with an exclusive borrow, for mutation.
func GetEntityMut1[A any](e *Ecs, ent Entity) (RefMut[A], error) {
	idA := RegisterComponent[A]()
	arch, row, err := entityRow(e, ent, idA)
	if err != nil {
		return RefMut[A]{}, err
	}
	return exclusiveAt[A](arch, idA, row), nil
}
