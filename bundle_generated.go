package tuber

// Bundle2 bundles 2 component values of distinct types.
type Bundle2[A any, B any] struct {
	A A
	B B
}

func (b Bundle2[A, B]) typeIDs() []ComponentID {
	ids := []ComponentID{RegisterComponent[A](), RegisterComponent[B]()}
	requireDistinct(ids...)
	return ids
}

func (b Bundle2[A, B]) metadata() []TypeMetadata {
	return []TypeMetadata{
		metadataOf(RegisterComponent[A]()),
		metadataOf(RegisterComponent[B]()),
	}
}

func (b Bundle2[A, B]) writeInto(a *archetype, row int) {
	writeValue(a, row, &b.A)
	writeValue(a, row, &b.B)
}

// Bundle3 bundles 3 component values of distinct types.
type Bundle3[A any, B any, C any] struct {
	A A
	B B
	C C
}

func (b Bundle3[A, B, C]) typeIDs() []ComponentID {
	ids := []ComponentID{RegisterComponent[A](), RegisterComponent[B](), RegisterComponent[C]()}
	requireDistinct(ids...)
	return ids
}

func (b Bundle3[A, B, C]) metadata() []TypeMetadata {
	return []TypeMetadata{
		metadataOf(RegisterComponent[A]()),
		metadataOf(RegisterComponent[B]()),
		metadataOf(RegisterComponent[C]()),
	}
}

func (b Bundle3[A, B, C]) writeInto(a *archetype, row int) {
	writeValue(a, row, &b.A)
	writeValue(a, row, &b.B)
	writeValue(a, row, &b.C)
}

// Bundle4 bundles 4 component values of distinct types.
type Bundle4[A any, B any, C any, D any] struct {
	A A
	B B
	C C
	D D
}

func (b Bundle4[A, B, C, D]) typeIDs() []ComponentID {
	ids := []ComponentID{
		RegisterComponent[A](), RegisterComponent[B](),
		RegisterComponent[C](), RegisterComponent[D](),
	}
	requireDistinct(ids...)
	return ids
}

func (b Bundle4[A, B, C, D]) metadata() []TypeMetadata {
	return []TypeMetadata{
		metadataOf(RegisterComponent[A]()),
		metadataOf(RegisterComponent[B]()),
		metadataOf(RegisterComponent[C]()),
		metadataOf(RegisterComponent[D]()),
	}
}

func (b Bundle4[A, B, C, D]) writeInto(a *archetype, row int) {
	writeValue(a, row, &b.A)
	writeValue(a, row, &b.B)
	writeValue(a, row, &b.C)
	writeValue(a, row, &b.D)
}

// Bundle5 bundles 5 component values of distinct types.
type Bundle5[A any, B any, C any, D any, E any] struct {
	A A
	B B
	C C
	D D
	E E
}

func (b Bundle5[A, B, C, D, E]) typeIDs() []ComponentID {
	ids := []ComponentID{
		RegisterComponent[A](), RegisterComponent[B](), RegisterComponent[C](),
		RegisterComponent[D](), RegisterComponent[E](),
	}
	requireDistinct(ids...)
	return ids
}

func (b Bundle5[A, B, C, D, E]) metadata() []TypeMetadata {
	return []TypeMetadata{
		metadataOf(RegisterComponent[A]()),
		metadataOf(RegisterComponent[B]()),
		metadataOf(RegisterComponent[C]()),
		metadataOf(RegisterComponent[D]()),
		metadataOf(RegisterComponent[E]()),
	}
}

func (b Bundle5[A, B, C, D, E]) writeInto(a *archetype, row int) {
	writeValue(a, row, &b.A)
	writeValue(a, row, &b.B)
	writeValue(a, row, &b.C)
	writeValue(a, row, &b.D)
	writeValue(a, row, &b.E)
}

// Bundle6 bundles 6 component values of distinct types.
type Bundle6[A any, B any, C any, D any, E any, F any] struct {
	A A
	B B
	C C
	D D
	E E
	F F
}

func (b Bundle6[A, B, C, D, E, F]) typeIDs() []ComponentID {
	ids := []ComponentID{
		RegisterComponent[A](), RegisterComponent[B](), RegisterComponent[C](),
		RegisterComponent[D](), RegisterComponent[E](), RegisterComponent[F](),
	}
	requireDistinct(ids...)
	return ids
}

func (b Bundle6[A, B, C, D, E, F]) metadata() []TypeMetadata {
	return []TypeMetadata{
		metadataOf(RegisterComponent[A]()),
		metadataOf(RegisterComponent[B]()),
		metadataOf(RegisterComponent[C]()),
		metadataOf(RegisterComponent[D]()),
		metadataOf(RegisterComponent[E]()),
		metadataOf(RegisterComponent[F]()),
	}
}

func (b Bundle6[A, B, C, D, E, F]) writeInto(a *archetype, row int) {
	writeValue(a, row, &b.A)
	writeValue(a, row, &b.B)
	writeValue(a, row, &b.C)
	writeValue(a, row, &b.D)
	writeValue(a, row, &b.E)
	writeValue(a, row, &b.F)
}

// GetEntity2 reads back an entity whose signature is exactly {A, B}.
func GetEntity2[A any, B any](e *Ecs, ent Entity) (Ref[A], Ref[B], error) {
	idA, idB := RegisterComponent[A](), RegisterComponent[B]()
	arch, row, err := entityRow(e, ent, idA, idB)
	if err != nil {
		return Ref[A]{}, Ref[B]{}, err
	}
	return sharedAt[A](arch, idA, row), sharedAt[B](arch, idB, row), nil
}

// GetEntityMut2 is GetEntity2 with exclusive borrows, for mutation.
func GetEntityMut2[A any, B any](e *Ecs, ent Entity) (RefMut[A], RefMut[B], error) {
	idA, idB := RegisterComponent[A](), RegisterComponent[B]()
	arch, row, err := entityRow(e, ent, idA, idB)
	if err != nil {
		return RefMut[A]{}, RefMut[B]{}, err
	}
	return exclusiveAt[A](arch, idA, row), exclusiveAt[B](arch, idB, row), nil
}

// GetEntity3 reads back an entity whose signature is exactly {A, B, C}.
func GetEntity3[A any, B any, C any](e *Ecs, ent Entity) (Ref[A], Ref[B], Ref[C], error) {
	idA, idB, idC := RegisterComponent[A](), RegisterComponent[B](), RegisterComponent[C]()
	arch, row, err := entityRow(e, ent, idA, idB, idC)
	if err != nil {
		return Ref[A]{}, Ref[B]{}, Ref[C]{}, err
	}
	return sharedAt[A](arch, idA, row), sharedAt[B](arch, idB, row), sharedAt[C](arch, idC, row), nil
}

// GetEntityMut3 is GetEntity3 with exclusive borrows, for mutation.
func GetEntityMut3[A any, B any, C any](e *Ecs, ent Entity) (RefMut[A], RefMut[B], RefMut[C], error) {
	idA, idB, idC := RegisterComponent[A](), RegisterComponent[B](), RegisterComponent[C]()
	arch, row, err := entityRow(e, ent, idA, idB, idC)
	if err != nil {
		return RefMut[A]{}, RefMut[B]{}, RefMut[C]{}, err
	}
	return exclusiveAt[A](arch, idA, row), exclusiveAt[B](arch, idB, row), exclusiveAt[C](arch, idC, row), nil
}

// GetEntity4 reads back an entity whose signature is exactly {A, B, C, D}.
func GetEntity4[A any, B any, C any, D any](e *Ecs, ent Entity) (Ref[A], Ref[B], Ref[C], Ref[D], error) {
	idA, idB := RegisterComponent[A](), RegisterComponent[B]()
	idC, idD := RegisterComponent[C](), RegisterComponent[D]()
	arch, row, err := entityRow(e, ent, idA, idB, idC, idD)
	if err != nil {
		return Ref[A]{}, Ref[B]{}, Ref[C]{}, Ref[D]{}, err
	}
	return sharedAt[A](arch, idA, row), sharedAt[B](arch, idB, row),
		sharedAt[C](arch, idC, row), sharedAt[D](arch, idD, row), nil
}

// GetEntityMut4 is GetEntity4 with exclusive borrows, for mutation.
func GetEntityMut4[A any, B any, C any, D any](e *Ecs, ent Entity) (RefMut[A], RefMut[B], RefMut[C], RefMut[D], error) {
	idA, idB := RegisterComponent[A](), RegisterComponent[B]()
	idC, idD := RegisterComponent[C](), RegisterComponent[D]()
	arch, row, err := entityRow(e, ent, idA, idB, idC, idD)
	if err != nil {
		return RefMut[A]{}, RefMut[B]{}, RefMut[C]{}, RefMut[D]{}, err
	}
	return exclusiveAt[A](arch, idA, row), exclusiveAt[B](arch, idB, row),
		exclusiveAt[C](arch, idC, row), exclusiveAt[D](arch, idD, row), nil
}

// GetEntity5 reads back an entity whose signature is exactly {A, B, C, D, E}.
func GetEntity5[A any, B any, C any, D any, E any](e *Ecs, ent Entity) (Ref[A], Ref[B], Ref[C], Ref[D], Ref[E], error) {
	idA, idB := RegisterComponent[A](), RegisterComponent[B]()
	idC, idD := RegisterComponent[C](), RegisterComponent[D]()
	idE := RegisterComponent[E]()
	arch, row, err := entityRow(e, ent, idA, idB, idC, idD, idE)
	if err != nil {
		return Ref[A]{}, Ref[B]{}, Ref[C]{}, Ref[D]{}, Ref[E]{}, err
	}
	return sharedAt[A](arch, idA, row), sharedAt[B](arch, idB, row),
		sharedAt[C](arch, idC, row), sharedAt[D](arch, idD, row),
		sharedAt[E](arch, idE, row), nil
}

// GetEntityMut5 is GetEntity5 with exclusive borrows, for mutation.
func GetEntityMut5[A any, B any, C any, D any, E any](e *Ecs, ent Entity) (RefMut[A], RefMut[B], RefMut[C], RefMut[D], RefMut[E], error) {
	idA, idB := RegisterComponent[A](), RegisterComponent[B]()
	idC, idD := RegisterComponent[C](), RegisterComponent[D]()
	idE := RegisterComponent[E]()
	arch, row, err := entityRow(e, ent, idA, idB, idC, idD, idE)
	if err != nil {
		return RefMut[A]{}, RefMut[B]{}, RefMut[C]{}, RefMut[D]{}, RefMut[E]{}, err
	}
	return exclusiveAt[A](arch, idA, row), exclusiveAt[B](arch, idB, row),
		exclusiveAt[C](arch, idC, row), exclusiveAt[D](arch, idD, row),
		exclusiveAt[E](arch, idE, row), nil
}

// GetEntity6 reads back an entity whose signature is exactly {A, B, C, D, E, F}.
func GetEntity6[A any, B any, C any, D any, E any, F any](e *Ecs, ent Entity) (Ref[A], Ref[B], Ref[C], Ref[D], Ref[E], Ref[F], error) {
	idA, idB := RegisterComponent[A](), RegisterComponent[B]()
	idC, idD := RegisterComponent[C](), RegisterComponent[D]()
	idE, idF := RegisterComponent[E](), RegisterComponent[F]()
	arch, row, err := entityRow(e, ent, idA, idB, idC, idD, idE, idF)
	if err != nil {
		return Ref[A]{}, Ref[B]{}, Ref[C]{}, Ref[D]{}, Ref[E]{}, Ref[F]{}, err
	}
	return sharedAt[A](arch, idA, row), sharedAt[B](arch, idB, row),
		sharedAt[C](arch, idC, row), sharedAt[D](arch, idD, row),
		sharedAt[E](arch, idE, row), sharedAt[F](arch, idF, row), nil
}

// GetEntityMut6 is GetEntity6 with exclusive borrows, for mutation.
func GetEntityMut6[A any, B any, C any, D any, E any, F any](e *Ecs, ent Entity) (RefMut[A], RefMut[B], RefMut[C], RefMut[D], RefMut[E], RefMut[F], error) {
	idA, idB := RegisterComponent[A](), RegisterComponent[B]()
	idC, idD := RegisterComponent[C](), RegisterComponent[D]()
	idE, idF := RegisterComponent[E](), RegisterComponent[F]()
	arch, row, err := entityRow(e, ent, idA, idB, idC, idD, idE, idF)
	if err != nil {
		return RefMut[A]{}, RefMut[B]{}, RefMut[C]{}, RefMut[D]{}, RefMut[E]{}, RefMut[F]{}, err
	}
	return exclusiveAt[A](arch, idA, row), exclusiveAt[B](arch, idB, row),
		exclusiveAt[C](arch, idC, row), exclusiveAt[D](arch, idD, row),
		exclusiveAt[E](arch, idE, row), exclusiveAt[F](arch, idF, row), nil
}
