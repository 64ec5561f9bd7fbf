package tuber

// Query2 iterates all entities carrying components A and B, yielding borrowed
// pointers per entity under the requested access modes.
type Query2[A any, B any] struct {
	state *queryState
}

// NewQuery2 builds a query over entities having at least components A and B.
func NewQuery2[A any, B any](e *Ecs, modeA, modeB Access) *Query2[A, B] {
	ids := []ComponentID{RegisterComponent[A](), RegisterComponent[B]()}
	return &Query2[A, B]{state: newQueryState(e, ids, []Access{modeA, modeB})}
}

// Next advances to the next matching entity. Must be called before Get or
// Entity.
func (q *Query2[A, B]) Next() bool { return q.state.next() }

// Reset rewinds the query for reiteration, picking up new archetypes.
func (q *Query2[A, B]) Reset() { q.state.reset() }

// Close releases the current borrows; call it when breaking out early.
func (q *Query2[A, B]) Close() { q.state.close() }

// Entity returns the current entity. Valid after Next returned true.
func (q *Query2[A, B]) Entity() Entity { return q.state.entity() }

// Get returns the component pointers for the current entity.
func (q *Query2[A, B]) Get() (*A, *B) {
	s := q.state
	return componentAt[A](s.cur, s.cols[0], s.row),
		componentAt[B](s.cur, s.cols[1], s.row)
}

// First positions the query at the lowest-id matching entity, if any.
func (q *Query2[A, B]) First() (Entity, bool) { return q.state.first() }

// At positions the query at an entity with no presence test.
func (q *Query2[A, B]) At(ent Entity) { q.state.at(ent) }

// MatchingEntities returns the ids of all entities carrying A and B.
func (q *Query2[A, B]) MatchingEntities() []Entity { return q.state.matchingEntities() }

// RemoveMatching deletes every matching entity and returns how many.
func (q *Query2[A, B]) RemoveMatching() int { return q.state.removeMatching() }

// Query3 iterates all entities carrying components A, B and C.
type Query3[A any, B any, C any] struct {
	state *queryState
}

// NewQuery3 builds a query over entities having at least components A, B
// and C.
func NewQuery3[A any, B any, C any](e *Ecs, modeA, modeB, modeC Access) *Query3[A, B, C] {
	ids := []ComponentID{RegisterComponent[A](), RegisterComponent[B](), RegisterComponent[C]()}
	return &Query3[A, B, C]{state: newQueryState(e, ids, []Access{modeA, modeB, modeC})}
}

// Next advances to the next matching entity.
func (q *Query3[A, B, C]) Next() bool { return q.state.next() }

// Reset rewinds the query for reiteration.
func (q *Query3[A, B, C]) Reset() { q.state.reset() }

// Close releases the current borrows.
func (q *Query3[A, B, C]) Close() { q.state.close() }

// Entity returns the current entity.
func (q *Query3[A, B, C]) Entity() Entity { return q.state.entity() }

// Get returns the component pointers for the current entity.
func (q *Query3[A, B, C]) Get() (*A, *B, *C) {
	s := q.state
	return componentAt[A](s.cur, s.cols[0], s.row),
		componentAt[B](s.cur, s.cols[1], s.row),
		componentAt[C](s.cur, s.cols[2], s.row)
}

// First positions the query at the lowest-id matching entity, if any.
func (q *Query3[A, B, C]) First() (Entity, bool) { return q.state.first() }

// At positions the query at an entity with no presence test.
func (q *Query3[A, B, C]) At(ent Entity) { q.state.at(ent) }

// MatchingEntities returns the ids of all matching entities.
func (q *Query3[A, B, C]) MatchingEntities() []Entity { return q.state.matchingEntities() }

// RemoveMatching deletes every matching entity and returns how many.
func (q *Query3[A, B, C]) RemoveMatching() int { return q.state.removeMatching() }

// Query4 iterates all entities carrying components A, B, C and D.
type Query4[A any, B any, C any, D any] struct {
	state *queryState
}

// NewQuery4 builds a query over entities having at least components A, B, C
// and D.
func NewQuery4[A any, B any, C any, D any](e *Ecs, modeA, modeB, modeC, modeD Access) *Query4[A, B, C, D] {
	ids := []ComponentID{
		RegisterComponent[A](), RegisterComponent[B](),
		RegisterComponent[C](), RegisterComponent[D](),
	}
	return &Query4[A, B, C, D]{state: newQueryState(e, ids, []Access{modeA, modeB, modeC, modeD})}
}

// Next advances to the next matching entity.
func (q *Query4[A, B, C, D]) Next() bool { return q.state.next() }

// Reset rewinds the query for reiteration.
func (q *Query4[A, B, C, D]) Reset() { q.state.reset() }

// Close releases the current borrows.
func (q *Query4[A, B, C, D]) Close() { q.state.close() }

// Entity returns the current entity.
func (q *Query4[A, B, C, D]) Entity() Entity { return q.state.entity() }

// Get returns the component pointers for the current entity.
func (q *Query4[A, B, C, D]) Get() (*A, *B, *C, *D) {
	s := q.state
	return componentAt[A](s.cur, s.cols[0], s.row),
		componentAt[B](s.cur, s.cols[1], s.row),
		componentAt[C](s.cur, s.cols[2], s.row),
		componentAt[D](s.cur, s.cols[3], s.row)
}

// First positions the query at the lowest-id matching entity, if any.
func (q *Query4[A, B, C, D]) First() (Entity, bool) { return q.state.first() }

// At positions the query at an entity with no presence test.
func (q *Query4[A, B, C, D]) At(ent Entity) { q.state.at(ent) }

// MatchingEntities returns the ids of all matching entities.
func (q *Query4[A, B, C, D]) MatchingEntities() []Entity { return q.state.matchingEntities() }

// RemoveMatching deletes every matching entity and returns how many.
func (q *Query4[A, B, C, D]) RemoveMatching() int { return q.state.removeMatching() }

// Query5 iterates all entities carrying components A, B, C, D and E.
type Query5[A any, B any, C any, D any, E any] struct {
	state *queryState
}

// NewQuery5 builds a query over entities having at least components A, B, C,
// D and E.
func NewQuery5[A any, B any, C any, D any, E any](e *Ecs, modeA, modeB, modeC, modeD, modeE Access) *Query5[A, B, C, D, E] {
	ids := []ComponentID{
		RegisterComponent[A](), RegisterComponent[B](), RegisterComponent[C](),
		RegisterComponent[D](), RegisterComponent[E](),
	}
	return &Query5[A, B, C, D, E]{state: newQueryState(e, ids, []Access{modeA, modeB, modeC, modeD, modeE})}
}

// Next advances to the next matching entity.
func (q *Query5[A, B, C, D, E]) Next() bool { return q.state.next() }

// Reset rewinds the query for reiteration.
func (q *Query5[A, B, C, D, E]) Reset() { q.state.reset() }

// Close releases the current borrows.
func (q *Query5[A, B, C, D, E]) Close() { q.state.close() }

// Entity returns the current entity.
func (q *Query5[A, B, C, D, E]) Entity() Entity { return q.state.entity() }

// Get returns the component pointers for the current entity.
func (q *Query5[A, B, C, D, E]) Get() (*A, *B, *C, *D, *E) {
	s := q.state
	return componentAt[A](s.cur, s.cols[0], s.row),
		componentAt[B](s.cur, s.cols[1], s.row),
		componentAt[C](s.cur, s.cols[2], s.row),
		componentAt[D](s.cur, s.cols[3], s.row),
		componentAt[E](s.cur, s.cols[4], s.row)
}

// First positions the query at the lowest-id matching entity, if any.
func (q *Query5[A, B, C, D, E]) First() (Entity, bool) { return q.state.first() }

// At positions the query at an entity with no presence test.
func (q *Query5[A, B, C, D, E]) At(ent Entity) { q.state.at(ent) }

// MatchingEntities returns the ids of all matching entities.
func (q *Query5[A, B, C, D, E]) MatchingEntities() []Entity { return q.state.matchingEntities() }

// RemoveMatching deletes every matching entity and returns how many.
func (q *Query5[A, B, C, D, E]) RemoveMatching() int { return q.state.removeMatching() }

// Query6 iterates all entities carrying components A, B, C, D, E and F.
type Query6[A any, B any, C any, D any, E any, F any] struct {
	state *queryState
}

// NewQuery6 builds a query over entities having at least components A, B, C,
// D, E and F.
func NewQuery6[A any, B any, C any, D any, E any, F any](e *Ecs, modeA, modeB, modeC, modeD, modeE, modeF Access) *Query6[A, B, C, D, E, F] {
	ids := []ComponentID{
		RegisterComponent[A](), RegisterComponent[B](), RegisterComponent[C](),
		RegisterComponent[D](), RegisterComponent[E](), RegisterComponent[F](),
	}
	return &Query6[A, B, C, D, E, F]{state: newQueryState(e, ids, []Access{modeA, modeB, modeC, modeD, modeE, modeF})}
}

// Next advances to the next matching entity.
func (q *Query6[A, B, C, D, E, F]) Next() bool { return q.state.next() }

// Reset rewinds the query for reiteration.
func (q *Query6[A, B, C, D, E, F]) Reset() { q.state.reset() }

// Close releases the current borrows.
func (q *Query6[A, B, C, D, E, F]) Close() { q.state.close() }

// Entity returns the current entity.
func (q *Query6[A, B, C, D, E, F]) Entity() Entity { return q.state.entity() }

// Get returns the component pointers for the current entity.
func (q *Query6[A, B, C, D, E, F]) Get() (*A, *B, *C, *D, *E, *F) {
	s := q.state
	return componentAt[A](s.cur, s.cols[0], s.row),
		componentAt[B](s.cur, s.cols[1], s.row),
		componentAt[C](s.cur, s.cols[2], s.row),
		componentAt[D](s.cur, s.cols[3], s.row),
		componentAt[E](s.cur, s.cols[4], s.row),
		componentAt[F](s.cur, s.cols[5], s.row)
}

// First positions the query at the lowest-id matching entity, if any.
func (q *Query6[A, B, C, D, E, F]) First() (Entity, bool) { return q.state.first() }

// At positions the query at an entity with no presence test.
func (q *Query6[A, B, C, D, E, F]) At(ent Entity) { q.state.at(ent) }

// MatchingEntities returns the ids of all matching entities.
func (q *Query6[A, B, C, D, E, F]) MatchingEntities() []Entity { return q.state.matchingEntities() }

// RemoveMatching deletes every matching entity and returns how many.
func (q *Query6[A, B, C, D, E, F]) RemoveMatching() int { return q.state.removeMatching() }
