package tuber

import "fmt"

// Access is a capability request for one query position: Read takes shared
// borrows of the matched values, Write exclusive ones.
type Access uint8

const (
	Read Access = iota
	Write
)

// queryState is the untyped machinery shared by every query arity: matching
// archetypes are resolved once against the requested component set, then
// walked row by row, with per-row borrow bookkeeping driven by the access
// modes. The typed Query1..Query6 wrappers add the component pointers.
type queryState struct {
	ecs      *Ecs
	ids      []ComponentID
	modes    []Access
	include  signature
	matched  []*archetype
	seenVer  uint32
	cur      *archetype
	cols     []int
	matchIdx int
	row      int
	held     []*int32
}

func newQueryState(e *Ecs, ids []ComponentID, modes []Access) *queryState {
	requireDistinct(ids...)
	q := &queryState{
		ecs:     e,
		ids:     ids,
		modes:   modes,
		include: makeSignature(ids),
		cols:    make([]int, len(ids)),
		held:    make([]*int32, len(ids)),
		row:     -1,
	}
	q.updateMatching()
	return q
}

// updateMatching recomputes the archetypes whose signature contains every
// requested type. Front-loaded: iteration afterwards does no per-row
// signature tests.
func (q *queryState) updateMatching() {
	q.matched = q.matched[:0]
	for _, a := range q.ecs.archetypeList {
		if a.sig.containsAll(q.include) {
			q.matched = append(q.matched, a)
		}
	}
	q.seenVer = q.ecs.archetypeVer
}

func (q *queryState) stale() bool {
	return q.seenVer != q.ecs.archetypeVer
}

// reset rewinds the iteration, releasing any live borrows and picking up
// archetypes created since the last resolution.
func (q *queryState) reset() {
	q.releaseRow()
	if q.stale() {
		q.updateMatching()
	}
	q.matchIdx = 0
	q.row = -1
	q.cur = nil
}

// next releases the previous row's borrows, advances to the next matching
// row and acquires its borrows. Returns false when the walk is exhausted.
func (q *queryState) next() bool {
	q.releaseRow()
	q.row++
	for q.cur == nil || q.row >= q.cur.used {
		if q.matchIdx >= len(q.matched) {
			q.cur = nil
			return false
		}
		a := q.matched[q.matchIdx]
		q.matchIdx++
		if a.used == 0 {
			continue
		}
		q.setArchetype(a)
		q.row = 0
	}
	q.acquireRow()
	return true
}

func (q *queryState) setArchetype(a *archetype) {
	q.cur = a
	for i, id := range q.ids {
		q.cols[i] = a.slot(id)
	}
}

func (q *queryState) acquireRow() {
	for i := range q.ids {
		if q.cols[i] < 0 {
			panic(fmt.Sprintf("tuber: entity %d lacks component %s",
				q.cur.entities[q.row], metadataOf(q.ids[i]).typ))
		}
		flag := q.cur.borrowFlag(q.cols[i], q.row)
		if q.modes[i] == Write {
			acquireExclusive(flag)
		} else {
			acquireShared(flag)
		}
		q.held[i] = flag
	}
}

func (q *queryState) releaseRow() {
	for i, flag := range q.held {
		if flag == nil {
			continue
		}
		if q.modes[i] == Write {
			releaseExclusive(flag)
		} else {
			releaseShared(flag)
		}
		q.held[i] = nil
	}
}

func (q *queryState) entity() Entity {
	return q.cur.entities[q.row]
}

// first scans entity ids in ascending order, testing every requested type's
// presence bit, and positions the query at the first full match.
func (q *queryState) first() (Entity, bool) {
	q.releaseRow()
	limit := Entity(presenceUniverse)
	if q.ecs.nextEntity < limit {
		limit = q.ecs.nextEntity
	}
	for ent := Entity(1); ent < limit; ent++ {
		hit := true
		for _, id := range q.ids {
			bs := q.ecs.presence[id]
			if bs == nil || !bs.Bit(int(ent)) {
				hit = false
				break
			}
		}
		if hit {
			q.position(ent)
			return ent, true
		}
	}
	return NoEntity, false
}

// at positions the query at an entity without any presence test. The caller
// guarantees the entity carries every requested type; a missing component
// panics at fetch time.
func (q *queryState) at(ent Entity) {
	q.releaseRow()
	q.position(ent)
}

func (q *queryState) position(ent Entity) {
	loc, ok := q.ecs.locations[ent]
	if !ok {
		panic(fmt.Sprintf("tuber: entity %d has no stored components", ent))
	}
	q.setArchetype(loc.arch)
	q.row = loc.row
	q.acquireRow()
}

// matchingEntities materializes the ids of all entities carrying every
// requested type, by intersecting the presence bitsets.
func (q *queryState) matchingEntities() []Entity {
	return q.ecs.matchingIDs(q.ids)
}

// removeMatching deletes every matching entity and returns how many.
func (q *queryState) removeMatching() int {
	q.releaseRow()
	matched := q.ecs.matchingIDs(q.ids)
	for _, ent := range matched {
		q.ecs.Remove(ent)
	}
	q.reset()
	return len(matched)
}

// close releases the current row's borrows; required when abandoning an
// iteration before next returns false.
func (q *queryState) close() {
	q.releaseRow()
}

// Query1 iterates all entities carrying component A, yielding a borrowed
// pointer per entity under the requested access mode.
type Query1[A any] struct {
	state *queryState
}

// NewQuery1 builds a query over entities having at least component A.
func NewQuery1[A any](e *Ecs, modeA Access) *Query1[A] {
	ids := []ComponentID{RegisterComponent[A]()}
	return &Query1[A]{state: newQueryState(e, ids, []Access{modeA})}
}

// Next advances to the next matching entity, releasing the previous row's
// borrows and acquiring the next row's. Must be called before Get or Entity.
func (q *Query1[A]) Next() bool { return q.state.next() }

// Reset rewinds the query for reiteration, picking up new archetypes.
func (q *Query1[A]) Reset() { q.state.reset() }

// Close releases the current borrows; call it when breaking out early.
func (q *Query1[A]) Close() { q.state.close() }

// Entity returns the current entity. Valid after Next returned true.
func (q *Query1[A]) Entity() Entity { return q.state.entity() }

// Get returns the component pointer for the current entity.
func (q *Query1[A]) Get() *A {
	return componentAt[A](q.state.cur, q.state.cols[0], q.state.row)
}

// First positions the query at the lowest-id matching entity, if any.
func (q *Query1[A]) First() (Entity, bool) { return q.state.first() }

// At positions the query at an entity with no presence test; the entity must
// carry every requested component or fetching panics.
func (q *Query1[A]) At(ent Entity) { q.state.at(ent) }

// MatchingEntities returns the ids of all entities carrying A.
func (q *Query1[A]) MatchingEntities() []Entity { return q.state.matchingEntities() }

// RemoveMatching deletes every matching entity and returns how many.
func (q *Query1[A]) RemoveMatching() int { return q.state.removeMatching() }
