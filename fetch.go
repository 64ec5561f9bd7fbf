package tuber

// ComponentIter is a lazy, finite, single-pass iterator over every stored
// value of one component type. It concatenates the matching column of every
// archetype whose signature contains the type; the order across archetypes is
// unspecified. Each yielded value is borrow-guarded until the next call to
// Next or Close.
type ComponentIter[T any] struct {
	ecs       *Ecs
	id        ComponentID
	known     bool
	exclusive bool
	cur       *archetype
	col       int
	archIdx   int
	row       int
	held      *int32
}

// Fetch iterates every stored T with shared borrows.
func Fetch[T any](e *Ecs) *ComponentIter[T] {
	return newComponentIter[T](e, false)
}

// FetchMut iterates every stored T with exclusive borrows, for mutation.
func FetchMut[T any](e *Ecs) *ComponentIter[T] {
	return newComponentIter[T](e, true)
}

func newComponentIter[T any](e *Ecs, exclusive bool) *ComponentIter[T] {
	id, known := TryGetID[T]()
	return &ComponentIter[T]{
		ecs:       e,
		id:        id,
		known:     known,
		exclusive: exclusive,
		row:       -1,
	}
}

// Next advances to the next stored value, releasing the previous borrow.
// Must be called before Get or Entity. A type never inserted yields nothing.
func (it *ComponentIter[T]) Next() bool {
	it.release()
	if !it.known {
		return false
	}
	it.row++
	for it.cur == nil || it.row >= it.cur.used {
		if it.archIdx >= len(it.ecs.archetypeList) {
			it.cur = nil
			return false
		}
		a := it.ecs.archetypeList[it.archIdx]
		it.archIdx++
		if !a.sig.has(it.id) || a.used == 0 {
			continue
		}
		it.cur = a
		it.col = a.slot(it.id)
		it.row = 0
	}
	it.acquire()
	return true
}

// Get returns the current value. Valid after Next returned true.
func (it *ComponentIter[T]) Get() *T {
	return componentAt[T](it.cur, it.col, it.row)
}

// Entity returns the entity owning the current value.
func (it *ComponentIter[T]) Entity() Entity {
	return it.cur.entities[it.row]
}

// Close releases the current borrow; call it when breaking out early.
func (it *ComponentIter[T]) Close() {
	it.release()
}

func (it *ComponentIter[T]) acquire() {
	flag := it.cur.borrowFlag(it.col, it.row)
	if it.exclusive {
		acquireExclusive(flag)
	} else {
		acquireShared(flag)
	}
	it.held = flag
}

func (it *ComponentIter[T]) release() {
	if it.held == nil {
		return
	}
	if it.exclusive {
		releaseExclusive(it.held)
	} else {
		releaseShared(it.held)
	}
	it.held = nil
}
