package tuber

import "fmt"

// Borrow discipline is enforced at runtime, not compile time: every stored
// value (component slot or resource) carries an int32 flag that is 0 when
// free, n > 0 while n shared borrows are live and -1 while an exclusive
// borrow is live. Conflicting access is a programming error and panics.

const borrowExclusive = -1

func acquireShared(flag *int32) {
	if *flag < 0 {
		panic("tuber: value is already exclusively borrowed")
	}
	*flag++
}

func acquireExclusive(flag *int32) {
	if *flag != 0 {
		panic("tuber: value is already borrowed")
	}
	*flag = borrowExclusive
}

func releaseShared(flag *int32) {
	if *flag <= 0 {
		panic(fmt.Sprintf("tuber: unbalanced shared borrow release (flag %d)", *flag))
	}
	*flag--
}

func releaseExclusive(flag *int32) {
	if *flag != borrowExclusive {
		panic(fmt.Sprintf("tuber: unbalanced exclusive borrow release (flag %d)", *flag))
	}
	*flag = 0
}

// Ref is a shared borrow of a stored value. Call Done exactly once when the
// reference is no longer needed; until then, exclusive access to the same
// value panics.
type Ref[T any] struct {
	ptr  *T
	flag *int32
}

// Get returns the borrowed value. The pointer must not outlive Done.
func (r Ref[T]) Get() *T { return r.ptr }

// Done releases the shared borrow.
func (r Ref[T]) Done() { releaseShared(r.flag) }

// RefMut is an exclusive borrow of a stored value. Call Done exactly once;
// until then, any other access to the same value panics.
type RefMut[T any] struct {
	ptr  *T
	flag *int32
}

// Get returns the borrowed value for reading or writing. The pointer must not
// outlive Done.
func (r RefMut[T]) Get() *T { return r.ptr }

// Done releases the exclusive borrow.
func (r RefMut[T]) Done() { releaseExclusive(r.flag) }

func sharedRef[T any](ptr *T, flag *int32) Ref[T] {
	acquireShared(flag)
	return Ref[T]{ptr: ptr, flag: flag}
}

func exclusiveRef[T any](ptr *T, flag *int32) RefMut[T] {
	acquireExclusive(flag)
	return RefMut[T]{ptr: ptr, flag: flag}
}
