package tuber

import "errors"

// Lookup failures on valid input are returned as errors; violations of
// internal invariants (absent data past a presence check, conflicting
// borrows) panic instead.
var (
	// ErrArchetypeNotFound is returned when no archetype exists for the
	// requested component set, i.e. no bundle with that signature was ever
	// inserted.
	ErrArchetypeNotFound = errors.New("tuber: no archetype matches the requested component set")

	// ErrEntityNotFound is returned when an entity has no row in the
	// archetype matching the requested component set.
	ErrEntityNotFound = errors.New("tuber: entity not stored in the matching archetype")
)
