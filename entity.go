package tuber

// Entity is the opaque identifier of one stored entity. Ids are assigned
// monotonically starting at 1 and are never reused within an Ecs.
type Entity uint64

// NoEntity is the reserved zero id; it never identifies a stored entity.
const NoEntity Entity = 0

// entityLocation records the physical position of an entity's data: the
// archetype holding it and its row within that archetype's columns.
type entityLocation struct {
	arch *archetype
	row  int
}
