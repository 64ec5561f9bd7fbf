package tuber

// System is one per-tick unit of work. It receives exclusive access to the
// whole Ecs for its duration.
type System func(*Ecs)

// SystemBundle is an ordered list of systems run once per tick. There is no
// isolation between systems within a step: mutations made by one are visible
// to every later one.
type SystemBundle struct {
	systems []System
}

// NewSystemBundle returns an empty bundle.
func NewSystemBundle() *SystemBundle {
	return &SystemBundle{}
}

// AddSystem appends a system; Step runs systems in registration order.
func (sb *SystemBundle) AddSystem(s System) {
	sb.systems = append(sb.systems, s)
}

// Len returns the number of registered systems.
func (sb *SystemBundle) Len() int {
	return len(sb.systems)
}

// Step invokes every system once, synchronously, in registration order.
func (sb *SystemBundle) Step(e *Ecs) {
	for _, s := range sb.systems {
		s(e)
	}
}
