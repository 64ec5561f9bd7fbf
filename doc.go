/*
Package tuber provides an archetype-based Entity-Component-System (ECS)
storage engine for real-time simulations.

Entities are opaque integer ids. Components are plain value types attached to
entities. All entities sharing the same set of component types live in one
archetype, which stores their data column-major in a single contiguous,
manually managed buffer for cache-friendly iteration.

Basic usage:

	type Position struct{ X, Y float32 }
	type Velocity struct{ X, Y float32 }

	ecs := tuber.NewEcs()
	ecs.InsertOne(tuber.Bundle2[Position, Velocity]{
		A: Position{X: 2, Y: 1},
		B: Velocity{X: 1.5, Y: 2.6},
	})

	q := tuber.NewQuery2[Position, Velocity](ecs, tuber.Write, tuber.Read)
	for q.Next() {
		pos, vel := q.Get()
		pos.X += vel.X
		pos.Y += vel.Y
	}

Access to stored values is checked at runtime: reading takes a shared borrow,
writing an exclusive one, and overlapping conflicting borrows of the same
value panic. The engine is single-threaded; systems run one after another via
a SystemBundle, each with exclusive access to the Ecs.
*/
package tuber
