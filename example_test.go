package tuber_test

import (
	"fmt"

	"github.com/tuber-engine/tuber"
)

func Example() {
	type Pos struct{ X, Y float32 }
	type Vel struct{ X, Y float32 }

	ecs := tuber.NewEcs()
	ecs.Insert(
		tuber.Bundle2[Pos, Vel]{A: Pos{X: 0, Y: 0}, B: Vel{X: 1, Y: 2}},
		tuber.Bundle2[Pos, Vel]{A: Pos{X: 10, Y: 10}, B: Vel{X: -1, Y: 0}},
	)

	systems := tuber.NewSystemBundle()
	systems.AddSystem(func(e *tuber.Ecs) {
		q := tuber.NewQuery2[Pos, Vel](e, tuber.Write, tuber.Read)
		for q.Next() {
			pos, vel := q.Get()
			pos.X += vel.X
			pos.Y += vel.Y
		}
	})

	systems.Step(ecs)

	q := tuber.NewQuery2[Pos, Vel](ecs, tuber.Read, tuber.Read)
	for q.Next() {
		pos, _ := q.Get()
		fmt.Printf("entity %d at (%g, %g)\n", q.Entity(), pos.X, pos.Y)
	}
	// Output:
	// entity 1 at (1, 2)
	// entity 2 at (9, 10)
}
