// Profiling:
// go build ./profile/entities
// go tool pprof -http=":8000" -nodefraction=0.001 ./entities mem.pprof

package main

import (
	"github.com/pkg/profile"
	"github.com/tuber-engine/tuber"
)

type comp1 struct {
	V int64
	W int64
}

type comp2 struct {
	V int64
	W int64
}

func main() {
	rounds := 50
	frames := 100
	entities := 1000
	p := profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	run(rounds, frames, entities)
	p.Stop()
}

func run(rounds, frames, numEntities int) {
	for r := 0; r < rounds; r++ {
		tuber.ResetGlobalRegistry()
		ecs := tuber.NewEcs()

		for f := 0; f < frames; f++ {
			for i := 0; i < numEntities; i++ {
				ecs.InsertOne(tuber.Bundle2[comp1, comp2]{
					A: comp1{V: int64(i)},
					B: comp2{V: 1, W: 2},
				})
			}

			ids := []tuber.Entity{}
			q := tuber.NewQuery2[comp1, comp2](ecs, tuber.Write, tuber.Read)
			for q.Next() {
				ids = append(ids, q.Entity())
				c1, c2 := q.Get()
				c1.V += c2.V
				c1.W += c2.W
			}
			q.Close()

			for _, e := range ids {
				ecs.Remove(e)
			}
		}
	}
}
