// Profiling:
// go build ./profile/query
// go tool pprof -http=":8000" -nodefraction=0.001 ./query mem.prof

package main

import (
	"os"
	"runtime"
	"runtime/pprof"

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

type comp3 struct {
	V int64
	W int64
}

type comp4 struct {
	V int64
	W int64
}

type comp5 struct {
	V int64
	W int64
}

type comp6 struct {
	V int64
	W int64
}

func main() {
	// CPU Profiling
	f, _ := os.Create("cpu.prof")
	_ = pprof.StartCPUProfile(f)
	defer pprof.StopCPUProfile()

	rounds := 50
	frames := 10000
	entities := 10000
	run(rounds, frames, entities)

	// Memory Profiling
	memFile, _ := os.Create("mem.prof")
	defer memFile.Close()
	runtime.GC() // Trigger garbage collection
	_ = pprof.WriteHeapProfile(memFile)
}

func run(rounds, frames, numEntities int) {
	for r := 0; r < rounds; r++ {
		tuber.ResetGlobalRegistry()
		ecs := tuber.NewEcs()
		for i := 0; i < numEntities; i++ {
			ecs.InsertOne(tuber.Bundle6[comp1, comp2, comp3, comp4, comp5, comp6]{
				A: comp1{V: int64(i)},
				B: comp2{V: 1, W: 2},
			})
		}

		q := tuber.NewQuery6[comp1, comp2, comp3, comp4, comp5, comp6](
			ecs, tuber.Write, tuber.Read, tuber.Read, tuber.Read, tuber.Read, tuber.Read)
		for f := 0; f < frames; f++ {
			q.Reset()
			for q.Next() {
				c1, c2, _, _, _, _ := q.Get()
				c1.V += c2.V
				c1.W += c2.W
			}
		}
		q.Close()
	}
}
