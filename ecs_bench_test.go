package tuber_test

import (
	"testing"

	"github.com/tuber-engine/tuber"
)

func BenchmarkInsertOne(b *testing.B) {
	tuber.ResetGlobalRegistry()
	ecs := tuber.NewEcs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ecs.InsertOne(tuber.Bundle2[Position, Velocity]{
			A: Position{X: float32(i)},
			B: Velocity{X: 1},
		})
	}
}

func BenchmarkQuery2Iterate(b *testing.B) {
	tuber.ResetGlobalRegistry()
	ecs := tuber.NewEcs()
	for i := 0; i < 10000; i++ {
		ecs.InsertOne(tuber.Bundle2[Position, Velocity]{
			A: Position{X: float32(i)},
			B: Velocity{X: 1, Y: 2},
		})
	}
	q := tuber.NewQuery2[Position, Velocity](ecs, tuber.Write, tuber.Read)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q.Reset()
		for q.Next() {
			pos, vel := q.Get()
			pos.X += vel.X
			pos.Y += vel.Y
		}
	}
}

func BenchmarkFetch(b *testing.B) {
	tuber.ResetGlobalRegistry()
	ecs := tuber.NewEcs()
	for i := 0; i < 10000; i++ {
		ecs.InsertOne(tuber.Bundle1[Health]{A: Health{Current: i, Max: 100}})
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		it := tuber.Fetch[Health](ecs)
		sum := 0
		for it.Next() {
			sum += it.Get().Current
		}
		_ = sum
	}
}
