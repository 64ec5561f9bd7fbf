package tuber_test

import (
	"testing"

	"github.com/tuber-engine/tuber"
)

// populate inserts entities with only Position, only Velocity, and both.
func populate(ecs *tuber.Ecs, only, both int) {
	for i := 0; i < only; i++ {
		ecs.InsertOne(tuber.Bundle1[Position]{A: Position{X: float32(i)}})
		ecs.InsertOne(tuber.Bundle1[Velocity]{A: Velocity{X: float32(i)}})
	}
	for i := 0; i < both; i++ {
		ecs.InsertOne(tuber.Bundle2[Position, Velocity]{
			A: Position{X: float32(100 + i)},
			B: Velocity{X: 1},
		})
	}
}

func TestQueryCompleteness(t *testing.T) {
	ecs := newEcs(t)
	populate(ecs, 3, 2)

	q1 := tuber.NewQuery1[Position](ecs, tuber.Read)
	count := 0
	for q1.Next() {
		count++
	}
	if count != 5 {
		t.Errorf("Query1[Position] matched %d entities, want 5", count)
	}

	q2 := tuber.NewQuery2[Position, Velocity](ecs, tuber.Read, tuber.Read)
	count = 0
	for q2.Next() {
		count++
	}
	if count != 2 {
		t.Errorf("Query2[Position, Velocity] matched %d entities, want 2", count)
	}
}

func TestQueryWriteVisibleToRead(t *testing.T) {
	ecs := newEcs(t)
	populate(ecs, 1, 3)

	w := tuber.NewQuery2[Position, Velocity](ecs, tuber.Write, tuber.Read)
	for w.Next() {
		pos, vel := w.Get()
		pos.X += vel.X
	}

	r := tuber.NewQuery2[Position, Velocity](ecs, tuber.Read, tuber.Read)
	for r.Next() {
		pos, _ := r.Get()
		if pos.X < 101 {
			t.Errorf("entity %d did not observe the write pass: %+v", r.Entity(), *pos)
		}
	}
}

func TestQueryOverMissingTypeYieldsNothing(t *testing.T) {
	ecs := newEcs(t)
	ecs.InsertOne(tuber.Bundle1[Position]{})

	q := tuber.NewQuery2[Position, Health](ecs, tuber.Read, tuber.Read)
	if q.Next() {
		t.Error("query over a type with no backing column yielded an entity")
	}
}

func TestQueryResetPicksUpNewArchetypes(t *testing.T) {
	ecs := newEcs(t)
	ecs.InsertOne(tuber.Bundle1[Position]{A: Position{X: 1}})

	q := tuber.NewQuery1[Position](ecs, tuber.Read)
	count := 0
	for q.Next() {
		count++
	}
	if count != 1 {
		t.Fatalf("initial iteration matched %d, want 1", count)
	}

	ecs.InsertOne(tuber.Bundle2[Position, Velocity]{A: Position{X: 2}})
	q.Reset()
	count = 0
	for q.Next() {
		count++
	}
	if count != 2 {
		t.Errorf("iteration after Reset matched %d, want 2", count)
	}
}

func TestQueryFirst(t *testing.T) {
	ecs := newEcs(t)
	ecs.InsertOne(tuber.Bundle1[Velocity]{})                       // id 1
	want := ecs.InsertOne(tuber.Bundle1[Position]{A: Position{X: 7}}) // id 2
	ecs.InsertOne(tuber.Bundle1[Position]{A: Position{X: 8}})      // id 3

	q := tuber.NewQuery1[Position](ecs, tuber.Read)
	ent, ok := q.First()
	if !ok {
		t.Fatal("First found no match")
	}
	if ent != want {
		t.Errorf("First = %d, want %d", ent, want)
	}
	if q.Get().X != 7 {
		t.Errorf("First positioned at %+v, want X=7", *q.Get())
	}
	q.Close()

	empty := tuber.NewQuery1[Health](ecs, tuber.Read)
	if _, ok := empty.First(); ok {
		t.Error("First matched in an empty universe")
	}
}

func TestQueryAt(t *testing.T) {
	ecs := newEcs(t)
	id := ecs.InsertOne(tuber.Bundle2[Position, Velocity]{A: Position{X: 5}})

	q := tuber.NewQuery1[Position](ecs, tuber.Write)
	q.At(id)
	q.Get().X = 6
	q.Close()

	pos, _, err := tuber.GetEntity2[Position, Velocity](ecs, id)
	if err != nil {
		t.Fatal(err)
	}
	defer pos.Done()
	if pos.Get().X != 6 {
		t.Errorf("write through At not visible, got %+v", *pos.Get())
	}
}

func TestQueryAtMissingComponentPanics(t *testing.T) {
	ecs := newEcs(t)
	id := ecs.InsertOne(tuber.Bundle1[Velocity]{})

	q := tuber.NewQuery1[Position](ecs, tuber.Read)
	defer func() {
		if recover() == nil {
			t.Error("At on an entity lacking the component did not panic")
		}
	}()
	q.At(id)
}

func TestBorrowConflictPanics(t *testing.T) {
	ecs := newEcs(t)
	id := ecs.InsertOne(tuber.Bundle1[Position]{})

	t.Run("WriteOverRead", func(t *testing.T) {
		r := tuber.NewQuery1[Position](ecs, tuber.Read)
		r.At(id)
		defer r.Close()
		w := tuber.NewQuery1[Position](ecs, tuber.Write)
		defer func() {
			if recover() == nil {
				t.Error("exclusive borrow over a live shared borrow did not panic")
			}
		}()
		w.At(id)
	})

	t.Run("ReadOverWrite", func(t *testing.T) {
		w := tuber.NewQuery1[Position](ecs, tuber.Write)
		w.At(id)
		defer w.Close()
		r := tuber.NewQuery1[Position](ecs, tuber.Read)
		defer func() {
			if recover() == nil {
				t.Error("shared borrow over a live exclusive borrow did not panic")
			}
		}()
		r.At(id)
	})

	t.Run("SharedBorrowsCoexist", func(t *testing.T) {
		r1 := tuber.NewQuery1[Position](ecs, tuber.Read)
		r1.At(id)
		defer r1.Close()
		r2 := tuber.NewQuery1[Position](ecs, tuber.Read)
		r2.At(id) // must not panic
		r2.Close()
	})
}

func TestMatchingEntities(t *testing.T) {
	ecs := newEcs(t)
	populate(ecs, 2, 3)

	q := tuber.NewQuery2[Position, Velocity](ecs, tuber.Read, tuber.Read)
	matched := q.MatchingEntities()
	if len(matched) != 3 {
		t.Fatalf("MatchingEntities returned %d ids, want 3", len(matched))
	}
	for i := 1; i < len(matched); i++ {
		if matched[i] <= matched[i-1] {
			t.Error("MatchingEntities ids are not in ascending order")
		}
	}
}

func TestRemoveMatching(t *testing.T) {
	ecs := newEcs(t)
	populate(ecs, 2, 3)

	q := tuber.NewQuery2[Position, Velocity](ecs, tuber.Read, tuber.Read)
	if removed := q.RemoveMatching(); removed != 3 {
		t.Fatalf("RemoveMatching removed %d entities, want 3", removed)
	}
	if q.Next() {
		t.Error("query still matches after RemoveMatching")
	}

	// Entities with only one of the types survive.
	p := tuber.NewQuery1[Position](ecs, tuber.Read)
	count := 0
	for p.Next() {
		count++
	}
	if count != 2 {
		t.Errorf("%d Position-only entities left, want 2", count)
	}
}
