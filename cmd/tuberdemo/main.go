// tuberdemo renders a small bouncing-glyph simulation in the terminal. It
// exists to exercise the engine end to end: component storage, queries,
// systems, resources and the event bus all run every frame.
//
//	go run ./cmd/tuberdemo -entities 64 -fps 30
package main

import (
	"flag"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"github.com/tuber-engine/tuber"
)

var log = logrus.New()

type Position struct {
	X, Y float64
}

type Velocity struct {
	X, Y float64
}

type Glyph struct {
	Rune  rune
	Style tcell.Style
}

// DeltaTime is the frame timestep resource, in seconds.
type DeltaTime struct {
	Seconds float64
}

// Bounds is the playfield resource, updated on terminal resize.
type Bounds struct {
	Width, Height int
}

// Screen wraps the tcell screen so systems can reach it as a resource.
type Screen struct {
	S tcell.Screen
}

// resizeEvent and quitEvent flow over the event bus from the input loop.
type resizeEvent struct {
	Width, Height int
}

type quitEvent struct{}

var palette = []tcell.Color{
	tcell.ColorGreen,
	tcell.ColorYellow,
	tcell.ColorBlue,
	tcell.ColorRed,
	tcell.ColorPurple,
}

func spawn(ecs *tuber.Ecs, n, w, h int) {
	runes := []rune("*+ox#@&%")
	for i := 0; i < n; i++ {
		ecs.InsertOne(tuber.Bundle3[Position, Velocity, Glyph]{
			A: Position{X: rand.Float64() * float64(w), Y: rand.Float64() * float64(h)},
			B: Velocity{X: rand.Float64()*20 - 10, Y: rand.Float64()*10 - 5},
			C: Glyph{
				Rune:  runes[rand.Intn(len(runes))],
				Style: tcell.StyleDefault.Foreground(palette[rand.Intn(len(palette))]),
			},
		})
	}
}

// moveSystem integrates positions and reflects velocities at the playfield
// edges.
func moveSystem(ecs *tuber.Ecs) {
	dt := tuber.Resource[DeltaTime](ecs)
	bounds := tuber.Resource[Bounds](ecs)
	step := dt.Get().Seconds
	w := float64(bounds.Get().Width)
	h := float64(bounds.Get().Height)
	dt.Done()
	bounds.Done()

	q := tuber.NewQuery2[Position, Velocity](ecs, tuber.Write, tuber.Write)
	defer q.Close()
	for q.Next() {
		pos, vel := q.Get()
		pos.X += vel.X * step
		pos.Y += vel.Y * step
		if pos.X < 0 {
			pos.X, vel.X = -pos.X, -vel.X
		} else if pos.X >= w {
			pos.X, vel.X = 2*w-pos.X-1, -vel.X
		}
		if pos.Y < 0 {
			pos.Y, vel.Y = -pos.Y, -vel.Y
		} else if pos.Y >= h {
			pos.Y, vel.Y = 2*h-pos.Y-1, -vel.Y
		}
	}
}

// renderSystem repaints every glyph at its current position.
func renderSystem(ecs *tuber.Ecs) {
	screen := tuber.Resource[Screen](ecs)
	defer screen.Done()
	s := screen.Get().S

	s.Clear()
	q := tuber.NewQuery2[Position, Glyph](ecs, tuber.Read, tuber.Read)
	defer q.Close()
	for q.Next() {
		pos, glyph := q.Get()
		s.SetContent(int(pos.X), int(pos.Y), glyph.Rune, nil, glyph.Style)
	}
	s.Show()
}

func main() {
	entities := flag.Int("entities", 48, "number of glyphs to simulate")
	fps := flag.Int("fps", 30, "target frames per second")
	verbose := flag.Bool("verbose", false, "enable debug logging")
	flag.Parse()

	log.SetOutput(os.Stderr)
	log.SetLevel(logrus.InfoLevel)
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.WithError(err).Fatal("creating screen")
	}
	if err := screen.Init(); err != nil {
		log.WithError(err).Fatal("initializing screen")
	}
	defer screen.Fini()

	w, h := screen.Size()
	log.WithFields(logrus.Fields{
		"entities": *entities,
		"fps":      *fps,
		"width":    w,
		"height":   h,
	}).Info("starting simulation")

	ecs := tuber.NewEcs()
	tuber.InsertResource(ecs, DeltaTime{})
	tuber.InsertResource(ecs, Bounds{Width: w, Height: h})
	tuber.InsertResource(ecs, Screen{S: screen})
	spawn(ecs, *entities, w, h)

	systems := tuber.NewSystemBundle()
	systems.AddSystem(moveSystem)
	systems.AddSystem(renderSystem)

	running := true
	bus := &tuber.EventBus{}
	tuber.Subscribe(bus, func(quitEvent) { running = false })
	tuber.Subscribe(bus, func(ev resizeEvent) {
		b := tuber.ResourceMut[Bounds](ecs)
		b.Get().Width = ev.Width
		b.Get().Height = ev.Height
		b.Done()
		log.WithFields(logrus.Fields{"width": ev.Width, "height": ev.Height}).Debug("resized")
	})

	events := make(chan tcell.Event, 64)
	go func() {
		for {
			events <- screen.PollEvent()
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(*fps))
	defer ticker.Stop()

	last := time.Now()
	frames := 0
	for running {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
					(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
					tuber.Publish(bus, quitEvent{})
				}
			case *tcell.EventResize:
				nw, nh := ev.Size()
				tuber.Publish(bus, resizeEvent{Width: nw, Height: nh})
			}

		case now := <-ticker.C:
			dt := tuber.ResourceMut[DeltaTime](ecs)
			dt.Get().Seconds = now.Sub(last).Seconds()
			dt.Done()
			last = now

			systems.Step(ecs)
			frames++
		}
	}

	log.WithFields(logrus.Fields{
		"frames":   frames,
		"entities": ecs.EntityCount(),
	}).Info("simulation stopped")
}
