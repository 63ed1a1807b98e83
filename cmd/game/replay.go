package main

import (
	"fmt"
	"hash/fnv"
	"math"
	"strings"

	"github.com/younwookim/skyfall/internal/application/event"
	"github.com/younwookim/skyfall/internal/application/game"
	"github.com/younwookim/skyfall/internal/application/replay"
	"github.com/younwookim/skyfall/internal/application/scene"
	"github.com/younwookim/skyfall/internal/application/state"
	"github.com/younwookim/skyfall/internal/infrastructure/config"
	"github.com/younwookim/skyfall/internal/render/rendertest"
)

// VerifyResult is the outcome of running a recording without a window.
type VerifyResult struct {
	Seed   int64
	Frames int
	State  state.GameState
	Quit   bool
	Events []string
	// Digest hashes the draw calls of the last frame.
	Digest uint64
}

// Verify replays data through the full scene machine, drawing every frame
// into a recording surface. Equal recordings give equal results.
func Verify(cfg *config.GameConfig, data *replay.ReplayData) VerifyResult {
	d := cfg.Display
	rec := rendertest.New()
	env := scene.Env{
		Width:   d.Width,
		Height:  d.Height,
		Factory: rec,
		Images:  scene.FlatImages{Factory: rec},
		Seed:    data.Seed,
	}
	events := &event.Queue{}
	machine := state.NewMachine(cfg, env, events)

	g := game.New(machine, replay.NewReplayer(*data), events, d.Width, d.Height)
	g.SetDT(d.DT())

	result := VerifyResult{Seed: data.Seed}
	g.AddSink(event.SinkFunc(func(e event.Event) {
		result.Events = append(result.Events, fmt.Sprint(e))
	}))

	screen := rendertest.Screen(d.Width, d.Height)
	for g.Update() == nil {
		screen.Reset()
		g.DrawTo(screen)
	}

	result.Frames = machine.Frames()
	result.State = machine.State()
	result.Quit = machine.QuitRequested()
	result.Digest = digest(screen.Ops)
	return result
}

func digest(ops []rendertest.Op) uint64 {
	h := fnv.New64a()
	for _, op := range ops {
		fmt.Fprintf(h, "%s|%d|%d|%d|%d|%d|%s;", op.Kind, op.Src,
			math.Float64bits(op.X), math.Float64bits(op.Y), math.Float64bits(op.W), math.Float64bits(op.H), op.Text)
	}
	return h.Sum64()
}

func (r VerifyResult) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "seed:   %d\n", r.Seed)
	fmt.Fprintf(&b, "frames: %d\n", r.Frames)
	fmt.Fprintf(&b, "state:  %s\n", r.State)
	fmt.Fprintf(&b, "quit:   %t\n", r.Quit)
	fmt.Fprintf(&b, "digest: %016x\n", r.Digest)
	b.WriteString("events:\n")
	for _, e := range r.Events {
		fmt.Fprintf(&b, "  %s\n", e)
	}
	return b.String()
}
