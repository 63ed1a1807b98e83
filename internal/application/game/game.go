// Package game adapts the scene state machine to ebiten's game loop.
package game

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/skyfall/internal/application/event"
	"github.com/younwookim/skyfall/internal/application/input"
	"github.com/younwookim/skyfall/internal/application/replay"
	"github.com/younwookim/skyfall/internal/render"
	renderebiten "github.com/younwookim/skyfall/internal/render/ebiten"
)

// Runner is what the loop drives, normally a *state.Machine.
type Runner interface {
	Update(dt float64, in input.Snapshot)
	Draw(screen render.Image)
	QuitRequested() bool
}

// Ticker is advanced once per frame after events are dispatched.
type Ticker interface {
	Update(dt float64)
}

// Game implements ebiten.Game. Each frame it polls the input source,
// updates the runner and hands the frame's events to every sink.
type Game struct {
	runner  Runner
	source  input.Source
	tracker input.Tracker
	events  *event.Queue
	sinks   []event.Sink
	tickers []Ticker

	recorder   *replay.Recorder
	recordPath string

	screenW  int
	screenH  int
	dt       float64
	frames   int
	debug    bool
	finished bool
}

// New creates a new Game. events is the queue the runner emits into.
func New(runner Runner, source input.Source, events *event.Queue, screenW, screenH int) *Game {
	return &Game{
		runner:  runner,
		source:  source,
		events:  events,
		screenW: screenW,
		screenH: screenH,
		dt:      1.0 / 60.0, // Default to 60 FPS
	}
}

// AddSink registers a consumer of boundary events.
func (g *Game) AddSink(s event.Sink) {
	g.sinks = append(g.sinks, s)
}

// AddTicker registers a collaborator advanced every frame.
func (g *Game) AddTicker(t Ticker) {
	g.tickers = append(g.tickers, t)
}

// Record captures every polled frame and saves it to path on quit, or
// whenever Save is pressed.
func (g *Game) Record(rec *replay.Recorder, path string) {
	g.recorder = rec
	g.recordPath = path
}

// Update advances one frame.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	if g.finished {
		return ebiten.Termination
	}

	l, ok := g.source.Poll()
	if !ok {
		log.Printf("[Game] input ended after %d frames", g.frames)
		g.finish()
		return ebiten.Termination
	}
	if g.recorder != nil {
		g.recorder.RecordFrame(l)
	}

	in := g.tracker.Next(l)
	if in.IsPressed(input.Debug) {
		g.debug = !g.debug
	}
	if in.IsPressed(input.Save) {
		g.save()
	}

	g.runner.Update(g.dt, in)
	g.frames++
	g.events.Dispatch(g.sinks...)
	for _, t := range g.tickers {
		t.Update(g.dt)
	}

	if g.runner.QuitRequested() {
		g.finish()
		return ebiten.Termination
	}
	return nil
}

// Draw renders the current scene.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	g.DrawTo(renderebiten.Wrap(screen))
}

// DrawTo renders the current scene onto any render target.
func (g *Game) DrawTo(screen render.Image) {
	g.runner.Draw(screen)
	if g.debug {
		screen.DrawText(fmt.Sprintf("TPS: %0.1f  frame: %d", ebiten.ActualTPS(), g.frames), 4, g.screenH-20)
	}
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// SetDT sets the delta time used for updates.
// Useful for testing or custom frame rates.
func (g *Game) SetDT(dt float64) {
	g.dt = dt
}

// Frames returns how many frames were updated.
func (g *Game) Frames() int {
	return g.frames
}

// Debug reports whether the debug overlay is shown.
func (g *Game) Debug() bool {
	return g.debug
}

func (g *Game) finish() {
	if g.finished {
		return
	}
	g.finished = true
	g.save()
}

func (g *Game) save() {
	if g.recorder == nil || g.recordPath == "" {
		return
	}
	if err := g.recorder.Save(g.recordPath); err != nil {
		log.Printf("[Game] Warning: failed to save replay: %v", err)
		return
	}
	log.Printf("[Game] replay saved to %s (%d frames)", g.recordPath, g.recorder.FrameCount())
}
