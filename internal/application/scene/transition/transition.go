// Package transition fades from the menu to black, holds the game title on
// black, then fades the title out before the cutscene starts.
package transition

import (
	"github.com/younwookim/skyfall/internal/application/input"
	"github.com/younwookim/skyfall/internal/application/scene"
	"github.com/younwookim/skyfall/internal/infrastructure/config"
	"github.com/younwookim/skyfall/internal/render"
)

// Stage is the transition progress.
type Stage int

const (
	StageFadeIn Stage = iota
	StageDwell
	StageFadeOut
	StageDone
)

func (s Stage) String() string {
	switch s {
	case StageFadeIn:
		return "FadeIn"
	case StageDwell:
		return "Dwell"
	case StageFadeOut:
		return "FadeOut"
	case StageDone:
		return "Done"
	}
	return "Unknown"
}

const titleScale = 4.0

// Scene is the menu to cutscene transition.
type Scene struct {
	cfg   config.TransitionConfig
	env   scene.Env
	under scene.Drawer
	text  *render.TextCache
	stage Stage
	level float64
	dwell float64
}

// New creates the transition. under is drawn beneath the overlay while it
// fades in and may be nil.
func New(cfg config.TransitionConfig, env scene.Env, under scene.Drawer) *Scene {
	s := &Scene{
		cfg:   cfg,
		env:   env,
		under: under,
		text:  render.NewTextCache(env.Factory),
	}
	s.OnEnter()
	return s
}

// OnEnter restarts the fade from a clear overlay.
func (s *Scene) OnEnter() {
	s.stage = StageFadeIn
	s.level = 0
	s.dwell = 0
}

func (s *Scene) OnExit() {}

// Done reports that the title has faded out.
func (s *Scene) Done() bool {
	return s.stage == StageDone
}

// Stage returns the current stage.
func (s *Scene) Stage() Stage {
	return s.stage
}

// Level returns the overlay opacity on the 0..255 scale.
func (s *Scene) Level() float64 {
	return s.level
}

// Update implements scene.Scene. The transition takes no input.
func (s *Scene) Update(dt float64, _ input.Snapshot) {
	switch s.stage {
	case StageFadeIn:
		s.level += s.cfg.FadeRate * dt
		if s.level >= 255 {
			s.level = 255
			s.stage = StageDwell
			s.dwell = 0
		}
	case StageDwell:
		s.dwell += dt
		if s.dwell >= s.cfg.Dwell {
			s.stage = StageFadeOut
		}
	case StageFadeOut:
		s.level -= s.cfg.FadeRate * dt
		if s.level <= 0 {
			s.level = 0
			s.stage = StageDone
		}
	case StageDone:
	}
}

// Draw implements scene.Scene.
func (s *Scene) Draw(screen render.Image) {
	switch s.stage {
	case StageFadeIn:
		if s.under != nil {
			s.under.Draw(screen)
		}
		render.Overlay(screen, s.level)
	case StageDwell:
		screen.Fill(render.Black.Opaque())
		s.drawTitle(screen, 255)
	case StageFadeOut:
		screen.Fill(render.Black.Opaque())
		s.drawTitle(screen, s.level)
	case StageDone:
		screen.Fill(render.Black.Opaque())
	}
}

func (s *Scene) drawTitle(screen render.Image, alpha float64) {
	y := float64(s.env.Height)/2 - render.GlyphHeight*titleScale/2
	s.text.DrawCentered(screen, s.cfg.Title, float64(s.env.Width)/2, y, titleScale, render.White, alpha)
}
