// Package state drives the linear scene flow Menu -> Transitioning ->
// Cutscene -> Gameplay and emits the boundary events of each edge.
package state

import (
	"fmt"
	"log"

	"github.com/younwookim/skyfall/internal/application/event"
	"github.com/younwookim/skyfall/internal/application/input"
	"github.com/younwookim/skyfall/internal/application/scene"
	"github.com/younwookim/skyfall/internal/application/scene/cutscene"
	"github.com/younwookim/skyfall/internal/application/scene/gameplay"
	"github.com/younwookim/skyfall/internal/application/scene/menu"
	"github.com/younwookim/skyfall/internal/application/scene/transition"
	"github.com/younwookim/skyfall/internal/infrastructure/config"
	"github.com/younwookim/skyfall/internal/render"
)

// GameState represents the current state of the game
type GameState int

const (
	StateMenu GameState = iota
	StateTransitioning
	StateCutscene
	StateGameplay
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StateMenu:
		return "Menu"
	case StateTransitioning:
		return "Transitioning"
	case StateCutscene:
		return "Cutscene"
	case StateGameplay:
		return "Gameplay"
	default:
		return "Unknown"
	}
}

// Machine owns one scene per state and moves forward through them. Each
// scene is reset by OnEnter when its state is entered.
type Machine struct {
	state   GameState
	started bool
	quit    bool
	frames  int

	menu       *menu.Scene
	transition *transition.Scene
	cutscene   *cutscene.Scene
	gameplay   *gameplay.Scene
	scenes     [4]scene.Scene

	audio  config.AudioConfig
	events *event.Queue
}

// NewMachine builds every scene from cfg. Boundary events go to events.
func NewMachine(cfg *config.GameConfig, env scene.Env, events *event.Queue) *Machine {
	m := &Machine{
		audio:  cfg.Audio,
		events: events,
	}
	m.menu = menu.New(cfg.Menu, env)
	m.transition = transition.New(cfg.Transition, env, m.menu)
	m.cutscene = cutscene.New(cfg.Cutscene, env)
	m.gameplay = gameplay.New(cfg.Gameplay, env)
	m.scenes = [4]scene.Scene{m.menu, m.transition, m.cutscene, m.gameplay}
	return m
}

// Start enters the menu and asks for its music. Later calls do nothing.
func (m *Machine) Start() {
	if m.started {
		return
	}
	m.started = true
	m.state = StateMenu
	m.menu.OnEnter()
	m.events.Emit(event.MusicSwap{Track: event.TrackMenu})
	log.Printf("[Machine] start in %s", m.state)
}

// Update advances the active scene by one frame and follows its edge.
func (m *Machine) Update(dt float64, in input.Snapshot) {
	m.Start()
	if m.quit {
		return
	}
	m.frames++
	m.scenes[m.state].Update(dt, in)

	switch m.state {
	case StateMenu:
		switch m.menu.Selection() {
		case menu.SelectStart:
			m.enter(StateTransitioning)
		case menu.SelectQuit:
			m.requestQuit()
		case menu.SelectNone:
		}
	case StateTransitioning:
		if m.transition.Done() {
			m.enter(StateCutscene)
		}
	case StateCutscene:
		if m.cutscene.Done() {
			m.enter(StateGameplay)
		}
	case StateGameplay:
		if m.gameplay.Done() {
			m.requestQuit()
		}
	}
}

// Draw draws the active scene.
func (m *Machine) Draw(screen render.Image) {
	m.scenes[m.state].Draw(screen)
}

// SkipTo walks forward to target, firing every edge on the way.
func (m *Machine) SkipTo(target GameState) error {
	if target < m.state || target > StateGameplay {
		return fmt.Errorf("cannot skip from %s to %s", m.state, target)
	}
	m.Start()
	for m.state < target {
		m.enter(m.state + 1)
	}
	return nil
}

func (m *Machine) enter(next GameState) {
	from := m.state
	m.scenes[from].OnExit()
	m.state = next

	m.events.Emit(event.StateChanged{From: from, To: next})
	switch next {
	case StateTransitioning:
		m.events.Emit(event.MusicFadeOut{Duration: m.audio.StartFade})
	case StateCutscene:
		m.events.Emit(event.MusicSwap{Track: event.TrackCutscene})
	case StateGameplay:
		m.events.Emit(event.MusicFadeOut{Duration: m.audio.GameplayFade})
		m.events.Emit(event.MusicSwap{Track: event.TrackGame})
	case StateMenu:
	}

	m.scenes[next].OnEnter()
	log.Printf("[Machine] %s -> %s", from, next)
}

func (m *Machine) requestQuit() {
	if m.quit {
		return
	}
	m.quit = true
	m.events.Emit(event.QuitRequested{})
	log.Printf("[Machine] quit requested in %s", m.state)
}

// State returns the active state.
func (m *Machine) State() GameState { return m.state }

// QuitRequested reports whether the player chose to quit.
func (m *Machine) QuitRequested() bool { return m.quit }

// Frames returns how many frames were updated.
func (m *Machine) Frames() int { return m.frames }

// Menu returns the menu scene.
func (m *Machine) Menu() *menu.Scene { return m.menu }

// Transition returns the transition scene.
func (m *Machine) Transition() *transition.Scene { return m.transition }

// Cutscene returns the cutscene scene.
func (m *Machine) Cutscene() *cutscene.Scene { return m.cutscene }

// Gameplay returns the gameplay scene.
func (m *Machine) Gameplay() *gameplay.Scene { return m.gameplay }
