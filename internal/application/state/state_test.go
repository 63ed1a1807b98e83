package state

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/skyfall/internal/application/event"
	"github.com/younwookim/skyfall/internal/application/input"
	"github.com/younwookim/skyfall/internal/application/scene"
	"github.com/younwookim/skyfall/internal/application/scene/cutscene"
	"github.com/younwookim/skyfall/internal/application/scene/menu"
	"github.com/younwookim/skyfall/internal/infrastructure/config"
	"github.com/younwookim/skyfall/internal/render/rendertest"
)

const frameDT = 1.0 / 60.0

func press(b input.Button) input.Snapshot {
	return input.Snapshot{Held: b, Pressed: b}
}

func newMachine(t *testing.T, mutate func(*config.GameConfig)) (*Machine, *event.Queue) {
	t.Helper()
	cfg := config.Default()
	if mutate != nil {
		mutate(cfg)
	}
	rec := rendertest.New()
	env := scene.Env{Width: 1280, Height: 720, Factory: rec, Images: scene.FlatImages{Factory: rec}, Seed: 42}
	q := &event.Queue{}
	return NewMachine(cfg, env, q), q
}

func readyMenu(t *testing.T, m *Machine) {
	t.Helper()
	for i := 0; i < 300 && m.Menu().Stage() != menu.StageReady; i++ {
		m.Update(frameDT, input.Snapshot{})
	}
	require.Equal(t, menu.StageReady, m.Menu().Stage())
}

func countSwaps(events []event.Event, track event.Track) int {
	n := 0
	for _, e := range events {
		if s, ok := e.(event.MusicSwap); ok && s.Track == track {
			n++
		}
	}
	return n
}

func TestGameState_String(t *testing.T) {
	tests := []struct {
		state    GameState
		expected string
	}{
		{StateMenu, "Menu"},
		{StateTransitioning, "Transitioning"},
		{StateCutscene, "Cutscene"},
		{StateGameplay, "Gameplay"},
		{GameState(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.state.String())
		})
	}
}

func TestGameStateConstants(t *testing.T) {
	// Verify the iota ordering
	assert.Equal(t, GameState(0), StateMenu)
	assert.Equal(t, GameState(1), StateTransitioning)
	assert.Equal(t, GameState(2), StateCutscene)
	assert.Equal(t, GameState(3), StateGameplay)
}

func TestMachine_StartOnce(t *testing.T) {
	m, q := newMachine(t, nil)

	m.Start()
	m.Start()
	m.Update(frameDT, input.Snapshot{})

	assert.Equal(t, []event.Event{event.MusicSwap{Track: event.TrackMenu}}, q.Drain())
	assert.Equal(t, StateMenu, m.State())
	assert.Equal(t, 1, m.Frames())
}

func TestMachine_MenuStart(t *testing.T) {
	m, q := newMachine(t, nil)
	readyMenu(t, m)
	q.Drain()

	m.Update(frameDT, press(input.Confirm))

	assert.Equal(t, StateTransitioning, m.State())
	assert.Equal(t, []event.Event{
		event.StateChanged{From: StateMenu, To: StateTransitioning},
		event.MusicFadeOut{Duration: time.Second},
	}, q.Drain())
}

func TestMachine_MenuQuit(t *testing.T) {
	m, q := newMachine(t, nil)
	readyMenu(t, m)
	q.Drain()

	m.Update(frameDT, press(input.Down))
	m.Update(frameDT, press(input.Confirm))
	frames := m.Frames()
	for i := 0; i < 10; i++ {
		m.Update(frameDT, input.Snapshot{})
	}

	assert.True(t, m.QuitRequested())
	assert.Equal(t, StateMenu, m.State())
	assert.Equal(t, []event.Event{event.QuitRequested{}}, q.Drain())
	assert.Equal(t, frames, m.Frames(), "nothing updates after quitting")
}

func TestMachine_TransitionToCutscene(t *testing.T) {
	m, q := newMachine(t, nil)
	require.NoError(t, m.SkipTo(StateTransitioning))
	q.Drain()

	frames := 0
	for m.State() == StateTransitioning && frames < 1000 {
		m.Update(frameDT, input.Snapshot{})
		frames++
		if m.State() == StateTransitioning {
			require.Zero(t, q.Len(), "no events while inside a state")
		}
	}

	assert.Equal(t, StateCutscene, m.State())
	// Fade in, three seconds of title, fade out.
	assert.InDelta(t, 85+180+85, frames, 3)
	assert.Equal(t, []event.Event{
		event.StateChanged{From: StateTransitioning, To: StateCutscene},
		event.MusicSwap{Track: event.TrackCutscene},
	}, q.Drain())
	assert.Equal(t, 255.0, m.Cutscene().IntroFade(), "cutscene is reset on entry")
}

func TestMachine_FullCutsceneReplay(t *testing.T) {
	m, q := newMachine(t, func(cfg *config.GameConfig) {
		cfg.Cutscene.Opening = []string{"ab", "cde"}
		cfg.Cutscene.Dialogue = []string{"fg"}
		cfg.Cutscene.TypingSpeed = frameDT
	})
	require.NoError(t, m.SkipTo(StateCutscene))
	q.Drain()

	c := m.Cutscene()
	n := c.Opening().Chars() + c.Dialogue().Chars() + c.Opening().Len() + c.Dialogue().Len()

	var events []event.Event
	for i := 0; i < n; i++ {
		seq := c.Opening()
		if c.Part() == cutscene.PartDialogue {
			seq = c.Dialogue()
		}
		in := input.Snapshot{}
		if seq.LineComplete() {
			in = press(input.Continue)
		}
		m.Update(frameDT, in)
		events = append(events, q.Drain()...)
	}

	assert.True(t, c.Dialogue().SequenceComplete())
	assert.Equal(t, StateGameplay, m.State())
	assert.Equal(t, 1, countSwaps(events, event.TrackGame))
	assert.Equal(t, []event.Event{
		event.StateChanged{From: StateCutscene, To: StateGameplay},
		event.MusicFadeOut{Duration: 800 * time.Millisecond},
		event.MusicSwap{Track: event.TrackGame},
	}, events)

	for i := 0; i < 120; i++ {
		m.Update(frameDT, press(input.Continue))
	}
	assert.Zero(t, q.Len(), "the gameplay edge fires once")
}

func TestMachine_GameplayBackQuits(t *testing.T) {
	m, q := newMachine(t, nil)
	require.NoError(t, m.SkipTo(StateGameplay))
	q.Drain()

	m.Update(frameDT, press(input.Back))

	assert.True(t, m.QuitRequested())
	assert.Equal(t, []event.Event{event.QuitRequested{}}, q.Drain())
}

func TestMachine_SkipTo(t *testing.T) {
	m, q := newMachine(t, nil)

	require.NoError(t, m.SkipTo(StateGameplay))
	events := q.Drain()
	assert.Equal(t, StateGameplay, m.State())
	assert.Equal(t, 1, countSwaps(events, event.TrackMenu))
	assert.Equal(t, 1, countSwaps(events, event.TrackCutscene))
	assert.Equal(t, 1, countSwaps(events, event.TrackGame))

	assert.Error(t, m.SkipTo(StateMenu), "the flow never goes back")
	assert.Error(t, m.SkipTo(GameState(7)))
	assert.NoError(t, m.SkipTo(StateGameplay))
	assert.Zero(t, q.Len())
}

func TestMachine_Draw(t *testing.T) {
	m, _ := newMachine(t, nil)
	require.NoError(t, m.SkipTo(StateTransitioning))
	screen := rendertest.Screen(1280, 720)

	m.Update(frameDT, input.Snapshot{})
	m.Draw(screen)

	assert.NotEmpty(t, screen.Ops, "the frozen menu shows under the fade")
}
