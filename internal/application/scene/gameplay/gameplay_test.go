package gameplay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/skyfall/internal/application/input"
	"github.com/younwookim/skyfall/internal/application/scene"
	"github.com/younwookim/skyfall/internal/infrastructure/config"
	"github.com/younwookim/skyfall/internal/render/rendertest"
)

const frameDT = 1.0 / 60.0

func newGameplay(t *testing.T) *Scene {
	t.Helper()
	return newGameplayWith(t, config.Default().Gameplay)
}

func newGameplayWith(t *testing.T, cfg config.GameplayConfig) *Scene {
	t.Helper()
	rec := rendertest.New()
	env := scene.Env{Width: 1280, Height: 720, Factory: rec, Images: scene.FlatImages{Factory: rec}, Seed: 3}
	return New(cfg, env)
}

func hold(b input.Button) input.Snapshot {
	return input.Snapshot{Held: b}
}

func TestGameplay_StartPosition(t *testing.T) {
	s := newGameplay(t)

	assert.Equal(t, 320.0, s.Player().X)
	assert.Equal(t, 360.0, s.Player().Y)
	assert.Equal(t, 100, s.Player().Health)
	assert.Empty(t, s.Bolts())
}

func TestGameplay_Movement(t *testing.T) {
	s := newGameplay(t)

	for i := 0; i < 60; i++ {
		s.Update(frameDT, hold(input.Right|input.Up))
	}

	assert.InDelta(t, 500, s.Player().X, 1e-6)
	assert.InDelta(t, 200, s.Player().Y, 1e-6)
}

func TestGameplay_FireHeldRespectsCooldown(t *testing.T) {
	s := newGameplay(t)

	s.Update(frameDT, hold(input.Fire))
	assert.Empty(t, s.Bolts(), "cooldown runs from scene entry")

	for i := 0; i < 69; i++ {
		s.Update(frameDT, hold(input.Fire))
	}
	// Just over a second of holding at a 0.25 s cooldown.
	assert.Len(t, s.Bolts(), 4)

	mx, _ := s.Player().Muzzle()
	last := s.Bolts()[len(s.Bolts())-1]
	assert.Greater(t, last.X, mx)
	assert.Less(t, last.X, mx+400*0.25+1)
	for _, b := range s.Bolts() {
		assert.Equal(t, 1.0, b.Direction)
	}
}

func TestGameplay_BoltsLeaveScreen(t *testing.T) {
	s := newGameplay(t)
	for i := 0; i < 16; i++ {
		s.Update(frameDT, hold(input.Fire))
	}
	require.Len(t, s.Bolts(), 1)

	// 1280 - 368 px at 400 px/s is under 2.5 s.
	for i := 0; i < 180; i++ {
		s.Update(frameDT, input.Snapshot{})
	}
	assert.Empty(t, s.Bolts())
}

func TestGameplay_Progress(t *testing.T) {
	cfg := config.Default().Gameplay
	cfg.ProgressRate = 60
	s := newGameplayWith(t, cfg)

	s.Update(frameDT, input.Snapshot{})
	assert.InDelta(t, 1, s.Progress(), 1e-9)
	assert.False(t, s.Complete())

	for i := 0; i < 200; i++ {
		s.Update(frameDT, input.Snapshot{})
	}
	assert.Equal(t, 100.0, s.Progress())
	assert.True(t, s.Complete())
	assert.False(t, s.Done(), "completing the quest does not leave the scene")
}

func TestGameplay_BackQuits(t *testing.T) {
	s := newGameplay(t)

	s.Update(frameDT, hold(input.Back))
	assert.False(t, s.Done(), "held without a press edge")

	s.Update(frameDT, input.Snapshot{Held: input.Back, Pressed: input.Back})
	assert.True(t, s.Done())
}

func TestGameplay_OnEnterResets(t *testing.T) {
	s := newGameplay(t)
	for i := 0; i < 30; i++ {
		s.Update(frameDT, hold(input.Fire|input.Left))
	}
	s.Update(frameDT, input.Snapshot{Held: input.Back, Pressed: input.Back})
	require.True(t, s.Done())
	require.NotEmpty(t, s.Bolts())

	s.OnEnter()

	assert.False(t, s.Done())
	assert.Empty(t, s.Bolts())
	assert.Zero(t, s.Progress())
	assert.Equal(t, 320.0, s.Player().X)
}

func TestGameplay_Draw(t *testing.T) {
	cfg := config.Default().Gameplay
	cfg.ProgressRate = 600
	s := newGameplayWith(t, cfg)
	screen := rendertest.Screen(1280, 720)

	s.Update(frameDT, input.Snapshot{})
	s.Draw(screen)
	plain := len(screen.Ops)
	assert.Equal(t, 2, screen.Count(rendertest.OpCircle), "progress bar caps")
	assert.Equal(t, 1, screen.Count(rendertest.OpLine), "glowing fill edge")

	for !s.Complete() {
		s.Update(frameDT, input.Snapshot{})
	}
	screen.Reset()
	s.Draw(screen)
	assert.Greater(t, len(screen.Ops), plain, "completion banner drawn on top")
}
