package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/skyfall/internal/application/input"
	"github.com/younwookim/skyfall/internal/application/replay"
	"github.com/younwookim/skyfall/internal/application/state"
	"github.com/younwookim/skyfall/internal/infrastructure/config"
)

// recording numbers the given frames into replay data
func recording(seed int64, parts ...[]input.Levels) *replay.ReplayData {
	data := &replay.ReplayData{Version: "1.0", Seed: seed, Config: "test"}
	for _, part := range parts {
		for _, l := range part {
			data.Frames = append(data.Frames, replay.FrameInput{F: len(data.Frames), B: l.Buttons, MX: l.MouseX, MY: l.MouseY})
		}
	}
	return data
}

func idle(n int) []input.Levels {
	return input.Hold(0, n)
}

func loadTestConfig(t *testing.T) *config.GameConfig {
	t.Helper()
	cfg, source, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "embedded", source)
	return cfg
}

func TestLoadConfig_Embedded(t *testing.T) {
	cfg := loadTestConfig(t)

	assert.Equal(t, 1280, cfg.Display.Width)
	assert.Len(t, cfg.Cutscene.Opening, 8)
	assert.Len(t, cfg.Cutscene.Dialogue, 14)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_MissingDir(t *testing.T) {
	_, _, err := loadConfig(t.TempDir())
	assert.Error(t, err)
}

func TestChooseSeed(t *testing.T) {
	assert.Equal(t, int64(5), chooseSeed(5, 9))
	assert.Equal(t, int64(9), chooseSeed(0, 9))
	assert.NotZero(t, chooseSeed(0, 0))
}

func TestVerify_MenuToCutscene(t *testing.T) {
	cfg := loadTestConfig(t)
	data := recording(1, idle(120), input.Tap(input.Confirm), idle(420))

	result := Verify(cfg, data)

	assert.Equal(t, state.StateCutscene, result.State)
	assert.False(t, result.Quit)
	assert.Equal(t, len(data.Frames), result.Frames)
	assert.Equal(t, []string{
		"MusicSwap(menu)",
		"StateChanged(Menu -> Transitioning)",
		"MusicFadeOut(1s)",
		"StateChanged(Transitioning -> Cutscene)",
		"MusicSwap(cutscene)",
	}, result.Events)
}

func TestVerify_Quit(t *testing.T) {
	cfg := loadTestConfig(t)
	data := recording(1, idle(120), input.Tap(input.Down), input.Tap(input.Confirm), idle(10))

	result := Verify(cfg, data)

	assert.True(t, result.Quit)
	assert.Equal(t, state.StateMenu, result.State)
	assert.Equal(t, 123, result.Frames, "stops on the confirm frame")
	assert.Equal(t, "QuitRequested", result.Events[len(result.Events)-1])
}

func TestVerify_Deterministic(t *testing.T) {
	cfg := loadTestConfig(t)
	frames := [][]input.Levels{idle(120), input.Tap(input.Confirm), idle(400), input.Hold(input.Continue, 30), idle(30)}

	first := Verify(cfg, recording(77, frames...))
	second := Verify(cfg, recording(77, frames...))
	other := Verify(cfg, recording(78, frames...))

	assert.Equal(t, first, second)
	assert.Equal(t, first.State, other.State)
	assert.NotEqual(t, first.Digest, other.Digest, "particles follow the seed")
}

func TestVerifyResult_String(t *testing.T) {
	r := VerifyResult{Seed: 3, Frames: 10, State: state.StateGameplay, Events: []string{"QuitRequested"}}

	out := r.String()

	assert.Contains(t, out, "seed:   3")
	assert.Contains(t, out, "state:  Gameplay")
	assert.Contains(t, out, "  QuitRequested\n")
}
