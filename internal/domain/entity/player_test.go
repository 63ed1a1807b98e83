package entity

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const frameDT = 1.0 / 60.0

func testStats() PlayerStats {
	return PlayerStats{
		Speed:         180,
		VerticalSpeed: 160,
		BobAmplitude:  10,
		BobRate:       2,
		BlinkEvery:    [2]float64{3, 5},
		BlinkFor:      0.15,
		FireCooldown:  0.25,
		AttackFor:     0.1,
		MaxHealth:     100,
	}
}

func newTestPlayer() *Player {
	return NewPlayer(320, 360, 96, 96, testStats(), 1280, 720, rand.New(rand.NewSource(1)))
}

func TestNewPlayer(t *testing.T) {
	p := newTestPlayer()

	require.NotNil(t, p)
	assert.Equal(t, 100, p.Health)
	assert.Equal(t, 100, p.MaxHealth)
	assert.Equal(t, FrameIdle, p.Frame)
	assert.GreaterOrEqual(t, p.blinkInterval, 3.0)
	assert.LessOrEqual(t, p.blinkInterval, 5.0)
}

func TestPlayer_Move(t *testing.T) {
	tests := []struct {
		name   string
		c      Controls
		dx, dy float64
	}{
		{"left", Controls{Left: true}, -1.8, 0},
		{"right", Controls{Right: true}, 1.8, 0},
		{"left and right cancel", Controls{Left: true, Right: true}, 0, 0},
		{"up", Controls{Up: true}, 0, -1.6},
		{"down", Controls{Down: true}, 0, 1.6},
		{"up wins over down", Controls{Up: true, Down: true}, 0, -1.6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestPlayer()
			p.Update(0.01, tt.c)
			assert.InDelta(t, 320+tt.dx, p.X, 1e-9)
			assert.InDelta(t, 360+tt.dy, p.Y, 1e-9)
			assert.Equal(t, p.Y, p.BaseY, "moving resets the hover reference")
		})
	}
}

func TestPlayer_IdleBob(t *testing.T) {
	p := newTestPlayer()

	p.Update(0.25, Controls{})
	assert.InDelta(t, 360+math.Sin(0.5)*10, p.Y, 1e-9)
	assert.Equal(t, 360.0, p.BaseY)

	for i := 0; i < 600; i++ {
		p.Update(frameDT, Controls{})
		assert.InDelta(t, 360, p.Y, 10+1e-9)
	}
}

func TestPlayer_Clamp(t *testing.T) {
	p := newTestPlayer()

	for i := 0; i < 600; i++ {
		p.Update(frameDT, Controls{Left: true, Up: true})
	}
	assert.Equal(t, 48.0, p.X)
	assert.Equal(t, 48.0, p.Y)

	for i := 0; i < 900; i++ {
		p.Update(frameDT, Controls{Right: true, Down: true})
	}
	assert.Equal(t, 1232.0, p.X)
	assert.Equal(t, 672.0, p.Y)
}

func TestPlayer_FireCooldown(t *testing.T) {
	p := newTestPlayer()

	fired := 0
	for i := 0; i < 60; i++ {
		if p.Update(frameDT, Controls{Fire: true}) {
			fired++
		}
	}

	// Shots at 0.25, 0.5, 0.75 and 1.0 seconds of held fire.
	assert.InDelta(t, 4, fired, 1)
}

func TestPlayer_AttackFrame(t *testing.T) {
	p := newTestPlayer()
	p.shootTimer = p.stats.FireCooldown

	require.True(t, p.Update(frameDT, Controls{Fire: true}))
	assert.Equal(t, FrameAttack, p.Frame)

	for i := 0; i < 4; i++ {
		p.Update(frameDT, Controls{})
	}
	assert.Equal(t, FrameAttack, p.Frame)

	p.Update(frameDT, Controls{})
	p.Update(frameDT, Controls{})
	assert.Equal(t, FrameIdle, p.Frame)
}

func TestPlayer_Blink(t *testing.T) {
	p := newTestPlayer()
	interval := p.blinkInterval

	elapsed := 0.0
	for p.Frame != FrameBlink && elapsed < 10 {
		p.Update(frameDT, Controls{})
		elapsed += frameDT
	}
	require.Equal(t, FrameBlink, p.Frame)
	assert.InDelta(t, interval, elapsed, frameDT+1e-9)

	for i := 0; i < 10; i++ {
		p.Update(frameDT, Controls{})
	}
	assert.Equal(t, FrameIdle, p.Frame)
}

func TestPlayer_Muzzle(t *testing.T) {
	p := newTestPlayer()
	x, y := p.Muzzle()
	assert.Equal(t, 368.0, x)
	assert.Equal(t, 360.0, y)
}

func TestFrame_String(t *testing.T) {
	assert.Equal(t, "idle", FrameIdle.String())
	assert.Equal(t, "blink", FrameBlink.String())
	assert.Equal(t, "attack", FrameAttack.String())
	assert.Equal(t, "unknown", Frame(9).String())
}

func TestPlayer_Respawn(t *testing.T) {
	p := newTestPlayer()
	for i := 0; i < 20 && p.Frame != FrameAttack; i++ {
		p.Update(frameDT, Controls{Right: true, Fire: true})
	}
	p.Health = 60
	p.Score = 12
	require.Equal(t, FrameAttack, p.Frame)

	p.Respawn(100, 5)

	assert.Equal(t, 100.0, p.X)
	assert.Equal(t, 48.0, p.Y, "clamped to half the sprite height")
	assert.Equal(t, 100, p.Health)
	assert.Zero(t, p.Score)
	assert.Equal(t, FrameIdle, p.Frame)
	assert.False(t, p.attacking)
	assert.False(t, p.Update(frameDT, Controls{Fire: true}), "cooldown restarts")
}
