package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMagicBolt(t *testing.T) {
	bolt := NewMagicBolt(100, 200, 32, 12, 400, 1)

	require.NotNil(t, bolt)
	assert.True(t, bolt.Active)
	x, y, w, h := bolt.Rect()
	assert.Equal(t, 84.0, x)
	assert.Equal(t, 194.0, y)
	assert.Equal(t, 32.0, w)
	assert.Equal(t, 12.0, h)
}

func TestProjectile_Update(t *testing.T) {
	tests := []struct {
		name      string
		direction float64
		wantX     float64
	}{
		{"right", 1, 104},
		{"left", -1, 96},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bolt := NewMagicBolt(100, 50, 32, 12, 400, tt.direction)
			bolt.Update(0.01, 1280)
			assert.InDelta(t, tt.wantX, bolt.X, 1e-9)
			assert.True(t, bolt.Active)
		})
	}
}

func TestProjectile_LeavesScreen(t *testing.T) {
	bolt := NewMagicBolt(1200, 50, 32, 12, 400, 1)

	frames := 0
	for bolt.Active && frames < 100 {
		bolt.Update(1.0/60.0, 1280)
		frames++
	}

	assert.False(t, bolt.Active)
	// Left edge 1184 must travel past 1280 at 400/60 px per frame.
	assert.Equal(t, 15, frames)
}

func TestProjectile_LeavesLeftEdge(t *testing.T) {
	bolt := NewMagicBolt(20, 50, 32, 12, 400, -1)
	bolt.Update(0.01, 1280) // right edge at 32
	assert.True(t, bolt.Active)
	bolt.Update(0.1, 1280)
	assert.False(t, bolt.Active)
}

func TestProjectile_Deactivate(t *testing.T) {
	bolt := NewMagicBolt(100, 50, 32, 12, 400, 1)
	bolt.Deactivate()
	bolt.Update(1, 1280)

	assert.False(t, bolt.Active)
	assert.Equal(t, 100.0, bolt.X, "inactive projectiles do not move")
}

func TestCompactProjectiles(t *testing.T) {
	a := NewMagicBolt(1, 0, 1, 1, 1, 1)
	b := NewMagicBolt(2, 0, 1, 1, 1, 1)
	c := NewMagicBolt(3, 0, 1, 1, 1, 1)
	b.Deactivate()

	ps := []*Projectile{a, b, c}
	kept := CompactProjectiles(ps)

	assert.Equal(t, []*Projectile{a, c}, kept)
	assert.Nil(t, ps[2])
	assert.Empty(t, CompactProjectiles(nil))
}
