package scenery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/skyfall/internal/render"
	"github.com/younwookim/skyfall/internal/render/rendertest"
)

func fieldConfigs() []ParticleConfig {
	return []ParticleConfig{
		{Kind: WindStreak, Capacity: 8, Speed: Range{15, 30}, Alpha: Range{80, 120}, Size: Range{4, 8}},
		{Kind: WindStreak, Capacity: 8, Speed: Range{15, 30}, Alpha: Range{80, 120}, Size: Range{4, 8}, Margin: 5},
		{Kind: Glow, Capacity: 6, Speed: Range{8, 15}, Alpha: Range{80, 140}, Size: Range{2, 4},
			Colors: []render.RGB{{200, 220, 255}, {255, 240, 200}, {220, 200, 255}}},
		{Kind: Ember, Capacity: 40, Speed: Range{20, 50}, Alpha: Range{150, 230}, Size: Range{2, 5}, Fade: 45,
			Colors: []render.RGB{{255, 200, 130}}},
		{Kind: Magic, Capacity: 60, Speed: Range{40, 100}, Size: Range{3, 8}, Life: Range{1, 2}, Spread: 200,
			Colors: []render.RGB{{200, 150, 255}, {160, 120, 230}}},
		{Kind: Sparkle, Capacity: 15, Speed: Range{3, 9}, Size: Range{2, 4}, Life: Range{5, 8.3},
			Colors: []render.RGB{{255, 200, 80}, {80, 160, 255}, {255, 100, 150}, {100, 220, 100}}},
		{Kind: Mote, Capacity: 30, Speed: Range{40, 80}, Alpha: Range{80, 150}, Size: Range{2, 5}},
	}
}

func TestField_Conservation(t *testing.T) {
	for _, cfg := range fieldConfigs() {
		t.Run(cfg.Kind.String(), func(t *testing.T) {
			rng := seeded(7)
			f := NewField(cfg, 1280, 720, rng, rendertest.New())
			require.Equal(t, cfg.Capacity, f.Len())

			for i := 0; i < 3000; i++ {
				f.Advance(frameDT * (0.5 + rng.Float64()*3))
				require.Len(t, f.Particles(), cfg.Capacity)
			}
			m := cfg.BoundsMargin()
			for _, p := range f.Particles() {
				assert.GreaterOrEqual(t, p.X, -m)
				assert.LessOrEqual(t, p.X, 1280.0+m)
				assert.GreaterOrEqual(t, p.Y, -m)
				assert.LessOrEqual(t, p.Y, 720.0+m)
			}
		})
	}
}

func TestField_GlyphCache(t *testing.T) {
	rec := rendertest.New()
	cfg := fieldConfigs()[5]
	f := NewField(cfg, 1280, 720, seeded(3), rec)
	screen := rendertest.Screen(1280, 720)

	for i := 0; i < 600; i++ {
		f.Advance(frameDT)
		f.Draw(screen)
	}

	// 3 sizes × 4 colours bound the distinct glyphs.
	assert.LessOrEqual(t, f.Glyphs(), 12)
	assert.Equal(t, f.Glyphs(), rec.Allocs())
	assert.Equal(t, 600*cfg.Capacity, screen.Count(rendertest.OpImage))
}

func TestField_EmberFadesMonotonically(t *testing.T) {
	cfg := fieldConfigs()[3]
	cfg.Capacity = 1
	f := NewField(cfg, 1280, 720, seeded(11), rendertest.New())

	prev := f.Particles()[0]
	respawns := 0
	for i := 0; i < 2000; i++ {
		f.Advance(frameDT)
		p := f.Particles()[0]
		if p.Alpha > prev.Alpha {
			respawns++
			assert.Equal(t, 740.0, p.Y, "respawn starts below the screen")
		}
		prev = p
	}
	assert.Positive(t, respawns)
}

func TestField_Deterministic(t *testing.T) {
	for _, cfg := range fieldConfigs() {
		a := NewField(cfg, 1280, 720, seeded(42), rendertest.New())
		b := NewField(cfg, 1280, 720, seeded(42), rendertest.New())
		for i := 0; i < 500; i++ {
			a.Advance(frameDT)
			b.Advance(frameDT)
		}
		assert.Equal(t, a.Particles(), b.Particles(), cfg.Kind.String())
	}
}

func TestField_WindDirection(t *testing.T) {
	left := NewField(fieldConfigs()[0], 1280, 720, seeded(1), rendertest.New())
	right := NewField(fieldConfigs()[6], 1280, 720, seeded(1), rendertest.New())
	for _, p := range left.Particles() {
		assert.Negative(t, p.VX)
	}
	for _, p := range right.Particles() {
		assert.Positive(t, p.VX)
	}
}

func TestParticleConfig_BoundsMargin(t *testing.T) {
	assert.Equal(t, 50.0, ParticleConfig{}.BoundsMargin())
	assert.Equal(t, 5.0, ParticleConfig{Margin: 5}.BoundsMargin())
}

func TestField_RespawnsPastConfiguredMargin(t *testing.T) {
	tests := []struct {
		name   string
		margin float64
		edge   float64
	}{
		{"configured", 5, -5},
		{"default", 0, -DefaultMargin},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := ParticleConfig{Kind: WindStreak, Capacity: 1, Speed: Range{60, 60}, Alpha: Range{100, 100}, Size: Range{4, 4}, Margin: tt.margin}
			f := NewField(cfg, 1280, 720, seeded(1), rendertest.New())

			// Drifts 60 px/s left, starting just inside the margin.
			f.particles[0].X = tt.edge + 30
			f.Advance(0.25)
			assert.InDelta(t, tt.edge+15, f.Particles()[0].X, 1e-9, "still inside the margin")

			f.Advance(0.5)
			assert.InDelta(t, 1280+10, f.Particles()[0].X, 1e-9, "respawned at the right edge")
		})
	}
}

func TestKind_UnmarshalText(t *testing.T) {
	tests := []struct {
		input    string
		expected Kind
		wantErr  bool
	}{
		{"wind", WindStreak, false},
		{"Glow", Glow, false},
		{"ember", Ember, false},
		{"magic", Magic, false},
		{"sparkle", Sparkle, false},
		{"mote", Mote, false},
		{"smoke", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var k Kind
			err := k.UnmarshalText([]byte(tt.input))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, k)
		})
	}
	assert.Equal(t, "unknown", Kind(99).String())
}

func TestRange_Pick(t *testing.T) {
	rng := seeded(5)
	r := Range{2, 5}
	seen := map[int]bool{}
	for i := 0; i < 500; i++ {
		v := r.PickInt(rng)
		assert.GreaterOrEqual(t, v, 2)
		assert.LessOrEqual(t, v, 5)
		seen[v] = true
		f := r.Pick(rng)
		assert.GreaterOrEqual(t, f, 2.0)
		assert.LessOrEqual(t, f, 5.0)
	}
	assert.Len(t, seen, 4, "closed interval")
}
