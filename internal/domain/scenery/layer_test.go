package scenery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/skyfall/internal/render/rendertest"
)

func TestScrollOffset_CursorsStayOneTileApart(t *testing.T) {
	widths := []float64{64, 800, 1400}
	for _, w := range widths {
		rng := seeded(int64(w))
		o := NewScrollOffset(w)
		for i := 0; i < 20000; i++ {
			o.Advance(rng.Float64() * 40)
			diff := o.X2 - o.X1
			if diff > 0 {
				require.InDelta(t, w, diff, 1e-6, "frame %d", i)
			} else {
				require.InDelta(t, -w, diff, 1e-6, "frame %d", i)
			}
			require.Greater(t, o.X1+w, -40.0)
			require.Greater(t, o.X2+w, -40.0)
		}
	}
}

func TestScrollOffset_Advance(t *testing.T) {
	tests := []struct {
		name    string
		dx      []float64
		wrapped bool
		x1, x2  float64
	}{
		{"no wrap", []float64{30}, false, -30, 70},
		{"exactly at edge", []float64{100}, false, -100, 0},
		{"first cursor wraps", []float64{60, 60}, true, 80, -20},
		{"cursors alternate", []float64{120, 100}, true, -20, 80},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := NewScrollOffset(100)
			var wrapped bool
			for _, dx := range tt.dx {
				wrapped = o.Advance(dx)
			}
			assert.Equal(t, tt.wrapped, wrapped)
			assert.InDelta(t, tt.x1, o.X1, 1e-9)
			assert.InDelta(t, tt.x2, o.X2, 1e-9)
		})
	}
}

func TestLayer_DrawsBothCursors(t *testing.T) {
	rec := rendertest.New()
	img := rec.NewImage(320, 40)
	l := NewLayer(img, 10, 25)

	l.Advance(0.5)
	screen := rendertest.Screen(640, 360)
	l.Draw(screen)

	require.Len(t, screen.Ops, 2)
	assert.Equal(t, -5.0, screen.Ops[0].X)
	assert.Equal(t, 315.0, screen.Ops[1].X)
	for _, op := range screen.Ops {
		assert.Equal(t, 25.0, op.Y)
		assert.Equal(t, img.(*rendertest.Image).ID, op.Src)
	}
}
