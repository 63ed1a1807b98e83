package scenery

import (
	"math/rand"

	"github.com/younwookim/skyfall/internal/render"
)

const frameDT = 1.0 / 60.0

type stubImages struct {
	factory render.Factory
	paths   []string
}

func (s *stubImages) Image(path string, w, h int, fallback render.RGB) render.Image {
	s.paths = append(s.paths, path)
	img := s.factory.NewImage(w, h)
	img.Fill(fallback.Opaque())
	return img
}

func seeded(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func menuHills() HillConfig {
	return HillConfig{
		Count:        4,
		TileWidth:    1400,
		Speed:        18,
		Height:       Range{160, 220},
		WidthJitter:  60,
		OffsetJitter: 30,
		Steps:        8,
		Details:      Range{2, 5},
		BaseColors:   []render.RGB{{60, 100, 80}, {80, 120, 100}, {100, 140, 120}, {70, 90, 110}},
		DetailColors: []render.RGB{{90, 70, 50}, {110, 90, 70}, {80, 100, 80}, {120, 100, 80}},
	}
}
