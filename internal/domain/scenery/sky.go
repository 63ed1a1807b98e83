package scenery

import "github.com/younwookim/skyfall/internal/render"

// SkyConfig configures the banded sky gradient.
type SkyConfig struct {
	Top     render.RGB `yaml:"top"`
	Bottom  render.RGB `yaml:"bottom"`
	Bands   int        `yaml:"bands"`
	Quantum int        `yaml:"quantum"`
	Refresh float64    `yaml:"refresh"` // seconds between rebuilds
}

// SkyGradient draws a quantized vertical gradient from a cached surface.
// The surface is rebuilt only when the target size changes or the refresh
// interval has elapsed.
type SkyGradient struct {
	cfg     SkyConfig
	factory render.Factory
	surface render.Image
	w, h    int
	timer   float64
	builds  int
}

// NewSkyGradient returns a gradient that builds its surface on first draw.
func NewSkyGradient(cfg SkyConfig, factory render.Factory) *SkyGradient {
	return &SkyGradient{cfg: cfg, factory: factory}
}

// Advance accumulates time toward the next refresh.
func (s *SkyGradient) Advance(dt float64) {
	s.timer += dt
}

// Draw blits the cached gradient, rebuilding it when stale.
func (s *SkyGradient) Draw(dst render.Image) {
	w, h := dst.Size()
	if s.surface == nil || w != s.w || h != s.h || s.timer > s.cfg.Refresh {
		s.rebuild(w, h)
	}
	dst.DrawImage(s.surface, nil)
}

// Builds returns how many times the surface has been rasterized.
func (s *SkyGradient) Builds() int {
	return s.builds
}

// Bands returns the colour of every band, top to bottom.
func (s *SkyGradient) Bands() []render.RGB {
	bands := make([]render.RGB, s.cfg.Bands)
	for i := range bands {
		t := float64(i) / float64(s.cfg.Bands)
		bands[i] = render.Lerp(s.cfg.Top, s.cfg.Bottom, t).Quantize(s.cfg.Quantum)
	}
	return bands
}

func (s *SkyGradient) rebuild(w, h int) {
	if s.surface != nil {
		s.surface.Dispose()
	}
	s.surface = s.factory.NewImage(w, h)
	s.w, s.h = w, h
	s.timer = 0
	s.builds++

	bands := s.Bands()
	bandH := h / len(bands)
	for i, c := range bands {
		y := i * bandH
		end := y + bandH
		if i == len(bands)-1 {
			end = h
		}
		s.surface.FillRect(0, float32(y), float32(w), float32(end-y), c.Opaque())
	}
}
