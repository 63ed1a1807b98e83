package scenery

import (
	"math"

	"github.com/younwookim/skyfall/internal/render"
)

// SunConfig configures the pulsing light source.
type SunConfig struct {
	X      float64    `yaml:"x"`
	Y      float64    `yaml:"y"`
	Radius int        `yaml:"radius"`
	Pulse  float64    `yaml:"pulse"` // radians per second
	Core   render.RGB `yaml:"core"`
}

type glowRing struct {
	color  render.RGB
	alpha  float64
	factor float64
}

var glowRings = [...]glowRing{
	{render.RGB{255, 220, 120}, 60, 1.5},
	{render.RGB{255, 200, 100}, 90, 1.2},
	{render.RGB{255, 180, 80}, 120, 1.0},
}

const pulseBuckets = 8

// Sun is a square 8-bit sun whose glow breathes with a slow pulse.
// Glow surfaces are cached per pulse bucket.
type Sun struct {
	cfg     SunConfig
	factory render.Factory
	timer   float64
	glows   *render.Cache[int]
	core    render.Image
}

// NewSun creates a sun.
func NewSun(cfg SunConfig, factory render.Factory) *Sun {
	return &Sun{cfg: cfg, factory: factory, glows: render.NewCache[int]()}
}

// Advance moves the pulse phase.
func (s *Sun) Advance(dt float64) {
	s.timer += dt * s.cfg.Pulse
}

// PulseLevel returns the current pulse in [0, 1].
func (s *Sun) PulseLevel() float64 {
	return 0.5 + 0.5*math.Sin(s.timer)
}

// Draw draws the glow then the core, both additively.
func (s *Sun) Draw(dst render.Image) {
	bucket := int(s.PulseLevel() * (pulseBuckets - 1))
	glow := s.glows.Get(bucket, func() render.Image {
		return s.buildGlow(float64(bucket) / (pulseBuckets - 1))
	})
	if s.core == nil {
		s.core = s.buildCore()
	}

	gw, gh := glow.Size()
	op := render.At(s.cfg.X-float64(gw/2), s.cfg.Y-float64(gh/2))
	op.Additive = true
	dst.DrawImage(glow, op)

	r := float64(s.cfg.Radius)
	op = render.At(s.cfg.X-r/2, s.cfg.Y-r/2)
	op.Additive = true
	dst.DrawImage(s.core, op)
}

// Glows returns the number of cached glow surfaces.
func (s *Sun) Glows() int {
	return s.glows.Len()
}

func (s *Sun) buildGlow(pulse float64) render.Image {
	side := s.cfg.Radius * 4
	img := s.factory.NewImage(side, side)
	for _, g := range glowRings {
		size := float32(float64(s.cfg.Radius) * g.factor * (0.9 + 0.1*pulse))
		c := float32(side) / 2
		img.FillRect(c-size/2, c-size/2, size, size, g.color.Alpha(g.alpha))
	}
	return img
}

func (s *Sun) buildCore() render.Image {
	r := s.cfg.Radius
	img := s.factory.NewImage(r, r)
	img.Fill(s.cfg.Core.Opaque())
	bright := render.RGB{
		render.ClampByte(float64(s.cfg.Core[0]) + 20),
		render.ClampByte(float64(s.cfg.Core[1]) + 20),
		render.ClampByte(float64(s.cfg.Core[2]) + 20),
	}
	for x := 0; x < r; x += 4 {
		for y := 0; y < r; y += 4 {
			if (x+y)%8 == 0 {
				img.FillRect(float32(x), float32(y), 2, 2, bright.Opaque())
			}
		}
	}
	return img
}
