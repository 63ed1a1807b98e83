package scenery

import (
	"fmt"
	"math"
	"math/rand"
	"strings"

	"github.com/younwookim/skyfall/internal/render"
)

// Kind selects how a particle spawns, moves, expires and looks.
type Kind int

const (
	WindStreak Kind = iota // thin horizontal streak drifting with the wind
	Glow                   // soft mote with a halo, bobbing slowly
	Ember                  // warm square rising from below and fading out
	Magic                  // burst rising from the bottom centre
	Sparkle                // square falling in from the top or right edge
	Mote                   // round dust mote carried by the wind
)

var kindNames = [...]string{"wind", "glow", "ember", "magic", "sparkle", "mote"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// UnmarshalText parses a kind name from configuration.
func (k *Kind) UnmarshalText(text []byte) error {
	name := strings.ToLower(string(text))
	for i, n := range kindNames {
		if n == name {
			*k = Kind(i)
			return nil
		}
	}
	return fmt.Errorf("unknown particle kind %q", text)
}

// Range is a closed interval [min, max].
type Range [2]float64

// Pick draws uniformly from the interval.
func (r Range) Pick(rng *rand.Rand) float64 {
	return r[0] + rng.Float64()*(r[1]-r[0])
}

// PickInt draws an integer uniformly from the interval.
func (r Range) PickInt(rng *rand.Rand) int {
	lo, hi := int(r[0]), int(r[1])
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}

// ParticleConfig configures one fixed-capacity field.
type ParticleConfig struct {
	Kind     Kind         `yaml:"kind"`
	Capacity int          `yaml:"capacity"`
	Speed    Range        `yaml:"speed"`
	Alpha    Range        `yaml:"alpha"`
	Size     Range        `yaml:"size"`
	Life     Range        `yaml:"life"`    // seconds, Magic and Sparkle
	Fade     float64      `yaml:"fade"`   // alpha per second, Ember
	Spread   float64      `yaml:"spread"` // Magic horizontal spawn spread
	// Margin is how far outside the viewport a particle may travel before
	// it respawns. Zero means DefaultMargin.
	Margin float64      `yaml:"margin"`
	Colors []render.RGB `yaml:"colors"`
}

// DefaultMargin is the respawn margin used when a config leaves it unset.
const DefaultMargin = 50

// BoundsMargin returns the configured margin, or DefaultMargin.
func (c ParticleConfig) BoundsMargin() float64 {
	if c.Margin > 0 {
		return c.Margin
	}
	return DefaultMargin
}

// Particle is one slot of a field.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Alpha   float64
	Life    float64
	MaxLife float64
	Size    int
	Color   render.RGB
	Phase   float64
}

// GlyphKey identifies a cached particle surface.
type GlyphKey struct {
	Kind  Kind
	Size  int
	Color render.RGB
}

// Field is a fixed pool of particles recycled in place.
type Field struct {
	cfg       ParticleConfig
	w, h      float64
	rng       *rand.Rand
	factory   render.Factory
	particles []Particle
	glyphs    *render.Cache[GlyphKey]
	time      float64
}

// NewField creates a field of cfg.Capacity particles spread over a w×h area.
func NewField(cfg ParticleConfig, w, h float64, rng *rand.Rand, factory render.Factory) *Field {
	f := &Field{
		cfg:       cfg,
		w:         w,
		h:         h,
		rng:       rng,
		factory:   factory,
		particles: make([]Particle, cfg.Capacity),
		glyphs:    render.NewCache[GlyphKey](),
	}
	f.Reset()
	return f
}

// Reset respawns every slot with its initial distribution.
func (f *Field) Reset() {
	f.time = 0
	for i := range f.particles {
		f.spawn(&f.particles[i], true)
	}
}

// Advance integrates every particle and respawns expired ones.
func (f *Field) Advance(dt float64) {
	f.time += dt
	for i := range f.particles {
		p := &f.particles[i]
		f.step(p, dt)
		if f.expired(p) {
			f.spawn(p, false)
		}
	}
}

// Draw draws every particle from its cached glyph.
func (f *Field) Draw(dst render.Image) {
	for i := range f.particles {
		p := &f.particles[i]
		if p.Alpha <= 0 {
			continue
		}
		key := GlyphKey{Kind: f.cfg.Kind, Size: p.Size, Color: p.Color}
		glyph := f.glyphs.Get(key, func() render.Image { return f.buildGlyph(key) })

		x, y := p.X, p.Y
		switch f.cfg.Kind {
		case Glow:
			y += 2 * math.Sin(f.time*0.3+p.Phase)
			x -= float64(p.Size + 2)
			y -= float64(p.Size + 2)
		case Sparkle, Magic, Mote:
			x -= float64(p.Size)
			y -= float64(p.Size)
		case WindStreak, Ember:
		}
		op := render.At(x, y).WithAlpha(p.Alpha)
		op.Additive = f.cfg.Kind == Magic || f.cfg.Kind == Glow
		dst.DrawImage(glyph, op)
	}
}

// Len returns the number of particle slots. It never changes.
func (f *Field) Len() int {
	return len(f.particles)
}

// Particles exposes the slots for inspection.
func (f *Field) Particles() []Particle {
	return f.particles
}

// Glyphs returns the number of distinct cached glyphs.
func (f *Field) Glyphs() int {
	return f.glyphs.Len()
}

// Kind returns the particle kind of the field.
func (f *Field) Kind() Kind {
	return f.cfg.Kind
}

func (f *Field) color() render.RGB {
	if len(f.cfg.Colors) == 0 {
		return render.White
	}
	return f.cfg.Colors[f.rng.Intn(len(f.cfg.Colors))]
}

func (f *Field) spawn(p *Particle, initial bool) {
	c := f.cfg
	*p = Particle{
		Size:  c.Size.PickInt(f.rng),
		Color: f.color(),
		Alpha: c.Alpha.Pick(f.rng),
	}

	switch c.Kind {
	case WindStreak:
		speed := c.Speed.Pick(f.rng)
		p.Y = f.rng.Float64() * f.h
		p.VX, p.X = -speed, f.w+10
		if initial {
			p.X = f.rng.Float64() * f.w
		}
	case Glow:
		p.VX = -c.Speed.Pick(f.rng)
		p.X = f.w + 10
		p.Y = f.rng.Float64() * f.h
		p.Phase = f.rng.Float64() * 2 * math.Pi
		if initial {
			p.X = f.rng.Float64() * f.w
		}
	case Ember:
		p.VY = -c.Speed.Pick(f.rng)
		p.X = f.rng.Float64() * f.w
		p.Y = f.h + 20
		if initial {
			p.Y = f.rng.Float64() * (f.h + 20)
		}
	case Magic:
		speed := c.Speed.Pick(f.rng)
		p.X = f.w/2 + c.Spread*(f.rng.Float64()-0.5)
		p.Y = f.h - 100
		p.VX = -30 + f.rng.Float64()*60
		p.VY = -speed + f.rng.Float64()*0.7*speed
		p.MaxLife = c.Life.Pick(f.rng)
		p.Life = p.MaxLife
		if initial {
			p.Life = f.rng.Float64() * p.MaxLife
		}
		p.Alpha = lifeAlpha(p)
	case Sparkle:
		speed := c.Speed.Pick(f.rng)
		if f.rng.Intn(2) == 0 {
			p.X = -20 + f.rng.Float64()*(f.w+40)
			p.Y = -10
			p.VX = (f.rng.Float64() - 0.5) * 2 * speed / 1.5
			p.VY = speed
		} else {
			p.X = f.w + 10
			p.Y = f.rng.Float64() * f.h
			p.VX = -speed * 2
			p.VY = (f.rng.Float64() - 0.5) * speed
		}
		p.MaxLife = c.Life.Pick(f.rng)
		p.Life = p.MaxLife
		if initial {
			p.Life = f.rng.Float64() * p.MaxLife
		}
		p.Alpha = lifeAlpha(p)
	case Mote:
		p.VX = c.Speed.Pick(f.rng)
		p.X = -10
		p.Y = f.rng.Float64() * f.h
		if initial {
			p.X = f.rng.Float64() * f.w
		}
	}
}

func (f *Field) step(p *Particle, dt float64) {
	p.X += p.VX * dt
	p.Y += p.VY * dt

	switch f.cfg.Kind {
	case WindStreak, Glow:
	case Ember:
		p.Alpha -= f.cfg.Fade * dt
	case Magic, Sparkle:
		p.Life -= dt
		p.Alpha = lifeAlpha(p)
	case Mote:
		p.Y += math.Sin(f.time*2) * 12 * dt
	}
}

func (f *Field) expired(p *Particle) bool {
	switch f.cfg.Kind {
	case Magic, Sparkle:
		if p.Life <= 0 {
			return true
		}
	case Ember:
		if p.Alpha <= 0 {
			return true
		}
	case WindStreak, Glow, Mote:
	}
	m := f.cfg.BoundsMargin()
	return p.X < -m || p.X > f.w+m || p.Y < -m || p.Y > f.h+m
}

func (f *Field) buildGlyph(key GlyphKey) render.Image {
	s := key.Size
	switch key.Kind {
	case WindStreak:
		img := f.factory.NewImage(s, 1)
		for i := 0; i < s; i++ {
			img.FillRect(float32(i), 0, 1, 1, key.Color.Alpha(255*(1-float64(i)/float64(s))))
		}
		return img
	case Glow:
		g := s + 2
		img := f.factory.NewImage(g*2, g*2)
		img.FillRect(0, 0, float32(g*2), float32(g*2), key.Color.Alpha(80))
		img.FillRect(float32(g-s), float32(g-s), float32(s*2), float32(s*2), key.Color.Opaque())
		return img
	case Ember, Sparkle:
		img := f.factory.NewImage(s, s)
		img.Fill(key.Color.Opaque())
		return img
	case Magic, Mote:
		img := f.factory.NewImage(s*2, s*2)
		img.FillCircle(float32(s), float32(s), float32(s), key.Color.Opaque())
		return img
	}
	return f.factory.NewImage(1, 1)
}

func lifeAlpha(p *Particle) float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	return 255 * p.Life / p.MaxLife
}
