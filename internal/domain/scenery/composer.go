package scenery

import (
	"math/rand"

	"github.com/younwookim/skyfall/internal/render"
)

// ImageSource supplies sprites by path. Missing images come back as a flat
// placeholder of the requested size, never nil.
type ImageSource interface {
	Image(path string, w, h int, fallback render.RGB) render.Image
}

// ComposerConfig describes a full background. A zero Sun radius, hill
// count or drifter count leaves that piece out.
type ComposerConfig struct {
	Sky      SkyConfig        `yaml:"sky"`
	Sun      SunConfig        `yaml:"sun"`
	Layers   []LayerConfig    `yaml:"layers"`
	Hills    HillConfig       `yaml:"hills"`
	Drifters DrifterConfig    `yaml:"drifters"`
	Fields   []ParticleConfig `yaml:"fields"`
}

// Composer owns a background and draws it back to front: sky, sun,
// parallax layers, hills, drifters, then particle fields.
type Composer struct {
	sky      *SkyGradient
	sun      *Sun
	layers   []*Layer
	hills    *HillRange
	drifters []*Drifter
	fields   []*Field
}

// NewComposer builds every piece of cfg for a w×h viewport.
func NewComposer(cfg ComposerConfig, w, h int, rng *rand.Rand, factory render.Factory, images ImageSource) *Composer {
	c := &Composer{sky: NewSkyGradient(cfg.Sky, factory)}

	if cfg.Sun.Radius > 0 {
		c.sun = NewSun(cfg.Sun, factory)
	}
	for _, lc := range cfg.Layers {
		img := images.Image(lc.Image, lc.Width, lc.Height, lc.Color)
		c.layers = append(c.layers, NewLayer(img, lc.Speed, lc.Y))
	}
	if cfg.Hills.Count > 0 {
		c.hills = NewHillRange(cfg.Hills, float64(h), rng, factory)
	}
	if d := cfg.Drifters; d.Count > 0 {
		img := images.Image(d.Image, d.Width, d.Height, d.Color)
		shadow := DrifterShadow(factory, d.Width, d.Height)
		for i := 0; i < d.Count; i++ {
			c.drifters = append(c.drifters, NewDrifter(d, img, shadow, rng))
		}
	}
	for _, fc := range cfg.Fields {
		c.fields = append(c.fields, NewField(fc, float64(w), float64(h), rng, factory))
	}
	return c
}

// Advance advances every piece by dt.
func (c *Composer) Advance(dt float64) {
	c.sky.Advance(dt)
	if c.sun != nil {
		c.sun.Advance(dt)
	}
	for _, l := range c.layers {
		l.Advance(dt)
	}
	if c.hills != nil {
		c.hills.Advance(dt)
	}
	for _, d := range c.drifters {
		d.Advance(dt)
	}
	for _, f := range c.fields {
		f.Advance(dt)
	}
}

// Draw draws every piece in z-order.
func (c *Composer) Draw(dst render.Image) {
	c.sky.Draw(dst)
	if c.sun != nil {
		c.sun.Draw(dst)
	}
	for _, l := range c.layers {
		l.Draw(dst)
	}
	if c.hills != nil {
		c.hills.Draw(dst)
	}
	for _, d := range c.drifters {
		d.Draw(dst)
	}
	for _, f := range c.fields {
		f.Draw(dst)
	}
}

// AdvanceAndDraw advances by dt then draws.
func (c *Composer) AdvanceAndDraw(dst render.Image, dt float64) {
	c.Advance(dt)
	c.Draw(dst)
}

func (c *Composer) Sky() *SkyGradient { return c.sky }
func (c *Composer) Sun() *Sun { return c.sun }
func (c *Composer) Layers() []*Layer { return c.layers }
func (c *Composer) Hills() *HillRange { return c.hills }
func (c *Composer) Fields() []*Field { return c.fields }
func (c *Composer) Drifters() []*Drifter { return c.drifters }
