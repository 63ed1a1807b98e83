package scenery

import (
	"math"
	"math/rand"

	"github.com/younwookim/skyfall/internal/render"
)

// DrifterConfig configures floating islands.
type DrifterConfig struct {
	Image  string     `yaml:"image"`
	Count  int        `yaml:"count"`
	Width  int        `yaml:"width"`
	Height int        `yaml:"height"`
	Color  render.RGB `yaml:"color"`
	Speed  Range      `yaml:"speed"` // hundreds of pixels per second
	SpawnX Range      `yaml:"spawn_x"`
	SpawnY Range      `yaml:"spawn_y"`
}

// Drifter is a sprite floating leftward with a gentle vertical bob.
// It respawns to the right once it has left the screen.
type Drifter struct {
	cfg    DrifterConfig
	image  render.Image
	shadow render.Image
	rng    *rand.Rand
	x, y   float64
	speed  float64
	bob    float64
}

// NewDrifter creates a drifter sharing the given sprite and shadow surfaces.
func NewDrifter(cfg DrifterConfig, img, shadow render.Image, rng *rand.Rand) *Drifter {
	d := &Drifter{cfg: cfg, image: img, shadow: shadow, rng: rng}
	d.respawn()
	return d
}

func (d *Drifter) respawn() {
	d.x = float64(d.cfg.SpawnX.PickInt(d.rng))
	d.y = float64(d.cfg.SpawnY.PickInt(d.rng))
	d.speed = d.cfg.Speed.Pick(d.rng)
	d.bob = d.rng.Float64() * 2 * math.Pi
}

// Advance moves the drifter.
func (d *Drifter) Advance(dt float64) {
	d.x -= d.speed * dt * 100
	d.bob += dt * 0.5
	w, _ := d.image.Size()
	if d.x+float64(w) < 0 {
		d.respawn()
	}
}

// Draw draws the shadow and the sprite.
func (d *Drifter) Draw(dst render.Image) {
	_, h := d.image.Size()
	dst.DrawImage(d.shadow, render.At(d.x-5, d.y+float64(h)-8))
	dst.DrawImage(d.image, render.At(d.x, d.y+4*math.Sin(d.bob)))
}

// Position returns the unbobbed top-left corner.
func (d *Drifter) Position() (x, y float64) {
	return d.x, d.y
}

// DrifterShadow renders the soft shadow for a sprite of the given size.
func DrifterShadow(factory render.Factory, w, h int) render.Image {
	sw, sh := w+10, max(h/3, 2)
	img := factory.NewImage(sw, sh)
	img.FillRect(float32(sw)/8, 0, float32(sw)*3/4, float32(sh), render.Black.Alpha(40))
	img.FillRect(0, float32(sh)/4, float32(sw), float32(sh)/2, render.Black.Alpha(40))
	return img
}
