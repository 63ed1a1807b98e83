package scenery

import (
	"math/rand"

	"github.com/younwookim/skyfall/internal/render"
)

// HillShape selects the silhouette of a hill.
type HillShape int

const (
	Gentle HillShape = iota
	Steep
	Rolling
)

func (s HillShape) String() string {
	switch s {
	case Gentle:
		return "gentle"
	case Steep:
		return "steep"
	case Rolling:
		return "rolling"
	default:
		return "unknown"
	}
}

var hillShapes = [...]HillShape{Gentle, Steep, Rolling}

// HillConfig configures a procedural hill range.
type HillConfig struct {
	Count        int          `yaml:"count"`
	TileWidth    int          `yaml:"tile_width"`
	Speed        float64      `yaml:"speed"`
	Height       Range        `yaml:"height"`
	WidthJitter  int          `yaml:"width_jitter"`
	OffsetJitter int          `yaml:"offset_jitter"`
	Steps        int          `yaml:"steps"`
	Details      Range        `yaml:"details"`
	BaseColors   []render.RGB `yaml:"base_colors"`
	DetailColors []render.RGB `yaml:"detail_colors"`
}

// Point is an integer boundary point in segment-local coordinates.
type Point struct {
	X, Y int
}

// Detail is a decorative glyph placed on a hill.
type Detail struct {
	X, Y int
	Tree bool
}

// HillSegment is one generated hill and its rendered surface.
type HillSegment struct {
	XOffset int
	Width   int
	Height  int
	Shape   HillShape
	Points  []Point
	Base    render.RGB
	Accent  render.RGB
	Details []Detail
	Surface render.Image
}

var (
	treeTop     = render.RGB{40, 80, 40}
	shadowDepth = 15
)

// HillShapePoints returns the stepped boundary of a hill of the given size,
// from bottom-left to bottom-right. y grows downward; y == height is the base.
func HillShapePoints(width, height, steps int, shape HillShape) []Point {
	points := make([]Point, 0, steps+2)
	points = append(points, Point{0, height})

	for step := 1; step <= steps; step++ {
		x := width * step / steps
		var y int
		switch shape {
		case Gentle:
			rise := step
			if step >= steps/2 {
				rise = steps - step
			}
			y = height - height*rise*3/(steps*4)
		case Steep:
			rise := step
			if step >= steps/2 {
				rise = steps - step
			}
			y = height - height*rise*2/steps
		case Rolling:
			switch step % 3 {
			case 0:
				y = height - height*2/3
			case 1:
				y = height - height/2
			default:
				y = height - height*3/4
			}
		}
		points = append(points, Point{x, y})
	}

	return append(points, Point{width, height})
}

// HillRange is a row of procedural hills tiled by two alternating cursors.
// Both cursors always draw the same generation.
type HillRange struct {
	cfg        HillConfig
	screenH    float64
	rng        *rand.Rand
	factory    render.Factory
	offset     ScrollOffset
	segments   []HillSegment
	generation int
	shadows    *render.Cache[int]
}

// NewHillRange generates the first set of hills.
func NewHillRange(cfg HillConfig, screenH float64, rng *rand.Rand, factory render.Factory) *HillRange {
	r := &HillRange{
		cfg:     cfg,
		screenH: screenH,
		rng:     rng,
		factory: factory,
		offset:  NewScrollOffset(float64(cfg.TileWidth)),
		shadows: render.NewCache[int](),
	}
	r.generate()
	return r
}

// Advance scrolls the range and regenerates every hill when a cursor wraps.
// It reports whether a wrap happened.
func (r *HillRange) Advance(dt float64) bool {
	if !r.offset.Advance(r.cfg.Speed * dt) {
		return false
	}
	r.generate()
	return true
}

// Draw draws the current generation at both cursors.
func (r *HillRange) Draw(dst render.Image) {
	r.drawTile(dst, r.offset.X1)
	r.drawTile(dst, r.offset.X2)
}

// Generation counts how many times the hill set has been generated.
func (r *HillRange) Generation() int {
	return r.generation
}

// Segments returns the current generation.
func (r *HillRange) Segments() []HillSegment {
	return r.segments
}

// Offset returns the tile cursors.
func (r *HillRange) Offset() ScrollOffset {
	return r.offset
}

func (r *HillRange) drawTile(dst render.Image, x0 float64) {
	for i := range r.segments {
		seg := &r.segments[i]
		x := x0 + float64(seg.XOffset)
		dst.DrawImage(seg.Surface, render.At(x, r.screenH-float64(seg.Height)))
		dst.DrawImage(r.shadow(seg.Width), render.At(x, r.screenH-float64(shadowDepth)))
	}
}

func (r *HillRange) shadow(width int) render.Image {
	return r.shadows.Get(width, func() render.Image {
		img := r.factory.NewImage(width, shadowDepth)
		for i := 0; i < shadowDepth; i++ {
			alpha := 40 * (1 - float64(i)/float64(shadowDepth))
			img.FillRect(0, float32(i), float32(width), 1, render.Black.Alpha(alpha))
		}
		return img
	})
}

func (r *HillRange) generate() {
	for i := range r.segments {
		r.segments[i].Surface.Dispose()
	}

	c := r.cfg
	slot := c.TileWidth / c.Count
	next := make([]HillSegment, c.Count)
	for i := range next {
		seg := HillSegment{
			Height:  c.Height.PickInt(r.rng),
			Width:   randInt(r.rng, slot-c.WidthJitter, slot+c.WidthJitter),
			XOffset: i*slot + randInt(r.rng, -c.OffsetJitter, c.OffsetJitter),
			Shape:   hillShapes[r.rng.Intn(len(hillShapes))],
			Base:    pick(r.rng, c.BaseColors),
			Accent:  pick(r.rng, c.DetailColors),
		}
		seg.Points = HillShapePoints(seg.Width, seg.Height, c.Steps, seg.Shape)

		n := c.Details.PickInt(r.rng)
		for d := 0; d < n; d++ {
			seg.Details = append(seg.Details, Detail{
				X:    randInt(r.rng, 10, seg.Width-10),
				Y:    randInt(r.rng, seg.Height/3, seg.Height-20),
				Tree: r.rng.Float64() > 0.5,
			})
		}
		seg.Surface = r.render(&seg)
		next[i] = seg
	}

	r.segments = next
	r.generation++
}

// render rasterizes a segment: each step column is filled with the base
// colour and capped with a ridge stroke darkened by its step index.
func (r *HillRange) render(seg *HillSegment) render.Image {
	img := r.factory.NewImage(seg.Width, seg.Height)
	h := float32(seg.Height)

	for i := 0; i+1 < len(seg.Points); i++ {
		a, b := seg.Points[i], seg.Points[i+1]
		dx, dy := b.X-a.X, b.Y-a.Y
		steps := max(2, abs(dx)/10)
		for s := 0; s < steps; s++ {
			sx1 := float32(a.X + floorDiv(dx*s, steps))
			sx2 := float32(a.X + floorDiv(dx*(s+1), steps))
			sy := float32(a.Y + floorDiv(dy*s, steps))
			img.FillRect(sx1, sy, sx2-sx1, h-sy, seg.Base.Opaque())
			img.StrokeLine(sx1, sy, sx2, sy, 3, seg.Base.Darken(s*2).Opaque())
		}
	}

	for _, d := range seg.Details {
		x, y := float32(d.X), float32(d.Y)
		if d.Tree {
			img.FillRect(x-3, y-8, 6, 8, seg.Accent.Opaque())
			img.FillRect(x-4, y-12, 8, 4, treeTop.Opaque())
		} else {
			img.FillRect(x-4, y-4, 8, 8, seg.Accent.Opaque())
		}
	}
	return img
}

func randInt(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}

func pick(rng *rand.Rand, colors []render.RGB) render.RGB {
	if len(colors) == 0 {
		return render.White
	}
	return colors[rng.Intn(len(colors))]
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
