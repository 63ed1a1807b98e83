// Package scenery holds the animated background pieces: scrolling layers,
// particle fields, procedural hills, the sky gradient, the sun and the
// composer that draws them back to front.
//
// Every component advances only from the dt it is given and draws only
// through render.Image, so a seeded run is reproducible frame by frame.
package scenery

import "github.com/younwookim/skyfall/internal/render"

// ScrollOffset is a pair of tile cursors one tile width apart.
type ScrollOffset struct {
	X1, X2 float64
	Width  float64
}

// NewScrollOffset places the first tile at the origin and the second right after it.
func NewScrollOffset(width float64) ScrollOffset {
	return ScrollOffset{X1: 0, X2: width, Width: width}
}

// Advance moves both cursors left by dx and reports whether either wrapped.
// A cursor that has scrolled fully past the left edge is moved to sit
// immediately after the other one.
func (o *ScrollOffset) Advance(dx float64) bool {
	o.X1 -= dx
	o.X2 -= dx

	wrapped := false
	if o.X1+o.Width < 0 {
		o.X1 = o.X2 + o.Width
		wrapped = true
	}
	if o.X2+o.Width < 0 {
		o.X2 = o.X1 + o.Width
		wrapped = true
	}
	return wrapped
}

// LayerConfig describes one parallax band.
type LayerConfig struct {
	Image  string     `yaml:"image"`
	Speed  float64    `yaml:"speed"`
	Y      float64    `yaml:"y"`
	Width  int        `yaml:"width"`
	Height int        `yaml:"height"`
	Color  render.RGB `yaml:"color"` // placeholder fill when the image is missing
}

// Layer is a horizontally tiling image band scrolling at constant speed.
type Layer struct {
	image  render.Image
	speed  float64
	y      float64
	offset ScrollOffset
}

// NewLayer creates a layer whose tile width is the image width.
func NewLayer(img render.Image, speed, y float64) *Layer {
	w, _ := img.Size()
	return &Layer{
		image:  img,
		speed:  speed,
		y:      y,
		offset: NewScrollOffset(float64(w)),
	}
}

// Advance scrolls the layer by speed*dt.
func (l *Layer) Advance(dt float64) {
	l.offset.Advance(l.speed * dt)
}

// Draw draws the tile at both cursors.
func (l *Layer) Draw(dst render.Image) {
	dst.DrawImage(l.image, render.At(l.offset.X1, l.y))
	dst.DrawImage(l.image, render.At(l.offset.X2, l.y))
}

// Offset returns the current cursors.
func (l *Layer) Offset() ScrollOffset {
	return l.offset
}
