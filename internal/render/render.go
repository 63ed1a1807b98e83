// Package render defines the drawing surface the presentation core draws on.
//
// Scenery, dialogue and scenes only ever see Image and Factory, so the same
// code runs against the ebiten backend in the binary and against the
// recording backend in tests.
package render

import (
	"image"
	"image/color"
)

// Image is a drawable surface of fixed pixel size.
type Image interface {
	Size() (width, height int)

	Fill(clr color.Color)
	Clear()

	FillRect(x, y, width, height float32, clr color.Color)
	StrokeLine(x0, y0, x1, y1, width float32, clr color.Color)
	FillCircle(cx, cy, radius float32, clr color.Color)

	// DrawImage composites src onto the image. nil options draw src
	// unscaled and opaque at the origin.
	DrawImage(src Image, opts *DrawOptions)

	// DrawText prints s in the built-in debug font, white, with its top-left
	// corner at (x, y).
	DrawText(s string, x, y int)

	Dispose()
}

// Factory allocates images.
type Factory interface {
	NewImage(width, height int) Image
	FromImage(img image.Image) Image
}

// DrawOptions positions and tints a DrawImage call.
type DrawOptions struct {
	X, Y float64
	// ScaleX and ScaleY of 0 are treated as 1.
	ScaleX, ScaleY float64
	// Alpha multiplies the source opacity, in [0, 1].
	Alpha float64
	// Tint multiplies the source colour when non-nil.
	Tint     color.Color
	Additive bool
	// SrcWidth crops src to its leftmost SrcWidth pixels when positive.
	SrcWidth int
}

// At returns opaque, unscaled options translated to (x, y).
func At(x, y float64) *DrawOptions {
	return &DrawOptions{X: x, Y: y, ScaleX: 1, ScaleY: 1, Alpha: 1}
}

// WithAlpha sets the opacity multiplier from a 0..255 level.
func (o *DrawOptions) WithAlpha(level float64) *DrawOptions {
	o.Alpha = clamp01(level / 255)
	return o
}

// WithScale sets a uniform scale.
func (o *DrawOptions) WithScale(s float64) *DrawOptions {
	o.ScaleX, o.ScaleY = s, s
	return o
}

// Scale returns the effective scale, mapping 0 to 1.
func (o *DrawOptions) Scale() (sx, sy float64) {
	sx, sy = o.ScaleX, o.ScaleY
	if sx == 0 {
		sx = 1
	}
	if sy == 0 {
		sy = 1
	}
	return sx, sy
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
