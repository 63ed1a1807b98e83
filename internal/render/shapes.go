package render

import "image/color"

// StrokeRect draws a rectangle outline of the given thickness inside the
// rectangle's bounds.
func StrokeRect(dst Image, x, y, w, h, thickness float32, clr color.Color) {
	dst.FillRect(x, y, w, thickness, clr)
	dst.FillRect(x, y+h-thickness, w, thickness, clr)
	dst.FillRect(x, y, thickness, h, clr)
	dst.FillRect(x+w-thickness, y, thickness, h, clr)
}

// Rect is an axis-aligned rectangle in screen pixels.
type Rect struct {
	X, Y, W, H float64
}

// CenteredRect returns a w×h rectangle centred on (cx, cy).
func CenteredRect(cx, cy, w, h float64) Rect {
	return Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

// Contains reports whether the point lies inside r.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Grow extends r by dx on each side horizontally and dy vertically.
func (r Rect) Grow(dx, dy float64) Rect {
	return Rect{X: r.X - dx, Y: r.Y - dy, W: r.W + 2*dx, H: r.H + 2*dy}
}
