package render

import "image/color"

// RGB is an opaque colour as it appears in configuration files.
type RGB [3]uint8

// Opaque returns the colour with full alpha.
func (c RGB) Opaque() color.NRGBA {
	return color.NRGBA{R: c[0], G: c[1], B: c[2], A: 255}
}

// Alpha returns the colour with the given alpha, clamped to 0..255.
func (c RGB) Alpha(a float64) color.NRGBA {
	return color.NRGBA{R: c[0], G: c[1], B: c[2], A: ClampByte(a)}
}

// Darken subtracts d from every channel, stopping at 0.
func (c RGB) Darken(d int) RGB {
	var out RGB
	for i, v := range c {
		out[i] = ClampByte(float64(int(v) - d))
	}
	return out
}

// Quantize snaps every channel down to a multiple of step.
func (c RGB) Quantize(step int) RGB {
	if step <= 1 {
		return c
	}
	var out RGB
	for i, v := range c {
		out[i] = uint8(int(v) / step * step)
	}
	return out
}

// Lerp blends from a to b by t in [0, 1].
func Lerp(a, b RGB, t float64) RGB {
	var out RGB
	for i := range a {
		out[i] = ClampByte(float64(a[i])*(1-t) + float64(b[i])*t)
	}
	return out
}

// ClampByte truncates v into 0..255.
func ClampByte(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	default:
		return uint8(v)
	}
}

var (
	White = RGB{255, 255, 255}
	Black = RGB{0, 0, 0}
)
