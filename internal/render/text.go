package render

import (
	"image/color"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Debug font cell size in pixels.
const (
	GlyphWidth  = 6
	GlyphHeight = 16
)

// TextWidth returns the unscaled pixel width of s.
func TextWidth(s string) int {
	return utf8.RuneCountInString(s) * GlyphWidth
}

// WrapText breaks s into lines no wider than maxWidth pixels at the given
// scale. Words longer than a line are kept whole on their own line.
func WrapText(s string, maxWidth int, scale float64) []string {
	if scale <= 0 {
		scale = 1
	}
	limit := int(float64(maxWidth) / (GlyphWidth * scale))
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	current := words[0]
	for _, w := range words[1:] {
		if utf8.RuneCountInString(current)+1+utf8.RuneCountInString(w) > limit {
			lines = append(lines, current)
			current = w
			continue
		}
		current += " " + w
	}
	return append(lines, current)
}

// RevealedRunes maps the first n runes of s onto lines, the result of
// WrapText(s, ...). It returns how many runes of each line are visible.
// Wrapping the full text and revealing a prefix of it keeps a word from
// jumping to the next line halfway through being typed.
func RevealedRunes(lines []string, s string, n int) []int {
	src := []rune(s)
	pos := 0
	skipSpace := func() int {
		start := pos
		for pos < len(src) && unicode.IsSpace(src[pos]) {
			pos++
		}
		return start
	}

	counts := make([]int, len(lines))
	for i, line := range lines {
		skipSpace()
		for _, r := range line {
			if r == ' ' {
				if skipSpace() < n {
					counts[i]++
				}
				continue
			}
			if pos < n {
				counts[i]++
			}
			pos++
		}
	}
	return counts
}

// TextCache renders strings once into their own surfaces so they can be
// drawn scaled, tinted and faded.
type TextCache struct {
	factory Factory
	cache   *Cache[string]
}

// NewTextCache returns an empty text cache allocating through f.
func NewTextCache(f Factory) *TextCache {
	return &TextCache{factory: f, cache: NewCache[string]()}
}

// Draw renders s with its top-left corner at (x, y).
func (t *TextCache) Draw(dst Image, s string, x, y, scale float64, clr RGB, alpha float64) {
	t.DrawPrefix(dst, s, utf8.RuneCountInString(s), x, y, scale, clr, alpha)
}

// DrawPrefix renders the first n runes of s. The surface is built for the
// whole of s, so typing s out one rune at a time allocates it once.
func (t *TextCache) DrawPrefix(dst Image, s string, n int, x, y, scale float64, clr RGB, alpha float64) {
	if s == "" || n <= 0 || alpha <= 0 {
		return
	}
	img := t.cache.Get(s, func() Image {
		img := t.factory.NewImage(max(TextWidth(s), 1), GlyphHeight)
		img.DrawText(s, 0, 0)
		return img
	})
	op := At(x, y).WithScale(scale).WithAlpha(alpha)
	op.Tint = clr.Opaque()
	if n < utf8.RuneCountInString(s) {
		op.SrcWidth = n * GlyphWidth
	}
	dst.DrawImage(img, op)
}

// DrawCentered renders s horizontally centred on cx.
func (t *TextCache) DrawCentered(dst Image, s string, cx, y, scale float64, clr RGB, alpha float64) {
	w := float64(TextWidth(s)) * scale
	t.Draw(dst, s, cx-w/2, y, scale, clr, alpha)
}

// Len returns the number of cached strings.
func (t *TextCache) Len() int {
	return t.cache.Len()
}

// Reset drops every cached string.
func (t *TextCache) Reset() {
	t.cache.Reset()
}

// Overlay fills dst with black at the given 0..255 level.
func Overlay(dst Image, level float64) {
	if level <= 0 {
		return
	}
	w, h := dst.Size()
	dst.FillRect(0, 0, float32(w), float32(h), color.NRGBA{A: ClampByte(level)})
}
