// Package ebiten implements render.Image and render.Factory on top of ebiten.
package ebiten

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/younwookim/skyfall/internal/render"
)

// Factory allocates ebiten-backed images.
type Factory struct{}

// NewFactory returns the ebiten image factory.
func NewFactory() Factory {
	return Factory{}
}

// NewImage creates a transparent image of the given size.
func (Factory) NewImage(width, height int) render.Image {
	return &Image{img: ebiten.NewImage(width, height)}
}

// FromImage uploads a decoded image.
func (Factory) FromImage(src image.Image) render.Image {
	return &Image{img: ebiten.NewImageFromImage(src)}
}

// Image wraps an *ebiten.Image.
type Image struct {
	img *ebiten.Image
}

// Wrap adapts an ebiten image, typically the screen passed to Draw.
func Wrap(img *ebiten.Image) *Image {
	return &Image{img: img}
}

// Ebiten returns the underlying ebiten image.
func (i *Image) Ebiten() *ebiten.Image {
	return i.img
}

func (i *Image) Size() (width, height int) {
	b := i.img.Bounds()
	return b.Dx(), b.Dy()
}

func (i *Image) Fill(clr color.Color) {
	i.img.Fill(clr)
}

func (i *Image) Clear() {
	i.img.Clear()
}

func (i *Image) FillRect(x, y, width, height float32, clr color.Color) {
	vector.DrawFilledRect(i.img, x, y, width, height, clr, false)
}

func (i *Image) StrokeLine(x0, y0, x1, y1, width float32, clr color.Color) {
	vector.StrokeLine(i.img, x0, y0, x1, y1, width, clr, false)
}

func (i *Image) FillCircle(cx, cy, radius float32, clr color.Color) {
	vector.DrawFilledCircle(i.img, cx, cy, radius, clr, true)
}

func (i *Image) DrawImage(src render.Image, opts *render.DrawOptions) {
	srcImg := src.(*Image).img
	if opts == nil {
		i.img.DrawImage(srcImg, nil)
		return
	}

	op := &ebiten.DrawImageOptions{}
	sx, sy := opts.Scale()
	op.GeoM.Scale(sx, sy)
	op.GeoM.Translate(opts.X, opts.Y)
	if opts.Tint != nil {
		op.ColorScale.ScaleWithColor(opts.Tint)
	}
	op.ColorScale.ScaleAlpha(float32(opts.Alpha))
	if opts.Additive {
		op.Blend = ebiten.BlendLighter
	}
	op.Filter = ebiten.FilterNearest
	if b := srcImg.Bounds(); opts.SrcWidth > 0 && opts.SrcWidth < b.Dx() {
		srcImg = srcImg.SubImage(image.Rect(b.Min.X, b.Min.Y, b.Min.X+opts.SrcWidth, b.Max.Y)).(*ebiten.Image)
	}
	i.img.DrawImage(srcImg, op)
}

func (i *Image) DrawText(s string, x, y int) {
	ebitenutil.DebugPrintAt(i.img, s, x, y)
}

func (i *Image) Dispose() {
	if i.img != nil {
		i.img.Deallocate()
	}
}
