// Package rendertest provides a render backend that records draw calls
// instead of rasterizing them.
package rendertest

import (
	"image"
	"image/color"

	"github.com/younwookim/skyfall/internal/render"
)

// OpKind names a recorded draw call.
type OpKind string

const (
	OpFill   OpKind = "fill"
	OpClear  OpKind = "clear"
	OpRect   OpKind = "rect"
	OpLine   OpKind = "line"
	OpCircle OpKind = "circle"
	OpImage  OpKind = "image"
	OpText   OpKind = "text"
)

// Op is one recorded draw call.
type Op struct {
	Kind     OpKind
	Src      int // source image ID for OpImage
	X, Y     float64
	W, H     float64
	Alpha    float64
	Additive bool
	Text     string
	Color    color.Color
}

// Recorder is a render.Factory whose images record what is drawn on them.
type Recorder struct {
	images []*Image
}

// New returns an empty recorder.
func New() *Recorder {
	return &Recorder{}
}

// NewImage allocates a recording image.
func (r *Recorder) NewImage(width, height int) render.Image {
	img := &Image{ID: len(r.images) + 1, W: width, H: height}
	r.images = append(r.images, img)
	return img
}

// FromImage allocates a recording image of the source's size.
func (r *Recorder) FromImage(src image.Image) render.Image {
	b := src.Bounds()
	return r.NewImage(b.Dx(), b.Dy())
}

// Screen returns a standalone image not counted as an allocation.
func Screen(width, height int) *Image {
	return &Image{W: width, H: height}
}

// Allocs returns the number of images created through the recorder.
func (r *Recorder) Allocs() int {
	return len(r.images)
}

// Live returns the number of allocated images not yet disposed.
func (r *Recorder) Live() int {
	n := 0
	for _, img := range r.images {
		if !img.Disposed {
			n++
		}
	}
	return n
}

// Image records draw calls made on it.
type Image struct {
	ID       int
	W, H     int
	Ops      []Op
	Disposed bool
}

func (i *Image) Size() (width, height int) { return i.W, i.H }

func (i *Image) Fill(clr color.Color) {
	i.Ops = append(i.Ops, Op{Kind: OpFill, Color: clr, W: float64(i.W), H: float64(i.H)})
}

func (i *Image) Clear() {
	i.Ops = append(i.Ops, Op{Kind: OpClear})
}

func (i *Image) FillRect(x, y, width, height float32, clr color.Color) {
	i.Ops = append(i.Ops, Op{Kind: OpRect, X: float64(x), Y: float64(y), W: float64(width), H: float64(height), Color: clr})
}

func (i *Image) StrokeLine(x0, y0, x1, y1, width float32, clr color.Color) {
	i.Ops = append(i.Ops, Op{Kind: OpLine, X: float64(x0), Y: float64(y0), W: float64(x1 - x0), H: float64(y1 - y0), Color: clr})
}

func (i *Image) FillCircle(cx, cy, radius float32, clr color.Color) {
	i.Ops = append(i.Ops, Op{Kind: OpCircle, X: float64(cx), Y: float64(cy), W: float64(radius), Color: clr})
}

func (i *Image) DrawImage(src render.Image, opts *render.DrawOptions) {
	op := Op{Kind: OpImage, Alpha: 1}
	if s, ok := src.(*Image); ok {
		op.Src = s.ID
		op.W, op.H = float64(s.W), float64(s.H)
	}
	if opts != nil {
		sx, sy := opts.Scale()
		if s, ok := src.(*Image); ok && opts.SrcWidth > 0 && opts.SrcWidth < s.W {
			op.W = float64(opts.SrcWidth)
		}
		op.X, op.Y = opts.X, opts.Y
		op.W *= sx
		op.H *= sy
		op.Alpha = opts.Alpha
		op.Additive = opts.Additive
		op.Color = opts.Tint
	}
	i.Ops = append(i.Ops, op)
}

func (i *Image) DrawText(s string, x, y int) {
	i.Ops = append(i.Ops, Op{Kind: OpText, Text: s, X: float64(x), Y: float64(y)})
}

func (i *Image) Dispose() {
	i.Disposed = true
}

// Reset forgets recorded ops.
func (i *Image) Reset() {
	i.Ops = i.Ops[:0]
}

// Count returns how many recorded ops have the given kind.
func (i *Image) Count(kind OpKind) int {
	n := 0
	for _, op := range i.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Sources returns the source image IDs of every OpImage, in draw order.
func (i *Image) Sources() []int {
	var ids []int
	for _, op := range i.Ops {
		if op.Kind == OpImage {
			ids = append(ids, op.Src)
		}
	}
	return ids
}
