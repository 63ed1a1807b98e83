// Package assets loads sprites from an asset tree and scales them to the
// size a scene asks for.
package assets

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"log"
	"math"
	"os"

	"github.com/younwookim/skyfall/internal/render"
)

// Fit selects how a source image is mapped onto the requested size.
type Fit int

const (
	// Stretch scales each axis independently.
	Stretch Fit = iota
	// Cover scales uniformly until both axes are filled, cropping the
	// overflow around the center.
	Cover
)

type imageKey struct {
	path string
	w, h int
	fit  Fit
}

// Loader resolves asset paths against an fs.FS. Images are decoded once
// and cached per path, size and fit. A file that cannot be read or decoded
// becomes a flat placeholder in the fallback color.
type Loader struct {
	fsys    fs.FS
	factory render.Factory
	decoded map[string]image.Image
	scaled  *render.Cache[imageKey]
	missing map[string]bool
}

// NewLoader creates an asset loader rooted at a directory.
func NewLoader(dir string, factory render.Factory) *Loader {
	return NewFSLoader(os.DirFS(dir), factory)
}

// NewFSLoader creates an asset loader over fsys.
func NewFSLoader(fsys fs.FS, factory render.Factory) *Loader {
	return &Loader{
		fsys:    fsys,
		factory: factory,
		decoded: make(map[string]image.Image),
		scaled:  render.NewCache[imageKey](),
		missing: make(map[string]bool),
	}
}

// Image returns path stretched to w×h.
func (l *Loader) Image(path string, w, h int, fallback render.RGB) render.Image {
	return l.load(imageKey{path, w, h, Stretch}, fallback)
}

// Cover returns path scaled to cover w×h.
func (l *Loader) Cover(path string, w, h int, fallback render.RGB) render.Image {
	return l.load(imageKey{path, w, h, Cover}, fallback)
}

// Missing reports whether path failed to load at least once.
func (l *Loader) Missing(path string) bool {
	return l.missing[path]
}

// Len returns the number of scaled surfaces held.
func (l *Loader) Len() int {
	return l.scaled.Len()
}

// Release disposes every scaled surface. Decoded sources stay cached.
func (l *Loader) Release() {
	l.scaled.Reset()
}

func (l *Loader) load(key imageKey, fallback render.RGB) render.Image {
	return l.scaled.Get(key, func() render.Image {
		dst := l.factory.NewImage(key.w, key.h)
		src, err := l.decode(key.path)
		if err != nil {
			if !l.missing[key.path] {
				log.Printf("[Assets] Warning: using placeholder for %s: %v", key.path, err)
			}
			l.missing[key.path] = true
			dst.Fill(fallback.Opaque())
			return dst
		}

		b := src.Bounds()
		sw, sh := float64(b.Dx()), float64(b.Dy())
		sx, sy := float64(key.w)/sw, float64(key.h)/sh
		x, y := 0.0, 0.0
		if key.fit == Cover {
			s := math.Max(sx, sy)
			sx, sy = s, s
			x = (float64(key.w) - sw*s) / 2
			y = (float64(key.h) - sh*s) / 2
		}

		img := l.factory.FromImage(src)
		dst.DrawImage(img, &render.DrawOptions{X: x, Y: y, ScaleX: sx, ScaleY: sy, Alpha: 1})
		img.Dispose()
		return dst
	})
}

func (l *Loader) decode(path string) (image.Image, error) {
	if img, ok := l.decoded[path]; ok {
		return img, nil
	}

	f, err := l.fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}
	if b := img.Bounds(); b.Dx() == 0 || b.Dy() == 0 {
		return nil, fmt.Errorf("image %s is empty", path)
	}

	l.decoded[path] = img
	return img, nil
}
