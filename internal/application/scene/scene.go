// Package scene defines the Scene interface for game screens.
//
// Each screen (menu, transition, cutscene, gameplay) implements Scene to
// handle its own update logic and rendering. The state machine owns the
// scenes and decides when to move between them by querying Done.
package scene

import (
	"math/rand"

	"github.com/younwookim/skyfall/internal/application/input"
	"github.com/younwookim/skyfall/internal/domain/scenery"
	"github.com/younwookim/skyfall/internal/render"
)

// Scene represents a game screen.
type Scene interface {
	// Update advances the scene by dt seconds (typically 1/60) with this
	// frame's input snapshot.
	Update(dt float64, in input.Snapshot)

	// Draw renders the scene to the screen.
	Draw(screen render.Image)

	// OnEnter is called when entering this scene. It resets every
	// state-local field to its initial value.
	OnEnter()

	// OnExit is called when leaving this scene.
	OnExit()

	// Done reports that the scene has produced the signal that ends it.
	Done() bool
}

// Drawer is anything that can paint itself, such as a frozen scene shown
// under an overlay.
type Drawer interface {
	Draw(screen render.Image)
}

// Images supplies sprites to scenes.
type Images interface {
	scenery.ImageSource
	// Cover returns path scaled uniformly to cover w×h, cropped to it.
	Cover(path string, w, h int, fallback render.RGB) render.Image
}

// Env is what every scene is built with.
type Env struct {
	Width, Height int
	Factory       render.Factory
	Images        Images
	Seed          int64
	// FrameRate reports the measured frames per second. When nil, the
	// rate implied by the fixed timestep is used, as in headless runs.
	FrameRate func() float64
}

// MeasuredFPS returns FrameRate(), or 1/dt when no source is set.
func (e Env) MeasuredFPS(dt float64) float64 {
	if e.FrameRate != nil {
		return e.FrameRate()
	}
	if dt <= 0 {
		return 0
	}
	return 1 / dt
}

// Rand returns a generator seeded from the environment seed and a
// per-scene salt, so scenes never share a random stream.
func (e Env) Rand(salt int64) *rand.Rand {
	return rand.New(rand.NewSource(e.Seed*31 + salt))
}

// FlatImages is an Images that never touches the filesystem: every sprite
// is a flat placeholder in its fallback colour. Headless runs use it.
type FlatImages struct {
	Factory render.Factory
}

// Image returns a w×h surface filled with fallback.
func (f FlatImages) Image(_ string, w, h int, fallback render.RGB) render.Image {
	img := f.Factory.NewImage(w, h)
	img.Fill(fallback.Opaque())
	return img
}

// Cover returns a w×h surface filled with fallback.
func (f FlatImages) Cover(path string, w, h int, fallback render.RGB) render.Image {
	return f.Image(path, w, h, fallback)
}
