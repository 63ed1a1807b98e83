// Package menu implements the start menu: a short logo intro, then a
// title over the animated background with START GAME and QUIT buttons.
package menu

import (
	"fmt"
	"math"

	"github.com/younwookim/skyfall/internal/application/input"
	"github.com/younwookim/skyfall/internal/application/scene"
	"github.com/younwookim/skyfall/internal/domain/scenery"
	"github.com/younwookim/skyfall/internal/infrastructure/config"
	"github.com/younwookim/skyfall/internal/render"
)

// Selection is what the player picked.
type Selection int

const (
	SelectNone Selection = iota
	SelectStart
	SelectQuit
)

func (s Selection) String() string {
	switch s {
	case SelectNone:
		return "None"
	case SelectStart:
		return "Start"
	case SelectQuit:
		return "Quit"
	}
	return "Unknown"
}

// Stage is the intro progress.
type Stage int

const (
	StageLogo Stage = iota
	StageFade
	StageReady
)

const (
	logoScale     = 2.0
	titleScale    = 4.0
	subtitleScale = 1.5
	buttonScale   = 2.0
	titleY        = 140
	subtitleY     = 190
	fpsWindow     = 30
)

var (
	titleShadow      = render.Black
	subtitleColor    = render.RGB{180, 200, 220}
	containerBorder  = render.RGB{255, 200, 150}
	containerFill    = render.RGB{30, 30, 40}
	containerGrid    = render.RGB{60, 60, 70}
	buttonText       = render.RGB{180, 180, 180}
	buttonTextActive = render.RGB{255, 220, 180}
	buttonBG         = render.RGB{40, 40, 60}
	buttonBorder     = render.RGB{255, 200, 100}
	versionColor     = render.RGB{220, 220, 220}
	hintColor        = render.RGB{180, 180, 200}
)

// Scene is the start menu.
type Scene struct {
	cfg      config.MenuConfig
	env      scene.Env
	bg       *scenery.Composer
	sparkles *scenery.Field
	text     *render.TextCache

	stage     Stage
	timer     float64
	fade      float64
	elapsed   float64
	selected  int
	hover     int
	selection Selection

	glowTimer  float64
	floatTimer float64
	container  float64
	scale      float64
	subtitle   float64

	samples []float64
	fps     float64
}

// New creates the menu. The background keeps animating across OnEnter calls.
func New(cfg config.MenuConfig, env scene.Env) *Scene {
	rng := env.Rand(1)
	s := &Scene{
		cfg:      cfg,
		env:      env,
		bg:       scenery.NewComposer(cfg.Background, env.Width, env.Height, rng, env.Factory, env.Images),
		sparkles: scenery.NewField(cfg.Sparkles, float64(env.Width), float64(env.Height), rng, env.Factory),
		text:     render.NewTextCache(env.Factory),
	}
	s.OnEnter()
	return s
}

// OnEnter restarts the intro and clears the selection.
func (s *Scene) OnEnter() {
	s.stage = StageLogo
	s.timer = 0
	s.fade = 255
	s.elapsed = 0
	s.selected = 0
	s.hover = -1
	s.selection = SelectNone
	s.glowTimer, s.floatTimer = 0, 0
	s.container, s.scale, s.subtitle = 0, 0.8, 0
	s.samples = s.samples[:0]
	s.fps = 0
}

// OnExit does nothing. The last frame stays drawable for the transition.
func (s *Scene) OnExit() {}

// Done reports that a button was chosen.
func (s *Scene) Done() bool {
	return s.selection != SelectNone
}

// Selection returns the chosen button.
func (s *Scene) Selection() Selection {
	return s.selection
}

// Stage returns the intro stage.
func (s *Scene) Stage() Stage {
	return s.stage
}

// Selected returns the highlighted button index.
func (s *Scene) Selected() int {
	return s.selected
}

// FPS returns the measured frame rate averaged over the last frames.
func (s *Scene) FPS() float64 {
	return s.fps
}

// Update implements scene.Scene.
func (s *Scene) Update(dt float64, in input.Snapshot) {
	s.trackFPS(dt)
	s.bg.Advance(dt)
	s.sparkles.Advance(dt)
	s.elapsed += dt

	switch s.stage {
	case StageLogo:
		s.timer += dt
		if s.timer > s.cfg.LogoHold {
			s.stage = StageFade
			s.timer = 0
		}
		return
	case StageFade:
		s.fade -= s.cfg.LogoFade * dt
		if s.fade <= 0 {
			s.fade = 0
			s.stage = StageReady
		}
		return
	case StageReady:
	}

	s.glowTimer += 2 * dt
	s.floatTimer += dt
	if s.container < 220 {
		s.container = math.Min(220, s.container+200*dt)
		s.scale = math.Min(1, s.scale+0.6*dt)
		s.subtitle = math.Min(255, s.subtitle+300*dt)
	}

	s.hover = s.buttonAt(in.MouseX, in.MouseY)
	if s.Done() {
		return
	}
	n := len(s.cfg.Buttons)
	switch {
	case in.IsPressed(input.Up):
		s.selected = (s.selected - 1 + n) % n
	case in.IsPressed(input.Down):
		s.selected = (s.selected + 1) % n
	case in.IsPressed(input.Confirm):
		s.selection = selectionFor(s.selected)
	case in.IsPressed(input.Click) && s.hover >= 0:
		s.selected = s.hover
		s.selection = selectionFor(s.hover)
	}
}

// buttonAt returns the index of the button under (x, y), or -1.
func (s *Scene) buttonAt(x, y int) int {
	for i := range s.cfg.Buttons {
		if s.buttonRect(i).Contains(float64(x), float64(y)) {
			return i
		}
	}
	return -1
}

func selectionFor(i int) Selection {
	if i == 0 {
		return SelectStart
	}
	return SelectQuit
}

func (s *Scene) trackFPS(dt float64) {
	s.samples = append(s.samples, s.env.MeasuredFPS(dt))
	if len(s.samples) > fpsWindow {
		s.samples = s.samples[1:]
	}
	sum := 0.0
	for _, v := range s.samples {
		sum += v
	}
	s.fps = sum / float64(len(s.samples))
}

func (s *Scene) buttonRect(i int) render.Rect {
	label := s.cfg.Buttons[i]
	w := float64(render.TextWidth(label)) * buttonScale
	h := float64(render.GlyphHeight) * buttonScale
	cy := float64(s.cfg.ButtonY + i*s.cfg.ButtonSpacing)
	return render.CenteredRect(float64(s.env.Width)/2, cy, w, h)
}

// Draw implements scene.Scene.
func (s *Scene) Draw(screen render.Image) {
	s.bg.Draw(screen)

	switch s.stage {
	case StageLogo:
		alpha := math.Min(255, s.timer*1000/3)
		cx, cy := float64(s.env.Width)/2, float64(s.env.Height)/2-render.GlyphHeight
		s.text.DrawCentered(screen, s.cfg.Logo, cx+2, cy+2, logoScale, render.Black, alpha)
		s.text.DrawCentered(screen, s.cfg.Logo, cx, cy, logoScale, render.White, alpha)
		return
	case StageFade:
		render.Overlay(screen, s.fade)
		return
	case StageReady:
	}

	s.drawTitle(screen)
	s.drawButtons(screen)
	s.sparkles.Draw(screen)
	s.drawHUD(screen)
}

func (s *Scene) drawTitle(screen render.Image) {
	cx := float64(s.env.Width) / 2

	cw, ch := 800*s.scale, 120*s.scale
	c := render.CenteredRect(cx, titleY, cw, ch)
	x, y, w, h := float32(c.X), float32(c.Y), float32(c.W), float32(c.H)
	screen.FillRect(x+4, y+4, w-8, h-8, containerFill.Alpha(s.container/3))
	for gx := 8; gx < 800-8; gx += 16 {
		for gy := 8; gy < 120-8; gy += 16 {
			if (gx+gy)%32 == 0 {
				screen.FillRect(x+float32(float64(gx)*s.scale), y+float32(float64(gy)*s.scale), 4, 4, containerGrid.Alpha(s.container/4))
			}
		}
	}
	render.StrokeRect(screen, x, y, w, h, 4, containerBorder.Alpha(s.container))

	glow := uint8(math.Sin(s.glowTimer)*127 + 128)
	offset := 2 * math.Sin(s.floatTimer)
	ty := titleY + offset - render.GlyphHeight*titleScale/2
	s.text.DrawCentered(screen, s.cfg.Title, cx+2, ty+2, titleScale, titleShadow, 100)
	s.text.DrawCentered(screen, s.cfg.Title, cx, ty, titleScale, render.RGB{255, glow, 150}, 255)

	if s.subtitle > 0 {
		sy := subtitleY - render.GlyphHeight*subtitleScale/2
		s.text.DrawCentered(screen, s.cfg.Subtitle, cx, sy, subtitleScale, subtitleColor, s.subtitle)
	}
}

func (s *Scene) drawButtons(screen render.Image) {
	for i, label := range s.cfg.Buttons {
		r := s.buttonRect(i)
		clr := buttonText
		if i == s.selected || i == s.hover {
			clr = buttonTextActive
			bg := r.Grow(20, 10)
			x, y, w, h := float32(bg.X), float32(bg.Y), float32(bg.W), float32(bg.H)
			screen.FillRect(x, y, w, h, buttonBG.Alpha(200))
			render.StrokeRect(screen, x, y, w, h, 3, buttonBorder.Opaque())
		}
		s.text.Draw(screen, label, r.X+1, r.Y+1, buttonScale, render.Black, 80)
		s.text.Draw(screen, label, r.X, r.Y, buttonScale, clr, 255)
	}
}

func (s *Scene) drawHUD(screen render.Image) {
	s.text.Draw(screen, s.cfg.Version, 11, 11, 1, render.Black, 150)
	s.text.Draw(screen, s.cfg.Version, 10, 10, 1, versionColor, 255)

	fps := fmt.Sprintf("FPS:%d", int(s.fps))
	s.text.Draw(screen, fps, float64(s.env.Width-70), 11, 1, render.Black, 100)
	s.text.Draw(screen, fps, float64(s.env.Width-71), 10, 1, fpsColor(s.fps), 255)

	if s.hintVisible() {
		y := float64(s.env.Height-20) - render.GlyphHeight/2
		s.text.DrawCentered(screen, s.cfg.Hint, float64(s.env.Width)/2, y, 1, hintColor, 120)
	}
}

func (s *Scene) hintVisible() bool {
	return s.cfg.HintPeriod > 0 && math.Mod(s.elapsed, s.cfg.HintPeriod) < s.cfg.HintShown
}

func fpsColor(fps float64) render.RGB {
	switch {
	case fps > 50:
		return render.RGB{100, 220, 100}
	case fps > 30:
		return render.RGB{220, 180, 100}
	default:
		return render.RGB{220, 100, 100}
	}
}
