// Package cutscene plays the story intro: an opening narration over the
// city as it falls to corruption, then the witch's dialogue.
package cutscene

import (
	"math"
	"math/rand"
	"strings"

	"github.com/younwookim/skyfall/internal/application/input"
	"github.com/younwookim/skyfall/internal/application/scene"
	"github.com/younwookim/skyfall/internal/domain/dialogue"
	"github.com/younwookim/skyfall/internal/domain/scenery"
	"github.com/younwookim/skyfall/internal/infrastructure/config"
	"github.com/younwookim/skyfall/internal/render"
)

// Part is the active sub-scene.
type Part int

const (
	PartOpening Part = iota
	PartDialogue
)

func (p Part) String() string {
	switch p {
	case PartOpening:
		return "Opening"
	case PartDialogue:
		return "Dialogue"
	}
	return "Unknown"
}

const (
	textScale   = 2.0
	promptScale = 1.5
	lineGap     = 5
	salt        = 3
)

var (
	openingBox    = render.Black.Alpha(200)
	openingText   = render.RGB{255, 220, 200}
	openingPrompt = render.RGB{200, 200, 200}

	dialogueFill   = render.RGB{20, 15, 40}
	dialogueBorder = render.RGB{180, 140, 255}
	dialogueText   = render.RGB{230, 230, 255}
	speakerText    = render.RGB{220, 180, 255}
	tagFill        = render.RGB{30, 20, 50}
	dialoguePrompt = render.RGB{220, 200, 255}
)

// Scene is the two-part cutscene.
type Scene struct {
	cfg  config.CutsceneConfig
	env  scene.Env
	seed int64
	rng  *rand.Rand
	text *render.TextCache

	opening  *dialogue.Sequencer
	dialogue *dialogue.Sequencer
	embers   *scenery.Field
	magic    *scenery.Field

	city      render.Image
	corrupted render.Image
	portrait  render.Image

	part          Part
	camX          float64
	corrupting    bool
	corruptAlpha  float64
	portraitAlpha float64
	introFade     float64
	elapsed       float64
}

// New creates the cutscene and loads its backgrounds.
func New(cfg config.CutsceneConfig, env scene.Env) *Scene {
	s := &Scene{
		cfg:      cfg,
		env:      env,
		seed:     env.Seed*31 + salt,
		text:     render.NewTextCache(env.Factory),
		opening:  dialogue.NewSequencer(cfg.Opening, cfg.TypingSpeed),
		dialogue: dialogue.NewSequencer(cfg.Dialogue, cfg.TypingSpeed),
	}
	s.rng = rand.New(rand.NewSource(s.seed))
	w, h := float64(env.Width), float64(env.Height)
	s.embers = scenery.NewField(cfg.Embers, w, h, s.rng, env.Factory)
	s.magic = scenery.NewField(cfg.Magic, w, h, s.rng, env.Factory)

	s.city = env.Images.Cover(cfg.City.Path, env.Width, env.Height, cfg.City.Color)
	s.corrupted = env.Images.Cover(cfg.Corrupted.Path, env.Width, env.Height, cfg.Corrupted.Color)
	s.portrait = env.Images.Cover(cfg.Portrait.Path, env.Width, env.Height, cfg.Portrait.Color)

	s.Reset()
	return s
}

// Reset rewinds both sub-scenes and re-seeds the particles, so a replay
// draws the same frames as the first run.
func (s *Scene) Reset() {
	s.rng.Seed(s.seed)
	s.opening.Reset()
	s.dialogue.Reset()
	s.embers.Reset()
	s.magic.Reset()

	s.part = PartOpening
	s.camX = 0
	s.corrupting = false
	s.corruptAlpha = 0
	s.portraitAlpha = 0
	s.introFade = 255
	s.elapsed = 0
	s.text.Reset()
}

// OnEnter resets the cutscene.
func (s *Scene) OnEnter() {
	s.Reset()
}

func (s *Scene) OnExit() {}

// Done reports that the last dialogue line was advanced past.
func (s *Scene) Done() bool {
	return s.part == PartDialogue && s.dialogue.SequenceComplete()
}

// Part returns the active sub-scene.
func (s *Scene) Part() Part { return s.part }

// Opening returns the narration sequencer.
func (s *Scene) Opening() *dialogue.Sequencer { return s.opening }

// Dialogue returns the witch's dialogue sequencer.
func (s *Scene) Dialogue() *dialogue.Sequencer { return s.dialogue }

// Embers returns the opening's rising embers.
func (s *Scene) Embers() *scenery.Field { return s.embers }

// Magic returns the dialogue's magic particles.
func (s *Scene) Magic() *scenery.Field { return s.magic }

// Corrupting reports whether the corrupted city has started to show.
func (s *Scene) Corrupting() bool { return s.corrupting }

// CorruptAlpha returns the corrupted city's opacity.
func (s *Scene) CorruptAlpha() float64 { return s.corruptAlpha }

// PortraitAlpha returns the dialogue background's opacity.
func (s *Scene) PortraitAlpha() float64 { return s.portraitAlpha }

// IntroFade returns the black overlay level.
func (s *Scene) IntroFade() float64 { return s.introFade }

// Pan returns the camera offset of the opening background.
func (s *Scene) Pan() float64 { return s.camX }

func (s *Scene) active() *dialogue.Sequencer {
	if s.part == PartOpening {
		return s.opening
	}
	return s.dialogue
}

// Update implements scene.Scene. A Continue press either finishes the line
// being typed or moves to the next one.
func (s *Scene) Update(dt float64, in input.Snapshot) {
	s.elapsed += dt
	if s.introFade > 0 {
		s.introFade = math.Max(0, s.introFade-s.cfg.IntroFade*dt)
	}

	switch s.part {
	case PartOpening:
		s.camX = math.Min(s.cfg.PanLimit, s.camX+s.cfg.PanSpeed*dt)
		if s.opening.Line() >= s.cfg.CorruptLine {
			s.corrupting = true
		}
		if s.corrupting {
			s.corruptAlpha = math.Min(255, s.corruptAlpha+s.cfg.CorruptFade*dt)
		}
	case PartDialogue:
		s.portraitAlpha = math.Min(255, s.portraitAlpha+s.cfg.PortraitFade*dt)
	}

	s.embers.Advance(dt)
	if s.part == PartDialogue {
		s.magic.Advance(dt)
	}

	seq := s.active()
	part, line := s.part, seq.Line()
	if in.IsPressed(input.Continue) {
		seq.Continue()
	}
	seq.Update(dt)

	if s.part == PartOpening && s.opening.SequenceComplete() {
		s.part = PartDialogue
	}
	// Text surfaces of a finished line are never drawn again.
	if s.part != part || s.active().Line() != line {
		s.text.Reset()
	}
}

// PromptVisible reports whether the blinking continue prompt is lit.
func (s *Scene) PromptVisible() bool {
	if s.Done() || !s.active().LineComplete() {
		return false
	}
	if s.cfg.PromptBlink <= 0 {
		return true
	}
	return math.Mod(s.elapsed, 2*s.cfg.PromptBlink) < s.cfg.PromptBlink
}

// Draw implements scene.Scene.
func (s *Scene) Draw(screen render.Image) {
	screen.Fill(render.Black.Opaque())

	var box render.Rect
	var prompt render.RGB
	switch s.part {
	case PartOpening:
		box = s.drawOpening(screen)
		prompt = openingPrompt
	case PartDialogue:
		box = s.drawDialogue(screen)
		prompt = dialoguePrompt
	}

	if s.PromptVisible() {
		y := box.Y + box.H + 30 - render.GlyphHeight*promptScale/2
		s.text.DrawCentered(screen, s.cfg.Prompt, float64(s.env.Width)/2, y, promptScale, prompt, 255)
	}

	render.Overlay(screen, s.introFade)
}

func (s *Scene) drawOpening(screen render.Image) render.Rect {
	screen.DrawImage(s.city, render.At(-s.camX, 0))
	if s.corrupting {
		screen.DrawImage(s.corrupted, render.At(-s.camX, 0).WithAlpha(s.corruptAlpha))
	}
	s.embers.Draw(screen)

	box := render.Rect{X: 80, Y: float64(s.env.Height - 150), W: float64(s.env.Width - 160), H: 100}
	screen.FillRect(float32(box.X), float32(box.Y), float32(box.W), float32(box.H), openingBox)
	s.drawLines(screen, s.opening, box, func(string) render.RGB { return openingText })
	return box
}

func (s *Scene) drawDialogue(screen render.Image) render.Rect {
	screen.DrawImage(s.portrait, render.At(0, 0).WithAlpha(s.portraitAlpha))
	s.magic.Draw(screen)

	box := render.Rect{X: 100, Y: float64(s.env.Height - 180), W: float64(s.env.Width - 200), H: 120}

	tagW := float64(render.TextWidth(s.cfg.Speaker))*textScale + 30
	tagH := render.GlyphHeight*textScale + 15
	tx, ty := float32(box.X+20), float32(box.Y-50)
	screen.FillRect(tx, ty, float32(tagW), float32(tagH), tagFill.Alpha(220))
	render.StrokeRect(screen, tx, ty, float32(tagW), float32(tagH), 2, dialogueBorder.Alpha(150))
	s.text.Draw(screen, s.cfg.Speaker, box.X+35, box.Y-42, textScale, speakerText, 255)

	x, y, w, h := float32(box.X), float32(box.Y), float32(box.W), float32(box.H)
	screen.FillRect(x, y, w, h, dialogueFill.Alpha(220))
	render.StrokeRect(screen, x, y, w, h, 3, dialogueBorder.Alpha(180))

	prefix := s.cfg.Speaker + ":"
	s.drawLines(screen, s.dialogue, box, func(line string) render.RGB {
		if s.cfg.Speaker != "" && strings.HasPrefix(line, prefix) {
			return speakerText
		}
		return dialogueText
	})
	return box
}

// drawLines wraps the whole current line and shows only its typed part.
func (s *Scene) drawLines(screen render.Image, seq *dialogue.Sequencer, box render.Rect, tint func(string) render.RGB) {
	if seq.Char() == 0 {
		return
	}
	full := seq.Current()
	lines := render.WrapText(full, int(box.W)-20, textScale)
	shown := render.RevealedRunes(lines, full, seq.Char())
	y := box.Y + 10
	for i, line := range lines {
		s.text.DrawPrefix(screen, line, shown[i], box.X+20, y, textScale, tint(line), 255)
		y += render.GlyphHeight*textScale + lineGap
	}
}
