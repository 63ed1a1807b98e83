// Package gameplay is the flying stage: the witch crosses the scrolling
// landscape firing magic bolts while the quest progress fills up.
package gameplay

import (
	"fmt"
	"log"
	"math"

	"github.com/younwookim/skyfall/internal/application/input"
	"github.com/younwookim/skyfall/internal/application/scene"
	"github.com/younwookim/skyfall/internal/domain/entity"
	"github.com/younwookim/skyfall/internal/domain/scenery"
	"github.com/younwookim/skyfall/internal/infrastructure/config"
	"github.com/younwookim/skyfall/internal/render"
)

const (
	hudScale      = 2.0
	labelScale    = 1.0
	bannerScale   = 6.0
	congratsScale = 2.0
	barHeight     = 25
	barX, barY    = 50, 20
	glowPad       = 20
	congrats      = "You have restored light to Zethia!"
)

var (
	hpColor       = render.RGB{255, 100, 100}
	glowColor     = render.RGB{255, 210, 160}
	barFrame      = render.RGB{40, 40, 60}
	barTrack      = render.RGB{20, 20, 40}
	barCap        = render.RGB{100, 150, 255}
	barEdge       = render.RGB{180, 220, 255}
	labelColor    = render.RGB{220, 220, 240}
	bannerColor   = render.RGB{255, 220, 100}
	bannerShadow  = render.RGB{180, 140, 50}
	congratsColor = render.RGB{220, 240, 255}
)

// Scene is the gameplay screen.
type Scene struct {
	cfg  config.GameplayConfig
	env  scene.Env
	text *render.TextCache

	bg   *scenery.Composer
	wind *scenery.Field

	player  *entity.Player
	bolts   []*entity.Projectile
	sprites [3]render.Image // by entity.Frame
	bolt    render.Image
	glow    render.Image

	progress float64
	complete bool
	quit     bool
	elapsed  float64
}

// New creates the gameplay scene and loads its sprites.
func New(cfg config.GameplayConfig, env scene.Env) *Scene {
	rng := env.Rand(4)
	w, h := float64(env.Width), float64(env.Height)
	s := &Scene{
		cfg:  cfg,
		env:  env,
		text: render.NewTextCache(env.Factory),
		bg:   scenery.NewComposer(cfg.Background, env.Width, env.Height, rng, env.Factory, env.Images),
		wind: scenery.NewField(cfg.Wind, w, h, rng, env.Factory),
	}

	p := cfg.Player
	s.sprites[entity.FrameIdle] = env.Images.Image(p.Idle.Path, p.Idle.Width, p.Idle.Height, p.Idle.Color)
	s.sprites[entity.FrameBlink] = env.Images.Image(p.Blink.Path, p.Blink.Width, p.Blink.Height, p.Blink.Color)
	s.sprites[entity.FrameAttack] = env.Images.Image(p.Attack.Path, p.Attack.Width, p.Attack.Height, p.Attack.Color)
	b := cfg.Bolt.Sprite
	s.bolt = env.Images.Image(b.Path, b.Width, b.Height, b.Color)

	gw, gh := p.Idle.Width+2*glowPad, p.Idle.Height+2*glowPad
	s.glow = env.Factory.NewImage(gw, gh)
	s.glow.FillCircle(float32(gw)/2, float32(gh)/2, float32(gw)/2, glowColor.Alpha(40))

	s.player = entity.NewPlayer(0, 0, float64(p.Idle.Width), float64(p.Idle.Height), stats(p), w, h, rng)
	s.OnEnter()
	return s
}

func stats(p config.PlayerConfig) entity.PlayerStats {
	return entity.PlayerStats{
		Speed:         p.Speed,
		VerticalSpeed: p.VerticalSpeed,
		BobAmplitude:  p.BobAmplitude,
		BobRate:       p.BobRate,
		BlinkEvery:    p.BlinkEvery,
		BlinkFor:      p.BlinkFor,
		FireCooldown:  p.FireCooldown,
		AttackFor:     p.AttackFor,
		MaxHealth:     p.Health,
	}
}

// OnEnter places the player at the start and clears the run.
func (s *Scene) OnEnter() {
	s.player.Respawn(s.cfg.Player.StartX*float64(s.env.Width), s.cfg.Player.StartY*float64(s.env.Height))
	s.bolts = s.bolts[:0]
	s.progress = 0
	s.complete = false
	s.quit = false
	s.elapsed = 0
}

func (s *Scene) OnExit() {}

// Done reports that the player asked to quit.
func (s *Scene) Done() bool {
	return s.quit
}

// Player returns the player.
func (s *Scene) Player() *entity.Player { return s.player }

// Bolts returns the live bolts.
func (s *Scene) Bolts() []*entity.Projectile { return s.bolts }

// Progress returns the quest progress in percent.
func (s *Scene) Progress() float64 { return s.progress }

// Complete reports whether the quest progress reached 100 %.
func (s *Scene) Complete() bool { return s.complete }

// Update implements scene.Scene.
func (s *Scene) Update(dt float64, in input.Snapshot) {
	s.elapsed += dt
	s.bg.Advance(dt)
	s.wind.Advance(dt)

	c := entity.Controls{
		Left:  in.IsHeld(input.Left),
		Right: in.IsHeld(input.Right),
		Up:    in.IsHeld(input.Up),
		Down:  in.IsHeld(input.Down),
		Fire:  in.IsHeld(input.Fire),
	}
	if s.player.Update(dt, c) {
		x, y := s.player.Muzzle()
		b := s.cfg.Bolt.Sprite
		s.bolts = append(s.bolts, entity.NewMagicBolt(x, y, float64(b.Width), float64(b.Height), s.cfg.Bolt.Speed, 1))
	}
	for _, b := range s.bolts {
		b.Update(dt, float64(s.env.Width))
	}
	s.bolts = entity.CompactProjectiles(s.bolts)

	if !s.complete {
		s.progress += s.cfg.ProgressRate * dt
		if s.progress >= 100 {
			s.progress = 100
			s.complete = true
			log.Printf("[Gameplay] quest complete")
		}
	}

	if in.IsPressed(input.Back) {
		s.quit = true
	}
}

// Draw implements scene.Scene.
func (s *Scene) Draw(screen render.Image) {
	s.bg.Draw(screen)
	s.wind.Draw(screen)

	x, y, _, _ := s.player.Rect()
	screen.DrawImage(s.glow, render.At(x-glowPad, y-glowPad))
	screen.DrawImage(s.sprites[s.player.Frame], render.At(x, y))
	for _, b := range s.bolts {
		bx, by, _, _ := b.Rect()
		screen.DrawImage(s.bolt, render.At(bx, by))
	}

	s.drawProgress(screen)
	s.text.Draw(screen, fmt.Sprintf("Score: %d", s.player.Score), 20, 20, hudScale, render.White, 255)
	s.text.Draw(screen, fmt.Sprintf("HP: %d", s.player.Health), 20, 60, hudScale, hpColor, 255)

	if s.complete {
		s.drawComplete(screen)
	}
}

func (s *Scene) drawProgress(screen render.Image) {
	w := float32(s.env.Width - 2*barX)
	screen.FillRect(barX-2, barY-2, w+4, barHeight+4, barFrame.Opaque())
	screen.FillRect(barX, barY, w, barHeight, barTrack.Opaque())
	screen.FillCircle(barX-2, barY+barHeight/2, 8, barCap.Opaque())
	screen.FillCircle(barX+w+2, barY+barHeight/2, 8, barCap.Opaque())

	t := s.progress / 100
	fill := float32(t * float64(w))
	if fill > 0 {
		clr := render.RGB{uint8(100 + 155*t), uint8(180 * t), uint8(220 + 35*t)}
		screen.FillRect(barX, barY, fill, barHeight, clr.Opaque())
		if fill > 3 {
			screen.StrokeLine(barX+fill-3, barY, barX+fill-3, barY+barHeight, 2, barEdge.Opaque())
		}
	}

	label := fmt.Sprintf("Quest Progress: %d%%", int(s.progress))
	ly := barY + barHeight/2 - render.GlyphHeight*labelScale/2
	s.text.DrawCentered(screen, label, float64(s.env.Width)/2, ly, labelScale, labelColor, 255)
}

func (s *Scene) drawComplete(screen render.Image) {
	render.Overlay(screen, 180)

	cx := float64(s.env.Width) / 2
	y := float64(s.env.Height)/3 - render.GlyphHeight*bannerScale/2
	s.text.DrawCentered(screen, "QUEST COMPLETE", cx+4, y+4, bannerScale, bannerShadow, 255)
	s.text.DrawCentered(screen, "QUEST COMPLETE", cx, y, bannerScale, bannerColor, 255)
	if pulse := 0.5 + 0.5*math.Sin(s.elapsed*3); pulse > 0.7 {
		s.text.DrawCentered(screen, "QUEST COMPLETE", cx, y, bannerScale, render.RGB{255, 240, 180}, 50*pulse)
	}

	cy := float64(s.env.Height)/2 - 40 - render.GlyphHeight*congratsScale/2
	s.text.DrawCentered(screen, congrats, cx, cy, congratsScale, congratsColor, 255)
}
