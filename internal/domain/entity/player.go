package entity

import (
	"math"
	"math/rand"
)

// Frame selects the sprite the player is drawn with.
type Frame int

const (
	FrameIdle Frame = iota
	FrameBlink
	FrameAttack
)

func (f Frame) String() string {
	switch f {
	case FrameIdle:
		return "idle"
	case FrameBlink:
		return "blink"
	case FrameAttack:
		return "attack"
	}
	return "unknown"
}

// Controls is the movement and fire intent for one tick.
type Controls struct {
	Left, Right bool
	Up, Down    bool
	Fire        bool
}

// PlayerStats holds the tuning values of the player controller.
type PlayerStats struct {
	Speed         float64 // px/s
	VerticalSpeed float64 // px/s
	BobAmplitude  float64
	BobRate       float64    // radians per second
	BlinkEvery    [2]float64 // seconds, uniform
	BlinkFor      float64
	FireCooldown  float64
	AttackFor     float64
	MaxHealth     int
}

// Player is the flying witch. Position is the sprite center.
type Player struct {
	X, Y  float64
	W, H  float64
	BaseY float64 // hover reference while idle

	Health    int
	MaxHealth int
	Score     int
	Frame     Frame

	stats            PlayerStats
	boundsW, boundsH float64
	rng              *rand.Rand

	floatTimer    float64
	blinkTimer    float64
	blinkInterval float64
	blinking      bool
	shootTimer    float64
	attackTimer   float64
	attacking     bool
}

// NewPlayer creates a player centered on (x, y), kept inside a
// boundsW×boundsH area.
func NewPlayer(x, y, w, h float64, stats PlayerStats, boundsW, boundsH float64, rng *rand.Rand) *Player {
	p := &Player{
		X:         x,
		Y:         y,
		W:         w,
		H:         h,
		BaseY:     y,
		Health:    stats.MaxHealth,
		MaxHealth: stats.MaxHealth,
		stats:     stats,
		boundsW:   boundsW,
		boundsH:   boundsH,
		rng:       rng,
	}
	p.blinkInterval = p.nextBlink()
	return p
}

// Respawn puts the player back at (x, y) with full health and fresh timers.
func (p *Player) Respawn(x, y float64) {
	p.X, p.Y, p.BaseY = x, y, y
	p.Health = p.MaxHealth
	p.Score = 0
	p.Frame = FrameIdle
	p.floatTimer, p.blinkTimer = 0, 0
	p.blinking = false
	p.shootTimer, p.attackTimer = 0, 0
	p.attacking = false
	p.blinkInterval = p.nextBlink()
	p.clamp()
}

// Update advances the controller by dt and reports whether a bolt was fired.
func (p *Player) Update(dt float64, c Controls) (fired bool) {
	moved := false
	if c.Left {
		p.X -= p.stats.Speed * dt
		moved = true
	}
	if c.Right {
		p.X += p.stats.Speed * dt
		moved = true
	}
	if c.Up {
		p.Y -= p.stats.VerticalSpeed * dt
		moved = true
	} else if c.Down {
		p.Y += p.stats.VerticalSpeed * dt
		moved = true
	}

	if moved {
		p.BaseY = p.Y
	} else {
		p.floatTimer += p.stats.BobRate * dt
		p.Y = p.BaseY + math.Sin(p.floatTimer)*p.stats.BobAmplitude
	}

	p.blinkTimer += dt
	if !p.blinking && p.blinkTimer > p.blinkInterval {
		p.blinking = true
		p.Frame = FrameBlink
		p.blinkTimer = 0
		p.blinkInterval = p.nextBlink()
	} else if p.blinking && p.blinkTimer > p.stats.BlinkFor {
		p.blinking = false
		p.Frame = FrameIdle
		p.blinkTimer = 0
	}

	p.shootTimer += dt
	if c.Fire && p.shootTimer >= p.stats.FireCooldown {
		fired = true
		p.shootTimer = 0
		p.attacking = true
		p.attackTimer = 0
	}

	if p.attacking {
		p.attackTimer += dt
		p.Frame = FrameAttack
		if p.attackTimer > p.stats.AttackFor {
			p.attacking = false
			p.Frame = FrameIdle
		}
	}

	p.clamp()
	return fired
}

// Muzzle returns where a fired bolt is centered.
func (p *Player) Muzzle() (x, y float64) {
	return p.X + p.W/2, p.Y
}

// Rect returns the top-left corner and size
func (p *Player) Rect() (x, y, w, h float64) {
	return p.X - p.W/2, p.Y - p.H/2, p.W, p.H
}

func (p *Player) clamp() {
	hw, hh := p.W/2, p.H/2
	p.X = math.Max(hw, math.Min(p.X, p.boundsW-hw))
	p.Y = math.Max(hh, math.Min(p.Y, p.boundsH-hh))
}

func (p *Player) nextBlink() float64 {
	lo, hi := p.stats.BlinkEvery[0], p.stats.BlinkEvery[1]
	return lo + p.rng.Float64()*(hi-lo)
}
