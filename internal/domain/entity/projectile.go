package entity

// Projectile represents a straight-flying projectile (magic bolts)
type Projectile struct {
	X, Y      float64 // center
	W, H      float64
	Speed     float64
	Direction float64 // 1 = right, -1 = left
	Active    bool
}

// NewMagicBolt creates a bolt centered on (x, y)
func NewMagicBolt(x, y, w, h, speed, direction float64) *Projectile {
	return &Projectile{
		X:         x,
		Y:         y,
		W:         w,
		H:         h,
		Speed:     speed,
		Direction: direction,
		Active:    true,
	}
}

// Update moves the projectile and deactivates it once it has fully left
// the [0, boundsW] band.
func (p *Projectile) Update(dt, boundsW float64) {
	if !p.Active {
		return
	}

	p.X += p.Speed * p.Direction * dt

	left, _, w, _ := p.Rect()
	if left+w < 0 || left > boundsW {
		p.Active = false
	}
}

// Rect returns the top-left corner and size
func (p *Projectile) Rect() (x, y, w, h float64) {
	return p.X - p.W/2, p.Y - p.H/2, p.W, p.H
}

// Deactivate marks the projectile as inactive
func (p *Projectile) Deactivate() {
	p.Active = false
}

// CompactProjectiles drops inactive projectiles in place, keeping order.
func CompactProjectiles(ps []*Projectile) []*Projectile {
	kept := ps[:0]
	for _, p := range ps {
		if p.Active {
			kept = append(kept, p)
		}
	}
	for i := len(kept); i < len(ps); i++ {
		ps[i] = nil
	}
	return kept
}
