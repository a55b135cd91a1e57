package entity

// Body represents the physical box of an entity in world pixels.
// The box is the sole collision shape; sprites are drawn relative to it.
type Body struct {
	X, Y float64
	W, H float64
}

// Rect returns the body's collision box
func (b *Body) Rect() Rect {
	return Rect{X: b.X, Y: b.Y, W: b.W, H: b.H}
}

// SetRect moves the body to the position of r. Size is unchanged.
func (b *Body) SetRect(r Rect) {
	b.X = r.X
	b.Y = r.Y
}

// Center returns the centre point of the box
func (b *Body) Center() (float64, float64) {
	return b.X + b.W/2, b.Y + b.H/2
}

// Player represents the diver
type Player struct {
	Body
	Movement MovementState

	// One-shot animation triggers, counted down by the movement system
	ShootTimer float64
	HurtTimer  float64
}

// NewPlayer creates a player whose box has its top-left at (x, y).
func NewPlayer(x, y, w, h float64) *Player {
	return &Player{
		Body:     Body{X: x, Y: y, W: w, H: h},
		Movement: MovementState{Facing: FacingRight},
	}
}

// TriggerShoot starts the shoot overlay for duration seconds
func (p *Player) TriggerShoot(duration float64) {
	if duration > p.ShootTimer {
		p.ShootTimer = duration
	}
}

// TriggerHurt restarts the hurt overlay for duration seconds
func (p *Player) TriggerHurt(duration float64) {
	p.HurtTimer = duration
}

// Hurting reports whether the hurt overlay is running
func (p *Player) Hurting() bool {
	return p.HurtTimer > 0
}

// Snapshot returns a read-only copy of the values the animator needs
func (p *Player) Snapshot() PhysicsSnapshot {
	m := &p.Movement
	return PhysicsSnapshot{
		VX:           m.VX,
		VY:           m.VY,
		Facing:       m.Facing,
		OnGround:     m.OnGround,
		WallLeft:     m.WallLeft,
		WallRight:    m.WallRight,
		IsDashing:    m.IsDashing,
		IsWallCrouch: m.IsWallCrouch,
		Shooting:     p.ShootTimer > 0,
		Hurt:         p.HurtTimer > 0,
	}
}
