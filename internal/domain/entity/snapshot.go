package entity

import "math"

// PhysicsSnapshot is the per-tick view of the diver handed to the animator.
// It is passed by value so the animator can never mutate movement state.
type PhysicsSnapshot struct {
	VX, VY float64
	Facing Facing

	OnGround  bool
	WallLeft  bool
	WallRight bool

	IsDashing    bool
	IsWallCrouch bool

	Shooting bool
	Hurt     bool
}

// Speed returns the magnitude of the velocity
func (s PhysicsSnapshot) Speed() float64 {
	return math.Hypot(s.VX, s.VY)
}
