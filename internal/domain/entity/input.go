package entity

import "math"

// InputFrame is one tick of normalized controls.
// Edges (pressed/released) are true only on the tick the key changed.
type InputFrame struct {
	MoveX, MoveY float64 // each in [-1, 1]

	JumpPressed  bool
	JumpHeld     bool
	JumpReleased bool
	DashPressed  bool

	ShootPressed bool
	HurtPressed  bool
}

// Sanitized returns a copy with axes clamped to [-1, 1]. NaN becomes 0.
func (in InputFrame) Sanitized() InputFrame {
	in.MoveX = clampAxis(in.MoveX)
	in.MoveY = clampAxis(in.MoveY)
	return in
}

func clampAxis(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(-1, math.Min(1, v))
}
