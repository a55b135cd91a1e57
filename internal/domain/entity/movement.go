package entity

// Facing is the horizontal direction the diver looks in
type Facing int

const (
	FacingRight Facing = 1
	FacingLeft  Facing = -1
)

// Sign returns +1 or -1
func (f Facing) Sign() float64 {
	if f == FacingLeft {
		return -1
	}
	return 1
}

func (f Facing) String() string {
	if f == FacingLeft {
		return "left"
	}
	return "right"
}

// Mode is the derived movement mode
type Mode int

const (
	ModeNormal Mode = iota
	ModeDashing
	ModeWallCrouch
	ModeWallKickRecovering
)

func (m Mode) String() string {
	switch m {
	case ModeDashing:
		return "dashing"
	case ModeWallCrouch:
		return "wall_crouch"
	case ModeWallKickRecovering:
		return "wall_kick_recovering"
	default:
		return "normal"
	}
}

// MovementState holds velocity, contact flags and the timers of the
// movement state machine. All timers are seconds and never go below zero.
type MovementState struct {
	VX, VY float64
	Facing Facing

	// Contacts, refreshed every tick by collision
	OnGround  bool
	WallLeft  bool
	WallRight bool

	IsDashing    bool
	IsWallCrouch bool
	StickSide    int // -1 left wall, +1 right wall, 0 none

	DashDX, DashDY float64 // unit direction of the active dash
	DashTimer      float64
	DashCooldown   float64

	WallKickTimer   float64 // 0 while not crouched
	WallKickLockout float64 // blocks re-sticking after a kick

	CoyoteTimer     float64
	JumpBufferTimer float64
	JumpHoldTimer   float64
}

// Mode derives the current mode. Dashing wins over crouch, crouch over recovery.
func (m *MovementState) Mode() Mode {
	switch {
	case m.IsDashing:
		return ModeDashing
	case m.IsWallCrouch:
		return ModeWallCrouch
	case m.WallKickLockout > 0:
		return ModeWallKickRecovering
	default:
		return ModeNormal
	}
}

// TickDown decrements t by dt and clamps at zero.
// A negative dt is treated as zero.
func TickDown(t, dt float64) float64 {
	if dt < 0 {
		dt = 0
	}
	t -= dt
	if t < 0 {
		return 0
	}
	return t
}
