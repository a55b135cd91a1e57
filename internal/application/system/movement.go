package system

import (
	"math"

	"github.com/younwookim/aquadrift/internal/domain/entity"
	"github.com/younwookim/aquadrift/internal/infrastructure/config"
)

// MovementSystem runs the diver's movement state machine:
// swim, dash, wall crouch and wall kick.
type MovementSystem struct {
	config    *config.PhysicsConfig
	collision *CollisionSystem
}

// NewMovementSystem creates a new movement system
func NewMovementSystem(cfg *config.PhysicsConfig, collision *CollisionSystem) *MovementSystem {
	return &MovementSystem{
		config:    cfg,
		collision: collision,
	}
}

// Update advances the player by one tick.
// Order: timers, jump helpers, facing, dash, wall kick, jump, integrate,
// collide, then the contact driven transitions.
func (s *MovementSystem) Update(player *entity.Player, in entity.InputFrame, dt float64) {
	if dt < 0 {
		dt = 0
	}
	in = in.Sanitized()
	m := &player.Movement

	s.tickTimers(player, dt)

	// Coyote time and jump buffer
	if m.OnGround {
		m.CoyoteTimer = s.config.Jump.CoyoteTime
	} else {
		m.CoyoteTimer = entity.TickDown(m.CoyoteTimer, dt)
	}
	if in.JumpPressed {
		m.JumpBufferTimer = s.config.Jump.JumpBuffer
	} else {
		m.JumpBufferTimer = entity.TickDown(m.JumpBufferTimer, dt)
	}

	if math.Abs(in.MoveX) > s.config.Movement.FacingDeadzone {
		if in.MoveX > 0 {
			m.Facing = entity.FacingRight
		} else {
			m.Facing = entity.FacingLeft
		}
	}

	if in.DashPressed && !m.IsDashing && m.DashCooldown <= 0 && !m.IsWallCrouch {
		s.startDash(m, in)
	}

	if m.IsWallCrouch && in.JumpPressed && m.WallKickLockout <= 0 {
		s.wallKick(m)
	}

	if m.JumpBufferTimer > 0 && m.CoyoteTimer > 0 && !m.IsWallCrouch && !m.IsDashing {
		s.startJump(m)
	}

	var dx, dy float64
	switch {
	case m.IsDashing:
		dx, dy = s.integrateDash(m, dt)
	case m.IsWallCrouch:
		dx, dy = s.integrateWallCrouch(m, in, dt)
	default:
		dx, dy = s.integrateSwim(m, in, dt)
	}

	res := s.collision.Resolve(player.Rect(), dx, dy)
	player.SetRect(res.Box)
	m.OnGround = res.Contacts.OnGround
	m.WallLeft = res.Contacts.WallLeft
	m.WallRight = res.Contacts.WallRight
	if m.OnGround {
		m.VY = 0
	}

	// Auto stick when airborne against a wall
	if !m.OnGround && !m.IsDashing && !m.IsWallCrouch && m.WallKickLockout <= 0 && (m.WallLeft || m.WallRight) {
		m.IsWallCrouch = true
		if m.WallLeft {
			m.StickSide = -1
		} else {
			m.StickSide = 1
		}
		m.Facing = entity.Facing(-m.StickSide)
		m.VX = 0
		m.VY = 0
	}

	// Detach when the wall ends
	if m.IsWallCrouch && !m.WallLeft && !m.WallRight {
		m.IsWallCrouch = false
		m.StickSide = 0
	}

	// Buffered jump on landing
	if m.OnGround && m.JumpBufferTimer > 0 && !m.IsDashing && !m.IsWallCrouch {
		s.startJump(m)
	}
}

// tickTimers counts every cooldown down by dt, clamped at zero.
// The dash timer is owned by integrateDash.
func (s *MovementSystem) tickTimers(player *entity.Player, dt float64) {
	m := &player.Movement
	m.DashCooldown = entity.TickDown(m.DashCooldown, dt)
	m.WallKickTimer = entity.TickDown(m.WallKickTimer, dt)
	m.WallKickLockout = entity.TickDown(m.WallKickLockout, dt)
	player.ShootTimer = entity.TickDown(player.ShootTimer, dt)
	player.HurtTimer = entity.TickDown(player.HurtTimer, dt)
}

// startDash captures an 8-way direction from input, defaulting to facing
func (s *MovementSystem) startDash(m *entity.MovementState, in entity.InputFrame) {
	cfg := s.config.Dash
	m.IsDashing = true
	m.DashTimer = cfg.Duration
	m.DashCooldown = cfg.Cooldown

	dirX, dirY := axisSign(in.MoveX), axisSign(in.MoveY)
	if dirX != 0 && dirY != 0 {
		dirX *= cfg.DiagonalFactor
		dirY *= cfg.DiagonalFactor
	}
	if dirX == 0 && dirY == 0 {
		dirX = m.Facing.Sign()
	}

	m.DashDX = dirX
	m.DashDY = dirY
	m.VX = dirX * cfg.Speed
	m.VY = dirY * cfg.Speed
}

// wallKick launches away from the wall and blocks re-sticking for the lockout
func (s *MovementSystem) wallKick(m *entity.MovementState) {
	cfg := s.config.Wall
	m.IsWallCrouch = false
	m.WallKickTimer = cfg.KickTime
	m.WallKickLockout = cfg.KickLockout

	dir := -float64(m.StickSide)
	if m.StickSide == 0 {
		dir = -m.Facing.Sign()
	}
	m.VX = dir * cfg.KickSpeedX
	m.VY = -cfg.KickSpeedY
	m.StickSide = 0
}

// startJump consumes the buffer and coyote window
func (s *MovementSystem) startJump(m *entity.MovementState) {
	m.VY = -s.config.Jump.Speed
	m.JumpHoldTimer = s.config.Jump.HoldTime
	m.JumpBufferTimer = 0
	m.CoyoteTimer = 0
}

func (s *MovementSystem) integrateDash(m *entity.MovementState, dt float64) (float64, float64) {
	speed := s.config.Dash.Speed
	m.VX = m.DashDX * speed
	m.VY = m.DashDY * speed
	dx, dy := m.VX*dt, m.VY*dt

	m.DashTimer = entity.TickDown(m.DashTimer, dt)
	if m.DashTimer <= 0 {
		m.IsDashing = false
	}
	return dx, dy
}

// integrateWallCrouch sets a fixed slide velocity, not integrated
func (s *MovementSystem) integrateWallCrouch(m *entity.MovementState, in entity.InputFrame, dt float64) (float64, float64) {
	slide := s.config.Wall.SlideSpeed
	m.VX = 0
	switch {
	case in.MoveY < 0:
		m.VY = -slide
	case in.MoveY > 0:
		m.VY = slide
	default:
		m.VY = slide * s.config.Wall.NeutralSlideFactor
	}
	return 0, m.VY * dt
}

func (s *MovementSystem) integrateSwim(m *entity.MovementState, in entity.InputFrame, dt float64) (float64, float64) {
	mv := s.config.Movement
	jump := s.config.Jump

	m.VX += in.MoveX * mv.Acceleration * dt
	m.VY += in.MoveY * mv.Acceleration * dt
	if !m.OnGround {
		m.VY += mv.SinkAcceleration * dt
	} else {
		m.VY = math.Min(m.VY, 0)
	}

	if m.JumpHoldTimer > 0 && in.JumpHeld {
		m.VY -= jump.HoldAcceleration * dt
		m.JumpHoldTimer = entity.TickDown(m.JumpHoldTimer, dt)
	} else if in.JumpReleased && m.VY < 0 {
		m.VY *= jump.CutMultiplier
	}

	// linear drag, v -= drag*v*dt
	m.VX -= mv.Drag * m.VX * dt
	m.VY -= mv.Drag * m.VY * dt

	if speed := math.Hypot(m.VX, m.VY); speed > mv.MaxSpeed {
		scale := mv.MaxSpeed / speed
		m.VX *= scale
		m.VY *= scale
	}

	return m.VX * dt, m.VY * dt
}

func axisSign(v float64) float64 {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}
