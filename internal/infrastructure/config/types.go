package config

import (
	"errors"
	"fmt"
)

// PhysicsConfig is the root config for physics.json
type PhysicsConfig struct {
	Display   DisplayConfig   `json:"display"`
	Level     LevelConfig     `json:"level"`
	Movement  MovementConfig  `json:"movement"`
	Jump      JumpConfig      `json:"jump"`
	Dash      DashConfig      `json:"dash"`
	Wall      WallConfig      `json:"wall"`
	Animation AnimationConfig `json:"animation"`
	Feedback  FeedbackConfig  `json:"feedback"`
}

type DisplayConfig struct {
	ScreenWidth  int `json:"screenWidth"`
	ScreenHeight int `json:"screenHeight"`
	Scale        int `json:"scale"`
	Framerate    int `json:"framerate"`
}

// LevelConfig describes how level maps are turned into world space
type LevelConfig struct {
	TileSize       int     `json:"tileSize"`
	FallbackSpawnX float64 `json:"fallbackSpawnX"` // used when a map has no 'P'
	FallbackSpawnY float64 `json:"fallbackSpawnY"`
}

type MovementConfig struct {
	Acceleration     float64 `json:"acceleration"`
	Drag             float64 `json:"drag"`
	MaxSpeed         float64 `json:"maxSpeed"`
	SinkAcceleration float64 `json:"sinkAcceleration"`
	FacingDeadzone   float64 `json:"facingDeadzone"`
}

type JumpConfig struct {
	Speed            float64 `json:"speed"`
	HoldAcceleration float64 `json:"holdAcceleration"`
	HoldTime         float64 `json:"holdTime"`
	CutMultiplier    float64 `json:"cutMultiplier"`
	CoyoteTime       float64 `json:"coyoteTime"`
	JumpBuffer       float64 `json:"jumpBuffer"`
}

type DashConfig struct {
	Speed          float64 `json:"speed"`
	Duration       float64 `json:"duration"`
	Cooldown       float64 `json:"cooldown"`
	DiagonalFactor float64 `json:"diagonalFactor"`
}

type WallConfig struct {
	SlideSpeed         float64 `json:"slideSpeed"`
	NeutralSlideFactor float64 `json:"neutralSlideFactor"`
	KickTime           float64 `json:"kickTime"`
	KickLockout        float64 `json:"kickLockout"`
	KickSpeedX         float64 `json:"kickSpeedX"`
	KickSpeedY         float64 `json:"kickSpeedY"`
}

// AnimationConfig holds the locomotion thresholds of the animation selector
type AnimationConfig struct {
	SwimSpeedThreshold    float64 `json:"swimSpeedThreshold"`
	JumpVelocityThreshold float64 `json:"jumpVelocityThreshold"` // negative, upward
	FallVelocityThreshold float64 `json:"fallVelocityThreshold"`
	FallbackState         string  `json:"fallbackState"`
}

type FeedbackConfig struct {
	ShootDuration float64         `json:"shootDuration"`
	HurtDuration  float64         `json:"hurtDuration"`
	Breathing     BreathingConfig `json:"breathing"`
}

// BreathingConfig configures the idle bob drawn under the sprite
type BreathingConfig struct {
	Enabled   bool    `json:"enabled"`
	Amplitude float64 `json:"amplitude"` // pixels
	HalfCycle float64 `json:"halfCycle"` // seconds from low to high
}

// ErrInvalidConfig is returned by Validate
var ErrInvalidConfig = errors.New("invalid config")

// Validate rejects values the simulation cannot run with
func (c *PhysicsConfig) Validate() error {
	switch {
	case c.Level.TileSize <= 0:
		return fmt.Errorf("%w: level.tileSize must be positive, got %d", ErrInvalidConfig, c.Level.TileSize)
	case c.Display.Framerate <= 0:
		return fmt.Errorf("%w: display.framerate must be positive, got %d", ErrInvalidConfig, c.Display.Framerate)
	case c.Movement.MaxSpeed <= 0:
		return fmt.Errorf("%w: movement.maxSpeed must be positive", ErrInvalidConfig)
	case c.Dash.Duration <= 0:
		return fmt.Errorf("%w: dash.duration must be positive", ErrInvalidConfig)
	}
	return nil
}

// Default returns the tuning the game ships with
func Default() *PhysicsConfig {
	return &PhysicsConfig{
		Display: DisplayConfig{ScreenWidth: 1280, ScreenHeight: 720, Scale: 1, Framerate: 60},
		Level:   LevelConfig{TileSize: 32, FallbackSpawnX: 640, FallbackSpawnY: 360},
		Movement: MovementConfig{
			Acceleration:     900,
			Drag:             2.6,
			MaxSpeed:         220,
			SinkAcceleration: 120,
			FacingDeadzone:   0.01,
		},
		Jump: JumpConfig{
			Speed:            220,
			HoldAcceleration: 420,
			HoldTime:         0.18,
			CutMultiplier:    0.55,
			CoyoteTime:       0.12,
			JumpBuffer:       0.12,
		},
		Dash: DashConfig{Speed: 420, Duration: 0.18, Cooldown: 0.3, DiagonalFactor: 0.707},
		Wall: WallConfig{
			SlideSpeed:         24,
			NeutralSlideFactor: 0.4,
			KickTime:           0.18,
			KickLockout:        0.25,
			KickSpeedX:         260,
			KickSpeedY:         180,
		},
		Animation: AnimationConfig{
			SwimSpeedThreshold:    30,
			JumpVelocityThreshold: -40,
			FallVelocityThreshold: 40,
			FallbackState:         "idle",
		},
		Feedback: FeedbackConfig{
			ShootDuration: 0.18,
			HurtDuration:  0.35,
			Breathing:     BreathingConfig{Enabled: true, Amplitude: 1, HalfCycle: 1.05},
		},
	}
}
