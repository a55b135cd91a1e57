package system

import (
	"github.com/younwookim/aquadrift/internal/domain/entity"
	"github.com/younwookim/aquadrift/internal/infrastructure/config"
)

// Simulation owns the diver and the level systems it moves through.
// One Step is one fixed tick; rendering reads Player and Level afterwards.
type Simulation struct {
	config    *config.PhysicsConfig
	entities  *config.EntitiesConfig
	level     *entity.Level
	player    *entity.Player
	collision *CollisionSystem
	movement  *MovementSystem
	hazards   *HazardSystem
}

// NewSimulation places a fresh player on the level spawn
func NewSimulation(cfg *config.PhysicsConfig, ents *config.EntitiesConfig, level *entity.Level) *Simulation {
	collision := NewCollisionSystem(level)
	s := &Simulation{
		config:    cfg,
		entities:  ents,
		level:     level,
		collision: collision,
		movement:  NewMovementSystem(cfg, collision),
		hazards:   NewHazardSystem(level),
	}
	s.Respawn()
	return s
}

// Step applies one tick of input
func (s *Simulation) Step(in entity.InputFrame, dt float64) {
	if in.ShootPressed {
		s.player.TriggerShoot(s.config.Feedback.ShootDuration)
	}
	if in.HurtPressed {
		s.player.TriggerHurt(s.config.Feedback.HurtDuration)
	}

	s.movement.Update(s.player, in, dt)
	s.hazards.Update(s.player, s.config.Feedback.HurtDuration)
}

// Respawn resets the player to the level spawn with a clean state
func (s *Simulation) Respawn() {
	box := s.entities.Player.Box
	s.player = entity.NewPlayer(s.level.SpawnX, s.level.SpawnY, box.Width, box.Height)
}

// Reload swaps in a new level and respawns
func (s *Simulation) Reload(level *entity.Level) {
	s.level = level
	s.collision.SetLevel(level)
	s.hazards = NewHazardSystem(level)
	s.Respawn()
}

// Player returns the simulated diver
func (s *Simulation) Player() *entity.Player {
	return s.player
}

// Level returns the active level
func (s *Simulation) Level() *entity.Level {
	return s.level
}

// Snapshot returns the state the animator reads
func (s *Simulation) Snapshot() entity.PhysicsSnapshot {
	return s.player.Snapshot()
}
