package system

import (
	"github.com/younwookim/aquadrift/internal/domain/entity"
	"github.com/younwookim/aquadrift/internal/infrastructure/config"
)

const testDT = 1.0 / 60.0

func createTestPhysicsConfig() *config.PhysicsConfig {
	return config.Default()
}

func createTestEntitiesConfig() *config.EntitiesConfig {
	return config.DefaultEntities()
}

// createTestLevel builds a level from rows with 32px tiles
func createTestLevel(rows ...string) *entity.Level {
	cfg := config.Default()
	ents := config.DefaultEntities()
	return LoadLevel(&config.LevelSource{Name: "test", Rows: rows}, cfg.Level, ents.Hazard)
}

func createTestArena() *entity.Level {
	cfg := config.Default()
	ents := config.DefaultEntities()
	return LoadLevel(config.DefaultArena(), cfg.Level, ents.Hazard)
}

// createTestMovement returns a movement system over level and a 64x64 player at (x, y)
func createTestMovement(level *entity.Level, x, y float64) (*MovementSystem, *entity.Player) {
	ms := NewMovementSystem(createTestPhysicsConfig(), NewCollisionSystem(level))
	return ms, entity.NewPlayer(x, y, 64, 64)
}
