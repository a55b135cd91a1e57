package config

// EntitiesConfig is the root config for entities.json
type EntitiesConfig struct {
	Player PlayerConfig `json:"player"`
	Hazard HazardConfig `json:"hazard"`
}

// PlayerConfig defines the diver's collision box and sprite placement
type PlayerConfig struct {
	ID         string    `json:"id"`
	Box        BoxConfig `json:"box"`
	FeetOffset int       `json:"feetOffset"` // pixels the sprite is pushed down so feet meet the floor
}

type BoxConfig struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// HazardConfig defines '^' cells
type HazardConfig struct {
	Damage int `json:"damage"`
	// Inset shrinks the hurt area on every side so grazing a spike is harmless
	Inset float64 `json:"inset"`
}

// DefaultEntities returns the entity definitions the game ships with
func DefaultEntities() *EntitiesConfig {
	return &EntitiesConfig{
		Player: PlayerConfig{ID: "diver", Box: BoxConfig{Width: 64, Height: 64}, FeetOffset: 6},
		Hazard: HazardConfig{Damage: 1, Inset: 4},
	}
}
