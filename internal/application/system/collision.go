package system

import "github.com/younwookim/aquadrift/internal/domain/entity"

// Contacts are the flags reported by one collision pass.
// They are recomputed from scratch on every call.
type Contacts struct {
	OnGround  bool
	WallLeft  bool
	WallRight bool
}

// Resolution is the outcome of moving a box through the level
type Resolution struct {
	Box      entity.Rect // final box
	DX, DY   float64     // displacement actually applied
	Contacts Contacts
}

// CollisionSystem sweeps boxes against the solid tiles of a level.
// It only reports contacts; it never touches velocity.
type CollisionSystem struct {
	level *entity.Level
}

// NewCollisionSystem creates a new collision system
func NewCollisionSystem(level *entity.Level) *CollisionSystem {
	return &CollisionSystem{level: level}
}

// SetLevel swaps the level, used on reload
func (s *CollisionSystem) SetLevel(level *entity.Level) {
	s.level = level
}

// Level returns the current level
func (s *CollisionSystem) Level() *entity.Level {
	return s.level
}

// Resolve moves box by (dx, dy), X axis first, then Y from the X-resolved position.
// Overlapping tiles are processed in level order and the last clamp wins.
func (s *CollisionSystem) Resolve(box entity.Rect, dx, dy float64) Resolution {
	var c Contacts
	var solids []entity.SolidTile
	if s.level != nil {
		solids = s.level.Solids
	}

	// X axis
	rx := box.Translate(dx, 0)
	if dx != 0 {
		for _, tile := range solids {
			if !rx.Overlaps(tile.Rect) {
				continue
			}
			if dx > 0 {
				rx.X = tile.X - rx.W
				c.WallRight = true
			} else {
				rx.X = tile.Right()
				c.WallLeft = true
			}
		}
	} else {
		// touch probe, reports walls without moving
		for _, tile := range solids {
			if rx.TouchesLeftOf(tile.Rect) {
				c.WallRight = true
			}
			if rx.TouchesRightOf(tile.Rect) {
				c.WallLeft = true
			}
		}
	}

	// Y axis
	ry := rx.Translate(0, dy)
	if dy != 0 {
		for _, tile := range solids {
			if !ry.Overlaps(tile.Rect) {
				continue
			}
			if dy > 0 {
				ry.Y = tile.Y - ry.H
				c.OnGround = true
			} else {
				ry.Y = tile.Bottom()
			}
		}
	} else {
		for _, tile := range solids {
			if ry.RestsOn(tile.Rect) {
				c.OnGround = true
			}
		}
	}

	return Resolution{
		Box:      ry,
		DX:       ry.X - box.X,
		DY:       ry.Y - box.Y,
		Contacts: c,
	}
}
