package system

import (
	"github.com/solarlune/resolv"

	"github.com/younwookim/aquadrift/internal/domain/entity"
)

const (
	tagHazard = "hazard"
	tagPlayer = "player"
)

// HazardSystem finds colliders touching the diver.
// Level hazards live in a resolv space for the broad phase; the
// Collider shape decides actual contact.
type HazardSystem struct {
	space *resolv.Space
	probe *resolv.Object
}

// NewHazardSystem builds the hazard space for a level
func NewHazardSystem(level *entity.Level) *HazardSystem {
	cell := level.TileSize
	if cell <= 0 {
		cell = 32
	}
	w := max(level.PixelWidth(), cell)
	h := max(level.PixelHeight(), cell)
	space := resolv.NewSpace(w, h, cell, cell)

	for _, hz := range level.Hazards {
		addCollider(space, hz)
	}

	probe := resolv.NewObject(0, 0, 1, 1, tagPlayer)
	probe.SetShape(resolv.NewRectangle(0, 0, 1, 1))
	space.Add(probe)

	return &HazardSystem{space: space, probe: probe}
}

func addCollider(space *resolv.Space, c entity.Collider) {
	b := entity.Bounds(c)
	obj := resolv.NewObject(b.X, b.Y, b.W, b.H, tagHazard)
	obj.SetShape(resolv.NewRectangle(0, 0, b.W, b.H))
	obj.Data = c
	space.Add(obj)
}

// Touching returns the live damaging colliders overlapping box
func (s *HazardSystem) Touching(box entity.Rect) []entity.Collider {
	s.probe.X, s.probe.Y = box.X, box.Y
	if s.probe.W != box.W || s.probe.H != box.H {
		s.probe.W, s.probe.H = box.W, box.H
		s.probe.SetShape(resolv.NewRectangle(0, 0, box.W, box.H))
	}
	s.probe.Update()

	check := s.probe.Check(0, 0, tagHazard)
	if check == nil {
		return nil
	}

	var hits []entity.Collider
	for _, obj := range check.ObjectsByTags(tagHazard) {
		c, ok := obj.Data.(entity.Collider)
		if !ok {
			continue
		}
		if _, deals := c.Damage(); !deals {
			continue
		}
		if entity.Touches(c, box) {
			hits = append(hits, c)
		}
	}
	return hits
}

// Update starts the hurt overlay when the player touches a hazard.
// Contact never restarts a running hurt. Returns true when a new hurt was triggered.
func (s *HazardSystem) Update(player *entity.Player, hurtDuration float64) bool {
	if player.Hurting() {
		return false
	}
	if len(s.Touching(player.Rect())) == 0 {
		return false
	}
	player.TriggerHurt(hurtDuration)
	return true
}
