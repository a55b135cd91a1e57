package entity

import "math"

// ShapeKind identifies the geometry of a collision shape
type ShapeKind int

const (
	ShapeRect ShapeKind = iota
	ShapeCircle
)

// Shape is a collision shape relative to the owner's position.
// Rect shapes use W and H from the top-left; circles use Radius around the position.
type Shape struct {
	Kind   ShapeKind
	W, H   float64
	Radius float64
}

// Collider is anything that can touch and hurt the diver.
// The shape is fixed at construction; callers never probe for optional fields.
type Collider interface {
	Position() (x, y float64)
	Shape() Shape
	Alive() bool
	// Damage returns the damage dealt on contact and whether this collider deals damage at all
	Damage() (int, bool)
}

// Bounds returns the axis-aligned bounding box of a collider
func Bounds(c Collider) Rect {
	x, y := c.Position()
	s := c.Shape()
	if s.Kind == ShapeCircle {
		return Rect{X: x - s.Radius, Y: y - s.Radius, W: s.Radius * 2, H: s.Radius * 2}
	}
	return Rect{X: x, Y: y, W: s.W, H: s.H}
}

// Touches reports whether a live collider overlaps the box r
func Touches(c Collider, r Rect) bool {
	if !c.Alive() {
		return false
	}
	x, y := c.Position()
	s := c.Shape()
	switch s.Kind {
	case ShapeCircle:
		// closest point on r to the centre
		cx := math.Max(r.X, math.Min(x, r.Right()))
		cy := math.Max(r.Y, math.Min(y, r.Bottom()))
		dx, dy := x-cx, y-cy
		return dx*dx+dy*dy < s.Radius*s.Radius
	default:
		return Bounds(c).Overlaps(r)
	}
}

// Hazard is a static harmful cell, drawn as spikes
type Hazard struct {
	Rect
	Amount int
}

// NewHazard creates a hazard covering r
func NewHazard(r Rect, amount int) *Hazard {
	return &Hazard{Rect: r, Amount: amount}
}

func (h *Hazard) Position() (float64, float64) { return h.X, h.Y }
func (h *Hazard) Shape() Shape                 { return Shape{Kind: ShapeRect, W: h.W, H: h.H} }
func (h *Hazard) Alive() bool                  { return true }
func (h *Hazard) Damage() (int, bool)          { return h.Amount, h.Amount > 0 }
