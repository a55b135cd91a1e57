package entity

// Rect is an axis-aligned rectangle in world pixels.
// X, Y is the top-left corner.
type Rect struct {
	X, Y float64
	W, H float64
}

// Right returns the x coordinate of the right edge
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the y coordinate of the bottom edge
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Overlaps reports whether r and o share interior area.
// Rectangles that only touch along an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	if r.W <= 0 || r.H <= 0 || o.W <= 0 || o.H <= 0 {
		return false
	}
	return r.X < o.Right() && r.Right() > o.X && r.Y < o.Bottom() && r.Bottom() > o.Y
}

// Translate returns r moved by (dx, dy)
func (r Rect) Translate(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// TouchesLeftOf reports whether r's right edge sits exactly on o's left edge
// with the vertical ranges overlapping.
func (r Rect) TouchesLeftOf(o Rect) bool {
	return r.Right() == o.X && r.Bottom() > o.Y && r.Y < o.Bottom()
}

// TouchesRightOf reports whether r's left edge sits exactly on o's right edge
// with the vertical ranges overlapping.
func (r Rect) TouchesRightOf(o Rect) bool {
	return r.X == o.Right() && r.Bottom() > o.Y && r.Y < o.Bottom()
}

// RestsOn reports whether r's bottom edge sits exactly on o's top edge
// with the horizontal ranges overlapping.
func (r Rect) RestsOn(o Rect) bool {
	return r.Bottom() == o.Y && r.Right() > o.X && r.X < o.Right()
}
