package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type testOrb struct {
	x, y  float64
	r     float64
	alive bool
}

func (o *testOrb) Position() (float64, float64) { return o.x, o.y }
func (o *testOrb) Shape() Shape                 { return Shape{Kind: ShapeCircle, Radius: o.r} }
func (o *testOrb) Alive() bool                  { return o.alive }
func (o *testOrb) Damage() (int, bool)          { return 0, false }

func TestHazard_Collider(t *testing.T) {
	h := NewHazard(Rect{X: 64, Y: 128, W: 32, H: 32}, 1)

	var c Collider = h
	x, y := c.Position()
	assert.Equal(t, 64.0, x)
	assert.Equal(t, 128.0, y)

	dmg, ok := c.Damage()
	assert.True(t, ok)
	assert.Equal(t, 1, dmg)

	assert.True(t, Touches(c, Rect{X: 70, Y: 100, W: 16, H: 40}))
	assert.False(t, Touches(c, Rect{X: 70, Y: 96, W: 16, H: 32}), "resting on top is not contact")
}

func TestTouches_Circle(t *testing.T) {
	box := Rect{X: 0, Y: 0, W: 10, H: 10}

	tests := []struct {
		name string
		orb  *testOrb
		want bool
	}{
		{"centre inside", &testOrb{x: 5, y: 5, r: 1, alive: true}, true},
		{"reaches edge", &testOrb{x: 13, y: 5, r: 4, alive: true}, true},
		{"misses corner", &testOrb{x: 13, y: 13, r: 4, alive: true}, false},
		{"dead", &testOrb{x: 5, y: 5, r: 4, alive: false}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Touches(tt.orb, box))
		})
	}
}

func TestBounds(t *testing.T) {
	orb := &testOrb{x: 10, y: 20, r: 5, alive: true}
	assert.Equal(t, Rect{X: 5, Y: 15, W: 10, H: 10}, Bounds(orb))
}
