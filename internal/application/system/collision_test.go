package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/aquadrift/internal/domain/entity"
)

func createCollisionLevel() *entity.Level {
	// 32px tiles: a block at (64,64), floor top at y=96
	return createTestLevel(
		"......",
		"......",
		"..#...",
		"######",
	)
}

func TestCollisionSystem_ResolveX(t *testing.T) {
	cs := NewCollisionSystem(createCollisionLevel())

	t.Run("moving right stops flush with the wall", func(t *testing.T) {
		res := cs.Resolve(entity.Rect{X: 20, Y: 64, W: 32, H: 32}, 20, 0)

		assert.Equal(t, 32.0, res.Box.X)
		assert.Equal(t, 12.0, res.DX)
		assert.True(t, res.Contacts.WallRight)
		assert.False(t, res.Contacts.WallLeft)
	})

	t.Run("moving left stops flush with the wall", func(t *testing.T) {
		res := cs.Resolve(entity.Rect{X: 100, Y: 64, W: 32, H: 32}, -10, 0)

		assert.Equal(t, 96.0, res.Box.X)
		assert.Equal(t, -4.0, res.DX)
		assert.True(t, res.Contacts.WallLeft)
		assert.False(t, res.Contacts.WallRight)
	})

	t.Run("free movement keeps the full displacement", func(t *testing.T) {
		res := cs.Resolve(entity.Rect{X: 100, Y: 0, W: 32, H: 32}, 30, 0)

		assert.Equal(t, 130.0, res.Box.X)
		assert.Equal(t, Contacts{}, res.Contacts)
	})
}

func TestCollisionSystem_ResolveY(t *testing.T) {
	t.Run("falling lands on the floor", func(t *testing.T) {
		cs := NewCollisionSystem(createCollisionLevel())
		res := cs.Resolve(entity.Rect{X: 0, Y: 50, W: 32, H: 32}, 0, 20)

		assert.Equal(t, 64.0, res.Box.Y)
		assert.Equal(t, 14.0, res.DY)
		assert.True(t, res.Contacts.OnGround)
	})

	t.Run("rising stops under the ceiling without ground contact", func(t *testing.T) {
		cs := NewCollisionSystem(createTestLevel(
			"######",
			"......",
			"......",
		))
		res := cs.Resolve(entity.Rect{X: 0, Y: 40, W: 32, H: 32}, 0, -20)

		assert.Equal(t, 32.0, res.Box.Y)
		assert.False(t, res.Contacts.OnGround)
	})
}

func TestCollisionSystem_TouchProbe(t *testing.T) {
	cs := NewCollisionSystem(createCollisionLevel())

	tests := []struct {
		name string
		box  entity.Rect
		want Contacts
	}{
		{"resting on the floor", entity.Rect{X: 0, Y: 64, W: 32, H: 32}, Contacts{OnGround: true}},
		{"flush left of block", entity.Rect{X: 32, Y: 64, W: 32, H: 32}, Contacts{OnGround: true, WallRight: true}},
		{"flush right of block", entity.Rect{X: 96, Y: 64, W: 32, H: 32}, Contacts{OnGround: true, WallLeft: true}},
		{"floating", entity.Rect{X: 100, Y: 0, W: 32, H: 32}, Contacts{}},
		{"one pixel above the floor", entity.Rect{X: 0, Y: 63, W: 32, H: 32}, Contacts{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := cs.Resolve(tt.box, 0, 0)

			assert.Equal(t, tt.box, res.Box)
			assert.Equal(t, tt.want, res.Contacts)
		})
	}
}

func TestCollisionSystem_ResolvesXBeforeY(t *testing.T) {
	cs := NewCollisionSystem(createCollisionLevel())

	// Diagonal into the block corner: X clamps first, then Y falls
	// from the clamped position and lands on the floor.
	res := cs.Resolve(entity.Rect{X: 20, Y: 40, W: 32, H: 32}, 20, 30)

	assert.Equal(t, 32.0, res.Box.X)
	assert.Equal(t, 64.0, res.Box.Y)
	assert.True(t, res.Contacts.WallRight)
	assert.True(t, res.Contacts.OnGround)
}

func TestCollisionSystem_TunnelingIntoTwoTiles(t *testing.T) {
	cs := NewCollisionSystem(createTestLevel(
		"....#",
		"...#.",
	))

	res := cs.Resolve(entity.Rect{X: 0, Y: 0, W: 32, H: 64}, 120, 0)

	assert.Equal(t, 64.0, res.Box.X)
	assert.True(t, res.Contacts.WallRight)
}

func TestCollisionSystem_SetLevel(t *testing.T) {
	cs := NewCollisionSystem(nil)

	res := cs.Resolve(entity.Rect{X: 0, Y: 0, W: 32, H: 32}, 5, 5)
	assert.Equal(t, entity.Rect{X: 5, Y: 5, W: 32, H: 32}, res.Box)
	assert.Equal(t, Contacts{}, res.Contacts)

	level := createCollisionLevel()
	cs.SetLevel(level)
	assert.Same(t, level, cs.Level())

	res = cs.Resolve(entity.Rect{X: 0, Y: 50, W: 32, H: 32}, 0, 20)
	assert.True(t, res.Contacts.OnGround)
}
