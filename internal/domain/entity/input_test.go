package entity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInputFrame_Sanitized(t *testing.T) {
	tests := []struct {
		name         string
		in           InputFrame
		wantX, wantY float64
	}{
		{"in range", InputFrame{MoveX: 0.5, MoveY: -1}, 0.5, -1},
		{"clamped", InputFrame{MoveX: 3, MoveY: -7}, 1, -1},
		{"nan", InputFrame{MoveX: math.NaN(), MoveY: math.NaN()}, 0, 0},
		{"inf", InputFrame{MoveX: math.Inf(1), MoveY: math.Inf(-1)}, 1, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Sanitized()
			assert.Equal(t, tt.wantX, got.MoveX)
			assert.Equal(t, tt.wantY, got.MoveY)
		})
	}
}

func TestInputFrame_SanitizedKeepsButtons(t *testing.T) {
	in := InputFrame{MoveX: 2, JumpPressed: true, DashPressed: true, ShootPressed: true}
	got := in.Sanitized()

	assert.True(t, got.JumpPressed)
	assert.True(t, got.DashPressed)
	assert.True(t, got.ShootPressed)
}
