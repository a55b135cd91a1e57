package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevel_CellAt(t *testing.T) {
	level := &Level{
		Rows:     []string{"#.^", "#", "P.#"},
		TileSize: 32,
		Cols:     3,
	}

	tests := []struct {
		name     string
		col, row int
		want     TileType
	}{
		{"solid", 0, 0, TileSolid},
		{"empty", 1, 0, TileEmpty},
		{"hazard", 2, 0, TileHazard},
		{"past short row", 2, 1, TileEmpty},
		{"spawn is passable", 0, 2, TileEmpty},
		{"negative col", -1, 0, TileEmpty},
		{"below map", 0, 3, TileEmpty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, level.CellAt(tt.col, tt.row))
		})
	}
}

func TestLevel_PixelSize(t *testing.T) {
	level := &Level{Rows: []string{"####", "#..#", "####"}, TileSize: 16, Cols: 4}

	assert.Equal(t, 64, level.PixelWidth())
	assert.Equal(t, 48, level.PixelHeight())
}
