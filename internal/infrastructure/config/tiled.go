package config

import (
	"fmt"
	"io/fs"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Tiled layer and object group names read by LoadTiledLevel
const (
	TiledSolidLayer  = "solid"
	TiledHazardLayer = "hazards"
	TiledSpawnGroup  = "PlayerSpawn"
)

// LoadTiledLevel converts a TMX map to text rows so both level formats
// share one grid builder. Non-empty tiles in the solid layer become '#',
// tiles in the hazards layer become '^' and the first PlayerSpawn object
// marks the cell it sits in with 'P'.
func LoadTiledLevel(fsys fs.FS, tmxPath string) (*LevelSource, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("failed to load TMX %s: %w", tmxPath, err)
	}
	if levelMap.TileWidth != levelMap.TileHeight {
		return nil, fmt.Errorf("failed to load TMX %s: tiles must be square, got %dx%d",
			tmxPath, levelMap.TileWidth, levelMap.TileHeight)
	}

	grid := make([][]byte, levelMap.Height)
	for y := range grid {
		grid[y] = []byte(strings.Repeat(".", levelMap.Width))
	}

	for _, layer := range levelMap.Layers {
		var ch byte
		switch layer.Name {
		case TiledSolidLayer:
			ch = '#'
		case TiledHazardLayer:
			ch = '^'
		default:
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					continue
				}
				// solids win over hazards on the same cell
				if grid[y][x] != '#' {
					grid[y][x] = ch
				}
			}
		}
	}

	tw := float64(levelMap.TileWidth)
	for _, og := range levelMap.ObjectGroups {
		if og.Name != TiledSpawnGroup || len(og.Objects) == 0 {
			continue
		}
		o := og.Objects[0]
		col, row := int(o.X/tw), int(o.Y/tw)
		if row >= 0 && row < levelMap.Height && col >= 0 && col < levelMap.Width && grid[row][col] == '.' {
			grid[row][col] = 'P'
		}
		break
	}

	rows := make([]string, len(grid))
	for i, r := range grid {
		rows[i] = string(r)
	}

	return &LevelSource{Name: tmxPath, Rows: rows, TileSize: levelMap.TileWidth}, nil
}
