package system

import (
	"io/fs"
	"log"

	"github.com/younwookim/aquadrift/internal/domain/entity"
	"github.com/younwookim/aquadrift/internal/infrastructure/config"
)

// LoadLevel converts level rows into a Level entity.
// Every '#' becomes a solid tile, every '^' a hazard and the first 'P' the spawn.
// A source without its own tile size uses the configured one.
func LoadLevel(src *config.LevelSource, lvl config.LevelConfig, hazard config.HazardConfig) *entity.Level {
	tileSize := src.TileSize
	if tileSize <= 0 {
		tileSize = lvl.TileSize
	}
	ts := float64(tileSize)

	level := &entity.Level{
		Rows:     src.Rows,
		TileSize: tileSize,
		SpawnX:   lvl.FallbackSpawnX,
		SpawnY:   lvl.FallbackSpawnY,
	}

	for r, row := range src.Rows {
		if len(row) > level.Cols {
			level.Cols = len(row)
		}
		for c := 0; c < len(row); c++ {
			cell := entity.Rect{X: float64(c) * ts, Y: float64(r) * ts, W: ts, H: ts}
			switch row[c] {
			case entity.CharSolid:
				level.Solids = append(level.Solids, entity.SolidTile{Rect: cell, Col: c, Row: r})
			case entity.CharHazard:
				in := hazard.Inset
				if in*2 >= ts {
					in = 0
				}
				area := entity.Rect{X: cell.X + in, Y: cell.Y + in, W: ts - 2*in, H: ts - 2*in}
				level.Hazards = append(level.Hazards, entity.NewHazard(area, hazard.Damage))
			case entity.CharSpawn:
				// first occurrence wins
				if !level.HasSpawn {
					level.SpawnX, level.SpawnY = cell.X, cell.Y
					level.HasSpawn = true
				}
			}
		}
	}

	return level
}

// LoadLevelSource reads a level map and falls back to the built-in arena
// when the file is missing or unreadable. It never fails.
func LoadLevelSource(fsys fs.FS, name string) *config.LevelSource {
	if fsys == nil || name == "" {
		return config.DefaultArena()
	}
	src, err := config.LoadLevelFile(fsys, name)
	if err != nil {
		log.Printf("Level %s unavailable, using default arena: %v", name, err)
		return config.DefaultArena()
	}
	if len(src.Rows) == 0 {
		log.Printf("Level %s is empty, using default arena", name)
		return config.DefaultArena()
	}
	return src
}
