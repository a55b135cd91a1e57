package entity

// TileType represents the type of a level cell
type TileType int

const (
	TileEmpty TileType = iota
	TileSolid
	TileHazard
)

// Level map characters
const (
	CharSolid  = '#'
	CharSpawn  = 'P'
	CharHazard = '^'
)

// SolidTile is an immutable solid rectangle built from a level cell.
type SolidTile struct {
	Rect
	Col, Row int
}

// Level holds the static collision data for one map.
// It is read-only once built and may be shared by any number of queries.
type Level struct {
	Rows     []string
	TileSize int
	Cols     int // longest row, rows may be ragged

	Solids  []SolidTile
	Hazards []*Hazard

	SpawnX, SpawnY float64
	HasSpawn       bool // false when the map had no 'P' and the fallback spawn was used
}

// CellAt returns the tile type for grid cell (col, row).
// Cells outside the map (including past the end of a short row) are empty.
func (l *Level) CellAt(col, row int) TileType {
	if row < 0 || row >= len(l.Rows) || col < 0 || col >= len(l.Rows[row]) {
		return TileEmpty
	}
	switch l.Rows[row][col] {
	case CharSolid:
		return TileSolid
	case CharHazard:
		return TileHazard
	default:
		return TileEmpty
	}
}

// PixelWidth returns the map width in pixels
func (l *Level) PixelWidth() int {
	return l.Cols * l.TileSize
}

// PixelHeight returns the map height in pixels
func (l *Level) PixelHeight() int {
	return len(l.Rows) * l.TileSize
}
