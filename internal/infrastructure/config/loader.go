package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// GameConfig holds all loaded configurations
type GameConfig struct {
	Physics    *PhysicsConfig
	Entities   *EntitiesConfig
	Animations *AnimationManifest
}

// Loader loads game configuration from files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// LoadPhysics loads physics.json. Keys missing from the file keep their default value.
func (l *Loader) LoadPhysics() (*PhysicsConfig, error) {
	data, err := fs.ReadFile(l.fsys, "physics.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read physics.json: %w", err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse physics.json: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("failed to validate physics.json: %w", err)
	}

	return cfg, nil
}

// LoadEntities loads entities.json
func (l *Loader) LoadEntities() (*EntitiesConfig, error) {
	data, err := fs.ReadFile(l.fsys, "entities.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read entities.json: %w", err)
	}

	cfg := DefaultEntities()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse entities.json: %w", err)
	}
	if cfg.Player.Box.Width <= 0 || cfg.Player.Box.Height <= 0 {
		return nil, fmt.Errorf("failed to validate entities.json: %w: player box must be positive", ErrInvalidConfig)
	}

	return cfg, nil
}

// LoadManifest loads animations.yaml
func (l *Loader) LoadManifest() (*AnimationManifest, error) {
	data, err := fs.ReadFile(l.fsys, "animations.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read animations.yaml: %w", err)
	}

	var m AnimationManifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse animations.yaml: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("failed to validate animations.yaml: %w", err)
	}

	return &m, nil
}

// LoadAll loads all base configurations (physics, entities, animations)
func (l *Loader) LoadAll() (*GameConfig, error) {
	physics, err := l.LoadPhysics()
	if err != nil {
		return nil, err
	}

	entities, err := l.LoadEntities()
	if err != nil {
		return nil, err
	}

	animations, err := l.LoadManifest()
	if err != nil {
		return nil, err
	}

	return &GameConfig{
		Physics:    physics,
		Entities:   entities,
		Animations: animations,
	}, nil
}

// LevelSource is a level map as text rows.
// TileSize is 0 when the source does not carry its own grid size.
type LevelSource struct {
	Name     string
	Rows     []string
	TileSize int
}

// LoadLevelFile reads a level map from fsys. Files ending in .tmx are read
// as Tiled maps, anything else as text rows.
func LoadLevelFile(fsys fs.FS, name string) (*LevelSource, error) {
	if strings.EqualFold(path.Ext(name), ".tmx") {
		return LoadTiledLevel(fsys, name)
	}

	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read level %s: %w", name, err)
	}

	return &LevelSource{Name: name, Rows: ParseRows(data)}, nil
}

// ParseRows splits level text into rows. Line endings are stripped and
// trailing blank lines dropped; ragged rows are kept as they are.
func ParseRows(data []byte) []string {
	rows := strings.Split(string(data), "\n")
	for i, row := range rows {
		rows[i] = strings.TrimRight(row, "\r")
	}
	for len(rows) > 0 && rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}
	if len(rows) == 0 {
		return nil
	}
	return rows
}

// DefaultArena returns the built-in map used when no level file can be read
func DefaultArena() *LevelSource {
	return &LevelSource{
		Name: "default",
		Rows: []string{
			"########################",
			"#......................#",
			"#......................#",
			"#..........P...........#",
			"#......................#",
			"########################",
		},
	}
}
