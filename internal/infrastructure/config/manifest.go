package config

import (
	"fmt"
	"sort"
)

// AnimationManifest maps a state name to its clip definition.
// It is decoded from animations.yaml.
type AnimationManifest struct {
	Root  string                  `yaml:"root"` // directory the frame paths are relative to
	Clips map[string]ClipManifest `yaml:"clips"`
}

// ClipManifest describes one clip before its frames are loaded
type ClipManifest struct {
	Paths  []string `yaml:"paths"`
	Size   []int    `yaml:"size"`   // optional [w, h] target size
	FPS    *float64 `yaml:"fps"`    // defaults to DefaultFPS
	Loop   *bool    `yaml:"loop"`   // defaults to true
	Offset []int    `yaml:"offset"` // optional [x, y] draw offset
}

// DefaultFPS is the frame rate of a clip that does not set one
const DefaultFPS = 8.0

// FrameRate returns the fps, DefaultFPS when omitted. An explicit
// non-positive value is returned as is and rejected when the clip is built.
func (c ClipManifest) FrameRate() float64 {
	if c.FPS == nil {
		return DefaultFPS
	}
	return *c.FPS
}

// Looping returns the loop flag, defaulting to true when omitted
func (c ClipManifest) Looping() bool {
	return c.Loop == nil || *c.Loop
}

// TargetSize returns the scale target, ok is false when frames keep their own size
func (c ClipManifest) TargetSize() (w, h int, ok bool) {
	if len(c.Size) != 2 {
		return 0, 0, false
	}
	return c.Size[0], c.Size[1], true
}

// DrawOffset returns the offset, zero when omitted
func (c ClipManifest) DrawOffset() (x, y int) {
	if len(c.Offset) != 2 {
		return 0, 0
	}
	return c.Offset[0], c.Offset[1]
}

// StateNames returns the clip names in a stable order
func (m *AnimationManifest) StateNames() []string {
	names := make([]string, 0, len(m.Clips))
	for name := range m.Clips {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate checks the shape of the manifest. Frame and fps checks happen
// when clips are built.
func (m *AnimationManifest) Validate() error {
	if len(m.Clips) == 0 {
		return fmt.Errorf("%w: manifest has no clips", ErrInvalidConfig)
	}
	for _, name := range m.StateNames() {
		c := m.Clips[name]
		if len(c.Size) != 0 && len(c.Size) != 2 {
			return fmt.Errorf("%w: clip %q size must be [w, h]", ErrInvalidConfig, name)
		}
		if w, h, ok := c.TargetSize(); ok && (w <= 0 || h <= 0) {
			return fmt.Errorf("%w: clip %q size must be positive", ErrInvalidConfig, name)
		}
		if len(c.Offset) != 0 && len(c.Offset) != 2 {
			return fmt.Errorf("%w: clip %q offset must be [x, y]", ErrInvalidConfig, name)
		}
	}
	return nil
}
