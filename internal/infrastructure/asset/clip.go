// Package asset loads animation clips once and shares them read-only.
package asset

import (
	"errors"
	"fmt"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/aquadrift/internal/domain/entity"
)

var (
	ErrNoFrames     = errors.New("clip has no frames")
	ErrInvalidFPS   = errors.New("clip fps must be positive")
	ErrMissingFrame = errors.New("missing animation frame")
	ErrUnknownClip  = errors.New("unknown clip")
)

// Clip is an immutable animation: right facing frames with a pre-flipped
// left facing copy, a frame rate and a draw offset.
type Clip struct {
	Name    string
	Right   []*ebiten.Image
	Left    []*ebiten.Image
	FPS     float64
	Loop    bool
	OffsetX int
	OffsetY int

	OnEnter func()
	OnExit  func()
}

// NewClip validates and builds a clip. A nil left set reuses the right frames.
func NewClip(name string, right, left []*ebiten.Image, fps float64, loop bool) (*Clip, error) {
	if len(right) == 0 {
		return nil, fmt.Errorf("clip %q: %w", name, ErrNoFrames)
	}
	if !(fps > 0) {
		return nil, fmt.Errorf("clip %q: %w, got %v", name, ErrInvalidFPS, fps)
	}
	if left == nil {
		left = right
	}
	if len(left) != len(right) {
		return nil, fmt.Errorf("clip %q: %d left frames for %d right frames", name, len(left), len(right))
	}
	return &Clip{Name: name, Right: right, Left: left, FPS: fps, Loop: loop}, nil
}

// FrameDuration returns seconds per frame
func (c *Clip) FrameDuration() float64 {
	return 1 / c.FPS
}

// Len returns the number of frames
func (c *Clip) Len() int {
	return len(c.Right)
}

// Frame returns the image for index, mirrored when facing left
func (c *Clip) Frame(index int, facing entity.Facing) *ebiten.Image {
	if index < 0 || index >= len(c.Right) {
		index = 0
	}
	if facing == entity.FacingLeft {
		return c.Left[index]
	}
	return c.Right[index]
}

// Registry holds every loaded clip by state name.
// It is never modified after construction.
type Registry struct {
	clips map[string]*Clip
}

// NewRegistry builds a registry, rejecting duplicate names
func NewRegistry(clips ...*Clip) (*Registry, error) {
	r := &Registry{clips: make(map[string]*Clip, len(clips))}
	for _, c := range clips {
		if _, dup := r.clips[c.Name]; dup {
			return nil, fmt.Errorf("duplicate clip %q", c.Name)
		}
		r.clips[c.Name] = c
	}
	return r, nil
}

// Get returns the named clip
func (r *Registry) Get(name string) (*Clip, error) {
	c, ok := r.clips[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownClip, name)
	}
	return c, nil
}

// Has reports whether the named clip exists
func (r *Registry) Has(name string) bool {
	_, ok := r.clips[name]
	return ok
}

// Names returns clip names in sorted order
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.clips))
	for name := range r.clips {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
