package system

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/aquadrift/internal/domain/entity"
	"github.com/younwookim/aquadrift/internal/infrastructure/asset"
	"github.com/younwookim/aquadrift/internal/infrastructure/config"
)

// Animation state names, also the clip names in the manifest
const (
	AnimIdle  = "idle"
	AnimSwim  = "swim"
	AnimJump  = "jump"
	AnimFall  = "fall"
	AnimShoot = "shoot"
	AnimDash  = "dash"
	AnimHurt  = "hurt"
)

// AnimationStates lists every state the animator can select
var AnimationStates = []string{AnimIdle, AnimSwim, AnimJump, AnimFall, AnimShoot, AnimDash, AnimHurt}

// AnimatorState is the playback position in the active clip.
// It is reset whenever the clip changes.
type AnimatorState struct {
	Clip     string
	Elapsed  float64
	Index    int
	Finished bool
}

// AnimFrame is what the renderer draws this tick
type AnimFrame struct {
	Image   *ebiten.Image
	OffsetX int
	OffsetY int
	State   string
}

// Animator picks a clip from the physics snapshot and advances it.
// It only ever reads the snapshot.
type Animator struct {
	clips *asset.Registry
	cfg   config.AnimationConfig

	clip           *asset.Clip
	state          AnimatorState
	shootWasActive bool
}

// NewAnimator creates an animator starting in the fallback state.
// Every animation state must have a clip.
func NewAnimator(clips *asset.Registry, cfg config.AnimationConfig) (*Animator, error) {
	for _, name := range AnimationStates {
		if !clips.Has(name) {
			return nil, fmt.Errorf("animator: %w: %q", asset.ErrUnknownClip, name)
		}
	}
	fallback := cfg.FallbackState
	if fallback == "" {
		fallback = AnimIdle
	}
	clip, err := clips.Get(fallback)
	if err != nil {
		return nil, fmt.Errorf("animator: %w", err)
	}

	return &Animator{
		clips: clips,
		cfg:   cfg,
		clip:  clip,
		state: AnimatorState{Clip: fallback},
	}, nil
}

// State returns the current playback state
func (a *Animator) State() AnimatorState {
	return a.state
}

// Update selects the state for this tick, advances its clip by dt and
// returns the frame to draw.
// Priority: hurt, dash, running shoot, new shoot, locomotion.
func (a *Animator) Update(dt float64, snap entity.PhysicsSnapshot) AnimFrame {
	shootTriggered := snap.Shooting && !a.shootWasActive

	var next string
	switch {
	case snap.Hurt:
		next = AnimHurt
	case snap.IsDashing:
		next = AnimDash
	case a.state.Clip == AnimShoot && !a.state.Finished:
		next = AnimShoot
	case shootTriggered:
		next = AnimShoot
	default:
		next = SelectLocomotion(snap, a.cfg)
	}

	a.switchTo(next)
	a.advance(dt)

	// a finished shoot hands over to locomotion in the same tick
	if a.state.Clip == AnimShoot && a.state.Finished {
		a.switchTo(SelectLocomotion(snap, a.cfg))
	}

	a.shootWasActive = snap.Shooting

	return AnimFrame{
		Image:   a.clip.Frame(a.state.Index, snap.Facing),
		OffsetX: a.clip.OffsetX,
		OffsetY: a.clip.OffsetY,
		State:   a.state.Clip,
	}
}

// switchTo changes clip, firing exit then enter hooks
func (a *Animator) switchTo(name string) {
	if name == a.state.Clip {
		return
	}
	clip, err := a.clips.Get(name)
	if err != nil {
		// every state was checked in NewAnimator
		return
	}
	if a.clip.OnExit != nil {
		a.clip.OnExit()
	}
	a.clip = clip
	a.state = AnimatorState{Clip: name}
	if clip.OnEnter != nil {
		clip.OnEnter()
	}
}

// advance steps frames for every full frame duration in the accumulated time
func (a *Animator) advance(dt float64) {
	if a.state.Finished && !a.clip.Loop {
		return
	}
	if dt > 0 {
		a.state.Elapsed += dt
	}
	fd := a.clip.FrameDuration()
	for a.state.Elapsed >= fd {
		a.state.Elapsed -= fd
		switch {
		case a.state.Index < a.clip.Len()-1:
			a.state.Index++
		case a.clip.Loop:
			a.state.Index = 0
		default:
			a.state.Finished = true
			return
		}
	}
}

// SelectLocomotion picks the movement clip from velocity and ground contact
func SelectLocomotion(snap entity.PhysicsSnapshot, cfg config.AnimationConfig) string {
	if snap.VY <= cfg.JumpVelocityThreshold {
		return AnimJump
	}
	if snap.VY >= cfg.FallVelocityThreshold {
		return AnimFall
	}

	swim := cfg.SwimSpeedThreshold
	if snap.OnGround {
		if math.Abs(snap.VX) >= swim {
			return AnimSwim
		}
		return AnimIdle
	}
	if math.Abs(snap.VX) >= swim || math.Abs(snap.VY) >= swim {
		return AnimSwim
	}
	return AnimIdle
}
