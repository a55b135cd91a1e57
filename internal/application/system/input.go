package system

import (
	"fmt"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/aquadrift/internal/domain/entity"
)

// Action is a named, rebindable control
type Action string

const (
	ActionLeft  Action = "left"
	ActionRight Action = "right"
	ActionUp    Action = "up"
	ActionDown  Action = "down"
	ActionJump  Action = "jump"
	ActionDash  Action = "dash"
	ActionShoot Action = "shoot"
	ActionHurt  Action = "hurt"
	ActionDebug Action = "debug"
	ActionPause Action = "pause"
)

// Actions lists every action in polling order
var Actions = []Action{
	ActionLeft, ActionRight, ActionUp, ActionDown,
	ActionJump, ActionDash, ActionShoot, ActionHurt,
	ActionDebug, ActionPause,
}

// Bindings maps each action to the keys that trigger it
type Bindings map[Action][]ebiten.Key

// DefaultBindings returns the stock key layout
func DefaultBindings() Bindings {
	return Bindings{
		ActionLeft:  {ebiten.KeyA, ebiten.KeyArrowLeft},
		ActionRight: {ebiten.KeyD, ebiten.KeyArrowRight},
		ActionUp:    {ebiten.KeyW, ebiten.KeyArrowUp},
		ActionDown:  {ebiten.KeyS, ebiten.KeyArrowDown},
		ActionJump:  {ebiten.KeyK, ebiten.KeyZ},
		ActionDash:  {ebiten.KeySpace},
		ActionShoot: {ebiten.KeyControlLeft, ebiten.KeyJ},
		ActionHurt:  {ebiten.KeyH},
		ActionDebug: {ebiten.KeyF3},
		ActionPause: {ebiten.KeyEscape},
	}
}

// Names converts bindings to action and key names for storage
func (b Bindings) Names() map[string][]string {
	out := make(map[string][]string, len(b))
	for action, keys := range b {
		names := make([]string, 0, len(keys))
		for _, k := range keys {
			names = append(names, k.String())
		}
		out[string(action)] = names
	}
	return out
}

// Merge returns a copy of b with every action named in overrides replaced.
// Unknown actions and key names are rejected.
func (b Bindings) Merge(overrides map[string][]string) (Bindings, error) {
	out := make(Bindings, len(b))
	for action, keys := range b {
		out[action] = append([]ebiten.Key(nil), keys...)
	}

	names := make([]string, 0, len(overrides))
	for name := range overrides {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		action := Action(name)
		if _, ok := b[action]; !ok {
			return nil, fmt.Errorf("unknown action %q", name)
		}
		keys := make([]ebiten.Key, 0, len(overrides[name]))
		for _, keyName := range overrides[name] {
			var k ebiten.Key
			if err := k.UnmarshalText([]byte(keyName)); err != nil {
				return nil, fmt.Errorf("action %q: %w", name, err)
			}
			keys = append(keys, k)
		}
		out[action] = keys
	}
	return out, nil
}

// ButtonState is the state of one action this tick
type ButtonState struct {
	Held     bool
	Pressed  bool // went down this tick
	Released bool // went up this tick
}

// InputState holds the state of every action for one tick
type InputState map[Action]ButtonState

// Frame converts action states into a movement input frame
func (st InputState) Frame() entity.InputFrame {
	axis := func(neg, pos Action) float64 {
		v := 0.0
		if st[neg].Held {
			v--
		}
		if st[pos].Held {
			v++
		}
		return v
	}

	return entity.InputFrame{
		MoveX:        axis(ActionLeft, ActionRight),
		MoveY:        axis(ActionUp, ActionDown),
		JumpPressed:  st[ActionJump].Pressed,
		JumpHeld:     st[ActionJump].Held,
		JumpReleased: st[ActionJump].Released,
		DashPressed:  st[ActionDash].Pressed,
		ShootPressed: st[ActionShoot].Pressed,
		HurtPressed:  st[ActionHurt].Pressed,
	}
}

// InputSystem polls the keyboard through the current bindings
type InputSystem struct {
	bindings Bindings
}

// NewInputSystem creates a new input system
func NewInputSystem(bindings Bindings) *InputSystem {
	if bindings == nil {
		bindings = DefaultBindings()
	}
	return &InputSystem{bindings: bindings}
}

// GetInput reads the current input state.
// An action is pressed when any of its keys went down this tick, and
// released only when the last held key came up.
func (s *InputSystem) GetInput() InputState {
	st := make(InputState, len(Actions))
	for _, action := range Actions {
		var b ButtonState
		anyReleased := false
		for _, k := range s.bindings[action] {
			if ebiten.IsKeyPressed(k) {
				b.Held = true
			}
			if inpututil.IsKeyJustPressed(k) {
				b.Pressed = true
			}
			if inpututil.IsKeyJustReleased(k) {
				anyReleased = true
			}
		}
		b.Released = anyReleased && !b.Held
		st[action] = b
	}
	return st
}
