package playing

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/younwookim/aquadrift/internal/infrastructure/config"
)

// breather is the idle bob drawn under the sprite. It never feeds back into
// the simulation.
type breather struct {
	enabled bool
	phases  []*gween.Tween // rise, fall through, settle
	phase   int
	offset  int
}

func newBreather(cfg config.BreathingConfig) *breather {
	a := float32(cfg.Amplitude)
	half := float32(cfg.HalfCycle)
	return &breather{
		enabled: cfg.Enabled && half > 0 && a != 0,
		phases: []*gween.Tween{
			gween.New(0, a, half/2, ease.OutSine),
			gween.New(a, -a, half, ease.InOutSine),
			gween.New(-a, 0, half/2, ease.InSine),
		},
	}
}

// Update advances the bob while idle and snaps back to zero otherwise.
// Returns the pixel offset to draw with.
func (b *breather) Update(dt float64, idle bool) int {
	if !b.enabled || !idle {
		b.reset()
		return 0
	}

	v, done := b.phases[b.phase].Update(float32(dt))
	if done {
		b.phases[b.phase].Reset()
		b.phase = (b.phase + 1) % len(b.phases)
	}
	b.offset = int(math.Round(float64(v)))
	return b.offset
}

// Offset returns the last computed offset
func (b *breather) Offset() int {
	return b.offset
}

func (b *breather) reset() {
	for _, tw := range b.phases {
		tw.Reset()
	}
	b.phase = 0
	b.offset = 0
}
