package model

import (
	"math"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol3d/rules"
)

// ErrInvalidDecay is returned when a health counter is built with zero decay ticks
var ErrInvalidDecay = errors.New("model: decay ticks must be greater than zero")

// Health is a saturating hysteresis counter
type Health struct {
	HealthTicks uint8
	DecayTicks  uint8
}

// NewHealth starts the counter at base+decay, clamped to the uint8 maximum
func NewHealth(base, decay uint8) (Health, error) {
	if decay == 0 {
		return Health{}, errors.Wrapf(ErrInvalidDecay, "[NewHealth] base: %d, decay: %d", base, decay)
	}
	return Health{
		HealthTicks: saturatingAdd(base, decay),
		DecayTicks:  decay,
	}, nil
}

/*
Update advances the counter by one generation.

A sustaining neighbour count adds one tick, including from zero, which is
how a dead cell is reborn. Any other count removes one tick until the
counter reaches zero.
*/
func (h *Health) Update(r *rules.Rules, neighbours uint8) {
	if r.Sustains(neighbours) {
		h.HealthTicks = saturatingAdd(h.HealthTicks, 1)
		return
	}
	if h.HealthTicks >= 1 {
		h.HealthTicks--
	}
}

// IsAlive reports whether the counter is above the decay band
func (h Health) IsAlive() bool { return h.HealthTicks > h.DecayTicks }

// IsDecaying reports whether the counter is inside (0, decay]
func (h Health) IsDecaying() bool { return h.HealthTicks > 0 && h.HealthTicks <= h.DecayTicks }

// IsDead reports whether the counter is exhausted
func (h Health) IsDead() bool { return h.HealthTicks == 0 }

// Status derives the tri-state classification
func (h Health) Status() Status {
	switch {
	case h.IsAlive():
		return Alive
	case h.IsDecaying():
		return Decaying
	default:
		return Dead
	}
}

func saturatingAdd(a, b uint8) uint8 {
	if a > math.MaxUint8-b {
		return math.MaxUint8
	}
	return a + b
}
