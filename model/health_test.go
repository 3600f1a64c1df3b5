package model

import (
	"math"
	"testing"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol3d/rules"
)

func sustainOn(t *testing.T, counts ...uint8) *rules.Rules {
	t.Helper()
	r, err := rules.New(rules.DefaultDims, rules.WithNeighbours(counts...))
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func TestNewHealth(t *testing.T) {
	h, err := NewHealth(15, 5)
	if err != nil {
		t.Fatal(err)
	}
	if h.HealthTicks != 20 || h.DecayTicks != 5 {
		t.Fatalf("got %+v, expected {HealthTicks:20 DecayTicks:5}", h)
	}
}

func TestNewHealthSaturates(t *testing.T) {
	h, err := NewHealth(250, 10)
	if err != nil {
		t.Fatal(err)
	}
	if h.HealthTicks != math.MaxUint8 {
		t.Fatalf("health ticks = %d, expected clamp at %d", h.HealthTicks, math.MaxUint8)
	}
}

func TestNewHealthRejectsZeroDecay(t *testing.T) {
	if _, err := NewHealth(15, 0); !errors.Is(err, ErrInvalidDecay) {
		t.Fatalf("expected ErrInvalidDecay, got %v", err)
	}
}

func TestHealthUpdate(t *testing.T) {
	r := sustainOn(t, 4)
	tests := []struct {
		base, decay, neighbours uint8
		expected                uint8
	}{
		{15, 5, 4, 15 + 5 + 1},
		{15, 5, 5, 15 + 5 - 1},
		{1, 1, 5, 1 + 1 - 1},
		{255, 5, 4, 255},
		{255, 5, 5, 255 - 1},
		{0, 5, 4, 0 + 5 + 1},
		{0, 5, 5, 0 + 5 - 1},
	}
	for _, tt := range tests {
		h, err := NewHealth(tt.base, tt.decay)
		if err != nil {
			t.Fatal(err)
		}
		h.Update(r, tt.neighbours)
		if h.HealthTicks != tt.expected {
			t.Fatalf("NewHealth(%d, %d).Update(%d): ticks = %d, expected %d",
				tt.base, tt.decay, tt.neighbours, h.HealthTicks, tt.expected)
		}
	}
}

func TestHealthDecaysToZeroAndStays(t *testing.T) {
	r := sustainOn(t, 4)
	h, err := NewHealth(3, 2)
	if err != nil {
		t.Fatal(err)
	}
	for want := 4; want >= 0; want-- {
		h.Update(r, 0)
		if int(h.HealthTicks) != want {
			t.Fatalf("ticks = %d, expected %d", h.HealthTicks, want)
		}
	}
	for range 3 {
		h.Update(r, 0)
		if h.HealthTicks != 0 {
			t.Fatalf("dead counter moved to %d", h.HealthTicks)
		}
	}
}

func TestHealthRevivesAndSaturates(t *testing.T) {
	r := sustainOn(t, 4)
	h := Health{HealthTicks: 0, DecayTicks: 5}
	for want := 1; want <= math.MaxUint8; want++ {
		h.Update(r, 4)
		if int(h.HealthTicks) != want {
			t.Fatalf("ticks = %d, expected %d", h.HealthTicks, want)
		}
	}
	h.Update(r, 4)
	if h.HealthTicks != math.MaxUint8 {
		t.Fatalf("counter wrapped to %d", h.HealthTicks)
	}
}

func TestHealthStatusBoundaries(t *testing.T) {
	tests := []struct {
		ticks    uint8
		expected Status
	}{
		{255, Alive},
		{15, Alive},
		{6, Alive},
		{5, Decaying},
		{1, Decaying},
		{0, Dead},
	}
	for _, tt := range tests {
		h := Health{HealthTicks: tt.ticks, DecayTicks: 5}
		if got := h.Status(); got != tt.expected {
			t.Fatalf("ticks %d: status %s, expected %s", tt.ticks, got, tt.expected)
		}
		if h.IsAlive() != (tt.expected == Alive) ||
			h.IsDecaying() != (tt.expected == Decaying) ||
			h.IsDead() != (tt.expected == Dead) {
			t.Fatalf("ticks %d: predicates disagree with status %s", tt.ticks, tt.expected)
		}
	}
}
