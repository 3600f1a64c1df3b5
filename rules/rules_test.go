package rules

import (
	"slices"
	"testing"

	"github.com/pkg/errors"
)

func TestDefault(t *testing.T) {
	r := Default()
	if r.Dims() != 6 {
		t.Fatalf("dims = %d, expected 6", r.Dims())
	}
	if !slices.Equal(r.Neighbours(), []uint8{3, 5}) {
		t.Fatalf("neighbours = %v, expected [3 5]", r.Neighbours())
	}
	expected := []Offset{
		{1, 0, 0},
		{-1, 0, 0},
		{0, 1, 0},
		{0, -1, 0},
		{0, 0, 1},
		{0, 0, -1},
	}
	if !slices.Equal(r.Offsets(), expected) {
		t.Fatalf("offsets = %v, expected %v", r.Offsets(), expected)
	}
}

func TestNew(t *testing.T) {
	for _, dims := range []uint16{1, 2, 3, 10, 20, 50} {
		r, err := New(dims)
		if err != nil {
			t.Fatalf("New(%d) returned error: %v", dims, err)
		}
		if r.Dims() != dims {
			t.Fatalf("New(%d).Dims() = %d", dims, r.Dims())
		}
	}
}

func TestNewRejectsZeroDims(t *testing.T) {
	r, err := New(0)
	if err == nil {
		t.Fatal("expected New(0) to fail")
	}
	if r != nil {
		t.Fatal("expected no rules on failure")
	}
	if !errors.Is(err, ErrInvalidDims) {
		t.Fatalf("expected ErrInvalidDims, got %v", err)
	}
}

func TestOptionsOverrideDefaults(t *testing.T) {
	r, err := New(4, WithNeighbours(2, 7), WithOffsets(Moore()...))
	if err != nil {
		t.Fatal(err)
	}
	if !r.Sustains(2) || !r.Sustains(7) || r.Sustains(3) {
		t.Fatalf("unexpected sustaining set %v", r.Neighbours())
	}
	if len(r.Offsets()) != 26 {
		t.Fatalf("expected 26 Moore offsets, got %d", len(r.Offsets()))
	}
}

func TestAccessorsDoNotLeakState(t *testing.T) {
	counts := []uint8{1, 2}
	r, err := New(3, WithNeighbours(counts...))
	if err != nil {
		t.Fatal(err)
	}
	counts[0] = 9
	r.Neighbours()[1] = 9
	r.Offsets()[0] = Offset{5, 5, 5}

	if !slices.Equal(r.Neighbours(), []uint8{1, 2}) {
		t.Fatalf("neighbours mutated through caller slice: %v", r.Neighbours())
	}
	if r.Offsets()[0] != (Offset{1, 0, 0}) {
		t.Fatalf("offsets mutated through accessor: %v", r.Offsets()[0])
	}
}

func TestMooreIsSymmetric(t *testing.T) {
	offsets := Moore()
	for _, off := range offsets {
		if off == (Offset{}) {
			t.Fatal("Moore neighbourhood must not contain the origin")
		}
		if !slices.Contains(offsets, Offset{-off.I, -off.J, -off.K}) {
			t.Fatalf("offset %v has no mirror", off)
		}
	}
}

func TestParseNeighbourhood(t *testing.T) {
	tests := []struct {
		name    string
		want    int
		wantErr bool
	}{
		{name: "", want: 6},
		{name: "von-neumann", want: 6},
		{name: "moore", want: 26},
		{name: "hex", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseNeighbourhood(tt.name)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownNeighbourhood) {
					t.Fatalf("expected ErrUnknownNeighbourhood, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if len(got) != tt.want {
				t.Fatalf("got %d offsets, expected %d", len(got), tt.want)
			}
		})
	}
}
