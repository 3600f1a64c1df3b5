package rules

import (
	"slices"

	"github.com/pkg/errors"
)

const (
	// DefaultDims is the edge length of the default cube
	DefaultDims uint16 = 6

	neighbourhoodVonNeumann = "von-neumann"
	neighbourhoodMoore      = "moore"
)

var (
	// ErrInvalidDims is returned when a cube edge length of zero is requested
	ErrInvalidDims = errors.New("rules: dims must be greater than zero")
	// ErrUnknownNeighbourhood is returned for an unrecognised neighbourhood name
	ErrUnknownNeighbourhood = errors.New("rules: unknown neighbourhood")

	defaultNeighbours = []uint8{3, 5}
)

// Offset is a relative coordinate delta into the cube
type Offset struct {
	I, J, K int8
}

// Rules holds the immutable automaton configuration shared by every cell.
//
// A Rules value is never mutated after New returns, so one pointer may be
// read from any number of goroutines at once.
type Rules struct {
	dims       uint16
	neighbours []uint8
	offsets    []Offset
}

// Option overrides part of the default ruleset
type Option func(*Rules)

// WithNeighbours replaces the set of sustaining neighbour counts
func WithNeighbours(counts ...uint8) Option {
	return func(r *Rules) {
		r.neighbours = slices.Clone(counts)
	}
}

// WithOffsets replaces the adjacency offsets
func WithOffsets(offsets ...Offset) Option {
	return func(r *Rules) {
		r.offsets = slices.Clone(offsets)
	}
}

/*
New builds a ruleset for a cube with the given edge length.

The default neighbour counts {3, 5} and the von Neumann neighbourhood are
used unless overridden by opts. A zero edge length is rejected.
*/
func New(dims uint16, opts ...Option) (*Rules, error) {
	if dims == 0 {
		return nil, errors.Wrapf(ErrInvalidDims, "[rules.New] dims: %d", dims)
	}

	r := &Rules{
		dims:       dims,
		neighbours: slices.Clone(defaultNeighbours),
		offsets:    VonNeumann(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Default returns the default ruleset with a 6-wide cube
func Default() *Rules {
	r, _ := New(DefaultDims)
	return r
}

// Dims returns the cube edge length
func (r *Rules) Dims() uint16 { return r.dims }

// Neighbours returns a copy of the sustaining neighbour counts
func (r *Rules) Neighbours() []uint8 { return slices.Clone(r.neighbours) }

// Offsets returns a copy of the adjacency offsets
func (r *Rules) Offsets() []Offset { return slices.Clone(r.offsets) }

// Sustains reports whether a neighbour count sustains or revives a cell
func (r *Rules) Sustains(count uint8) bool {
	return slices.Contains(r.neighbours, count)
}

// ForEachOffset calls fn for every offset in order without copying them
func (r *Rules) ForEachOffset(fn func(Offset)) {
	for _, off := range r.offsets {
		fn(off)
	}
}

// VonNeumann returns the six axis-aligned unit offsets
func VonNeumann() []Offset {
	return []Offset{
		{1, 0, 0},
		{-1, 0, 0},
		{0, 1, 0},
		{0, -1, 0},
		{0, 0, 1},
		{0, 0, -1},
	}
}

// Moore returns all 26 offsets of the surrounding 3x3x3 block
func Moore() []Offset {
	offsets := make([]Offset, 0, 26)
	for i := int8(-1); i <= 1; i++ {
		for j := int8(-1); j <= 1; j++ {
			for k := int8(-1); k <= 1; k++ {
				if i == 0 && j == 0 && k == 0 {
					continue
				}
				offsets = append(offsets, Offset{i, j, k})
			}
		}
	}
	return offsets
}

// ParseNeighbourhood maps a configuration name to its offset set
func ParseNeighbourhood(name string) ([]Offset, error) {
	switch name {
	case neighbourhoodVonNeumann, "":
		return VonNeumann(), nil
	case neighbourhoodMoore:
		return Moore(), nil
	}
	return nil, errors.Wrapf(ErrUnknownNeighbourhood, "[ParseNeighbourhood] name: %q", name)
}
