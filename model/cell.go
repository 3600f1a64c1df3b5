package model

import (
	"math/rand/v2"

	"github.com/sheikhrachel/go-gol3d/rules"
)

// Index is the fixed (i, j, k) position of a cell inside the cube
type Index struct {
	I, J, K uint16
}

// Linear returns the row-major position of idx in a cube of edge dims
func (idx Index) Linear(dims uint16) int {
	d := int(dims)
	return int(idx.I)*d*d + int(idx.J)*d + int(idx.K)
}

// IndexAt is the inverse of Index.Linear
func IndexAt(pos int, dims uint16) Index {
	d := int(dims)
	return Index{
		I: uint16(pos / (d * d)),
		J: uint16(pos / d % d),
		K: uint16(pos % d),
	}
}

// neighbour returns idx - off when the result lies inside the cube
func (idx Index) neighbour(off rules.Offset, dims uint16) (Index, bool) {
	i := int(idx.I) - int(off.I)
	j := int(idx.J) - int(off.J)
	k := int(idx.K) - int(off.K)
	d := int(dims)
	if i < 0 || i >= d || j < 0 || j >= d || k < 0 || k >= d {
		return Index{}, false
	}
	return Index{uint16(i), uint16(j), uint16(k)}, true
}

// Status is the tri-state classification of a cell
type Status uint8

const (
	Dead Status = iota
	Decaying
	Alive
)

func (s Status) String() string {
	switch s {
	case Alive:
		return "alive"
	case Decaying:
		return "decaying"
	default:
		return "dead"
	}
}

// HealthStatus is a read-only view of a cell's health for presentation use
type HealthStatus struct {
	Max     uint8
	Current uint8
	Min     uint8
}

/*
Cell is the contract every cell species implements.

Update must read neighbour state only from previous, which is the frozen
snapshot of the last generation, and write only to the receiver.
*/
type Cell interface {
	Index() Index
	Randomize(rng *rand.Rand)
	Update(r *rules.Rules, previous []Cell)
	Status() (Status, HealthStatus)
	Clone() Cell
}

// CellFactory constructs a fresh cell at idx
type CellFactory func(idx Index) (Cell, error)
