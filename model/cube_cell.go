package model

import (
	"math/rand/v2"

	"github.com/sheikhrachel/go-gol3d/rules"
)

// Species holds the health bounds of one kind of cell
type Species struct {
	// MaxHealth is the exclusive upper bound of randomized starting health
	MaxHealth uint8
	// MinHealth is the width of the decaying band
	MinHealth uint8
}

// DefaultSpecies is the cube cell tuning the automaton starts with
var DefaultSpecies = Species{MaxHealth: 90, MinHealth: 40}

// Factory returns a CellFactory building cube cells of this species
func (s Species) Factory() CellFactory {
	return func(idx Index) (Cell, error) {
		cell, err := NewCubeCell(idx, s)
		if err != nil {
			return nil, err
		}
		return cell, nil
	}
}

// CubeCell is a single cell of the cubic grid
type CubeCell struct {
	neighbours uint8
	health     Health
	index      Index
	species    Species
}

// NewCubeCell builds a cell at idx with full health for its species
func NewCubeCell(idx Index, s Species) (*CubeCell, error) {
	health, err := NewHealth(s.MaxHealth, s.MinHealth)
	if err != nil {
		return nil, err
	}
	return &CubeCell{
		health:  health,
		index:   idx,
		species: s,
	}, nil
}

// Index returns the cell's fixed position
func (c *CubeCell) Index() Index { return c.index }

// Health returns a copy of the cell's counter
func (c *CubeCell) Health() Health { return c.health }

// Neighbours returns the living neighbour count from the last update
func (c *CubeCell) Neighbours() uint8 { return c.neighbours }

// Randomize draws starting health uniformly from [0, MaxHealth)
func (c *CubeCell) Randomize(rng *rand.Rand) {
	if c.species.MaxHealth == 0 {
		c.health.HealthTicks = 0
		return
	}
	c.health.HealthTicks = uint8(rng.IntN(int(c.species.MaxHealth)))
}

// Update recounts living neighbours in previous and then applies the health rule
func (c *CubeCell) Update(r *rules.Rules, previous []Cell) {
	c.clearNeighbours()
	c.countNeighbours(r, previous)
	c.health.Update(r, c.neighbours)
}

func (c *CubeCell) clearNeighbours() {
	c.neighbours = 0
}

// countNeighbours subtracts each offset from the cell's index; offsets that
// leave the cube are skipped, there is no wraparound.
func (c *CubeCell) countNeighbours(r *rules.Rules, previous []Cell) {
	dims := r.Dims()
	r.ForEachOffset(func(off rules.Offset) {
		idx, ok := c.index.neighbour(off, dims)
		if !ok {
			return
		}
		pos := idx.Linear(dims)
		if pos >= len(previous) {
			return
		}
		if st, _ := previous[pos].Status(); st == Alive {
			c.neighbours++
		}
	})
}

// Status classifies the cell and reports its health bounds
func (c *CubeCell) Status() (Status, HealthStatus) {
	return c.health.Status(), HealthStatus{
		Max:     c.species.MaxHealth,
		Current: c.health.HealthTicks,
		Min:     c.species.MinHealth,
	}
}

// Clone returns an independent copy of the cell
func (c *CubeCell) Clone() Cell {
	cp := *c
	return &cp
}
