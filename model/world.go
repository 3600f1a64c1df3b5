package model

import (
	"crypto/md5"
	"fmt"
	"math/rand/v2"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-gol3d/rules"
)

const (
	// DefaultTasks is the number of chunks a generation is split into
	DefaultTasks = 8

	minChunkSize = 4
)

var (
	// ErrIndexMismatch is returned when a factory builds a cell at the wrong position
	ErrIndexMismatch = errors.New("model: cell index does not match its position")
	// ErrSharedBuffer is returned when Update is asked to use the live world as its snapshot
	ErrSharedBuffer = errors.New("model: previous must be a separate world")
)

// World is one generation of the cube: the shared rules plus dims³ cells in
// row-major order, so cells[idx.Linear(dims)] is always the cell at idx.
type World struct {
	rules *rules.Rules
	cells []Cell
	tasks int
}

// Option configures a World at construction
type Option func(*World)

// WithTasks sets how many chunks Update splits the grid into
func WithTasks(n int) Option {
	return func(w *World) {
		if n > 0 {
			w.tasks = n
		}
	}
}

// New builds a randomly seeded pair of default cube worlds with edge dims
func New(dims uint16, opts ...Option) (previous, current *World, err error) {
	r, err := rules.New(dims)
	if err != nil {
		return nil, nil, errors.Wrap(err, "[model.New] failed to build rules")
	}
	rng := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	return NewWorld(r, DefaultSpecies.Factory(), rng, opts...)
}

/*
NewWorld allocates every cell of the cube with factory, randomizes its health
from rng and returns two identical worlds: the snapshot buffer and the live
buffer the caller advances with Update.
*/
func NewWorld(r *rules.Rules, factory CellFactory, rng *rand.Rand, opts ...Option) (previous, current *World, err error) {
	var (
		dims = r.Dims()
		d    = int(dims)
	)

	previous = &World{
		rules: r,
		cells: make([]Cell, 0, d*d*d),
		tasks: DefaultTasks,
	}
	for _, opt := range opts {
		opt(previous)
	}

	for i := range dims {
		for j := range dims {
			for k := range dims {
				idx := Index{I: i, J: j, K: k}
				cell, err := factory(idx)
				if err != nil {
					return nil, nil, errors.Wrapf(err, "[NewWorld] failed to build cell at %+v", idx)
				}
				if cell.Index() != idx {
					return nil, nil, errors.Wrapf(ErrIndexMismatch, "[NewWorld] expected %+v, got %+v", idx, cell.Index())
				}
				cell.Randomize(rng)
				previous.cells = append(previous.cells, cell)
			}
		}
	}

	current = &World{tasks: previous.tasks}
	current.copyFrom(previous)
	return previous, current, nil
}

// Rules returns the shared ruleset
func (w *World) Rules() *rules.Rules { return w.rules }

// Cells returns the cells in row-major order. Callers must treat them as read-only.
func (w *World) Cells() []Cell { return w.cells }

// Len returns the number of cells, always dims³
func (w *World) Len() int { return len(w.cells) }

// Tasks returns the number of chunks Update splits the grid into
func (w *World) Tasks() int { return w.tasks }

// At returns the cell at idx
func (w *World) At(idx Index) Cell {
	return w.cells[idx.Linear(w.rules.Dims())]
}

/*
Update advances the world by exactly one generation.

previous is overwritten with the current state and becomes the snapshot
every neighbour scan reads from. The live cells are split into contiguous
chunks of max(len/tasks, 4) and updated concurrently; each worker writes only
its own chunk. Update returns once every worker has finished. If a worker
fails the live buffer is restored from previous, so a partial generation is
never visible to the caller.
*/
func (w *World) Update(previous *World) error {
	if previous == nil || previous == w {
		return errors.Wrap(ErrSharedBuffer, "[World.Update]")
	}
	previous.copyFrom(w)

	var (
		eg        errgroup.Group
		snapshot  = previous.cells
		chunkSize = max(len(w.cells)/w.tasks, minChunkSize)
	)
	eg.SetLimit(w.tasks)

	for start := 0; start < len(w.cells); start += chunkSize {
		chunk := w.cells[start:min(start+chunkSize, len(w.cells))]
		eg.Go(func() (err error) {
			defer func() {
				if rec := recover(); rec != nil {
					err = errors.Errorf("[World.Update] worker panicked at offset %d: %v", start, rec)
				}
			}()
			for _, cell := range chunk {
				cell.Update(w.rules, snapshot)
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		w.copyFrom(previous)
		return err
	}
	return nil
}

// copyFrom makes w a deep copy of src
func (w *World) copyFrom(src *World) {
	w.rules = src.rules
	if len(w.cells) != len(src.cells) {
		w.cells = make([]Cell, len(src.cells))
	}
	for i, cell := range src.cells {
		w.cells[i] = cell.Clone()
	}
}

// Equal reports whether both worlds hold the same cells in the same states
func (w *World) Equal(other *World) bool {
	if other == nil || w.rules.Dims() != other.rules.Dims() || len(w.cells) != len(other.cells) {
		return false
	}
	for i, cell := range w.cells {
		o := other.cells[i]
		if cell.Index() != o.Index() {
			return false
		}
		st, hs := cell.Status()
		ost, ohs := o.Status()
		if st != ost || hs != ohs {
			return false
		}
	}
	return true
}

// Census tallies cells by status
type Census struct {
	Alive    int
	Decaying int
	Dead     int
}

// Census counts the cells in each status
func (w *World) Census() (c Census) {
	for _, cell := range w.cells {
		switch st, _ := cell.Status(); st {
		case Alive:
			c.Alive++
		case Decaying:
			c.Decaying++
		default:
			c.Dead++
		}
	}
	return
}

// Hash returns an MD5 digest of every cell's status and health
func (w *World) Hash() string {
	h := md5.New()
	for _, cell := range w.cells {
		st, hs := cell.Status()
		h.Write([]byte{byte(st), hs.Current})
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}
