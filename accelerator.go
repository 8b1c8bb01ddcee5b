package spatialhash

import (
	"context"
	"iter"
	"math"
	"slices"
	"time"

	"golang.org/x/exp/constraints"

	"github.com/hupe1980/spatialhash/distance"
	"github.com/hupe1980/spatialhash/internal/container"
	"github.com/hupe1980/spatialhash/internal/hash"
	"github.com/hupe1980/spatialhash/vecn"
)

// MaxDimension is the largest supported dimension. The neighbor table holds
// 3^D offsets, which is 59049 entries at D=10.
const MaxDimension = 10

// stackDims is the largest dimension whose cell keys are kept in stack
// buffers during queries and relocations.
const stackDims = 8

// cell is one occupied grid cube. Cells whose coordinates hash to the same
// value are chained through next.
type cell struct {
	key   vecn.Vec[int32]
	items container.SmallVec[int]
	next  *cell
}

// Accelerator answers fixed-radius neighbor queries over a point set using a
// uniform hash grid whose cell side equals the query radius.
//
// The accelerator stores point indices, never the points themselves. Every
// query takes the caller's current point slice, and every change to a
// point's position must be reported with ReplacePoint.
//
// An Accelerator is not safe for concurrent mutation. Any number of
// goroutines may query concurrently as long as no ReplacePoint, SortBuckets
// or Compact call runs at the same time.
type Accelerator[T constraints.Float] struct {
	cells    map[uint64]*cell
	numCells int
	offsets  []vecn.Vec[int32]
	radius   T
	radiusSq T
	dims     int
	n        int
	dist     distance.Func[T]
	batch    distance.BatchFunc[T]

	logger  *Logger
	metrics MetricsCollector
}

// New hashes every point into its cell and precomputes the 3^D neighbor
// offsets.
//
// radius must be finite and positive, and every point must have the same
// dimension and finite coordinates. The index of a point in points is its
// identifier for the lifetime of the accelerator.
func New[T constraints.Float](points []vecn.Vec[T], radius T, optFns ...Option) (*Accelerator[T], error) {
	start := time.Now()
	o := applyOptions(optFns)
	ctx := context.Background()

	dims, err := validate(points, radius, o.dims)
	if err != nil {
		o.logger.LogBuild(ctx, len(points), 0, err)
		return nil, err
	}

	capacity := o.cellCapacity
	if capacity <= 0 {
		capacity = len(points)
	}

	a := &Accelerator[T]{
		cells:    make(map[uint64]*cell, capacity),
		offsets:  vecn.Neighborhood(dims),
		radius:   radius,
		radiusSq: radius * radius,
		dims:     dims,
		n:        len(points),
		dist:     distance.For[T](),
		batch:    distance.BatchFor[T](),
		logger:   o.logger.WithRadius(float64(radius)).WithDimension(dims),
		metrics:  o.metricsCollector,
	}

	key := make(vecn.Vec[int32], dims)
	for idx, p := range points {
		key = vecn.Quantize(p, radius, key)
		a.cellFor(key).items.Push(idx)
	}

	a.metrics.RecordBuild(a.n, a.numCells, time.Since(start))
	a.logger.LogBuild(ctx, a.n, a.numCells, nil)
	return a, nil
}

func validate[T constraints.Float](points []vecn.Vec[T], radius T, dims int) (int, error) {
	r := float64(radius)
	if math.IsNaN(r) || math.IsInf(r, 0) || r <= 0 {
		return 0, &ErrInvalidRadius{Radius: r}
	}

	if dims == 0 && len(points) > 0 {
		dims = len(points[0])
	}
	if dims < 1 || dims > MaxDimension {
		return 0, &ErrInvalidDimension{Dimension: dims}
	}

	for i, p := range points {
		if err := validatePoint(i, p, radius, dims); err != nil {
			return 0, err
		}
	}
	return dims, nil
}

func validatePoint[T constraints.Float](idx int, p vecn.Vec[T], radius T, dims int) error {
	if len(p) != dims {
		return &ErrDimensionMismatch{Index: idx, Expected: dims, Actual: len(p)}
	}
	if !vecn.IsFinite(p) {
		return &ErrInvalidPoint{Index: idx, Reason: "non-finite coordinate"}
	}
	if !vecn.InCellRange(p, radius) {
		return &ErrInvalidPoint{Index: idx, Reason: "cell coordinate out of range"}
	}
	return nil
}

// lookup returns the cell with the given coordinate, or nil.
func (a *Accelerator[T]) lookup(key vecn.Vec[int32]) *cell {
	for c := a.cells[hash.Cell(key)]; c != nil; c = c.next {
		if c.key.Equal(key) {
			return c
		}
	}
	return nil
}

// cellFor returns the cell with the given coordinate, creating it if needed.
// key is copied; the caller may reuse it.
func (a *Accelerator[T]) cellFor(key vecn.Vec[int32]) *cell {
	h := hash.Cell(key)
	head := a.cells[h]
	for c := head; c != nil; c = c.next {
		if c.key.Equal(key) {
			return c
		}
	}
	c := &cell{key: key.Clone(), next: head}
	a.cells[h] = c
	a.numCells++
	return c
}

// eachCell calls fn with every cell in the chain map. Iteration stops when fn
// returns false.
func (a *Accelerator[T]) eachCell(fn func(c *cell) bool) {
	for _, head := range a.cells {
		for c := head; c != nil; c = c.next {
			if !fn(c) {
				return
			}
		}
	}
}

// keyBuffers returns two cell-key scratch vectors backed by buf when the
// dimension is small enough.
func (a *Accelerator[T]) keyBuffers(buf *[2 * stackDims]int32) (vecn.Vec[int32], vecn.Vec[int32]) {
	if a.dims <= stackDims {
		return buf[:a.dims:a.dims], buf[stackDims : stackDims+a.dims]
	}
	return make(vecn.Vec[int32], a.dims), make(vecn.Vec[int32], a.dims)
}

// Radius returns the query radius, which is also the cell side length.
func (a *Accelerator[T]) Radius() T { return a.radius }

// RadiusSquared returns Radius()².
func (a *Accelerator[T]) RadiusSquared() T { return a.radiusSq }

// Dims returns the dimension of the point space.
func (a *Accelerator[T]) Dims() int { return a.dims }

// Len returns the number of tracked points.
func (a *Accelerator[T]) Len() int { return a.n }

// NumCells returns the number of cells in the grid, including cells emptied
// by relocation that have not been compacted.
func (a *Accelerator[T]) NumCells() int { return a.numCells }

// Offsets returns a copy of the neighbor offset table.
func (a *Accelerator[T]) Offsets() []vecn.Vec[int32] {
	out := make([]vecn.Vec[int32], len(a.offsets))
	for i, o := range a.offsets {
		out[i] = o.Clone()
	}
	return out
}

// CellOf returns the cell coordinate containing p.
func (a *Accelerator[T]) CellOf(p vecn.Vec[T]) vecn.Vec[int32] {
	return vecn.Quantize(p, a.radius, nil)
}

// Members returns a copy of the indices stored in the given cell. It returns
// nil when the cell has no bucket.
func (a *Accelerator[T]) Members(key vecn.Vec[int32]) []int {
	if len(key) != a.dims {
		return nil
	}
	c := a.lookup(key)
	if c == nil {
		return nil
	}
	return slices.Clone(c.items.Items())
}

// Cells iterates over every bucket. The yielded key and slice alias internal
// storage and are only valid until the next mutation; do not modify them.
func (a *Accelerator[T]) Cells() iter.Seq2[vecn.Vec[int32], []int] {
	return func(yield func(vecn.Vec[int32], []int) bool) {
		a.eachCell(func(c *cell) bool {
			return yield(c.key, c.items.Items())
		})
	}
}
