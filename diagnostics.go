package spatialhash

import (
	"context"
	"fmt"
	"slices"

	"github.com/bits-and-blooms/bitset"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/hupe1980/spatialhash/vecn"
)

// Stats summarizes bucket occupancy. It is meant for choosing a radius: a
// high mean or max occupancy means queries scan many candidates per hit.
type Stats struct {
	Points   int // tracked points
	Cells    int // buckets, including empty ones
	Occupied int // buckets holding at least one point
	// Occupancy figures are over occupied buckets only.
	MeanOccupancy   float64
	StdDevOccupancy float64
	MaxOccupancy    int
	// Spilled counts buckets that outgrew their inline storage.
	Spilled int
}

// Stats computes occupancy diagnostics. It has no effect on the grid.
func (a *Accelerator[T]) Stats() Stats {
	s := Stats{Points: a.n, Cells: a.numCells}

	sizes := make([]float64, 0, a.numCells)
	a.eachCell(func(c *cell) bool {
		if c.items.Spilled() {
			s.Spilled++
		}
		if n := c.items.Len(); n > 0 {
			sizes = append(sizes, float64(n))
		}
		return true
	})

	s.Occupied = len(sizes)
	switch len(sizes) {
	case 0:
	case 1:
		s.MeanOccupancy = sizes[0]
		s.MaxOccupancy = int(sizes[0])
	default:
		s.MeanOccupancy, s.StdDevOccupancy = stat.MeanStdDev(sizes, nil)
		s.MaxOccupancy = int(floats.Max(sizes))
	}
	return s
}

// LogStats writes Stats to the configured logger at info level.
func (a *Accelerator[T]) LogStats(ctx context.Context, name string) {
	a.logger.LogStats(ctx, name, a.Stats())
}

// Validate checks that every index in [0, Len()) is stored in exactly one
// bucket, and that the bucket is the cell of points[idx]. It returns an
// *ErrInvariantViolation describing the first problem found.
//
// Validate is O(n) and intended for tests and debugging.
func (a *Accelerator[T]) Validate(points []vecn.Vec[T]) error {
	if len(points) != a.n {
		return fmt.Errorf("%w: validate with %d points, accelerator tracks %d", ErrInvalidArgument, len(points), a.n)
	}

	seen := bitset.New(uint(a.n))
	want := make(vecn.Vec[int32], a.dims)

	var err error
	a.eachCell(func(c *cell) bool {
		for _, idx := range c.items.Items() {
			if idx < 0 || idx >= a.n {
				err = &ErrInvariantViolation{Index: idx, Reason: "index out of range"}
				return false
			}
			if seen.Test(uint(idx)) {
				err = &ErrInvariantViolation{Index: idx, Reason: "stored in more than one bucket"}
				return false
			}
			seen.Set(uint(idx))

			want = vecn.Quantize(points[idx], a.radius, want)
			if !want.Equal(c.key) {
				err = &ErrInvariantViolation{
					Index:  idx,
					Reason: fmt.Sprintf("stored in cell %v, position is in cell %v", c.key, want),
				}
				return false
			}
		}
		return true
	})
	if err != nil {
		return err
	}

	if missing, ok := seen.NextClear(0); ok && missing < uint(a.n) {
		return &ErrInvariantViolation{Index: int(missing), Reason: "not stored in any bucket"}
	}
	return nil
}

// SortBuckets sorts the indices of every bucket in ascending order. When the
// point slice is laid out spatially this improves memory locality of
// queries. Query results come back in the new bucket order afterwards.
func (a *Accelerator[T]) SortBuckets() {
	a.eachCell(func(c *cell) bool {
		slices.Sort(c.items.Items())
		return true
	})
}

// Compact removes buckets left empty by relocation and returns how many were
// removed. Long-running simulations whose points drift through space should
// call it occasionally to bound memory.
func (a *Accelerator[T]) Compact() int {
	removed := 0
	for h, head := range a.cells {
		var kept *cell
		for c := head; c != nil; {
			next := c.next
			if c.items.Len() == 0 {
				removed++
			} else {
				c.next = kept
				kept = c
			}
			c = next
		}
		if kept == nil {
			delete(a.cells, h)
		} else {
			a.cells[h] = kept
		}
	}
	a.numCells -= removed
	a.logger.WithCount(removed).DebugContext(context.Background(), "compacted empty cells", "cells", a.numCells)
	return removed
}
