package spatialhash

import (
	"context"

	"github.com/hupe1980/spatialhash/vecn"
)

// ReplacePoint moves point idx from the bucket of prev to the bucket of
// current. Call it whenever the caller changes points[idx].
//
// prev must be the position the accelerator last saw for idx: the one given
// at construction or as current in the previous ReplacePoint call. If idx is
// not found in prev's cell the grid is left unchanged and an
// *ErrStaleRelocation (matching ErrNotFound) is returned. Treat that as a
// bug in the caller's bookkeeping, not as a recoverable condition.
//
// When prev and current share a cell, idx is removed and re-appended to the
// same bucket. Cost is linear in the size of prev's bucket.
func (a *Accelerator[T]) ReplacePoint(idx int, prev, current vecn.Vec[T]) error {
	moved, err := a.replacePoint(idx, prev, current)
	a.metrics.RecordRelocate(moved, err)
	a.logger.LogRelocate(context.Background(), idx, moved, err)
	return err
}

func (a *Accelerator[T]) replacePoint(idx int, prev, current vecn.Vec[T]) (bool, error) {
	if idx < 0 || idx >= a.n {
		return false, &ErrIndexOutOfRange{Index: idx, Len: a.n}
	}
	if len(prev) != a.dims {
		return false, &ErrDimensionMismatch{Index: idx, Expected: a.dims, Actual: len(prev)}
	}
	if err := validatePoint(idx, current, a.radius, a.dims); err != nil {
		return false, err
	}

	var buf [2 * stackDims]int32
	from, to := a.keyBuffers(&buf)
	from = vecn.Quantize(prev, a.radius, from)

	src := a.lookup(from)
	pos := -1
	if src != nil {
		pos = src.items.Index(idx)
	}
	if pos < 0 {
		return false, &ErrStaleRelocation{Index: idx, Cell: from.String()}
	}

	src.items.RemoveAt(pos)

	to = vecn.Quantize(current, a.radius, to)
	if to.Equal(from) {
		src.items.Push(idx)
		return false, nil
	}

	a.cellFor(to).items.Push(idx)
	return true, nil
}
