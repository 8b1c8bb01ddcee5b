package spatialhash

import (
	"fmt"
	"iter"

	"github.com/hupe1980/spatialhash/internal/container"
	"github.com/hupe1980/spatialhash/vecn"
)

// candidates calls fn with the bucket contents of every cell in the 3^D
// neighborhood of the cell containing p. Cells without a bucket are skipped.
func (a *Accelerator[T]) candidates(p vecn.Vec[T], fn func(items []int) bool) {
	if len(p) != a.dims {
		panic(fmt.Sprintf("spatialhash: query point has dimension %d, want %d", len(p), a.dims))
	}

	var buf [2 * stackDims]int32
	origin, key := a.keyBuffers(&buf)
	origin = vecn.Quantize(p, a.radius, origin)

	for _, off := range a.offsets {
		vecn.AddInto(key, origin, off)
		c := a.lookup(key)
		if c == nil {
			continue
		}
		if !fn(c.items.Items()) {
			return
		}
	}
}

// QueryNeighbors returns the indices j != queryIdx with
// |points[j] - queryPoint|² <= Radius()².
//
// points must be the caller's current point slice, consistent with the
// positions reported at construction and through ReplacePoint. queryPoint
// need not equal points[queryIdx], which allows speculative queries. Pass a
// negative queryIdx to exclude nothing.
//
// The sequence is lazy and may be iterated more than once. Order follows
// bucket layout and is not sorted by distance. It panics if queryPoint has
// the wrong dimension.
//
// Cells are computed in float64 while the distance filter runs in T. With
// float32 points, a point two cells away whose rounded squared distance lands
// exactly on Radius()² is not reported, although a float32 brute-force scan
// would accept it.
func (a *Accelerator[T]) QueryNeighbors(points []vecn.Vec[T], queryIdx int, queryPoint vecn.Vec[T]) iter.Seq[int] {
	return func(yield func(int) bool) {
		var examined, found int
		defer func() { a.metrics.RecordQuery(true, examined, found) }()

		var dists []T
		a.candidates(queryPoint, func(items []int) bool {
			if len(items) > container.InlineCap {
				// Spilled buckets are filtered in one batch.
				dists = a.batch(dists, queryPoint, points, items)
				for j, idx := range items {
					examined++
					if idx == queryIdx || dists[j] > a.radiusSq {
						continue
					}
					found++
					if !yield(idx) {
						return false
					}
				}
				return true
			}

			for _, idx := range items {
				examined++
				if idx == queryIdx {
					continue
				}
				if a.dist(points[idx], queryPoint) > a.radiusSq {
					continue
				}
				found++
				if !yield(idx) {
					return false
				}
			}
			return true
		})
	}
}

// QueryNeighborsFast returns every index other than queryIdx stored in the
// 3^D cells around queryPoint, without a distance check.
//
// The result contains every index QueryNeighbors returns, and possibly more:
// candidates lie within one cell of queryPoint's cell on every axis, so they
// can be almost 2*Radius()*sqrt(Dims()) away. Use it when an approximate
// neighbor set is cheaper than filtering.
func (a *Accelerator[T]) QueryNeighborsFast(queryIdx int, queryPoint vecn.Vec[T]) iter.Seq[int] {
	return func(yield func(int) bool) {
		var examined, found int
		defer func() { a.metrics.RecordQuery(false, examined, found) }()

		a.candidates(queryPoint, func(items []int) bool {
			for _, idx := range items {
				examined++
				if idx == queryIdx {
					continue
				}
				found++
				if !yield(idx) {
					return false
				}
			}
			return true
		})
	}
}

// AppendNeighbors appends the result of QueryNeighbors to dst.
func (a *Accelerator[T]) AppendNeighbors(dst []int, points []vecn.Vec[T], queryIdx int, queryPoint vecn.Vec[T]) []int {
	for idx := range a.QueryNeighbors(points, queryIdx, queryPoint) {
		dst = append(dst, idx)
	}
	return dst
}

// AppendNeighborsFast appends the result of QueryNeighborsFast to dst.
func (a *Accelerator[T]) AppendNeighborsFast(dst []int, queryIdx int, queryPoint vecn.Vec[T]) []int {
	for idx := range a.QueryNeighborsFast(queryIdx, queryPoint) {
		dst = append(dst, idx)
	}
	return dst
}
