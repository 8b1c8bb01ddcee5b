package distance

import (
	"slices"

	"golang.org/x/exp/constraints"

	"github.com/hupe1980/spatialhash/internal/simd"
	"github.com/hupe1980/spatialhash/vecn"
)

// Dot calculates the dot product of two vectors.
// Assumes vectors are the same length (caller's responsibility).
// Uses SIMD acceleration when available.
func Dot(a, b []float32) float32 {
	return simd.Dot(a, b)
}

// SquaredL2 calculates the squared L2 (Euclidean) distance between two vectors.
// Assumes vectors are the same length (caller's responsibility).
// Uses SIMD acceleration when available.
func SquaredL2(a, b []float32) float32 {
	return simd.SquaredL2(a, b)
}

// Func computes the squared Euclidean distance between two points.
type Func[T constraints.Float] func(a, b vecn.Vec[T]) T

// For returns the fastest squared-L2 function available for T.
//
// Lengths are checked: mismatched inputs panic.
func For[T constraints.Float]() Func[T] {
	var f32 Func[float32] = func(a, b vecn.Vec[float32]) float32 {
		if len(a) != len(b) {
			panic("distance: dimension mismatch")
		}
		return simd.SquaredL2(a, b)
	}
	if f, ok := any(f32).(Func[T]); ok {
		return f
	}
	return vecn.DistanceSquared[T]
}

// BatchFunc writes the squared Euclidean distance between q and
// points[idx[j]] into dst[j] and returns dst resized to len(idx).
type BatchFunc[T constraints.Float] func(dst []T, q vecn.Vec[T], points []vecn.Vec[T], idx []int) []T

// BatchFor returns the fastest batched squared-L2 function available for T.
// For float32 large batches run on the vectorized gather kernel.
//
// Lengths are checked: mismatched inputs panic.
func BatchFor[T constraints.Float]() BatchFunc[T] {
	var f32 BatchFunc[float32] = func(dst []float32, q vecn.Vec[float32], points []vecn.Vec[float32], idx []int) []float32 {
		for _, i := range idx {
			if len(points[i]) != len(q) {
				panic("distance: dimension mismatch")
			}
		}
		return simd.SquaredL2Gather(dst, q, points, idx)
	}
	if f, ok := any(f32).(BatchFunc[T]); ok {
		return f
	}
	return func(dst []T, q vecn.Vec[T], points []vecn.Vec[T], idx []int) []T {
		dst = slices.Grow(dst[:0], len(idx))[:len(idx)]
		for j, i := range idx {
			dst[j] = vecn.DistanceSquared(points[i], q)
		}
		return dst
	}
}
