package vecn

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Cell limits keep one cell of headroom on both sides so that adding a
// neighbor offset in {-1, 0, 1} never wraps around.
const (
	MinCell = math.MinInt32 + 1
	MaxCell = math.MaxInt32 - 1
)

// Quantize maps p to the integer coordinate of the cube of side radius that
// contains it: floor(p[i] / radius) per axis, saturated to [MinCell, MaxCell].
//
// If dst has the right dimension it is reused, otherwise a new vector is
// allocated.
func Quantize[T constraints.Float](p Vec[T], radius T, dst Vec[int32]) Vec[int32] {
	if len(dst) != len(p) {
		dst = make(Vec[int32], len(p))
	}
	for i, x := range p {
		dst[i] = quantizeAxis(float64(x) / float64(radius))
	}
	return dst
}

// InCellRange reports whether every axis of p / radius falls inside
// [MinCell, MaxCell] without saturating.
func InCellRange[T constraints.Float](p Vec[T], radius T) bool {
	for _, x := range p {
		c := math.Floor(float64(x) / float64(radius))
		if c < MinCell || c > MaxCell {
			return false
		}
	}
	return true
}

func quantizeAxis(f float64) int32 {
	c := math.Floor(f)
	switch {
	case c < MinCell:
		return MinCell
	case c > MaxCell:
		return MaxCell
	case c != c: // NaN
		return 0
	}
	return int32(c)
}

// Neighborhood returns the 3^dims offsets whose components are all in
// {-1, 0, 1}. The first entry is all -1 and the last is all +1; the first
// axis varies fastest.
func Neighborhood(dims int) []Vec[int32] {
	return Combos(dims, -1, 1, 1)
}

// Combos enumerates every vector of the given dimension with components
// stepping from lo to hi inclusive.
func Combos(dims int, lo, hi, step int32) []Vec[int32] {
	if dims <= 0 || step <= 0 || hi < lo {
		return nil
	}
	per := int((hi-lo)/step) + 1
	total := 1
	for range dims {
		total *= per
	}

	out := make([]Vec[int32], 0, total)
	backing := make([]int32, total*dims)
	cur := make(Vec[int32], dims)
	for i := range cur {
		cur[i] = lo
	}
	last := lo + int32(per-1)*step

	for {
		v := Vec[int32](backing[len(out)*dims : (len(out)+1)*dims : (len(out)+1)*dims])
		copy(v, cur)
		out = append(out, v)

		// odometer increment
		i := 0
		for ; i < dims; i++ {
			if cur[i] < last {
				cur[i] += step
				break
			}
			cur[i] = lo
		}
		if i == dims {
			return out
		}
	}
}
