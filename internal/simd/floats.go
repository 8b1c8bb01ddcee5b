package simd

import (
	"slices"
	"sync"

	"github.com/viterin/vek/vek32"
)

// MinVectorizedDims is the shortest input routed to the accelerated kernels.
const MinVectorizedDims = 32

// MinBatchRows is the smallest row count SquaredL2Gather hands to vek.
const MinBatchRows = 16

var (
	dotImpl       = dotGeneric
	squaredL2Impl = squaredL2Generic
	batchVek      = true
)

var scratchPool = sync.Pool{
	New: func() any {
		buf := make([]float32, 0, 256)
		return &buf
	},
}

func bindKernels() {
	dotImpl = dotGeneric
	squaredL2Impl = squaredL2Generic
	// vek32 dispatches on its own and has a pure Go fallback, so batched
	// gathers use it unless the generic ISA was forced.
	batchVek = !(hasOverride && activeISA == Generic)
	if vectorized {
		dotImpl = dotVek
		squaredL2Impl = squaredL2Vek
	}
}

// Dot calculates the dot product of two vectors.
//
// SAFETY: This function assumes len(a) == len(b).
func Dot(a, b []float32) float32 {
	return dotImpl(a, b)
}

// SquaredL2 calculates the squared L2 distance.
//
// SAFETY: This function assumes len(a) == len(b).
func SquaredL2(a, b []float32) float32 {
	return squaredL2Impl(a, b)
}

func dotGeneric(a, b []float32) float32 {
	var ret float32
	for i := range a {
		ret += a[i] * b[i]
	}
	return ret
}

func squaredL2Generic(a, b []float32) float32 {
	var distance float32
	for i := range a {
		d := a[i] - b[i]
		distance += d * d
	}
	return distance
}

func dotVek(a, b []float32) float32 {
	if len(a) < MinVectorizedDims {
		return dotGeneric(a, b)
	}
	return vek32.Dot(a, b)
}

func squaredL2Vek(a, b []float32) float32 {
	if len(a) < MinVectorizedDims {
		return squaredL2Generic(a, b)
	}

	bufp := scratchPool.Get().(*[]float32)
	diff := (*bufp)[:0]
	for i := range a {
		diff = append(diff, a[i]-b[i])
	}
	d := vek32.Dot(diff, diff)

	*bufp = diff[:0]
	scratchPool.Put(bufp)
	return d
}

// BatchVectorized reports whether SquaredL2Gather uses the vek kernels for
// large batches.
func BatchVectorized() bool {
	return batchVek
}

// SquaredL2Gather writes the squared L2 distance between q and rows[idx[j]]
// into dst[j] and returns dst resized to len(idx).
//
// SAFETY: This function assumes every referenced row has len(q) components.
func SquaredL2Gather[V ~[]float32](dst, q []float32, rows []V, idx []int) []float32 {
	dst = slices.Grow(dst[:0], len(idx))[:len(idx)]
	if batchVek && len(idx) >= MinBatchRows {
		squaredL2GatherVek(dst, q, rows, idx)
	} else {
		squaredL2GatherGeneric(dst, q, rows, idx)
	}
	return dst
}

func squaredL2GatherGeneric[V ~[]float32](dst, q []float32, rows []V, idx []int) {
	for j, i := range idx {
		dst[j] = squaredL2Generic(rows[i], q)
	}
}

// squaredL2GatherVek works axis by axis: the differences of one axis are
// gathered into a contiguous scratch column, squared and accumulated into
// dst. Accumulation order matches squaredL2Generic.
func squaredL2GatherVek[V ~[]float32](dst, q []float32, rows []V, idx []int) {
	bufp := scratchPool.Get().(*[]float32)
	col := slices.Grow((*bufp)[:0], len(idx))[:len(idx)]

	clear(dst)
	for k, qk := range q {
		for j, i := range idx {
			col[j] = rows[i][k] - qk
		}
		vek32.Mul_Inplace(col, col)
		vek32.Add_Inplace(dst, col)
	}

	*bufp = col[:0]
	scratchPool.Put(bufp)
}
