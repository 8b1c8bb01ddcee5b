package simd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseISA(t *testing.T) {
	tests := []struct {
		in   string
		want ISA
		ok   bool
	}{
		{"generic", Generic, true},
		{" AVX2 ", AVX2, true},
		{"neon", NEON, true},
		{"sse", Generic, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseISA(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	assert.Equal(t, "avx2", AVX2.String())
	assert.Equal(t, "unknown", ISA(42).String())
}

func TestKernelsAgreeWithGeneric(t *testing.T) {
	for _, dims := range []int{1, 2, 3, 31, 32, 64, 129} {
		a := make([]float32, dims)
		b := make([]float32, dims)
		for i := range a {
			a[i] = float32(i%7) * 0.25
			b[i] = float32(i%5) * -0.5
		}

		assert.InDelta(t, dotGeneric(a, b), Dot(a, b), 1e-3, "dims=%d", dims)
		assert.InDelta(t, squaredL2Generic(a, b), SquaredL2(a, b), 1e-3, "dims=%d", dims)
	}
}

func TestVekKernelsShortInputFallback(t *testing.T) {
	a := []float32{1, 2, 3}
	b := []float32{4, 5, 6}

	assert.Equal(t, float32(32), dotVek(a, b))
	assert.Equal(t, float32(27), squaredL2Vek(a, b))
}

func TestSquaredL2Gather(t *testing.T) {
	type row []float32

	rows := make([]row, 100)
	for i := range rows {
		rows[i] = row{float32(i%9) * 0.5, float32(i%4) - 1.5, float32(i) * 0.01}
	}
	q := []float32{1, -0.5, 0.25}

	for _, n := range []int{0, 1, MinBatchRows - 1, MinBatchRows, 70} {
		idx := make([]int, n)
		for j := range idx {
			idx[j] = (j * 37) % len(rows)
		}

		want := make([]float32, n)
		for j, i := range idx {
			want[j] = squaredL2Generic(rows[i], q)
		}

		got := SquaredL2Gather(nil, q, rows, idx)
		assert.Len(t, got, n)
		assert.InDeltaSlice(t, want, got, 1e-5, "n=%d", n)

		vek := make([]float32, n)
		squaredL2GatherVek(vek, q, rows, idx)
		assert.InDeltaSlice(t, want, vek, 1e-5, "n=%d", n)
	}
}

func TestSquaredL2GatherReusesDst(t *testing.T) {
	rows := [][]float32{{0, 0}, {3, 4}}
	dst := make([]float32, 5, 8)

	got := SquaredL2Gather(dst, []float32{0, 0}, rows, []int{1, 0})
	assert.Equal(t, []float32{25, 0}, got)
	assert.Same(t, &dst[0], &got[0])
}

func TestBindKernelsGenericOverride(t *testing.T) {
	savedISA, savedOverride := activeISA, hasOverride
	t.Cleanup(func() {
		activeISA, hasOverride = savedISA, savedOverride
		bindKernels()
	})

	activeISA, hasOverride = Generic, true
	bindKernels()
	assert.False(t, BatchVectorized())

	hasOverride = false
	bindKernels()
	assert.True(t, BatchVectorized())
}
