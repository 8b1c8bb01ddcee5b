package vecn

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArithmetic(t *testing.T) {
	a := Of[int32](1, 2, 3)
	b := Of[int32](4, 5, 6)

	assert.Equal(t, Of[int32](5, 7, 9), a.Add(b))
	assert.Equal(t, Of[int32](-3, -3, -3), a.Sub(b))
	assert.Equal(t, Of[int32](4, 10, 18), a.Mul(b))
	assert.Equal(t, Of[int32](4, 2, 2), b.Div(a))
	assert.Equal(t, Of[int32](2, 4, 6), a.Scale(2))
	assert.Equal(t, Of[int32](2, 2, 3), b.DivScalar(2))
	assert.Equal(t, int32(32), a.Dot(b))
	assert.Equal(t, int32(14), a.LengthSquared())

	// Operands are left untouched.
	assert.Equal(t, Of[int32](1, 2, 3), a)
}

func TestIntoVariantsAlias(t *testing.T) {
	a := Of(1.0, 2.0)
	b := Of(0.5, 0.5)

	AddInto(a, a, b)
	assert.Equal(t, Of(1.5, 2.5), a)

	SubInto(a, a, b)
	assert.Equal(t, Of(1.0, 2.0), a)
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Vec[int32]
		want bool
	}{
		{"Same", Of[int32](1, -1), Of[int32](1, -1), true},
		{"Different", Of[int32](1, -1), Of[int32](1, 1), false},
		{"DimensionMismatch", Of[int32](1), Of[int32](1, 0), false},
		{"Empty", Vec[int32]{}, Vec[int32]{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Equal(tt.b))
		})
	}
}

func TestDistanceSquared(t *testing.T) {
	a := Of[float32](0, 0)
	b := Of[float32](2, 2)

	assert.InDelta(t, 8, DistanceSquared(a, b), 1e-6)
	assert.InDelta(t, b.Sub(a).LengthSquared(), DistanceSquared(a, b), 1e-6)
	assert.Zero(t, DistanceSquared(b, b))
}

func TestDimensionMismatchPanics(t *testing.T) {
	assert.Panics(t, func() { Of(1.0).Add(Of(1.0, 2.0)) })
	assert.Panics(t, func() { DistanceSquared(Of(1.0), Of(1.0, 2.0)) })
}

func TestCloneAndMerge(t *testing.T) {
	a := Of(1.0, 2.0, 3.0)
	c := a.Clone()
	c[0] = 10
	assert.Equal(t, 1.0, a[0])

	assert.Nil(t, Vec[float64](nil).Clone())

	m := a.Merge(Of(3.0, 2.0, 1.0), math.Max)
	assert.Equal(t, Of(3.0, 2.0, 3.0), m)
}

func TestIsFinite(t *testing.T) {
	assert.True(t, IsFinite(Of(1.0, -2.0)))
	assert.False(t, IsFinite(Of(1.0, math.NaN())))
	assert.False(t, IsFinite(Of(float32(math.Inf(-1)))))
}

func TestQuantize(t *testing.T) {
	tests := []struct {
		name   string
		p      Vec[float64]
		radius float64
		want   Vec[int32]
	}{
		{"Origin", Of(0.0, 0.0), 1, Of[int32](0, 0)},
		{"Inside", Of(0.5, 0.99), 1, Of[int32](0, 0)},
		{"Boundary", Of(1.0, 2.0), 1, Of[int32](1, 2)},
		{"NegativeFloors", Of(-0.5, -1.0), 1, Of[int32](-1, -1)},
		{"Scaled", Of(2.5, -2.5), 0.5, Of[int32](5, -5)},
		{"Saturates", Of(1e300, -1e300), 1, Of[int32](MaxCell, MinCell)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Quantize(tt.p, tt.radius, nil))
		})
	}

	t.Run("ReusesDst", func(t *testing.T) {
		dst := New[int32](2)
		got := Quantize(Of(3.2, 4.7), 1.0, dst)
		assert.Equal(t, Of[int32](3, 4), got)
		assert.Same(t, &dst[0], &got[0])
	})
}

func TestInCellRange(t *testing.T) {
	assert.True(t, InCellRange(Of(1e6, -1e6), 1.0))
	assert.False(t, InCellRange(Of(1e12), 1.0))
	assert.False(t, InCellRange(Of(1.0), 1e-12))
}

func TestNeighborhood(t *testing.T) {
	for dims := 1; dims <= 5; dims++ {
		offsets := Neighborhood(dims)

		want := 1
		for range dims {
			want *= 3
		}
		require.Len(t, offsets, want, "dims=%d", dims)

		seen := make(map[string]struct{}, len(offsets))
		for _, o := range offsets {
			require.Len(t, o, dims)
			for _, c := range o {
				assert.Contains(t, []int32{-1, 0, 1}, c)
			}
			seen[o.String()] = struct{}{}
		}
		assert.Len(t, seen, want, "offsets must be distinct")

		first, last := offsets[0], offsets[len(offsets)-1]
		for i := range dims {
			assert.Equal(t, int32(-1), first[i])
			assert.Equal(t, int32(1), last[i])
		}
	}

	assert.Nil(t, Neighborhood(0))
}

func TestCombos(t *testing.T) {
	got := Combos(2, 0, 4, 2)
	require.Len(t, got, 9)
	assert.Equal(t, Of[int32](0, 0), got[0])
	assert.Equal(t, Of[int32](2, 0), got[1])
	assert.Equal(t, Of[int32](4, 4), got[8])

	// Entries must not share backing storage with each other.
	got[0][0] = 99
	assert.Equal(t, int32(2), got[1][0])
}
