package spatialhash

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/spatialhash/internal/container"
	"github.com/hupe1980/spatialhash/testutil"
	"github.com/hupe1980/spatialhash/vecn"
)

func TestStats(t *testing.T) {
	t.Run("Example", func(t *testing.T) {
		acc, err := New(examplePoints(), 1.0)
		require.NoError(t, err)

		s := acc.Stats()
		assert.Equal(t, 3, s.Points)
		assert.Equal(t, 2, s.Cells)
		assert.Equal(t, 2, s.Occupied)
		assert.InDelta(t, 1.5, s.MeanOccupancy, 1e-12)
		assert.InDelta(t, 0.7071, s.StdDevOccupancy, 1e-4)
		assert.Equal(t, 2, s.MaxOccupancy)
		assert.Zero(t, s.Spilled)
	})

	t.Run("Empty", func(t *testing.T) {
		acc, err := New[float32](nil, 1, WithDimension(2))
		require.NoError(t, err)
		assert.Equal(t, Stats{}, acc.Stats())
	})

	t.Run("SingleCell", func(t *testing.T) {
		points := make([]vecn.Vec[float64], container.InlineCap+2)
		for i := range points {
			points[i] = vecn.Of(0.01 * float64(i))
		}
		acc, err := New(points, 1.0)
		require.NoError(t, err)

		s := acc.Stats()
		assert.Equal(t, 1, s.Occupied)
		assert.Equal(t, float64(len(points)), s.MeanOccupancy)
		assert.Zero(t, s.StdDevOccupancy)
		assert.Equal(t, len(points), s.MaxOccupancy)
		assert.Equal(t, 1, s.Spilled)
	})

	t.Run("EmptiedCellNotOccupied", func(t *testing.T) {
		points := examplePoints()
		acc, err := New(points, 1.0)
		require.NoError(t, err)
		require.NoError(t, acc.ReplacePoint(2, points[2], vecn.Of[float32](0.3, 0.3)))

		s := acc.Stats()
		assert.Equal(t, 2, s.Cells)
		assert.Equal(t, 1, s.Occupied)
		assert.Equal(t, 3, s.MaxOccupancy)
	})
}

func TestLogStats(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	acc, err := New(examplePoints(), 1.0, WithLogger(logger))
	require.NoError(t, err)

	acc.LogStats(context.Background(), "fluid")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "accelerator stats", rec["msg"])
	assert.Equal(t, "fluid", rec["name"])
	assert.Equal(t, float64(2), rec["dimension"])
	assert.Equal(t, float64(3), rec["points"])
	assert.Equal(t, float64(2), rec["max_per_cell"])
}

func TestValidateDetectsDrift(t *testing.T) {
	points := examplePoints()
	acc, err := New(points, 1.0)
	require.NoError(t, err)

	// Caller moves a point without telling the accelerator.
	points[1] = vecn.Of[float32](3, 3)

	err = acc.Validate(points)
	var v *ErrInvariantViolation
	require.ErrorAs(t, err, &v)
	assert.Equal(t, 1, v.Index)
	assert.Contains(t, v.Error(), "cell")
}

func TestValidateDuplicateIndex(t *testing.T) {
	points := examplePoints()
	acc, err := New(points, 1.0)
	require.NoError(t, err)

	acc.lookup(vecn.Of[int32](0, 0)).items.Push(0)

	err = acc.Validate(points)
	var v *ErrInvariantViolation
	require.ErrorAs(t, err, &v)
	assert.Equal(t, 0, v.Index)
	assert.Contains(t, v.Reason, "more than one bucket")
}

func TestValidateMissingIndex(t *testing.T) {
	points := examplePoints()
	acc, err := New(points, 1.0)
	require.NoError(t, err)

	c := acc.lookup(vecn.Of[int32](2, 2))
	c.items.RemoveAt(c.items.Index(2))

	err = acc.Validate(points)
	var v *ErrInvariantViolation
	require.ErrorAs(t, err, &v)
	assert.Equal(t, 2, v.Index)
	assert.Contains(t, v.Reason, "not stored in any bucket")
}

func TestValidateLengthMismatch(t *testing.T) {
	acc, err := New(examplePoints(), 1.0)
	require.NoError(t, err)

	err = acc.Validate(examplePoints()[:2])
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestSortBuckets(t *testing.T) {
	points := []vecn.Vec[float64]{vecn.Of(0.1), vecn.Of(0.2), vecn.Of(0.3)}
	acc, err := New(points, 1.0)
	require.NoError(t, err)

	require.NoError(t, acc.ReplacePoint(0, points[0], points[0]))
	require.Equal(t, []int{1, 2, 0}, acc.Members(vecn.Of[int32](0)))

	acc.SortBuckets()
	assert.Equal(t, []int{0, 1, 2}, acc.Members(vecn.Of[int32](0)))
}

func TestCompact(t *testing.T) {
	rng := testutil.NewRNG(3)
	points := testutil.UniformPoints[float64](rng, 100, 2, 0, 10)
	acc, err := New(points, 0.5)
	require.NoError(t, err)

	// Collapse everything into one cell.
	for i := range points {
		prev := points[i]
		points[i] = vecn.Of(0.1, 0.1)
		require.NoError(t, acc.ReplacePoint(i, prev, points[i]))
	}

	before := acc.NumCells()
	removed := acc.Compact()
	assert.Equal(t, before-1, removed)
	assert.Equal(t, 1, acc.NumCells())
	assert.Zero(t, acc.Compact())

	require.NoError(t, acc.Validate(points))
	assert.Len(t, collect(acc.QueryNeighbors(points, 0, points[0])), len(points)-1)

	// Relocating out again recreates cells.
	prev := points[5]
	points[5] = vecn.Of(9.0, 9.0)
	require.NoError(t, acc.ReplacePoint(5, prev, points[5]))
	assert.Equal(t, 2, acc.NumCells())
	require.NoError(t, acc.Validate(points))
}
