package spatialhash

import (
	"context"
	"fmt"
	"iter"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/spatialhash/vecn"
)

// BatchOptions configures NeighborLists.
type BatchOptions struct {
	// Workers bounds the number of goroutines. Defaults to GOMAXPROCS.
	Workers int
	// ChunkSize is the number of consecutive points one goroutine handles
	// before the context is checked again. Defaults to 256.
	ChunkSize int
	// Fast uses QueryNeighborsFast instead of the exact query.
	Fast bool
}

// NeighborLists queries the neighborhood of every tracked point at its
// current position and returns one index list per point.
//
// Queries run concurrently; the accelerator must not be mutated until
// NeighborLists returns. If ctx is cancelled the partial result is discarded
// and ctx.Err() is returned.
func (a *Accelerator[T]) NeighborLists(ctx context.Context, points []vecn.Vec[T], optFns ...func(o *BatchOptions)) ([][]int, error) {
	opts := BatchOptions{
		Workers:   runtime.GOMAXPROCS(0),
		ChunkSize: 256,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&opts)
		}
	}
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	if opts.ChunkSize < 1 {
		opts.ChunkSize = 1
	}

	if len(points) != a.n {
		return nil, fmt.Errorf("%w: %d points given, accelerator tracks %d", ErrInvalidArgument, len(points), a.n)
	}

	out := make([][]int, a.n)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)

	for start := 0; start < a.n; start += opts.ChunkSize {
		if gctx.Err() != nil {
			break
		}
		end := min(start+opts.ChunkSize, a.n)

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			for i := start; i < end; i++ {
				if opts.Fast {
					out[i] = a.AppendNeighborsFast(nil, i, points[i])
				} else {
					out[i] = a.AppendNeighbors(nil, points, i, points[i])
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Pairs yields every unordered pair (i, j), i < j, of tracked points within
// Radius() of each other, each pair exactly once. It is the broad phase of a
// contact or collision pass.
func (a *Accelerator[T]) Pairs(points []vecn.Vec[T]) iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for i := range a.n {
			for j := range a.QueryNeighbors(points, i, points[i]) {
				if j <= i {
					continue
				}
				if !yield(i, j) {
					return
				}
			}
		}
	}
}
