// Package spatialhash provides a fixed-radius neighbor query accelerator for
// point sets in N-dimensional Euclidean space.
//
// It is built for particle simulations and contact detection, where the same
// question ("which points are within r of p?") is asked for every point on
// every step while the points move a little at a time.
//
// # How it works
//
// Space is cut into cubes of side r. Each occupied cube maps to a small
// bucket of point indices. Any point within r of p lies in p's own cube or in
// one of the 3^D-1 cubes touching it, so a query visits a fixed table of 3^D
// cell offsets and filters the candidates by squared distance.
//
// # Quick Start
//
//	points := []vecn.Vec[float32]{
//	    vecn.Of[float32](0, 0),
//	    vecn.Of[float32](0.5, 0),
//	    vecn.Of[float32](2, 2),
//	}
//	acc, err := spatialhash.New(points, 1.0)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for j := range acc.QueryNeighbors(points, 0, points[0]) {
//	    fmt.Println("neighbor", j)
//	}
//
// Moving a point:
//
//	prev := points[2]
//	points[2] = vecn.Of[float32](0.4, 0)
//	if err := acc.ReplacePoint(2, prev, points[2]); err != nil {
//	    log.Fatal(err) // caller bookkeeping bug
//	}
//
// # Exact and fast queries
//
// QueryNeighbors applies the distance filter. QueryNeighborsFast skips it and
// returns every point in the surrounding cells, which may be almost
// 2*r*sqrt(D) away. The fast result always contains the exact one and may
// equal it.
//
// # Ownership
//
// The accelerator never stores or modifies positions. Callers own the point
// slice and must report each move with ReplacePoint, passing the position
// the accelerator last saw. A mismatched previous position is reported as an
// error and leaves the grid untouched.
//
// # Concurrency
//
// Queries only read; any number may run concurrently (see NeighborLists).
// ReplacePoint, SortBuckets and Compact mutate buckets and need exclusive
// access.
//
// # Observability
//
// Structured logging goes through *Logger (log/slog) and counters through a
// MetricsCollector; both are configured with functional options and default
// to no-ops. Stats and LogStats report bucket occupancy for radius tuning.
package spatialhash
