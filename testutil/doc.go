// Package testutil provides testing utilities for spatialhash.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating random point sets, moving them
// around, and computing exact neighbor sets by brute force.
//
// # Random Point Generation
//
//	rng := testutil.NewRNG(seed)
//	points := testutil.UniformPoints[float32](rng, 1000, 3, 0, 10)
//	blobs := testutil.ClusteredPoints[float64](rng, 1000, 2, 5, 0.3, 20)
//
// # Ground Truth
//
//	want := testutil.BruteForceNeighbors(points, i, points[i], radius)
//	pairs := testutil.BruteForcePairs(points, radius)
package testutil
