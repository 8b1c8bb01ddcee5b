// Package distance provides vector distance calculations with SIMD acceleration.
//
// float32 inputs use the kernels from internal/simd, which dispatch to
// AVX2 code on x86-64 for long vectors. Other scalar types fall back to the
// generic vecn implementation.
//
// # Usage
//
//	d := distance.SquaredL2(a, b)
//	dot := distance.Dot(a, b)
//
//	dist := distance.For[float64]()
//	d64 := dist(p, q)
package distance
