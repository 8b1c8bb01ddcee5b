// Package simd provides float32 kernels with runtime CPU dispatch.
//
// # Supported Platforms
//
//   - x86-64: AVX2+FMA through github.com/viterin/vek
//   - ARM64: NEON detection (generic kernels)
//
// Runtime CPU feature detection (golang.org/x/sys/cpu) selects the
// implementation. Set SPATIALHASH_SIMD=generic to force the pure Go kernels.
//
// # Operations
//
//   - Dot, SquaredL2
//
// Short vectors always use the generic kernels: for the 2-4 dimensional
// points of a particle simulation the call overhead of the vectorized path
// costs more than it saves.
package simd
