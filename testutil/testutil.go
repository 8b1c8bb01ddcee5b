package testutil

import (
	"math/rand"
	"slices"
	"sync"

	"golang.org/x/exp/constraints"

	"github.com/hupe1980/spatialhash/vecn"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// NormFloat64 returns a standard normal sample.
func (r *RNG) NormFloat64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.NormFloat64()
}

// UniformPoints generates num points with coordinates uniform in [lo, hi).
// Uses a single backing array for efficiency.
func UniformPoints[T constraints.Float](r *RNG, num, dims int, lo, hi T) []vecn.Vec[T] {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]T, num*dims)
	points := make([]vecn.Vec[T], num)
	span := float64(hi - lo)

	for i := range num {
		p := vecn.Vec[T](data[i*dims : (i+1)*dims : (i+1)*dims])
		for j := range p {
			p[j] = lo + T(r.rand.Float64()*span)
		}
		points[i] = p
	}

	return points
}

// ClusteredPoints generates num points scattered with Gaussian noise of
// standard deviation spread around clusters centres drawn uniformly from
// [0, extent). Dense clusters exercise bucket overflow.
func ClusteredPoints[T constraints.Float](r *RNG, num, dims, clusters int, spread, extent T) []vecn.Vec[T] {
	centres := UniformPoints(r, clusters, dims, 0, extent)

	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]T, num*dims)
	points := make([]vecn.Vec[T], num)

	for i := range num {
		c := centres[i%clusters]
		p := vecn.Vec[T](data[i*dims : (i+1)*dims : (i+1)*dims])
		for j := range p {
			p[j] = c[j] + T(r.rand.NormFloat64())*spread
		}
		points[i] = p
	}

	return points
}

// Jitter returns a copy of p displaced by up to step along every axis.
func Jitter[T constraints.Float](r *RNG, p vecn.Vec[T], step T) vecn.Vec[T] {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := p.Clone()
	for i := range out {
		out[i] += T(r.rand.Float64()*2-1) * step
	}
	return out
}

// BruteForceNeighbors returns, in ascending order, every index j != queryIdx
// with |points[j] - q|² <= radius².
func BruteForceNeighbors[T constraints.Float](points []vecn.Vec[T], queryIdx int, q vecn.Vec[T], radius T) []int {
	radiusSq := radius * radius
	var out []int
	for j, p := range points {
		if j == queryIdx {
			continue
		}
		if vecn.DistanceSquared(p, q) <= radiusSq {
			out = append(out, j)
		}
	}
	return out
}

// Pair is an unordered point pair with I < J.
type Pair struct {
	I, J int
}

// BruteForcePairs returns every pair within radius, sorted by (I, J).
func BruteForcePairs[T constraints.Float](points []vecn.Vec[T], radius T) []Pair {
	radiusSq := radius * radius
	var out []Pair
	for i := range points {
		for j := i + 1; j < len(points); j++ {
			if vecn.DistanceSquared(points[i], points[j]) <= radiusSq {
				out = append(out, Pair{I: i, J: j})
			}
		}
	}
	return out
}

// Sorted returns a sorted copy of xs, or nil when xs is empty.
func Sorted(xs []int) []int {
	if len(xs) == 0 {
		return nil
	}
	out := slices.Clone(xs)
	slices.Sort(out)
	return out
}

// IsSubset reports whether every element of sub is in super.
func IsSubset(sub, super []int) bool {
	set := make(map[int]struct{}, len(super))
	for _, x := range super {
		set[x] = struct{}{}
	}
	for _, x := range sub {
		if _, ok := set[x]; !ok {
			return false
		}
	}
	return true
}
