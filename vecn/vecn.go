// Package vecn provides a small N-dimensional vector type over any numeric
// scalar.
//
// Vectors are plain slices, so the dimension is a runtime property. All binary
// operations assume both operands have the same dimension and panic otherwise,
// the same way an out-of-range slice index does.
package vecn

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Number is the set of scalar types a Vec can hold.
type Number interface {
	constraints.Integer | constraints.Float
}

// Vec is an ordered, fixed-length tuple of numbers.
type Vec[T Number] []T

// New returns a zero vector with the given dimension.
func New[T Number](dims int) Vec[T] {
	return make(Vec[T], dims)
}

// Of builds a vector from its components.
func Of[T Number](xs ...T) Vec[T] {
	return Vec[T](xs)
}

// Dims returns the number of components.
func (v Vec[T]) Dims() int { return len(v) }

// Clone returns a copy of v.
func (v Vec[T]) Clone() Vec[T] {
	if v == nil {
		return nil
	}
	out := make(Vec[T], len(v))
	copy(out, v)
	return out
}

// Merge combines v and rhs component-wise with fn.
func (v Vec[T]) Merge(rhs Vec[T], fn func(a, b T) T) Vec[T] {
	mustMatch(len(v), len(rhs))
	out := make(Vec[T], len(v))
	for i := range v {
		out[i] = fn(v[i], rhs[i])
	}
	return out
}

// Map applies fn to every component.
func (v Vec[T]) Map(fn func(T) T) Vec[T] {
	out := make(Vec[T], len(v))
	for i := range v {
		out[i] = fn(v[i])
	}
	return out
}

// Add returns v + rhs.
func (v Vec[T]) Add(rhs Vec[T]) Vec[T] {
	return AddInto(make(Vec[T], len(v)), v, rhs)
}

// Sub returns v - rhs.
func (v Vec[T]) Sub(rhs Vec[T]) Vec[T] {
	return SubInto(make(Vec[T], len(v)), v, rhs)
}

// Mul returns the elementwise product of v and rhs.
func (v Vec[T]) Mul(rhs Vec[T]) Vec[T] {
	return v.Merge(rhs, func(a, b T) T { return a * b })
}

// Div returns the elementwise quotient of v and rhs.
func (v Vec[T]) Div(rhs Vec[T]) Vec[T] {
	return v.Merge(rhs, func(a, b T) T { return a / b })
}

// Scale returns v * s.
func (v Vec[T]) Scale(s T) Vec[T] {
	return v.Map(func(a T) T { return a * s })
}

// DivScalar returns v / s.
func (v Vec[T]) DivScalar(s T) Vec[T] {
	return v.Map(func(a T) T { return a / s })
}

// Dot returns the sum of the elementwise product.
func (v Vec[T]) Dot(rhs Vec[T]) T {
	mustMatch(len(v), len(rhs))
	var sum T
	for i := range v {
		sum += v[i] * rhs[i]
	}
	return sum
}

// LengthSquared returns v·v.
func (v Vec[T]) LengthSquared() T {
	return v.Dot(v)
}

// Equal reports whether v and rhs have the same dimension and components.
func (v Vec[T]) Equal(rhs Vec[T]) bool {
	if len(v) != len(rhs) {
		return false
	}
	for i := range v {
		if v[i] != rhs[i] {
			return false
		}
	}
	return true
}

// String implements fmt.Stringer.
func (v Vec[T]) String() string {
	return fmt.Sprint([]T(v))
}

// AddInto stores a + b in dst and returns it. dst may alias a or b.
func AddInto[T Number](dst, a, b Vec[T]) Vec[T] {
	mustMatch(len(a), len(b))
	mustMatch(len(dst), len(a))
	for i := range a {
		dst[i] = a[i] + b[i]
	}
	return dst
}

// SubInto stores a - b in dst and returns it. dst may alias a or b.
func SubInto[T Number](dst, a, b Vec[T]) Vec[T] {
	mustMatch(len(a), len(b))
	mustMatch(len(dst), len(a))
	for i := range a {
		dst[i] = a[i] - b[i]
	}
	return dst
}

// DistanceSquared returns |a-b|² without allocating.
func DistanceSquared[T Number](a, b Vec[T]) T {
	mustMatch(len(a), len(b))
	var sum T
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}

// IsFinite reports whether every component of v is neither NaN nor infinite.
func IsFinite[T constraints.Float](v Vec[T]) bool {
	for _, x := range v {
		f := float64(x)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}

func mustMatch(a, b int) {
	if a != b {
		panic(fmt.Sprintf("vecn: dimension mismatch: %d != %d", a, b))
	}
}
