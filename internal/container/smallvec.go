// Package container implements container data structures.
package container

// InlineCap is the number of elements a SmallVec stores without allocating.
const InlineCap = 4

// SmallVec is a growable sequence that keeps its first InlineCap elements in
// an inline array and moves everything to a heap slice once it outgrows it.
//
// The zero value is an empty, ready to use SmallVec. A SmallVec must not be
// copied after first use.
type SmallVec[T comparable] struct {
	inline [InlineCap]T
	n      int // length while inline; unused once spilled
	heap   []T // non-nil once spilled
}

// Len returns the number of elements.
func (s *SmallVec[T]) Len() int {
	if s.heap != nil {
		return len(s.heap)
	}
	return s.n
}

// Spilled reports whether the elements live on the heap.
func (s *SmallVec[T]) Spilled() bool { return s.heap != nil }

// Items returns the elements as a slice aliasing the container's storage.
// The slice is valid until the next mutation.
func (s *SmallVec[T]) Items() []T {
	if s.heap != nil {
		return s.heap
	}
	return s.inline[:s.n]
}

// Push appends v.
func (s *SmallVec[T]) Push(v T) {
	if s.heap != nil {
		s.heap = append(s.heap, v)
		return
	}
	if s.n < InlineCap {
		s.inline[s.n] = v
		s.n++
		return
	}
	heap := make([]T, InlineCap, 2*InlineCap)
	copy(heap, s.inline[:])
	s.heap = append(heap, v)
	s.n = 0
	clear(s.inline[:])
}

// Index returns the position of the first element equal to v, or -1.
func (s *SmallVec[T]) Index(v T) int {
	for i, x := range s.Items() {
		if x == v {
			return i
		}
	}
	return -1
}

// RemoveAt deletes the element at position i, shifting later elements down.
func (s *SmallVec[T]) RemoveAt(i int) {
	if s.heap != nil {
		var zero T
		copy(s.heap[i:], s.heap[i+1:])
		s.heap[len(s.heap)-1] = zero
		s.heap = s.heap[:len(s.heap)-1]
		return
	}
	if i < 0 || i >= s.n {
		panic("container: SmallVec index out of range")
	}
	var zero T
	copy(s.inline[i:s.n], s.inline[i+1:s.n])
	s.n--
	s.inline[s.n] = zero
}

// Remove deletes the first element equal to v and reports whether one was
// found.
func (s *SmallVec[T]) Remove(v T) bool {
	i := s.Index(v)
	if i < 0 {
		return false
	}
	s.RemoveAt(i)
	return true
}
