package spatialhash

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a point index is not where the caller said
	// it would be.
	ErrNotFound = errors.New("not found")

	// ErrInvalidArgument is the common cause of every construction-time
	// validation error.
	ErrInvalidArgument = errors.New("invalid argument")
)

// ErrInvalidRadius indicates a radius that is not a finite positive number.
type ErrInvalidRadius struct {
	Radius float64
}

func (e *ErrInvalidRadius) Error() string {
	return fmt.Sprintf("invalid radius: %g (must be finite and > 0)", e.Radius)
}

func (e *ErrInvalidRadius) Unwrap() error { return ErrInvalidArgument }

// ErrInvalidDimension indicates an invalid configured dimension.
type ErrInvalidDimension struct {
	Dimension int
}

func (e *ErrInvalidDimension) Error() string {
	return fmt.Sprintf("invalid dimension: %d", e.Dimension)
}

func (e *ErrInvalidDimension) Unwrap() error { return ErrInvalidArgument }

// ErrDimensionMismatch indicates a point whose dimension differs from the
// accelerator's.
type ErrDimensionMismatch struct {
	Index    int
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch at point %d: expected %d, got %d", e.Index, e.Expected, e.Actual)
}

func (e *ErrDimensionMismatch) Unwrap() error { return ErrInvalidArgument }

// ErrInvalidPoint indicates a point with a non-finite coordinate or one whose
// cell coordinate does not fit the grid.
type ErrInvalidPoint struct {
	Index  int
	Reason string
}

func (e *ErrInvalidPoint) Error() string {
	return fmt.Sprintf("invalid point %d: %s", e.Index, e.Reason)
}

func (e *ErrInvalidPoint) Unwrap() error { return ErrInvalidArgument }

// ErrIndexOutOfRange indicates a point index the accelerator does not track.
type ErrIndexOutOfRange struct {
	Index int
	Len   int
}

func (e *ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("point index %d out of range [0, %d)", e.Index, e.Len)
}

func (e *ErrIndexOutOfRange) Unwrap() error { return ErrInvalidArgument }

// ErrStaleRelocation is returned by ReplacePoint when the index is not in the
// bucket of the previous position. This is a bookkeeping bug in the caller:
// prev must be the position used at construction or at the last relocation
// of that index.
type ErrStaleRelocation struct {
	Index int
	Cell  string
}

func (e *ErrStaleRelocation) Error() string {
	return fmt.Sprintf("point %d not in cell %s of its previous position", e.Index, e.Cell)
}

func (e *ErrStaleRelocation) Unwrap() error { return ErrNotFound }

// ErrInvariantViolation is returned by Validate when the grid does not
// partition the point set by cell.
type ErrInvariantViolation struct {
	Index  int
	Reason string
}

func (e *ErrInvariantViolation) Error() string {
	return fmt.Sprintf("grid invariant violated for point %d: %s", e.Index, e.Reason)
}
