// Package ndarray: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// ndarray package. All operations MUST return these sentinels and tests
// MUST check them via errors.Is. No operation panics on user-triggered
// error conditions.

package ndarray

import "errors"

// Every message is prefixed with "ndarray: ..." for consistency and to
// allow easy grepping across logs. Return the sentinels directly; if
// context is essential, wrap with fmt.Errorf("ctx: %w", ErrX) at the
// outer boundary — callers still match with errors.Is.

var (
	// ErrInvalidDimension indicates a requested dimension size is negative
	// at construction time.
	ErrInvalidDimension = errors.New("ndarray: dimension size must be non-negative")

	// ErrIndexOutOfRange indicates a linear offset, an axis index, or a
	// single coordinate value falls outside its valid range.
	ErrIndexOutOfRange = errors.New("ndarray: index out of range")

	// ErrDimensionMismatch indicates the number of coordinates supplied to
	// a coordinate accessor does not equal the array's rank.
	ErrDimensionMismatch = errors.New("ndarray: coordinate count does not match rank")

	// ErrEndOfSequence indicates iteration was requested beyond the last
	// element of an exhausted iterator.
	ErrEndOfSequence = errors.New("ndarray: no more elements")
)
