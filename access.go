// Package ndarray: bounds-safe element access.
// Linear accessors index the flat buffer directly; coordinate accessors
// validate the tuple once in offsetOf, then index the buffer without a
// second check.

package ndarray

import "fmt"

// accessErrorf wraps an underlying error with method context.
func accessErrorf(method string, idx any, err error) error {
	return fmt.Errorf("NDArray.%s(%v): %w", method, idx, err)
}

// GetLinear returns the element at the specified linear position.
// Stage 1 (Validate): check 0 ≤ offset < Len().
// Stage 2 (Execute): read from the flat buffer.
// Returns ErrIndexOutOfRange on invalid offsets.
// Complexity: O(1).
func (a *NDArray[E]) GetLinear(offset int) (E, error) {
	// Validate linear offset
	if offset < 0 || offset >= len(a.data) {
		var zero E
		return zero, accessErrorf("GetLinear", offset, ErrIndexOutOfRange)
	}

	return a.data[offset], nil
}

// SetLinear replaces the element at the specified linear position and
// returns the element previously stored there. On failure the buffer is
// left untouched.
// Stage 1 (Validate): check 0 ≤ offset < Len().
// Stage 2 (Execute): swap value into the flat buffer.
// Returns ErrIndexOutOfRange on invalid offsets.
// Complexity: O(1).
func (a *NDArray[E]) SetLinear(value E, offset int) (E, error) {
	// Validate linear offset
	if offset < 0 || offset >= len(a.data) {
		var zero E
		return zero, accessErrorf("SetLinear", offset, ErrIndexOutOfRange)
	}

	// Swap in the new value, remembering the old
	prev := a.data[offset]
	a.data[offset] = value

	return prev, nil
}

// Get returns the element at the specified coordinate tuple.
// Stage 1 (Validate + Map): offsetOf checks rank and per-axis bounds,
// then folds the dope vector dot-product.
// Stage 2 (Execute): read from the flat buffer.
// Returns ErrDimensionMismatch when len(indices) != Rank() and
// ErrIndexOutOfRange when any coordinate leaves its axis range.
// Complexity: O(rank).
func (a *NDArray[E]) Get(indices ...int) (E, error) {
	// Compute flat offset or error
	offset, err := a.offsetOf("Get", indices)
	if err != nil {
		var zero E
		return zero, err
	}

	// Index directly: offsetOf already validated the tuple
	return a.data[offset], nil
}

// Set replaces the element at the specified coordinate tuple and
// returns the element previously stored there. On failure the buffer is
// left untouched.
// Validation is identical to Get.
// Complexity: O(rank).
func (a *NDArray[E]) Set(value E, indices ...int) (E, error) {
	// Compute flat offset or error
	offset, err := a.offsetOf("Set", indices)
	if err != nil {
		var zero E
		return zero, err
	}

	// Swap in the new value, remembering the old
	prev := a.data[offset]
	a.data[offset] = value

	return prev, nil
}

// offsetOf converts a coordinate tuple to the equivalent linear offset.
// Stage 1 (Validate): tuple length must equal rank; every coordinate
// must lie in [0, dims[i]).
// Stage 2 (Execute): accumulate Σ strides[i]*indices[i].
// The validated tuple maps bijectively onto [0, Len()), so the result
// needs no further bounds check.
// Complexity: O(rank).
func (a *NDArray[E]) offsetOf(method string, indices []int) (int, error) {
	// Validate coordinate count against rank
	if len(indices) != len(a.dims) {
		return 0, accessErrorf(method, indices, ErrDimensionMismatch)
	}

	// Validate each coordinate and fold the dot-product
	offset := 0
	for i, idx := range indices {
		if idx < 0 || idx >= a.dims[i] {
			return 0, accessErrorf(method, indices, ErrIndexOutOfRange)
		}
		offset += a.strides[i] * idx
	}

	return offset, nil
}
