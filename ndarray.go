// Package ndarray: construction and shape metadata.
// NDArray is a concrete, row-major generic container storing elements in
// a flat slice for performance and cache friendliness.

package ndarray

import (
	"fmt"
	"strings"
)

// New constructs an NDArray with the given sizes of the different
// dimensions.
// Stage 1 (Validate): ensure every size is ≥ 0.
// Stage 2 (Prepare): copy dims, compute total element count and strides.
// Stage 3 (Execute): allocate the flat backing slice, apply options.
// Stage 4 (Finalize): return the initialized container.
//
// The product of an empty dimension list is 1, so New[E](nil) yields a
// rank-0 scalar holding exactly one element. Any zero-size dimension
// yields an empty buffer.
// Returns ErrInvalidDimension when any size is negative.
// Complexity: O(rank + product(dims)) time and memory.
func New[E any](dims []int, opts ...Option[E]) (*NDArray[E], error) {
	// Validate dimension sizes
	for _, d := range dims {
		if d < 0 {
			return nil, fmt.Errorf("New(%v): %w", dims, ErrInvalidDimension)
		}
	}

	// Copy dimensions defensively and compute total length
	sizes := make([]int, len(dims))
	total := 1
	for i, d := range dims {
		sizes[i] = d
		total *= d
	}

	// Compute the dope vector: last axis varies fastest (row-major)
	strides := make([]int, len(sizes))
	if len(strides) > 0 {
		strides[len(strides)-1] = 1
		for i := len(strides) - 2; i >= 0; i-- {
			strides[i] = strides[i+1] * sizes[i+1]
		}
	}

	// Allocate backing storage
	data := make([]E, total)

	// Apply construction options
	o := gatherOptions(opts...)
	if o.hasFill {
		for i := range data {
			data[i] = o.fill
		}
	}

	return &NDArray[E]{dims: sizes, strides: strides, data: data}, nil
}

// Len returns the total number of elements stored.
// Complexity: O(1).
func (a *NDArray[E]) Len() int {
	return len(a.data) // buffer length equals product(dims)
}

// Rank returns the total number of dimensions.
// Complexity: O(1).
func (a *NDArray[E]) Rank() int {
	return len(a.dims) // one entry per dimension
}

// Dim returns the size of the stored data along the specified axis.
// Returns ErrIndexOutOfRange when axis is not in [0, Rank()).
// Complexity: O(1).
func (a *NDArray[E]) Dim(axis int) (int, error) {
	// Validate axis index
	if axis < 0 || axis >= len(a.dims) {
		return 0, fmt.Errorf("Dim(%d): %w", axis, ErrIndexOutOfRange)
	}

	return a.dims[axis], nil
}

// Shape returns a copy of the sizes in all dimensions.
// Mutating the returned slice does not affect the array.
// Complexity: O(rank).
func (a *NDArray[E]) Shape() []int {
	cp := make([]int, len(a.dims))
	copy(cp, a.dims)

	return cp
}

// Strides returns a copy of the dope vector: per-dimension multipliers
// used to convert a coordinate tuple into a single linear offset.
// Mutating the returned slice does not affect the array.
// Complexity: O(rank).
func (a *NDArray[E]) Strides() []int {
	cp := make([]int, len(a.strides))
	copy(cp, a.strides)

	return cp
}

// Fill assigns v to every slot of the array.
// Complexity: O(Len()).
func (a *NDArray[E]) Fill(v E) {
	for i := range a.data {
		a.data[i] = v
	}
}

// Clone returns a deep copy of the array. The returned NDArray is
// independent of the original: mutating one never affects the other.
// Complexity: O(rank + Len()) time and memory.
func (a *NDArray[E]) Clone() *NDArray[E] {
	// Allocate new slices for the copies
	dims := make([]int, len(a.dims))
	copy(dims, a.dims)
	strides := make([]int, len(a.strides))
	copy(strides, a.strides)
	data := make([]E, len(a.data))
	copy(data, a.data)

	return &NDArray[E]{dims: dims, strides: strides, data: data}
}

// String implements fmt.Stringer with a compact shape summary such as
// "NDArray[2×4×3]". Element values are not rendered since E is opaque.
// Complexity: O(rank).
func (a *NDArray[E]) String() string {
	if len(a.dims) == 0 {
		return "NDArray[scalar]"
	}

	parts := make([]string, len(a.dims))
	for i, d := range a.dims {
		parts[i] = fmt.Sprintf("%d", d)
	}

	return "NDArray[" + strings.Join(parts, "×") + "]"
}
