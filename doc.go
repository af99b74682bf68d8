// Package ndarray provides a generic, runtime-dimensioned dense array:
// a fixed-shape container that stores elements of any type in one
// contiguous row-major buffer and addresses them either linearly or by
// coordinate tuple.
//
// 🚀 What is ndarray?
//
//	A modern, zero-dependency storage primitive that brings together:
//		• Runtime rank: dimensionality chosen at construction, not compile time
//		• Dope-vector indexing: coordinate tuples → linear offsets in O(rank)
//		• Bounds-safe accessors: linear & coordinate get/set, errors not panics
//		• Linear iteration: cursor iterator plus range-over-func Values()
//		• Deep Clone and defensive Shape/Strides copies
//
// ✨ Why choose ndarray?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – every index validated, sentinel errors via errors.Is
//   - Pure Go – no cgo, no hidden deps
//   - Generic – the buffer holds your element type directly, no casts
//
// Layout:
//
//	Elements live in row-major order: the last coordinate axis varies
//	fastest as the linear offset increases. For dimensions [2,4,3] the
//	stride vector is [12,3,1], so (k,j,i) maps to k*12 + j*3 + i.
//
// Complexity:
//
//   - New:                O(rank + product(dims)) time & memory.
//   - Len/Rank/Dim:       O(1).
//   - Shape/Strides:      O(rank) (defensive copy).
//   - GetLinear/SetLinear: O(1).
//   - Get/Set:            O(rank) for validation + dot product.
//   - Iteration:          O(Len()) total, O(1) per step.
//
// Options:
//
//   - WithFill(v): initialize every slot to v instead of the zero value.
//
// Errors:
//
//   - ErrInvalidDimension: a negative dimension size at construction.
//   - ErrIndexOutOfRange: a linear offset, axis, or coordinate outside its range.
//   - ErrDimensionMismatch: coordinate count differs from the array's rank.
//   - ErrEndOfSequence: iteration requested past the last element.
//
// Concurrency:
//
//	NDArray performs no internal locking. A single goroutine may freely
//	mutate; share across goroutines only with external synchronization,
//	or share read-only with no concurrent writers.
//
//	go get github.com/katalvlaran/ndarray
package ndarray
