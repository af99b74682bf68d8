// Package ndarray: core container type and functional construction
// options. This file defines:
//   - NDArray[E] (flat row-major storage + dope vector),
//   - Option / options (functional options with internal state),
//   - gatherOptions helper (internal) that resolves defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: shape and strides are never exposed mutably.
//   - Reusability: options fields are unexported; public APIs consume ...Option.

package ndarray

// NDArray is a fixed-shape dense array of E with runtime-chosen rank.
// dims holds the size of each dimension; strides is the derived dope
// vector (strides[rank-1] == 1, row-major); data holds product(dims)
// elements in ascending linear-offset order.
//
// All three slices are exclusively owned by the instance: constructors
// copy incoming dimension slices and accessors return defensive copies,
// so no external alias can corrupt the invariants.
type NDArray[E any] struct {
	dims    []int // size per dimension, immutable after construction
	strides []int // dope vector, immutable after construction
	data    []E   // flat backing storage, length == product(dims)
}

// Option mutates construction options. Safe to apply repeatedly
// (last-writer-wins semantics).
type Option[E any] func(*options[E])

// options stores the effective configuration after applying Option
// setters. It is intentionally unexported to prevent external mutation;
// New accepts ...Option and resolves them via gatherOptions.
type options[E any] struct {
	fill    E    // initial value for every slot when hasFill is set
	hasFill bool // false ⇒ slots start at the zero value of E
}

// WithFill initializes every slot to v at construction instead of the
// zero value of E. Use it when the zero value is not a meaningful
// default for the element type.
// Complexity: O(1) to set; New pays O(Len()) to apply.
func WithFill[E any](v E) Option[E] {
	return func(o *options[E]) {
		o.fill = v
		o.hasFill = true
	}
}

// gatherOptions applies user-provided Option setters on top of the
// defaults (zero-value initialization, no fill). Last-writer-wins.
// Complexity: O(k) for k=len(user).
func gatherOptions[E any](user ...Option[E]) options[E] {
	var o options[E]
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
