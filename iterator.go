// Package ndarray: sequential traversal in linear (row-major) order.
// The iterator is a cursor into the owned buffer, not a snapshot: each
// step reads the value present at visit time, and the cursor holds only
// a position plus a non-owning reference, so the array must outlive any
// in-flight iterator.

package ndarray

import "iter"

// Iterator walks the elements of an NDArray in ascending linear-offset
// order (the last coordinate axis varies fastest). A fresh Iterator
// starts at offset 0; once exhausted it never resets — obtain a new one
// from NDArray.Iterator to traverse again.
type Iterator[E any] struct {
	arr  *NDArray[E] // non-owning reference to the traversed array
	next int         // linear offset of the next element
}

// Iterator returns a new iterator positioned before the first element.
// Complexity: O(1).
func (a *NDArray[E]) Iterator() *Iterator[E] {
	return &Iterator[E]{arr: a}
}

// HasNext reports whether another element remains.
// Complexity: O(1).
func (it *Iterator[E]) HasNext() bool {
	return it.next < len(it.arr.data)
}

// Next returns the next element in linear order and advances the cursor.
// Returns ErrEndOfSequence once every element has been visited; the
// exhausted state is permanent for this iterator instance.
// Complexity: O(1).
func (it *Iterator[E]) Next() (E, error) {
	// Guard the exhausted state
	if !it.HasNext() {
		var zero E
		return zero, ErrEndOfSequence
	}

	// Read live buffer state, then advance
	v := it.arr.data[it.next]
	it.next++

	return v, nil
}

// Values returns a range-over-func sequence over the elements in the
// same ascending linear order as Iterator. Each call yields a fresh
// traversal from offset 0. The sequence reads live buffer state at each
// step, so mutations between steps are observed.
// Complexity: O(Len()) total, O(1) per step.
func (a *NDArray[E]) Values() iter.Seq[E] {
	return func(yield func(E) bool) {
		for i := 0; i < len(a.data); i++ {
			if !yield(a.data[i]) {
				return
			}
		}
	}
}
