package ndarray_test

import (
	"testing"

	"github.com/katalvlaran/ndarray"
)

// BenchmarkGetLinear measures raw linear reads on a 64×64×64 array.
// Complexity: O(1) per access.
func BenchmarkGetLinear(b *testing.B) {
	a, err := ndarray.New[float64]([]int{64, 64, 64})
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	n := a.Len()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = a.GetLinear(i % n)
	}
}

// BenchmarkSet measures coordinate writes (validation + dot product) on
// a 64×64×64 array.
// Complexity: O(rank) per access.
func BenchmarkSet(b *testing.B) {
	a, err := ndarray.New[float64]([]int{64, 64, 64})
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = a.Set(1.0, i%64, (i>>6)%64, (i>>12)%64)
	}
}

// BenchmarkIterate measures a full linear traversal of a 64×64×64 array.
// Complexity: O(Len()) per iteration.
func BenchmarkIterate(b *testing.B) {
	a, err := ndarray.New[float64]([]int{64, 64, 64})
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		it := a.Iterator()
		for it.HasNext() {
			_, _ = it.Next()
		}
	}
}
