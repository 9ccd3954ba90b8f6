package arrays

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// referenceSearch is a linear-scan oracle for the binary search contract.
func referenceSearch(keys []int64, size int, key int64) int {
	for i := 0; i < size; i++ {
		if keys[i] == key {
			return i
		}
		if keys[i] > key {
			return ^i
		}
	}
	return ^size
}

func TestSearchEmpty(t *testing.T) {
	assert.Equal(t, ^0, Search(nil, 0, 42))
}

func TestSearchFoundAndAbsent(t *testing.T) {
	keys := []int64{-7, 0, 3, 9, 100, 0, 0} // logical size 5

	assert.Equal(t, 0, Search(keys, 5, -7))
	assert.Equal(t, 2, Search(keys, 5, 3))
	assert.Equal(t, 4, Search(keys, 5, 100))

	assert.Equal(t, ^0, Search(keys, 5, -100))
	assert.Equal(t, ^1, Search(keys, 5, -1))
	assert.Equal(t, ^3, Search(keys, 5, 4))
	assert.Equal(t, ^5, Search(keys, 5, 101))
}

func TestSearchMatchesReference(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for size := 0; size <= 64; size++ {
		keys := make([]int64, size+3) // slack beyond the logical size
		next := int64(-50)
		for i := 0; i < size; i++ {
			next += 1 + rng.Int63n(5)
			keys[i] = next
		}

		for probe := int64(-60); probe < next+10; probe++ {
			want := referenceSearch(keys, size, probe)
			got := Search(keys, size, probe)
			require.Equal(t, want, got, "size=%d probe=%d", size, probe)

			if got < 0 {
				ins := ^got
				require.True(t, ins >= 0 && ins <= size)
			}
		}
	}
}
