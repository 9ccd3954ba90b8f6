package arrays

import "fmt"

// Grow returns the backing-array capacity to allocate when an array of
// currentSize elements runs out of room. Small arrays jump straight to 8;
// beyond that capacity quadruples.
//
// Note: historical comments in the ancestor of this code describe the policy
// as doubling. The implemented formula has always quadrupled, and the exact
// capacities it produces are load-bearing for amortized-cost expectations,
// so the quadrupling is kept.
func Grow(currentSize int) int {
	if currentSize <= 4 {
		return 8
	}
	return currentSize * 4
}

// AlignedByteSize rounds a byte budget up to the smallest allocation size
// class of the form 2^n - 12, for n in [4,32). The 12-byte slack mirrors the
// object-header overhead of the allocator this table was measured against.
// Budgets beyond the largest class are returned unchanged.
func AlignedByteSize(byteSize int) int {
	for i := uint(4); i < 32; i++ {
		if size := (1 << i) - 12; byteSize <= size {
			return size
		}
	}
	return byteSize
}

// AlignedCapacity returns an element count whose byte footprint, at the given
// element width, fills an aligned size class. The result is always >= count.
func AlignedCapacity(count, elemWidth int) int {
	return AlignedByteSize(count*elemWidth) / elemWidth
}

func checkSize[T any](buf []T, size int) {
	if size > len(buf) {
		panic(fmt.Sprintf("arrays: size %d exceeds buffer length %d", size, len(buf)))
	}
}
