package arrays

// Search performs an ascending binary search for key over keys[0:size].
//
// If key is present its index is returned. If it is absent, the bitwise
// complement of the insertion point is returned, so a negative result both
// signals absence and encodes where an insert would keep the array sorted.
// An empty range yields ^0.
func Search(keys []int64, size int, key int64) int {
	checkSize(keys, size)

	lo, hi := 0, size-1
	for lo <= hi {
		mid := int(uint(lo+hi) >> 1)
		midVal := keys[mid]

		switch {
		case midVal < key:
			lo = mid + 1
		case midVal > key:
			hi = mid - 1
		default:
			return mid
		}
	}
	return ^lo
}
