package arrays

// Append writes v at index size, reallocating to Grow(size) when the buffer
// is full. The returned slice may be a different backing array than buf.
func Append[T any](buf []T, size int, v T) []T {
	checkSize(buf, size)
	if size+1 > len(buf) {
		grown := make([]T, Grow(size))
		copy(grown, buf[:size])
		buf = grown
	}
	buf[size] = v
	return buf
}

// Insert writes v at position, shifting [position,size) one slot to the
// right, reallocating to Grow(size) when the buffer is full. The returned
// slice may be a different backing array than buf.
func Insert[T any](buf []T, size, position int, v T) []T {
	checkSize(buf, size)

	if size+1 > len(buf) {
		grown := make([]T, Grow(size))
		copy(grown, buf[:position])
		grown[position] = v
		copy(grown[position+1:], buf[position:size])
		return grown
	}

	copy(buf[position+1:size+1], buf[position:size])
	buf[position] = v
	return buf
}

// ShiftLeft removes the element at index 0, moves [1,size) one slot to the
// left, zeroes the vacated tail slot, and returns the removed element.
func ShiftLeft[T any](buf []T, size int) T {
	checkSize(buf, size)

	var zero T
	first := buf[0]
	copy(buf[:size-1], buf[1:size])
	buf[size-1] = zero
	return first
}

// ShiftRight removes the element at index size-1, moves [0,size-1) one slot
// to the right, zeroes the vacated head slot, and returns the removed
// element.
func ShiftRight[T any](buf []T, size int) T {
	checkSize(buf, size)

	var zero T
	last := buf[size-1]
	copy(buf[1:size], buf[:size-1])
	buf[0] = zero
	return last
}

// Trim returns a freshly allocated copy holding exactly the first size
// elements of buf.
func Trim[T any](buf []T, size int) []T {
	checkSize(buf, size)
	out := make([]T, size)
	copy(out, buf[:size])
	return out
}
