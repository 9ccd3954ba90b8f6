package longsparse

import "fmt"

// OutOfRangeError indicates a positional access outside [0,size).
type OutOfRangeError struct {
	Index int
	Size  int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("longsparse: index %d out of range [0,%d)", e.Index, e.Size)
}
