// Package arrays provides the low-level primitives shared by the sparse
// stores: capacity growth, allocator-aligned sizing, binary search with
// bitwise-complement insertion encoding, and in-place shift operations.
//
// All functions in this package treat a slice's length as its capacity and
// take the logical element count ("size") as an explicit parameter. Passing
// a size larger than the slice length is a programmer error and panics.
package arrays
