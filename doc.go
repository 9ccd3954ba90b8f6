// Package longsparse provides sparse, array-backed key/value stores keyed by
// 64-bit signed integers.
//
// A store keeps an ascending, duplicate-free key array positionally aligned
// with a value array. Lookups binary-search the key array; insertions keep it
// sorted; monotonically increasing inserts take the O(1) amortized Append
// fast path. Compared to a map, a store trades insertion cost in the middle
// for dense memory, ordered positional access, and a compact flat binary
// serialization.
//
// # Quick start
//
//	s := longsparse.NewInt64()
//	s.Put(5, 50)
//	s.Append(9, 90) // ascending fast path
//	v := s.Get(5)   // 50
//
// One generic engine backs every value kind; constructors exist for bool,
// int8/16/32/64, float32/64, and object references:
//
//	type point struct{ X, Y int32 }
//	// *point implements codec.Streamable
//	ps := longsparse.NewObject[point]()
//	ps.Put(1, &point{X: 1, Y: 2})
//
// Stores are not safe for concurrent use; callers own the synchronization.
//
// # Subpackages
//
//   - arrays: growth, aligned sizing, search and shift primitives
//   - codec: the binary serialization channel
//   - snapshot: file persistence (compression, checksums, mmap open)
//   - resource: trim registry and periodic maintenance timer
package longsparse
