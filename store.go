package longsparse

import (
	"fmt"
	"strings"

	"github.com/hupe1980/longsparse/arrays"
)

// keyWidth is the byte width of a key, used for aligned buffer sizing.
const keyWidth = 8

// Store is a sparse, array-backed map from int64 keys to values of kind V.
//
// Keys are held in ascending order without duplicates, positionally aligned
// with the value buffer: values[i] belongs to keys[i]. Both buffers may be
// longer than the logical size; the slack is growth headroom.
//
// A Store is not safe for concurrent use.
type Store[V comparable] struct {
	keys   []int64
	values []V
	size   int

	initialCapacity int
	kind            *kind[V]
}

func newStore[V comparable](k *kind[V], opts []Option) *Store[V] {
	o := options{initialCapacity: DefaultInitialCapacity}
	for _, fn := range opts {
		fn(&o)
	}

	s := &Store[V]{
		initialCapacity: o.initialCapacity,
		kind:            k,
	}
	s.Clear()
	return s
}

// Size returns the number of entries currently present.
func (s *Store[V]) Size() int {
	return s.size
}

// IsEmpty reports whether the store holds no entries.
func (s *Store[V]) IsEmpty() bool {
	return s.size == 0
}

// Get returns the value stored under key, or the kind's zero value when the
// key is absent.
func (s *Store[V]) Get(key int64) V {
	var zero V
	return s.GetOrDefault(key, zero)
}

// GetOrDefault returns the value stored under key, or def when the key is
// absent.
func (s *Store[V]) GetOrDefault(key int64, def V) V {
	if s.size == 0 {
		return def
	}

	pos := arrays.Search(s.keys, s.size, key)
	if pos < 0 {
		return def
	}
	return s.values[pos]
}

// Lookup returns the value stored under key and whether it was present.
func (s *Store[V]) Lookup(key int64) (V, bool) {
	var zero V
	if s.size == 0 {
		return zero, false
	}

	pos := arrays.Search(s.keys, s.size, key)
	if pos < 0 {
		return zero, false
	}
	return s.values[pos], true
}

// Put stores value under key, replacing any previous value.
func (s *Store[V]) Put(key int64, value V) {
	pos := -1
	if s.size > 0 {
		pos = arrays.Search(s.keys, s.size, key)
	}

	if pos >= 0 {
		s.values[pos] = value
		return
	}

	pos = ^pos
	s.keys = arrays.Insert(s.keys, s.size, pos, key)
	s.values = arrays.Insert(s.values, s.size, pos, value)
	s.size++
}

// Append stores value under key, optimized for the common case of keys
// arriving in ascending order. If key is greater than every stored key the
// entry is appended without searching; otherwise Append falls back to Put.
// The resulting store state is identical either way.
func (s *Store[V]) Append(key int64, value V) {
	if s.size != 0 && key <= s.keys[s.size-1] {
		s.Put(key, value)
		return
	}

	s.keys = arrays.Append(s.keys, s.size, key)
	s.values = arrays.Append(s.values, s.size, value)
	s.size++
}

// Delete removes the entry stored under key. Absent keys are a no-op.
func (s *Store[V]) Delete(key int64) {
	if s.size == 0 {
		return
	}

	pos := arrays.Search(s.keys, s.size, key)
	if pos < 0 {
		return
	}
	s.removeAt(pos)
}

// RemoveAt removes the entry at the given position.
func (s *Store[V]) RemoveAt(index int) error {
	if index < 0 || index >= s.size {
		return &OutOfRangeError{Index: index, Size: s.size}
	}
	s.removeAt(index)
	return nil
}

func (s *Store[V]) removeAt(pos int) {
	copy(s.keys[pos:s.size-1], s.keys[pos+1:s.size])
	copy(s.values[pos:s.size-1], s.values[pos+1:s.size])
	s.size--

	// Release the vacated slot so object references don't linger.
	var zero V
	s.values[s.size] = zero
}

// KeyAt returns the key at the given position.
func (s *Store[V]) KeyAt(index int) (int64, error) {
	if index < 0 || index >= s.size {
		return 0, &OutOfRangeError{Index: index, Size: s.size}
	}
	return s.keys[index], nil
}

// ValueAt returns the value at the given position.
func (s *Store[V]) ValueAt(index int) (V, error) {
	if index < 0 || index >= s.size {
		var zero V
		return zero, &OutOfRangeError{Index: index, Size: s.size}
	}
	return s.values[index], nil
}

// IndexOfKey returns the position of key, or the bitwise complement of its
// insertion point when absent (always negative in that case).
func (s *Store[V]) IndexOfKey(key int64) int {
	return arrays.Search(s.keys, s.size, key)
}

// IndexOfValue returns the position of the first entry whose value equals
// value, scanning in key order, or -1 when no entry matches. Unlike key
// lookups this is a linear scan.
func (s *Store[V]) IndexOfValue(value V) int {
	for i := 0; i < s.size; i++ {
		if s.values[i] == value {
			return i
		}
	}
	return -1
}

// Keys returns a freshly allocated copy of the key sequence, exactly Size
// elements long.
func (s *Store[V]) Keys() []int64 {
	return arrays.Trim(s.keys, s.size)
}

// Values returns a freshly allocated copy of the value sequence, exactly
// Size elements long. Mutating it does not affect the store.
func (s *Store[V]) Values() []V {
	return arrays.Trim(s.values, s.size)
}

// Clear drops every entry and reallocates the buffers to the store's
// original capacity hint.
func (s *Store[V]) Clear() {
	if s.initialCapacity == 0 {
		s.keys = []int64{}
		s.values = []V{}
	} else {
		n := arrays.AlignedCapacity(s.initialCapacity, keyWidth)
		s.keys = make([]int64, n)
		s.values = make([]V, n)
	}
	s.size = 0
}

// Clone returns an independent copy of the store. The clone shares no
// backing storage with the original; for object kinds the elements
// themselves are shared by reference.
func (s *Store[V]) Clone() *Store[V] {
	keys := make([]int64, len(s.keys))
	copy(keys, s.keys)
	values := make([]V, len(s.values))
	copy(values, s.values)

	return &Store[V]{
		keys:            keys,
		values:          values,
		size:            s.size,
		initialCapacity: s.initialCapacity,
		kind:            s.kind,
	}
}

// Trim reallocates both buffers to exactly Size elements, releasing growth
// headroom. The capacity hint used by Clear is unaffected.
func (s *Store[V]) Trim() {
	s.keys = arrays.Trim(s.keys, s.size)
	s.values = arrays.Trim(s.values, s.size)
}

// ForceTrim releases as much memory as possible without losing entries.
// For a store that is the same as Trim; the method exists so stores satisfy
// the resource.Trimmer contract.
func (s *Store[V]) ForceTrim() {
	s.Trim()
}

// Footprint returns the retained byte size of the backing buffers. Object
// kinds count the reference slots, not the referenced elements.
func (s *Store[V]) Footprint() int64 {
	return int64(len(s.keys))*keyWidth + int64(len(s.values))*int64(s.kind.width)
}

// String renders the entries as {k=v, ...} for debugging.
func (s *Store[V]) String() string {
	if s.size < 1 {
		return "{}"
	}

	var b strings.Builder
	b.WriteByte('{')
	for i := 0; i < s.size; i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%d=%v", s.keys[i], s.values[i])
	}
	b.WriteByte('}')
	return b.String()
}
