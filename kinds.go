package longsparse

import "github.com/hupe1980/longsparse/codec"

// kind captures the unavoidable per-value-kind differences: the element byte
// width used for aligned buffer sizing and the serialization hooks. The
// engine itself is kind-agnostic.
type kind[V comparable] struct {
	// width is the element byte width for aligned capacity sizing.
	width int
	// tag is the element kind name written before object payloads;
	// empty for scalar kinds.
	tag string

	writeValues func(w *codec.Writer, vals []V) error
	readValues  func(r *codec.Reader, dst []V) error
}

var (
	boolKind = &kind[bool]{
		width:       1,
		writeValues: (*codec.Writer).WriteBoolSlice,
		readValues:  (*codec.Reader).ReadBoolSlice,
	}
	int8Kind = &kind[int8]{
		width:       1,
		writeValues: (*codec.Writer).WriteInt8Slice,
		readValues:  (*codec.Reader).ReadInt8Slice,
	}
	int16Kind = &kind[int16]{
		width:       2,
		writeValues: (*codec.Writer).WriteInt16Slice,
		readValues:  (*codec.Reader).ReadInt16Slice,
	}
	int32Kind = &kind[int32]{
		width:       4,
		writeValues: (*codec.Writer).WriteInt32Slice,
		readValues:  (*codec.Reader).ReadInt32Slice,
	}
	int64Kind = &kind[int64]{
		width:       8,
		writeValues: (*codec.Writer).WriteInt64Slice,
		readValues:  (*codec.Reader).ReadInt64Slice,
	}
	float32Kind = &kind[float32]{
		width:       4,
		writeValues: (*codec.Writer).WriteFloat32Slice,
		readValues:  (*codec.Reader).ReadFloat32Slice,
	}
	float64Kind = &kind[float64]{
		width:       8,
		writeValues: (*codec.Writer).WriteFloat64Slice,
		readValues:  (*codec.Reader).ReadFloat64Slice,
	}
)

// NewBool creates a store of bool values.
func NewBool(opts ...Option) *Store[bool] { return newStore(boolKind, opts) }

// NewInt8 creates a store of int8 values.
func NewInt8(opts ...Option) *Store[int8] { return newStore(int8Kind, opts) }

// NewInt16 creates a store of int16 values.
func NewInt16(opts ...Option) *Store[int16] { return newStore(int16Kind, opts) }

// NewInt32 creates a store of int32 values.
func NewInt32(opts ...Option) *Store[int32] { return newStore(int32Kind, opts) }

// NewInt64 creates a store of int64 values.
func NewInt64(opts ...Option) *Store[int64] { return newStore(int64Kind, opts) }

// NewFloat32 creates a store of float32 values.
func NewFloat32(opts ...Option) *Store[float32] { return newStore(float32Kind, opts) }

// NewFloat64 creates a store of float64 values.
func NewFloat64(opts ...Option) *Store[float64] { return newStore(float64Kind, opts) }
