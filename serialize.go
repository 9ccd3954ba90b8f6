package longsparse

import (
	"fmt"

	"github.com/hupe1980/longsparse/arrays"
	"github.com/hupe1980/longsparse/codec"
)

// WriteTo serializes the store through the channel, in this order: the
// capacity hint (int32), the size (int32), size keys (int64 each), then the
// kind-specific value payload. Object kinds prefix the payload with the
// element kind tag. The caller owns flushing the writer.
func (s *Store[V]) WriteTo(w *codec.Writer) error {
	if err := w.WriteInt32(int32(s.initialCapacity)); err != nil {
		return fmt.Errorf("longsparse: write capacity hint: %w", err)
	}
	if err := w.WriteInt32(int32(s.size)); err != nil {
		return fmt.Errorf("longsparse: write size: %w", err)
	}
	if err := w.WriteInt64Slice(s.keys[:s.size]); err != nil {
		return fmt.Errorf("longsparse: write keys: %w", err)
	}

	if s.kind.tag != "" {
		if err := w.WriteString(s.kind.tag); err != nil {
			return fmt.Errorf("longsparse: write element kind tag: %w", err)
		}
	}
	if err := s.kind.writeValues(w, s.values[:s.size]); err != nil {
		return fmt.Errorf("longsparse: write values: %w", err)
	}
	return nil
}

// maxReadEntries bounds the hint and size read from untrusted streams, in
// the same spirit as codec's string-length cap: a corrupt header must fail
// cleanly instead of driving a giant allocation.
const maxReadEntries = 1 << 28

func readStore[V comparable](r *codec.Reader, k *kind[V]) (*Store[V], error) {
	hint, err := r.ReadInt32()
	if err != nil {
		return nil, fmt.Errorf("longsparse: read capacity hint: %w", err)
	}
	size, err := r.ReadInt32()
	if err != nil {
		return nil, fmt.Errorf("longsparse: read size: %w", err)
	}
	if hint < 0 || size < 0 || hint > maxReadEntries || size > maxReadEntries {
		return nil, fmt.Errorf("longsparse: corrupt store header (hint %d, size %d)", hint, size)
	}

	// Buffers are sized for whichever is larger: the stored entries or the
	// capacity hint the original store was built with.
	want := int(hint)
	if int(size) > want {
		want = int(size)
	}

	s := &Store[V]{
		initialCapacity: int(hint),
		kind:            k,
	}
	s.keys = make([]int64, arrays.AlignedCapacity(want, keyWidth))
	if err := r.ReadInt64Slice(s.keys[:size]); err != nil {
		return nil, fmt.Errorf("longsparse: read keys: %w", err)
	}

	if k.tag != "" {
		tag, err := r.ReadString()
		if err != nil {
			return nil, fmt.Errorf("longsparse: read element kind tag: %w", err)
		}
		if tag != k.tag {
			return nil, &codec.UnsupportedElementKindError{Kind: tag, Want: k.tag}
		}
	}

	s.values = make([]V, arrays.AlignedCapacity(want, k.width))
	if err := k.readValues(r, s.values[:size]); err != nil {
		return nil, fmt.Errorf("longsparse: read values: %w", err)
	}

	s.size = int(size)
	return s, nil
}

// ReadBool deserializes a bool store from the channel.
func ReadBool(r *codec.Reader) (*Store[bool], error) { return readStore(r, boolKind) }

// ReadInt8 deserializes an int8 store from the channel.
func ReadInt8(r *codec.Reader) (*Store[int8], error) { return readStore(r, int8Kind) }

// ReadInt16 deserializes an int16 store from the channel.
func ReadInt16(r *codec.Reader) (*Store[int16], error) { return readStore(r, int16Kind) }

// ReadInt32 deserializes an int32 store from the channel.
func ReadInt32(r *codec.Reader) (*Store[int32], error) { return readStore(r, int32Kind) }

// ReadInt64 deserializes an int64 store from the channel.
func ReadInt64(r *codec.Reader) (*Store[int64], error) { return readStore(r, int64Kind) }

// ReadFloat32 deserializes a float32 store from the channel.
func ReadFloat32(r *codec.Reader) (*Store[float32], error) { return readStore(r, float32Kind) }

// ReadFloat64 deserializes a float64 store from the channel.
func ReadFloat64(r *codec.Reader) (*Store[float64], error) { return readStore(r, float64Kind) }

// ReadObject deserializes an object store of *T elements from the channel.
// It fails with *codec.UnsupportedElementKindError when the stream's element
// kind tag does not name T.
func ReadObject[T any, P Element[T]](r *codec.Reader) (*Store[P], error) {
	return readStore(r, objectKind[T, P]())
}
