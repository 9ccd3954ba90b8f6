package codec

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// maxStringLen bounds length prefixes read from untrusted streams so a
// corrupt prefix cannot trigger a giant allocation.
const maxStringLen = 1 << 30

// Reader decodes primitive values from an underlying io.Reader.
type Reader struct {
	r       *bufio.Reader
	scratch [8]byte
}

// NewReader creates a Reader on top of r.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: bufio.NewReader(r)}
}

// ReadInt32 reads a 32-bit signed integer.
func (r *Reader) ReadInt32() (int32, error) {
	if _, err := io.ReadFull(r.r, r.scratch[:4]); err != nil {
		return 0, err
	}
	return int32(binary.LittleEndian.Uint32(r.scratch[:4])), nil
}

// ReadInt64 reads a 64-bit signed integer.
func (r *Reader) ReadInt64() (int64, error) {
	if _, err := io.ReadFull(r.r, r.scratch[:8]); err != nil {
		return 0, err
	}
	return int64(binary.LittleEndian.Uint64(r.scratch[:8])), nil
}

// ReadString reads a length-prefixed UTF-8 string.
func (r *Reader) ReadString() (string, error) {
	n, err := r.ReadInt32()
	if err != nil {
		return "", err
	}
	if n < 0 || n > maxStringLen {
		return "", fmt.Errorf("codec: invalid string length %d", n)
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r.r, buf); err != nil {
		return "", err
	}
	return string(buf), nil
}

// ReadBoolSlice fills dst with one decoded bool per byte.
func (r *Reader) ReadBoolSlice(dst []bool) error {
	for i := range dst {
		b, err := r.r.ReadByte()
		if err != nil {
			return err
		}
		dst[i] = b != 0
	}
	return nil
}

// ReadInt8Slice fills dst with one decoded int8 per byte.
func (r *Reader) ReadInt8Slice(dst []int8) error {
	for i := range dst {
		b, err := r.r.ReadByte()
		if err != nil {
			return err
		}
		dst[i] = int8(b)
	}
	return nil
}

// ReadInt16Slice fills dst, two bytes per element.
func (r *Reader) ReadInt16Slice(dst []int16) error {
	for i := range dst {
		if _, err := io.ReadFull(r.r, r.scratch[:2]); err != nil {
			return err
		}
		dst[i] = int16(binary.LittleEndian.Uint16(r.scratch[:2]))
	}
	return nil
}

// ReadInt32Slice fills dst, four bytes per element.
func (r *Reader) ReadInt32Slice(dst []int32) error {
	for i := range dst {
		v, err := r.ReadInt32()
		if err != nil {
			return err
		}
		dst[i] = v
	}
	return nil
}

// ReadInt64Slice fills dst, eight bytes per element.
func (r *Reader) ReadInt64Slice(dst []int64) error {
	for i := range dst {
		v, err := r.ReadInt64()
		if err != nil {
			return err
		}
		dst[i] = v
	}
	return nil
}

// ReadFloat32Slice fills dst, four bytes per element (IEEE 754 bits).
func (r *Reader) ReadFloat32Slice(dst []float32) error {
	for i := range dst {
		if _, err := io.ReadFull(r.r, r.scratch[:4]); err != nil {
			return err
		}
		dst[i] = math.Float32frombits(binary.LittleEndian.Uint32(r.scratch[:4]))
	}
	return nil
}

// ReadFloat64Slice fills dst, eight bytes per element (IEEE 754 bits).
func (r *Reader) ReadFloat64Slice(dst []float64) error {
	for i := range dst {
		if _, err := io.ReadFull(r.r, r.scratch[:8]); err != nil {
			return err
		}
		dst[i] = math.Float64frombits(binary.LittleEndian.Uint64(r.scratch[:8]))
	}
	return nil
}
