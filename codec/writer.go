package codec

import (
	"bufio"
	"encoding/binary"
	"io"
	"math"
)

// Writer encodes primitive values to an underlying io.Writer.
// Output is buffered; callers must Flush when done.
type Writer struct {
	w       *bufio.Writer
	scratch [8]byte
}

// NewWriter creates a Writer on top of w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// Flush writes any buffered data to the underlying io.Writer.
func (w *Writer) Flush() error {
	return w.w.Flush()
}

// WriteInt32 writes a 32-bit signed integer.
func (w *Writer) WriteInt32(v int32) error {
	binary.LittleEndian.PutUint32(w.scratch[:4], uint32(v))
	_, err := w.w.Write(w.scratch[:4])
	return err
}

// WriteInt64 writes a 64-bit signed integer.
func (w *Writer) WriteInt64(v int64) error {
	binary.LittleEndian.PutUint64(w.scratch[:8], uint64(v))
	_, err := w.w.Write(w.scratch[:8])
	return err
}

// WriteString writes a length-prefixed UTF-8 string.
func (w *Writer) WriteString(s string) error {
	if err := w.WriteInt32(int32(len(s))); err != nil {
		return err
	}
	_, err := w.w.WriteString(s)
	return err
}

// WriteBoolSlice writes vals as one byte per element.
func (w *Writer) WriteBoolSlice(vals []bool) error {
	for _, v := range vals {
		b := byte(0)
		if v {
			b = 1
		}
		if err := w.w.WriteByte(b); err != nil {
			return err
		}
	}
	return nil
}

// WriteInt8Slice writes vals as one byte per element.
func (w *Writer) WriteInt8Slice(vals []int8) error {
	for _, v := range vals {
		if err := w.w.WriteByte(byte(v)); err != nil {
			return err
		}
	}
	return nil
}

// WriteInt16Slice writes vals as two bytes per element.
func (w *Writer) WriteInt16Slice(vals []int16) error {
	for _, v := range vals {
		binary.LittleEndian.PutUint16(w.scratch[:2], uint16(v))
		if _, err := w.w.Write(w.scratch[:2]); err != nil {
			return err
		}
	}
	return nil
}

// WriteInt32Slice writes vals as four bytes per element.
func (w *Writer) WriteInt32Slice(vals []int32) error {
	for _, v := range vals {
		if err := w.WriteInt32(v); err != nil {
			return err
		}
	}
	return nil
}

// WriteInt64Slice writes vals as eight bytes per element.
func (w *Writer) WriteInt64Slice(vals []int64) error {
	for _, v := range vals {
		if err := w.WriteInt64(v); err != nil {
			return err
		}
	}
	return nil
}

// WriteFloat32Slice writes vals as four bytes per element (IEEE 754 bits).
func (w *Writer) WriteFloat32Slice(vals []float32) error {
	for _, v := range vals {
		binary.LittleEndian.PutUint32(w.scratch[:4], math.Float32bits(v))
		if _, err := w.w.Write(w.scratch[:4]); err != nil {
			return err
		}
	}
	return nil
}

// WriteFloat64Slice writes vals as eight bytes per element (IEEE 754 bits).
func (w *Writer) WriteFloat64Slice(vals []float64) error {
	for _, v := range vals {
		binary.LittleEndian.PutUint64(w.scratch[:8], math.Float64bits(v))
		if _, err := w.w.Write(w.scratch[:8]); err != nil {
			return err
		}
	}
	return nil
}
