package codec

import (
	"bytes"
	"io"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func flushed(t *testing.T, fn func(w *Writer) error) *Reader {
	t.Helper()

	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, fn(w))
	require.NoError(t, w.Flush())
	return NewReader(&buf)
}

func TestScalarRoundTrip(t *testing.T) {
	r := flushed(t, func(w *Writer) error {
		if err := w.WriteInt32(-12345); err != nil {
			return err
		}
		if err := w.WriteInt64(math.MinInt64); err != nil {
			return err
		}
		return w.WriteString("hello, 世界")
	})

	i32, err := r.ReadInt32()
	require.NoError(t, err)
	assert.Equal(t, int32(-12345), i32)

	i64, err := r.ReadInt64()
	require.NoError(t, err)
	assert.Equal(t, int64(math.MinInt64), i64)

	s, err := r.ReadString()
	require.NoError(t, err)
	assert.Equal(t, "hello, 世界", s)
}

func TestSliceRoundTrip(t *testing.T) {
	bools := []bool{true, false, true}
	i8s := []int8{-128, 0, 127}
	i16s := []int16{-32768, 1, 32767}
	i32s := []int32{math.MinInt32, 0, math.MaxInt32}
	i64s := []int64{math.MinInt64, -1, math.MaxInt64}
	f32s := []float32{-1.5, 0, float32(math.Inf(1))}
	f64s := []float64{math.SmallestNonzeroFloat64, 0, math.MaxFloat64}

	r := flushed(t, func(w *Writer) error {
		if err := w.WriteBoolSlice(bools); err != nil {
			return err
		}
		if err := w.WriteInt8Slice(i8s); err != nil {
			return err
		}
		if err := w.WriteInt16Slice(i16s); err != nil {
			return err
		}
		if err := w.WriteInt32Slice(i32s); err != nil {
			return err
		}
		if err := w.WriteInt64Slice(i64s); err != nil {
			return err
		}
		if err := w.WriteFloat32Slice(f32s); err != nil {
			return err
		}
		return w.WriteFloat64Slice(f64s)
	})

	gotBools := make([]bool, 3)
	require.NoError(t, r.ReadBoolSlice(gotBools))
	assert.Equal(t, bools, gotBools)

	gotI8s := make([]int8, 3)
	require.NoError(t, r.ReadInt8Slice(gotI8s))
	assert.Equal(t, i8s, gotI8s)

	gotI16s := make([]int16, 3)
	require.NoError(t, r.ReadInt16Slice(gotI16s))
	assert.Equal(t, i16s, gotI16s)

	gotI32s := make([]int32, 3)
	require.NoError(t, r.ReadInt32Slice(gotI32s))
	assert.Equal(t, i32s, gotI32s)

	gotI64s := make([]int64, 3)
	require.NoError(t, r.ReadInt64Slice(gotI64s))
	assert.Equal(t, i64s, gotI64s)

	gotF32s := make([]float32, 3)
	require.NoError(t, r.ReadFloat32Slice(gotF32s))
	assert.Equal(t, f32s, gotF32s)

	gotF64s := make([]float64, 3)
	require.NoError(t, r.ReadFloat64Slice(gotF64s))
	assert.Equal(t, f64s, gotF64s)
}

func TestFloatBitsPreserved(t *testing.T) {
	nan := math.Float64frombits(0x7ff8000000000001)

	r := flushed(t, func(w *Writer) error {
		return w.WriteFloat64Slice([]float64{nan})
	})

	got := make([]float64, 1)
	require.NoError(t, r.ReadFloat64Slice(got))
	assert.Equal(t, uint64(0x7ff8000000000001), math.Float64bits(got[0]))
}

func TestReadShortInput(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{1, 2}))

	_, err := r.ReadInt32()
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestReadStringInvalidLength(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteInt32(-1))
	require.NoError(t, w.Flush())

	_, err := NewReader(&buf).ReadString()
	assert.Error(t, err)
}

func TestStringStreamable(t *testing.T) {
	s := String("payload")

	r := flushed(t, func(w *Writer) error {
		return s.MarshalStream(w)
	})

	var got String
	require.NoError(t, got.UnmarshalStream(r))
	assert.Equal(t, s, got)
}

func TestUnsupportedElementKindError(t *testing.T) {
	err := &UnsupportedElementKindError{Kind: "foo.Bar", Want: "codec.String"}
	assert.Contains(t, err.Error(), "foo.Bar")
	assert.Contains(t, err.Error(), "codec.String")
}
