package longsparse

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/longsparse/codec"
)

// point is a minimal streamable element for object store tests.
type point struct {
	X, Y int32
}

func (p *point) MarshalStream(w *codec.Writer) error {
	if err := w.WriteInt32(p.X); err != nil {
		return err
	}
	return w.WriteInt32(p.Y)
}

func (p *point) UnmarshalStream(r *codec.Reader) error {
	x, err := r.ReadInt32()
	if err != nil {
		return err
	}
	y, err := r.ReadInt32()
	if err != nil {
		return err
	}
	p.X, p.Y = x, y
	return nil
}

func TestObjectStoreBasics(t *testing.T) {
	s := NewObject[point]()

	a := &point{X: 1, Y: 2}
	b := &point{X: 3, Y: 4}
	s.Put(20, b)
	s.Put(10, a)

	assert.Equal(t, []int64{10, 20}, s.Keys())
	assert.Same(t, a, s.Get(10))
	assert.Same(t, b, s.Get(20))
	assert.Nil(t, s.Get(99))
}

func TestObjectStoreIndexOfValueIsReferenceIdentity(t *testing.T) {
	s := NewObject[point]()

	a := &point{X: 1}
	s.Put(1, a)
	s.Put(2, &point{X: 1}) // equal content, distinct reference

	assert.Equal(t, 0, s.IndexOfValue(a))
	assert.Equal(t, -1, s.IndexOfValue(&point{X: 1}))
}

func TestObjectStoreDeleteReleasesReference(t *testing.T) {
	s := NewObject[point]()
	s.Put(1, &point{X: 1})
	s.Put(2, &point{X: 2})

	s.Delete(2)

	assert.Equal(t, 1, s.Size())
	// The vacated slot must not pin the removed element.
	assert.Nil(t, s.values[1])
}

func TestObjectStoreCloneSharesReferences(t *testing.T) {
	s := NewObject[point]()
	a := &point{X: 1}
	s.Put(1, a)

	c := s.Clone()

	// The index is deep-copied, the elements are not.
	assert.Same(t, a, c.Get(1))
	c.Put(2, &point{X: 2})
	assert.Equal(t, 1, s.Size())
}

func TestObjectStoreSerializeRoundTrip(t *testing.T) {
	s := NewObject[point](WithInitialCapacity(2))
	s.Put(5, &point{X: 1, Y: -1})
	s.Put(-3, &point{X: 7, Y: 9})

	got, err := ReadObject[point](codec.NewReader(writeToBuffer(t, s)))
	require.NoError(t, err)

	assert.Equal(t, []int64{-3, 5}, got.Keys())
	assert.Equal(t, &point{X: 7, Y: 9}, got.Get(-3))
	assert.Equal(t, &point{X: 1, Y: -1}, got.Get(5))
}

func TestObjectStoreStringElements(t *testing.T) {
	s := NewObject[codec.String]()

	a := codec.String("A")
	s.Put(5, &a)

	got, err := ReadObject[codec.String](codec.NewReader(writeToBuffer(t, s)))
	require.NoError(t, err)
	assert.Equal(t, codec.String("A"), *got.Get(5))
}

func TestObjectStoreKindTagMismatch(t *testing.T) {
	s := NewObject[point]()
	s.Put(1, &point{X: 1})

	_, err := ReadObject[codec.String](codec.NewReader(writeToBuffer(t, s)))

	var uek *codec.UnsupportedElementKindError
	require.ErrorAs(t, err, &uek)
	assert.Equal(t, "longsparse.point", uek.Kind)
	assert.Equal(t, "codec.String", uek.Want)
}

func TestObjectStoreScalarStreamHasNoTag(t *testing.T) {
	// Scalar streams carry no element kind tag, so feeding one to an object
	// reader must fail rather than misparse.
	s := NewInt64()
	s.Put(1, 10)

	var buf bytes.Buffer
	w := codec.NewWriter(&buf)
	require.NoError(t, s.WriteTo(w))
	require.NoError(t, w.Flush())

	_, err := ReadObject[point](codec.NewReader(&buf))
	assert.Error(t, err)
}
