package longsparse

import (
	"reflect"

	"github.com/hupe1980/longsparse/codec"
)

// objectWidth is the byte width of a reference slot on 64-bit platforms,
// used only for aligned buffer sizing.
const objectWidth = 8

// Element constrains an object store's element pointer type to the
// serialization capability. Binding the capability at compile time replaces
// the runtime interface walk a reflective implementation would need.
type Element[T any] interface {
	*T
	codec.Streamable
}

// NewObject creates a store of *T references. The element type carries its
// own serialization through codec.Streamable:
//
//	s := longsparse.NewObject[codec.String]()
//	s.Put(5, ptrTo(codec.String("A")))
func NewObject[T any, P Element[T]](opts ...Option) *Store[P] {
	return newStore(objectKind[T, P](), opts)
}

func objectKind[T any, P Element[T]]() *kind[P] {
	return &kind[P]{
		width: objectWidth,
		tag:   elementKindName[T](),
		writeValues: func(w *codec.Writer, vals []P) error {
			for _, v := range vals {
				if err := v.MarshalStream(w); err != nil {
					return err
				}
			}
			return nil
		},
		readValues: func(r *codec.Reader, dst []P) error {
			for i := range dst {
				var elem T
				p := P(&elem)
				if err := p.UnmarshalStream(r); err != nil {
					return err
				}
				dst[i] = p
			}
			return nil
		},
	}
}

// elementKindName derives the stable type tag written before object
// payloads, e.g. "codec.String".
func elementKindName[T any]() string {
	return reflect.TypeOf((*T)(nil)).Elem().String()
}
