package codec

import "fmt"

// Streamable is the serialization capability element types must provide to
// be stored in an object store. Both directions are required because the
// store reconstructs elements one at a time from the channel.
type Streamable interface {
	MarshalStream(w *Writer) error
	UnmarshalStream(r *Reader) error
}

// String adapts a plain Go string to the Streamable contract. Its pointer
// type satisfies Streamable, so object stores hold *codec.String elements.
type String string

// MarshalStream writes the string length-prefixed.
func (s *String) MarshalStream(w *Writer) error {
	return w.WriteString(string(*s))
}

// UnmarshalStream replaces the value with one read from the channel.
func (s *String) UnmarshalStream(r *Reader) error {
	v, err := r.ReadString()
	if err != nil {
		return err
	}
	*s = String(v)
	return nil
}

// UnsupportedElementKindError reports that a stream names an element kind
// the caller cannot reconstruct.
type UnsupportedElementKindError struct {
	// Kind is the element kind named in the stream.
	Kind string
	// Want is the element kind the caller is able to reconstruct.
	Want string
}

func (e *UnsupportedElementKindError) Error() string {
	return fmt.Sprintf("codec: unsupported element kind %q (can reconstruct %q)", e.Kind, e.Want)
}
