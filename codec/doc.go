// Package codec implements the binary serialization channel used by the
// sparse stores.
//
// The channel reads and writes little-endian primitive scalars, fixed-width
// scalar slices, and length-prefixed strings over ordinary io.Reader/Writer
// pairs. Element types that want to live in an object store implement
// Streamable, which is checked at compile time through the store's type
// parameter rather than probed at runtime.
//
// The byte layout is a stability boundary: bytes produced by one version of
// this package must stay decodable by later versions.
package codec
