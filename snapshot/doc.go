// Package snapshot persists serialized stores to files.
//
// A snapshot file is a small header naming the compression codec, the
// compressed serialization stream, and a footer carrying the uncompressed
// length and an XXH64 digest of the raw stream. The digest is verified on
// every load, so silent corruption surfaces as ErrChecksumMismatch instead
// of a half-decoded store.
//
// Compression is selected by stable name ("none", "lz4", "zstd"); the name
// is written into the header so files stay self-describing.
package snapshot
