package snapshot

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression wraps a body stream in a compressing writer or a decompressing
// reader. Implementations are stateless; the returned writer must be closed
// to flush its final frame, the returned reader to release decoder resources.
type Compression interface {
	Name() string
	NewWriter(w io.Writer) (io.WriteCloser, error)
	NewReader(r io.Reader) (io.ReadCloser, error)
}

// byName resolves a compression codec from its stable header name.
func byName(name string) (Compression, bool) {
	switch name {
	case "", "none":
		return noneCompression{}, true
	case "lz4":
		return lz4Compression{}, true
	case "zstd":
		return zstdCompression{}, true
	default:
		return nil, false
	}
}

type noneCompression struct{}

func (noneCompression) Name() string { return "none" }

func (noneCompression) NewWriter(w io.Writer) (io.WriteCloser, error) {
	return nopWriteCloser{w}, nil
}

func (noneCompression) NewReader(r io.Reader) (io.ReadCloser, error) {
	return io.NopCloser(r), nil
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

type lz4Compression struct{}

func (lz4Compression) Name() string { return "lz4" }

func (lz4Compression) NewWriter(w io.Writer) (io.WriteCloser, error) {
	return lz4.NewWriter(w), nil
}

func (lz4Compression) NewReader(r io.Reader) (io.ReadCloser, error) {
	return io.NopCloser(lz4.NewReader(r)), nil
}

type zstdCompression struct{}

func (zstdCompression) Name() string { return "zstd" }

func (zstdCompression) NewWriter(w io.Writer) (io.WriteCloser, error) {
	zw, err := zstd.NewWriter(w)
	if err != nil {
		return nil, fmt.Errorf("snapshot: create zstd writer: %w", err)
	}
	return zw, nil
}

func (zstdCompression) NewReader(r io.Reader) (io.ReadCloser, error) {
	zr, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("snapshot: create zstd reader: %w", err)
	}
	// Closing the IOReadCloser releases the decoder's goroutines.
	return zr.IOReadCloser(), nil
}
