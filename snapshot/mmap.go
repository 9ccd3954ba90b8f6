package snapshot

import (
	"fmt"
	"os"

	"github.com/edsrzf/mmap-go"

	"github.com/hupe1980/longsparse/codec"
)

// Open memory-maps the snapshot at path and reconstructs a value with read.
// The mapping lives only for the duration of the call; decompression copies
// the stream out of the mapped region, so nothing in the result aliases it.
func Open[S any](path string, read func(*codec.Reader) (S, error)) (S, error) {
	var zero S

	f, err := os.Open(path)
	if err != nil {
		return zero, fmt.Errorf("snapshot: open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return zero, fmt.Errorf("snapshot: mmap %s: %w", path, err)
	}
	defer func() { _ = m.Unmap() }()

	return decode(m, read)
}
