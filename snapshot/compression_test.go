package snapshot

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByName(t *testing.T) {
	for name, want := range map[string]string{
		"":     "none",
		"none": "none",
		"lz4":  "lz4",
		"zstd": "zstd",
	} {
		comp, ok := byName(name)
		require.True(t, ok, "name %q", name)
		assert.Equal(t, want, comp.Name())
	}

	_, ok := byName("gzip")
	assert.False(t, ok)
}

func TestCompressionRoundTripAndClose(t *testing.T) {
	payload := bytes.Repeat([]byte("longsparse"), 100)

	for _, name := range []string{"none", "lz4", "zstd"} {
		t.Run(name, func(t *testing.T) {
			comp, ok := byName(name)
			require.True(t, ok)

			var buf bytes.Buffer
			w, err := comp.NewWriter(&buf)
			require.NoError(t, err)
			_, err = w.Write(payload)
			require.NoError(t, err)
			require.NoError(t, w.Close())

			r, err := comp.NewReader(bytes.NewReader(buf.Bytes()))
			require.NoError(t, err)

			got := make([]byte, len(payload))
			_, err = io.ReadFull(r, got)
			require.NoError(t, err)
			assert.Equal(t, payload, got)

			// Every reader must release its resources on Close.
			assert.NoError(t, r.Close())
		})
	}
}
