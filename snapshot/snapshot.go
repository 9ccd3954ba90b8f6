package snapshot

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/time/rate"

	"github.com/hupe1980/longsparse/codec"
)

// StreamWriter is anything that serializes itself through the codec channel.
// Every store type satisfies it.
type StreamWriter interface {
	WriteTo(w *codec.Writer) error
}

type options struct {
	compression string
	limiter     *rate.Limiter
	logger      *slog.Logger
}

// Option configures snapshot IO.
type Option func(*options)

// WithCompression selects the body compression by name ("none", "lz4",
// "zstd"). The default is "none". The name is recorded in the header, so
// loading needs no configuration.
func WithCompression(name string) Option {
	return func(o *options) { o.compression = name }
}

// WithIOLimit paces file writes through the given limiter so background
// snapshots don't saturate disk bandwidth.
func WithIOLimit(l *rate.Limiter) Option {
	return func(o *options) { o.limiter = l }
}

// WithLogger sets the logger for snapshot IO. Logging is off by default.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

func applyOptions(opts []Option) options {
	o := options{
		compression: "none",
		logger:      slog.New(slog.DiscardHandler),
	}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

// Save serializes src and writes it to path atomically (temp file + rename).
func Save(ctx context.Context, path string, src StreamWriter, opts ...Option) error {
	o := applyOptions(opts)

	comp, ok := byName(o.compression)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCompression, o.compression)
	}

	// Serialize to memory first; the digest covers the raw stream.
	var raw bytes.Buffer
	cw := codec.NewWriter(&raw)
	if err := src.WriteTo(cw); err != nil {
		return fmt.Errorf("snapshot: serialize: %w", err)
	}
	if err := cw.Flush(); err != nil {
		return fmt.Errorf("snapshot: serialize: %w", err)
	}
	rawBytes := raw.Bytes()
	digest := xxhash.Sum64(rawBytes)

	tmp := path + ".tmp"
	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("snapshot: create %s: %w", tmp, err)
	}
	defer func() {
		if f != nil {
			_ = f.Close()
			_ = os.Remove(tmp)
		}
	}()

	var out io.Writer = f
	if o.limiter != nil {
		out = &limitedWriter{ctx: ctx, w: f, limiter: o.limiter}
	}

	if _, err := out.Write(encodeHeader(comp.Name())); err != nil {
		return fmt.Errorf("snapshot: write header: %w", err)
	}

	body, err := comp.NewWriter(out)
	if err != nil {
		return err
	}
	if _, err := body.Write(rawBytes); err != nil {
		return fmt.Errorf("snapshot: write body: %w", err)
	}
	if err := body.Close(); err != nil {
		return fmt.Errorf("snapshot: finish body: %w", err)
	}

	if _, err := out.Write(encodeFooter(uint64(len(rawBytes)), digest)); err != nil {
		return fmt.Errorf("snapshot: write footer: %w", err)
	}

	if err := f.Sync(); err != nil {
		return fmt.Errorf("snapshot: sync: %w", err)
	}
	if err := f.Close(); err != nil {
		f = nil
		_ = os.Remove(tmp)
		return fmt.Errorf("snapshot: close: %w", err)
	}
	f = nil

	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("snapshot: rename: %w", err)
	}

	o.logger.Debug("snapshot saved",
		slog.String("path", path),
		slog.String("compression", comp.Name()),
		slog.Int("raw_bytes", len(rawBytes)),
	)
	return nil
}

// Load reads the snapshot at path and reconstructs a value with read, which
// receives the verified serialization stream. Typical use:
//
//	s, err := snapshot.Load(path, longsparse.ReadInt64)
func Load[S any](path string, read func(*codec.Reader) (S, error)) (S, error) {
	var zero S

	data, err := os.ReadFile(path)
	if err != nil {
		return zero, fmt.Errorf("snapshot: read %s: %w", path, err)
	}
	return decode(data, read)
}

// maxExpansion bounds how much larger than the compressed body the footer
// may claim the raw stream to be. Both supported codecs stay well under it;
// anything beyond is a corrupt or hostile footer, not a plausible snapshot.
const maxExpansion = 1 << 10

// decode parses a complete snapshot image: header, compressed body, footer.
func decode[S any](data []byte, read func(*codec.Reader) (S, error)) (S, error) {
	var zero S

	compression, bodyOffset, err := decodeHeader(data)
	if err != nil {
		return zero, err
	}
	rawLen, digest, err := decodeFooter(data)
	if err != nil {
		return zero, err
	}
	if len(data) < bodyOffset+footerSize {
		return zero, ErrTruncated
	}
	body := data[bodyOffset : len(data)-footerSize]

	// The raw length drives an allocation, so it must be validated before it
	// is trusted.
	if rawLen > uint64(len(body))*maxExpansion {
		return zero, fmt.Errorf("%w: %d bytes claimed from a %d-byte body", ErrInvalidLength, rawLen, len(body))
	}

	comp, ok := byName(compression)
	if !ok {
		return zero, fmt.Errorf("%w: %q", ErrUnknownCompression, compression)
	}
	br, err := comp.NewReader(bytes.NewReader(body))
	if err != nil {
		return zero, err
	}
	defer func() { _ = br.Close() }()

	raw := make([]byte, rawLen)
	if _, err := io.ReadFull(br, raw); err != nil {
		return zero, fmt.Errorf("snapshot: decompress body: %w", err)
	}
	if xxhash.Sum64(raw) != digest {
		return zero, ErrChecksumMismatch
	}

	return read(codec.NewReader(bytes.NewReader(raw)))
}

// limitedWriter paces writes through a rate limiter, in chunks no larger
// than the limiter's burst.
type limitedWriter struct {
	ctx     context.Context
	w       io.Writer
	limiter *rate.Limiter
}

func (lw *limitedWriter) Write(p []byte) (int, error) {
	written := 0
	for len(p) > 0 {
		chunk := p
		if burst := lw.limiter.Burst(); len(chunk) > burst {
			chunk = chunk[:burst]
		}
		if err := lw.limiter.WaitN(lw.ctx, len(chunk)); err != nil {
			return written, err
		}
		n, err := lw.w.Write(chunk)
		written += n
		if err != nil {
			return written, err
		}
		p = p[n:]
	}
	return written, nil
}
