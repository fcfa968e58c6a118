// Package snapshot stores encoded documents in a compressed, checksummed
// container.
//
// A snapshot is a 32-byte Header followed by the document compressed as a
// single block. The checksum covers the uncompressed document, so a snapshot
// that decompresses cleanly but was damaged before compression is still caught.
package snapshot

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/mhdkit/netbin/codec"
	"github.com/mhdkit/netbin/compress"
	"github.com/mhdkit/netbin/errs"
	"github.com/mhdkit/netbin/format"
	"github.com/mhdkit/netbin/internal/hash"
	"github.com/mhdkit/netbin/internal/logging"
	"github.com/mhdkit/netbin/internal/options"
)

// DefaultMaxRawLength bounds the document size accepted by Read.
const DefaultMaxRawLength = 1 << 30

type config struct {
	compression  format.CompressionType
	maxRawLength uint64
	logger       *logging.Logger
}

// Option configures Write and Read.
type Option = options.Option[*config]

// WithCompression selects the codec used by Write. The default is Zstd.
func WithCompression(ct format.CompressionType) Option {
	return options.New(func(c *config) error {
		if _, err := compress.GetCodec(ct); err != nil {
			return err
		}
		c.compression = ct

		return nil
	})
}

// WithMaxRawLength bounds the document size Read accepts.
func WithMaxRawLength(n uint64) Option {
	return options.NoError(func(c *config) {
		c.maxRawLength = n
	})
}

// WithLogger routes snapshot records to l.
func WithLogger(l *slog.Logger) Option {
	return options.NoError(func(c *config) {
		c.logger = logging.Wrap(l)
	})
}

func newConfig(opts []Option) (*config, error) {
	cfg := &config{
		compression:  format.CompressionZstd,
		maxRawLength: DefaultMaxRawLength,
		logger:       logging.Noop(),
	}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Write stores document as a snapshot.
//
// Parameters:
//   - w: Destination
//   - document: Encoded document, typically from codec.MarshalDocument
//   - opts: Compression and logging options
//
// Returns:
//   - compress.CompressionStats: Raw and stored payload sizes
//   - error: Option, compression or I/O failure
func Write(w io.Writer, document []byte, opts ...Option) (compress.CompressionStats, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return compress.CompressionStats{}, err
	}

	stats, err := write(w, document, cfg)
	cfg.logger.LogSnapshot(context.Background(), "write", cfg.compression.String(),
		stats.OriginalSize, stats.CompressedSize, err)

	return stats, err
}

func write(w io.Writer, document []byte, cfg *config) (compress.CompressionStats, error) {
	stats := compress.CompressionStats{
		Algorithm:    cfg.compression,
		OriginalSize: int64(len(document)),
	}

	c, err := compress.GetCodec(cfg.compression)
	if err != nil {
		return stats, err
	}
	payload, err := c.Compress(document)
	if err != nil {
		return stats, fmt.Errorf("compress snapshot: %w", err)
	}
	stats.CompressedSize = int64(len(payload))

	h := Header{
		Version:     Version,
		Compression: cfg.compression,
		RawLength:   uint64(len(document)),
		Checksum:    hash.Sum(document),
	}
	if _, err := w.Write(h.Bytes()); err != nil {
		return stats, errs.WrapIO("write snapshot header", err)
	}
	if _, err := w.Write(payload); err != nil {
		return stats, errs.WrapIO("write snapshot payload", err)
	}

	return stats, nil
}

// Read loads the document stored in a snapshot and verifies its checksum.
//
// The payload extends to the end of r.
func Read(r io.Reader, opts ...Option) ([]byte, Header, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, Header{}, err
	}

	doc, h, stored, err := read(r, cfg)
	cfg.logger.LogSnapshot(context.Background(), "read", h.Compression.String(),
		int64(len(doc)), stored, err)

	return doc, h, err
}

func read(r io.Reader, cfg *config) ([]byte, Header, int64, error) {
	buf := make([]byte, HeaderSize)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, Header{}, 0, errs.WrapIO("read snapshot header", err)
	}
	h, err := ParseHeader(buf)
	if err != nil {
		return nil, Header{}, 0, err
	}
	if h.RawLength > math.MaxInt {
		return nil, h, 0, fmt.Errorf("%w: document of %d bytes is not addressable",
			errs.ErrInvalidSnapshotHeader, h.RawLength)
	}
	if cfg.maxRawLength > 0 && h.RawLength > cfg.maxRawLength {
		return nil, h, 0, fmt.Errorf("%w: document of %d bytes exceeds limit %d",
			errs.ErrInvalidSnapshotHeader, h.RawLength, cfg.maxRawLength)
	}

	// Block codecs never expand input by more than a small fraction.
	limit := min(h.RawLength+h.RawLength/64+4096, math.MaxInt64-1)
	payload, err := io.ReadAll(io.LimitReader(r, int64(limit)+1)) //nolint:gosec
	if err != nil {
		return nil, h, int64(len(payload)), errs.WrapIO("read snapshot payload", err)
	}
	stored := int64(len(payload))
	if uint64(stored) > limit {
		return nil, h, stored, fmt.Errorf("%w: payload exceeds %d bytes", errs.ErrInvalidSnapshotHeader, limit)
	}

	c, err := compress.GetCodec(h.Compression)
	if err != nil {
		return nil, h, stored, err
	}
	if bound := compress.MaxDecompressedLen(c, len(payload)); h.RawLength > bound {
		return nil, h, stored, fmt.Errorf("%w: %d payload bytes cannot hold %d raw bytes (%s holds at most %d)",
			errs.ErrChecksumMismatch, stored, h.RawLength, h.Compression, bound)
	}
	doc, err := compress.DecompressSize(c, payload, int(h.RawLength)) //nolint:gosec
	if err != nil {
		return nil, h, stored, fmt.Errorf("%w: decompress: %w", errs.ErrChecksumMismatch, err)
	}
	if sum := hash.Sum(doc); sum != h.Checksum {
		return nil, h, stored, fmt.Errorf("%w: got %016x, want %016x", errs.ErrChecksumMismatch, sum, h.Checksum)
	}

	return doc, h, stored, nil
}

// Encode marshals rec as a document of type magic and stores it as a snapshot.
func Encode(w io.Writer, magic string, rec codec.Record, opts ...Option) (compress.CompressionStats, error) {
	doc, err := codec.MarshalDocument(magic, rec)
	if err != nil {
		return compress.CompressionStats{}, err
	}

	return Write(w, doc, opts...)
}

// Decode reads a snapshot and unmarshals the document it holds into rec.
func Decode(r io.Reader, magic string, rec codec.Record, opts ...Option) (Header, error) {
	doc, h, err := Read(r, opts...)
	if err != nil {
		return h, err
	}

	return h, codec.UnmarshalDocument(doc, magic, rec)
}

// IsSnapshot reports whether data starts with the snapshot magic.
func IsSnapshot(data []byte) bool {
	return bytes.HasPrefix(data, []byte(Magic))
}
