package codec

import (
	"errors"
	"fmt"
	"io"

	"github.com/mhdkit/netbin/encoding"
	"github.com/mhdkit/netbin/errs"
)

// Decoder reads records from a stream.
//
// A Decoder is not safe for concurrent use. A failed Decode leaves the target
// record partially overwritten.
type Decoder struct {
	r   *encoding.Reader
	cfg *Config
}

// NewDecoder creates a Decoder reading from r.
//
// Parameters:
//   - r: Source stream; wrap it in a bufio.Reader when it is unbuffered
//   - opts: Byte order, length limit and logging options
//
// Returns:
//   - *Decoder: Decoder ready for use
//   - error: Invalid option
func NewDecoder(r io.Reader, opts ...Option) (*Decoder, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	return &Decoder{
		r:   encoding.NewReader(r, cfg.engine, cfg.maxLength),
		cfg: cfg,
	}, nil
}

// Reader exposes the primitive reader for custom Value implementations.
func (d *Decoder) Reader() *encoding.Reader {
	return d.r
}

// Consumed returns the number of bytes read so far.
func (d *Decoder) Consumed() int64 {
	return d.r.Consumed()
}

// Decode reads one record into rec.
func (d *Decoder) Decode(rec Record) error {
	return Struct(rec).DecodeFrom(d)
}

// DecodeValue reads one value.
func (d *Decoder) DecodeValue(v Value) error {
	return v.DecodeFrom(d)
}

// DecodeMagic reads a magic string and compares it with want.
//
// The length prefix is checked before the body is read, so a stream of another
// document type is rejected after consuming at most the prefix bytes. A prefix
// that is not a usable length also means another document type; read errors
// are returned as they are.
func (d *Decoder) DecodeMagic(want string) error {
	n, err := d.r.ReadLength()
	if errors.Is(err, errs.ErrIllegalLength) || errors.Is(err, errs.ErrLengthLimitExceeded) {
		return fmt.Errorf("%w: magic length prefix: %w", errs.ErrFormatMismatch, err)
	}
	if err != nil {
		return errs.WithField(err, "magic")
	}
	if n != len(want) {
		return fmt.Errorf("%w: magic length %d, want %d", errs.ErrFormatMismatch, n, len(want))
	}

	got, err := d.r.ReadRaw(n)
	if err != nil {
		return errs.WithField(err, "magic")
	}
	if string(got) != want {
		return fmt.Errorf("%w: magic %q, want %q", errs.ErrFormatMismatch, got, want)
	}

	return nil
}
