package codec

import (
	"io"

	"github.com/mhdkit/netbin/encoding"
	"github.com/mhdkit/netbin/errs"
)

// Encoder writes records to a stream.
//
// An Encoder is not safe for concurrent use. Writes go straight to the
// underlying writer, so a failed Encode may leave a partial record behind;
// use Marshal when the output must be all-or-nothing.
type Encoder struct {
	w   *encoding.Writer
	cfg *Config
}

// NewEncoder creates an Encoder writing to w.
//
// Parameters:
//   - w: Destination stream
//   - opts: Byte order and logging options
//
// Returns:
//   - *Encoder: Encoder ready for use
//   - error: Invalid option
func NewEncoder(w io.Writer, opts ...Option) (*Encoder, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	return &Encoder{
		w:   encoding.NewWriter(w, cfg.engine),
		cfg: cfg,
	}, nil
}

// Writer exposes the primitive writer for custom Value implementations.
func (e *Encoder) Writer() *encoding.Writer {
	return e.w
}

// Written returns the number of bytes written so far.
func (e *Encoder) Written() int64 {
	return e.w.Written()
}

// Encode writes one record.
func (e *Encoder) Encode(rec Record) error {
	return Struct(rec).EncodeTo(e)
}

// EncodeValue writes one value.
func (e *Encoder) EncodeValue(v Value) error {
	return v.EncodeTo(e)
}

// EncodeMagic writes a document's magic string.
func (e *Encoder) EncodeMagic(magic string) error {
	if err := e.w.WriteString(magic); err != nil {
		return errs.WithField(err, "magic")
	}

	return nil
}
