package codec

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/mhdkit/netbin/errs"
	"github.com/mhdkit/netbin/internal/pool"
)

// EncodeDocument writes magic followed by rec.
//
// Parameters:
//   - w: Destination stream
//   - magic: Document type identifier, written as a length-prefixed string
//   - rec: Top-level record
//   - opts: Encoder options
//
// Returns:
//   - error: Option, encode or I/O failure; w may hold a partial document
func EncodeDocument(w io.Writer, magic string, rec Record, opts ...Option) error {
	enc, err := NewEncoder(w, opts...)
	if err != nil {
		return err
	}

	err = enc.EncodeMagic(magic)
	if err == nil {
		err = enc.Encode(rec)
	}
	enc.cfg.logger.LogEncode(context.Background(), magic, enc.Written(), err)

	return err
}

// DecodeDocument reads a document of type magic into rec.
//
// A stream whose magic differs fails with errs.ErrFormatMismatch and rec is not
// touched. Bytes after the record are left unread.
func DecodeDocument(r io.Reader, magic string, rec Record, opts ...Option) error {
	dec, err := NewDecoder(r, opts...)
	if err != nil {
		return err
	}

	err = dec.DecodeMagic(magic)
	if err == nil {
		err = dec.Decode(rec)
	}
	dec.cfg.logger.LogDecode(context.Background(), magic, dec.Consumed(), err)

	return err
}

// Marshal encodes rec into a new byte slice.
func Marshal(rec Record, opts ...Option) ([]byte, error) {
	return marshal(func(enc *Encoder) error {
		return enc.Encode(rec)
	}, opts)
}

// MarshalDocument encodes magic and rec into a new byte slice.
//
// The document is staged in a pooled buffer and returned only when the whole
// encode succeeded.
func MarshalDocument(magic string, rec Record, opts ...Option) ([]byte, error) {
	var data []byte
	err := withStaging(func(buf *pool.ByteBuffer) error {
		// The magic's length prefix takes at most five bytes.
		buf.Grow(len(magic) + 5)
		if err := EncodeDocument(buf, magic, rec, opts...); err != nil {
			return err
		}
		data = bytes.Clone(buf.Bytes())

		return nil
	})

	return data, err
}

func marshal(fn func(*Encoder) error, opts []Option) ([]byte, error) {
	var data []byte
	err := withStaging(func(buf *pool.ByteBuffer) error {
		enc, err := NewEncoder(buf, opts...)
		if err != nil {
			return err
		}
		if err := fn(enc); err != nil {
			return err
		}
		data = bytes.Clone(buf.Bytes())

		return nil
	})

	return data, err
}

func withStaging(fn func(*pool.ByteBuffer) error) error {
	buf := pool.GetStagingBuffer()
	defer pool.PutStagingBuffer(buf)

	return fn(buf)
}

// Unmarshal decodes rec from data, which must hold exactly one record.
func Unmarshal(data []byte, rec Record, opts ...Option) error {
	r := bytes.NewReader(data)
	dec, err := NewDecoder(r, opts...)
	if err != nil {
		return err
	}
	if err := dec.Decode(rec); err != nil {
		return err
	}

	return checkTrailing(r)
}

// UnmarshalDocument decodes a document of type magic from data, which must hold
// exactly one document.
func UnmarshalDocument(data []byte, magic string, rec Record, opts ...Option) error {
	r := bytes.NewReader(data)
	if err := DecodeDocument(r, magic, rec, opts...); err != nil {
		return err
	}

	return checkTrailing(r)
}

func checkTrailing(r *bytes.Reader) error {
	if n := r.Len(); n > 0 {
		return fmt.Errorf("%w: %d bytes", errs.ErrTrailingData, n)
	}

	return nil
}
