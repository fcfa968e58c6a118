// Package netbin reads and writes the compact binary record format used by
// the Mids Reborn powers database and similar .NET BinaryWriter-style files.
//
// A document is a length-prefixed magic string followed by one record. Records
// are flat concatenations of their fields in declaration order with no tags or
// framing, so the ordered field list of each record type is the wire contract.
//
// # Core Features
//
//   - Little-endian fixed-width numbers by default, big-endian selectable
//   - 7-bit length prefixes for strings and byte strings, validated as UTF-8
//   - Sequences prefixed with count-1, plus the legacy double-prefixed layout
//   - Explicit enumeration tables with gaps, and 32-bit flag sets that keep
//     unknown bits across a round trip
//   - Field paths on every decode and encode error ("powers[3].effects[0].effect_type")
//   - Configurable bounds on decoded lengths; malformed input never panics
//
// # Basic Usage
//
// A record lists its fields in wire order:
//
//	type Point struct {
//	    Name string
//	    X, Y int32
//	}
//
//	func (p *Point) Fields() []codec.Field {
//	    return []codec.Field{
//	        codec.F("name", codec.String(&p.Name)),
//	        codec.F("x", codec.Int32(&p.X)),
//	        codec.F("y", codec.Int32(&p.Y)),
//	    }
//	}
//
// Encoding and decoding a document:
//
//	data, err := netbin.MarshalDocument("Point Database", &Point{Name: "origin"})
//
//	var p Point
//	err = netbin.UnmarshalDocument(data, "Point Database", &p)
//
// # Package Structure
//
// This package provides top-level wrappers around the codec package for the
// common cases. Value constructors, streaming encoders and decoders live in
// codec; the Mids schema lives in mids; compressed containers live in snapshot.
package netbin

import (
	"io"

	"github.com/mhdkit/netbin/codec"
	"github.com/mhdkit/netbin/internal/hash"
)

// Option configures encoding and decoding. See codec.WithLittleEndian,
// codec.WithBigEndian, codec.WithMaxLength and codec.WithLogger.
type Option = codec.Option

// Record is a value with an ordered field list.
type Record = codec.Record

// Encode writes rec to w without a document header.
//
// Parameters:
//   - w: Destination stream
//   - rec: Record to encode
//   - opts: Optional configuration (byte order, logger)
//
// Returns:
//   - error: Configuration, encode or I/O failure; bytes may already have been written
func Encode(w io.Writer, rec Record, opts ...Option) error {
	enc, err := codec.NewEncoder(w, opts...)
	if err != nil {
		return err
	}

	return enc.Encode(rec)
}

// Decode reads rec from r without a document header.
//
// Parameters:
//   - r: Source stream
//   - rec: Record to fill
//   - opts: Optional configuration (byte order, length bound, logger)
//
// Returns:
//   - error: Configuration, decode or I/O failure
func Decode(r io.Reader, rec Record, opts ...Option) error {
	dec, err := codec.NewDecoder(r, opts...)
	if err != nil {
		return err
	}

	return dec.Decode(rec)
}

// EncodeDocument writes the magic string followed by rec.
func EncodeDocument(w io.Writer, magic string, rec Record, opts ...Option) error {
	return codec.EncodeDocument(w, magic, rec, opts...)
}

// DecodeDocument checks the magic string and reads rec.
//
// A different magic fails with errs.ErrFormatMismatch before any of the record
// is read.
func DecodeDocument(r io.Reader, magic string, rec Record, opts ...Option) error {
	return codec.DecodeDocument(r, magic, rec, opts...)
}

// Marshal encodes rec into a new byte slice. Nothing is returned unless the
// whole record encoded.
func Marshal(rec Record, opts ...Option) ([]byte, error) {
	return codec.Marshal(rec, opts...)
}

// Unmarshal decodes rec from data, which must hold exactly one record.
func Unmarshal(data []byte, rec Record, opts ...Option) error {
	return codec.Unmarshal(data, rec, opts...)
}

// MarshalDocument encodes a complete document into a new byte slice.
func MarshalDocument(magic string, rec Record, opts ...Option) ([]byte, error) {
	return codec.MarshalDocument(magic, rec, opts...)
}

// UnmarshalDocument decodes a complete document held in data.
func UnmarshalDocument(data []byte, magic string, rec Record, opts ...Option) error {
	return codec.UnmarshalDocument(data, magic, rec, opts...)
}

// Fingerprint returns the 64-bit xxHash of an encoded document. Equal
// documents have equal fingerprints, which makes it a cheap way to detect
// changes between two files.
func Fingerprint(data []byte) uint64 {
	return hash.Sum(data)
}
