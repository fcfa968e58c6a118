package snapshot

import (
	"fmt"

	"github.com/mhdkit/netbin/endian"
	"github.com/mhdkit/netbin/errs"
	"github.com/mhdkit/netbin/format"
)

// HeaderSize is the fixed size of a snapshot header in bytes.
const HeaderSize = 32

// Version is the snapshot layout version written by this package.
const Version = 1

// Magic identifies snapshot files.
const Magic = "MHDSNAP1"

// Header is the fixed-size prefix of a snapshot.
//
// Layout (little-endian):
//
//	0   magic        [8]byte  "MHDSNAP1"
//	8   version      uint8
//	9   compression  uint8    format.CompressionType
//	10  reserved     uint16
//	12  reserved     uint32
//	16  raw length   uint64   length of the uncompressed document
//	24  checksum     uint64   xxHash64 of the uncompressed document
//	32  payload
type Header struct {
	Version     uint8
	Compression format.CompressionType
	RawLength   uint64
	Checksum    uint64
}

var engine = endian.GetLittleEndianEngine()

// Bytes returns the encoded header.
func (h Header) Bytes() []byte {
	b := make([]byte, 0, HeaderSize)
	b = append(b, Magic...)
	b = append(b, h.Version, uint8(h.Compression), 0, 0)
	b = engine.AppendUint32(b, 0)
	b = engine.AppendUint64(b, h.RawLength)
	b = engine.AppendUint64(b, h.Checksum)

	return b
}

// ParseHeader decodes and validates a header.
//
// Returns errs.ErrInvalidSnapshotHeader for a short buffer, a wrong magic, an
// unsupported version or an unknown compression type.
func ParseHeader(b []byte) (Header, error) {
	if len(b) < HeaderSize {
		return Header{}, fmt.Errorf("%w: %d bytes, want %d", errs.ErrInvalidSnapshotHeader, len(b), HeaderSize)
	}
	if string(b[:8]) != Magic {
		return Header{}, fmt.Errorf("%w: bad magic %q", errs.ErrInvalidSnapshotHeader, b[:8])
	}

	h := Header{
		Version:     b[8],
		Compression: format.CompressionType(b[9]),
		RawLength:   engine.Uint64(b[16:24]),
		Checksum:    engine.Uint64(b[24:32]),
	}
	if h.Version != Version {
		return Header{}, fmt.Errorf("%w: version %d", errs.ErrInvalidSnapshotHeader, h.Version)
	}
	switch h.Compression {
	case format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4:
	default:
		return Header{}, fmt.Errorf("%w: compression %d", errs.ErrInvalidSnapshotHeader, b[9])
	}

	return h, nil
}
