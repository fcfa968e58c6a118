package encoding

import (
	"fmt"
	"io"
	"math"
	"unicode/utf8"

	"github.com/mhdkit/netbin/endian"
	"github.com/mhdkit/netbin/errs"
)

// DefaultMaxLength bounds decoded string lengths and sequence counts (64 MiB).
const DefaultMaxLength = 64 << 20

// readChunkSize is the largest buffer allocated up front from a decoded length.
// Longer strings grow as bytes arrive, so a corrupt prefix cannot force a huge allocation.
const readChunkSize = 64 << 10

// Reader decodes primitive values from an io.Reader.
//
// Reader consumes exactly the bytes of each value it decodes and buffers nothing,
// so the underlying stream is left positioned just after the last value read.
// After an error the position is unspecified and the stream must not be reused.
type Reader struct {
	r         io.Reader
	engine    endian.EndianEngine
	maxLength int
	scratch   [8]byte
	consumed  int64
}

// NewReader creates a Reader that decodes with the given byte order.
//
// Parameters:
//   - r: Source stream
//   - engine: Byte order for multi-byte values (nil selects little-endian)
//   - maxLength: Largest accepted string length and sequence count; 0 or less disables the limit
//
// Returns:
//   - *Reader: A new reader positioned at the current offset of r
func NewReader(r io.Reader, engine endian.EndianEngine, maxLength int) *Reader {
	if engine == nil {
		engine = endian.GetLittleEndianEngine()
	}
	if maxLength < 0 {
		maxLength = 0
	}

	return &Reader{r: r, engine: engine, maxLength: maxLength}
}

// Engine returns the byte order used by the reader.
func (r *Reader) Engine() endian.EndianEngine {
	return r.engine
}

// MaxLength returns the configured length limit (0 means unlimited).
func (r *Reader) MaxLength() int {
	return r.maxLength
}

// Consumed returns the number of bytes read from the underlying source so far.
func (r *Reader) Consumed() int64 {
	return r.consumed
}

func (r *Reader) fill(op string, n int) ([]byte, error) {
	buf := r.scratch[:n]
	m, err := io.ReadFull(r.r, buf)
	r.consumed += int64(m)
	if err != nil {
		return nil, errs.WrapIO(op, err)
	}

	return buf, nil
}

// ReadBool reads one byte; any nonzero value is true.
func (r *Reader) ReadBool() (bool, error) {
	b, err := r.ReadUint8()
	if err != nil {
		return false, err
	}

	return b != 0, nil
}

func (r *Reader) ReadInt8() (int8, error) {
	b, err := r.ReadUint8()
	return int8(b), err //nolint:gosec
}

func (r *Reader) ReadUint8() (uint8, error) {
	buf, err := r.fill("read uint8", 1)
	if err != nil {
		return 0, err
	}

	return buf[0], nil
}

func (r *Reader) ReadInt16() (int16, error) {
	v, err := r.readUint16("read int16")
	return int16(v), err //nolint:gosec
}

func (r *Reader) ReadUint16() (uint16, error) {
	return r.readUint16("read uint16")
}

func (r *Reader) readUint16(op string) (uint16, error) {
	buf, err := r.fill(op, 2)
	if err != nil {
		return 0, err
	}

	return r.engine.Uint16(buf), nil
}

func (r *Reader) ReadInt32() (int32, error) {
	v, err := r.readUint32("read int32")
	return int32(v), err //nolint:gosec
}

func (r *Reader) ReadUint32() (uint32, error) {
	return r.readUint32("read uint32")
}

func (r *Reader) readUint32(op string) (uint32, error) {
	buf, err := r.fill(op, 4)
	if err != nil {
		return 0, err
	}

	return r.engine.Uint32(buf), nil
}

func (r *Reader) ReadInt64() (int64, error) {
	v, err := r.readUint64("read int64")
	return int64(v), err //nolint:gosec
}

func (r *Reader) ReadUint64() (uint64, error) {
	return r.readUint64("read uint64")
}

func (r *Reader) readUint64(op string) (uint64, error) {
	buf, err := r.fill(op, 8)
	if err != nil {
		return 0, err
	}

	return r.engine.Uint64(buf), nil
}

// ReadFloat32 reads an IEEE-754 bit pattern; NaN payloads are preserved.
func (r *Reader) ReadFloat32() (float32, error) {
	v, err := r.readUint32("read float32")
	return math.Float32frombits(v), err
}

// ReadFloat64 reads an IEEE-754 bit pattern; NaN payloads are preserved.
func (r *Reader) ReadFloat64() (float64, error) {
	v, err := r.readUint64("read float64")
	return math.Float64frombits(v), err
}

// ReadLength reads a 7-bit length prefix.
//
// Groups are accumulated least significant first until one has the continuation
// bit clear. If the shift reaches 32 bits before that, the prefix is rejected with
// errs.ErrIllegalLength. A length above the configured maximum is rejected with
// errs.ErrLengthLimitExceeded before any payload byte is read.
func (r *Reader) ReadLength() (int, error) {
	var result uint64
	var shift uint
	for {
		buf, err := r.fill("read length", 1)
		if err != nil {
			return 0, err
		}
		b := buf[0]
		result |= uint64(b&0x7F) << shift
		if b&0x80 == 0 {
			break
		}
		shift += 7
		if shift >= 32 {
			return 0, errs.ErrIllegalLength
		}
	}

	if result > math.MaxInt {
		return 0, fmt.Errorf("%w: %d", errs.ErrIllegalLength, result)
	}
	if err := r.checkLimit(int(result)); err != nil {
		return 0, err
	}

	return int(result), nil
}

// ReadBytes reads a length-prefixed byte string.
func (r *Reader) ReadBytes() ([]byte, error) {
	n, err := r.ReadLength()
	if err != nil {
		return nil, err
	}

	return r.readN("read bytes", n)
}

// ReadString reads length-prefixed text and validates it as UTF-8.
func (r *Reader) ReadString() (string, error) {
	b, err := r.ReadBytes()
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", errs.ErrIllegalString
	}

	return string(b), nil
}

// ReadRaw reads exactly n unprefixed bytes.
func (r *Reader) ReadRaw(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", errs.ErrIllegalLength, n)
	}

	return r.readN("read raw", n)
}

func (r *Reader) readN(op string, n int) ([]byte, error) {
	if n == 0 {
		return []byte{}, nil
	}

	if n <= readChunkSize {
		buf := make([]byte, n)
		m, err := io.ReadFull(r.r, buf)
		r.consumed += int64(m)
		if err != nil {
			return nil, errs.WrapIO(op, err)
		}

		return buf, nil
	}

	buf, err := io.ReadAll(io.LimitReader(r.r, int64(n)))
	r.consumed += int64(len(buf))
	if err != nil {
		return nil, errs.WrapIO(op, err)
	}
	if len(buf) < n {
		return nil, errs.WrapIO(op, io.ErrUnexpectedEOF)
	}

	return buf, nil
}

func (r *Reader) checkLimit(n int) error {
	if r.maxLength > 0 && n > r.maxLength {
		return fmt.Errorf("%w: %d > %d", errs.ErrLengthLimitExceeded, n, r.maxLength)
	}

	return nil
}
