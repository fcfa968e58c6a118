package encoding

import (
	"fmt"
	"io"
	"math"

	"github.com/mhdkit/netbin/endian"
	"github.com/mhdkit/netbin/errs"
)

// MaxLengthGroups is the number of 7-bit groups a length prefix may span.
const MaxLengthGroups = 5

// MaxEncodableLength is the largest length that fits in MaxLengthGroups groups.
const MaxEncodableLength = 1<<(7*MaxLengthGroups) - 1

// Writer encodes primitive values to an io.Writer.
//
// Writer performs no buffering of its own: every call issues exactly one Write on
// the underlying sink (two for byte strings). Wrap the sink in a bufio.Writer or
// encode to a staging buffer when that matters.
type Writer struct {
	w       io.Writer
	engine  endian.EndianEngine
	scratch [16]byte
	written int64
}

// NewWriter creates a Writer that encodes with the given byte order.
//
// Parameters:
//   - w: Destination stream
//   - engine: Byte order for multi-byte values (nil selects little-endian)
//
// Returns:
//   - *Writer: A new writer positioned at the current end of w
func NewWriter(w io.Writer, engine endian.EndianEngine) *Writer {
	if engine == nil {
		engine = endian.GetLittleEndianEngine()
	}

	return &Writer{w: w, engine: engine}
}

// Engine returns the byte order used by the writer.
func (w *Writer) Engine() endian.EndianEngine {
	return w.engine
}

// Written returns the number of bytes accepted by the underlying sink so far.
func (w *Writer) Written() int64 {
	return w.written
}

func (w *Writer) write(op string, b []byte) error {
	n, err := w.w.Write(b)
	w.written += int64(n)
	if err != nil {
		return errs.WrapIO(op, err)
	}
	if n < len(b) {
		return errs.WrapIO(op, io.ErrShortWrite)
	}

	return nil
}

// WriteBool writes v as a single byte, 1 for true and 0 for false.
func (w *Writer) WriteBool(v bool) error {
	var b uint8
	if v {
		b = 1
	}

	return w.WriteUint8(b)
}

func (w *Writer) WriteInt8(v int8) error {
	return w.WriteUint8(uint8(v)) //nolint:gosec
}

func (w *Writer) WriteUint8(v uint8) error {
	w.scratch[0] = v
	return w.write("write uint8", w.scratch[:1])
}

func (w *Writer) WriteInt16(v int16) error {
	return w.write("write int16", w.engine.AppendUint16(w.scratch[:0], uint16(v))) //nolint:gosec
}

func (w *Writer) WriteUint16(v uint16) error {
	return w.write("write uint16", w.engine.AppendUint16(w.scratch[:0], v))
}

func (w *Writer) WriteInt32(v int32) error {
	return w.write("write int32", w.engine.AppendUint32(w.scratch[:0], uint32(v))) //nolint:gosec
}

func (w *Writer) WriteUint32(v uint32) error {
	return w.write("write uint32", w.engine.AppendUint32(w.scratch[:0], v))
}

func (w *Writer) WriteInt64(v int64) error {
	return w.write("write int64", w.engine.AppendUint64(w.scratch[:0], uint64(v))) //nolint:gosec
}

func (w *Writer) WriteUint64(v uint64) error {
	return w.write("write uint64", w.engine.AppendUint64(w.scratch[:0], v))
}

// WriteFloat32 writes the IEEE-754 bit pattern of v.
func (w *Writer) WriteFloat32(v float32) error {
	return w.write("write float32", w.engine.AppendUint32(w.scratch[:0], math.Float32bits(v)))
}

// WriteFloat64 writes the IEEE-754 bit pattern of v.
func (w *Writer) WriteFloat64(v float64) error {
	return w.write("write float64", w.engine.AppendUint64(w.scratch[:0], math.Float64bits(v)))
}

// WriteLength writes n as a minimal 7-bit length prefix.
//
// Returns errs.ErrIllegalLength if n is negative or needs more than
// MaxLengthGroups groups; nothing is written in that case.
func (w *Writer) WriteLength(n int) error {
	if err := checkLength(n); err != nil {
		return err
	}

	return w.write("write length", AppendLength(w.scratch[:0], uint64(n)))
}

// WriteBytes writes a length-prefixed byte string.
func (w *Writer) WriteBytes(b []byte) error {
	if err := checkLength(len(b)); err != nil {
		return err
	}
	if err := w.write("write length", AppendLength(w.scratch[:0], uint64(len(b)))); err != nil {
		return err
	}
	if len(b) == 0 {
		return nil
	}

	return w.write("write bytes", b)
}

// WriteString writes a length-prefixed UTF-8 string.
//
// The writer does not validate s; the Go string is emitted byte for byte so that
// text decoded from a document is reproduced exactly.
func (w *Writer) WriteString(s string) error {
	if err := checkLength(len(s)); err != nil {
		return err
	}
	if err := w.write("write length", AppendLength(w.scratch[:0], uint64(len(s)))); err != nil {
		return err
	}
	if len(s) == 0 {
		return nil
	}

	if sw, ok := w.w.(io.StringWriter); ok {
		n, err := sw.WriteString(s)
		w.written += int64(n)
		if err != nil {
			return errs.WrapIO("write string", err)
		}
		if n < len(s) {
			return errs.WrapIO("write string", io.ErrShortWrite)
		}

		return nil
	}

	return w.write("write string", []byte(s))
}

func checkLength(n int) error {
	if n < 0 || uint64(n) > MaxEncodableLength {
		return fmt.Errorf("%w: %d", errs.ErrIllegalLength, n)
	}

	return nil
}

// AppendLength appends the minimal 7-bit length prefix of n to dst.
func AppendLength(dst []byte, n uint64) []byte {
	for n >= 0x80 {
		dst = append(dst, byte(n)|0x80)
		n >>= 7
	}

	return append(dst, byte(n))
}

// LengthSize returns the number of bytes AppendLength emits for n.
func LengthSize(n uint64) int {
	size := 1
	for n >= 0x80 {
		n >>= 7
		size++
	}

	return size
}
