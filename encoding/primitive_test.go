package encoding

import (
	"bytes"
	"errors"
	"io"
	"math"
	"strings"
	"testing"

	"github.com/mhdkit/netbin/endian"
	"github.com/mhdkit/netbin/errs"
	"github.com/stretchr/testify/require"
)

func newPair(t *testing.T) (*Writer, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer

	return NewWriter(&buf, endian.GetLittleEndianEngine()), &buf
}

func readerFor(data []byte) *Reader {
	return NewReader(bytes.NewReader(data), endian.GetLittleEndianEngine(), DefaultMaxLength)
}

func TestIntegerRoundTrip(t *testing.T) {
	w, buf := newPair(t)

	require.NoError(t, w.WriteInt8(math.MinInt8))
	require.NoError(t, w.WriteInt8(math.MaxInt8))
	require.NoError(t, w.WriteUint8(math.MaxUint8))
	require.NoError(t, w.WriteInt16(math.MinInt16))
	require.NoError(t, w.WriteUint16(math.MaxUint16))
	require.NoError(t, w.WriteInt32(math.MinInt32))
	require.NoError(t, w.WriteInt32(math.MaxInt32))
	require.NoError(t, w.WriteUint32(math.MaxUint32))
	require.NoError(t, w.WriteInt64(math.MinInt64))
	require.NoError(t, w.WriteInt64(math.MaxInt64))
	require.NoError(t, w.WriteUint64(math.MaxUint64))
	require.Equal(t, int64(1+1+1+2+2+4+4+4+8+8+8), w.Written())

	r := readerFor(buf.Bytes())
	i8, err := r.ReadInt8()
	require.NoError(t, err)
	require.Equal(t, int8(math.MinInt8), i8)
	i8, err = r.ReadInt8()
	require.NoError(t, err)
	require.Equal(t, int8(math.MaxInt8), i8)
	u8, err := r.ReadUint8()
	require.NoError(t, err)
	require.Equal(t, uint8(math.MaxUint8), u8)
	i16, err := r.ReadInt16()
	require.NoError(t, err)
	require.Equal(t, int16(math.MinInt16), i16)
	u16, err := r.ReadUint16()
	require.NoError(t, err)
	require.Equal(t, uint16(math.MaxUint16), u16)
	i32, err := r.ReadInt32()
	require.NoError(t, err)
	require.Equal(t, int32(math.MinInt32), i32)
	i32, err = r.ReadInt32()
	require.NoError(t, err)
	require.Equal(t, int32(math.MaxInt32), i32)
	u32, err := r.ReadUint32()
	require.NoError(t, err)
	require.Equal(t, uint32(math.MaxUint32), u32)
	i64, err := r.ReadInt64()
	require.NoError(t, err)
	require.Equal(t, int64(math.MinInt64), i64)
	i64, err = r.ReadInt64()
	require.NoError(t, err)
	require.Equal(t, int64(math.MaxInt64), i64)
	u64, err := r.ReadUint64()
	require.NoError(t, err)
	require.Equal(t, uint64(math.MaxUint64), u64)

	require.Equal(t, w.Written(), r.Consumed())
}

func TestLittleEndianLayout(t *testing.T) {
	w, buf := newPair(t)
	require.NoError(t, w.WriteInt32(7))
	require.NoError(t, w.WriteUint16(0x0102))
	require.Equal(t, []byte{0x07, 0x00, 0x00, 0x00, 0x02, 0x01}, buf.Bytes())
}

func TestBigEndianLayout(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, endian.GetBigEndianEngine())
	require.NoError(t, w.WriteInt32(7))
	require.Equal(t, []byte{0x00, 0x00, 0x00, 0x07}, buf.Bytes())

	r := NewReader(bytes.NewReader(buf.Bytes()), endian.GetBigEndianEngine(), 0)
	v, err := r.ReadInt32()
	require.NoError(t, err)
	require.Equal(t, int32(7), v)
}

func TestFloatBitPatterns(t *testing.T) {
	f32s := []uint32{
		0x00000000, // +0
		0x80000000, // -0
		0x7FC00000, // quiet NaN
		0x7FC00123, // NaN with payload
		0xFFA00001, // negative signalling NaN with payload
		0x7F800000, // +Inf
		math.Float32bits(3.5),
	}
	f64s := []uint64{
		0x0000000000000000,
		0x8000000000000000,
		0x7FF8000000000001,
		0xFFF4000000000abc,
		math.Float64bits(-1.25),
	}

	w, buf := newPair(t)
	for _, bits := range f32s {
		require.NoError(t, w.WriteFloat32(math.Float32frombits(bits)))
	}
	for _, bits := range f64s {
		require.NoError(t, w.WriteFloat64(math.Float64frombits(bits)))
	}

	r := readerFor(buf.Bytes())
	for _, bits := range f32s {
		v, err := r.ReadFloat32()
		require.NoError(t, err)
		require.Equal(t, bits, math.Float32bits(v))
	}
	for _, bits := range f64s {
		v, err := r.ReadFloat64()
		require.NoError(t, err)
		require.Equal(t, bits, math.Float64bits(v))
	}
}

func TestBool(t *testing.T) {
	w, buf := newPair(t)
	require.NoError(t, w.WriteBool(true))
	require.NoError(t, w.WriteBool(false))
	require.Equal(t, []byte{1, 0}, buf.Bytes())

	r := readerFor([]byte{0x00, 0x01, 0x02, 0xFF})
	for _, want := range []bool{false, true, true, true} {
		got, err := r.ReadBool()
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
}

func TestShortRead(t *testing.T) {
	r := readerFor([]byte{0x01, 0x02})
	_, err := r.ReadInt32()
	require.ErrorIs(t, err, errs.ErrIO)
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)

	r = readerFor(nil)
	_, err = r.ReadUint8()
	require.ErrorIs(t, err, io.EOF)
}

type failingWriter struct{ err error }

func (f failingWriter) Write([]byte) (int, error) { return 0, f.err }

func TestWriteFailure(t *testing.T) {
	boom := errors.New("disk full")
	w := NewWriter(failingWriter{err: boom}, nil)

	err := w.WriteUint64(1)
	require.ErrorIs(t, err, errs.ErrIO)
	require.ErrorIs(t, err, boom)
	require.Contains(t, err.Error(), "write uint64")

	err = w.WriteString("abc")
	require.ErrorIs(t, err, boom)
}

type shortWriter struct{}

func (shortWriter) Write(p []byte) (int, error) { return len(p) / 2, nil }

func TestShortWrite(t *testing.T) {
	w := NewWriter(shortWriter{}, nil)
	err := w.WriteUint32(1)
	require.ErrorIs(t, err, io.ErrShortWrite)
	require.Equal(t, int64(2), w.Written())
}

func TestNilEngineDefaultsToLittleEndian(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, nil)
	require.Equal(t, endian.GetLittleEndianEngine(), w.Engine())

	r := NewReader(&buf, nil, -5)
	require.Equal(t, endian.GetLittleEndianEngine(), r.Engine())
	require.Equal(t, 0, r.MaxLength())
}

func TestReadRaw(t *testing.T) {
	r := readerFor([]byte("abcdef"))
	b, err := r.ReadRaw(4)
	require.NoError(t, err)
	require.Equal(t, []byte("abcd"), b)

	_, err = r.ReadRaw(-1)
	require.ErrorIs(t, err, errs.ErrIllegalLength)

	_, err = r.ReadRaw(3)
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestLargeBytesRoundTrip(t *testing.T) {
	payload := []byte(strings.Repeat("0123456789abcdef", readChunkSize/8))
	w, buf := newPair(t)
	require.NoError(t, w.WriteBytes(payload))

	r := readerFor(buf.Bytes())
	got, err := r.ReadBytes()
	require.NoError(t, err)
	require.Equal(t, payload, got)
}
