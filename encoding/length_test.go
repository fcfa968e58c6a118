package encoding

import (
	"bytes"
	"io"
	"math"
	"strings"
	"testing"

	"github.com/mhdkit/netbin/endian"
	"github.com/mhdkit/netbin/errs"
	"github.com/stretchr/testify/require"
)

func TestAppendLength(t *testing.T) {
	tests := []struct {
		name     string
		value    uint64
		expected []byte
	}{
		{"zero", 0, []byte{0x00}},
		{"one group max", 127, []byte{0x7F}},
		{"two groups min", 128, []byte{0x80, 0x01}},
		{"two groups", 300, []byte{0xAC, 0x02}},
		{"two groups max", 16383, []byte{0xFF, 0x7F}},
		{"three groups min", 16384, []byte{0x80, 0x80, 0x01}},
		{"five groups min", 1 << 28, []byte{0x80, 0x80, 0x80, 0x80, 0x01}},
		{"uint32 max", math.MaxUint32, []byte{0xFF, 0xFF, 0xFF, 0xFF, 0x0F}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AppendLength(nil, tt.value)
			require.Equal(t, tt.expected, got)
			require.Equal(t, len(tt.expected), LengthSize(tt.value))

			r := NewReader(bytes.NewReader(got), endian.GetLittleEndianEngine(), 0)
			n, err := r.ReadLength()
			require.NoError(t, err)
			require.Equal(t, int(tt.value), n)
		})
	}
}

func TestReadLengthSixthGroupFails(t *testing.T) {
	data := []byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x01}
	r := NewReader(bytes.NewReader(data), nil, 0)
	_, err := r.ReadLength()
	require.ErrorIs(t, err, errs.ErrIllegalLength)
	require.Equal(t, int64(5), r.Consumed())
}

func TestReadLengthNonMinimalFiveGroups(t *testing.T) {
	// Padding groups are not produced by the writer but are still accepted on read.
	data := []byte{0x83, 0x80, 0x80, 0x80, 0x00, 'a', 'b', 'c'}
	r := NewReader(bytes.NewReader(data), nil, 0)
	s, err := r.ReadString()
	require.NoError(t, err)
	require.Equal(t, "abc", s)
}

func TestReadLengthFiveGroupsLongString(t *testing.T) {
	// A 2^28 byte string announced with a valid five group prefix is accepted by the
	// length decoder; the read then fails only because the payload is missing.
	data := append([]byte{0x80, 0x80, 0x80, 0x80, 0x01}, "short"...)
	r := NewReader(bytes.NewReader(data), nil, 0)
	_, err := r.ReadBytes()
	require.ErrorIs(t, err, errs.ErrIO)
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
	require.NotErrorIs(t, err, errs.ErrIllegalLength)
}

// byteRun yields n copies of b without holding them in memory.
type byteRun struct {
	b byte
	n int
}

func (r *byteRun) Read(p []byte) (int, error) {
	if r.n == 0 {
		return 0, io.EOF
	}
	k := min(len(p), r.n)
	for i := range k {
		p[i] = r.b
	}
	r.n -= k

	return k, nil
}

func TestReadStringFiveGroupLength(t *testing.T) {
	if testing.Short() {
		t.Skip("decodes a 256MiB string")
	}

	const n = 1 << 28
	prefix := AppendLength(nil, n)
	require.Len(t, prefix, 5)

	src := io.MultiReader(bytes.NewReader(prefix), &byteRun{b: 'a', n: n}, bytes.NewReader([]byte{0x2A}))
	r := NewReader(src, endian.GetLittleEndianEngine(), 0)

	s, err := r.ReadString()
	require.NoError(t, err)
	require.Len(t, s, n)
	require.Equal(t, byte('a'), s[0])
	require.Equal(t, byte('a'), s[n-1])

	next, err := r.ReadUint8()
	require.NoError(t, err)
	require.Equal(t, uint8(0x2A), next)
	require.Equal(t, int64(5+n+1), r.Consumed())
}

func TestReadLengthLimit(t *testing.T) {
	data := AppendLength(nil, 1<<20)
	r := NewReader(bytes.NewReader(data), nil, 1024)
	_, err := r.ReadLength()
	require.ErrorIs(t, err, errs.ErrLengthLimitExceeded)
}

func TestReadLengthTruncated(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{0x80}), nil, 0)
	_, err := r.ReadLength()
	require.ErrorIs(t, err, errs.ErrIO)
}

func TestStringRoundTrip(t *testing.T) {
	values := []string{"", "TEST", "héllo wörld", strings.Repeat("x", 200), "日本語"}

	var buf bytes.Buffer
	w := NewWriter(&buf, nil)
	for _, v := range values {
		require.NoError(t, w.WriteString(v))
	}

	r := NewReader(bytes.NewReader(buf.Bytes()), nil, DefaultMaxLength)
	for _, want := range values {
		got, err := r.ReadString()
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
}

func TestMagicLayout(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, nil)
	require.NoError(t, w.WriteString("TEST"))
	require.Equal(t, []byte{0x04, 0x54, 0x45, 0x53, 0x54}, buf.Bytes())
}

func TestReadStringInvalidUTF8(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{0x02, 0xC3, 0x28}), nil, 0)
	_, err := r.ReadString()
	require.ErrorIs(t, err, errs.ErrIllegalString)

	// The same bytes are fine as a byte string.
	r = NewReader(bytes.NewReader([]byte{0x02, 0xC3, 0x28}), nil, 0)
	b, err := r.ReadBytes()
	require.NoError(t, err)
	require.Equal(t, []byte{0xC3, 0x28}, b)
}

func TestEmptyBytes(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, nil)
	require.NoError(t, w.WriteBytes(nil))
	require.Equal(t, []byte{0x00}, buf.Bytes())

	r := NewReader(bytes.NewReader(buf.Bytes()), nil, 0)
	b, err := r.ReadBytes()
	require.NoError(t, err)
	require.NotNil(t, b)
	require.Empty(t, b)
}

func TestWriteLengthRejectsOutOfRange(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, nil)
	require.ErrorIs(t, w.WriteLength(-1), errs.ErrIllegalLength)
	require.NoError(t, w.WriteLength(MaxEncodableLength))
	require.Equal(t, MaxLengthGroups, buf.Len())
	require.ErrorIs(t, w.WriteLength(MaxEncodableLength+1), errs.ErrIllegalLength)
	require.Equal(t, MaxLengthGroups, buf.Len())
}
