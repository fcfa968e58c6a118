package codec

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mhdkit/netbin/bitvec"
	"github.com/mhdkit/netbin/encoding"
	"github.com/mhdkit/netbin/enum"
	"github.com/mhdkit/netbin/errs"
)

type shape uint32

var shapes = enum.NewTable[shape]("Shape").Add("Circle", "Square").AddAt(7, "Star")

func (s shape) Known() bool    { return shapes.Known(s) }
func (s shape) String() string { return shapes.Format(s) }

type sample struct {
	A int32
	B []int8
}

func (s *sample) Fields() []Field {
	return []Field{
		F("a", Int32(&s.A)),
		F("b", Seq(&s.B, Int8)),
	}
}

type item struct {
	Name  string
	Shape shape
	Tags  bitvec.BitVec[shape]
}

func (it *item) Fields() []Field {
	return []Field{
		F("name", String(&it.Name)),
		F("shape", Enum(&it.Shape)),
		F("tags", Flags(&it.Tags)),
	}
}

type everything struct {
	Flag    bool
	I8      int8
	I16     int16
	I32     int32
	I64     int64
	U8      uint8
	U16     uint16
	U32     uint32
	U64     uint64
	F32     float32
	F64     float64
	Blob    []byte
	Text    string
	Pair    [2]string
	Coord   [3]float32
	Items   []item
	Legacy  []string
	Nested  sample
	Weights []float64
}

func (e *everything) Fields() []Field {
	return []Field{
		F("flag", Bool(&e.Flag)),
		F("i8", Int8(&e.I8)),
		F("i16", Int16(&e.I16)),
		F("i32", Int32(&e.I32)),
		F("i64", Int64(&e.I64)),
		F("u8", Uint8(&e.U8)),
		F("u16", Uint16(&e.U16)),
		F("u32", Uint32(&e.U32)),
		F("u64", Uint64(&e.U64)),
		F("f32", Float32(&e.F32)),
		F("f64", Float64(&e.F64)),
		F("blob", Bytes(&e.Blob)),
		F("text", String(&e.Text)),
		F("pair", Fixed(e.Pair[:], String)),
		F("coord", Tuple(Float32(&e.Coord[0]), Float32(&e.Coord[1]), Float32(&e.Coord[2]))),
		F("unit", Unit()),
		F("items", Seq(&e.Items, RecordOf[item])),
		F("legacy", HackSeq(&e.Legacy, String)),
		F("nested", Struct(&e.Nested)),
		F("weights", Seq(&e.Weights, Float64)),
	}
}

func TestMarshalDocumentVector(t *testing.T) {
	data, err := MarshalDocument("TEST", &sample{A: 7, B: []int8{1, 2, 3}})
	require.NoError(t, err)
	require.Equal(t, []byte{
		0x04, 'T', 'E', 'S', 'T',
		0x07, 0x00, 0x00, 0x00,
		0x02, 0x00, 0x00, 0x00,
		0x01, 0x02, 0x03,
	}, data)

	var got sample
	require.NoError(t, UnmarshalDocument(data, "TEST", &got))
	require.Equal(t, sample{A: 7, B: []int8{1, 2, 3}}, got)
}

func TestRoundTripEverything(t *testing.T) {
	in := everything{
		Flag:  true,
		I8:    math.MinInt8,
		I16:   math.MinInt16,
		I32:   math.MinInt32,
		I64:   math.MinInt64,
		U8:    math.MaxUint8,
		U16:   math.MaxUint16,
		U32:   math.MaxUint32,
		U64:   math.MaxUint64,
		F32:   float32(math.Inf(-1)),
		F64:   math.Copysign(0, -1),
		Blob:  []byte{0x00, 0xFF},
		Text:  "héllo",
		Pair:  [2]string{"Class_Blaster", "Power"},
		Coord: [3]float32{1.5, -2, 0},
		Items: []item{
			{Name: "a", Shape: 0, Tags: bitvec.Of[shape](0, 7)},
			{Name: "b", Shape: 7, Tags: bitvec.FromBits[shape](1 << 20)},
		},
		Legacy:  []string{"x", "y"},
		Nested:  sample{A: -1, B: []int8{-128}},
		Weights: nil,
	}

	for _, opts := range [][]Option{nil, {WithBigEndian()}} {
		data, err := Marshal(&in, opts...)
		require.NoError(t, err)

		var out everything
		require.NoError(t, Unmarshal(data, &out, opts...))
		require.Equal(t, in, out)
		require.True(t, math.Signbit(out.F64))
		require.Equal(t, uint32(1<<20), out.Items[1].Tags.Bits(), "undeclared flag bits round-trip")
		require.Empty(t, out.Items[1].Tags.Flags())
	}
}

func TestHackSeqLayout(t *testing.T) {
	s := []string{"a", "b"}
	data, err := marshalValue(HackSeq(&s, String))
	require.NoError(t, err)
	require.Equal(t, []byte{
		0x02, 0x00, 0x00, 0x00,
		0x01, 0x00, 0x00, 0x00,
		0x01, 'a', 0x01, 'b',
	}, data)

	var empty []string
	data, err = marshalValue(HackSeq(&empty, String))
	require.NoError(t, err)
	require.Equal(t, []byte{0x00, 0x00, 0x00, 0x00, 0xFF, 0xFF, 0xFF, 0xFF}, data)
}

func TestEmptySequenceDecodesNil(t *testing.T) {
	data, err := Marshal(&sample{A: 1, B: []int8{}})
	require.NoError(t, err)
	require.Equal(t, []byte{0x01, 0, 0, 0, 0xFF, 0xFF, 0xFF, 0xFF}, data)

	got := sample{B: []int8{9}}
	require.NoError(t, Unmarshal(data, &got))
	require.Nil(t, got.B)
}

func TestUnknownVariantPath(t *testing.T) {
	var buf bytes.Buffer
	w := encoding.NewWriter(&buf, nil)
	require.NoError(t, w.WriteSeqLen(2))
	for _, ordinal := range []uint32{1, 5} {
		require.NoError(t, w.WriteString("n"))
		require.NoError(t, w.WriteUint32(ordinal))
		require.NoError(t, w.WriteUint32(0))
	}

	var items []item
	dec, err := NewDecoder(&buf)
	require.NoError(t, err)
	err = dec.DecodeValue(Struct(recordFunc(func() []Field {
		return []Field{F("items", Seq(&items, RecordOf[item]))}
	})))
	require.ErrorIs(t, err, errs.ErrUnknownVariant)

	var fe *errs.FieldError
	require.ErrorAs(t, err, &fe)
	require.Equal(t, "items[1].shape", fe.Path())
	require.Contains(t, err.Error(), "Shape(5)")
}

func TestEncodeUnknownVariant(t *testing.T) {
	data, err := Marshal(&item{Name: "x", Shape: 3})
	require.ErrorIs(t, err, errs.ErrUnknownVariant)
	require.Nil(t, data, "nothing is returned from a failed encode")
}

func TestUnsupportedConstructs(t *testing.T) {
	var (
		opt *int32
		m   map[string]int32
		ch  rune
	)
	values := map[string]Value{
		"optional": Optional(&opt),
		"map":      Map(&m),
		"char":     Char(&ch),
		"variant":  Variant(nil),
	}
	for name, v := range values {
		t.Run(name, func(t *testing.T) {
			_, err := marshalValue(v)
			require.ErrorIs(t, err, errs.ErrUnsupportedType)

			dec, err := NewDecoder(bytes.NewReader([]byte{1, 2, 3, 4}))
			require.NoError(t, err)
			require.ErrorIs(t, dec.DecodeValue(v), errs.ErrUnsupportedType)
			require.Zero(t, dec.Consumed())
		})
	}
}

func TestFormatMismatch(t *testing.T) {
	data, err := MarshalDocument("TEST", &sample{A: 7})
	require.NoError(t, err)

	t.Run("different length", func(t *testing.T) {
		r := bytes.NewReader(data)
		got := sample{A: 42}
		err := DecodeDocument(r, "Mids Reborn Powers Database", &got)
		require.ErrorIs(t, err, errs.ErrFormatMismatch)
		require.EqualValues(t, len(data)-1, r.Len(), "only the length prefix is consumed")
		require.Equal(t, int32(42), got.A)
	})

	t.Run("same length", func(t *testing.T) {
		got := sample{A: 42}
		err := UnmarshalDocument(data, "BEST", &got)
		require.ErrorIs(t, err, errs.ErrFormatMismatch)
		require.Equal(t, int32(42), got.A)
	})
}

func TestTrailingData(t *testing.T) {
	data, err := MarshalDocument("TEST", &sample{A: 7})
	require.NoError(t, err)

	data = append(data, 0x00)
	var got sample
	require.ErrorIs(t, UnmarshalDocument(data, "TEST", &got), errs.ErrTrailingData)
	require.ErrorIs(t, Unmarshal(data[5:], &got), errs.ErrTrailingData)
}

func TestTruncatedInput(t *testing.T) {
	data, err := Marshal(&sample{A: 7, B: []int8{1, 2, 3}})
	require.NoError(t, err)

	for n := 0; n < len(data); n++ {
		var got sample
		err := Unmarshal(data[:n], &got)
		require.Error(t, err, "prefix of %d bytes", n)
		require.ErrorIs(t, err, errs.ErrIO)
		require.True(t, errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF))
	}
}

func TestMaxLengthOption(t *testing.T) {
	data, err := Marshal(&sample{B: []int8{1, 2, 3}})
	require.NoError(t, err)

	var got sample
	err = Unmarshal(data, &got, WithMaxLength(2))
	require.ErrorIs(t, err, errs.ErrLengthLimitExceeded)

	var fe *errs.FieldError
	require.ErrorAs(t, err, &fe)
	require.Equal(t, "b", fe.Path())

	require.NoError(t, Unmarshal(data, &got, WithMaxLength(0)))

	_, err = NewDecoder(bytes.NewReader(data), WithMaxLength(-1))
	require.Error(t, err)
	_, err = NewEncoder(io.Discard, WithEngine(nil))
	require.Error(t, err)
}

func TestDecodeDocumentUnusableMagicPrefix(t *testing.T) {
	tests := []struct {
		name  string
		data  []byte
		opts  []Option
		cause error
	}{
		{"unterminated", []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x01}, nil, errs.ErrIllegalLength},
		{"over limit", []byte{0x80, 0x80, 0x01, 'T'}, []Option{WithMaxLength(1024)}, errs.ErrLengthLimitExceeded},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got sample
			err := UnmarshalDocument(tt.data, "TEST", &got, tt.opts...)
			require.ErrorIs(t, err, errs.ErrFormatMismatch)
			require.ErrorIs(t, err, tt.cause)
		})
	}

	var got sample
	err := UnmarshalDocument([]byte{0x84}, "TEST", &got)
	require.ErrorIs(t, err, errs.ErrIO)
	require.NotErrorIs(t, err, errs.ErrFormatMismatch)
}

func TestLoggerOption(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	var buf bytes.Buffer
	require.NoError(t, EncodeDocument(&buf, "TEST", &sample{A: 1}, WithLogger(logger)))
	require.Contains(t, logs.String(), `"msg":"encode completed"`)

	var got sample
	err := DecodeDocument(bytes.NewReader([]byte{0x01}), "TEST", &got, WithLogger(logger))
	require.ErrorIs(t, err, errs.ErrFormatMismatch)
	require.Contains(t, logs.String(), `"msg":"decode failed"`)
}

func TestConfigDefaults(t *testing.T) {
	cfg := NewConfig()
	require.Equal(t, encoding.DefaultMaxLength, cfg.MaxLength())
	require.NotNil(t, cfg.Engine())
}

type recordFunc func() []Field

func (f recordFunc) Fields() []Field { return f() }

func marshalValue(v Value) ([]byte, error) {
	return marshal(func(enc *Encoder) error {
		return enc.EncodeValue(v)
	}, nil)
}
