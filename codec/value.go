package codec

import (
	"github.com/mhdkit/netbin/encoding"
	"github.com/mhdkit/netbin/errs"
	"github.com/mhdkit/netbin/format"
)

// Value binds a Go variable to its wire encoding.
//
// EncodeTo writes the variable; DecodeFrom overwrites it. Values are cheap,
// short-lived views and are normally created fresh by a Record's Fields method.
type Value interface {
	EncodeTo(e *Encoder) error
	DecodeFrom(d *Decoder) error
}

// Field is one named member of a record.
type Field struct {
	Name  string
	Value Value
}

// F is shorthand for Field{Name: name, Value: v}.
func F(name string, v Value) Field {
	return Field{Name: name, Value: v}
}

// Record is implemented by types encoded as a record.
//
// Fields returns the members in declaration order, bound to the receiver.
// The order is the wire layout: records carry no names, tags or counts, so
// reordering fields changes the format.
type Record interface {
	Fields() []Field
}

type scalar[T any] struct {
	kind  format.Kind
	p     *T
	write func(*encoding.Writer, T) error
	read  func(*encoding.Reader) (T, error)
}

func (s scalar[T]) Kind() format.Kind { return s.kind }

func (s scalar[T]) EncodeTo(e *Encoder) error {
	return s.write(e.w, *s.p)
}

func (s scalar[T]) DecodeFrom(d *Decoder) error {
	v, err := s.read(d.r)
	if err != nil {
		return err
	}
	*s.p = v

	return nil
}

// Bool binds a boolean (one byte).
func Bool(p *bool) Value {
	return scalar[bool]{format.KindBool, p, (*encoding.Writer).WriteBool, (*encoding.Reader).ReadBool}
}

// Int8 binds a signed byte.
func Int8(p *int8) Value {
	return scalar[int8]{format.KindInt8, p, (*encoding.Writer).WriteInt8, (*encoding.Reader).ReadInt8}
}

// Int16 binds a 16-bit signed integer.
func Int16(p *int16) Value {
	return scalar[int16]{format.KindInt16, p, (*encoding.Writer).WriteInt16, (*encoding.Reader).ReadInt16}
}

// Int32 binds a 32-bit signed integer.
func Int32(p *int32) Value {
	return scalar[int32]{format.KindInt32, p, (*encoding.Writer).WriteInt32, (*encoding.Reader).ReadInt32}
}

// Int64 binds a 64-bit signed integer.
func Int64(p *int64) Value {
	return scalar[int64]{format.KindInt64, p, (*encoding.Writer).WriteInt64, (*encoding.Reader).ReadInt64}
}

// Uint8 binds an unsigned byte.
func Uint8(p *uint8) Value {
	return scalar[uint8]{format.KindUint8, p, (*encoding.Writer).WriteUint8, (*encoding.Reader).ReadUint8}
}

// Uint16 binds a 16-bit unsigned integer.
func Uint16(p *uint16) Value {
	return scalar[uint16]{format.KindUint16, p, (*encoding.Writer).WriteUint16, (*encoding.Reader).ReadUint16}
}

// Uint32 binds a 32-bit unsigned integer.
func Uint32(p *uint32) Value {
	return scalar[uint32]{format.KindUint32, p, (*encoding.Writer).WriteUint32, (*encoding.Reader).ReadUint32}
}

// Uint64 binds a 64-bit unsigned integer.
func Uint64(p *uint64) Value {
	return scalar[uint64]{format.KindUint64, p, (*encoding.Writer).WriteUint64, (*encoding.Reader).ReadUint64}
}

// Float32 binds a single-precision float.
func Float32(p *float32) Value {
	return scalar[float32]{format.KindFloat32, p, (*encoding.Writer).WriteFloat32, (*encoding.Reader).ReadFloat32}
}

// Float64 binds a double-precision float.
func Float64(p *float64) Value {
	return scalar[float64]{format.KindFloat64, p, (*encoding.Writer).WriteFloat64, (*encoding.Reader).ReadFloat64}
}

// Bytes binds a length-prefixed byte string.
func Bytes(p *[]byte) Value {
	return scalar[[]byte]{format.KindBytes, p, (*encoding.Writer).WriteBytes, (*encoding.Reader).ReadBytes}
}

// String binds a length-prefixed UTF-8 string.
func String(p *string) Value {
	return scalar[string]{format.KindString, p, (*encoding.Writer).WriteString, (*encoding.Reader).ReadString}
}

type unit struct{}

func (unit) Kind() format.Kind          { return format.KindUnit }
func (unit) EncodeTo(*Encoder) error   { return nil }
func (unit) DecodeFrom(*Decoder) error { return nil }

// Unit is a value with no wire representation.
func Unit() Value {
	return unit{}
}

// structValue encodes each field in order with no framing.
type structValue struct {
	rec Record
}

func (s structValue) Kind() format.Kind { return format.KindRecord }

func (s structValue) children(path string, visit func(string, Value)) {
	for _, f := range s.rec.Fields() {
		visit(joinPath(path, f.Name), f.Value)
	}
}

func (s structValue) EncodeTo(e *Encoder) error {
	for _, f := range s.rec.Fields() {
		if err := f.Value.EncodeTo(e); err != nil {
			return errs.WithField(err, f.Name)
		}
	}

	return nil
}

func (s structValue) DecodeFrom(d *Decoder) error {
	for _, f := range s.rec.Fields() {
		if err := f.Value.DecodeFrom(d); err != nil {
			return errs.WithField(err, f.Name)
		}
	}

	return nil
}

// Struct binds a nested record.
func Struct(r Record) Value {
	return structValue{rec: r}
}

// RecordOf adapts a record type for use as a sequence element:
//
//	codec.Seq(&db.Powers, codec.RecordOf[Power])
func RecordOf[T any, PT interface {
	*T
	Record
}](p *T) Value {
	return Struct(PT(p))
}
