package codec

import (
	"fmt"

	"github.com/mhdkit/netbin/bitvec"
	"github.com/mhdkit/netbin/enum"
	"github.com/mhdkit/netbin/errs"
	"github.com/mhdkit/netbin/format"
)

// seqPrealloc caps the capacity reserved from a decoded count; longer
// sequences grow by append as elements actually arrive.
const seqPrealloc = 1024

type enumValue[T enum.Enum] struct {
	p *T
}

func (v enumValue[T]) Kind() format.Kind { return format.KindEnum }

func (v enumValue[T]) EncodeTo(e *Encoder) error {
	if !(*v.p).Known() {
		return fmt.Errorf("%w: %s", errs.ErrUnknownVariant, (*v.p).String())
	}

	return e.w.WriteUint32(uint32(*v.p))
}

func (v enumValue[T]) DecodeFrom(d *Decoder) error {
	n, err := d.r.ReadUint32()
	if err != nil {
		return err
	}

	x := T(n)
	if !x.Known() {
		return fmt.Errorf("%w: %s", errs.ErrUnknownVariant, x.String())
	}
	*v.p = x

	return nil
}

// Enum binds a closed enumeration stored as its uint32 ordinal.
// Ordinals the type does not declare fail with errs.ErrUnknownVariant.
func Enum[T enum.Enum](p *T) Value {
	return enumValue[T]{p: p}
}

type flagsValue[T enum.Enum] struct {
	p *bitvec.BitVec[T]
}

func (v flagsValue[T]) Kind() format.Kind { return format.KindFlags }

func (v flagsValue[T]) EncodeTo(e *Encoder) error {
	return e.w.WriteUint32(v.p.Bits())
}

func (v flagsValue[T]) DecodeFrom(d *Decoder) error {
	mask, err := d.r.ReadUint32()
	if err != nil {
		return err
	}
	*v.p = bitvec.FromBits[T](mask)

	return nil
}

// Flags binds a flag set stored as a uint32 mask. Undeclared bits round-trip.
func Flags[T enum.Enum](p *bitvec.BitVec[T]) Value {
	return flagsValue[T]{p: p}
}

type seqValue[T any] struct {
	p    *[]T
	elem func(*T) Value
	hack bool
}

func (v seqValue[T]) Kind() format.Kind {
	if v.hack {
		return format.KindHackSeq
	}

	return format.KindSeq
}

func (v seqValue[T]) children(path string, visit func(string, Value)) {
	var x T
	visit(path+"[]", v.elem(&x))
}

func (v seqValue[T]) EncodeTo(e *Encoder) error {
	s := *v.p

	var err error
	if v.hack {
		err = e.w.WriteHackSeqLen(len(s))
	} else {
		err = e.w.WriteSeqLen(len(s))
	}
	if err != nil {
		return err
	}

	for i := range s {
		if err := v.elem(&s[i]).EncodeTo(e); err != nil {
			return errs.WithIndex(err, i)
		}
	}

	return nil
}

func (v seqValue[T]) DecodeFrom(d *Decoder) error {
	var (
		n   int
		err error
	)
	if v.hack {
		n, _, err = d.r.ReadHackSeqLen()
	} else {
		n, err = d.r.ReadSeqLen()
	}
	if err != nil {
		return err
	}

	if n == 0 {
		*v.p = nil
		return nil
	}

	s := make([]T, 0, min(n, seqPrealloc))
	for i := 0; i < n; i++ {
		var x T
		if err := v.elem(&x).DecodeFrom(d); err != nil {
			return errs.WithIndex(err, i)
		}
		s = append(s, x)
	}
	*v.p = s

	return nil
}

// Seq binds a slice encoded as a count-prefixed sequence; elem binds each element.
// An empty sequence decodes as a nil slice.
//
//	codec.Seq(&p.Names, codec.String)
func Seq[T any](p *[]T, elem func(*T) Value) Value {
	return seqValue[T]{p: p, elem: elem}
}

// HackSeq binds a slice encoded with the legacy double-length prefix: the element
// count as an int32, then an ordinary sequence.
func HackSeq[T any](p *[]T, elem func(*T) Value) Value {
	return seqValue[T]{p: p, elem: elem, hack: true}
}

type fixedValue[T any] struct {
	s    []T
	elem func(*T) Value
}

func (v fixedValue[T]) Kind() format.Kind { return format.KindTuple }

func (v fixedValue[T]) children(path string, visit func(string, Value)) {
	for i := range v.s {
		visit(indexPath(path, i), v.elem(&v.s[i]))
	}
}

func (v fixedValue[T]) EncodeTo(e *Encoder) error {
	for i := range v.s {
		if err := v.elem(&v.s[i]).EncodeTo(e); err != nil {
			return errs.WithIndex(err, i)
		}
	}

	return nil
}

func (v fixedValue[T]) DecodeFrom(d *Decoder) error {
	for i := range v.s {
		if err := v.elem(&v.s[i]).DecodeFrom(d); err != nil {
			return errs.WithIndex(err, i)
		}
	}

	return nil
}

// Fixed binds a fixed-size array as a tuple of its elements. Pass the array
// sliced in place so decoding writes through:
//
//	codec.Fixed(r.Pair[:], codec.String)
func Fixed[T any](s []T, elem func(*T) Value) Value {
	return fixedValue[T]{s: s, elem: elem}
}

type tupleValue []Value

func (t tupleValue) Kind() format.Kind { return format.KindTuple }

func (t tupleValue) children(path string, visit func(string, Value)) {
	for i, v := range t {
		visit(indexPath(path, i), v)
	}
}

func (t tupleValue) EncodeTo(e *Encoder) error {
	for i, v := range t {
		if err := v.EncodeTo(e); err != nil {
			return errs.WithIndex(err, i)
		}
	}

	return nil
}

func (t tupleValue) DecodeFrom(d *Decoder) error {
	for i, v := range t {
		if err := v.DecodeFrom(d); err != nil {
			return errs.WithIndex(err, i)
		}
	}

	return nil
}

// Tuple encodes the given values back to back with no framing.
func Tuple(vals ...Value) Value {
	return tupleValue(vals)
}

type unsupported struct {
	kind format.Kind
}

func (u unsupported) Kind() format.Kind { return u.kind }

func (u unsupported) EncodeTo(*Encoder) error {
	return fmt.Errorf("%w: %s", errs.ErrUnsupportedType, u.kind)
}

func (u unsupported) DecodeFrom(*Decoder) error {
	return fmt.Errorf("%w: %s", errs.ErrUnsupportedType, u.kind)
}

// Optional is not representable in the format; it fails when encoded or decoded.
func Optional[T any](**T) Value {
	return unsupported{kind: format.KindOptional}
}

// Map is not representable in the format; it fails when encoded or decoded.
func Map[K comparable, V any](*map[K]V) Value {
	return unsupported{kind: format.KindMap}
}

// Char is not representable in the format; it fails when encoded or decoded.
func Char(*rune) Value {
	return unsupported{kind: format.KindChar}
}

// Variant stands in for a tagged union, which the format cannot represent.
func Variant(any) Value {
	return unsupported{kind: format.KindVariant}
}
