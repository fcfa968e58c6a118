package codec

import (
	"fmt"
	"strconv"

	"github.com/mhdkit/netbin/errs"
	"github.com/mhdkit/netbin/format"
)

// maxLayoutDepth stops Describe on self-referencing record types.
const maxLayoutDepth = 32

// Kinded is implemented by values that know their wire shape. Every value
// built by this package implements it.
type Kinded interface {
	Kind() format.Kind
}

// KindOf returns the wire shape of v, or format.KindInvalid for custom values
// that do not implement Kinded.
func KindOf(v Value) format.Kind {
	if k, ok := v.(Kinded); ok {
		return k.Kind()
	}

	return format.KindInvalid
}

// composite is implemented by values made of other values. Sequences report
// a single element path ending in "[]".
type composite interface {
	children(path string, visit func(path string, v Value))
}

// FieldLayout is one position in a record's wire layout.
type FieldLayout struct {
	Path  string
	Kind  format.Kind
	Size  int // encoded size for fixed-width kinds, 0 when variable
	Depth int
}

// Describe lists the wire layout of rec in encoding order, nested members
// after their parent. Sequence elements are described from a zero element.
func Describe(rec Record) []FieldLayout {
	var (
		out  []FieldLayout
		walk func(path string, v Value, depth int)
	)
	walk = func(path string, v Value, depth int) {
		k := KindOf(v)
		out = append(out, FieldLayout{Path: path, Kind: k, Size: k.FixedSize(), Depth: depth})
		if c, ok := v.(composite); ok && depth < maxLayoutDepth {
			c.children(path, func(child string, cv Value) {
				walk(child, cv, depth+1)
			})
		}
	}
	for _, f := range rec.Fields() {
		walk(f.Name, f.Value, 0)
	}

	return out
}

// Validate reports the first field of rec whose shape the format cannot carry,
// as errs.ErrUnsupportedType. Custom values are assumed to be valid.
func Validate(rec Record) error {
	for _, l := range Describe(rec) {
		if l.Kind != format.KindInvalid && !l.Kind.Supported() {
			return fmt.Errorf("%w: %s at %s", errs.ErrUnsupportedType, l.Kind, l.Path)
		}
	}

	return nil
}

func joinPath(parent, name string) string {
	if parent == "" {
		return name
	}

	return parent + "." + name
}

func indexPath(parent string, i int) string {
	return parent + "[" + strconv.Itoa(i) + "]"
}
