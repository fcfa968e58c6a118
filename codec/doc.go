// Package codec maps Go values onto the netbin wire format.
//
// Types take part by implementing Record: Fields lists the members in wire order,
// each bound to a Value constructor describing its encoding.
//
//	type Point struct {
//	    X, Y  int32
//	    Names []string
//	}
//
//	func (p *Point) Fields() []codec.Field {
//	    return []codec.Field{
//	        codec.F("x", codec.Int32(&p.X)),
//	        codec.F("y", codec.Int32(&p.Y)),
//	        codec.F("names", codec.Seq(&p.Names, codec.String)),
//	    }
//	}
//
// The same field list drives both directions, so the encoder and decoder cannot
// disagree on layout. Records, tuples and fixed arrays have no framing; sequences
// carry an int32 prefix of count-1; strings carry a 7-bit length prefix.
//
// # Errors
//
// Failures below the top level are wrapped in *errs.FieldError naming the path
// to the failing member, for example powers[3].effects[0].effect_type. The
// underlying sentinel stays reachable through errors.Is.
//
// # Unsupported constructs
//
// The format has no representation for optional values, maps, characters or
// tagged unions. The Optional, Map, Char and Variant constructors exist so that
// such fields fail with errs.ErrUnsupportedType at the point of use rather than
// being silently dropped.
package codec
