// Package bitvec implements flag sets stored as a 32-bit mask indexed by ordinal.
//
// Bit i of the mask is set when the flag with ordinal i is a member. Bits whose
// ordinal is not declared by the flag type are kept in the mask, so a set decoded
// from the wire re-encodes unchanged, but they are never reported by iteration.
package bitvec

import (
	"iter"
	"math/bits"
	"strings"

	"github.com/mhdkit/netbin/enum"
)

// Width is the number of addressable flag ordinals.
const Width = 32

// BitVec is a set of flags of type T.
//
// The zero value is the empty set.
type BitVec[T enum.Enum] struct {
	bits uint32
}

// Of returns the set containing the given flags.
// Ordinals of Width or more are ignored.
func Of[T enum.Enum](flags ...T) BitVec[T] {
	var v BitVec[T]
	for _, f := range flags {
		v.Set(f)
	}

	return v
}

// FromBits returns the set with the given raw mask.
func FromBits[T enum.Enum](mask uint32) BitVec[T] {
	return BitVec[T]{bits: mask}
}

// Bits returns the raw mask, including undeclared bits.
func (v BitVec[T]) Bits() uint32 {
	return v.bits
}

// Has reports whether f is a member.
func (v BitVec[T]) Has(f T) bool {
	if uint32(f) >= Width {
		return false
	}

	return v.bits&(1<<uint32(f)) != 0
}

// Set adds f to the set.
func (v *BitVec[T]) Set(f T) {
	if uint32(f) < Width {
		v.bits |= 1 << uint32(f)
	}
}

// Clear removes f from the set.
func (v *BitVec[T]) Clear(f T) {
	if uint32(f) < Width {
		v.bits &^= 1 << uint32(f)
	}
}

// IsEmpty reports whether no bit is set, declared or not.
func (v BitVec[T]) IsEmpty() bool {
	return v.bits == 0
}

// All yields the declared members in ascending ordinal order.
func (v BitVec[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		mask := v.bits
		for mask != 0 {
			i := bits.TrailingZeros32(mask)
			mask &= mask - 1

			f := T(i) //nolint:gosec // i < 32
			if !f.Known() {
				continue
			}
			if !yield(f) {
				return
			}
		}
	}
}

// Flags returns the declared members in ascending ordinal order.
func (v BitVec[T]) Flags() []T {
	var out []T
	for f := range v.All() {
		out = append(out, f)
	}

	return out
}

// Len returns the number of declared members.
func (v BitVec[T]) Len() int {
	n := 0
	for range v.All() {
		n++
	}

	return n
}

// String formats the declared members as "[A, B]".
func (v BitVec[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	first := true
	for f := range v.All() {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		sb.WriteString(f.String())
	}
	sb.WriteByte(']')

	return sb.String()
}

// MarshalText formats the declared members as "A|B".
func (v BitVec[T]) MarshalText() ([]byte, error) {
	var buf []byte
	for f := range v.All() {
		if len(buf) > 0 {
			buf = append(buf, '|')
		}
		buf = append(buf, f.String()...)
	}

	return buf, nil
}
