// Package encoding implements the primitive and sequence layers of the netbin wire format.
//
// The format is packed and untagged: a value's bytes carry no type information, so
// the reader must know from the record schema what comes next. This package only
// knows how to move individual wire shapes; the codec package walks records.
//
// # Primitive Values
//
// Fixed-width integers and floats use one byte order for the whole document
// (little-endian for legacy documents, see package endian):
//
//	int8/uint8    1 byte
//	int16/uint16  2 bytes
//	int32/uint32  4 bytes
//	int64/uint64  8 bytes
//	float32       4 bytes, IEEE-754 bit pattern
//	float64       8 bytes, IEEE-754 bit pattern
//	bool          1 byte; the writer emits 0 or 1, the reader treats any nonzero byte as true
//
// Floats are moved by bit pattern, so NaN payloads and signed zero survive a round trip.
//
// # Length Prefixes
//
// Byte strings and text carry a 7-bit length prefix: each byte holds seven bits of
// the length, least significant group first, and the high bit says another group
// follows.
//
//	Value 0-127:     0xxxxxxx                    (1 byte)
//	Value 128-16383: 1xxxxxxx 0xxxxxxx           (2 bytes)
//	Value 16384+:    1xxxxxxx 1xxxxxxx 0xxxxxxx  (3+ bytes)
//
// The writer always emits the minimal number of groups. The reader accepts at most
// five groups; a sixth continuation fails with errs.ErrIllegalLength.
//
// # Sequences
//
// A homogeneous sequence is prefixed with a signed 32-bit (count - 1). An empty
// sequence is therefore written as -1 (FF FF FF FF little-endian), and any prefix
// below -1 is invalid. A small number of legacy fields use the "hack" layout: the
// count itself as int32, followed by the conventional (count - 1) prefix. Only the
// conventional prefix drives decoding.
//
// # Limits
//
// Lengths are read from untrusted input. Reader enforces a maximum string length
// and sequence count (DefaultMaxLength unless configured) and never allocates a
// buffer larger than a small chunk ahead of the bytes actually arriving.
//
// # Thread Safety
//
// Writer and Reader are not thread-safe. Each one owns its stream cursor for the
// duration of an encode or decode; independent streams can be processed in
// parallel with separate instances.
package encoding
