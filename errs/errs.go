// Package errs defines the error taxonomy shared by every netbin package.
//
// Callers match categories with errors.Is against the sentinel values. Errors
// raised below a record field carry the field path through FieldError, and
// stream failures are wrapped in IOError; both unwrap to the underlying cause.
package errs

import (
	"errors"
	"strconv"
	"strings"
)

// Wire format errors.
var (
	// ErrIllegalString is returned when decoded text is not valid UTF-8.
	ErrIllegalString = errors.New("illegal string")
	// ErrIllegalLength is returned when a 7-bit length prefix does not terminate
	// within the 32-bit shift bound.
	ErrIllegalLength = errors.New("illegal string length")
	// ErrLengthLimitExceeded is returned when a decoded string or sequence length
	// is larger than the configured maximum.
	ErrLengthLimitExceeded = errors.New("length exceeds limit")
	// ErrSequenceLengthRequired is returned when a sequence is encoded without a known length.
	ErrSequenceLengthRequired = errors.New("sequence length required")
	// ErrSequenceTooLong is returned when a sequence length does not fit the signed 32-bit prefix.
	ErrSequenceTooLong = errors.New("sequence too long")
	// ErrInvalidSequenceLength is returned when a sequence prefix is below -1.
	ErrInvalidSequenceLength = errors.New("invalid sequence length")
	// ErrUnsupportedType is returned for constructs the format cannot express:
	// optional values, maps, tagged unions with payload and single characters.
	ErrUnsupportedType = errors.New("unsupported type")
	// ErrUnknownVariant is returned when an enumeration value matches no declared ordinal.
	ErrUnknownVariant = errors.New("unknown enum variant")
	// ErrFormatMismatch is returned when the document magic string does not match.
	ErrFormatMismatch = errors.New("wrong document type")
	// ErrTrailingData is returned by buffer decoders when bytes remain after the record.
	ErrTrailingData = errors.New("trailing data after record")
	// ErrIO matches every IOError.
	ErrIO = errors.New("i/o error")
)

// Snapshot container errors.
var (
	ErrInvalidSnapshotHeader = errors.New("invalid snapshot header")
	ErrChecksumMismatch      = errors.New("snapshot checksum mismatch")
)

// IOError wraps a failure of the underlying byte source or sink.
type IOError struct {
	Op  string
	Err error
}

func (e *IOError) Error() string {
	return "i/o error: " + e.Op + ": " + e.Err.Error()
}

func (e *IOError) Unwrap() error { return e.Err }

// Is reports whether target is ErrIO.
func (e *IOError) Is(target error) bool { return target == ErrIO }

// WrapIO wraps a stream error with the operation that produced it.
// A nil err returns nil.
func WrapIO(op string, err error) error {
	if err == nil {
		return nil
	}

	return &IOError{Op: op, Err: err}
}

// FieldError annotates an error with the path of the record field that produced it.
//
// The path grows outward as the error propagates: a failure inside the third
// effect of the tenth power reads "powers[9].effects[2].effect_type".
type FieldError struct {
	segments []string
	Err      error
}

// Path returns the dotted field path, with sequence indexes in brackets.
func (e *FieldError) Path() string {
	var sb strings.Builder
	for i, seg := range e.segments {
		if i > 0 && !strings.HasPrefix(seg, "[") {
			sb.WriteByte('.')
		}
		sb.WriteString(seg)
	}

	return sb.String()
}

func (e *FieldError) Error() string {
	return e.Path() + ": " + e.Err.Error()
}

func (e *FieldError) Unwrap() error { return e.Err }

// WithField prefixes the path of err with a field name.
// A nil err returns nil.
func WithField(err error, name string) error {
	return prefix(err, name)
}

// WithIndex prefixes the path of err with a sequence index.
// A nil err returns nil.
func WithIndex(err error, index int) error {
	return prefix(err, "["+strconv.Itoa(index)+"]")
}

func prefix(err error, seg string) error {
	if err == nil {
		return nil
	}

	if fe, ok := err.(*FieldError); ok {
		fe.segments = append([]string{seg}, fe.segments...)
		return fe
	}

	return &FieldError{segments: []string{seg}, Err: err}
}
