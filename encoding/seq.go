package encoding

import (
	"fmt"
	"math"

	"github.com/mhdkit/netbin/errs"
)

// LengthUnknown marks a sequence whose element count is not known up front.
// The wire format is prefix-based, so such sequences cannot be encoded.
const LengthUnknown = -1

// MaxSeqLen is the largest element count the writer accepts.
const MaxSeqLen = math.MaxInt32

// CheckSeqLen validates an element count for encoding.
//
// Returns errs.ErrSequenceLengthRequired for a negative count and
// errs.ErrSequenceTooLong when the count does not fit in a signed 32-bit integer.
func CheckSeqLen(n int) error {
	if n < 0 {
		return errs.ErrSequenceLengthRequired
	}
	if int64(n) > MaxSeqLen {
		return fmt.Errorf("%w: %d elements", errs.ErrSequenceTooLong, n)
	}

	return nil
}

// WriteSeqLen writes the conventional sequence prefix, int32(n - 1).
//
// The count is validated before anything is written, so a rejected sequence
// leaves the sink untouched.
func (w *Writer) WriteSeqLen(n int) error {
	if err := CheckSeqLen(n); err != nil {
		return err
	}

	return w.WriteInt32(int32(n - 1)) //nolint:gosec
}

// WriteHackSeqLen writes the legacy double-length prefix: int32(n) followed by int32(n - 1).
func (w *Writer) WriteHackSeqLen(n int) error {
	if err := CheckSeqLen(n); err != nil {
		return err
	}

	buf := w.engine.AppendUint32(w.scratch[:0], uint32(n))
	buf = w.engine.AppendUint32(buf, uint32(int32(n-1))) //nolint:gosec

	return w.write("write hack seq length", buf)
}

// ReadSeqLen reads a conventional sequence prefix and returns the element count.
//
// A prefix of -1 means zero elements. Any smaller prefix fails with
// errs.ErrInvalidSequenceLength; a count above the configured maximum fails with
// errs.ErrLengthLimitExceeded.
func (r *Reader) ReadSeqLen() (int, error) {
	last, err := r.ReadInt32()
	if err != nil {
		return 0, err
	}
	if last < -1 {
		return 0, fmt.Errorf("%w: prefix %d", errs.ErrInvalidSequenceLength, last)
	}

	n := int(last) + 1
	if err := r.checkLimit(n); err != nil {
		return 0, err
	}

	return n, nil
}

// ReadHackSeqLen reads the legacy double-length prefix.
//
// The literal count is returned for diagnostics only; the element count comes from
// the conventional prefix that follows it, whether or not the two agree.
func (r *Reader) ReadHackSeqLen() (count int, literal int32, err error) {
	literal, err = r.ReadInt32()
	if err != nil {
		return 0, 0, err
	}

	count, err = r.ReadSeqLen()
	if err != nil {
		return 0, literal, err
	}

	return count, literal, nil
}
