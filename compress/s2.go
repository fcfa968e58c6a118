package compress

import (
	"fmt"

	"github.com/klauspost/compress/s2"
)

// S2Compressor uses the S2 block format.
type S2Compressor struct{}

var _ Codec = (*S2Compressor)(nil)

// NewS2Compressor creates an S2 codec.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// Compress compresses data as one S2 block.
func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Encode(nil, data), nil
}

// Decompress decompresses one S2 block.
func (c S2Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Decode(nil, data)
}

// DecompressSize checks the block's declared length against size before
// allocating.
func (c S2Compressor) DecompressSize(data []byte, size int) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	n, err := s2.DecodedLen(data)
	if err != nil {
		return nil, err
	}
	if n != size {
		return nil, fmt.Errorf("s2 block holds %d bytes, want %d", n, size)
	}

	return s2.Decode(make([]byte, size), data)
}

// s2MaxRatioShift bounds S2 expansion per input byte: the longest repeat tag
// spends 5 bytes on under 1<<24+1<<17 output bytes.
const s2MaxRatioShift = 22

// MaxDecompressedLen returns the largest output an S2 block of n bytes can
// describe.
func (c S2Compressor) MaxDecompressedLen(n int) uint64 {
	return uint64(max(n, 0)) << s2MaxRatioShift
}
