package compress

import (
	"fmt"

	"github.com/klauspost/compress/zstd"
)

// zstdMaxRatioShift bounds Zstandard expansion per input byte: the cheapest
// block is 4 bytes (an RLE block) and no block regenerates more than 128KiB.
const zstdMaxRatioShift = 15

// zstdInitialCap bounds the capacity reserved before a frame is decoded.
const zstdInitialCap = 1 << 20

// ZstdCompressor uses Zstandard frames. It is the recommended codec for
// archived databases, which are dominated by repeated identifier strings.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a Zstd codec at the default level.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}

// MaxDecompressedLen returns the largest output n bytes of Zstandard frames
// can describe.
func (c ZstdCompressor) MaxDecompressedLen(n int) uint64 {
	return uint64(max(n, 0)) << zstdMaxRatioShift
}

// checkFrameSize rejects a frame whose declared content size differs from size.
func checkFrameSize(data []byte, size int) error {
	var h zstd.Header
	if err := h.Decode(data); err != nil {
		return fmt.Errorf("zstd frame header: %w", err)
	}
	if h.HasFCS && h.FrameContentSize != uint64(size) { //nolint:gosec
		return fmt.Errorf("zstd frame holds %d bytes, want %d", h.FrameContentSize, size)
	}

	return nil
}
