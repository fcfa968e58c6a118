package compress

import (
	"fmt"
	"math"

	"github.com/mhdkit/netbin/format"
)

// Compressor compresses a whole block.
//
// The returned slice is owned by the caller; the input is not modified.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor.
//
// Corrupt input or input from another algorithm fails with an error.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// SizedDecompressor is implemented by codecs that can decompress straight into
// a buffer of a known final size.
type SizedDecompressor interface {
	DecompressSize(data []byte, size int) ([]byte, error)
}

// Bounded is implemented by codecs that know the largest output a payload of
// a given length can decompress to.
type Bounded interface {
	MaxDecompressedLen(compressedLen int) uint64
}

// MaxDecompressedLen returns the largest length c can produce from
// compressedLen bytes, or math.MaxUint64 when c gives no bound.
//
// Readers compare a claimed raw length against it before allocating.
func MaxDecompressedLen(c Decompressor, compressedLen int) uint64 {
	if b, ok := c.(Bounded); ok {
		return b.MaxDecompressedLen(compressedLen)
	}

	return math.MaxUint64
}

// Codec combines both directions.
type Codec interface {
	Compressor
	Decompressor
}

// DecompressSize decompresses data whose original length is known to be size.
//
// Codecs implementing SizedDecompressor use size to check the payload and to
// bound their buffers; others fall back to Decompress. Callers reading size
// from untrusted input should check it against MaxDecompressedLen first. In both cases a result of any other length is an error.
func DecompressSize(c Decompressor, data []byte, size int) ([]byte, error) {
	var (
		out []byte
		err error
	)
	if sd, ok := c.(SizedDecompressor); ok {
		out, err = sd.DecompressSize(data, size)
	} else {
		out, err = c.Decompress(data)
	}
	if err != nil {
		return nil, err
	}
	if len(out) != size {
		return nil, fmt.Errorf("decompressed %d bytes, want %d", len(out), size)
	}

	return out, nil
}

// CompressionStats describes one compression.
type CompressionStats struct {
	Algorithm      format.CompressionType
	OriginalSize   int64
	CompressedSize int64
}

// CompressionRatio returns compressed size / original size, or 0 for empty input.
func (s CompressionStats) CompressionRatio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the space saved as a percentage.
func (s CompressionStats) SpaceSavings() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return (1.0 - s.CompressionRatio()) * 100.0
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec returns the built-in codec for a compression type.
//
// Parameters:
//   - compressionType: None, Zstd, S2 or LZ4
//
// Returns:
//   - Codec: Shared codec instance
//   - error: Unknown compression type
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}
