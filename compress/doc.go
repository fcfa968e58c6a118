// Package compress provides the block codecs used by netbin snapshots.
//
// A snapshot stores one encoded document as a single block, so every codec works
// on whole byte slices rather than streams:
//
//	codec, _ := compress.GetCodec(format.CompressionZstd)
//	packed, _ := codec.Compress(document)
//	document, _ = compress.DecompressSize(codec, packed, rawLen)
//
// # Supported Algorithms
//
//   - None: stores the document as-is
//   - Zstd: best ratio; the default for archived databases
//   - S2: fast with a reasonable ratio
//   - LZ4: fastest decompression
//
// Zstd uses the pure-Go klauspost/compress implementation. Building with the
// gozstd tag switches to the cgo bindings in valyala/gozstd, which are faster on
// large inputs but need a C toolchain.
//
// # Thread Safety
//
// All codecs are stateless values; pooled encoder and decoder state is managed
// internally, so a codec may be shared between goroutines.
package compress
