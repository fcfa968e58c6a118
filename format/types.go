package format

import (
	"fmt"
	"strings"
)

type (
	// Kind identifies one of the wire shapes a record field can take.
	Kind uint8
	// CompressionType identifies the compression applied to a snapshot payload.
	CompressionType uint8
)

const (
	KindInvalid Kind = iota
	KindBool         // KindBool is one byte, 0 or 1 on write, nonzero is true on read.
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindFloat32
	KindFloat64
	KindBytes   // KindBytes is a 7-bit length prefix followed by raw bytes.
	KindString  // KindString is KindBytes holding valid UTF-8.
	KindEnum    // KindEnum is a uint32 ordinal that must be declared.
	KindFlags   // KindFlags is a uint32 bit mask; unknown bits are ignored.
	KindSeq     // KindSeq is an int32 (count-1) prefix followed by the elements.
	KindHackSeq // KindHackSeq is an int32 count, then a KindSeq.
	KindTuple   // KindTuple is a fixed number of elements with no prefix.
	KindRecord  // KindRecord is the declared fields in order with no framing.
	KindUnit    // KindUnit occupies zero bytes.

	// Shapes the format cannot express. They exist so that errors can name them.
	KindOptional
	KindMap
	KindChar
	KindVariant
)

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

var kindNames = [...]string{
	KindInvalid:  "invalid",
	KindBool:     "bool",
	KindInt8:     "int8",
	KindInt16:    "int16",
	KindInt32:    "int32",
	KindInt64:    "int64",
	KindUint8:    "uint8",
	KindUint16:   "uint16",
	KindUint32:   "uint32",
	KindUint64:   "uint64",
	KindFloat32:  "float32",
	KindFloat64:  "float64",
	KindBytes:    "bytes",
	KindString:   "string",
	KindEnum:     "enum",
	KindFlags:    "flags",
	KindSeq:      "seq",
	KindHackSeq:  "hack seq",
	KindTuple:    "tuple",
	KindRecord:   "record",
	KindUnit:     "unit",
	KindOptional: "optional",
	KindMap:      "map",
	KindChar:     "char",
	KindVariant:  "variant",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}

	return "Unknown"
}

// Supported reports whether the wire format can carry values of this kind.
func (k Kind) Supported() bool {
	return k > KindInvalid && k < KindOptional
}

// FixedSize returns the encoded size of fixed-width kinds, or 0 for variable-width ones.
func (k Kind) FixedSize() int {
	switch k { //nolint: exhaustive
	case KindBool, KindInt8, KindUint8:
		return 1
	case KindInt16, KindUint16:
		return 2
	case KindInt32, KindUint32, KindFloat32, KindEnum, KindFlags:
		return 4
	case KindInt64, KindUint64, KindFloat64:
		return 8
	default:
		return 0
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// ParseCompression resolves a compression name as written in configuration files
// and command lines ("none", "zstd", "s2", "lz4", case-insensitive).
func ParseCompression(name string) (CompressionType, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none":
		return CompressionNone, nil
	case "zstd":
		return CompressionZstd, nil
	case "s2":
		return CompressionS2, nil
	case "lz4":
		return CompressionLZ4, nil
	default:
		return 0, fmt.Errorf("unknown compression %q", name)
	}
}
