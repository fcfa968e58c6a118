// Package endian provides the byte order used by the netbin wire format.
//
// The format stores every multi-byte integer and float in a single byte order for
// the whole document. Legacy documents are little-endian; big-endian exists for
// producers that mirrored the layout on other hosts.
//
//	engine := endian.GetLittleEndianEngine()
//	w := encoding.NewWriter(dst, engine)
//
// All functions and methods in this package are safe for concurrent use.
// The returned EndianEngine instances are immutable and stateless.
package endian

import (
	"encoding/binary"
	"fmt"
	"strings"
)

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary.
//
// binary.LittleEndian and binary.BigEndian both satisfy it, so the primitive
// codec can append fixed-width values to a scratch buffer without an extra copy.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine, the default for netbin documents.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// ByName resolves a configured byte order name.
//
// Accepted names are "little", "little-endian", "le", "big", "big-endian" and "be"
// (case-insensitive). An empty name selects little-endian.
func ByName(name string) (EndianEngine, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "little", "little-endian", "le":
		return GetLittleEndianEngine(), nil
	case "big", "big-endian", "be":
		return GetBigEndianEngine(), nil
	default:
		return nil, fmt.Errorf("unknown byte order %q", name)
	}
}

// Name returns the canonical name of engine ("little" or "big").
func Name(engine EndianEngine) string {
	if engine == EndianEngine(binary.BigEndian) {
		return "big"
	}

	return "little"
}
