// Package endian provides the byte-order engine the slab decoder reads
// multi-byte integers through: ByteOrder and AppendByteOrder from
// encoding/binary combined into one interface.
//
// The T-DB container format is little-endian throughout, so every
// decode path in this module is wired to GetLittleEndianEngine.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary
// into a single interface. binary.LittleEndian and binary.BigEndian both
// satisfy it without adaptation.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine. Every field in
// the T-DB file header and node header is little-endian; this is the
// engine every decoder in this module reads through.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine. No field in the T-DB
// format is big-endian; kept for interface symmetry with
// GetLittleEndianEngine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}
