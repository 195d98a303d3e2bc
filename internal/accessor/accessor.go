// Package accessor implements get_direct: the width-parameterized value
// extractor every higher layer reads node payloads through. It is the
// single hottest path in the decoder, so it is kept allocation free and
// branches once per call on a small, closed set of widths.
package accessor

import "github.com/tdbkit/slab/endian"

// engine is the byte-order engine every multi-byte read in GetDirect
// goes through. The T-DB format is little-endian throughout.
var engine = endian.GetLittleEndianEngine()

// GetDirect extracts the i'th logical element from payload, given the
// element width in {0, 1, 2, 4, 8, 16, 32, 64}, zero-extending it to a
// uint64. Width 128 is not a logical element of this accessor — it
// addresses fixed-size blob slots and is exposed separately via Slot128.
// The caller must ensure i is within the node's declared size; GetDirect
// itself only guards against reading past payload, which a correctly
// sized payload never triggers.
func GetDirect(payload []byte, width uint, i uint32) uint64 {
	switch width {
	case 0:
		return 0
	case 1:
		b := payload[i>>3]
		return uint64((b >> (i & 7)) & 0x1)
	case 2:
		b := payload[i>>2]
		return uint64((b >> ((i & 3) << 1)) & 0x3)
	case 4:
		b := payload[i>>1]
		return uint64((b >> ((i & 1) << 2)) & 0xF)
	case 8:
		return uint64(payload[i])
	case 16:
		off := 2 * i
		return uint64(engine.Uint16(payload[off : off+2]))
	case 32:
		off := 4 * i
		return uint64(engine.Uint32(payload[off : off+4]))
	case 64:
		off := 8 * i
		return engine.Uint64(payload[off : off+8])
	default:
		// Unreachable for a payload built from a valid NodeHeader: width
		// is always 1<<width_ndx for width_ndx in [0,7], and 128 is
		// routed through Slot128 instead of GetDirect.
		panic("accessor: unsupported width for GetDirect")
	}
}

// Slot128 returns the 16-byte slice for the i'th fixed-size blob slot in
// a width-128 node, e.g. a UUID column. It is the one width value
// GetDirect does not handle.
func Slot128(payload []byte, i uint32) []byte {
	off := 16 * int(i)
	return payload[off : off+16]
}

