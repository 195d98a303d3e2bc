package section

import (
	"github.com/tdbkit/slab/bytesource"
	"github.com/tdbkit/slab/errs"
	"github.com/tdbkit/slab/format"
)

// NodeHeader is the parsed form of the 8-byte header preceding a node's
// payload, plus the payload slice it bounds.
type NodeHeader struct {
	format.NodeFlags
	Size    uint32 // logical element count (24-bit)
	Payload []byte // the payload slice this header bounds
}

// PayloadLen computes the payload byte count for the given width scheme,
// width, and size.
func PayloadLen(scheme format.WidthScheme, width uint, size uint32) int64 {
	switch scheme {
	case format.WidthSchemeBits:
		return int64((uint64(width)*uint64(size) + 7) / 8)
	case format.WidthSchemeBytes:
		return int64(width) * int64(size)
	case format.WidthSchemeSingle:
		return int64(width)
	default:
		return 0
	}
}

// ParseNodeHeader decodes the 8-byte node header at file-relative offset
// ref, reading through src, and returns a NodeHeader whose Payload slice
// is bounds-checked against the source's length.
func ParseNodeHeader(src bytesource.Source, ref int64) (NodeHeader, error) {
	if ref%format.RefAlignment != 0 {
		return NodeHeader{}, errs.At(errs.ErrMisaligned, ref)
	}

	headerBytes, err := src.Slice(ref, format.NodeHeaderSize)
	if err != nil {
		return NodeHeader{}, errs.At(errs.ErrOutOfBounds, ref)
	}

	checksum := engine.Uint32(headerBytes[0:4])
	if checksum != format.NodeChecksum {
		return NodeHeader{}, errs.At(errs.ErrChecksumMismatch, ref)
	}

	flags := format.DecodeNodeFlags(headerBytes[4])
	if !flags.WidthScheme.Valid() {
		return NodeHeader{}, errs.At(errs.ErrMalformedHeader, ref)
	}

	size := decodeSize24(headerBytes[5:8])
	width := flags.Width()
	payloadLen := PayloadLen(flags.WidthScheme, width, size)

	payload, err := src.Slice(ref+format.NodeHeaderSize, payloadLen)
	if err != nil {
		return NodeHeader{}, errs.At(errs.ErrOutOfBounds, ref)
	}

	return NodeHeader{
		NodeFlags: flags,
		Size:      size,
		Payload:   payload,
	}, nil
}

// decodeSize24 decodes a 24-bit little-endian unsigned integer.
func decodeSize24(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16
}
