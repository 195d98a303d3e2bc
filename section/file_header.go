// Package section decodes the two fixed binary structures the slab
// format is built from: the 24-byte file header and the 8-byte node
// header that precedes every node's payload.
package section

import (
	"github.com/tdbkit/slab/endian"
	"github.com/tdbkit/slab/errs"
	"github.com/tdbkit/slab/format"
)

// engine is the byte-order engine the file header's two top refs are
// read through. The T-DB format is little-endian throughout.
var engine = endian.GetLittleEndianEngine()

// FileHeader is the parsed form of the 24-byte region at file offset 0.
type FileHeader struct {
	TopRef0      int64
	TopRef1      int64
	VersionMajor uint8
	VersionMinor uint8
	Reserved     uint8
	Flags        uint8
}

// ActiveTopRef returns the top ref selected by bit 0 of Flags: top_ref_1
// if set, otherwise top_ref_0.
func (h FileHeader) ActiveTopRef() int64 {
	if h.Flags&format.FileFlagActiveTopRef != 0 {
		return h.TopRef1
	}

	return h.TopRef0
}

// ParseFileHeader reads and validates the file header from the first
// format.FileHeaderSize bytes of data.
//
// It does not resolve the active top ref against the file length; that
// is the caller's responsibility once the full byte source is known (see
// Open in the root package), so ParseFileHeader can be unit tested
// against header bytes alone.
func ParseFileHeader(data []byte) (FileHeader, error) {
	if len(data) < format.FileHeaderSize {
		return FileHeader{}, errs.At(errs.ErrOutOfBounds, 0)
	}

	mnemonic := data[format.MnemonicOffset : format.MnemonicOffset+4]
	if string(mnemonic) != format.Mnemonic {
		return FileHeader{}, errs.At(errs.ErrBadMagic, 0)
	}

	major := data[format.VersionOffset]
	minor := data[format.VersionOffset+1]
	if major != format.VersionMajor || minor != format.VersionMinor {
		return FileHeader{}, errs.At(errs.ErrUnsupportedVersion, 0)
	}

	reserved := data[format.ReservedOffset]
	flags := data[format.FileFlagsOffset]
	if flags&^format.FileFlagsKnownMask != 0 {
		return FileHeader{}, errs.At(errs.ErrUnsupportedFlags, 0)
	}

	h := FileHeader{
		TopRef0:      int64(engine.Uint64(data[format.TopRef0Offset : format.TopRef0Offset+8])),
		TopRef1:      int64(engine.Uint64(data[format.TopRef1Offset : format.TopRef1Offset+8])),
		VersionMajor: major,
		VersionMinor: minor,
		Reserved:     reserved,
		Flags:        flags,
	}

	// ErrReservedNonZero is non-fatal: it is returned alongside a valid
	// header so callers that care can check for it, but it never blocks
	// Open.
	if reserved != 0 {
		return h, errs.At(errs.ErrReservedNonZero, 0)
	}

	return h, nil
}
