// Package format defines the bit-exact constants of the T-DB slab
// container format: the file header layout, the node header bitfield
// layout, and the width-scheme enumeration.
package format

// Mnemonic is the 4-byte ASCII tag identifying the container format,
// stored at file header offset 0x10.
const Mnemonic = "T-DB"

// VersionMajor and VersionMinor are the only supported file format
// version. Version other than (9, 9) is rejected with ErrUnsupportedVersion.
const (
	VersionMajor = 9
	VersionMinor = 9
)

// File header byte offsets. The header occupies [0, 24): two 8-byte top
// refs followed by the 8-byte mnemonic/version/reserved/flags block. The
// top-ref pair alone is 16 bytes; the bit-exact offsets below, reaching
// through 0x17, are authoritative. See DESIGN.md.
const (
	FileHeaderSize = 24

	TopRef0Offset   = 0x00
	TopRef1Offset   = 0x08
	MnemonicOffset  = 0x10
	VersionOffset   = 0x14
	ReservedOffset  = 0x16
	FileFlagsOffset = 0x17
)

// FileFlagActiveTopRef is bit 0 of the file header's flags byte: when set,
// top_ref_1 is the active top ref, otherwise top_ref_0 is.
const FileFlagActiveTopRef = 1 << 0

// FileFlagsKnownMask covers every file-header flag bit this reader
// understands. Any bit outside this mask is rejected as unsupported:
// unknown flag bits beyond bit 0 must not be silently ignored.
const FileFlagsKnownMask = FileFlagActiveTopRef

// NodeHeaderSize is the fixed size of a node header: a 32-bit checksum,
// a flags byte, and a 24-bit little-endian size field.
const NodeHeaderSize = 8

// NodeChecksum is the constant checksum value every valid node header
// must carry at byte offset 0.
const NodeChecksum uint32 = 0x41414141

// RefAlignment is the alignment every ref (file-relative byte offset)
// must satisfy. A ref of 0 denotes "absent".
const RefAlignment = 8

// WidthScheme identifies how a node's width and size map onto a payload
// byte count.
type WidthScheme uint8

const (
	// WidthSchemeBits interprets width as bits per element; payload size
	// is ceil(width*size/8).
	WidthSchemeBits WidthScheme = 0
	// WidthSchemeBytes interprets width as bytes per element; payload
	// size is width*size.
	WidthSchemeBytes WidthScheme = 1
	// WidthSchemeSingle treats the payload as one opaque object of
	// `width` bytes, regardless of size.
	WidthSchemeSingle WidthScheme = 2
	// widthSchemeReserved (3) is not a valid scheme; decoding rejects it
	// as a malformed header.
	widthSchemeReserved WidthScheme = 3
)

// Valid reports whether s is one of the three defined width schemes.
func (s WidthScheme) Valid() bool {
	return s == WidthSchemeBits || s == WidthSchemeBytes || s == WidthSchemeSingle
}

func (s WidthScheme) String() string {
	switch s {
	case WidthSchemeBits:
		return "bits"
	case WidthSchemeBytes:
		return "bytes"
	case WidthSchemeSingle:
		return "single"
	default:
		return "reserved"
	}
}

// NodeFlags decodes the single flags byte at node header offset 4, laid
// out LSB→MSB as: is_inner_bptree(1) | has_refs(1) | context_flag(1) |
// width_scheme(2) | width_ndx(3).
type NodeFlags struct {
	IsInnerBptree bool
	HasRefs       bool
	ContextFlag   bool
	WidthScheme   WidthScheme
	WidthNdx      uint8
}

const (
	nodeFlagInnerBptreeBit = 1 << 0
	nodeFlagHasRefsBit     = 1 << 1
	nodeFlagContextBit     = 1 << 2
	nodeFlagSchemeShift    = 3
	nodeFlagSchemeMask     = 0x3
	nodeFlagWidthNdxShift  = 5
	nodeFlagWidthNdxMask   = 0x7
)

// DecodeNodeFlags unpacks the raw flags byte into its five subfields.
func DecodeNodeFlags(b byte) NodeFlags {
	return NodeFlags{
		IsInnerBptree: b&nodeFlagInnerBptreeBit != 0,
		HasRefs:       b&nodeFlagHasRefsBit != 0,
		ContextFlag:   b&nodeFlagContextBit != 0,
		WidthScheme:   WidthScheme((b >> nodeFlagSchemeShift) & nodeFlagSchemeMask),
		WidthNdx:      (b >> nodeFlagWidthNdxShift) & nodeFlagWidthNdxMask,
	}
}

// Width returns the element width implied by WidthNdx: 1 << WidthNdx,
// one of {1, 2, 4, 8, 16, 32, 64, 128}.
func (f NodeFlags) Width() uint {
	return 1 << f.WidthNdx
}

// SizeMask masks the 24-bit little-endian `size` field stored at node
// header bytes [5, 8).
const SizeMask = 0x00FFFFFF
