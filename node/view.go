// Package node implements View, the read-only handle combining a node
// header descriptor with the width-parameterized accessor and a
// back-pointer to the byte source for resolving child refs. It is the
// layer every higher-level consumer (string arrays, the table catalog)
// is built on top of.
package node

import (
	"github.com/tdbkit/slab/bytesource"
	"github.com/tdbkit/slab/errs"
	"github.com/tdbkit/slab/format"
	"github.com/tdbkit/slab/internal/accessor"
	"github.com/tdbkit/slab/section"
)

// View is an ephemeral, read-only handle over one node in the slab. It
// borrows from the byte source and owns no slab memory; constructing one
// is O(1) beyond the bounds checks ParseNodeHeader performs.
type View struct {
	src    bytesource.Source
	ref    int64
	header section.NodeHeader
}

// At constructs a View over the node at file-relative offset ref.
func At(src bytesource.Source, ref int64) (View, error) {
	h, err := section.ParseNodeHeader(src, ref)
	if err != nil {
		return View{}, err
	}

	return View{src: src, ref: ref, header: h}, nil
}

// Ref returns the file-relative offset this view was constructed from.
func (v View) Ref() int64 { return v.ref }

// Size returns the node's logical element count.
func (v View) Size() uint32 { return v.header.Size }

// Width returns the node's element width: 1 << width_ndx.
func (v View) Width() uint { return v.header.Width() }

// HasRefs reports whether the payload holds child refs rather than
// plain integers/bytes.
func (v View) HasRefs() bool { return v.header.HasRefs }

// ContextFlag reports the node header's context_flag bit. Among
// has_refs nodes it distinguishes the small-blob long-string shape
// (false) from the big-blob shape (true, unsupported here).
func (v View) ContextFlag() bool { return v.header.ContextFlag }

// IsInnerBptree reports the node header's is_inner_bptree bit.
func (v View) IsInnerBptree() bool { return v.header.IsInnerBptree }

// Payload returns the node's raw payload bytes.
func (v View) Payload() []byte { return v.header.Payload }

// Source returns the byte source this view was constructed over, for
// callers that need to resolve further refs manually.
func (v View) Source() bytesource.Source { return v.src }

// Get extracts the i'th logical element as a zero-extended uint64. It
// is the primary operation of the width-parameterized accessor,
// specialized here to a single node's payload and declared size.
//
// Get always interprets Width() in the get_direct convention: widths
// below 8 address sub-byte bit lanes, widths 8 and above address whole
// bytes at a stride of Width()/8. A node meant to be read through Get
// (ref arrays, offset arrays, plain integer columns) must therefore use
// width_scheme 0, whose ceil(width*size/8) payload-length formula
// matches that convention for every width. width_scheme 1's width*size
// formula treats width as a literal byte count and is for RawSlot-style
// fixed-width byte slots instead — those are never read through Get.
func (v View) Get(i uint32) (uint64, error) {
	if i >= v.header.Size {
		return 0, errs.At(errs.ErrOutOfBounds, v.ref)
	}

	return accessor.GetDirect(v.header.Payload, v.header.Width(), i), nil
}

// GetRef extracts the i'th element and validates it as a ref: 0
// (absent) or a positive multiple of format.RefAlignment within the
// byte source's bounds. Any other value is ErrInvalidRef.
func (v View) GetRef(i uint32) (int64, error) {
	raw, err := v.Get(i)
	if err != nil {
		return 0, err
	}

	if raw == 0 {
		return 0, nil
	}

	ref := int64(raw)
	if ref%format.RefAlignment != 0 || ref < format.FileHeaderSize || ref >= v.src.Len() {
		return 0, errs.AtOffset(errs.ErrInvalidRef, v.ref, int64(i))
	}

	return ref, nil
}

// RawSlot returns the byte slice of Width() bytes for the i'th slot of
// a scheme-1 (bytes-per-element) node. Short-string arrays are built
// directly on top of this.
func (v View) RawSlot(i uint32) ([]byte, error) {
	if i >= v.header.Size {
		return nil, errs.At(errs.ErrOutOfBounds, v.ref)
	}

	width := int64(v.header.Width())
	start := width * int64(i)
	end := start + width

	if end > int64(len(v.header.Payload)) {
		return nil, errs.At(errs.ErrOutOfBounds, v.ref)
	}

	return v.header.Payload[start:end], nil
}

// ChildNode resolves GetRef(i) and, if the ref is present, constructs a
// fresh View over the child node. The second return value is false when
// the ref is absent (0), which is never an error.
func (v View) ChildNode(i uint32) (View, bool, error) {
	ref, err := v.GetRef(i)
	if err != nil {
		return View{}, false, err
	}

	if ref == 0 {
		return View{}, false, nil
	}

	child, err := At(v.src, ref)
	if err != nil {
		return View{}, false, err
	}

	return child, true, nil
}
