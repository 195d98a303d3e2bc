// Package strarray implements the two string-array shapes layered on
// top of node.View: the short-string array (inline fixed-width slots)
// and the long-string (small-blob) array (offsets + blob + optional
// nulls).
package strarray

import (
	"unicode/utf8"

	"github.com/tdbkit/slab/errs"
	"github.com/tdbkit/slab/node"
)

// ShortString decodes a has_refs==0 node as an array of inline,
// fixed-width, null-padded string slots.
type ShortString struct {
	v node.View
}

// NewShortString constructs a ShortString over v. v must have
// HasRefs() == false.
func NewShortString(v node.View) (ShortString, error) {
	if v.HasRefs() {
		return ShortString{}, errs.At(errs.ErrUnsupportedNodeShape, v.Ref())
	}

	return ShortString{v: v}, nil
}

// Len returns the number of slots in the array.
func (s ShortString) Len() int { return int(s.v.Size()) }

// Get returns the raw bytes of the i'th slot, with ok=false meaning the
// slot holds a null. UTF-8 is not enforced here; use GetString for that.
func (s ShortString) Get(i int) (data []byte, ok bool, err error) {
	if i < 0 || uint32(i) >= s.v.Size() {
		return nil, false, errs.At(errs.ErrOutOfBounds, s.v.Ref())
	}

	width := s.v.Width()
	if width == 0 {
		// Every element is null when width is 0, regardless of size.
		return nil, false, nil
	}

	slot, err := s.v.RawSlot(uint32(i))
	if err != nil {
		return nil, false, err
	}

	k := int(slot[width-1])
	if k == int(width) {
		return nil, false, nil
	}

	if k < 0 || k > int(width) {
		return nil, false, errs.AtOffset(errs.ErrMalformedShortString, s.v.Ref(), int64(i))
	}

	strLen := int(width) - 1 - k

	return slot[:strLen], true, nil
}

// GetString is Get plus UTF-8 validation.
func (s ShortString) GetString(i int) (val string, ok bool, err error) {
	data, ok, err := s.Get(i)
	if err != nil || !ok {
		return "", ok, err
	}

	if !utf8.Valid(data) {
		return "", false, errs.AtOffset(errs.ErrInvalidUtf8, s.v.Ref(), int64(i))
	}

	return string(data), true, nil
}
