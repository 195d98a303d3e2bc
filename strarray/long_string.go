package strarray

import (
	"unicode/utf8"

	"github.com/tdbkit/slab/errs"
	"github.com/tdbkit/slab/node"
)

// LongString decodes a has_refs==1, context_flag==0 node as the
// small-blob long-string array: an offsets array, a blob node, and an
// optional null-marker array.
type LongString struct {
	offsets node.View
	blob    node.View
	nulls   *node.View // nil when the parent has arity 2 (no null marker child)
}

// NewLongString constructs a LongString over parent, resolving its
// offsets/blob/(optional) nulls children. parent must have HasRefs() ==
// true and ContextFlag() == false; the big-blob shape (ContextFlag() ==
// true) is rejected as ErrUnsupportedNodeShape.
//
// The arity of parent (its Size()) must be 2 or 3 — anything else is an
// unexpected shape, rejected rather than guessed at: whether the
// null-marker child is present varies across file-format minor
// versions within the 9.x family, and a reader that assumes one arity
// or the other risks silently misreading a differently-shaped file.
func NewLongString(parent node.View) (LongString, error) {
	if !parent.HasRefs() || parent.ContextFlag() {
		return LongString{}, errs.At(errs.ErrUnsupportedNodeShape, parent.Ref())
	}

	switch parent.Size() {
	case 2, 3:
	default:
		return LongString{}, errs.At(errs.ErrUnsupportedNodeShape, parent.Ref())
	}

	offsets, ok, err := parent.ChildNode(0)
	if err != nil {
		return LongString{}, err
	}
	if !ok {
		return LongString{}, errs.At(errs.ErrUnsupportedNodeShape, parent.Ref())
	}

	blob, ok, err := parent.ChildNode(1)
	if err != nil {
		return LongString{}, err
	}
	if !ok {
		return LongString{}, errs.At(errs.ErrUnsupportedNodeShape, parent.Ref())
	}

	ls := LongString{offsets: offsets, blob: blob}

	if parent.Size() == 3 {
		nulls, ok, err := parent.ChildNode(2)
		if err != nil {
			return LongString{}, err
		}
		if ok {
			ls.nulls = &nulls
		}
	}

	return ls, nil
}

// Len returns the number of elements, i.e. the offsets array's size.
func (l LongString) Len() int { return int(l.offsets.Size()) }

// Get returns the raw bytes of the i'th element, with ok=false meaning
// it is null (per the optional nulls array).
func (l LongString) Get(i int) (data []byte, ok bool, err error) {
	if i < 0 || uint32(i) >= l.offsets.Size() {
		return nil, false, errs.At(errs.ErrOutOfBounds, l.offsets.Ref())
	}

	if l.nulls != nil {
		marker, err := l.nulls.Get(uint32(i))
		if err != nil {
			return nil, false, err
		}
		if marker == 1 {
			return nil, false, nil
		}
	}

	end, err := l.offsets.Get(uint32(i))
	if err != nil {
		return nil, false, err
	}

	var begin uint64
	if i > 0 {
		begin, err = l.offsets.Get(uint32(i - 1))
		if err != nil {
			return nil, false, err
		}
	}

	blobPayload := l.blob.Payload()
	if begin > end || end > uint64(len(blobPayload)) {
		return nil, false, errs.AtOffset(errs.ErrCorruptOffsets, l.offsets.Ref(), int64(i))
	}

	return blobPayload[begin:end], true, nil
}

// GetString is Get, additionally stripping a single trailing C-string
// terminator byte and validating UTF-8.
func (l LongString) GetString(i int) (val string, ok bool, err error) {
	data, ok, err := l.Get(i)
	if err != nil || !ok {
		return "", ok, err
	}

	if len(data) == 0 || data[len(data)-1] != 0 {
		return "", false, errs.AtOffset(errs.ErrMissingTerminator, l.offsets.Ref(), int64(i))
	}

	data = data[:len(data)-1]

	if !utf8.Valid(data) {
		return "", false, errs.AtOffset(errs.ErrInvalidUtf8, l.offsets.Ref(), int64(i))
	}

	return string(data), true, nil
}
