package slab

import (
	"errors"

	"github.com/tdbkit/slab/bytesource"
	"github.com/tdbkit/slab/catalog"
	"github.com/tdbkit/slab/errs"
	"github.com/tdbkit/slab/format"
	"github.com/tdbkit/slab/node"
	"github.com/tdbkit/slab/section"
)

// File is a handle over an opened T-DB slab container: the byte source
// it was opened from, the parsed file header, and the active top ref
// selected from it. Constructing one performs §4.2 once; every other
// operation is read against the byte source it borrows.
type File struct {
	src       bytesource.Source
	header    section.FileHeader
	activeRef int64
}

// Open validates src's file header and resolves the active top ref. A
// non-zero reserved header byte is tolerated (see FileHeader) and never
// fails Open; every other structural violation does.
func Open(src bytesource.Source) (*File, error) {
	headerBytes, err := src.Slice(0, format.FileHeaderSize)
	if err != nil {
		return nil, errs.At(errs.ErrOutOfBounds, 0)
	}

	h, err := section.ParseFileHeader(headerBytes)
	if err != nil && !errors.Is(err, errs.ErrReservedNonZero) {
		return nil, err
	}

	activeRef := h.ActiveTopRef()
	if activeRef != 0 {
		if activeRef%format.RefAlignment != 0 {
			return nil, errs.At(errs.ErrMisaligned, activeRef)
		}
		if activeRef < format.FileHeaderSize || activeRef >= src.Len() {
			return nil, errs.At(errs.ErrOutOfBounds, activeRef)
		}
	}

	return &File{src: src, header: h, activeRef: activeRef}, nil
}

// FileHeader returns the parsed file header, e.g. for callers that want
// to check Reserved themselves.
func (f *File) FileHeader() section.FileHeader { return f.header }

// ActiveTopRef returns the ref selected by the header's flag bit. A
// value of 0 means the database is empty.
func (f *File) ActiveTopRef() int64 { return f.activeRef }

// Root returns the node.View at the active top ref. If the database is
// empty (ActiveTopRef() == 0), Root returns errs.ErrEmptyDatabase: a
// distinct success value, not a structural failure, so callers should
// check for it with errors.Is rather than treating it as fatal.
func (f *File) Root() (node.View, error) {
	if f.activeRef == 0 {
		return node.View{}, errs.ErrEmptyDatabase
	}

	return node.At(f.src, f.activeRef)
}

// NodeAt resolves an arbitrary file-relative ref turned up while walking
// child nodes, e.g. a ref read out of a parent's payload via Get.
func (f *File) NodeAt(ref int64) (node.View, error) {
	return node.At(f.src, ref)
}

// Catalog builds a table catalog over the root node. An empty database
// yields an empty, zero-table Catalog rather than an error.
func (f *File) Catalog() (catalog.Catalog, error) {
	root, err := f.Root()
	if err != nil {
		if errors.Is(err, errs.ErrEmptyDatabase) {
			return catalog.Catalog{}, nil
		}

		return catalog.Catalog{}, err
	}

	return catalog.Open(root)
}
