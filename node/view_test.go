package node

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tdbkit/slab/bytesource"
	"github.com/tdbkit/slab/errs"
	"github.com/tdbkit/slab/format"
)

// buildNode appends one node (header + payload) to buf at the current
// (8-aligned) length and returns its ref.
func buildNode(buf []byte, hasRefs, contextFlag bool, scheme format.WidthScheme, widthNdx uint8, size uint32, payload []byte) ([]byte, int64) {
	ref := int64(len(buf))

	var flags byte
	if hasRefs {
		flags |= 1 << 1
	}
	if contextFlag {
		flags |= 1 << 2
	}
	flags |= byte(scheme) << 3
	flags |= (widthNdx & 0x7) << 5

	header := make([]byte, format.NodeHeaderSize)
	binary.LittleEndian.PutUint32(header[0:4], format.NodeChecksum)
	header[4] = flags
	header[5] = byte(size)
	header[6] = byte(size >> 8)
	header[7] = byte(size >> 16)

	buf = append(buf, header...)
	buf = append(buf, payload...)

	// keep the buffer 8-aligned for the next node
	for len(buf)%8 != 0 {
		buf = append(buf, 0)
	}

	return buf, ref
}

func TestView_GetAndSize(t *testing.T) {
	require := require.New(t)

	buf := make([]byte, format.FileHeaderSize) // leading filler, as if after a file header
	payload := []byte{0xAA, 0xBB, 0xCC, 0xDD}
	buf, ref := buildNode(buf, false, false, format.WidthSchemeBits, 3, 4, payload)

	src := bytesource.NewMemory(buf)
	v, err := At(src, ref)
	require.NoError(err)
	require.Equal(uint32(4), v.Size())
	require.Equal(uint(8), v.Width())

	for i, want := range payload {
		got, err := v.Get(uint32(i))
		require.NoError(err)
		require.Equal(uint64(want), got)
	}
}

func TestView_Get_IndexOutOfRange(t *testing.T) {
	require := require.New(t)

	buf := make([]byte, format.FileHeaderSize)
	buf, ref := buildNode(buf, false, false, format.WidthSchemeBits, 3, 2, []byte{1, 2})

	src := bytesource.NewMemory(buf)
	v, err := At(src, ref)
	require.NoError(err)

	_, err = v.Get(2)
	require.ErrorIs(err, errs.ErrOutOfBounds)
}

func TestView_SizeZero_EmptyIteration(t *testing.T) {
	require := require.New(t)

	buf := make([]byte, format.FileHeaderSize)
	buf, ref := buildNode(buf, false, false, format.WidthSchemeBits, 3, 0, nil)

	src := bytesource.NewMemory(buf)
	v, err := At(src, ref)
	require.NoError(err)
	require.Equal(uint32(0), v.Size())

	_, err = v.Get(0)
	require.Error(err)
}

func TestView_ChildNode_AbsentRefIsNil(t *testing.T) {
	require := require.New(t)

	buf := make([]byte, format.FileHeaderSize)
	// one ref-array slot, value 0 => absent child, never an error.
	buf, ref := buildNode(buf, true, false, format.WidthSchemeBits, 6, 1, make([]byte, 8))

	src := bytesource.NewMemory(buf)
	v, err := At(src, ref)
	require.NoError(err)

	child, ok, err := v.ChildNode(0)
	require.NoError(err)
	require.False(ok)
	require.Equal(View{}, child)
}

func TestView_ChildNode_ResolvesRef(t *testing.T) {
	require := require.New(t)

	buf := make([]byte, format.FileHeaderSize)
	buf, childRef := buildNode(buf, false, false, format.WidthSchemeBits, 3, 3, []byte{7, 8, 9})

	parentPayload := make([]byte, 8)
	binary.LittleEndian.PutUint64(parentPayload, uint64(childRef))
	buf, parentRef := buildNode(buf, true, false, format.WidthSchemeBits, 6, 1, parentPayload)

	src := bytesource.NewMemory(buf)
	parent, err := At(src, parentRef)
	require.NoError(err)

	child, ok, err := parent.ChildNode(0)
	require.NoError(err)
	require.True(ok)
	require.Equal(uint32(3), child.Size())

	v, err := child.Get(1)
	require.NoError(err)
	require.Equal(uint64(8), v)
}

func TestView_GetRef_RejectsMisaligned(t *testing.T) {
	require := require.New(t)

	buf := make([]byte, format.FileHeaderSize)
	parentPayload := make([]byte, 8)
	binary.LittleEndian.PutUint64(parentPayload, 3) // not 8-aligned, nonzero
	buf, parentRef := buildNode(buf, true, false, format.WidthSchemeBits, 6, 1, parentPayload)

	src := bytesource.NewMemory(buf)
	parent, err := At(src, parentRef)
	require.NoError(err)

	_, err = parent.GetRef(0)
	require.ErrorIs(err, errs.ErrInvalidRef)
}

func TestView_RawSlot(t *testing.T) {
	require := require.New(t)

	buf := make([]byte, format.FileHeaderSize)
	payload := []byte("xxx0" + "xx01" + "x002" + "0003" + "0004")
	buf, ref := buildNode(buf, false, false, format.WidthSchemeBytes, 2, 5, payload)

	src := bytesource.NewMemory(buf)
	v, err := At(src, ref)
	require.NoError(err)

	slot, err := v.RawSlot(0)
	require.NoError(err)
	require.Equal([]byte("xxx0"), slot)

	slot, err = v.RawSlot(4)
	require.NoError(err)
	require.Equal([]byte("0004"), slot)

	_, err = v.RawSlot(5)
	require.ErrorIs(err, errs.ErrOutOfBounds)
}
