package bytesource

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemory_Slice(t *testing.T) {
	require := require.New(t)

	src := NewMemory([]byte("hello world"))
	require.Equal(int64(11), src.Len())

	got, err := src.Slice(6, 5)
	require.NoError(err)
	require.Equal([]byte("world"), got)
}

func TestMemory_Slice_OutOfBounds(t *testing.T) {
	require := require.New(t)

	src := NewMemory([]byte("hello"))

	_, err := src.Slice(3, 10)
	require.Error(err)

	_, err = src.Slice(-1, 1)
	require.Error(err)
}

func TestMemory_ZeroCopy(t *testing.T) {
	require := require.New(t)

	data := []byte("abcdef")
	src := NewMemory(data)

	got, err := src.Slice(1, 3)
	require.NoError(err)
	require.Equal([]byte("bcd"), got)

	// Mutating through the returned slice mutates the original backing
	// array: Slice is zero-copy, not a defensive copy.
	got[0] = 'X'
	require.Equal(byte('X'), data[1])
}

func TestReadFile(t *testing.T) {
	require := require.New(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "blob.tdb")
	require.NoError(os.WriteFile(path, []byte("0123456789"), 0o600))

	src, err := ReadFile(path)
	require.NoError(err)
	defer src.Close()

	require.Equal(int64(10), src.Len())

	got, err := src.Slice(2, 4)
	require.NoError(err)
	require.Equal([]byte("2345"), got)
}

func TestOpenMmap(t *testing.T) {
	require := require.New(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "blob.tdb")
	require.NoError(os.WriteFile(path, []byte("abcdefghij"), 0o600))

	src, err := OpenMmap(path)
	require.NoError(err)
	defer src.Close()

	require.Equal(int64(10), src.Len())

	got, err := src.Slice(3, 3)
	require.NoError(err)
	require.Equal([]byte("def"), got)

	require.NoError(src.Close())
}

func TestOpenMmap_EmptyFile(t *testing.T) {
	require := require.New(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "empty.tdb")
	require.NoError(os.WriteFile(path, nil, 0o600))

	src, err := OpenMmap(path)
	require.NoError(err)
	defer src.Close()

	require.Equal(int64(0), src.Len())
}
