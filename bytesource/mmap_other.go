//go:build !unix

package bytesource

// Mmap falls back to a plain in-memory read on platforms without a POSIX
// mmap syscall. The Source interface is identical either way; callers
// that only need bounded zero-copy slicing over the opened lifetime of
// the Source never observe the difference.
type Mmap struct {
	*Memory
}

// OpenMmap reads path wholesale into memory. On unix platforms this is
// replaced by a true memory mapping; see mmap_unix.go.
func OpenMmap(path string) (*Mmap, error) {
	m, err := ReadFile(path)
	if err != nil {
		return nil, err
	}

	return &Mmap{Memory: m}, nil
}
