//go:build unix

package bytesource

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// Mmap is a Source backed by a read-only memory mapping of an open file.
// It is the zero-copy byte source the canonical C++ reader this format
// was distilled from uses: the whole slab is addressed directly through
// the process's page cache, with no bulk read into a Go-managed buffer.
type Mmap struct {
	file *os.File
	data []byte
}

// OpenMmap opens path read-only and memory-maps its contents.
func OpenMmap(path string) (*Mmap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("bytesource: open file: %w", err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("bytesource: stat file: %w", err)
	}

	size := info.Size()
	if size == 0 {
		// unix.Mmap rejects zero-length mappings; an empty file has no
		// header at all, which the file header decoder will reject.
		return &Mmap{file: f, data: nil}, nil
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("bytesource: mmap: %w", err)
	}

	return &Mmap{file: f, data: data}, nil
}

func (m *Mmap) Len() int64 { return int64(len(m.data)) }

func (m *Mmap) Slice(offset, length int64) ([]byte, error) {
	return boundedSlice(m.data, offset, length)
}

// Close unmaps the file and closes its descriptor. Every slice
// previously returned by Slice becomes invalid.
func (m *Mmap) Close() error {
	var mapErr error
	if m.data != nil {
		mapErr = unix.Munmap(m.data)
		m.data = nil
	}

	closeErr := m.file.Close()
	if mapErr != nil {
		return fmt.Errorf("bytesource: munmap: %w", mapErr)
	}

	return closeErr
}
