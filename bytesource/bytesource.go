// Package bytesource provides the random-access byte views the slab
// decoder reads the container file through: an in-memory buffer and a
// memory-mapped file region. Both are read-only, zero-copy, and safe
// for concurrent use by any number of readers.
package bytesource

import (
	"fmt"
	"os"

	"github.com/tdbkit/slab/errs"
)

// Source is a bounded, zero-copy, random-access view of an immutable
// byte sequence. Implementations must keep returned slices valid and
// stable for the lifetime of the Source.
type Source interface {
	// Len returns the total number of bytes in the source.
	Len() int64
	// Slice returns the bytes in [offset, offset+length). It fails with
	// errs.ErrOutOfBounds if the range exceeds the source's bounds.
	Slice(offset, length int64) ([]byte, error)
	// Close releases any underlying resource (file descriptor, mapping).
	// Closing a Source invalidates every slice previously returned by it.
	Close() error
}

// Memory is a Source backed by a single in-memory byte slice, e.g. a
// buffer read wholesale from disk or network.
type Memory struct {
	data []byte
}

// NewMemory wraps data as a Source. data is not copied; the caller must
// not mutate it for the lifetime of the returned Source.
func NewMemory(data []byte) *Memory {
	return &Memory{data: data}
}

// ReadFile reads the whole file at path into memory and wraps it as a
// Source.
func ReadFile(path string) (*Memory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("bytesource: read file: %w", err)
	}

	return NewMemory(data), nil
}

func (m *Memory) Len() int64 { return int64(len(m.data)) }

func (m *Memory) Slice(offset, length int64) ([]byte, error) {
	return boundedSlice(m.data, offset, length)
}

func (m *Memory) Close() error {
	m.data = nil
	return nil
}

// boundedSlice returns data[offset:offset+length], validating the range
// the way every Source implementation must.
func boundedSlice(data []byte, offset, length int64) ([]byte, error) {
	if offset < 0 || length < 0 || offset+length > int64(len(data)) {
		return nil, errs.At(errs.ErrOutOfBounds, offset)
	}

	return data[offset : offset+length], nil
}
