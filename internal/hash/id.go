// Package hash builds the catalog's table-name index: an xxHash64-keyed
// lookup from table name to its position in the root node's
// m_table_names short-string array.
//
// There is no encode path here, so instead of flagging a hash collision
// outright, Index just keeps every position that shares a hash and
// leaves disambiguation (comparing the real name) to the caller, which
// already has the name array in hand.
package hash

import "github.com/cespare/xxhash/v2"

// NameID computes the xxHash64 used to key the table-name index.
func NameID(name string) uint64 {
	return xxhash.Sum64String(name)
}

// Index maps NameID(name) to the table positions that hash to it. Most
// buckets hold a single position; a bucket with more than one entry
// means two distinct table names collided under xxHash64, and the
// caller must fall back to comparing the candidates' actual names.
type Index struct {
	buckets map[uint64][]int
}

// NewIndex returns an empty Index.
func NewIndex() *Index {
	return &Index{buckets: make(map[uint64][]int)}
}

// Add records that name occupies position pos.
func (idx *Index) Add(name string, pos int) {
	id := NameID(name)
	idx.buckets[id] = append(idx.buckets[id], pos)
}

// Candidates returns the positions that share name's hash, in the order
// they were added. A nil/empty result means name is definitely absent.
func (idx *Index) Candidates(name string) []int {
	return idx.buckets[NameID(name)]
}
