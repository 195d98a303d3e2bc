// Package catalog implements the table catalog walker the core decoder
// guarantees is buildable on top of it: it locates m_table_names, the
// short-string array at the root node's child index 0, and exposes
// table enumeration and name lookup over it.
package catalog

import (
	"github.com/tdbkit/slab/internal/hash"
	"github.com/tdbkit/slab/node"
	"github.com/tdbkit/slab/strarray"
)

const tableNamesChildIndex = 0

// TableRef is a resolved table-name lookup result: the name itself and
// its position in m_table_names. Locating the table's own node (its
// columns, its rows) is outside this package's scope.
type TableRef struct {
	Name  string
	Index int
}

// Catalog enumerates and looks up table names from a root node. The
// zero value is a valid, empty Catalog.
type Catalog struct {
	names *strarray.ShortString
	index *hash.Index
}

// Open builds a Catalog from root, the file's active top-level node.
// A root with HasRefs() == false, or whose ref at tableNamesChildIndex
// is 0 (absent), is a database with no tables: Open returns an empty
// Catalog, not an error. A has_refs root with no slot at
// tableNamesChildIndex (Size() == 0) fails with errs.ErrOutOfBounds.
func Open(root node.View) (Catalog, error) {
	if !root.HasRefs() {
		return Catalog{}, nil
	}

	namesNode, ok, err := root.ChildNode(tableNamesChildIndex)
	if err != nil {
		return Catalog{}, err
	}
	if !ok {
		return Catalog{}, nil
	}

	names, err := strarray.NewShortString(namesNode)
	if err != nil {
		return Catalog{}, err
	}

	idx := hash.NewIndex()
	for i := 0; i < names.Len(); i++ {
		s, ok, err := names.GetString(i)
		if err != nil {
			return Catalog{}, err
		}
		if !ok {
			continue
		}
		idx.Add(s, i)
	}

	return Catalog{names: &names, index: idx}, nil
}

// TableCount returns the number of entries in m_table_names, including
// any null slots.
func (c Catalog) TableCount() int {
	if c.names == nil {
		return 0
	}

	return c.names.Len()
}

// TableNames returns the non-null table names, in storage order.
func (c Catalog) TableNames() []string {
	if c.names == nil {
		return nil
	}

	out := make([]string, 0, c.names.Len())
	for i := 0; i < c.names.Len(); i++ {
		s, ok, err := c.names.GetString(i)
		if err != nil || !ok {
			continue
		}
		out = append(out, s)
	}

	return out
}

// TableByName looks up name via the hash index, falling back to a
// direct string comparison among same-hash candidates to resolve any
// collision.
func (c Catalog) TableByName(name string) (TableRef, bool) {
	if c.names == nil {
		return TableRef{}, false
	}

	for _, pos := range c.index.Candidates(name) {
		s, ok, err := c.names.GetString(pos)
		if err != nil || !ok {
			continue
		}
		if s == name {
			return TableRef{Name: s, Index: pos}, true
		}
	}

	return TableRef{}, false
}
