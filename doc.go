// Package slab is a read-only decoder for the T-DB slab container
// format: the on-disk layout used by a document-oriented embedded
// database (file format version 9.9, unencrypted).
//
// Open validates the file header, selects the active top-level node per
// the header's flag bit, and returns a File handle. From there Root
// materializes the root node.View, and NodeAt resolves any other
// file-relative ref turned up while walking child nodes. Catalog is a
// convenience built on Root that locates m_table_names and exposes
// table enumeration and lookup.
//
// # Basic usage
//
//	src, err := bytesource.OpenMmap(path)
//	if err != nil {
//		// handle err
//	}
//	defer src.Close()
//
//	f, err := slab.Open(src)
//	if err != nil {
//		// handle err
//	}
//
//	cat, err := f.Catalog()
//	if err != nil {
//		// handle err
//	}
//	for _, name := range cat.TableNames() {
//		fmt.Println(name)
//	}
//
// # Scope
//
// This package decodes the slab's physical layout: the file header, node
// headers, the width-parameterized value accessor, and the short-string
// and long-string array shapes. It does not implement a table/column/row
// API, the trailing 16-byte region, encryption, or any write path.
package slab
