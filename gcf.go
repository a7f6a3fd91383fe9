package gcf

import "bytes"

// RootPath is the path of the root group. The root is never written as a
// block of its own; only its descendants appear in the document.
const RootPath = "/"

// Group is a read-only view of one node in a configuration tree.
//
// Keys and Groups must return their entries in a stable order; the encoder
// writes them exactly in that order. The tree is assumed to be finite and
// acyclic.
type Group interface {
	// Name returns the simple name of the group, unique among its siblings.
	Name() string
	// Path returns the full path of the group. The root group returns RootPath.
	Path() string
	// Keys returns the names of the keys held directly by the group.
	Keys() []string
	// Value returns the value stored under key, or an error if the group
	// has no such key.
	Value(key string) (Value, error)
	// Groups returns the direct child groups.
	Groups() []Group
}

// Marshal returns the GCF encoding of the tree rooted at root.
func Marshal(root Group, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	e := NewEncoder(&buf, opts...)
	if err := e.Encode(root); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
