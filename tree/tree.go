// Package tree provides an in-memory configuration tree that satisfies
// gcf.Group, together with builders that load trees from Go values, YAML,
// TOML and JSON documents.
//
// Keys and child groups keep their insertion order, which is the order in
// which the gcf encoder writes them.
package tree

import (
	"errors"
	"fmt"
	"strings"

	"github.com/KimNorgaard/go-gcf"
)

var (
	// ErrGroupNotFound is returned when a path names no group.
	ErrGroupNotFound = errors.New("tree: group not found")
	// ErrDuplicateGroup is returned when a sibling group of the same name exists.
	ErrDuplicateGroup = errors.New("tree: duplicate group")
	// ErrInvalidName is returned for empty keys, and for group names that
	// are empty or contain a slash.
	ErrInvalidName = errors.New("tree: invalid name")
)

// A KeyNotFoundError is returned when a group has no value under a key.
type KeyNotFoundError struct {
	Group string
	Key   string
}

func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("tree: key %q not found in %s", e.Key, e.Group)
}

// Buffer holds a configuration tree.
type Buffer struct {
	root *Node
}

// New returns an empty Buffer holding only the root group.
func New() *Buffer {
	return &Buffer{root: &Node{path: gcf.RootPath}}
}

// Root returns the root group.
func (b *Buffer) Root() *Node {
	return b.root
}

// Group returns the group at path, such as "/App/Net". The path "/" returns
// the root.
func (b *Buffer) Group(path string) (*Node, error) {
	n := b.root
	for _, name := range strings.Split(strings.Trim(path, "/"), "/") {
		if name == "" {
			continue
		}
		child := n.Group(name)
		if child == nil {
			return nil, fmt.Errorf("%w: %s", ErrGroupNotFound, path)
		}
		n = child
	}
	return n, nil
}

// Node is a group in a Buffer. It implements gcf.Group.
type Node struct {
	name     string
	path     string
	keys     []string
	values   map[string]gcf.Value
	children []*Node
	index    map[string]*Node
}

var _ gcf.Group = (*Node)(nil)

func (n *Node) Name() string { return n.name }

func (n *Node) Path() string { return n.path }

// Keys returns the key names in insertion order.
func (n *Node) Keys() []string {
	return append([]string(nil), n.keys...)
}

func (n *Node) Value(key string) (gcf.Value, error) {
	v, ok := n.values[key]
	if !ok {
		return gcf.Value{}, &KeyNotFoundError{Group: n.path, Key: key}
	}
	return v, nil
}

// Groups returns the child groups in insertion order.
func (n *Node) Groups() []gcf.Group {
	groups := make([]gcf.Group, len(n.children))
	for i, c := range n.children {
		groups[i] = c
	}
	return groups
}

// Group returns the direct child named name, or nil.
func (n *Node) Group(name string) *Node {
	return n.index[name]
}

// AddGroup appends a new child group.
func (n *Node) AddGroup(name string) (*Node, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}
	if _, ok := n.index[name]; ok {
		return nil, fmt.Errorf("%w: %q in %s", ErrDuplicateGroup, name, n.path)
	}

	child := &Node{name: name, path: joinPath(n.path, name)}
	if n.index == nil {
		n.index = make(map[string]*Node)
	}
	n.index[name] = child
	n.children = append(n.children, child)
	return child, nil
}

// Set stores v under key. A new key is appended; an existing key keeps its
// position.
func (n *Node) Set(key string, v gcf.Value) error {
	if key == "" {
		return fmt.Errorf("%w: empty key in %s", ErrInvalidName, n.path)
	}
	if !v.IsValid() {
		return fmt.Errorf("tree: set %q in %s: %w", key, n.path, gcf.ErrInvalidValue)
	}
	if n.values == nil {
		n.values = make(map[string]gcf.Value)
	}
	if _, ok := n.values[key]; !ok {
		n.keys = append(n.keys, key)
	}
	n.values[key] = v
	return nil
}

// Delete removes key. It reports whether the key was present.
func (n *Node) Delete(key string) bool {
	if _, ok := n.values[key]; !ok {
		return false
	}
	delete(n.values, key)
	for i, k := range n.keys {
		if k == key {
			n.keys = append(n.keys[:i], n.keys[i+1:]...)
			break
		}
	}
	return true
}

func checkName(name string) error {
	if name == "" || strings.Contains(name, "/") {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}

func joinPath(parent, name string) string {
	if parent == gcf.RootPath {
		return gcf.RootPath + name
	}
	return parent + "/" + name
}
