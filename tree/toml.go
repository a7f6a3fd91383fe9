package tree

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/KimNorgaard/go-gcf"
	"github.com/pelletier/go-toml"
)

// FromTOML builds a tree from a TOML document.
//
// Tables become groups and other values become keys. Entries are ordered by
// their position in the source. Dates and times are kept as text in their
// TOML form; arrays and arrays of tables are not supported.
func FromTOML(data []byte) (*Buffer, error) {
	t, err := toml.LoadBytes(data)
	if err != nil {
		return nil, &SourceError{Format: "toml", Path: gcf.RootPath, Err: err}
	}

	b := New()
	if err := fillTOMLGroup(b.root, t); err != nil {
		return nil, err
	}
	return b, nil
}

func fillTOMLGroup(n *Node, t *toml.Tree) error {
	for _, key := range tomlKeys(t) {
		path := joinPath(n.path, key)
		switch val := t.GetPath([]string{key}).(type) {
		case *toml.Tree:
			child, err := n.AddGroup(key)
			if err != nil {
				return &SourceError{Format: "toml", Path: path, Err: err}
			}
			if err := fillTOMLGroup(child, val); err != nil {
				return err
			}
		case []*toml.Tree:
			return &SourceError{Format: "toml", Path: path, Err: fmt.Errorf("%w: array of tables", ErrUnsupported)}
		case []any:
			return &SourceError{Format: "toml", Path: path, Err: fmt.Errorf("%w: array", ErrUnsupported)}
		default:
			v, err := gcf.ValueOf(val)
			if err != nil {
				return &SourceError{Format: "toml", Path: path, Err: err}
			}
			if err := n.Set(key, v); err != nil {
				return &SourceError{Format: "toml", Path: path, Err: err}
			}
		}
	}
	return nil
}

// tomlKeys returns the keys of t in source order. Tables without a position
// of their own, such as the parents of dotted table headers, sort by name
// after positioned entries.
func tomlKeys(t *toml.Tree) []string {
	keys := t.Keys()
	pos := make(map[string]toml.Position, len(keys))
	for _, k := range keys {
		pos[k] = t.GetPositionPath([]string{k})
	}
	slices.SortStableFunc(keys, func(a, b string) int {
		pa, pb := pos[a], pos[b]
		if pa.Invalid() != pb.Invalid() {
			if pa.Invalid() {
				return 1
			}
			return -1
		}
		if c := cmp.Compare(pa.Line, pb.Line); c != 0 {
			return c
		}
		if c := cmp.Compare(pa.Col, pb.Col); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})
	return keys
}
