package tree

import (
	"fmt"

	"github.com/KimNorgaard/go-gcf"
	"gopkg.in/yaml.v3"
)

// FromYAML builds a tree from a YAML document whose top level is a mapping.
//
// Nested mappings become groups and scalars become keys, both in document
// order. Scalars tagged !!str, !!int, !!float and !!bool keep their kind;
// any other scalar, such as a timestamp, is kept as text. Sequences and
// merge keys are not supported. An empty document yields an empty tree.
func FromYAML(data []byte) (*Buffer, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &SourceError{Format: "yaml", Path: gcf.RootPath, Err: err}
	}

	b := New()
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return b, nil
	}

	top := resolveAlias(doc.Content[0])
	if top.Kind != yaml.MappingNode {
		return nil, &SourceError{Format: "yaml", Path: gcf.RootPath, Err: fmt.Errorf("%w: top level must be a mapping", ErrUnsupported)}
	}
	if err := fillYAMLGroup(b.root, top); err != nil {
		return nil, err
	}
	return b, nil
}

func resolveAlias(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

func fillYAMLGroup(n *Node, m *yaml.Node) error {
	for i := 0; i+1 < len(m.Content); i += 2 {
		key := m.Content[i].Value
		val := resolveAlias(m.Content[i+1])
		path := joinPath(n.path, key)

		if m.Content[i].ShortTag() == "!!merge" {
			return &SourceError{Format: "yaml", Path: path, Err: fmt.Errorf("%w: line %d: merge key", ErrUnsupported, m.Content[i].Line)}
		}

		switch val.Kind {
		case yaml.MappingNode:
			child, err := n.AddGroup(key)
			if err != nil {
				return &SourceError{Format: "yaml", Path: path, Err: err}
			}
			if err := fillYAMLGroup(child, val); err != nil {
				return err
			}
		case yaml.ScalarNode:
			v, err := yamlScalar(val)
			if err != nil {
				return &SourceError{Format: "yaml", Path: path, Err: err}
			}
			if err := n.Set(key, v); err != nil {
				return &SourceError{Format: "yaml", Path: path, Err: err}
			}
		default:
			return &SourceError{Format: "yaml", Path: path, Err: fmt.Errorf("%w: line %d: sequence", ErrUnsupported, val.Line)}
		}
	}
	return nil
}

func yamlScalar(n *yaml.Node) (gcf.Value, error) {
	switch n.ShortTag() {
	case "!!str":
		return gcf.String(n.Value), nil
	case "!!int":
		var i int64
		if err := n.Decode(&i); err == nil {
			return gcf.Int(i), nil
		}
		var u uint64
		if err := n.Decode(&u); err != nil {
			return gcf.Value{}, fmt.Errorf("line %d: %w", n.Line, err)
		}
		return gcf.Uint(u), nil
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return gcf.Value{}, fmt.Errorf("line %d: %w", n.Line, err)
		}
		return gcf.Float(f), nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return gcf.Value{}, fmt.Errorf("line %d: %w", n.Line, err)
		}
		return gcf.Bool(b), nil
	case "!!null":
		return gcf.Value{}, fmt.Errorf("%w: line %d: null", ErrUnsupported, n.Line)
	}
	return gcf.Text(n.Value), nil
}
