package tree

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/KimNorgaard/go-gcf"
)

// FromJSON builds a tree from a JSON document whose top level is an object.
//
// Objects become groups and scalars become keys, both in document order.
// Integral numbers become Int (or Uint when they overflow int64); other
// numbers become Float. Arrays and null are not supported.
func FromJSON(data []byte) (*Buffer, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	b := New()
	tok, err := dec.Token()
	if errors.Is(err, io.EOF) {
		return b, nil
	}
	if err != nil {
		return nil, &SourceError{Format: "json", Path: gcf.RootPath, Err: err}
	}
	if tok != json.Delim('{') {
		return nil, &SourceError{Format: "json", Path: gcf.RootPath, Err: fmt.Errorf("%w: top level must be an object", ErrUnsupported)}
	}
	if err := fillJSONGroup(b.root, dec); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, &SourceError{Format: "json", Path: gcf.RootPath, Err: errors.New("trailing data after top-level object")}
	}
	return b, nil
}

// fillJSONGroup consumes object members up to and including the closing brace.
func fillJSONGroup(n *Node, dec *json.Decoder) error {
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return &SourceError{Format: "json", Path: n.path, Err: err}
		}
		key, ok := tok.(string)
		if !ok {
			return &SourceError{Format: "json", Path: n.path, Err: fmt.Errorf("unexpected token %v", tok)}
		}
		path := joinPath(n.path, key)

		tok, err = dec.Token()
		if err != nil {
			return &SourceError{Format: "json", Path: path, Err: err}
		}

		var v gcf.Value
		switch t := tok.(type) {
		case json.Delim:
			if t != '{' {
				return &SourceError{Format: "json", Path: path, Err: fmt.Errorf("%w: array", ErrUnsupported)}
			}
			child, err := n.AddGroup(key)
			if err != nil {
				return &SourceError{Format: "json", Path: path, Err: err}
			}
			if err := fillJSONGroup(child, dec); err != nil {
				return err
			}
			continue
		case string:
			v = gcf.String(t)
		case bool:
			v = gcf.Bool(t)
		case json.Number:
			v, err = jsonNumber(t)
			if err != nil {
				return &SourceError{Format: "json", Path: path, Err: err}
			}
		case nil:
			return &SourceError{Format: "json", Path: path, Err: fmt.Errorf("%w: null", ErrUnsupported)}
		}
		if err := n.Set(key, v); err != nil {
			return &SourceError{Format: "json", Path: path, Err: err}
		}
	}

	// Closing brace.
	if _, err := dec.Token(); err != nil {
		return &SourceError{Format: "json", Path: n.path, Err: err}
	}
	return nil
}

func jsonNumber(n json.Number) (gcf.Value, error) {
	if i, err := n.Int64(); err == nil {
		return gcf.Int(i), nil
	}
	if u, err := strconv.ParseUint(n.String(), 10, 64); err == nil {
		return gcf.Uint(u), nil
	}
	f, err := n.Float64()
	if err != nil {
		return gcf.Value{}, err
	}
	return gcf.Float(f), nil
}
