package tree

import (
	"cmp"
	"encoding"
	"fmt"
	"reflect"
	"slices"

	"github.com/KimNorgaard/go-gcf"
)

var textMarshalerType = reflect.TypeFor[encoding.TextMarshaler]()

// FromValue builds a tree from a struct or a map with string keys.
//
// Struct fields and map entries holding scalars become keys; those holding
// structs or maps become child groups. Struct fields keep their declaration
// order and map entries are sorted by key. Field names can be changed with a
// `gcf:"name"` tag, `gcf:",omitempty"` skips zero values and `gcf:"-"`
// skips the field.
func FromValue(v any) (*Buffer, error) {
	b := New()
	rv, ok := indirect(reflect.ValueOf(v))
	if !ok || !isGroup(rv) {
		return nil, &SourceError{Format: "value", Path: gcf.RootPath, Err: fmt.Errorf("%w: %T", ErrUnsupported, v)}
	}
	if err := fillGroup(b.root, rv); err != nil {
		return nil, err
	}
	return b, nil
}

// indirect follows pointers and interfaces. It reports false for nil.
func indirect(v reflect.Value) (reflect.Value, bool) {
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return v, false
		}
		v = v.Elem()
	}
	return v, v.IsValid()
}

func isGroup(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Struct:
		// Structs such as time.Time marshal themselves as scalars.
		return !v.Type().Implements(textMarshalerType) && !reflect.PointerTo(v.Type()).Implements(textMarshalerType)
	case reflect.Map:
		return v.Type().Key().Kind() == reflect.String
	}
	return false
}

func fillGroup(n *Node, v reflect.Value) error {
	switch v.Kind() {
	case reflect.Struct:
		for _, f := range cachedFields(v.Type()) {
			fv := v.FieldByIndex(f.idx)
			if f.omitEmpty && isEmptyValue(fv) {
				continue
			}
			if err := fillEntry(n, f.name, fv); err != nil {
				return err
			}
		}
	case reflect.Map:
		keys := v.MapKeys()
		slices.SortFunc(keys, func(a, b reflect.Value) int {
			return cmp.Compare(a.String(), b.String())
		})
		for _, k := range keys {
			if err := fillEntry(n, k.String(), v.MapIndex(k)); err != nil {
				return err
			}
		}
	}
	return nil
}

func fillEntry(n *Node, name string, fv reflect.Value) error {
	path := joinPath(n.path, name)
	rv, ok := indirect(fv)
	if !ok || (rv.Kind() == reflect.Map && rv.IsNil()) {
		// Nil pointers, maps and interfaces have nothing to write.
		return nil
	}

	if isGroup(rv) {
		child, err := n.AddGroup(name)
		if err != nil {
			return &SourceError{Format: "value", Path: path, Err: err}
		}
		return fillGroup(child, rv)
	}

	val, err := gcf.ValueOf(rv.Interface())
	if err != nil {
		if rv.CanAddr() {
			val, err = gcf.ValueOf(rv.Addr().Interface())
		}
		if err != nil {
			return &SourceError{Format: "value", Path: path, Err: fmt.Errorf("%w: %w", ErrUnsupported, err)}
		}
	}
	if err := n.Set(name, val); err != nil {
		return &SourceError{Format: "value", Path: path, Err: err}
	}
	return nil
}
