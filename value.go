package gcf

import (
	"encoding"
	"fmt"
	"reflect"
	"strconv"
)

// Kind identifies the scalar type held by a Value.
type Kind int

const (
	InvalidKind Kind = iota
	StringKind
	IntKind
	UintKind
	FloatKind
	BoolKind
	// TextKind holds any other scalar already rendered to its natural text
	// form, such as a timestamp. It is written unquoted.
	TextKind
)

var kindNames = [...]string{
	InvalidKind: "invalid",
	StringKind:  "string",
	IntKind:     "int",
	UintKind:    "uint",
	FloatKind:   "float",
	BoolKind:    "bool",
	TextKind:    "text",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// Value is an immutable scalar stored under a key. The zero Value is invalid.
type Value struct {
	kind Kind
	s    string
	i    int64
	u    uint64
	f    float64
	b    bool
}

// String returns a string Value.
func String(s string) Value { return Value{kind: StringKind, s: s} }

// Int returns a signed integer Value.
func Int(i int64) Value { return Value{kind: IntKind, i: i} }

// Uint returns an unsigned integer Value.
func Uint(u uint64) Value { return Value{kind: UintKind, u: u} }

// Float returns a floating point Value.
func Float(f float64) Value { return Value{kind: FloatKind, f: f} }

// Bool returns a boolean Value.
func Bool(b bool) Value { return Value{kind: BoolKind, b: b} }

// Text returns a Value whose natural text form is s. Unlike String, it is
// written without quotes.
func Text(s string) Value { return Value{kind: TextKind, s: s} }

// Kind reports the kind of v.
func (v Value) Kind() Kind { return v.kind }

// IsValid reports whether v was built by one of the constructors.
func (v Value) IsValid() bool { return v.kind != InvalidKind }

// Text returns the natural text representation of v, without quotes.
func (v Value) Text() string {
	switch v.kind {
	case StringKind, TextKind:
		return v.s
	case IntKind:
		return strconv.FormatInt(v.i, 10)
	case UintKind:
		return strconv.FormatUint(v.u, 10)
	case FloatKind:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case BoolKind:
		return strconv.FormatBool(v.b)
	}
	return ""
}

// String implements fmt.Stringer using the encoded form of v.
func (v Value) String() string {
	return encodeValue(v)
}

// Interface returns the Go value held by v.
func (v Value) Interface() any {
	switch v.kind {
	case StringKind, TextKind:
		return v.s
	case IntKind:
		return v.i
	case UintKind:
		return v.u
	case FloatKind:
		return v.f
	case BoolKind:
		return v.b
	}
	return nil
}

// encodeValue returns the text written after "key = ". Strings are wrapped in
// double quotes verbatim: embedded quotes and newlines are not escaped.
func encodeValue(v Value) string {
	if v.kind == StringKind {
		return `"` + v.s + `"`
	}
	return v.Text()
}

// ValueOf converts a Go scalar into a Value. Types implementing
// encoding.TextMarshaler or fmt.Stringer become TextKind values, so a
// time.Duration is written as "1m30s" rather than a nanosecond count.
func ValueOf(x any) (Value, error) {
	if v, ok := x.(Value); ok {
		return v, nil
	}
	if rv := reflect.ValueOf(x); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return Value{}, &UnsupportedValueError{Type: rv.Type()}
	}
	if m, ok := x.(encoding.TextMarshaler); ok {
		b, err := m.MarshalText()
		if err != nil {
			return Value{}, fmt.Errorf("gcf: marshal text: %w", err)
		}
		return Text(string(b)), nil
	}
	if s, ok := x.(fmt.Stringer); ok {
		return Text(s.String()), nil
	}

	rv := reflect.ValueOf(x)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return Value{}, &UnsupportedValueError{Type: rv.Type()}
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.String:
		return String(rv.String()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Uint(rv.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return Float(rv.Float()), nil
	case reflect.Bool:
		return Bool(rv.Bool()), nil
	case reflect.Invalid:
		return Value{}, &UnsupportedValueError{}
	}
	return Value{}, &UnsupportedValueError{Type: rv.Type()}
}
