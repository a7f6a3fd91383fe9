package gcf

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// group is a minimal Group used to drive the formatter directly.
type group struct {
	name     string
	path     string
	keys     []string
	values   map[string]Value
	children []*group
}

func (g *group) Name() string { return g.name }
func (g *group) Path() string { return g.path }
func (g *group) Keys() []string { return g.keys }

func (g *group) Value(key string) (Value, error) {
	v, ok := g.values[key]
	if !ok {
		return Value{}, errors.New("no such key")
	}
	return v, nil
}

func (g *group) Groups() []Group {
	out := make([]Group, len(g.children))
	for i, c := range g.children {
		out[i] = c
	}
	return out
}

func TestLinePrefix(t *testing.T) {
	testCases := []struct {
		level    int
		expected string
	}{
		{0, ""},
		{1, "    "},
		{2, "        "},
		{3, "            "},
	}
	for _, tc := range testCases {
		require.Equal(t, tc.expected, linePrefix(tc.level))
	}
}

func TestEncodeValue(t *testing.T) {
	testCases := []struct {
		name     string
		value    Value
		expected string
	}{
		{name: "string", value: String("hello"), expected: `"hello"`},
		{name: "empty string", value: String(""), expected: `""`},
		{name: "string with quote is not escaped", value: String(`say "hi"`), expected: `"say "hi""`},
		{name: "numeric string", value: String("42"), expected: `"42"`},
		{name: "int", value: Int(42), expected: "42"},
		{name: "negative int", value: Int(-7), expected: "-7"},
		{name: "uint", value: Uint(18446744073709551615), expected: "18446744073709551615"},
		{name: "float", value: Float(3.14), expected: "3.14"},
		{name: "whole float", value: Float(2), expected: "2"},
		{name: "bool true", value: Bool(true), expected: "true"},
		{name: "bool false", value: Bool(false), expected: "false"},
		{name: "text", value: Text("2024-01-02T03:04:05Z"), expected: "2024-01-02T03:04:05Z"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, encodeValue(tc.value))
		})
	}
}

func TestFormatter_Counts(t *testing.T) {
	root := &group{path: "/", children: []*group{
		{name: "A", path: "/A", keys: []string{"x", "y"}, values: map[string]Value{"x": Int(1), "y": Int(2)},
			children: []*group{{name: "B", path: "/A/B"}}},
	}}

	var sink stringSink
	o, err := newOptions(nil)
	require.NoError(t, err)
	f := newFormatter(&sink, o)
	require.NoError(t, f.writeGroup(root, 0))

	require.Equal(t, 2, f.groups)
	require.Equal(t, 2, f.keys)
	require.Equal(t, int64(len(sink.s)), f.n)
}

func TestFormatter_NonRootTopLevel(t *testing.T) {
	g := &group{name: "Net", path: "/App/Net", keys: []string{"port"}, values: map[string]Value{"port": Int(80)}}

	b, err := Marshal(g)
	require.NoError(t, err)
	require.Equal(t, "[Net]\n    port = 80\n[/Net]\n", string(b))
}

func TestFormatter_MissingKey(t *testing.T) {
	root := &group{path: "/", children: []*group{
		{name: "A", path: "/A", keys: []string{"ghost"}},
	}}

	var sink stringSink
	err := NewEncoder(&sink).Encode(root)
	require.ErrorContains(t, err, `read key "ghost" of /A`)
	require.ErrorContains(t, err, "no such key")

	var wte *WriteTargetError
	require.False(t, errors.As(err, &wte), "collaborator errors must not look like write failures")
	require.Equal(t, "[A]\n", sink.s)
}

func TestFormatter_InvalidValue(t *testing.T) {
	root := &group{path: "/", children: []*group{
		{name: "A", path: "/A", keys: []string{"zero"}, values: map[string]Value{"zero": {}}},
	}}

	_, err := Marshal(root)
	require.ErrorIs(t, err, ErrInvalidValue)
}

type stringSink struct{ s string }

func (w *stringSink) Write(p []byte) (int, error) {
	w.s += string(p)
	return len(p), nil
}
