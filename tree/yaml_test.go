package tree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromYAML(t *testing.T) {
	src := []byte(`
App:
  name: demo
  workers: 4
  ratio: 0.5
  debug: yes_please
  verbose: false
  big: 18446744073709551615
  started: 2024-05-01
  Net:
    port: 8080
defaults: &defaults
  retries: 3
Copy: *defaults
`)

	b, err := FromYAML(src)
	require.NoError(t, err)
	requireTree(t, []string{
		"/",
		"/App",
		`/App name="demo":string`,
		"/App workers=4:int",
		"/App ratio=0.5:float",
		`/App debug="yes_please":string`,
		"/App verbose=false:bool",
		"/App big=18446744073709551615:uint",
		"/App started=2024-05-01:text",
		"/App/Net",
		"/App/Net port=8080:int",
		"/defaults",
		"/defaults retries=3:int",
		"/Copy",
		"/Copy retries=3:int",
	}, b)
}

func TestFromYAML_Empty(t *testing.T) {
	b, err := FromYAML(nil)
	require.NoError(t, err)
	require.Empty(t, b.Root().Keys())
	require.Empty(t, b.Root().Groups())
}

func TestFromYAML_Errors(t *testing.T) {
	testCases := []struct {
		name string
		src  string
		path string
		err  error
	}{
		{name: "top-level sequence", src: "- a\n- b\n", path: "/", err: ErrUnsupported},
		{name: "nested sequence", src: "A:\n  list: [1, 2]\n", path: "/A/list", err: ErrUnsupported},
		{name: "merge key", src: "base: &b\n  a: 1\nApp:\n  <<: *b\n  c: 2\n", path: "/App/<<", err: ErrUnsupported},
		{name: "null value", src: "A:\n  nothing: ~\n", path: "/A/nothing", err: ErrUnsupported},
		{name: "invalid group name", src: "a/b: {}\n", path: "/a/b", err: ErrInvalidName},
		{name: "syntax", src: "A: [\n", path: "/"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := FromYAML([]byte(tc.src))
			require.Error(t, err)
			var se *SourceError
			require.ErrorAs(t, err, &se)
			require.Equal(t, "yaml", se.Format)
			require.Equal(t, tc.path, se.Path)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
			}
		})
	}
}
