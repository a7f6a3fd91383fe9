package tree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromJSON(t *testing.T) {
	src := []byte(`{
		"zeta": "last-declared-first",
		"App": {
			"name": "demo",
			"workers": 4,
			"ratio": 0.5,
			"huge": 18446744073709551615,
			"exp": 1e3,
			"debug": false,
			"Net": {"port": 8080}
		},
		"alpha": true
	}`)

	b, err := FromJSON(src)
	require.NoError(t, err)
	requireTree(t, []string{
		"/",
		`/ zeta="last-declared-first":string`,
		"/ alpha=true:bool",
		"/App",
		`/App name="demo":string`,
		"/App workers=4:int",
		"/App ratio=0.5:float",
		"/App huge=18446744073709551615:uint",
		"/App exp=1000:float",
		"/App debug=false:bool",
		"/App/Net",
		"/App/Net port=8080:int",
	}, b)
}

func TestFromJSON_Empty(t *testing.T) {
	for _, src := range []string{"", "  \n", "{}"} {
		b, err := FromJSON([]byte(src))
		require.NoError(t, err, "%q", src)
		require.Empty(t, b.Root().Groups())
	}
}

func TestFromJSON_Errors(t *testing.T) {
	testCases := []struct {
		name string
		src  string
		path string
		err  error
	}{
		{name: "top-level array", src: `[1]`, path: "/", err: ErrUnsupported},
		{name: "nested array", src: `{"A": {"list": []}}`, path: "/A/list", err: ErrUnsupported},
		{name: "null", src: `{"a": null}`, path: "/a", err: ErrUnsupported},
		{name: "duplicate group", src: `{"A": {}, "A": {}}`, path: "/A", err: ErrDuplicateGroup},
		{name: "empty key", src: `{"": 1}`, path: "/", err: ErrInvalidName},
		{name: "truncated", src: `{"a": 1`, path: "/"},
		{name: "trailing data", src: `{} {}`, path: "/"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := FromJSON([]byte(tc.src))
			var se *SourceError
			require.ErrorAs(t, err, &se)
			require.Equal(t, "json", se.Format)
			require.Equal(t, tc.path, se.Path)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
			}
		})
	}
}
