//go:build go1.18

package gcf_test

import (
	"testing"

	"github.com/KimNorgaard/go-gcf"
	"github.com/KimNorgaard/go-gcf/tree"
	"github.com/stretchr/testify/require"
)

func FuzzMarshalJSONTree(f *testing.F) {
	f.Add([]byte(`{}`))
	f.Add([]byte(`{"a": 1}`))
	f.Add([]byte(`{"App": {"name": "demo", "Net": {"port": 8080, "tls": true}}}`))
	f.Add([]byte(`{"x": "say \"hi\"", "y": -1.5e3}`))
	f.Add([]byte(`{"a": {"b": {"c": {"d": {}}}}}`))

	f.Fuzz(func(t *testing.T, data []byte) {
		b, err := tree.FromJSON(data)
		if err != nil {
			// Invalid or unsupported input; only panics matter here.
			return
		}

		out, err := gcf.Marshal(b.Root())
		require.NoError(t, err, "Marshal failed for a tree built from valid input")

		if len(out) > 0 {
			require.Equal(t, byte('\n'), out[len(out)-1], "every line ends with a newline")
		}

		again, err := gcf.Marshal(b.Root())
		require.NoError(t, err)
		require.Equal(t, out, again, "output must be deterministic")
	})
}
