package diff

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLines(t *testing.T) {
	testCases := []struct {
		name     string
		from     string
		to       string
		expected string
	}{
		{
			name:     "equal",
			from:     "[A]\n[/A]\n",
			to:       "[A]\n[/A]\n",
			expected: "",
		},
		{
			name:     "changed value",
			from:     "[Net]\n    port = 80\n[/Net]\n",
			to:       "[Net]\n    port = 8080\n[/Net]\n",
			expected: " [Net]\n-    port = 80\n+    port = 8080\n [/Net]\n",
		},
		{
			name:     "added key",
			from:     "[Net]\n[/Net]\n",
			to:       "[Net]\n    host = \"localhost\"\n[/Net]\n",
			expected: " [Net]\n+    host = \"localhost\"\n [/Net]\n",
		},
		{
			name:     "from empty",
			from:     "",
			to:       "[A]\n[/A]\n",
			expected: "+[A]\n+[/A]\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, Lines(tc.from, tc.to, false))
		})
	}
}

func TestLines_Colored(t *testing.T) {
	out := Lines("a\n", "b\n", true)
	require.Contains(t, out, "\x1b[31m-a")
	require.Contains(t, out, "\x1b[32m+b")
}
