package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		html     string
		contains []string
	}{
		{
			name:     "headings and paragraphs",
			html:     "<h2>Setup</h2><p>Install the <strong>agent</strong>.</p>",
			contains: []string{"## Setup", "**agent**"},
		},
		{
			name:     "code blocks are fenced",
			html:     "<pre><code>kubectl get pods</code></pre>",
			contains: []string{"```", "kubectl get pods"},
		},
		{
			name:     "tables become pipe rows",
			html:     "<table><tr><th>Flag</th><th>Meaning</th></tr><tr><td>-v</td><td>verbose</td></tr></table>",
			contains: []string{"| Flag", "Meaning", "verbose"},
		},
		{
			name:     "images keep their source",
			html:     `<p><img src="../img/a.png"></p>`,
			contains: []string{"![](../img/a.png)"},
		},
	}

	n := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := n.Normalize(tt.html)
			require.NoError(t, err)
			for _, s := range tt.contains {
				assert.Contains(t, got, s)
			}
		})
	}
}
