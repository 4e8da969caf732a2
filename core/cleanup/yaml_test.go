package cleanup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"
)

func TestReindent(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "colon-terminated key indents what follows",
			input: "apiVersion: v1\nkind: Pod\nmetadata:\nname: x",
			want:  "apiVersion: v1\nkind: Pod\nmetadata:\n  name: x",
		},
		{
			name:  "every colon-terminated line adds a level",
			input: "spec:\ncontainers:\n- name: web",
			want:  "spec:\n  containers:\n    - name: web",
		},
		{
			name:  "document separator resets indent",
			input: "a:\nb: 1\n---\nc:\nd: 2",
			want:  "a:\n  b: 1\n---\nc:\n  d: 2",
		},
		{
			name:  "drops blank lines and EOF sentinels",
			input: "x: 1\n\n   \nEOF\ny: 2",
			want:  "x: 1\ny: 2",
		},
		{
			name:  "existing indentation is discarded",
			input: "    key: value\n\tother: value",
			want:  "key: value\nother: value",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Reindent(tt.input))
		})
	}
}

func TestReindent_FlatManifestParses(t *testing.T) {
	out := Reindent("apiVersion: v1\nkind: Pod\nmetadata:\nname: web")

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))

	assert.Equal(t, "v1", doc["apiVersion"])
	assert.Equal(t, "Pod", doc["kind"])
	assert.Equal(t, map[string]any{"name": "web"}, doc["metadata"])
}

func TestIsYAMLSignal(t *testing.T) {
	assert.True(t, isYAMLSignal("kind: Deployment"))
	assert.True(t, isYAMLSignal("  apiVersion: apps/v1"))
	assert.False(t, isYAMLSignal("Kind of resource"))
	assert.False(t, isYAMLSignal("api version: 1"))
}
