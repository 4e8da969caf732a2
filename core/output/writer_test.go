package output

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileName(t *testing.T) {
	tests := []struct {
		source string
		ext    string
		want   string
	}{
		{source: "https://example.com/docs/install.html", ext: ".md", want: "install.md"},
		{source: "https://example.com/docs/install", ext: ".md", want: "install.md"},
		{source: "https://example.com/docs/install/", ext: ".pdf", want: "install.pdf"},
		{source: "https://example.com", ext: ".md", want: "index.md"},
		{source: "https://example.com/", ext: ".json", want: "index.json"},
		{source: "https://example.com/v1.2", ext: ".md", want: "v1.2.md"},
		{source: "pages/setup.HTM", ext: ".md", want: "setup.md"},
		{source: "/tmp/saved/guide.html", ext: ".md", want: "guide.md"},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			assert.Equal(t, tt.want, FileName(tt.source, tt.ext))
		})
	}
}

func TestWriter_Write(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")

	w, err := New(dir)
	require.NoError(t, err)

	p, err := w.Write("https://example.com/docs/install.html", []byte("# Install"), ".md")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "install.md"), p)

	data, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Equal(t, "# Install", string(data))
}

func TestRelativeName(t *testing.T) {
	tests := []struct {
		url    string
		prefix string
		want   string
	}{
		{url: "https://example.com/docs/a/index.html", prefix: "/docs/", want: "a/index"},
		{url: "https://example.com/docs/b/index.html", prefix: "/docs/", want: "b/index"},
		{url: "https://example.com/docs/v1/install", prefix: "/docs/", want: "v1/install"},
		{url: "https://example.com/docs/guide/", prefix: "/docs/", want: "guide/index"},
		{url: "https://example.com/docs/", prefix: "/docs/", want: "index"},
		{url: "https://example.com/docs", prefix: "/docs/", want: "index"},
		{url: "https://example.com", prefix: "/", want: "index"},
		{url: "https://example.com/blog/post", prefix: "/docs/", want: "blog/post"},
		{url: "https://example.com/docs/../etc/passwd", prefix: "/docs/", want: "etc/passwd"},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			got, err := RelativeName(tt.url, tt.prefix)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWriter_WriteAllKeepsSameNamedPagesApart(t *testing.T) {
	dir := t.TempDir()
	w, err := New(dir)
	require.NoError(t, err)

	pages := map[string]string{
		"https://example.com/docs/a/index.html": filepath.Join(dir, "a", "index.md"),
		"https://example.com/docs/b/index.html": filepath.Join(dir, "b", "index.md"),
		"https://example.com/docs/v1/install":   filepath.Join(dir, "v1", "install.md"),
		"https://example.com/docs/v2/install":   filepath.Join(dir, "v2", "install.md"),
	}
	for page, want := range pages {
		p, err := w.WriteAll(page, "/docs/", []byte(page), ".md")
		require.NoError(t, err)
		assert.Equal(t, want, p)
	}

	for page, want := range pages {
		data, err := os.ReadFile(want)
		require.NoError(t, err)
		assert.Equal(t, page, string(data))
	}
}
