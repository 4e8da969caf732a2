// Package output handles file naming and writing for docscraper outputs.
// A single page is saved under the output directory as the last path segment
// of its source, with the renderer's extension (e.g. install.html -> install.md).
// Pages of a crawled section keep their path below the section instead.
package output

import (
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// DefaultDir is the output directory used when none is configured.
const DefaultDir = "scraped_docs"

// Writer writes rendered output to disk.
type Writer struct {
	OutputDir string
}

// New creates a Writer targeting the given output directory, creating it
// if needed. An empty outputDir selects DefaultDir.
func New(outputDir string) (*Writer, error) {
	if outputDir == "" {
		outputDir = DefaultDir
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	return &Writer{OutputDir: outputDir}, nil
}

// Write saves data for source and returns the written path.
func (w *Writer) Write(source string, data []byte, ext string) (string, error) {
	p := filepath.Join(w.OutputDir, FileName(source, ext))
	if err := os.WriteFile(p, data, 0o644); err != nil {
		return "", fmt.Errorf("writing file %s: %w", p, err)
	}
	return p, nil
}

// FileName derives the output file name for a URL or local path.
// Example: https://example.com/docs/install.html -> install.md
func FileName(source, ext string) string {
	var base string
	if parsed, err := url.Parse(source); err == nil && parsed.Scheme != "" && parsed.Host != "" {
		base = path.Base(parsed.Path)
	} else {
		base = filepath.Base(source)
	}
	if base == "" || base == "." || base == "/" {
		base = "index"
	}

	switch strings.ToLower(filepath.Ext(base)) {
	case ".html", ".htm":
		base = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return base + ext
}

// WriteAll saves one page of a crawled section, mirroring its URL path below
// prefix under the output directory.
// Example: prefix /docs/, https://site.com/docs/guide/intro.html -> guide/intro.md
func (w *Writer) WriteAll(rawURL, prefix string, data []byte, ext string) (string, error) {
	rel, err := RelativeName(rawURL, prefix)
	if err != nil {
		return "", err
	}

	p := filepath.Join(w.OutputDir, filepath.FromSlash(rel)+ext)
	dir := filepath.Dir(p)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating directory %s: %w", dir, err)
	}
	if err := os.WriteFile(p, data, 0o644); err != nil {
		return "", fmt.Errorf("writing file %s: %w", p, err)
	}
	return p, nil
}

// RelativeName returns the slash-separated output name of rawURL, without
// extension, relative to the section prefix. Directory pages are named
// index; pages outside the prefix keep their full path.
func RelativeName(rawURL, prefix string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("parsing URL: %w", err)
	}

	p := u.Path
	if p == "" {
		p = "/"
	}
	dirPage := strings.HasSuffix(p, "/")
	p = path.Clean(p)
	if dirPage || p == "/" {
		p = path.Join(p, "index")
	}
	switch strings.ToLower(path.Ext(p)) {
	case ".html", ".htm":
		p = strings.TrimSuffix(p, path.Ext(p))
	}

	base := path.Clean("/" + prefix)
	switch {
	case base == "/":
		return strings.TrimPrefix(p, "/"), nil
	case p == base:
		return "index", nil
	case strings.HasPrefix(p, base+"/"):
		return p[len(base)+1:], nil
	}
	return strings.TrimPrefix(p, "/"), nil
}
