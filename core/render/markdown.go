// Package render provides output renderers for cleaned Markdown.
// This file implements the Markdown renderer, which is a passthrough.
package render

import (
	"github.com/gaurav-prasanna/docscraper/core"
)

// MarkdownRenderer writes Markdown as-is; cleaned Markdown is already the
// canonical output.
type MarkdownRenderer struct{}

// NewMarkdownRenderer creates a MarkdownRenderer.
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{}
}

// Render returns the Markdown as bytes.
func (r *MarkdownRenderer) Render(markdown string, _ core.PageMetadata) ([]byte, error) {
	return []byte(markdown), nil
}

// Extension returns the file extension for Markdown output.
func (r *MarkdownRenderer) Extension() string {
	return ".md"
}
