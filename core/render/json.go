// Package render — JSON renderer.
// Parses the cleaned Markdown with goldmark (GFM) and reports its text,
// heading sections and block structure alongside the page metadata.
package render

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"

	"github.com/gaurav-prasanna/docscraper/core"
)

// JSONRenderer produces structured JSON output from Markdown.
type JSONRenderer struct {
	md goldmark.Markdown
}

// NewJSONRenderer creates a JSONRenderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{md: goldmark.New(goldmark.WithExtensions(extension.GFM))}
}

// Render converts Markdown and metadata into a PageJSON document.
func (r *JSONRenderer) Render(markdown string, meta core.PageMetadata) ([]byte, error) {
	page := r.Inspect(markdown)
	page.Metadata = meta

	data, err := json.MarshalIndent(page, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}
	return data, nil
}

// Extension returns the file extension for JSON output.
func (r *JSONRenderer) Extension() string {
	return ".json"
}

// Inspect parses markdown and fills the content and structure parts of a
// PageJSON. Metadata is left empty.
func (r *JSONRenderer) Inspect(markdown string) core.PageJSON {
	src := []byte(markdown)
	doc := r.md.Parser().Parse(text.NewReader(src))

	structure := core.PageStructure{
		Headings:   []core.Heading{},
		Links:      []core.Link{},
		CodeBlocks: []core.CodeBlock{},
	}
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n := n.(type) {
		case *ast.Heading:
			structure.Headings = append(structure.Headings, core.Heading{Level: n.Level, Text: inlineText(n, src)})
		case *ast.Link:
			structure.Links = append(structure.Links, core.Link{Text: inlineText(n, src), Href: string(n.Destination)})
		case *ast.Image:
			structure.Links = append(structure.Links, core.Link{Text: inlineText(n, src), Href: string(n.Destination), Image: true})
		case *ast.FencedCodeBlock:
			structure.CodeBlocks = append(structure.CodeBlocks, core.CodeBlock{
				Language: string(n.Language(src)),
				Lines:    n.Lines().Len(),
			})
		case *extast.Table:
			structure.Tables++
		case *ast.ListItem:
			structure.ListItems++
		}
		return ast.WalkContinue, nil
	})

	var (
		blocks   []string
		sections []core.Section
		current  *core.Section
		body     []string
	)
	closeSection := func() {
		if current != nil {
			current.Text = strings.Join(body, "\n\n")
			sections = append(sections, *current)
		}
	}
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		t := blockText(n, src)
		if t != "" {
			blocks = append(blocks, t)
		}
		if h, ok := n.(*ast.Heading); ok {
			closeSection()
			current = &core.Section{Heading: t, Level: h.Level}
			body = nil
			continue
		}
		if current != nil && t != "" {
			body = append(body, t)
		}
	}
	closeSection()

	return core.PageJSON{
		Content: core.PageContent{
			Text:     strings.Join(blocks, "\n\n"),
			Markdown: markdown,
			Sections: sections,
		},
		Structure: structure,
	}
}

// blockText renders a block node as plain text.
func blockText(n ast.Node, src []byte) string {
	switch n := n.(type) {
	case *ast.FencedCodeBlock, *ast.CodeBlock:
		var b strings.Builder
		lines := n.Lines()
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			b.Write(seg.Value(src))
		}
		return strings.TrimRight(b.String(), "\n")
	case *extast.Table:
		var rows []string
		for row := n.FirstChild(); row != nil; row = row.NextSibling() {
			var cells []string
			for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
				cells = append(cells, inlineText(cell, src))
			}
			rows = append(rows, strings.Join(cells, " | "))
		}
		return strings.Join(rows, "\n")
	case *ast.ThematicBreak:
		return ""
	}

	if first := n.FirstChild(); first != nil && first.Type() == ast.TypeBlock {
		var parts []string
		for c := first; c != nil; c = c.NextSibling() {
			if t := blockText(c, src); t != "" {
				parts = append(parts, t)
			}
		}
		return strings.Join(parts, "\n")
	}
	return inlineText(n, src)
}

// inlineText concatenates the literal text below n.
func inlineText(n ast.Node, src []byte) string {
	var b strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch c := c.(type) {
		case *ast.Text:
			b.Write(c.Segment.Value(src))
			if c.SoftLineBreak() || c.HardLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(c.Value)
		case *ast.AutoLink:
			b.Write(c.Label(src))
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(b.String())
}
