// Package core defines the pipeline interfaces for docscraper.
// Each stage of the pipeline is a clean, testable interface.
package core

import "context"

// FetchResult holds the raw HTML of a page and where it came from.
type FetchResult struct {
	Source     string
	StatusCode int // 0 for local files
	HTML       string
}

// PageMetadata holds metadata extracted from the page and its source.
type PageMetadata struct {
	Source    string `json:"source"`
	Title     string `json:"title"`
	Language  string `json:"language"`
	FetchedAt string `json:"fetched_at"` // ISO8601
}

// Section is a heading-delimited slice of the cleaned document.
type Section struct {
	Heading string `json:"heading"`
	Level   int    `json:"level"`
	Text    string `json:"text"`
}

// Heading is a single heading found in the document.
type Heading struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
}

// Link is a hyperlink or image reference found in the document.
type Link struct {
	Text  string `json:"text"`
	Href  string `json:"href"`
	Image bool   `json:"image,omitempty"`
}

// CodeBlock is a fenced code block found in the document.
type CodeBlock struct {
	Language string `json:"language"`
	Lines    int    `json:"lines"`
}

// PageContent holds the text forms of a document.
type PageContent struct {
	Text     string    `json:"text"`
	Markdown string    `json:"markdown"`
	Sections []Section `json:"sections"`
}

// PageStructure summarizes the block structure of a document.
type PageStructure struct {
	Headings   []Heading   `json:"headings"`
	Links      []Link      `json:"links"`
	CodeBlocks []CodeBlock `json:"code_blocks"`
	Tables     int         `json:"tables"`
	ListItems  int         `json:"list_items"`
}

// PageJSON is the complete JSON output for a single document.
type PageJSON struct {
	Metadata  PageMetadata  `json:"metadata"`
	Content   PageContent   `json:"content"`
	Structure PageStructure `json:"structure"`
}

// Fetcher loads raw HTML from a URL or a local file.
type Fetcher interface {
	Fetch(ctx context.Context, source string) (*FetchResult, error)
}

// Extractor strips navigation and boilerplate and returns the main content.
type Extractor interface {
	Extract(html string) (string, error)
}

// Normalizer converts cleaned HTML into raw Markdown.
type Normalizer interface {
	Normalize(html string) (string, error)
}

// Cleaner rewrites raw converter Markdown into canonical Markdown.
type Cleaner interface {
	Clean(markdown string) string
}

// Renderer converts cleaned Markdown (and metadata) into an output format.
type Renderer interface {
	Render(markdown string, meta PageMetadata) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".md", ".pdf").
	Extension() string
}
