// Package extract implements the Extractor interface.
// It isolates the documentation body of a page by:
//  1. Removing navigation, chrome, scripts and HTML comments
//  2. Selecting the best content container (<main>, a "content" class, or the document)
package extract

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"

	"github.com/gaurav-prasanna/docscraper/core"
)

// noiseSelectors match elements that never carry documentation content.
var noiseSelectors = []string{
	"nav", "header", "footer",
	"script", "style", "noscript",
	".navigation", ".footer", ".header", ".sidebar", ".menu", ".nav",
	`[id*="skip"]`, `[class*="skip"]`,
	".breadcrumbs", ".breadcrumb", ".toolbar", ".tools",
	"#navigation", "#footer", "#header",
}

// HTMLExtractor strips noise from HTML and returns the main content fragment.
// Images are kept; the cleanup stage rewrites their paths.
type HTMLExtractor struct {
	noise []cascadia.Selector
}

// New creates an HTMLExtractor. It panics if a built-in selector is invalid.
func New() *HTMLExtractor {
	noise := make([]cascadia.Selector, 0, len(noiseSelectors))
	for _, sel := range noiseSelectors {
		noise = append(noise, cascadia.MustCompile(sel))
	}
	return &HTMLExtractor{noise: noise}
}

// Extract takes raw HTML and returns a cleaned fragment containing only the
// main content.
func (e *HTMLExtractor) Extract(raw string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("parsing HTML: %w", err)
	}

	for _, sel := range e.noise {
		doc.FindMatcher(sel).Remove()
	}
	removeComments(doc.Selection)

	content := mainContent(doc)
	if content.Length() == 0 {
		return "", core.ErrNoContent
	}

	var b strings.Builder
	for _, n := range content.Nodes {
		if err := html.Render(&b, n); err != nil {
			return "", fmt.Errorf("serializing content: %w", err)
		}
	}
	return b.String(), nil
}

// mainContent picks <main>, then the first element whose class mentions
// "content", then the whole document.
func mainContent(doc *goquery.Document) *goquery.Selection {
	if main := doc.Find("main").First(); main.Length() > 0 {
		return main
	}
	byClass := doc.Find("[class]").FilterFunction(func(_ int, s *goquery.Selection) bool {
		class, _ := s.Attr("class")
		return strings.Contains(strings.ToLower(class), "content")
	}).First()
	if byClass.Length() > 0 {
		return byClass
	}
	return doc.Selection
}

// removeComments deletes every comment node below sel.
func removeComments(sel *goquery.Selection) {
	var comments []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.CommentNode {
				comments = append(comments, c)
				continue
			}
			walk(c)
		}
	}
	for _, n := range sel.Nodes {
		walk(n)
	}
	for _, c := range comments {
		if c.Parent != nil {
			c.Parent.RemoveChild(c)
		}
	}
}
