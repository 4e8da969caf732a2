// Package cleanup turns raw HTML-to-markdown output into canonical markdown:
// fenced code blocks, rebuilt tables, re-indented YAML snippets and
// normalized headers. It is a pure, single-pass line processor.
package cleanup

import (
	"net/url"
	"regexp"
	"strings"
	"unicode"

	"github.com/gaurav-prasanna/docscraper/core"
)

var _ core.Cleaner = (*Cleaner)(nil)

// artifactLine is a close-button glyph the converter leaves behind.
const artifactLine = "×"

var (
	stepHeading       = regexp.MustCompile(`^Step \d+:`)
	escapedListMarker = regexp.MustCompile(`^(\d+)\\\.(\s)`)
	bareImage         = regexp.MustCompile(`!\[\]\((?:\.\./)*([^)]+)\)`)

	whitespaceOnlyLine = regexp.MustCompile(`(?m)^[ \t\f\v\r\p{Zs}]+$`)
	blankLineRun       = regexp.MustCompile(`\n{3,}`)
)

// state is the orchestrator's position in the document structure.
type state int

const (
	stateNormal state = iota
	stateInCodeFence
	stateInTable
)

// Stats counts the rewrites made by one Process call.
type Stats struct {
	CodeBlocks int // fences opened by the input
	YAMLBlocks int
	Commands   int
	Tables     int
	Headers    int
}

// Result is the cleaned document plus what was done to it.
type Result struct {
	Markdown string
	Stats    Stats
}

// Cleaner applies the cleanup pipeline with a fixed command vocabulary.
// It holds no mutable state and is safe for concurrent use.
type Cleaner struct {
	vocab Vocabulary
}

// New creates a Cleaner. An empty vocabulary selects DefaultVocabulary.
func New(vocab Vocabulary) *Cleaner {
	if len(vocab) == 0 {
		vocab = DefaultVocabulary()
	}
	return &Cleaner{vocab: vocab}
}

// Clean returns the canonical form of markdown.
func (c *Cleaner) Clean(markdown string) string {
	return c.Process(markdown).Markdown
}

// Process cleans markdown and reports rewrite statistics.
func (c *Cleaner) Process(markdown string) Result {
	p := &processor{vocab: c.vocab}
	lines := p.run(newCursor(strings.Split(markdown, "\n")))
	return Result{Markdown: finalize(lines), Stats: p.stats}
}

// Clean is a convenience wrapper around New(vocab).Clean(markdown).
func Clean(markdown string, vocab Vocabulary) string {
	return New(vocab).Clean(markdown)
}

// processor holds the per-document state of one pass.
type processor struct {
	vocab Vocabulary
	state state
	table tableBuffer
	out   []string
	stats Stats
}

func (p *processor) run(c *cursor) []string {
	for !c.done() {
		p.step(strings.TrimRightFunc(c.next(), unicode.IsSpace), c)
	}
	p.closeBlock()
	return p.out
}

func (p *processor) emit(lines ...string) {
	p.out = append(p.out, lines...)
}

func (p *processor) lastLine() (string, bool) {
	if len(p.out) == 0 {
		return "", false
	}
	return p.out[len(p.out)-1], true
}

func (p *processor) step(line string, c *cursor) {
	trimmed := strings.TrimSpace(line)
	if trimmed == artifactLine || trimmed == converterArtifact {
		return
	}

	if trimmed == "" {
		switch p.state {
		case stateInCodeFence:
			return
		case stateInTable:
			p.endTable()
		case stateNormal:
		}
		if len(p.out) > 0 {
			p.emit("")
		}
		return
	}

	// A command ends a table even when it contains a pipe.
	if p.state == stateInTable && (!isTableLine(line) || IsCommand(line, p.vocab)) {
		p.endTable()
	}

	if isFenceMarker(trimmed) {
		p.toggleFence(trimmed)
		return
	}
	if isYAMLSignal(line) {
		p.captureYAML(trimmed, c)
		return
	}

	switch p.state {
	case stateInCodeFence:
		p.emit(line)
		return
	case stateInTable:
		p.table.feed(line)
		return
	case stateNormal:
	}

	if IsCommand(line, p.vocab) {
		p.emit(fenced(defaultLanguage, trimmed)...)
		p.stats.Commands++
		return
	}
	if isTableLine(line) {
		p.state = stateInTable
		p.table.feed(line)
		return
	}
	p.emitProse(line)
}

func (p *processor) toggleFence(trimmed string) {
	switch p.state {
	case stateInCodeFence:
		p.emit(closeFence()...)
		p.state = stateNormal
	case stateNormal, stateInTable:
		p.endTable()
		p.emit(openFence(fenceLanguage(trimmed)))
		p.state = stateInCodeFence
		p.stats.CodeBlocks++
	}
}

// closeBlock force-closes an open fence or flushes a pending table.
func (p *processor) closeBlock() {
	switch p.state {
	case stateInCodeFence:
		p.emit(closeFence()...)
		p.state = stateNormal
	case stateInTable:
		p.endTable()
	case stateNormal:
	}
}

func (p *processor) endTable() {
	if !p.table.empty() {
		p.stats.Tables++
	}
	p.emit(p.table.flush()...)
	p.state = stateNormal
}

// captureYAML consumes the YAML-like block that starts at first and emits
// it as a yaml fence. Outside a fence the block ends at the next blank
// line, EOF sentinel or fence marker, which is left for the main loop.
// Inside a fence it runs to the fence's closing marker, which is consumed
// along with the block.
func (p *processor) captureYAML(first string, c *cursor) {
	inFence := p.state == stateInCodeFence
	p.closeBlock()

	block := []string{first}
	n := 0
	for {
		next, ok := c.peek(n)
		if !ok {
			break
		}
		next = strings.TrimSpace(next)
		if isFenceMarker(next) {
			if inFence {
				n++
			}
			break
		}
		if next == "" || next == eofSentinel {
			if !inFence {
				break
			}
			n++
			continue
		}
		block = append(block, next)
		n++
	}
	c.advance(n)

	p.emit(fenced("yaml", Reindent(strings.Join(block, "\n")))...)
	p.stats.YAMLBlocks++
}

// emitProse applies the line-level rewrites to an ordinary line.
func (p *processor) emitProse(line string) {
	line = rewriteImages(line)

	isStep := stepHeading.MatchString(line)
	if isStep || strings.HasPrefix(line, "#") {
		if last, ok := p.lastLine(); ok && last != "" {
			p.emit("")
		}
		if isStep {
			line = "### " + strings.ReplaceAll(line, `\`, "")
		}
	}

	if escapedListMarker.MatchString(line) {
		line = escapedListMarker.ReplaceAllString(line, "$1.$2")
	} else if trimmed := strings.TrimSpace(line); strings.HasPrefix(trimmed, `\`) {
		line = strings.TrimLeft(trimmed, `\`)
	}

	p.emit(line)
	if strings.HasPrefix(line, "#") {
		p.emit("")
		p.stats.Headers++
	}
}

// rewriteImages gives bare images an alt text and rebases relative paths
// one directory up.
func rewriteImages(line string) string {
	if !strings.Contains(line, "![](") {
		return line
	}
	return bareImage.ReplaceAllStringFunc(line, func(m string) string {
		path := bareImage.FindStringSubmatch(m)[1]
		if !isAbsoluteURL(path) {
			path = "../" + path
		}
		return "![image](" + path + ")"
	})
}

func isAbsoluteURL(path string) bool {
	u, err := url.Parse(path)
	if err != nil {
		return strings.HasPrefix(path, "http")
	}
	return u.IsAbs() || u.Host != ""
}

// finalize joins the output and applies the whole-document passes.
func finalize(lines []string) string {
	doc := strings.Join(lines, "\n")
	doc = whitespaceOnlyLine.ReplaceAllString(doc, "")
	doc = blankLineRun.ReplaceAllString(doc, "\n\n")
	return strings.TrimSpace(doc)
}
