// Package cleanup — YAML reindenter.
// Re-indents a captured block of key/value text using the trailing-colon
// heuristic only. It never parses or validates YAML.
package cleanup

import "strings"

const (
	yamlIndentStep  = 2
	yamlDocumentSep = "---"
	eofSentinel     = "EOF"
)

// Reindent formats a YAML-like block. Blank lines and EOF sentinels are
// dropped, "---" resets the indent, and a line ending in ":" indents every
// following line by two more spaces.
func Reindent(raw string) string {
	var out []string
	indent := 0
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case line == "" || line == eofSentinel:
			continue
		case line == yamlDocumentSep:
			indent = 0
			out = append(out, line)
		case strings.HasSuffix(line, ":"):
			out = append(out, strings.Repeat(" ", indent)+line)
			indent += yamlIndentStep
		default:
			out = append(out, strings.Repeat(" ", indent)+line)
		}
	}
	return strings.Join(out, "\n")
}

// isYAMLSignal reports whether a line opens a front-matter-like block.
func isYAMLSignal(line string) bool {
	return strings.Contains(line, "kind:") || strings.Contains(line, "apiVersion:")
}
