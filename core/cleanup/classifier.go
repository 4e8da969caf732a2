// Package cleanup — command classifier.
// Decides whether a bare line of converted text is a shell command. This is
// a surface heuristic: misclassification is expected and is not corrected.
package cleanup

import (
	"regexp"
	"strings"
)

// markdownLeaders are first characters that mark a line as markdown syntax.
const markdownLeaders = "#>|![-"

// proseMarkers are phrases that identify descriptive text, not commands.
var proseMarkers = []string{"requires", "by default", "also", "either", "and source"}

var numberedStep = regexp.MustCompile(`^\d+\.`)

// IsCommand reports whether line looks like a standalone shell command
// given the vocabulary.
func IsCommand(line string, vocab Vocabulary) bool {
	line = strings.TrimSpace(line)
	if line == "" || strings.ContainsAny(line[:1], markdownLeaders) {
		return false
	}

	lower := strings.ToLower(line)
	for _, marker := range proseMarkers {
		if strings.Contains(lower, marker) {
			return false
		}
	}

	if vocab.hasPrefix(line) {
		return true
	}
	if !vocab.hasWord(line) {
		return false
	}

	switch {
	case strings.Contains(line, "|"): // table row
		return false
	case strings.HasSuffix(line, ":"): // heading or description
		return false
	case numberedStep.MatchString(line):
		return false
	case strings.Contains(line, "<"): // markup
		return false
	case strings.Contains(line, "="): // assignment
		return false
	}
	return true
}
