// Package cleanup — code fence tracker.
package cleanup

import "strings"

const (
	fenceMarker     = "```"
	defaultLanguage = "bash"
	// converterArtifact is a language label the HTML converter leaves on
	// its own line above code samples.
	converterArtifact = "BASH"
)

// isFenceMarker reports whether a trimmed line toggles a code fence.
func isFenceMarker(trimmed string) bool {
	return strings.HasPrefix(trimmed, fenceMarker)
}

// fenceLanguage extracts the lower-cased language tag of an opening fence,
// defaulting to bash.
func fenceLanguage(trimmed string) string {
	lang := strings.ToLower(strings.TrimSpace(strings.ReplaceAll(trimmed, fenceMarker, "")))
	if lang == "" {
		return defaultLanguage
	}
	return lang
}

// openFence renders an opening fence line.
func openFence(lang string) string {
	return fenceMarker + lang
}

// closeFence renders a closing fence and the blank line that follows it.
func closeFence() []string {
	return []string{fenceMarker, ""}
}

// fenced wraps body in a complete fenced block followed by a blank line.
func fenced(lang string, body string) []string {
	return append([]string{openFence(lang), body}, closeFence()...)
}
