// Package cleanup — command vocabulary.
// The vocabulary is configuration: the classifier only ever sees it as data.
package cleanup

import "strings"

// Vocabulary is the set of command tokens used to spot shell commands
// embedded in converted prose. Order is irrelevant.
type Vocabulary []string

// DefaultVocabulary returns the built-in command tokens.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		"mkdir", "systemctl", "export", "source", "echo", "curl", "cd",
		"git", "kubectl", "helm", "docker", "sudo",
		"apt", "yum", "dnf", "rpm", "tar",
		"cp", "mv", "rm", "cat", "ls", "chmod", "chown", "tee",
		"sh", "bash",
	}
}

// NewVocabulary builds a Vocabulary from raw tokens, trimming whitespace
// and dropping blanks and duplicates. An empty result falls back to
// DefaultVocabulary.
func NewVocabulary(tokens []string) Vocabulary {
	seen := make(map[string]bool, len(tokens))
	var v Vocabulary
	for _, tok := range tokens {
		tok = strings.TrimSpace(tok)
		if tok == "" || seen[tok] {
			continue
		}
		seen[tok] = true
		v = append(v, tok)
	}
	if len(v) == 0 {
		return DefaultVocabulary()
	}
	return v
}

// hasPrefix reports whether line starts with any token.
func (v Vocabulary) hasPrefix(line string) bool {
	for _, tok := range v {
		if strings.HasPrefix(line, tok) {
			return true
		}
	}
	return false
}

// hasWord reports whether any token appears as a space-delimited word.
func (v Vocabulary) hasWord(line string) bool {
	padded := " " + line + " "
	for _, tok := range v {
		if strings.Contains(padded, " "+tok+" ") {
			return true
		}
	}
	return false
}
