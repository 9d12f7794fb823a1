// Package analysis implements the text-analysis and ranking engine:
// tokenization, dictionary keyword expansion, cosine similarity scoring,
// snippet ranking, the interpretation template, the enhancement pass and
// the pseudocode plan synthesizer. Every function here is a pure
// transform over its inputs.
package analysis

import (
	"regexp"
	"strings"
)

var nonToken = regexp.MustCompile(`[^a-z0-9_\-\s]+`)

// Tokenize normalizes text into an ordered keyword sequence: lowercase,
// anything outside [a-z0-9_-] and whitespace becomes whitespace, runs are
// collapsed, and stopwords are dropped. Duplicates are retained and order
// is preserved.
func Tokenize(text string, stopwords map[string]struct{}) []string {
	cleaned := nonToken.ReplaceAllString(strings.ToLower(text), " ")
	fields := strings.Fields(cleaned)
	tokens := make([]string, 0, len(fields))
	for _, field := range fields {
		if _, skip := stopwords[field]; skip {
			continue
		}
		tokens = append(tokens, field)
	}
	return tokens
}
