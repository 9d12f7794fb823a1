package analysis

import "nous/internal/domain"

// ExpandSynonyms returns the original tokens plus the synonyms of every
// token that has a dictionary entry. Expansion is single level: synonyms
// of synonyms are never added. Originals come first in their input order
// (deduplicated); discovered synonyms follow in dictionary declaration
// order.
func ExpandSynonyms(tokens []string, dict domain.Dictionary) []string {
	out := make([]string, 0, len(tokens))
	seen := make(map[string]struct{}, len(tokens))
	original := make(map[string]struct{}, len(tokens))
	for _, token := range tokens {
		original[token] = struct{}{}
		if _, dup := seen[token]; dup {
			continue
		}
		seen[token] = struct{}{}
		out = append(out, token)
	}
	for _, entry := range dict.Synonyms {
		// Only entries matched by an original token contribute; this is
		// what keeps the expansion from recursing.
		if _, matched := original[entry.Word]; !matched {
			continue
		}
		for _, synonym := range entry.Terms {
			if _, dup := seen[synonym]; dup {
				continue
			}
			seen[synonym] = struct{}{}
			out = append(out, synonym)
		}
	}
	return out
}

// AntonymsOf returns the union of the antonyms mapped for any input token,
// in dictionary declaration order, deduplicated. Empty when nothing matches.
func AntonymsOf(tokens []string, dict domain.Dictionary) []string {
	original := make(map[string]struct{}, len(tokens))
	for _, token := range tokens {
		original[token] = struct{}{}
	}
	var out []string
	seen := make(map[string]struct{})
	for _, entry := range dict.Antonyms {
		if _, matched := original[entry.Word]; !matched {
			continue
		}
		for _, antonym := range entry.Terms {
			if _, dup := seen[antonym]; dup {
				continue
			}
			seen[antonym] = struct{}{}
			out = append(out, antonym)
		}
	}
	return out
}
