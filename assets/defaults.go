package assets

import (
	_ "embed"
)

// DefaultDictionaryYAML contains the embedded default dictionary:
// synonym/antonym mappings, stopwords and enhancement rewrite rules.
//
//go:embed defaults/dictionary.yaml
var DefaultDictionaryYAML []byte

// DefaultSnippetsYAML contains the embedded seed snippet library.
//
//go:embed defaults/snippets.yaml
var DefaultSnippetsYAML []byte
