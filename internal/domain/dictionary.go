package domain

// MappingEntry associates a word with an ordered list of related words.
// Entries are kept as an ordered list rather than a map so that
// "declaration order" of the dictionary is well-defined and stable.
type MappingEntry struct {
	Word  string   `yaml:"word" json:"word"`
	Terms []string `yaml:"terms" json:"terms"`
}

// RewriteRule is one ordered text-rewrite step applied by the enhancer.
type RewriteRule struct {
	Pattern     string `yaml:"pattern" json:"pattern"`
	Replacement string `yaml:"replacement" json:"replacement"`
}

// Dictionary is the user-editable analysis configuration: synonym and
// antonym mappings (single level, no transitive closure), the stopword
// set, and the ordered enhancement rewrite rules.
type Dictionary struct {
	Synonyms  []MappingEntry `yaml:"synonyms" json:"synonyms"`
	Antonyms  []MappingEntry `yaml:"antonyms" json:"antonyms"`
	Stopwords []string       `yaml:"stopwords" json:"stopwords"`
	Rewrites  []RewriteRule  `yaml:"rewrites" json:"rewrites"`
}

// StopwordSet returns the stopwords as a membership set.
func (d Dictionary) StopwordSet() map[string]struct{} {
	set := make(map[string]struct{}, len(d.Stopwords))
	for _, word := range d.Stopwords {
		set[word] = struct{}{}
	}
	return set
}

// IsEmpty reports whether the dictionary carries no entries at all.
func (d Dictionary) IsEmpty() bool {
	return len(d.Synonyms) == 0 && len(d.Antonyms) == 0 &&
		len(d.Stopwords) == 0 && len(d.Rewrites) == 0
}
