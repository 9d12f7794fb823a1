package analysis

import (
	"regexp"

	"nous/internal/domain"
)

// Enhance applies the dictionary's rewrite rules to text, in declared
// order, each rule replacing globally. Every rule runs exactly once; the
// pass is not repeated to convergence, so later rules see (and may depend
// on) the output of earlier ones. Rules with invalid patterns are skipped.
func Enhance(text string, rules []domain.RewriteRule) string {
	for _, rule := range rules {
		re, err := regexp.Compile(rule.Pattern)
		if err != nil {
			continue
		}
		text = re.ReplaceAllString(text, rule.Replacement)
	}
	return text
}
