package analysis

import (
	"fmt"
	"strings"
)

// TemplateFacts carries the derived facts rendered into the fixed-section
// interpretation document.
type TemplateFacts struct {
	Raw             string
	Primary         []string
	Expanded        []string
	Antonyms        []string
	SimilarityScore int
	DifferenceScore int
}

// noneLiteral is rendered for any empty keyword list.
const noneLiteral = "(none)"

// BuildTemplate assembles the interpretation document. The structure is
// fixed; the only input-dependent branching is the empty-list placeholder.
func BuildTemplate(facts TemplateFacts) string {
	var b strings.Builder
	b.WriteString("Interpretation\n")
	b.WriteString("==============\n\n")

	b.WriteString("Facts:\n")
	fmt.Fprintf(&b, "- Command: %s\n", facts.Raw)
	fmt.Fprintf(&b, "- Primary keywords: %s\n", joinOrNone(facts.Primary))
	fmt.Fprintf(&b, "- Expanded keywords: %s\n", joinOrNone(facts.Expanded))
	fmt.Fprintf(&b, "- Antonyms: %s\n\n", joinOrNone(facts.Antonyms))

	b.WriteString("Intent:\n")
	b.WriteString("The command expresses a goal to accomplish; the keywords above approximate its subject.\n\n")

	b.WriteString("Logic:\n")
	fmt.Fprintf(&b, "- Similarity score: %d / 1000\n", facts.SimilarityScore)
	fmt.Fprintf(&b, "- Difference score: %d / 1000\n", facts.DifferenceScore)
	b.WriteString("- Scores measure this command against previously recorded commands.\n\n")

	b.WriteString("Output Template:\n")
	b.WriteString("- summary\n")
	b.WriteString("- steps\n")
	b.WriteString("- keywords\n")
	b.WriteString("- related snippets\n")
	return b.String()
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return noneLiteral
	}
	return strings.Join(items, ", ")
}
