package analysis

import (
	"fmt"
	"strings"

	"nous/internal/domain"
)

// PlanPlaceholder is returned when no commands have been recorded yet.
const PlanPlaceholder = `Pseudocode Plan
===============
No commands recorded yet; nothing to plan.
`

var newlineFlattener = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// SynthesizePlan builds the fixed-format pseudocode plan from the command
// log and dictionary. Only the most recently appended command contributes
// variable content; earlier history is ignored. The algorithm steps and
// output fields are constant.
func SynthesizePlan(log []domain.Command, dict domain.Dictionary) string {
	if len(log) == 0 {
		return PlanPlaceholder
	}
	last := log[len(log)-1]
	tokens := Tokenize(last.Text, dict.StopwordSet())
	keywords := ExpandSynonyms(tokens, dict)

	var b strings.Builder
	b.WriteString("Pseudocode Plan\n")
	b.WriteString("===============\n")
	fmt.Fprintf(&b, "Generated: %s\n", last.CreatedAt.Format(domain.TimestampFormat))
	fmt.Fprintf(&b, "Command: %s\n", newlineFlattener.Replace(last.Text))
	fmt.Fprintf(&b, "Keywords: %s\n\n", joinOrNone(keywords))

	b.WriteString("Algorithm:\n")
	b.WriteString("1. Normalize the command text and strip stopwords.\n")
	b.WriteString("2. Expand keywords through the synonym dictionary.\n")
	b.WriteString("3. Vectorize the keyword set.\n")
	b.WriteString("4. Score the command against recorded history.\n")
	b.WriteString("5. Rank snippet candidates by tag overlap.\n")
	b.WriteString("6. Assemble and enhance the interpretation document.\n")
	b.WriteString("7. Record the outcome for later review.\n\n")

	b.WriteString("Output:\n")
	b.WriteString("- plan header\n")
	b.WriteString("- source command\n")
	b.WriteString("- keyword list\n")
	b.WriteString("- algorithm steps\n")
	return b.String()
}
