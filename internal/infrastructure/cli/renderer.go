package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"

	"nous/internal/application/interpret"
	"nous/internal/domain"
)

// RenderInterpretation prints the interpretation in a friendly, ASCII-only format.
func RenderInterpretation(w io.Writer, resp interpret.Response) {
	if !resp.Accepted {
		fmt.Fprintln(w, "Nothing to interpret (empty command).")
		return
	}

	fmt.Fprint(w, resp.Interpretation.Document)
	if resp.FromCache {
		fmt.Fprintln(w, "\nNote: result served from cache")
	}

	renderScoredCommands(w, "Similar commands", resp.Interpretation.Similar)
	renderScoredCommands(w, "Different commands", resp.Interpretation.Different)
	renderScoredCommands(w, "Opposite commands", resp.Interpretation.Opposite)
	renderScoredSnippets(w, resp.Interpretation.Snippets)

	if resp.Command.ID != "" {
		fmt.Fprintf(w, "\nRecorded as %s\n", resp.Command.ID)
	}
}

func renderScoredCommands(w io.Writer, title string, entries []domain.ScoredCommand) {
	if len(entries) == 0 {
		return
	}
	fmt.Fprintf(w, "\n%s:\n", title)
	for i, entry := range entries {
		fmt.Fprintf(w, " %d. [%4d] %s (%s)\n", i+1, entry.Score,
			firstLine(entry.Command.Text), humanize.Time(entry.Command.CreatedAt))
	}
}

func renderScoredSnippets(w io.Writer, entries []domain.ScoredSnippet) {
	if len(entries) == 0 {
		return
	}
	fmt.Fprintln(w, "\nRelated snippets:")
	for i, entry := range entries {
		fmt.Fprintf(w, " %d. [%.1f] %s (%s) tags: %s\n", i+1, entry.Score,
			entry.Snippet.Title, entry.Snippet.Language, strings.Join(entry.Snippet.Tags, ", "))
	}
}

func firstLine(text string) string {
	if idx := strings.IndexByte(text, '\n'); idx >= 0 {
		return text[:idx] + " ..."
	}
	return text
}
