// Package domain defines core business entities and value objects for nous.
//
// The domain layer is independent of infrastructure concerns and represents
// pure business data: recorded commands, the user dictionary, the snippet
// library, brain runs, and the ephemeral interpretation result.
package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Command is one recorded free-text command. Immutable once created.
type Command struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// NewCommand builds a Command with a fresh id and the current timestamp.
func NewCommand(text string) Command {
	return Command{
		ID:        uuid.NewString(),
		Text:      text,
		CreatedAt: time.Now(),
	}
}

// Snippet is a tagged, language-labeled code example candidate for recommendation.
type Snippet struct {
	ID       string   `json:"id"`
	Language string   `json:"language"`
	Title    string   `json:"title"`
	Tags     []string `json:"tags"`
	Body     string   `json:"body"`
}

// NewSnippet constructs a snippet from raw user-supplied fields.
// The language and every tag are lowercased and trimmed; empty tags are
// dropped and duplicates removed while the remaining order is preserved.
func NewSnippet(title, language string, tags []string, body string) Snippet {
	normalized := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" {
			continue
		}
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		normalized = append(normalized, tag)
	}
	return Snippet{
		ID:       uuid.NewString(),
		Language: strings.ToLower(strings.TrimSpace(language)),
		Title:    strings.TrimSpace(title),
		Tags:     normalized,
		Body:     body,
	}
}

// BrainRun is one timestamped execution record of the plan synthesizer.
type BrainRun struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Plan      string    `json:"plan"`
}

// ScoredCommand pairs a history entry with its spectrum score.
type ScoredCommand struct {
	Command Command `json:"command"`
	Score   int     `json:"score"`
}

// ScoredSnippet pairs a snippet with its tag-overlap score.
type ScoredSnippet struct {
	Snippet Snippet `json:"snippet"`
	Score   float64 `json:"score"`
}

// Interpretation is the ephemeral result of analyzing one command.
// It is never persisted; only the Command it was derived from is.
type Interpretation struct {
	Tokens          []string        `json:"tokens"`
	Keywords        []string        `json:"keywords"`
	Antonyms        []string        `json:"antonyms"`
	SimilarityScore int             `json:"similarity_score"`
	DifferenceScore int             `json:"difference_score"`
	Similar         []ScoredCommand `json:"similar"`
	Different       []ScoredCommand `json:"different"`
	Opposite        []ScoredCommand `json:"opposite"`
	Snippets        []ScoredSnippet `json:"snippets"`
	Document        string          `json:"document"`
}

// ExportDocument bundles all persisted collections into one serializable unit.
type ExportDocument struct {
	GeneratedAt time.Time  `json:"generated_at"`
	Commands    []Command  `json:"commands"`
	BrainRuns   []BrainRun `json:"brain_runs"`
	Snippets    []Snippet  `json:"snippets"`
	Dictionary  Dictionary `json:"dictionary"`
}
