package analysis

import (
	"sort"

	"nous/internal/domain"
)

// languageBonus is added when the snippet's language itself shows up in
// the expanded keyword set.
const languageBonus = 0.5

// RankSnippets scores every snippet by how many of its tags appear
// verbatim in the expanded keyword set, plus the language bonus. The sort
// is stable so ties keep their original library order; the top five are
// returned.
func RankSnippets(snippets []domain.Snippet, keywords []string) []domain.ScoredSnippet {
	keywordSet := make(map[string]struct{}, len(keywords))
	for _, keyword := range keywords {
		keywordSet[keyword] = struct{}{}
	}

	scored := make([]domain.ScoredSnippet, 0, len(snippets))
	for _, snippet := range snippets {
		score := 0.0
		for _, tag := range snippet.Tags {
			if _, hit := keywordSet[tag]; hit {
				score++
			}
		}
		if _, hit := keywordSet[snippet.Language]; hit {
			score += languageBonus
		}
		scored = append(scored, domain.ScoredSnippet{Snippet: snippet, Score: score})
	}

	sort.SliceStable(scored, func(i, j int) bool { return scored[i].Score > scored[j].Score })
	if len(scored) > domain.TopMatches {
		scored = scored[:domain.TopMatches]
	}
	return scored
}
