package analysis

import (
	"fmt"
	"math"
	"testing"
	"time"

	"nous/internal/domain"
)

func TestCosineSimIdentity(t *testing.T) {
	sequences := [][]string{
		{"build"},
		{"build", "website"},
		{"a", "a", "b", "c", "c", "c"},
	}
	for _, tokens := range sequences {
		vec := Vectorize(tokens)
		if sim := CosineSim(vec, vec); sim != 1 {
			t.Fatalf("CosineSim(x, x) = %v for %v, want 1", sim, tokens)
		}
	}
}

func TestCosineSimRange(t *testing.T) {
	pairs := [][2][]string{
		{{"build", "website"}, {"destroy", "database"}},
		{{"build", "website"}, {"build", "api"}},
		{{"a", "b", "c"}, {"c", "b", "a"}},
		{{"x"}, {}},
		{{}, {}},
	}
	for _, pair := range pairs {
		sim := CosineSim(Vectorize(pair[0]), Vectorize(pair[1]))
		if math.IsNaN(sim) || sim < 0 || sim > 1 {
			t.Fatalf("CosineSim(%v, %v) = %v, want value in [0,1]", pair[0], pair[1], sim)
		}
	}
}

func TestCosineSimZeroMagnitude(t *testing.T) {
	if sim := CosineSim(nil, Vectorize([]string{"a"})); sim != 0 {
		t.Fatalf("CosineSim(empty, x) = %v, want 0", sim)
	}
	if sim := CosineSim(Vectorize([]string{"a"}), nil); sim != 0 {
		t.Fatalf("CosineSim(x, empty) = %v, want 0", sim)
	}
}

func TestSpectrum(t *testing.T) {
	if got := Spectrum(0); got != 0 {
		t.Fatalf("Spectrum(0) = %d, want 0", got)
	}
	if got := Spectrum(1); got != 1000 {
		t.Fatalf("Spectrum(1) = %d, want 1000", got)
	}
	if got := Spectrum(-0.5); got != 0 {
		t.Fatalf("Spectrum(-0.5) = %d, want 0", got)
	}
	if got := Spectrum(1.5); got != 1000 {
		t.Fatalf("Spectrum(1.5) = %d, want 1000", got)
	}

	prev := -1
	for x := 0.0; x <= 1.0; x += 0.001 {
		got := Spectrum(x)
		if got < prev {
			t.Fatalf("Spectrum not monotonic: Spectrum(%v) = %d after %d", x, got, prev)
		}
		prev = got
	}
}

func historyOf(texts ...string) []domain.Command {
	log := make([]domain.Command, 0, len(texts))
	for i, text := range texts {
		log = append(log, domain.Command{
			ID:        fmt.Sprintf("cmd-%d", i),
			Text:      text,
			CreatedAt: time.Unix(int64(1700000000+i), 0),
		})
	}
	return log
}

func TestRankAgainstHistoryBestMatch(t *testing.T) {
	stop := stopwordSet("a", "the")
	log := historyOf("build a website", "destroy the database")
	tokens := Tokenize("build a website", stop)

	ranking := RankAgainstHistory(tokens, nil, log, stop)

	if len(ranking.Similar) != 2 {
		t.Fatalf("expected 2 similar entries, got %d", len(ranking.Similar))
	}
	if ranking.Similar[0].Command.ID != "cmd-0" || ranking.Similar[0].Score != 1000 {
		t.Fatalf("best match = %+v, want cmd-0 at 1000", ranking.Similar[0])
	}
	if ranking.SimilarityScore != 1000 {
		t.Fatalf("SimilarityScore = %d, want 1000", ranking.SimilarityScore)
	}
	if ranking.DifferenceScore != 0 {
		t.Fatalf("DifferenceScore = %d, want 0", ranking.DifferenceScore)
	}
}

func TestRankAgainstHistoryEmptyLog(t *testing.T) {
	ranking := RankAgainstHistory([]string{"build"}, nil, nil, nil)
	if ranking.SimilarityScore != 0 || ranking.DifferenceScore != 0 {
		t.Fatalf("empty history scores = %d/%d, want 0/0",
			ranking.SimilarityScore, ranking.DifferenceScore)
	}
	if len(ranking.Similar) != 0 || len(ranking.Different) != 0 || len(ranking.Opposite) != 0 {
		t.Fatalf("empty history produced entries: %+v", ranking)
	}
}

func TestRankAgainstHistoryDifferentOrdering(t *testing.T) {
	stop := stopwordSet()
	log := historyOf(
		"alpha beta gamma", // unrelated
		"build website",    // exact
		"build api",        // partial
	)
	tokens := []string{"build", "website"}

	ranking := RankAgainstHistory(tokens, nil, log, stop)

	// All three entries fit within the bottom five, so Different holds
	// them all, most similar-of-the-dissimilar first.
	if len(ranking.Different) != 3 {
		t.Fatalf("expected 3 different entries, got %d", len(ranking.Different))
	}
	if ranking.Different[0].Command.ID != "cmd-1" {
		t.Fatalf("Different head = %s, want the most similar entry cmd-1", ranking.Different[0].Command.ID)
	}
	if ranking.Different[2].Command.ID != "cmd-0" {
		t.Fatalf("Different tail = %s, want the least similar entry cmd-0", ranking.Different[2].Command.ID)
	}
}

func TestRankAgainstHistoryOpposite(t *testing.T) {
	stop := stopwordSet()
	log := historyOf("destroy database", "build website")

	ranking := RankAgainstHistory([]string{"build"}, []string{"destroy"}, log, stop)

	if len(ranking.Opposite) != 2 {
		t.Fatalf("expected 2 opposite entries, got %d", len(ranking.Opposite))
	}
	if ranking.Opposite[0].Command.ID != "cmd-0" {
		t.Fatalf("Opposite head = %s, want cmd-0", ranking.Opposite[0].Command.ID)
	}
	if ranking.Opposite[0].Score <= ranking.Opposite[1].Score {
		t.Fatalf("Opposite not sorted descending: %+v", ranking.Opposite)
	}
}

func TestRankAgainstHistoryTopFiveOnly(t *testing.T) {
	stop := stopwordSet()
	var texts []string
	for i := 0; i < 8; i++ {
		texts = append(texts, fmt.Sprintf("entry number %d", i))
	}
	log := historyOf(texts...)

	ranking := RankAgainstHistory([]string{"entry"}, nil, log, stop)
	if len(ranking.Similar) != 5 || len(ranking.Different) != 5 {
		t.Fatalf("expected top-5 lists, got %d similar / %d different",
			len(ranking.Similar), len(ranking.Different))
	}
}
