package analysis

import (
	"math"
	"sort"

	"nous/internal/domain"
)

// Vectorize builds a bag-of-words frequency vector from a token sequence.
func Vectorize(tokens []string) map[string]float64 {
	vector := make(map[string]float64, len(tokens))
	for _, token := range tokens {
		vector[token]++
	}
	return vector
}

// CosineSim computes the cosine similarity of two frequency vectors over
// the union of their vocabularies. It is exactly 0 (never NaN) when either
// vector has zero magnitude, and always lands in [0,1].
func CosineSim(a, b map[string]float64) float64 {
	var dot, normA, normB float64
	for key, av := range a {
		normA += av * av
		if bv, ok := b[key]; ok {
			dot += av * bv
		}
	}
	for _, bv := range b {
		normB += bv * bv
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	sim := dot / math.Sqrt(normA*normB)
	if sim > 1 {
		return 1
	}
	if sim < 0 {
		return 0
	}
	return sim
}

// Spectrum maps a similarity value in [0,1] onto the integer scale
// [0,1000]. Inputs outside the unit interval are clamped first.
func Spectrum(x float64) int {
	if x < 0 {
		x = 0
	}
	if x > 1 {
		x = 1
	}
	return int(math.Round(x * domain.SpectrumMax))
}

// HistoryRanking is the result of scoring a token sequence against the
// recorded command log.
type HistoryRanking struct {
	Similar         []domain.ScoredCommand
	Different       []domain.ScoredCommand
	Opposite        []domain.ScoredCommand
	SimilarityScore int
	DifferenceScore int
}

type scoredEntry struct {
	command domain.Command
	sim     float64
}

// RankAgainstHistory scores newTokens against every entry of the command
// log, each entry re-tokenized with the current stopword set.
//
// Similar is the top five by cosine similarity. Different is the bottom
// five, reported most-similar-of-the-dissimilar first. Opposite is the top
// five by similarity between the antonym set and the entry. The similarity
// score is the spectrum of the single best match and the difference score
// is the spectrum of its complement; both are 0 over an empty log.
func RankAgainstHistory(newTokens, antonyms []string, log []domain.Command, stopwords map[string]struct{}) HistoryRanking {
	if len(log) == 0 {
		return HistoryRanking{}
	}

	newVec := Vectorize(newTokens)
	antonymVec := Vectorize(antonyms)

	direct := make([]scoredEntry, 0, len(log))
	opposite := make([]scoredEntry, 0, len(log))
	best := 0.0
	for _, entry := range log {
		entryVec := Vectorize(Tokenize(entry.Text, stopwords))
		sim := CosineSim(newVec, entryVec)
		if sim > best {
			best = sim
		}
		direct = append(direct, scoredEntry{command: entry, sim: sim})
		opposite = append(opposite, scoredEntry{command: entry, sim: CosineSim(antonymVec, entryVec)})
	}

	descending := make([]scoredEntry, len(direct))
	copy(descending, direct)
	sort.SliceStable(descending, func(i, j int) bool { return descending[i].sim > descending[j].sim })

	ascending := make([]scoredEntry, len(direct))
	copy(ascending, direct)
	sort.SliceStable(ascending, func(i, j int) bool { return ascending[i].sim < ascending[j].sim })

	sort.SliceStable(opposite, func(i, j int) bool { return opposite[i].sim > opposite[j].sim })

	return HistoryRanking{
		Similar:         toScored(topEntries(descending, domain.TopMatches)),
		Different:       toScored(reverseEntries(topEntries(ascending, domain.TopMatches))),
		Opposite:        toScored(topEntries(opposite, domain.TopMatches)),
		SimilarityScore: Spectrum(best),
		DifferenceScore: Spectrum(1 - best),
	}
}

func topEntries(entries []scoredEntry, n int) []scoredEntry {
	if len(entries) > n {
		entries = entries[:n]
	}
	return entries
}

func reverseEntries(entries []scoredEntry) []scoredEntry {
	out := make([]scoredEntry, len(entries))
	for i, entry := range entries {
		out[len(entries)-1-i] = entry
	}
	return out
}

func toScored(entries []scoredEntry) []domain.ScoredCommand {
	out := make([]domain.ScoredCommand, 0, len(entries))
	for _, entry := range entries {
		out = append(out, domain.ScoredCommand{Command: entry.command, Score: Spectrum(entry.sim)})
	}
	return out
}
