// Package interpret orchestrates the interpretation pipeline end-to-end:
// tokenize, expand, rank against history and the snippet library, build
// the template and run the enhancement pass.
package interpret

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"nous/internal/analysis"
	"nous/internal/domain"
	"nous/internal/ports"
	"nous/internal/state"
)

// Request describes one submission.
type Request struct {
	Text string
	// DryRun analyzes without recording a Command.
	DryRun bool
}

// Response is the outcome of a submission. Accepted is false for blank
// input, which is silently dropped without side effects.
type Response struct {
	Accepted       bool
	FromCache      bool
	Command        domain.Command
	Interpretation domain.Interpretation
}

// Service runs the interpretation pipeline against the owned state.
type Service struct {
	State  *state.State
	Cache  ports.InterpretationCache
	Logger ports.Logger
}

// Run analyzes one free-text command. Unless the request is a dry run,
// the command is appended to the log after ranking, so a submission never
// scores against itself.
func (s *Service) Run(req Request) (Response, error) {
	if s.State == nil || s.Logger == nil {
		return Response{}, errors.New("interpret.Service dependencies not satisfied")
	}

	text := strings.TrimSpace(req.Text)
	if text == "" {
		return Response{}, nil
	}

	view := s.State.Snapshot()

	key := cacheKey(text, view.Generation)
	if req.DryRun && s.Cache != nil {
		if cached, ok := s.Cache.Get(key); ok {
			return Response{Accepted: true, FromCache: true, Interpretation: cached}, nil
		}
	}

	stopwords := view.Dictionary.StopwordSet()
	tokens := analysis.Tokenize(text, stopwords)
	keywords := analysis.ExpandSynonyms(tokens, view.Dictionary)
	antonyms := analysis.AntonymsOf(tokens, view.Dictionary)
	ranking := analysis.RankAgainstHistory(tokens, antonyms, view.Commands, stopwords)
	snippets := analysis.RankSnippets(view.Snippets, keywords)

	document := analysis.BuildTemplate(analysis.TemplateFacts{
		Raw:             text,
		Primary:         tokens,
		Expanded:        keywords,
		Antonyms:        antonyms,
		SimilarityScore: ranking.SimilarityScore,
		DifferenceScore: ranking.DifferenceScore,
	})
	document = analysis.Enhance(document, view.Dictionary.Rewrites)

	interpretation := domain.Interpretation{
		Tokens:          tokens,
		Keywords:        keywords,
		Antonyms:        antonyms,
		SimilarityScore: ranking.SimilarityScore,
		DifferenceScore: ranking.DifferenceScore,
		Similar:         ranking.Similar,
		Different:       ranking.Different,
		Opposite:        ranking.Opposite,
		Snippets:        snippets,
		Document:        document,
	}

	resp := Response{Accepted: true, Interpretation: interpretation}
	if req.DryRun {
		if s.Cache != nil {
			if err := s.Cache.Set(key, interpretation); err != nil {
				s.Logger.Warn("interpretation cache write failed", map[string]interface{}{"error": err.Error()})
			}
		}
		return resp, nil
	}

	cmd := domain.NewCommand(text)
	s.State.AppendCommand(cmd)
	resp.Command = cmd
	s.Logger.Info("command recorded", map[string]interface{}{
		"id":         cmd.ID,
		"tokens":     len(tokens),
		"similarity": ranking.SimilarityScore,
	})
	return resp, nil
}

func cacheKey(text string, generation uint64) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%d:%s", generation, text)))
	return hex.EncodeToString(sum[:])
}
