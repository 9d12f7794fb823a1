package analysis

import (
	"testing"

	"nous/internal/domain"
)

func defaultRules() []domain.RewriteRule {
	return []domain.RewriteRule{
		{Pattern: `\bkind of\b`, Replacement: "somewhat"},
		{Pattern: `\bvery\b`, Replacement: "highly"},
		{Pattern: `\band(\s+and)+\b`, Replacement: "and"},
		{Pattern: `[ \t]{2,}`, Replacement: " "},
		{Pattern: `[ \t]+([,.;:!?])`, Replacement: "$1"},
	}
}

func TestEnhanceAppliesRulesInOrder(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "colloquialism simplification",
			input: "this is kind of slow and very broken",
			want:  "this is somewhat slow and highly broken",
		},
		{
			name:  "duplicate conjunction cleanup",
			input: "build and and and deploy",
			want:  "build and deploy",
		},
		{
			name:  "whitespace collapse",
			input: "build    the  app",
			want:  "build the app",
		},
		{
			name:  "punctuation spacing",
			input: "build , deploy , run !",
			want:  "build, deploy, run!",
		},
		{
			name:  "replacement applies globally",
			input: "very fast and very slow",
			want:  "highly fast and highly slow",
		},
	}

	rules := defaultRules()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Enhance(tc.input, rules); got != tc.want {
				t.Fatalf("Enhance(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestEnhanceRunsExactlyOnce(t *testing.T) {
	// A replacement that reintroduces an earlier rule's pattern must not
	// be rewritten again: the pass is single-shot, not run to convergence.
	rules := []domain.RewriteRule{
		{Pattern: `\ba\b`, Replacement: "b"},
		{Pattern: `\bb\b`, Replacement: "a"},
	}
	if got := Enhance("a", rules); got != "a" {
		t.Fatalf("Enhance = %q, want %q (b from rule one rewritten by rule two)", got, "a")
	}
}

func TestEnhanceSkipsInvalidPattern(t *testing.T) {
	rules := []domain.RewriteRule{
		{Pattern: `([`, Replacement: "x"},
		{Pattern: `\bvery\b`, Replacement: "highly"},
	}
	if got := Enhance("very good", rules); got != "highly good" {
		t.Fatalf("Enhance = %q, want invalid rule skipped", got)
	}
}

func TestEnhanceNoRulesIsIdentity(t *testing.T) {
	const text = "leave me alone"
	if got := Enhance(text, nil); got != text {
		t.Fatalf("Enhance with no rules = %q, want %q", got, text)
	}
}
