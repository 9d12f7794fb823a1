package analysis

import (
	"strings"
	"testing"
	"time"

	"nous/internal/domain"
)

func TestSynthesizePlanEmptyLog(t *testing.T) {
	if got := SynthesizePlan(nil, domain.Dictionary{}); got != PlanPlaceholder {
		t.Fatalf("empty log plan = %q, want placeholder", got)
	}
}

func TestSynthesizePlanUsesLastCommandOnly(t *testing.T) {
	dict := domain.Dictionary{
		Synonyms:  []domain.MappingEntry{{Word: "build", Terms: []string{"create"}}},
		Stopwords: []string{"a"},
	}
	log := []domain.Command{
		{ID: "old", Text: "destroy everything", CreatedAt: time.Unix(1700000000, 0)},
		{ID: "new", Text: "build a website", CreatedAt: time.Unix(1700000100, 0).UTC()},
	}

	plan := SynthesizePlan(log, dict)

	if !strings.Contains(plan, "Command: build a website") {
		t.Fatalf("plan missing last command text:\n%s", plan)
	}
	if strings.Contains(plan, "destroy") {
		t.Fatalf("plan leaked earlier history:\n%s", plan)
	}
	if !strings.Contains(plan, "Keywords: build, website, create") {
		t.Fatalf("plan missing expanded keywords:\n%s", plan)
	}
	if !strings.Contains(plan, log[1].CreatedAt.Format(domain.TimestampFormat)) {
		t.Fatalf("plan missing command timestamp:\n%s", plan)
	}
}

func TestSynthesizePlanFlattensNewlines(t *testing.T) {
	log := []domain.Command{
		{ID: "multi", Text: "build the\nwebsite\r\nnow", CreatedAt: time.Now()},
	}

	plan := SynthesizePlan(log, domain.Dictionary{})

	if !strings.Contains(plan, "Command: build the website now") {
		t.Fatalf("newlines not flattened to spaces:\n%s", plan)
	}
}

func TestSynthesizePlanConstantSections(t *testing.T) {
	log := []domain.Command{{ID: "x", Text: "anything", CreatedAt: time.Now()}}
	plan := SynthesizePlan(log, domain.Dictionary{})

	for _, fragment := range []string{
		"Pseudocode Plan\n===============",
		"Algorithm:",
		"1. Normalize the command text and strip stopwords.",
		"7. Record the outcome for later review.",
		"Output:",
		"- plan header",
	} {
		if !strings.Contains(plan, fragment) {
			t.Fatalf("plan missing %q:\n%s", fragment, plan)
		}
	}
}
