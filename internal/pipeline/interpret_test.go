package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/ITSYOURAHLAWAT/vibe-matcher-ai/internal/pkg/logger"
)

func TestInterpretParsesStructuredResponse(t *testing.T) {
	llmStub := &fakeLLM{
		generateResponse: `Here you go:
{"thought_process": "User wants warm layered pieces for cold months.", "search_terms": ["cozy knitwear", "fleece hoodie", "winter layers"]}`,
	}
	stage := NewInterpretStage(llmStub, logger.NopLogger{})

	update, err := stage.Run(context.Background(), NewState("cozy winter vibes"), func(string) {})
	if err != nil {
		t.Fatalf("Run() error = %v (interpret must never hard-fail)", err)
	}

	if update.AnalystThoughts != "User wants warm layered pieces for cold months." {
		t.Errorf("AnalystThoughts = %q", update.AnalystThoughts)
	}
	want := []string{"cozy knitwear", "fleece hoodie", "winter layers"}
	if len(update.RefinedKeywords) != len(want) {
		t.Fatalf("keywords = %v, want %v", update.RefinedKeywords, want)
	}
	for i := range want {
		if update.RefinedKeywords[i] != want[i] {
			t.Errorf("keyword[%d] = %q, want %q", i, update.RefinedKeywords[i], want[i])
		}
	}
}

func TestInterpretFallsBackOnCompletionFault(t *testing.T) {
	llmStub := &fakeLLM{generateErr: errors.New("timeout")}
	stage := NewInterpretStage(llmStub, logger.NopLogger{})

	update, err := stage.Run(context.Background(), NewState("cozy winter vibes"), func(string) {})
	if err != nil {
		t.Fatalf("Run() error = %v, want local recovery", err)
	}

	if update.AnalystThoughts != fallbackThoughts {
		t.Errorf("AnalystThoughts = %q, want fallback text", update.AnalystThoughts)
	}
	if len(update.RefinedKeywords) != 1 || update.RefinedKeywords[0] != "cozy winter vibes" {
		t.Errorf("keywords = %v, want [user query]", update.RefinedKeywords)
	}
}

func TestInterpretFallsBackOnMalformedOutput(t *testing.T) {
	tests := []struct {
		name     string
		response string
	}{
		{"no JSON at all", "Sure! Let me think about that for you."},
		{"broken JSON", `{"thought_process": "oops", "search_terms": [`},
		{"empty search terms", `{"thought_process": "hm", "search_terms": []}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stage := NewInterpretStage(&fakeLLM{generateResponse: tt.response}, logger.NopLogger{})

			update, err := stage.Run(context.Background(), NewState("boho festival look"), func(string) {})
			if err != nil {
				t.Fatalf("Run() error = %v, want local recovery", err)
			}
			if len(update.RefinedKeywords) != 1 || update.RefinedKeywords[0] != "boho festival look" {
				t.Errorf("keywords = %v, want [user query]", update.RefinedKeywords)
			}
		})
	}
}

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name     string
		response string
		want     string
	}{
		{"bare object", `{"a": 1}`, `{"a": 1}`},
		{"fenced", "```json\n{\"a\": 1}\n```", `{"a": 1}`},
		{"prose around", `Sure: {"a": 1} hope that helps`, `{"a": 1}`},
		{"no object", "nothing here", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractJSON(tt.response); got != tt.want {
				t.Errorf("extractJSON() = %q, want %q", got, tt.want)
			}
		})
	}
}
