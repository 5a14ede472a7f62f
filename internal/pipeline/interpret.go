package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ITSYOURAHLAWAT/vibe-matcher-ai/internal/pkg/logger"
	"github.com/ITSYOURAHLAWAT/vibe-matcher-ai/pkg/llm"
)

const fallbackThoughts = "interpretation unavailable, using raw query"

// vibeAnalysis is the structured output requested from the Vibe Analyst.
type vibeAnalysis struct {
	ThoughtProcess string   `json:"thought_process"`
	SearchTerms    []string `json:"search_terms"`
}

// InterpretStage is the Vibe Analyst: it decomposes a vague fashion request
// into a short rationale and concrete search terms. This is the only stage
// with built-in degradation — any completion fault collapses to a usable
// fallback instead of aborting the run, so retrieval always has at least
// one search term.
type InterpretStage struct {
	llmProvider llm.LLMProvider
	logger      logger.ILogger
}

var _ Stage = &InterpretStage{}

func NewInterpretStage(llmProvider llm.LLMProvider, log logger.ILogger) *InterpretStage {
	return &InterpretStage{
		llmProvider: llmProvider,
		logger:      log,
	}
}

func (s *InterpretStage) Name() string {
	return StageInterpret
}

func (s *InterpretStage) Run(ctx context.Context, current State, emit TokenFunc) (Update, error) {
	prompt := buildAnalystPrompt(current.UserQuery)

	response, err := s.llmProvider.Generate(ctx, prompt, llm.WithTemperature(0.7))
	if err != nil {
		s.logger.Warn("VibeAnalyst", "Completion failed, falling back to raw query", map[string]interface{}{
			"error": err.Error(),
		})
		return s.fallback(current.UserQuery), nil
	}

	analysis, err := parseAnalysis(response)
	if err != nil {
		s.logger.Warn("VibeAnalyst", "Structured output parsing failed, falling back to raw query", map[string]interface{}{
			"error": err.Error(),
		})
		return s.fallback(current.UserQuery), nil
	}

	s.logger.Info("VibeAnalyst", "Query decomposed", map[string]interface{}{
		"keywords": analysis.SearchTerms,
	})

	return Update{
		AnalystThoughts: analysis.ThoughtProcess,
		RefinedKeywords: analysis.SearchTerms,
	}, nil
}

// fallback guarantees the pipeline proceeds with at least one search term.
func (s *InterpretStage) fallback(query string) Update {
	return Update{
		AnalystThoughts: fallbackThoughts,
		RefinedKeywords: []string{query},
	}
}

func buildAnalystPrompt(query string) string {
	var prompt strings.Builder

	prompt.WriteString("You are an expert Fashion Vibe Analyst.\n")
	prompt.WriteString("Your goal is to deconstruct a user's vague fashion request into concrete, searchable attributes.\n\n")
	prompt.WriteString("Follow this Chain-of-Thought process:\n")
	prompt.WriteString("1. ANALYZE: What is the core \"vibe\" or aesthetic? (e.g., Cyberpunk, Boho, Minimalist)\n")
	prompt.WriteString("2. KEYWORDS: specific visual elements, fabrics, colors, or item types.\n")
	prompt.WriteString("3. SEARCH TERMS: A list of 3-5 concise search strings that would work well in a vector database.\n\n")
	prompt.WriteString("Respond in JSON format:\n")
	prompt.WriteString("{\n")
	prompt.WriteString("    \"thought_process\": \"Analysis description...\",\n")
	prompt.WriteString("    \"search_terms\": [\"term1\", \"term2\", \"term3\"]\n")
	prompt.WriteString("}\n\n")
	prompt.WriteString("<user_query>\n")
	prompt.WriteString(query)
	prompt.WriteString("\n</user_query>\n")

	return prompt.String()
}

func parseAnalysis(response string) (*vibeAnalysis, error) {
	jsonContent := extractJSON(response)
	if jsonContent == "" {
		return nil, fmt.Errorf("no JSON found in response")
	}

	var analysis vibeAnalysis
	if err := json.Unmarshal([]byte(jsonContent), &analysis); err != nil {
		return nil, fmt.Errorf("JSON unmarshal failed: %w", err)
	}

	if len(analysis.SearchTerms) == 0 {
		return nil, fmt.Errorf("no search terms in response")
	}

	return &analysis, nil
}

// extractJSON pulls the first {...} block out of a model response, tolerating
// prose or code fences around it.
func extractJSON(response string) string {
	startIdx := strings.Index(response, "{")
	endIdx := strings.LastIndex(response, "}")

	if startIdx == -1 || endIdx == -1 || endIdx <= startIdx {
		return ""
	}

	return response[startIdx : endIdx+1]
}
