package pipeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/ITSYOURAHLAWAT/vibe-matcher-ai/internal/pkg/logger"
	"github.com/ITSYOURAHLAWAT/vibe-matcher-ai/pkg/llm"
)

const emptyMatchPitch = "I couldn't find any items that match your specific vibe perfectly, but I'm always looking for new styles!"

// SynthesizeStage is the Personal Stylist: it turns the retrieved matches
// into a personalized pitch, streaming each fragment through emit as the
// model produces it. With no matches it short-circuits to a fixed apology
// without touching the completion service.
type SynthesizeStage struct {
	llmProvider llm.LLMProvider
	logger      logger.ILogger
}

var _ Stage = &SynthesizeStage{}

func NewSynthesizeStage(llmProvider llm.LLMProvider, log logger.ILogger) *SynthesizeStage {
	return &SynthesizeStage{
		llmProvider: llmProvider,
		logger:      log,
	}
}

func (s *SynthesizeStage) Name() string {
	return StageSynthesize
}

func (s *SynthesizeStage) Run(ctx context.Context, current State, emit TokenFunc) (Update, error) {
	if len(current.RetrievedProducts) == 0 {
		s.logger.Info("Stylist", "No matches to pitch, using fallback", nil)
		return Update{StylistPitch: emptyMatchPitch}, nil
	}

	history := []llm.Message{
		{Role: "system", Content: buildStylistPrompt(current)},
		{Role: "user", Content: "Write the pitch."},
	}

	pitch, err := s.llmProvider.ChatStream(ctx, history, func(chunk string) error {
		emit(chunk)
		return nil
	})
	if err != nil {
		return Update{}, err
	}

	s.logger.Info("Stylist", "Pitch generated", map[string]interface{}{
		"products": len(current.RetrievedProducts),
		"length":   len(pitch),
	})

	return Update{StylistPitch: pitch}, nil
}

func buildStylistPrompt(current State) string {
	var prompt strings.Builder

	prompt.WriteString("You are an elite Personal Stylist.\n")
	prompt.WriteString(fmt.Sprintf("The user asked for: %q\n\n", current.UserQuery))
	prompt.WriteString(fmt.Sprintf("Our Vibe Analyst noted: %q\n\n", current.AnalystThoughts))
	prompt.WriteString("We found these matching items:\n")
	prompt.WriteString(renderProductList(current))
	prompt.WriteString("\nYour task:\n")
	prompt.WriteString("Write a short, engaging, and personalized sales pitch explaining WHY these specific items fit the user's requested vibe.\n")
	prompt.WriteString("Be enthusiastic but professional. Focus on the *vibe* match.\n")

	return prompt.String()
}

// renderProductList formats matches as a numbered, 1-indexed list in rank
// order: "1. name: desc (Vibes: vibes)".
func renderProductList(current State) string {
	var list strings.Builder
	for idx, p := range current.RetrievedProducts {
		name := p.Metadata["name"]
		if name == "" {
			name = "Unknown"
		}
		desc := p.Metadata["desc"]
		if desc == "" {
			desc = "No desc"
		}
		list.WriteString(fmt.Sprintf("%d. %s: %s (Vibes: %s)\n", idx+1, name, desc, p.Metadata["vibes"]))
	}
	return list.String()
}
