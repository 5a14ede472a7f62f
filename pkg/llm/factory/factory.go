package factory

import (
	"fmt"

	"github.com/ITSYOURAHLAWAT/vibe-matcher-ai/pkg/llm"
	"github.com/ITSYOURAHLAWAT/vibe-matcher-ai/pkg/llm/ollama"
)

func NewLLMProvider(providerType, modelName, baseURL string) (llm.LLMProvider, error) {
	switch providerType {
	case "ollama":
		if baseURL == "" {
			baseURL = "http://localhost:11434" // Default
		}
		return ollama.NewOllamaProvider(baseURL, modelName), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
