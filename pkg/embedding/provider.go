package embedding

import (
	"context"
	"fmt"
)

// Task types hint the backend at how the embedding will be used. Providers
// that have no notion of task types ignore them.
const (
	TaskTypeQuery    = "RETRIEVAL_QUERY"
	TaskTypeDocument = "RETRIEVAL_DOCUMENT"
)

// EmbeddingProvider defines the interface for generating text embeddings
type EmbeddingProvider interface {
	// Generate returns the embedding vector for a single text.
	Generate(ctx context.Context, text string, taskType string) ([]float32, error)

	// GenerateBatch embeds texts in order; result[i] is the vector for
	// texts[i], always 1:1 with the input.
	GenerateBatch(ctx context.Context, texts []string, taskType string) ([][]float32, error)
}

// EmbeddingError wraps any fault from an embedding backend.
type EmbeddingError struct {
	Provider string
	Err      error
}

func (e *EmbeddingError) Error() string {
	return fmt.Sprintf("embedding service (%s): %v", e.Provider, e.Err)
}

func (e *EmbeddingError) Unwrap() error {
	return e.Err
}

// NewEmbeddingError wraps err unless it already is an EmbeddingError.
func NewEmbeddingError(provider string, err error) *EmbeddingError {
	if ee, ok := err.(*EmbeddingError); ok {
		return ee
	}
	return &EmbeddingError{Provider: provider, Err: err}
}
