package pipeline

import (
	"context"

	"github.com/ITSYOURAHLAWAT/vibe-matcher-ai/internal/entity"
	"github.com/ITSYOURAHLAWAT/vibe-matcher-ai/pkg/llm"
)

// fakeLLM scripts the completion service for stage tests.
type fakeLLM struct {
	generateResponse string
	generateErr      error
	streamChunks     []string
	streamErr        error

	generateCalls int
	streamCalls   int
}

func (f *fakeLLM) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	f.generateCalls++
	if f.generateErr != nil {
		return "", f.generateErr
	}
	return f.generateResponse, nil
}

func (f *fakeLLM) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	return f.Generate(ctx, "", opts...)
}

func (f *fakeLLM) ChatStream(ctx context.Context, history []llm.Message, onToken llm.TokenHandler, opts ...llm.Option) (string, error) {
	f.streamCalls++
	if f.streamErr != nil {
		return "", f.streamErr
	}
	var full string
	for _, chunk := range f.streamChunks {
		if err := onToken(chunk); err != nil {
			return "", err
		}
		full += chunk
	}
	return full, nil
}

// fakeEmbedder scripts the embedding service.
type fakeEmbedder struct {
	vector   []float32
	err      error
	lastText string
	calls    int
}

func (f *fakeEmbedder) Generate(ctx context.Context, text string, taskType string) ([]float32, error) {
	f.calls++
	f.lastText = text
	if f.err != nil {
		return nil, f.err
	}
	return f.vector, nil
}

func (f *fakeEmbedder) GenerateBatch(ctx context.Context, texts []string, taskType string) ([][]float32, error) {
	vectors := make([][]float32, len(texts))
	for i := range texts {
		vec, err := f.Generate(ctx, texts[i], taskType)
		if err != nil {
			return nil, err
		}
		vectors[i] = vec
	}
	return vectors, nil
}

// fakeStore scripts the vector store.
type fakeStore struct {
	matches []entity.ProductMatch
	err     error
	calls   int
}

func (f *fakeStore) Query(ctx context.Context, vector []float32, topN int) ([]entity.ProductMatch, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.matches, nil
}

func (f *fakeStore) Upsert(ctx context.Context, ids []string, vectors [][]float32, metadatas []map[string]string, documents []string) error {
	return f.err
}

func (f *fakeStore) Count(ctx context.Context) (int64, error) {
	return int64(len(f.matches)), f.err
}

// stubStage scripts one engine step for engine-level tests.
type stubStage struct {
	name   string
	update Update
	err    error
	tokens []string
}

func (s *stubStage) Name() string {
	return s.name
}

func (s *stubStage) Run(ctx context.Context, current State, emit TokenFunc) (Update, error) {
	for _, tok := range s.tokens {
		emit(tok)
	}
	if s.err != nil {
		return Update{}, s.err
	}
	return s.update, nil
}

func testMatches() []entity.ProductMatch {
	return []entity.ProductMatch{
		{
			Id:       "p1",
			Metadata: map[string]string{"name": "Cozy Cloud Hoodie", "desc": "Ultra-soft oversized hoodie", "vibes": "cozy, casual, winter"},
			Document: "Name: Cozy Cloud Hoodie.",
			Score:    0.12,
		},
		{
			Id:       "p2",
			Metadata: map[string]string{"name": "Ribbed Knit Co-ord", "desc": "Two-piece ribbed knit set", "vibes": "loungewear, neutral, minimal"},
			Document: "Name: Ribbed Knit Co-ord.",
			Score:    0.19,
		},
		{
			Id:       "p3",
			Metadata: map[string]string{"name": "Vintage Indigo Denim Jacket", "desc": "Boxy-fit denim jacket", "vibes": "vintage, street, casual"},
			Document: "Name: Vintage Indigo Denim Jacket.",
			Score:    0.31,
		},
	}
}
