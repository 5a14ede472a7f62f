package service

import (
	"context"

	"github.com/ITSYOURAHLAWAT/vibe-matcher-ai/internal/pipeline"
	"github.com/ITSYOURAHLAWAT/vibe-matcher-ai/internal/pkg/logger"
	"github.com/ITSYOURAHLAWAT/vibe-matcher-ai/internal/stream"
	"github.com/ITSYOURAHLAWAT/vibe-matcher-ai/pkg/embedding"
	"github.com/ITSYOURAHLAWAT/vibe-matcher-ai/pkg/llm"
	"github.com/ITSYOURAHLAWAT/vibe-matcher-ai/pkg/vectorstore"
)

// IMatchService runs the vibe matching pipeline for one query
type IMatchService interface {
	// MatchStream starts a fresh pipeline run and returns its public message
	// sequence. The channel closes when the run ends; cancelling ctx stops
	// the run and the stream.
	MatchStream(ctx context.Context, query string) <-chan stream.Message
}

type matchService struct {
	llmProvider llm.LLMProvider
	embedder    embedding.EmbeddingProvider
	store       vectorstore.Store
	topN        int
	logger      logger.ILogger
}

func NewMatchService(
	llmProvider llm.LLMProvider,
	embedder embedding.EmbeddingProvider,
	store vectorstore.Store,
	topN int,
	log logger.ILogger,
) IMatchService {
	return &matchService{
		llmProvider: llmProvider,
		embedder:    embedder,
		store:       store,
		topN:        topN,
		logger:      log,
	}
}

func (s *matchService) MatchStream(ctx context.Context, query string) <-chan stream.Message {
	// A fresh engine per request: runs are single-shot and never share state
	engine := pipeline.NewEngine(s.logger,
		pipeline.NewInterpretStage(s.llmProvider, s.logger),
		pipeline.NewRetrieveStage(s.embedder, s.store, s.topN, s.logger),
		pipeline.NewSynthesizeStage(s.llmProvider, s.logger),
	)

	events := engine.Run(ctx, pipeline.NewState(query))
	return stream.NewAdapter().Pipe(ctx, events)
}
