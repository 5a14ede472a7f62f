package service

import (
	"context"

	"github.com/ITSYOURAHLAWAT/vibe-matcher-ai/internal/catalog"
	"github.com/ITSYOURAHLAWAT/vibe-matcher-ai/internal/pkg/logger"
	"github.com/ITSYOURAHLAWAT/vibe-matcher-ai/pkg/embedding"
	"github.com/ITSYOURAHLAWAT/vibe-matcher-ai/pkg/vectorstore"

	"github.com/google/uuid"
)

// IIngestionService seeds the vector store with the fixed catalog
type IIngestionService interface {
	Run(ctx context.Context) error
}

type ingestionService struct {
	embedder embedding.EmbeddingProvider
	store    vectorstore.Store
	logger   logger.ILogger
}

func NewIngestionService(embedder embedding.EmbeddingProvider, store vectorstore.Store, log logger.ILogger) IIngestionService {
	return &ingestionService{
		embedder: embedder,
		store:    store,
		logger:   log,
	}
}

// Run seeds once: if the store already holds records it no-ops, otherwise it
// embeds the full catalog in one batch and upserts everything.
func (s *ingestionService) Run(ctx context.Context) error {
	count, err := s.store.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		s.logger.Info("Ingestion", "Vector store already seeded, skipping", map[string]interface{}{
			"count": count,
		})
		return nil
	}

	s.logger.Info("Ingestion", "Starting catalog ingestion", map[string]interface{}{
		"products": len(catalog.Products),
	})

	ids := make([]string, len(catalog.Products))
	texts := make([]string, len(catalog.Products))
	metadatas := make([]map[string]string, len(catalog.Products))

	for i, p := range catalog.Products {
		ids[i] = uuid.New().String()
		texts[i] = p.Document()
		metadatas[i] = map[string]string{
			"name":  p.Name,
			"desc":  p.Desc,
			"vibes": p.FlatVibes(),
		}
	}

	vectors, err := s.embedder.GenerateBatch(ctx, texts, embedding.TaskTypeDocument)
	if err != nil {
		return err
	}

	if err := s.store.Upsert(ctx, ids, vectors, metadatas, texts); err != nil {
		return err
	}

	s.logger.Info("Ingestion", "Catalog ingestion complete", map[string]interface{}{
		"stored": len(ids),
	})
	return nil
}
