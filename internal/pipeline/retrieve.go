package pipeline

import (
	"context"
	"strings"

	"github.com/ITSYOURAHLAWAT/vibe-matcher-ai/internal/entity"
	"github.com/ITSYOURAHLAWAT/vibe-matcher-ai/internal/pkg/logger"
	"github.com/ITSYOURAHLAWAT/vibe-matcher-ai/pkg/embedding"
	"github.com/ITSYOURAHLAWAT/vibe-matcher-ai/pkg/vectorstore"
)

// RetrieveStage embeds the refined keywords and queries the vector store for
// the closest catalog items. Faults here are hard: an empty or garbage result
// set would silently mislead the stylist, so embedding and store errors abort
// the run instead of degrading.
type RetrieveStage struct {
	embedder embedding.EmbeddingProvider
	store    vectorstore.Store
	topN     int
	logger   logger.ILogger
}

var _ Stage = &RetrieveStage{}

func NewRetrieveStage(embedder embedding.EmbeddingProvider, store vectorstore.Store, topN int, log logger.ILogger) *RetrieveStage {
	if topN <= 0 {
		topN = 3
	}
	return &RetrieveStage{
		embedder: embedder,
		store:    store,
		topN:     topN,
		logger:   log,
	}
}

func (s *RetrieveStage) Name() string {
	return StageRetrieve
}

func (s *RetrieveStage) Run(ctx context.Context, current State, emit TokenFunc) (Update, error) {
	keywords := current.RefinedKeywords
	if len(keywords) == 0 {
		keywords = []string{current.UserQuery}
	}

	// Combine keywords into a single rich query for embedding
	combinedQuery := strings.Join(keywords, " ")

	vector, err := s.embedder.Generate(ctx, combinedQuery, embedding.TaskTypeQuery)
	if err != nil {
		return Update{}, err
	}

	matches, err := s.store.Query(ctx, vector, s.topN)
	if err != nil {
		return Update{}, err
	}

	s.logger.Info("Retriever", "Vector search complete", map[string]interface{}{
		"query":   combinedQuery,
		"matches": len(matches),
	})

	if matches == nil {
		// Non-nil marks the field as set in the merge, even when empty
		matches = []entity.ProductMatch{}
	}

	return Update{RetrievedProducts: matches}, nil
}
