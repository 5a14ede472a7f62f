package vectorstore

import (
	"context"
	"fmt"

	"github.com/ITSYOURAHLAWAT/vibe-matcher-ai/internal/entity"
)

// Store defines the contract for the product vector index.
type Store interface {
	// Query returns the topN nearest records to vector, best match first.
	// Scores are raw cosine distances (lower = closer).
	Query(ctx context.Context, vector []float32, topN int) ([]entity.ProductMatch, error)

	// Upsert stores records from parallel slices: ids[i], vectors[i],
	// metadatas[i] and documents[i] describe one record.
	Upsert(ctx context.Context, ids []string, vectors [][]float32, metadatas []map[string]string, documents []string) error

	// Count reports how many records the index holds.
	Count(ctx context.Context) (int64, error)
}

// StoreError wraps any fault from the vector store backend.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("vector store %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
