package pgvector

import (
	"context"
	"fmt"

	"github.com/ITSYOURAHLAWAT/vibe-matcher-ai/internal/entity"
	"github.com/ITSYOURAHLAWAT/vibe-matcher-ai/pkg/vectorstore"

	"github.com/google/uuid"
	pgvec "github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

// ProductEmbedding is the persisted catalog record. Metadata is flattened
// into columns (name, desc, vibes) the way the original catalog stores it.
type ProductEmbedding struct {
	Id        uuid.UUID    `gorm:"type:uuid;primaryKey"`
	Name      string       `gorm:"type:text;not null"`
	Desc      string       `gorm:"column:description;type:text"`
	Vibes     string       `gorm:"type:text"`
	Document  string       `gorm:"type:text"`
	Embedding pgvec.Vector `gorm:"type:vector(768)"` // text-embedding-004 / nomic-embed-text dimensions
}

func (ProductEmbedding) TableName() string {
	return "product_embeddings"
}

// queryRow adds the computed distance to the model for Query scans.
type queryRow struct {
	ProductEmbedding
	Distance float64 `gorm:"column:distance"`
}

type PgVectorStore struct {
	db *gorm.DB
}

var _ vectorstore.Store = &PgVectorStore{}

// NewStore prepares the pgvector-backed store, creating the extension and
// table if they do not exist yet.
func NewStore(db *gorm.DB) (*PgVectorStore, error) {
	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS vector").Error; err != nil {
		return nil, &vectorstore.StoreError{Op: "init", Err: err}
	}
	if err := db.AutoMigrate(&ProductEmbedding{}); err != nil {
		return nil, &vectorstore.StoreError{Op: "migrate", Err: err}
	}
	return &PgVectorStore{db: db}, nil
}

func (s *PgVectorStore) Query(ctx context.Context, vector []float32, topN int) ([]entity.ProductMatch, error) {
	if topN <= 0 {
		topN = 3
	}

	var rows []queryRow
	// Cosine distance ordering: embedding <=> vector, closest first
	err := s.db.WithContext(ctx).
		Model(&ProductEmbedding{}).
		Select("*, (embedding <=> ?) AS distance", pgvec.NewVector(vector)).
		Order(gorm.Expr("embedding <=> ?", pgvec.NewVector(vector))).
		Limit(topN).
		Find(&rows).Error
	if err != nil {
		return nil, &vectorstore.StoreError{Op: "query", Err: err}
	}

	matches := make([]entity.ProductMatch, len(rows))
	for i, row := range rows {
		matches[i] = entity.ProductMatch{
			Id: row.Id.String(),
			Metadata: map[string]string{
				"name":  row.Name,
				"desc":  row.Desc,
				"vibes": row.Vibes,
			},
			Document: row.Document,
			Score:    row.Distance,
		}
	}
	return matches, nil
}

func (s *PgVectorStore) Upsert(ctx context.Context, ids []string, vectors [][]float32, metadatas []map[string]string, documents []string) error {
	if len(ids) != len(vectors) || len(ids) != len(metadatas) || len(ids) != len(documents) {
		return &vectorstore.StoreError{Op: "upsert", Err: fmt.Errorf("mismatched slice lengths: %d ids, %d vectors, %d metadatas, %d documents",
			len(ids), len(vectors), len(metadatas), len(documents))}
	}

	models := make([]ProductEmbedding, len(ids))
	for i, id := range ids {
		parsed, err := uuid.Parse(id)
		if err != nil {
			return &vectorstore.StoreError{Op: "upsert", Err: fmt.Errorf("invalid id %q: %w", id, err)}
		}
		models[i] = ProductEmbedding{
			Id:        parsed,
			Name:      metadatas[i]["name"],
			Desc:      metadatas[i]["desc"],
			Vibes:     metadatas[i]["vibes"],
			Document:  documents[i],
			Embedding: pgvec.NewVector(vectors[i]),
		}
	}

	if err := s.db.WithContext(ctx).Save(&models).Error; err != nil {
		return &vectorstore.StoreError{Op: "upsert", Err: err}
	}
	return nil
}

func (s *PgVectorStore) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&ProductEmbedding{}).Count(&count).Error; err != nil {
		return 0, &vectorstore.StoreError{Op: "count", Err: err}
	}
	return count, nil
}
