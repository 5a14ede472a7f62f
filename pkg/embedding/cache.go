package embedding

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// CachedProvider decorates an EmbeddingProvider with an in-process cache.
// Identical queries recur often (same vibe phrased the same way), and
// embedding calls dominate retrieval latency, so hits skip the backend
// entirely. Safe for concurrent use.
type CachedProvider struct {
	inner EmbeddingProvider
	cache *gocache.Cache
}

var _ EmbeddingProvider = &CachedProvider{}

func NewCachedProvider(inner EmbeddingProvider) *CachedProvider {
	return &CachedProvider{
		inner: inner,
		cache: gocache.New(1*time.Hour, 10*time.Minute),
	}
}

func (p *CachedProvider) Generate(ctx context.Context, text string, taskType string) ([]float32, error) {
	key := taskType + "\x00" + text
	if cached, found := p.cache.Get(key); found {
		return cached.([]float32), nil
	}

	vec, err := p.inner.Generate(ctx, text, taskType)
	if err != nil {
		return nil, err
	}

	p.cache.Set(key, vec, gocache.DefaultExpiration)
	return vec, nil
}

// GenerateBatch bypasses the cache: batches run once at seeding time, so
// caching their vectors would only hold memory.
func (p *CachedProvider) GenerateBatch(ctx context.Context, texts []string, taskType string) ([][]float32, error) {
	return p.inner.GenerateBatch(ctx, texts, taskType)
}
