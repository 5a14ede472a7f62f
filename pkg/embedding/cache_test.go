package embedding

import (
	"context"
	"testing"
)

type countingProvider struct {
	calls int
}

func (c *countingProvider) Generate(ctx context.Context, text string, taskType string) ([]float32, error) {
	c.calls++
	return []float32{1, 0, 0}, nil
}

func (c *countingProvider) GenerateBatch(ctx context.Context, texts []string, taskType string) ([][]float32, error) {
	c.calls++
	vectors := make([][]float32, len(texts))
	for i := range texts {
		vectors[i] = []float32{1, 0, 0}
	}
	return vectors, nil
}

func TestCachedProviderHitsCache(t *testing.T) {
	inner := &countingProvider{}
	cached := NewCachedProvider(inner)
	ctx := context.Background()

	if _, err := cached.Generate(ctx, "cozy winter vibes", TaskTypeQuery); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if _, err := cached.Generate(ctx, "cozy winter vibes", TaskTypeQuery); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if inner.calls != 1 {
		t.Errorf("inner calls = %d, want 1 (second call should hit cache)", inner.calls)
	}
}

func TestCachedProviderKeyIncludesTaskType(t *testing.T) {
	inner := &countingProvider{}
	cached := NewCachedProvider(inner)
	ctx := context.Background()

	cached.Generate(ctx, "denim jacket", TaskTypeQuery)
	cached.Generate(ctx, "denim jacket", TaskTypeDocument)

	if inner.calls != 2 {
		t.Errorf("inner calls = %d, want 2 (different task types must not share entries)", inner.calls)
	}
}

func TestNormalizeVector(t *testing.T) {
	vec := normalizeVector([]float32{3, 4})
	if len(vec) != 2 {
		t.Fatalf("len = %d, want 2", len(vec))
	}

	var magnitude float64
	for _, v := range vec {
		magnitude += float64(v) * float64(v)
	}
	if magnitude < 0.999 || magnitude > 1.001 {
		t.Errorf("magnitude^2 = %f, want ~1", magnitude)
	}

	// All-zero input stays untouched
	zero := normalizeVector([]float32{0, 0})
	if zero[0] != 0 || zero[1] != 0 {
		t.Errorf("zero vector changed: %v", zero)
	}
}
