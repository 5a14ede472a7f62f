package entity

import (
	"fmt"
	"strings"
)

// Product is a single catalog item before ingestion.
type Product struct {
	Name  string
	Desc  string
	Vibes []string
}

// Document builds the rich text representation that gets embedded.
func (p Product) Document() string {
	return fmt.Sprintf("Name: %s. Description: %s. Vibes: %s", p.Name, p.Desc, strings.Join(p.Vibes, ", "))
}

// FlatVibes flattens the vibe tags into a single metadata string.
// Vector store metadata must be flat primitives.
func (p Product) FlatVibes() string {
	return strings.Join(p.Vibes, ", ")
}

// ProductMatch is one ranked retrieval result from the vector store.
// Score is the raw cosine distance (lower = closer). It is NOT normalized
// to [0,1] — callers must not treat it as a confidence percentage.
type ProductMatch struct {
	Id       string            `json:"id"`
	Metadata map[string]string `json:"metadata"`
	Document string            `json:"document"`
	Score    float64           `json:"score"`
}
