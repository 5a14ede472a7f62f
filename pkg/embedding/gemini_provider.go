package embedding

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const geminiEmbeddingModel = "text-embedding-004"

type GeminiProvider struct {
	ApiKey string
	Client *http.Client
}

var _ EmbeddingProvider = &GeminiProvider{}

func NewGeminiProvider(apiKey string) *GeminiProvider {
	return &GeminiProvider{
		ApiKey: apiKey,
		Client: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

type geminiRequestContentPart struct {
	Text string `json:"text"`
}

type geminiRequestContent struct {
	Parts []geminiRequestContentPart `json:"parts"`
}

type geminiEmbedRequest struct {
	Model    string               `json:"model"`
	Content  geminiRequestContent `json:"content"`
	TaskType string               `json:"task_type,omitempty"`
}

type geminiEmbedding struct {
	Values []float32 `json:"values"`
}

type geminiEmbedResponse struct {
	Embedding geminiEmbedding `json:"embedding"`
}

type geminiBatchRequest struct {
	Requests []geminiEmbedRequest `json:"requests"`
}

type geminiBatchResponse struct {
	Embeddings []geminiEmbedding `json:"embeddings"`
}

func (p *GeminiProvider) Generate(ctx context.Context, text string, taskType string) ([]float32, error) {
	endpoint := fmt.Sprintf(
		"https://generativelanguage.googleapis.com/v1/models/%s:embedContent",
		geminiEmbeddingModel,
	)

	body := geminiEmbedRequest{
		Model: "models/" + geminiEmbeddingModel,
		Content: geminiRequestContent{
			Parts: []geminiRequestContentPart{{Text: text}},
		},
		TaskType: taskType,
	}

	resBytes, err := p.post(ctx, endpoint, body)
	if err != nil {
		return nil, err
	}

	var res geminiEmbedResponse
	if err := json.Unmarshal(resBytes, &res); err != nil {
		return nil, NewEmbeddingError("gemini", err)
	}

	return res.Embedding.Values, nil
}

// GenerateBatch uses the batchEmbedContents endpoint. The API contract
// returns embeddings in request order.
func (p *GeminiProvider) GenerateBatch(ctx context.Context, texts []string, taskType string) ([][]float32, error) {
	endpoint := fmt.Sprintf(
		"https://generativelanguage.googleapis.com/v1/models/%s:batchEmbedContents",
		geminiEmbeddingModel,
	)

	batch := geminiBatchRequest{
		Requests: make([]geminiEmbedRequest, len(texts)),
	}
	for i, text := range texts {
		batch.Requests[i] = geminiEmbedRequest{
			Model: "models/" + geminiEmbeddingModel,
			Content: geminiRequestContent{
				Parts: []geminiRequestContentPart{{Text: text}},
			},
			TaskType: taskType,
		}
	}

	resBytes, err := p.post(ctx, endpoint, batch)
	if err != nil {
		return nil, err
	}

	var res geminiBatchResponse
	if err := json.Unmarshal(resBytes, &res); err != nil {
		return nil, NewEmbeddingError("gemini", err)
	}

	if len(res.Embeddings) != len(texts) {
		return nil, NewEmbeddingError("gemini", fmt.Errorf("got %d embeddings for %d texts", len(res.Embeddings), len(texts)))
	}

	vectors := make([][]float32, len(res.Embeddings))
	for i, e := range res.Embeddings {
		vectors[i] = e.Values
	}
	return vectors, nil
}

func (p *GeminiProvider) post(ctx context.Context, endpoint string, payload any) ([]byte, error) {
	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return nil, NewEmbeddingError("gemini", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, NewEmbeddingError("gemini", err)
	}

	req.Header.Set("x-goog-api-key", p.ApiKey)
	req.Header.Set("Content-Type", "application/json")

	res, err := p.Client.Do(req)
	if err != nil {
		return nil, NewEmbeddingError("gemini", err)
	}
	defer res.Body.Close()

	resBytes, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, NewEmbeddingError("gemini", err)
	}

	if res.StatusCode != http.StatusOK {
		return nil, NewEmbeddingError("gemini", fmt.Errorf("code %d, body %s", res.StatusCode, string(resBytes)))
	}

	return resBytes, nil
}
