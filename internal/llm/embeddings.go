package llm

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_embedder.go -package=mocks docrag/internal/llm Embedder

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Embedder maps texts to fixed-length numeric vectors. Document chunks and
// queries must go through the same Embedder so their vectors are comparable.
type Embedder interface {
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// EmbeddingsClient is an Embedder backed by an OpenAI-compatible
// /v1/embeddings endpoint.
type EmbeddingsClient struct {
	BaseURL      string
	APIKey       string
	Model        string
	ExpectedSize int // Expected vector size for validation
	client       *http.Client
}

// NewEmbeddingsClient creates a new embeddings client. All vectors returned
// by EmbedTexts are validated against expectedSize. The HTTP timeout is
// bounded so a slow embedding call cannot stall a pipeline worker.
func NewEmbeddingsClient(baseURL, apiKey, model string, expectedSize int) *EmbeddingsClient {
	return &EmbeddingsClient{
		BaseURL:      baseURL,
		APIKey:       apiKey,
		Model:        model,
		ExpectedSize: expectedSize,
		client:       &http.Client{Timeout: 30 * time.Second},
	}
}

// EmbeddingsRequest represents the request payload for the embeddings API.
type EmbeddingsRequest struct {
	Model string   `json:"model"`
	Input []string `json:"input"`
}

// EmbeddingData represents a single embedding in the response.
type EmbeddingData struct {
	Embedding []float64 `json:"embedding"`
}

// EmbeddingsResponse represents the response from the embeddings API.
type EmbeddingsResponse struct {
	Data []EmbeddingData `json:"data"`
}

// EmbedTexts generates embeddings for the given texts, one vector per input.
// Transport failures are wrapped in ErrServiceUnavailable; malformed input or
// responses return plain errors.
func (c *EmbeddingsClient) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, fmt.Errorf("empty input array")
	}

	url := fmt.Sprintf("%s/v1/embeddings", c.BaseURL)

	payload := EmbeddingsRequest{
		Model: c.Model,
		Input: texts,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.APIKey))
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode >= http.StatusInternalServerError {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: status %d: %s", ErrServiceUnavailable, resp.StatusCode, string(raw))
	}
	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("bad status %d: %s", resp.StatusCode, string(raw))
	}

	var embeddingsResp EmbeddingsResponse
	if err := json.NewDecoder(resp.Body).Decode(&embeddingsResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if len(embeddingsResp.Data) != len(texts) {
		return nil, fmt.Errorf("expected %d embeddings, got %d", len(texts), len(embeddingsResp.Data))
	}

	result := make([][]float32, len(embeddingsResp.Data))
	for i, data := range embeddingsResp.Data {
		if len(data.Embedding) != c.ExpectedSize {
			return nil, fmt.Errorf("embedding %d has size %d, expected %d", i, len(data.Embedding), c.ExpectedSize)
		}

		vec := make([]float32, len(data.Embedding))
		for j, v := range data.Embedding {
			vec[j] = float32(v)
		}
		result[i] = vec
	}

	return result, nil
}
