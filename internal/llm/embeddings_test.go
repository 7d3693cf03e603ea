package llm_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"docrag/internal/llm"
)

func embeddingsServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func TestEmbeddingsClient_EmbedTexts(t *testing.T) {
	srv := embeddingsServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/embeddings" {
			t.Errorf("path = %s, want /v1/embeddings", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Authorization = %q", got)
		}

		var req llm.EmbeddingsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Model != "test-model" {
			t.Errorf("model = %q, want test-model", req.Model)
		}

		resp := llm.EmbeddingsResponse{}
		for range req.Input {
			resp.Data = append(resp.Data, llm.EmbeddingData{Embedding: []float64{0.1, 0.2, 0.3}})
		}
		_ = json.NewEncoder(w).Encode(resp)
	})

	client := llm.NewEmbeddingsClient(srv.URL, "test-key", "test-model", 3)
	vectors, err := client.EmbedTexts(context.Background(), []string{"first", "second"})
	if err != nil {
		t.Fatalf("EmbedTexts() error = %v", err)
	}
	if len(vectors) != 2 {
		t.Fatalf("EmbedTexts() = %d vectors, want 2", len(vectors))
	}
	if len(vectors[0]) != 3 || vectors[0][0] != float32(0.1) {
		t.Errorf("vector = %v", vectors[0])
	}
}

func TestEmbeddingsClient_EmbedTexts_EmptyInput(t *testing.T) {
	client := llm.NewEmbeddingsClient("http://localhost:1", "key", "model", 3)
	if _, err := client.EmbedTexts(context.Background(), nil); err == nil {
		t.Fatal("EmbedTexts(nil) error = nil, want error")
	}
}

func TestEmbeddingsClient_EmbedTexts_ServerError(t *testing.T) {
	srv := embeddingsServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusInternalServerError)
	})

	client := llm.NewEmbeddingsClient(srv.URL, "key", "model", 3)
	_, err := client.EmbedTexts(context.Background(), []string{"text"})
	if !errors.Is(err, llm.ErrServiceUnavailable) {
		t.Fatalf("EmbedTexts() error = %v, want ErrServiceUnavailable", err)
	}
}

func TestEmbeddingsClient_EmbedTexts_BadRequestIsNotUnavailable(t *testing.T) {
	srv := embeddingsServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad input", http.StatusBadRequest)
	})

	client := llm.NewEmbeddingsClient(srv.URL, "key", "model", 3)
	_, err := client.EmbedTexts(context.Background(), []string{"text"})
	if err == nil {
		t.Fatal("EmbedTexts() error = nil, want error")
	}
	if errors.Is(err, llm.ErrServiceUnavailable) {
		t.Errorf("EmbedTexts() error = %v, want plain error for 4xx", err)
	}
}

func TestEmbeddingsClient_EmbedTexts_TransportError(t *testing.T) {
	// Nothing listens here; the dial failure must map to ErrServiceUnavailable.
	client := llm.NewEmbeddingsClient("http://127.0.0.1:1", "key", "model", 3)
	_, err := client.EmbedTexts(context.Background(), []string{"text"})
	if !errors.Is(err, llm.ErrServiceUnavailable) {
		t.Fatalf("EmbedTexts() error = %v, want ErrServiceUnavailable", err)
	}
}

func TestEmbeddingsClient_EmbedTexts_CountMismatch(t *testing.T) {
	srv := embeddingsServer(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(llm.EmbeddingsResponse{
			Data: []llm.EmbeddingData{{Embedding: []float64{0.1, 0.2, 0.3}}},
		})
	})

	client := llm.NewEmbeddingsClient(srv.URL, "key", "model", 3)
	if _, err := client.EmbedTexts(context.Background(), []string{"a", "b"}); err == nil {
		t.Fatal("EmbedTexts() error = nil, want count mismatch error")
	}
}

func TestEmbeddingsClient_EmbedTexts_SizeMismatch(t *testing.T) {
	srv := embeddingsServer(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(llm.EmbeddingsResponse{
			Data: []llm.EmbeddingData{{Embedding: []float64{0.1, 0.2}}},
		})
	})

	client := llm.NewEmbeddingsClient(srv.URL, "key", "model", 768)
	if _, err := client.EmbedTexts(context.Background(), []string{"a"}); err == nil {
		t.Fatal("EmbedTexts() error = nil, want size mismatch error")
	}
}
