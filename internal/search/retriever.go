// Package search implements hybrid retrieval over the chunk index: a BM25
// full-text query and a vector similarity query fused by reciprocal rank.
package search

import (
	"context"
	"fmt"

	"docrag/internal/contextutil"
	"docrag/internal/llm"
	"docrag/internal/storage"
	"docrag/internal/vectorstore"
)

// Sentinel context values for the answer generator. Callers must be able to
// tell "nothing found" from "search is broken": the generator abstains on the
// former and reports an outage on the latter, instead of hallucinating.
const (
	// NoRelevantInformation is returned when the hybrid query matches nothing.
	NoRelevantInformation = "No relevant information found in the current knowledge base."
	// SearchUnavailable is returned when the embedding service or the index
	// cannot be reached.
	SearchUnavailable = "Unable to search the knowledge base due to a search service error."
)

// Retriever answers queries by combining lexical and vector search over the
// indexed chunks.
type Retriever struct {
	embedder    llm.Embedder
	vectorStore vectorstore.VectorStore
	collection  string
	chunkRepo   storage.ChunkStore
}

// NewRetriever creates a hybrid retriever. The embedder must be the same one
// used to embed documents, or query and chunk vectors are not comparable.
func NewRetriever(embedder llm.Embedder, vectorStore vectorstore.VectorStore, collection string, chunkRepo storage.ChunkStore) *Retriever {
	return &Retriever{
		embedder:    embedder,
		vectorStore: vectorStore,
		collection:  collection,
		chunkRepo:   chunkRepo,
	}
}

// Search runs the hybrid query and returns up to k fused hits, best first.
func (r *Retriever) Search(ctx context.Context, query string, k int) ([]Hit, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if k <= 0 {
		k = 3
	}

	vectors, err := r.embedder.EmbedTexts(ctx, []string{query})
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}
	if len(vectors) != 1 {
		return nil, fmt.Errorf("expected 1 query embedding, got %d", len(vectors))
	}

	vecResults, err := r.vectorStore.Query(ctx, r.collection, vectors[0], k)
	if err != nil {
		return nil, fmt.Errorf("vector query failed: %w", err)
	}

	lexResults, err := r.chunkRepo.SearchLexical(ctx, query, k)
	if err != nil {
		return nil, fmt.Errorf("lexical query failed: %w", err)
	}

	vecHits := make([]Hit, 0, len(vecResults))
	for _, res := range vecResults {
		vecHits = append(vecHits, Hit{
			Key:        res.PointID,
			SourceFile: res.Payload.SourceFile,
			PageNumber: res.Payload.PageNumber,
			Content:    res.Payload.Content,
			VecScore:   float64(res.Score),
		})
	}

	lexHits := make([]Hit, 0, len(lexResults))
	for _, res := range lexResults {
		lexHits = append(lexHits, Hit{
			// Lexical hits share the vector leg's identity space through the
			// deterministic point ID, so fusion can match them up.
			Key:        vectorstore.ChunkPointID(res.SourceFile, res.ChunkNumber),
			SourceFile: res.SourceFile,
			PageNumber: res.PageNumber,
			Content:    res.Content,
			LexScore:   res.Score,
		})
	}

	hits := fuseRRF(lexHits, vecHits, k)
	logger.InfoContext(ctx, "hybrid search completed",
		"query_length", len(query),
		"k", k,
		"lexical_hits", len(lexHits),
		"vector_hits", len(vecHits),
		"fused_hits", len(hits),
	)
	return hits, nil
}

// FormatHit renders one hit with its source file and page provenance.
func FormatHit(hit Hit) string {
	return fmt.Sprintf("(Source: %s, Page %d) %s", hit.SourceFile, hit.PageNumber, hit.Content)
}
