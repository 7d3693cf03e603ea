package indexer

import (
	"context"
	"fmt"

	"docrag/internal/contextutil"
	"docrag/internal/llm"
	"docrag/internal/storage"
	"docrag/internal/vectorstore"
)

// Upserter is the embedding phase: it pulls chunks that are not yet in the
// vector index, embeds them, and upserts each under a deterministic identity
// so re-runs overwrite rather than duplicate.
type Upserter struct {
	chunkRepo   storage.ChunkStore
	embedder    llm.Embedder
	vectorStore vectorstore.VectorStore
	collection  string
	batchSize   int
}

// NewUpserter creates an embedding upserter.
func NewUpserter(chunkRepo storage.ChunkStore, embedder llm.Embedder, vectorStore vectorstore.VectorStore, collection string, batchSize int) *Upserter {
	if batchSize <= 0 {
		batchSize = 16
	}
	return &Upserter{
		chunkRepo:   chunkRepo,
		embedder:    embedder,
		vectorStore: vectorStore,
		collection:  collection,
		batchSize:   batchSize,
	}
}

// Run embeds and upserts every chunk whose vector_embedded flag is unset.
// Batching only bounds memory; failures are tracked per chunk, and after each
// batch the flag is flipped for exactly the identifiers that succeeded in it.
// A failure mid-run never rolls back earlier flag updates, so an interrupted
// run is resumable by calling Run again.
func (u *Upserter) Run(ctx context.Context) (*EmbedReport, error) {
	logger := contextutil.LoggerFromContext(ctx)

	chunks, err := u.chunkRepo.ListUnembedded(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list unembedded chunks: %w", err)
	}

	report := &EmbedReport{Attempted: len(chunks)}
	if len(chunks) == 0 {
		logger.InfoContext(ctx, "no chunks to embed")
		return report, nil
	}

	logger.InfoContext(ctx, "starting embedding", "chunks", len(chunks), "batch_size", u.batchSize)

	for start := 0; start < len(chunks); start += u.batchSize {
		end := start + u.batchSize
		if end > len(chunks) {
			end = len(chunks)
		}

		var succeeded []int64
		for _, chunk := range chunks[start:end] {
			outcome := u.upsertOne(ctx, chunk)
			report.Outcomes = append(report.Outcomes, outcome)
			switch outcome.Status {
			case OutcomeSucceeded:
				report.Succeeded++
				succeeded = append(succeeded, chunk.ID)
			case OutcomeFailed:
				report.Failed++
				logger.ErrorContext(ctx, "failed to vectorize chunk",
					"chunk_id", chunk.ID, "file", chunk.SourceFile, "error", outcome.Err)
			case OutcomeSkipped:
				report.Skipped++
				logger.WarnContext(ctx, "skipping chunk with empty content", "chunk_id", chunk.ID)
			}
		}

		// Flag updates are the phase's durable progress; a store failure here
		// aborts so partial state is never lost silently.
		if err := u.chunkRepo.MarkEmbedded(ctx, succeeded); err != nil {
			return report, fmt.Errorf("failed to mark chunks embedded: %w", err)
		}
	}

	logger.InfoContext(ctx, "embedding completed",
		"attempted", report.Attempted,
		"succeeded", report.Succeeded,
		"failed", report.Failed,
		"skipped", report.Skipped,
	)
	return report, nil
}

// upsertOne embeds one chunk and upserts it into the vector index.
func (u *Upserter) upsertOne(ctx context.Context, chunk *storage.ChunkRecord) ChunkOutcome {
	outcome := ChunkOutcome{
		ChunkID:     chunk.ID,
		SourceFile:  chunk.SourceFile,
		ChunkNumber: chunk.ChunkNumber,
	}

	if chunk.Content == "" {
		outcome.Status = OutcomeSkipped
		return outcome
	}

	vectors, err := u.embedder.EmbedTexts(ctx, []string{chunk.Content})
	if err != nil {
		outcome.Status = OutcomeFailed
		outcome.Err = fmt.Errorf("embedding failed: %w", err)
		outcome.Error = outcome.Err.Error()
		return outcome
	}
	if len(vectors) != 1 {
		outcome.Status = OutcomeFailed
		outcome.Err = fmt.Errorf("expected 1 embedding, got %d", len(vectors))
		outcome.Error = outcome.Err.Error()
		return outcome
	}

	point := vectorstore.Point{
		ID:  vectorstore.ChunkPointID(chunk.SourceFile, chunk.ChunkNumber),
		Vec: vectors[0],
		Payload: vectorstore.Payload{
			Content:    chunk.Content,
			SourceFile: chunk.SourceFile,
			PageNumber: chunk.PageNumber,
		},
	}
	if err := u.vectorStore.Upsert(ctx, u.collection, []vectorstore.Point{point}); err != nil {
		outcome.Status = OutcomeFailed
		outcome.Err = fmt.Errorf("upsert failed: %w", err)
		outcome.Error = outcome.Err.Error()
		return outcome
	}

	outcome.Status = OutcomeSucceeded
	return outcome
}
