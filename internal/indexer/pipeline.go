package indexer

import (
	"context"
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"

	"docrag/internal/contextutil"
	"docrag/internal/extract"
	"docrag/internal/segment"
	"docrag/internal/storage"
)

// Pipeline is the ingestion orchestrator: it scans a source directory,
// deduplicates files by content digest, fans extraction and chunking out
// across files, and commits all produced chunks in one batch.
type Pipeline struct {
	chunkRepo storage.ChunkStore
	segmenter segment.Segmenter
	chunker   *OverlappingChunker
	workers   int
}

// NewPipeline creates an ingestion pipeline.
func NewPipeline(chunkRepo storage.ChunkStore, segmenter segment.Segmenter, maxTokens, overlap, workers int) *Pipeline {
	if workers <= 0 {
		workers = 4
	}
	return &Pipeline{
		chunkRepo: chunkRepo,
		segmenter: segmenter,
		chunker:   NewOverlappingChunker(maxTokens, overlap),
		workers:   workers,
	}
}

// IngestDirectory processes every supported file in dir that is not already
// represented in the store by content digest. Per-file work runs on a bounded
// worker pool; the digest snapshot is taken once before dispatch, so two
// byte-identical files within the same run are both processed. A single batch
// insert commits all chunks after every worker has finished.
//
// Per-file failures are recorded in the report and never abort sibling files.
// Only store failures (snapshot read, batch insert) fail the run.
func (p *Pipeline) IngestDirectory(ctx context.Context, dir string) (*IngestReport, error) {
	logger := contextutil.LoggerFromContext(ctx)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read source directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !extract.Supported(entry.Name()) {
			continue
		}
		files = append(files, entry.Name())
	}

	report := &IngestReport{FilesScanned: len(files)}
	if len(files) == 0 {
		logger.InfoContext(ctx, "no supported files found in directory", "dir", dir)
		return report, nil
	}

	// Snapshot the digest set once before fan-out. Workers only read it.
	existing, err := p.chunkRepo.ExistingHashes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch existing hashes: %w", err)
	}

	logger.InfoContext(ctx, "starting ingestion", "dir", dir, "files", len(files), "workers", p.workers)

	results := make([]FileResult, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)
	for i, name := range files {
		g.Go(func() error {
			results[i] = p.processFile(gctx, dir, name, existing)
			return nil
		})
	}
	// Workers never return errors; only context cancellation surfaces here.
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var chunks []*storage.ChunkRecord
	for _, res := range results {
		switch {
		case res.Err != nil:
			report.FilesFailed++
			logger.ErrorContext(ctx, "failed to ingest file", "file", res.FileName, "error", res.Err)
		case res.Skipped:
			report.FilesSkipped++
			logger.InfoContext(ctx, "skipping already processed file", "file", res.FileName, "digest", res.Digest)
		default:
			logger.InfoContext(ctx, "file chunked", "file", res.FileName, "chunks", res.Chunks)
		}
	}
	for _, res := range results {
		chunks = append(chunks, res.records...)
	}
	report.Files = results

	if len(chunks) > 0 {
		if err := p.chunkRepo.InsertChunks(ctx, chunks); err != nil {
			return nil, fmt.Errorf("failed to persist chunk batch: %w", err)
		}
		report.ChunksInserted = len(chunks)
	}

	logger.InfoContext(ctx, "ingestion completed",
		"files", report.FilesScanned,
		"skipped", report.FilesSkipped,
		"failed", report.FilesFailed,
		"chunks_inserted", report.ChunksInserted,
	)
	return report, nil
}

// processFile reads, hashes, extracts, segments and chunks one file.
// It only reads shared state (the digest snapshot); all output goes into
// the returned result.
func (p *Pipeline) processFile(ctx context.Context, dir, name string, existing map[string]struct{}) FileResult {
	res := FileResult{FileName: name}

	path := filepath.Join(dir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		res.Err = fmt.Errorf("failed to read file: %w", err)
		res.Error = res.Err.Error()
		return res
	}

	digest := fmt.Sprintf("%x", sha256.Sum256(data))
	res.Digest = digest
	if _, ok := existing[digest]; ok {
		res.Skipped = true
		return res
	}

	extractor, ok := extract.ForFile(name)
	if !ok {
		res.Err = fmt.Errorf("unsupported file format")
		res.Error = res.Err.Error()
		return res
	}

	blocks, err := extractor.Extract(path, data)
	if err != nil {
		res.Err = fmt.Errorf("failed to extract text: %w", err)
		res.Error = res.Err.Error()
		return res
	}

	lastModified := time.Now()
	if info, err := os.Stat(path); err == nil {
		lastModified = info.ModTime()
	}
	createdAt := time.Now().UTC()

	// Chunk numbers are contiguous per file starting at 1; chunk boundaries
	// never cross blocks, so each chunk inherits its block's page number.
	number := 0
	for _, block := range blocks {
		select {
		case <-ctx.Done():
			res.Err = ctx.Err()
			res.Error = res.Err.Error()
			return res
		default:
		}

		sentences := p.segmenter.Segment(block.Text)
		for _, text := range p.chunker.Regroup(sentences) {
			number++
			res.records = append(res.records, &storage.ChunkRecord{
				SourceFile:   name,
				ChunkNumber:  number,
				Content:      text,
				FileHash:     digest,
				LastModified: lastModified,
				PageNumber:   block.PageNumber,
				Status:       storage.StatusChunked,
				CreatedAt:    createdAt,
			})
		}
	}
	res.Chunks = len(res.records)
	return res
}
