package handlers

import (
	"net/http"
	"sync"

	"docrag/internal/contextutil"
	"docrag/internal/indexer"
)

// IngestHandler handles HTTP requests to run an ingestion pass over the
// source directory.
type IngestHandler struct {
	pipeline  *indexer.Pipeline
	sourceDir string

	mu sync.Mutex // one ingestion run at a time
}

// NewIngestHandler creates a new IngestHandler.
func NewIngestHandler(pipeline *indexer.Pipeline, sourceDir string) *IngestHandler {
	return &IngestHandler{
		pipeline:  pipeline,
		sourceDir: sourceDir,
	}
}

// ServeHTTP handles HTTP requests to ingest documents.
func (h *IngestHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodPost {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	if !h.mu.TryLock() {
		logger.WarnContext(ctx, "ingestion already in progress")
		writeError(w, http.StatusConflict, "Ingestion already in progress")
		return
	}
	defer h.mu.Unlock()

	report, err := h.pipeline.IngestDirectory(ctx, h.sourceDir)
	if err != nil {
		logger.ErrorContext(ctx, "ingestion failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Ingestion failed")
		return
	}

	writeJSON(ctx, w, http.StatusOK, report)
}
