package handlers

import (
	"net/http"
	"sync"

	"docrag/internal/contextutil"
	"docrag/internal/indexer"
)

// EmbedHandler handles HTTP requests to embed and upsert pending chunks.
type EmbedHandler struct {
	upserter *indexer.Upserter

	mu sync.Mutex // one embedding run at a time
}

// NewEmbedHandler creates a new EmbedHandler.
func NewEmbedHandler(upserter *indexer.Upserter) *EmbedHandler {
	return &EmbedHandler{
		upserter: upserter,
	}
}

// ServeHTTP handles HTTP requests to embed pending chunks.
func (h *EmbedHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodPost {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	if !h.mu.TryLock() {
		logger.WarnContext(ctx, "embedding already in progress")
		writeError(w, http.StatusConflict, "Embedding already in progress")
		return
	}
	defer h.mu.Unlock()

	report, err := h.upserter.Run(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "embedding failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Embedding failed")
		return
	}

	writeJSON(ctx, w, http.StatusOK, report)
}
