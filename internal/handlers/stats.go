package handlers

import (
	"net/http"

	"docrag/internal/contextutil"
	"docrag/internal/storage"
)

// StatsHandler handles HTTP requests for indexing statistics.
type StatsHandler struct {
	chunkRepo storage.ChunkStore
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(chunkRepo storage.ChunkStore) *StatsHandler {
	return &StatsHandler{
		chunkRepo: chunkRepo,
	}
}

// StatsResponse represents indexing statistics.
type StatsResponse struct {
	// Chunks maps chunk status ("pending", "chunked", "embedded") to count.
	Chunks map[string]int `json:"chunks"`
	// Total is the total number of stored chunks.
	Total int `json:"total"`
}

// ServeHTTP handles HTTP requests for indexing statistics.
func (h *StatsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodGet {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	counts, err := h.chunkRepo.CountByStatus(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "failed to count chunks", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to load statistics")
		return
	}

	total := 0
	for _, n := range counts {
		total += n
	}

	writeJSON(ctx, w, http.StatusOK, StatsResponse{
		Chunks: counts,
		Total:  total,
	})
}
