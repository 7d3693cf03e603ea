package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"docrag/internal/contextutil"
	"docrag/internal/storage"
)

// ChunkHandler handles HTTP requests for a single stored chunk.
type ChunkHandler struct {
	chunkRepo storage.ChunkStore
}

// NewChunkHandler creates a new ChunkHandler.
func NewChunkHandler(chunkRepo storage.ChunkStore) *ChunkHandler {
	return &ChunkHandler{
		chunkRepo: chunkRepo,
	}
}

// ChunkResponse represents one stored chunk with its index state.
type ChunkResponse struct {
	ID          int64     `json:"id"`
	SourceFile  string    `json:"source_file"`
	ChunkNumber int       `json:"chunk_number"`
	PageNumber  int       `json:"page_number"`
	Content     string    `json:"content"`
	FileHash    string    `json:"file_hash"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// ServeHTTP returns the chunk identified by the id path parameter.
func (h *ChunkHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodGet {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Chunk ID must be an integer")
		return
	}

	record, err := h.chunkRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Chunk not found")
			return
		}
		logger.ErrorContext(ctx, "failed to load chunk", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to load chunk")
		return
	}

	writeJSON(ctx, w, http.StatusOK, ChunkResponse{
		ID:          record.ID,
		SourceFile:  record.SourceFile,
		ChunkNumber: record.ChunkNumber,
		PageNumber:  record.PageNumber,
		Content:     record.Content,
		FileHash:    record.FileHash,
		Status:      record.Status.String(),
		CreatedAt:   record.CreatedAt,
	})
}
