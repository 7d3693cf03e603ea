package handlers

import (
	"encoding/json"
	"net/http"

	"docrag/internal/contextutil"
	"docrag/internal/rag"
)

// AskHandler handles HTTP requests for RAG queries.
type AskHandler struct {
	ragEngine rag.Engine
}

// NewAskHandler creates a new AskHandler.
func NewAskHandler(ragEngine rag.Engine) *AskHandler {
	return &AskHandler{
		ragEngine: ragEngine,
	}
}

// AskRequest represents the HTTP request payload for RAG queries.
// This mirrors the rag.AskRequest but is defined here for HTTP layer separation.
type AskRequest struct {
	Question string `json:"question"`
	K        int    `json:"k,omitempty"`
	Detail   string `json:"detail,omitempty"`
}

// ServeHTTP handles HTTP requests for RAG queries.
func (h *AskHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodPost {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req AskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Question == "" {
		writeError(w, http.StatusBadRequest, "Question is required")
		return
	}

	resp, err := h.ragEngine.Ask(ctx, rag.AskRequest{
		Question: req.Question,
		K:        req.K,
		Detail:   req.Detail,
	})
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to answer question")
		return
	}

	writeJSON(ctx, w, http.StatusOK, resp)
}
