package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"docrag/internal/contextutil"
	"docrag/internal/rag"
	"docrag/internal/service"
)

// ChatHandler handles HTTP requests for chat.
type ChatHandler struct {
	chatService service.ChatService
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(chatService service.ChatService) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
	}
}

// ChatRequest represents the HTTP request payload for chat.
type ChatRequest struct {
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

// ChatResponse represents the HTTP response payload for chat.
type ChatResponse struct {
	Reply      string          `json:"reply"`
	References []rag.Reference `json:"references,omitempty"`
}

// ServeHTTP handles HTTP requests for chat.
func (h *ChatHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodPost {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	svcResp, err := h.chatService.ProcessChat(ctx, service.ChatRequest{
		Message: req.Message,
		Detail:  req.Detail,
	})
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to process chat request")
		return
	}

	writeJSON(ctx, w, http.StatusOK, ChatResponse{
		Reply:      svcResp.Reply,
		References: svcResp.References,
	})
}

// ChatHistoryHandler handles HTTP requests for chat history.
type ChatHistoryHandler struct {
	chatService service.ChatService
}

// NewChatHistoryHandler creates a new ChatHistoryHandler.
func NewChatHistoryHandler(chatService service.ChatService) *ChatHistoryHandler {
	return &ChatHistoryHandler{
		chatService: chatService,
	}
}

// ServeHTTP handles HTTP requests for chat history.
func (h *ChatHistoryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodGet {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "Invalid limit parameter")
			return
		}
		limit = n
	}

	records, err := h.chatService.History(ctx, limit)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to load chat history")
		return
	}

	writeJSON(ctx, w, http.StatusOK, records)
}
