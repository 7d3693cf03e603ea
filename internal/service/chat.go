package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_chat_service.go -package=mocks -mock_names=ChatService=MockChatService docrag/internal/service ChatService

import (
	"context"
	"strings"

	"docrag/internal/contextutil"
	"docrag/internal/rag"
	"docrag/internal/storage"
)

// ChatRequest represents a chat request in the domain layer.
type ChatRequest struct {
	Message string `validate:"required"`
	Detail  string
}

// ChatResponse represents a chat response in the domain layer.
type ChatResponse struct {
	Reply      string
	References []rag.Reference
}

// ChatService provides document-grounded chat with persisted history.
type ChatService interface {
	// ProcessChat answers a chat message against the indexed documents and
	// records the exchange.
	ProcessChat(ctx context.Context, req ChatRequest) (ChatResponse, error)
	// History returns the most recent exchanges, newest first.
	History(ctx context.Context, limit int) ([]storage.ChatRecord, error)
}

// chatService implements ChatService.
type chatService struct {
	engine    rag.Engine
	chatStore storage.ChatStore
}

// NewChatService creates a new ChatService.
func NewChatService(engine rag.Engine, chatStore storage.ChatStore) ChatService {
	return &chatService{
		engine:    engine,
		chatStore: chatStore,
	}
}

// ProcessChat processes a chat request.
func (s *chatService) ProcessChat(ctx context.Context, req ChatRequest) (ChatResponse, error) {
	logger := contextutil.LoggerFromContext(ctx)

	// Business validation
	if strings.TrimSpace(req.Message) == "" {
		logger.WarnContext(ctx, "empty message in chat request")
		return ChatResponse{}, &ValidationError{
			Field:   "message",
			Message: "cannot be empty",
		}
	}

	answer, err := s.engine.Ask(ctx, rag.AskRequest{
		Question: req.Message,
		Detail:   req.Detail,
	})
	if err != nil {
		logger.ErrorContext(ctx, "failed to get answer", "error", err)
		return ChatResponse{}, WrapError(err, "failed to get answer")
	}

	// History is best effort. A persistence failure must not lose the reply.
	if err := s.chatStore.SaveExchange(ctx, req.Message, answer.Answer); err != nil {
		logger.ErrorContext(ctx, "failed to save chat exchange", "error", err)
	}

	logger.InfoContext(ctx, "chat request processed successfully",
		"message_length", len(req.Message), "reply_length", len(answer.Answer))
	return ChatResponse{
		Reply:      answer.Answer,
		References: answer.References,
	}, nil
}

// History returns recent chat exchanges.
func (s *chatService) History(ctx context.Context, limit int) ([]storage.ChatRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	records, err := s.chatStore.Recent(ctx, limit)
	if err != nil {
		return nil, WrapError(err, "failed to load chat history")
	}
	return records, nil
}
