package rag

import (
	"context"
	"fmt"
	"strings"

	"docrag/internal/contextutil"
	"docrag/internal/llm"
	"docrag/internal/search"
)

//go:generate mockgen -source=engine.go -destination=mocks/mock_engine.go -package=mocks

const (
	defaultTopK = 3
	maxTopK     = 20

	answerTemperature = 0.7
	answerMaxTokens   = 512
)

// Searcher retrieves the chunks most relevant to a query.
type Searcher interface {
	Search(ctx context.Context, query string, k int) ([]search.Hit, error)
}

// AnswerClient generates a completion for a sequence of chat messages.
type AnswerClient interface {
	ChatWithMessages(ctx context.Context, messages []llm.Message, params llm.ChatParams) (string, error)
}

// Engine answers questions grounded in the indexed documents.
type Engine interface {
	Ask(ctx context.Context, req AskRequest) (AskResponse, error)
}

type ragEngine struct {
	retriever Searcher
	llmClient AnswerClient
}

// NewEngine creates a RAG engine backed by the given retriever and LLM client.
func NewEngine(retriever Searcher, llmClient AnswerClient) Engine {
	return &ragEngine{
		retriever: retriever,
		llmClient: llmClient,
	}
}

func (e *ragEngine) Ask(ctx context.Context, req AskRequest) (AskResponse, error) {
	logger := contextutil.LoggerFromContext(ctx)

	question := strings.TrimSpace(req.Question)
	if question == "" {
		return AskResponse{}, fmt.Errorf("question must not be empty")
	}

	k := req.K
	if k <= 0 {
		k = defaultTopK
	}
	if k > maxTopK {
		k = maxTopK
	}

	resp := AskResponse{}
	contextText := search.NoRelevantInformation

	hits, err := e.retriever.Search(ctx, question, k)
	switch {
	case err != nil:
		logger.WarnContext(ctx, "retrieval failed, answering without context", "error", err)
		contextText = search.SearchUnavailable
		resp.SearchDegraded = true
	case len(hits) > 0:
		lines := make([]string, 0, len(hits))
		for _, hit := range hits {
			lines = append(lines, search.FormatHit(hit))
			resp.References = append(resp.References, Reference{
				SourceFile: hit.SourceFile,
				PageNumber: hit.PageNumber,
				Score:      hit.Score,
			})
		}
		contextText = strings.Join(lines, "\n\n")
	}

	prompt := buildPrompt(contextText, question, req.Detail)

	answer, err := e.llmClient.ChatWithMessages(ctx, []llm.Message{
		{Role: "user", Content: prompt},
	}, llm.ChatParams{
		Temperature: answerTemperature,
		MaxTokens:   answerMaxTokens,
	})
	if err != nil {
		return AskResponse{}, fmt.Errorf("failed to generate answer: %w", err)
	}

	resp.Answer = strings.TrimSpace(answer)
	logger.InfoContext(ctx, "question answered", "references", len(resp.References), "degraded", resp.SearchDegraded)
	return resp, nil
}
