package http

import (
	"database/sql"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"docrag/internal/handlers"
	"docrag/internal/indexer"
	"docrag/internal/rag"
	"docrag/internal/service"
	"docrag/internal/storage"
	"docrag/internal/vectorstore"
)

// Deps holds dependencies for the HTTP router.
type Deps struct {
	DB          *sql.DB
	ChunkRepo   storage.ChunkStore
	VectorStore vectorstore.VectorStore
	Collection  string
	Pipeline    *indexer.Pipeline
	Upserter    *indexer.Upserter
	RAGEngine   rag.Engine
	ChatService service.ChatService
	SourceDir   string
}

// NewRouter creates a new HTTP router with the provided dependencies.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(LoggerMiddleware)
	r.Use(CORS)

	askHandler := handlers.NewAskHandler(deps.RAGEngine)
	chatHandler := handlers.NewChatHandler(deps.ChatService)
	historyHandler := handlers.NewChatHistoryHandler(deps.ChatService)
	ingestHandler := handlers.NewIngestHandler(deps.Pipeline, deps.SourceDir)
	embedHandler := handlers.NewEmbedHandler(deps.Upserter)
	statsHandler := handlers.NewStatsHandler(deps.ChunkRepo)
	chunkHandler := handlers.NewChunkHandler(deps.ChunkRepo)
	healthHandler := handlers.NewHealthHandler(deps.DB, deps.VectorStore, deps.Collection)

	r.Route("/api", func(r chi.Router) {
		r.Method(http.MethodPost, "/ask", askHandler)
		r.Method(http.MethodPost, "/chat", chatHandler)
		r.Method(http.MethodGet, "/chat/history", historyHandler)
		r.Method(http.MethodPost, "/ingest", ingestHandler)
		r.Method(http.MethodPost, "/embed", embedHandler)
		r.Method(http.MethodGet, "/stats", statsHandler)
		r.Method(http.MethodGet, "/chunks/{id}", chunkHandler)
		r.Method(http.MethodGet, "/health", healthHandler)
	})

	return r
}
