package main

import (
	"context"
	"log"
	"log/slog"
	nethttp "net/http"
	"os"

	"docrag/internal/config"
	"docrag/internal/http"
	"docrag/internal/indexer"
	"docrag/internal/llm"
	"docrag/internal/rag"
	"docrag/internal/search"
	"docrag/internal/segment"
	"docrag/internal/service"
	"docrag/internal/storage"
	"docrag/internal/vectorstore"
)

func main() {
	// Load configuration first (needed for log level)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Configure structured logging with configurable level and format
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)
	slog.Debug("Logging configured", "level", cfg.LogLevel.String(), "format", cfg.LogFormat)

	// Initialize database
	db, err := storage.New(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer func() {
		_ = db.Close()
	}()

	if err := storage.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	slog.Info("Database initialized", "path", cfg.DBPath)

	// Create repository instances
	chunkRepo := storage.NewChunkRepo(db)
	chatRepo := storage.NewChatRepo(db)

	ctx := context.Background()

	// Initialize Qdrant vector store
	vectorStore, err := vectorstore.NewQdrantStore(cfg.QdrantURL)
	if err != nil {
		log.Fatalf("Failed to create Qdrant client: %v", err)
	}

	// Ensure collection exists with correct vector size
	if err := vectorStore.EnsureCollection(ctx, cfg.QdrantCollection, cfg.QdrantVectorSize); err != nil {
		log.Fatalf("Failed to ensure Qdrant collection: %v", err)
	}
	slog.Info("Qdrant collection ready", "collection", cfg.QdrantCollection, "vector_size", cfg.QdrantVectorSize)

	embedder := llm.NewEmbeddingsClient(cfg.EmbeddingBaseURL, cfg.LLMAPIKey, cfg.EmbeddingModel, cfg.QdrantVectorSize)

	// Sentence segmenter and ingestion pipeline
	segmenter, err := segment.NewPunktSegmenter()
	if err != nil {
		log.Fatalf("Failed to create sentence segmenter: %v", err)
	}

	pipeline := indexer.NewPipeline(chunkRepo, segmenter, cfg.ChunkMaxTokens, cfg.ChunkOverlap, cfg.IngestWorkers)
	upserter := indexer.NewUpserter(chunkRepo, embedder, vectorStore, cfg.QdrantCollection, cfg.EmbedBatchSize)

	// Retrieval and generation
	retriever := search.NewRetriever(embedder, vectorStore, cfg.QdrantCollection, chunkRepo)
	llmClient := llm.NewClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel)
	ragEngine := rag.NewEngine(retriever, llmClient)
	chatService := service.NewChatService(ragEngine, chatRepo)
	slog.Info("RAG engine initialized")

	// Create router with dependencies
	deps := &http.Deps{
		DB:          db,
		ChunkRepo:   chunkRepo,
		VectorStore: vectorStore,
		Collection:  cfg.QdrantCollection,
		Pipeline:    pipeline,
		Upserter:    upserter,
		RAGEngine:   ragEngine,
		ChatService: chatService,
		SourceDir:   cfg.SourceDir,
	}
	router := http.NewRouter(deps)

	// Start indexing in background after router is ready
	go func() {
		indexCtx := context.Background()
		slog.Info("Starting background ingestion", "dir", cfg.SourceDir)
		report, err := pipeline.IngestDirectory(indexCtx, cfg.SourceDir)
		if err != nil {
			slog.Error("Ingestion failed", "error", err)
			return
		}
		slog.Info("Ingestion completed",
			"scanned", report.FilesScanned,
			"skipped", report.FilesSkipped,
			"failed", report.FilesFailed,
			"chunks", report.ChunksInserted)

		embedReport, err := upserter.Run(indexCtx)
		if err != nil {
			slog.Error("Embedding failed", "error", err)
			return
		}
		slog.Info("Embedding completed",
			"attempted", embedReport.Attempted,
			"succeeded", embedReport.Succeeded,
			"failed", embedReport.Failed,
			"skipped", embedReport.Skipped)
	}()

	// Start API server
	addr := ":" + cfg.APIPort
	slog.Info("Starting API server", "addr", addr)
	slog.Debug("LLM configuration", "base_url", cfg.LLMBaseURL, "model", cfg.LLMModel)
	if err := nethttp.ListenAndServe(addr, router); err != nil {
		log.Fatalf("API server failed to start: %v", err)
	}
}
