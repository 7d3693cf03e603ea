package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	SourceDir string

	DBPath string

	QdrantURL        string
	QdrantCollection string
	QdrantVectorSize int

	EmbeddingBaseURL string
	EmbeddingModel   string

	LLMBaseURL string
	LLMModel   string
	LLMAPIKey  string

	ChunkMaxTokens int
	ChunkOverlap   int
	EmbedBatchSize int
	IngestWorkers  int

	APIPort   string
	LogLevel  slog.Level
	LogFormat string
}

// Load reads configuration from environment variables and returns a Config struct.
// It applies defaults for every optional field and fails when SOURCE_DIR is not
// set. If a .env file exists in the current directory or project root, it is
// loaded automatically; variables already set in the environment win.
func Load() (*Config, error) {
	_ = godotenv.Load() // Try current directory

	// Walk up a few levels looking for a .env next to go.mod.
	if wd, err := os.Getwd(); err == nil {
		dir := wd
		for i := 0; i < 5; i++ {
			envPath := filepath.Join(dir, ".env")
			if _, err := os.Stat(envPath); err == nil {
				_ = godotenv.Load(envPath)
				break
			}
			parent := filepath.Dir(dir)
			if parent == dir {
				break
			}
			dir = parent
		}
	}

	cfg := &Config{
		SourceDir:        os.Getenv("SOURCE_DIR"),
		DBPath:           getEnv("DB_PATH", "./data/docrag.db"),
		QdrantURL:        getEnv("QDRANT_URL", "http://localhost:6333"),
		QdrantCollection: getEnv("QDRANT_COLLECTION", "rag_chunks"),
		EmbeddingBaseURL: getEnv("EMBEDDING_BASE_URL", "http://localhost:8081"),
		EmbeddingModel:   getEnv("EMBEDDING_MODEL", "nomic-embed-text"),
		LLMBaseURL:       getEnv("LLM_BASE_URL", "http://localhost:8080"),
		LLMModel:         getEnv("LLM_MODEL", "Llama-3.1-8B-Instruct"),
		LLMAPIKey:        getEnv("LLM_API_KEY", "dummy-key"),
		APIPort:          getEnv("API_PORT", "9000"),
		LogFormat:        getEnv("LOG_FORMAT", "text"),
	}

	// The source directory is the one setting with no sane default: without it
	// there is nothing to ingest.
	if cfg.SourceDir == "" {
		return nil, fmt.Errorf("SOURCE_DIR is required")
	}

	var err error
	if cfg.QdrantVectorSize, err = getEnvInt("QDRANT_VECTOR_SIZE", 768); err != nil {
		return nil, err
	}
	if cfg.ChunkMaxTokens, err = getEnvInt("CHUNK_MAX_TOKENS", 500); err != nil {
		return nil, err
	}
	if cfg.ChunkOverlap, err = getEnvInt("CHUNK_OVERLAP", 50); err != nil {
		return nil, err
	}
	if cfg.EmbedBatchSize, err = getEnvInt("EMBED_BATCH_SIZE", 16); err != nil {
		return nil, err
	}
	if cfg.IngestWorkers, err = getEnvInt("INGEST_WORKERS", 4); err != nil {
		return nil, err
	}

	if cfg.QdrantVectorSize <= 0 {
		return nil, fmt.Errorf("QDRANT_VECTOR_SIZE must be greater than 0")
	}
	if cfg.ChunkMaxTokens <= 0 {
		return nil, fmt.Errorf("CHUNK_MAX_TOKENS must be greater than 0")
	}
	if cfg.ChunkOverlap < 0 {
		return nil, fmt.Errorf("CHUNK_OVERLAP must not be negative")
	}
	if cfg.EmbedBatchSize <= 0 {
		return nil, fmt.Errorf("EMBED_BATCH_SIZE must be greater than 0")
	}
	if cfg.IngestWorkers <= 0 {
		return nil, fmt.Errorf("INGEST_WORKERS must be greater than 0")
	}

	cfg.LogLevel = parseLogLevel(getEnv("LOG_LEVEL", "info"))

	// Create the data directory for the SQLite file if it doesn't exist.
	dataDir := filepath.Dir(cfg.DBPath)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	return cfg, nil
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an integer environment variable or returns a default value.
func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be a valid integer: %w", key, err)
	}
	return n, nil
}

// parseLogLevel converts a level name to a slog.Level, defaulting to info.
func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
