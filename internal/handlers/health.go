package handlers

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"docrag/internal/contextutil"
	"docrag/internal/vectorstore"
)

// HealthHandler handles HTTP requests for health checks.
type HealthHandler struct {
	db                 *sql.DB
	vectorStore        vectorstore.VectorStore
	collectionName     string
	healthCheckTimeout time.Duration
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(db *sql.DB, vectorStore vectorstore.VectorStore, collectionName string) *HealthHandler {
	return &HealthHandler{
		db:                 db,
		vectorStore:        vectorStore,
		collectionName:     collectionName,
		healthCheckTimeout: 5 * time.Second,
	}
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	// Overall health status: "healthy" or "unhealthy"
	Status string `json:"status"`

	// Timestamp of the health check
	Timestamp string `json:"timestamp"`

	// Individual check results
	Checks map[string]string `json:"checks"`

	// List of issues (only present if status is unhealthy)
	Issues []string `json:"issues,omitempty"`
}

// ServeHTTP handles HTTP requests for health checks.
// Returns 200 OK if healthy, 503 Service Unavailable otherwise.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodGet {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	checkCtx, cancel := context.WithTimeout(ctx, h.healthCheckTimeout)
	defer cancel()

	checks := make(map[string]string)
	var issues []string

	if err := h.db.PingContext(checkCtx); err != nil {
		logger.WarnContext(ctx, "database health check failed", "error", err)
		checks["database"] = "error"
		issues = append(issues, "database_unavailable")
	} else {
		checks["database"] = "ok"
	}

	if h.checkVectorStore(checkCtx, logger) {
		checks["vector_store"] = "ok"
	} else {
		checks["vector_store"] = "error"
		issues = append(issues, "vector_store_unavailable")
	}

	status := "healthy"
	httpStatus := http.StatusOK
	if len(issues) > 0 {
		status = "unhealthy"
		httpStatus = http.StatusServiceUnavailable
	}

	response := HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    checks,
		Issues:    issues,
	}

	writeJSON(ctx, w, httpStatus, response)
}

// checkVectorStore checks if the vector store is accessible.
func (h *HealthHandler) checkVectorStore(ctx context.Context, logger *slog.Logger) bool {
	exists, err := h.vectorStore.CollectionExists(ctx, h.collectionName)
	if err != nil {
		logger.WarnContext(ctx, "vector store health check failed", "error", err)
		return false
	}
	if !exists {
		logger.WarnContext(ctx, "vector store collection does not exist", "collection", h.collectionName)
		return false
	}
	return true
}
