package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/mock/gomock"

	"docrag/internal/indexer"
	rag_mocks "docrag/internal/rag/mocks"
	"docrag/internal/service/mocks"
	storage_mocks "docrag/internal/storage/mocks"
	vectorstore_mocks "docrag/internal/vectorstore/mocks"
)

func newTestDeps(t *testing.T, ctrl *gomock.Controller) *Deps {
	t.Helper()
	chunkRepo := storage_mocks.NewMockChunkStore(ctrl)
	return &Deps{
		ChunkRepo:   chunkRepo,
		VectorStore: vectorstore_mocks.NewMockVectorStore(ctrl),
		Collection:  "test_chunks",
		Pipeline:    indexer.NewPipeline(chunkRepo, nil, 500, 50, 1),
		RAGEngine:   rag_mocks.NewMockEngine(ctrl),
		ChatService: mocks.NewMockChatService(ctrl),
		SourceDir:   t.TempDir(),
	}
}

func TestNewRouter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router := NewRouter(newTestDeps(t, ctrl))
	if router == nil {
		t.Fatal("NewRouter() returned nil")
	}
}

func TestRouter_Routes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router := NewRouter(newTestDeps(t, ctrl))

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{
			name:       "POST /api/ask exists",
			method:     http.MethodPost,
			path:       "/api/ask",
			wantStatus: http.StatusBadRequest, // Bad request due to empty body, but route exists
		},
		{
			name:       "POST /api/chat exists",
			method:     http.MethodPost,
			path:       "/api/chat",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "GET /api/chat method not allowed",
			method:     http.MethodGet,
			path:       "/api/chat",
			wantStatus: http.StatusMethodNotAllowed,
		},
		{
			name:       "GET /api/chunks/{id} exists",
			method:     http.MethodGet,
			path:       "/api/chunks/abc",
			wantStatus: http.StatusBadRequest, // Non-integer id, but route exists
		},
		{
			name:       "unknown route",
			method:     http.MethodGet,
			path:       "/api/unknown",
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("Router %s %s status = %v, want %v", tt.method, tt.path, w.Code, tt.wantStatus)
			}
		})
	}
}

func TestRouter_CORSPreflight(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router := NewRouter(newTestDeps(t, ctrl))

	req := httptest.NewRequest(http.MethodOptions, "/api/chat", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Errorf("preflight status = %v, want %v", w.Code, http.StatusNoContent)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Errorf("Access-Control-Allow-Origin = %q, want request origin", got)
	}
}
