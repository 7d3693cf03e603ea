package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"docrag/internal/handlers"
	"docrag/internal/storage"
	storage_mocks "docrag/internal/storage/mocks"
)

// chunkRequest builds a GET request carrying the id as a chi route parameter,
// the way the router would deliver it.
func chunkRequest(method, id string) *http.Request {
	req := httptest.NewRequest(method, "/api/chunks/"+id, nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestChunkHandler_ServeHTTP(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		id         string
		mockSetup  func(repo *storage_mocks.MockChunkStore)
		wantStatus int
	}{
		{
			name:   "existing chunk",
			method: http.MethodGet,
			id:     "12",
			mockSetup: func(repo *storage_mocks.MockChunkStore) {
				repo.EXPECT().
					GetByID(gomock.Any(), int64(12)).
					Return(&storage.ChunkRecord{
						ID:          12,
						SourceFile:  "guide.pdf",
						ChunkNumber: 4,
						PageNumber:  7,
						Content:     "chunk text",
						FileHash:    "abc123",
						Status:      storage.StatusEmbedded,
						CreatedAt:   time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
					}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "method not allowed",
			method:     http.MethodPost,
			id:         "12",
			mockSetup:  func(repo *storage_mocks.MockChunkStore) {},
			wantStatus: http.StatusMethodNotAllowed,
		},
		{
			name:       "non-integer id",
			method:     http.MethodGet,
			id:         "abc",
			mockSetup:  func(repo *storage_mocks.MockChunkStore) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "unknown chunk",
			method: http.MethodGet,
			id:     "99",
			mockSetup: func(repo *storage_mocks.MockChunkStore) {
				repo.EXPECT().
					GetByID(gomock.Any(), int64(99)).
					Return(nil, storage.ErrNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:   "store error",
			method: http.MethodGet,
			id:     "12",
			mockSetup: func(repo *storage_mocks.MockChunkStore) {
				repo.EXPECT().
					GetByID(gomock.Any(), int64(12)).
					Return(nil, errors.New("db locked"))
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := storage_mocks.NewMockChunkStore(ctrl)
			tt.mockSetup(repo)

			handler := handlers.NewChunkHandler(repo)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, chunkRequest(tt.method, tt.id))

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantStatus != http.StatusOK {
				return
			}

			var resp handlers.ChunkResponse
			if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if resp.ID != 12 || resp.SourceFile != "guide.pdf" || resp.Status != "embedded" {
				t.Errorf("response = %+v, want chunk 12 from guide.pdf with status embedded", resp)
			}
		})
	}
}
