package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/mock/gomock"

	"docrag/internal/handlers"
	"docrag/internal/service"
	"docrag/internal/service/mocks"
	"docrag/internal/storage"
)

func TestChatHandler_ServeHTTP(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		body       string
		mockSetup  func(svc *mocks.MockChatService)
		wantStatus int
		wantReply  string
	}{
		{
			name:   "successful chat",
			method: http.MethodPost,
			body:   `{"message":"hello"}`,
			mockSetup: func(svc *mocks.MockChatService) {
				svc.EXPECT().
					ProcessChat(gomock.Any(), service.ChatRequest{Message: "hello"}).
					Return(service.ChatResponse{Reply: "hi there"}, nil)
			},
			wantStatus: http.StatusOK,
			wantReply:  "hi there",
		},
		{
			name:       "method not allowed",
			method:     http.MethodGet,
			mockSetup:  func(svc *mocks.MockChatService) {},
			wantStatus: http.StatusMethodNotAllowed,
		},
		{
			name:       "invalid body",
			method:     http.MethodPost,
			body:       "{broken",
			mockSetup:  func(svc *mocks.MockChatService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "validation error maps to bad request",
			method: http.MethodPost,
			body:   `{"message":""}`,
			mockSetup: func(svc *mocks.MockChatService) {
				svc.EXPECT().
					ProcessChat(gomock.Any(), gomock.Any()).
					Return(service.ChatResponse{}, &service.ValidationError{Field: "message", Message: "cannot be empty"})
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "service error maps to internal server error",
			method: http.MethodPost,
			body:   `{"message":"hello"}`,
			mockSetup: func(svc *mocks.MockChatService) {
				svc.EXPECT().
					ProcessChat(gomock.Any(), gomock.Any()).
					Return(service.ChatResponse{}, errors.New("boom"))
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockChatService := mocks.NewMockChatService(ctrl)
			tt.mockSetup(mockChatService)
			handler := handlers.NewChatHandler(mockChatService)

			req := httptest.NewRequest(tt.method, "/api/chat", bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d; body: %s", rec.Code, tt.wantStatus, rec.Body.String())
			}
			if tt.wantReply != "" {
				var resp handlers.ChatResponse
				if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
					t.Fatalf("failed to decode response: %v", err)
				}
				if resp.Reply != tt.wantReply {
					t.Errorf("Reply = %q, want %q", resp.Reply, tt.wantReply)
				}
			}
		})
	}
}

func TestChatHistoryHandler_ServeHTTP(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		mockSetup  func(svc *mocks.MockChatService)
		wantStatus int
	}{
		{
			name:   "default limit",
			target: "/api/chat/history",
			mockSetup: func(svc *mocks.MockChatService) {
				svc.EXPECT().
					History(gomock.Any(), 0).
					Return([]storage.ChatRecord{{ID: 1, UserInput: "q", BotResponse: "a"}}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "explicit limit",
			target: "/api/chat/history?limit=5",
			mockSetup: func(svc *mocks.MockChatService) {
				svc.EXPECT().History(gomock.Any(), 5).Return(nil, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "invalid limit",
			target:     "/api/chat/history?limit=abc",
			mockSetup:  func(svc *mocks.MockChatService) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockChatService := mocks.NewMockChatService(ctrl)
			tt.mockSetup(mockChatService)
			handler := handlers.NewChatHistoryHandler(mockChatService)

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d; body: %s", rec.Code, tt.wantStatus, rec.Body.String())
			}
		})
	}
}
