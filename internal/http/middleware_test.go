package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"docrag/internal/contextutil"
)

func TestLoggerMiddleware(t *testing.T) {
	var capturedCtx context.Context
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedCtx = r.Context()
		w.WriteHeader(http.StatusOK)
	})

	middleware := LoggerMiddleware(handler)

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()

	middleware.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("LoggerMiddleware() status = %v, want %v", w.Code, http.StatusOK)
	}
	if capturedCtx == nil {
		t.Fatal("LoggerMiddleware() should capture context")
	}
	if contextutil.LoggerFromContext(capturedCtx) == nil {
		t.Error("LoggerMiddleware() should add logger to context")
	}
}

func TestCORS(t *testing.T) {
	handler := CORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("echoes request origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("Origin", "http://example.com")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://example.com" {
			t.Errorf("Access-Control-Allow-Origin = %q, want http://example.com", got)
		}
	})

	t.Run("wildcard without origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
			t.Errorf("Access-Control-Allow-Origin = %q, want *", got)
		}
	})

	t.Run("preflight short-circuits", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/test", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Errorf("preflight status = %v, want %v", w.Code, http.StatusNoContent)
		}
	})
}
