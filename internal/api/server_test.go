package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/twotaco/faxi/internal/intent"
)

func newTestServer() *Server {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	engine := intent.NewEngine(intent.NopSink{}, logger)
	return NewServer(8760, engine, nil)
}

func TestRecentDecisions_NoStore(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest("GET", "/api/v1/intent/decisions/recent", nil)
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("expected 503 without a store, got %d", w.Code)
	}
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}

	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("expected status ok, got %q", body["status"])
	}
}

func TestStatusEndpoint(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest("GET", "/api/v1/faxi/status", nil)
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}

	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body["agent"] != "faxi" {
		t.Errorf("expected agent faxi, got %q", body["agent"])
	}
}

func TestExtractEndpoint(t *testing.T) {
	srv := newTestServer()

	payload := `{
		"text": "buy rice cooker",
		"annotations": [{"kind": "checkmark", "associated_text": "B", "confidence": 0.9}]
	}`
	req := httptest.NewRequest("POST", "/api/v1/intent/extract", strings.NewReader(payload))
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var result intent.ExtractionResult
	if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if result.Intent != intent.KindShopping {
		t.Errorf("expected shopping intent, got %s", result.Intent)
	}
	if result.ConfidenceBreakdown.Overall != result.Confidence {
		t.Errorf("expected overall %f to equal confidence %f",
			result.ConfidenceBreakdown.Overall, result.Confidence)
	}
}

func TestExtractEndpoint_DegenerateInputIsOK(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest("POST", "/api/v1/intent/extract", strings.NewReader(`{"text": ""}`))
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for degenerate input, got %d", w.Code)
	}

	var result intent.ExtractionResult
	if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if result.Confidence != 0 {
		t.Errorf("expected zero confidence, got %f", result.Confidence)
	}
}

func TestExtractEndpoint_MalformedBody(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest("POST", "/api/v1/intent/extract", strings.NewReader("{not json"))
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestNotFoundEndpoint(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest("GET", "/nonexistent", nil)
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}
