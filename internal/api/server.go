package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/twotaco/faxi/internal/intent"
	"github.com/twotaco/faxi/internal/store"
)

type Server struct {
	router *chi.Mux
	engine *intent.Engine
	store  *store.Store
	port   int
}

// ExtractRequest is the synchronous form of the scanned-document input.
type ExtractRequest struct {
	Text        string                    `json:"text"`
	Annotations []intent.VisualAnnotation `json:"annotations"`
}

// NewServer builds the HTTP surface. db may be nil when no audit store is
// configured; the decision endpoints work without it.
func NewServer(port int, engine *intent.Engine, db *store.Store) *Server {
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	s := &Server{
		router: router,
		engine: engine,
		store:  db,
		port:   port,
	}

	router.Get("/health", s.health)
	router.Get("/api/v1/faxi/status", s.status)
	router.Post("/api/v1/intent/extract", s.extract)
	router.Get("/api/v1/intent/decisions/recent", s.recentDecisions)

	return s
}

func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	slog.Info("API server starting", "addr", addr)
	return http.ListenAndServe(addr, s.router)
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (s *Server) status(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{
		"agent":  "faxi",
		"status": "ready",
	})
}

// extract runs the intent engine synchronously. Degenerate input is valid
// and yields a low-confidence result; only malformed JSON is a 400.
func (s *Server) extract(w http.ResponseWriter, r *http.Request) {
	var req ExtractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "invalid request body"})
		return
	}

	result := s.engine.Extract(r.Context(), req.Text, req.Annotations, nil)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(result)
}

// recentDecisions serves the audit trail for quality monitoring.
func (s *Server) recentDecisions(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if s.store == nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		json.NewEncoder(w).Encode(map[string]string{"error": "audit store not configured"})
		return
	}

	decisions, err := s.store.RecentDecisions(r.Context(), 50)
	if err != nil {
		slog.Error("failed to query recent decisions", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": "query failed"})
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]any{"decisions": decisions})
}
