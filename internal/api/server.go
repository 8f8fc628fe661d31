// Package api exposes the extraction engine to the design-tool pipeline
// over HTTP.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/UILens-hq/uilens/internal/analyzer"
	"github.com/UILens-hq/uilens/internal/config"
	"github.com/UILens-hq/uilens/internal/fsys"
	"github.com/UILens-hq/uilens/internal/store"
)

// Server represents the API server. The store is optional; analyze
// requests work without persistence.
type Server struct {
	cfg    *config.Config
	store  *store.Store
	router *chi.Mux
}

// NewServer creates a new API server.
func NewServer(cfg *config.Config, st *store.Store) *Server {
	s := &Server{
		cfg:    cfg,
		store:  st,
		router: chi.NewRouter(),
	}
	s.setupMiddleware()
	s.setupRoutes()
	return s
}

// Router returns the HTTP router.
func (s *Server) Router() http.Handler {
	return s.router
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Timeout(30 * time.Second))
}

func (s *Server) setupRoutes() {
	s.router.Get("/health", s.healthCheck)

	s.router.Route("/api/v1", func(r chi.Router) {
		r.Post("/analyze", s.analyze)
		r.Get("/components", s.listComponents)
		r.Get("/components/{tag}", s.getComponent)
	})
}

func (s *Server) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// AnalyzeRequest is the body of POST /api/v1/analyze. Files carries
// sibling sources (index files, constants modules) keyed by path so that
// registration-file tag resolution can run against them.
type AnalyzeRequest struct {
	FileName string            `json:"file_name"`
	Source   string            `json:"source"`
	Files    map[string]string `json:"files,omitempty"`
	Strict   bool              `json:"strict,omitempty"`
}

func (s *Server) analyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if req.FileName == "" || req.Source == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "file_name and source are required"})
		return
	}

	files := map[string]string{req.FileName: req.Source}
	for path, content := range req.Files {
		files[path] = content
	}

	a := analyzer.New(fsys.NewMem(files), analyzer.WithStrict(req.Strict || s.cfg.Strict))
	result := a.AnalyzeFile(r.Context(), req.FileName)

	if s.store != nil && result.Model != nil {
		if _, err := s.store.SaveComponent(r.Context(), result.Model); err != nil {
			log.Warn().Err(err).Str("file", req.FileName).Msg("failed to persist component model")
		}
	}

	writeJSON(w, http.StatusOK, result)
}

func (s *Server) listComponents(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "no store configured"})
		return
	}
	records, err := s.store.ListComponents(r.Context(), 100)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if records == nil {
		records = []store.ComponentRecord{}
	}
	writeJSON(w, http.StatusOK, records)
}

func (s *Server) getComponent(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "no store configured"})
		return
	}
	rec, err := s.store.GetByTag(r.Context(), chi.URLParam(r, "tag"))
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warn().Err(err).Msg("failed to encode response")
	}
}
