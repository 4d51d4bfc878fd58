// Package http serves the sidebar navigation as a JSON API for the site
// frontend.
package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"sitenav"
	"sitenav/sidebar"
)

// Server is the HTTP API server for the navigation service.
type Server struct {
	router  chi.Router
	builder sitenav.Builder
	log     *slog.Logger
}

// NewServer creates and configures the HTTP server. A nil logger falls back
// to slog.Default().
func NewServer(builder sitenav.Builder, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	s := &Server{
		builder: builder,
		log:     log,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	r.Get("/healthz", s.handleHealth)
	r.Get("/api/navigation", s.handleNavigation)

	s.router = r
}

// handleNavigation serves the full sectioned navigation. The optional
// ?current=<href> query projects expansion state for that location. The
// payload carries a strong ETag so frontends polling for sidebar changes
// get 304s while the content tree is unchanged.
func (s *Server) handleNavigation(w http.ResponseWriter, r *http.Request) {
	sections := s.builder.Build(r.Context())
	if current := r.URL.Query().Get("current"); current != "" {
		sections = sitenav.MarkExpanded(sections, current)
	}

	etag := `"` + sidebar.Fingerprint(sections) + `"`
	w.Header().Set("ETag", etag)
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(sections); err != nil {
		s.log.Error("encode navigation response", "err", err)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
