// Package server implements the scaffold HTTP service: organisation issuance, the
// organisation user CRUD API, sample code download and collection upload for code
// generation.
package server

import (
	_ "embed"
	"encoding/json"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.followtheprocess.codes/log"
	"go.followtheprocess.codes/scaffold/internal/codegen"
	"go.followtheprocess.codes/scaffold/internal/config"
	"go.followtheprocess.codes/scaffold/internal/store"
)

//go:embed templates/index.html
var indexHTML string

// indexTemplate is the parsed home page.
//
//nolint:gochecknoglobals // Having the template as a global means it's parsed only once
var indexTemplate = template.Must(template.New("index").Parse(indexHTML))

// Server is the HTTP API surface for scaffold.
type Server struct {
	store     store.Store
	generator *codegen.Generator
	logger    *log.Logger
	router    chi.Router
	cfg       config.Config
}

// New returns a new [Server] backed by the given store and generator.
func New(cfg config.Config, users store.Store, generator *codegen.Generator, logger *log.Logger) *Server {
	s := &Server{
		cfg:       cfg,
		store:     users,
		generator: generator,
		logger:    logger,
		router:    chi.NewRouter(),
	}

	s.routes()

	return s
}

func (s *Server) routes() {
	r := s.router

	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/", s.handleHome)
	r.Get("/languages", s.handleLanguages)

	// Organisations
	r.Get("/generate_org", s.handleGenerateOrg)
	r.Get("/generate_sample_code", s.handleSampleCode)

	// Organisation users
	r.Post("/api/org/{org_id}/users/", s.handleCreateUser)
	r.Get("/api/org/{org_id}/users/{org_user_id}", s.handleGetUser)
	r.Put("/api/org/{org_id}/users/{org_user_id}", s.handleUpdateUser)
	r.Delete("/api/org/{org_id}/users/{org_user_id}", s.handleDeleteUser)

	// Code generation
	r.Post("/generate_code", s.handleGenerateCode)
}

// ServeHTTP implements [http.Handler].
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// HTTPServer returns an [http.Server] serving s, configured from the service config.
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s,
		ReadTimeout:       s.cfg.ReadTimeout.Duration,
		ReadHeaderTimeout: s.cfg.ReadTimeout.Duration,
		WriteTimeout:      s.cfg.WriteTimeout.Duration,
	}
}

// logRequests is a middleware that logs every request once it's been served.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		s.logger.Debug(
			"Served HTTP request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			slog.Duration("took", time.Since(start)),
		)
	})
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	if err := indexTemplate.Execute(w, s.generator.Languages()); err != nil {
		s.logger.Error("Could not render home page", slog.String("error", err.Error()))
	}
}

func (s *Server) handleLanguages(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]codegen.Language{"languages": s.generator.Languages()})
}

// writeJSON writes v as the JSON response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v) //nolint:errcheck // Headers already sent, nothing more we can do
}

// errorResponse is the body of every failed request.
type errorResponse struct {
	Detail string `json:"detail"`
}

// writeError writes a JSON error body with the given status.
func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, errorResponse{Detail: detail})
}
