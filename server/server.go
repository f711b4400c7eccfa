// Package server exposes the scene builder over HTTP: example endpoints that
// construct documents per request, and companion data endpoints serving
// stored molecule files and annotations. Each request gets its own builder;
// no state is shared between requests.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/molscene/go-molscene/scene"
	"github.com/molscene/go-molscene/storage"
)

// Server handles HTTP requests for scene documents and example data.
type Server struct {
	store *storage.Store
	log   zerolog.Logger
	mux   *http.ServeMux
}

// Option configures a Server.
type Option func(*Server)

// WithStore attaches the example-data store backing the /data endpoints.
func WithStore(store *storage.Store) Option {
	return func(s *Server) {
		s.store = store
	}
}

// WithLogger sets the request logger. Defaults to a no-op logger.
func WithLogger(log zerolog.Logger) Option {
	return func(s *Server) {
		s.log = log
	}
}

// New creates a server with the given options.
func New(opts ...Option) *Server {
	s := &Server{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(s)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /load/{id}", s.handleLoad)
	mux.HandleFunc("GET /label/{id}", s.handleLabel)
	mux.HandleFunc("GET /color/{id}", s.handleColor)
	mux.HandleFunc("GET /data/{id}/molecule", s.handleMolecule)
	mux.HandleFunc("GET /data/{id}/cif-annotations", s.handleCifAnnotations)
	mux.HandleFunc("GET /data/{id}/molecule-and-cif-annotations", s.handleMoleculeAndCifAnnotations)
	mux.HandleFunc("GET /data/{id}/json-annotations", s.handleJSONAnnotationNames)
	mux.HandleFunc("GET /data/{id}/json/{name}", s.handleJSONAnnotation)
	s.mux = mux
	return s
}

// statusRecorder captures the response status for request logging.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
	s.mux.ServeHTTP(rec, r)
	s.log.Info().
		Str("request_id", uuid.NewString()).
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Int("status", rec.status).
		Dur("elapsed", time.Since(start)).
		Msg("request")
}

func (s *Server) writeDocument(w http.ResponseWriter, doc *scene.State, err error) {
	if err != nil {
		// Example documents are built from constants; a failure here is a
		// server bug, not a client error.
		s.log.Error().Err(err).Msg("building document")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(doc); err != nil {
		s.log.Error().Err(err).Msg("encoding document")
	}
}

func (s *Server) handleLoad(w http.ResponseWriter, r *http.Request) {
	doc, err := LoadExample(r.PathValue("id"))
	s.writeDocument(w, doc, err)
}

func (s *Server) handleLabel(w http.ResponseWriter, r *http.Request) {
	doc, err := LabelExample(r.PathValue("id"))
	s.writeDocument(w, doc, err)
}

func (s *Server) handleColor(w http.ResponseWriter, r *http.Request) {
	doc, err := ColorExample(r.PathValue("id"))
	s.writeDocument(w, doc, err)
}

func (s *Server) handleMolecule(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		http.NotFound(w, r)
		return
	}
	content, err := s.store.Molecule(r.PathValue("id"))
	if !s.writeStoreError(w, r, err) {
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprint(w, content)
}

func (s *Server) handleCifAnnotations(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		http.NotFound(w, r)
		return
	}
	id := r.PathValue("id")
	content, err := s.store.CifAnnotations(id)
	if !s.writeStoreError(w, r, err) {
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintf(w, "data_%s_annotations\n%s", id, content)
}

func (s *Server) handleMoleculeAndCifAnnotations(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		http.NotFound(w, r)
		return
	}
	id := r.PathValue("id")
	mol, err := s.store.Molecule(id)
	if !s.writeStoreError(w, r, err) {
		return
	}
	ann, err := s.store.CifAnnotations(id)
	if !s.writeStoreError(w, r, err) {
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintf(w, "%s\n\n%s", mol, ann)
}

func (s *Server) handleJSONAnnotationNames(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		http.NotFound(w, r)
		return
	}
	names, err := s.store.JSONAnnotationNames(r.PathValue("id"))
	if !s.writeStoreError(w, r, err) {
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(names)
}

func (s *Server) handleJSONAnnotation(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		http.NotFound(w, r)
		return
	}
	content, err := s.store.JSONAnnotation(r.PathValue("id"), r.PathValue("name"))
	if !s.writeStoreError(w, r, err) {
		return
	}
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprint(w, content)
}

// writeStoreError translates store errors into responses. It reports whether
// the caller should proceed with writing content.
func (s *Server) writeStoreError(w http.ResponseWriter, r *http.Request, err error) bool {
	if err == nil {
		return true
	}
	if errors.Is(err, storage.ErrNotFound) {
		http.NotFound(w, r)
		return false
	}
	s.log.Error().Err(err).Str("path", r.URL.Path).Msg("store lookup")
	http.Error(w, err.Error(), http.StatusInternalServerError)
	return false
}
