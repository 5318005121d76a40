// Package api exposes the component pipeline over HTTP.
//
// The server is deliberately small: two analysis endpoints plus a health
// check. Requests carry the graph inline as JSON; responses are tagged
// with a per-request run ID so log lines and payloads can be correlated.
//
// # Endpoints
//
//	POST /v1/components  compute the connected components of a graph
//	POST /v1/adjacency   build the adjacency mapping of a graph
//	GET  /healthz        liveness probe
package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/islandertools/islander/pkg/edgeio"
	"github.com/islandertools/islander/pkg/errors"
	"github.com/islandertools/islander/pkg/graph"
	"github.com/islandertools/islander/pkg/pipeline"
)

// Server serves the analysis API.
type Server struct {
	runner *pipeline.Runner
	logger *log.Logger
	router chi.Router
}

// NewServer creates a server around a pipeline runner. A nil logger
// disables request logging.
func NewServer(runner *pipeline.Runner, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	s := &Server{runner: runner, logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.requestLog)
	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/components", s.handleComponents)
		r.Post("/adjacency", s.handleAdjacency)
	})
	s.router = r
	return s
}

// Handler returns the HTTP handler for mounting or serving.
func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe runs the server until the context is canceled, then
// shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()

	s.logger.Info("listening", "addr", addr)
	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errc:
		return err
	}
}

// graphRequest is the inline graph payload shared by both endpoints.
type graphRequest struct {
	Vertices []string      `json:"vertices,omitempty"`
	Edges    []edgePayload `json:"edges"`
	Engine   string        `json:"engine,omitempty"`
	Directed bool          `json:"directed,omitempty"`
}

type edgePayload struct {
	From string `json:"from"`
	To   string `json:"to"`
}

func (g *graphRequest) document() *edgeio.Document {
	doc := &edgeio.Document{Vertices: g.Vertices}
	for _, e := range g.Edges {
		doc.Edges = append(doc.Edges, graph.Edge[string]{From: e.From, To: e.To})
	}
	return doc
}

type componentsResponse struct {
	ID         string     `json:"id"`
	Engine     string     `json:"engine"`
	GraphHash  string     `json:"graph_hash"`
	Cached     bool       `json:"cached"`
	Components [][]string `json:"components"`
	Counts     counts     `json:"counts"`
}

type adjacencyResponse struct {
	ID        string              `json:"id"`
	Directed  bool                `json:"directed"`
	Adjacency map[string][]string `json:"adjacency"`
	Counts    counts              `json:"counts"`
}

type counts struct {
	Vertices   int `json:"vertices"`
	Edges      int `json:"edges"`
	Components int `json:"components,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleComponents(w http.ResponseWriter, r *http.Request) {
	runID := uuid.NewString()

	var req graphRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, runID, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request body"))
		return
	}

	result, err := s.runner.Execute(r.Context(), req.document(), pipeline.Options{Engine: req.Engine})
	if err != nil {
		s.writeError(w, runID, err)
		return
	}

	engine := req.Engine
	if engine == "" {
		engine = pipeline.DefaultEngine
	}
	writeJSON(w, http.StatusOK, componentsResponse{
		ID:         runID,
		Engine:     engine,
		GraphHash:  result.GraphHash,
		Cached:     result.CacheInfo.PartitionHit,
		Components: edgeio.SortedComponents(result.Partition),
		Counts: counts{
			Vertices:   result.Stats.VertexCount,
			Edges:      result.Stats.EdgeCount,
			Components: result.Stats.ComponentCount,
		},
	})
}

func (s *Server) handleAdjacency(w http.ResponseWriter, r *http.Request) {
	runID := uuid.NewString()

	var req graphRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, runID, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request body"))
		return
	}

	doc := req.document()
	adj := doc.Adjacency(req.Directed)
	writeJSON(w, http.StatusOK, adjacencyResponse{
		ID:        runID,
		Directed:  req.Directed,
		Adjacency: edgeio.SortedAdjacency(adj),
		Counts: counts{
			Vertices: adj.VertexCount(),
			Edges:    doc.EdgeCount(),
		},
	})
}

// errorResponse is the JSON error envelope.
type errorResponse struct {
	ID    string    `json:"id"`
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (s *Server) writeError(w http.ResponseWriter, runID string, err error) {
	code := errors.GetCode(err)
	status := statusFor(code)
	s.logger.Warn("request failed", "run", runID, "code", code, "error", err)
	writeJSON(w, status, errorResponse{
		ID:    runID,
		Error: errorBody{Code: string(code), Message: errors.UserMessage(err)},
	})
}

func statusFor(code errors.Code) int {
	switch code {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidFormat,
		errors.ErrCodeInvalidEngine, errors.ErrCodeInvalidGraph,
		errors.ErrCodeInvalidPath:
		return http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodeFileNotFound:
		return http.StatusNotFound
	case errors.ErrCodeUnsupported:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// requestLog logs each request with method, path, status, and duration.
func (s *Server) requestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"took", time.Since(start))
	})
}
