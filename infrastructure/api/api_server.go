package api

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/mark3labs/mcp-go/server"

	aoc "github.com/ankarhem/advent-of-code"
	"github.com/ankarhem/advent-of-code/infrastructure/api/middleware"
	v1 "github.com/ankarhem/advent-of-code/infrastructure/api/v1"
	mcpinternal "github.com/ankarhem/advent-of-code/internal/mcp"
)

// solveTimeout bounds a single API request.
const solveTimeout = 2 * time.Minute

// APIServer provides an HTTP API backed by an aoc Client.
type APIServer struct {
	client      *aoc.Client
	apiKeys     []string
	corsOrigins []string
	version     string

	mu     sync.Mutex
	server *Server
}

// APIServerOption configures an APIServer.
type APIServerOption func(*APIServer)

// WithAPIKeys protects /api/v1 with X-API-KEY authentication.
func WithAPIKeys(keys []string) APIServerOption {
	return func(a *APIServer) { a.apiKeys = keys }
}

// WithCORSOrigins allows cross-origin calls from origins.
func WithCORSOrigins(origins []string) APIServerOption {
	return func(a *APIServer) { a.corsOrigins = origins }
}

// WithVersion sets the version reported by /health and MCP.
func WithVersion(v string) APIServerOption {
	return func(a *APIServer) { a.version = v }
}

// NewAPIServer creates a new APIServer wired to client.
func NewAPIServer(client *aoc.Client, opts ...APIServerOption) *APIServer {
	a := &APIServer{client: client, version: "dev"}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *APIServer) mountRoutes(router chi.Router) {
	c := a.client

	router.Get("/health", a.health)
	router.Get("/healthz", a.health)

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(chimiddleware.Timeout(solveTimeout))
		r.Use(middleware.APIKeyAuth(a.apiKeys))
		r.Mount("/solve", v1.NewSolveRouter(c).Routes())
		r.Mount("/runs", v1.NewRunsRouter(c).Routes())
	})

	// MCP streams responses, so it stays outside the timeout group.
	opts := []mcpinternal.ServerOption{
		mcpinternal.WithLogger(c.Logger()),
		mcpinternal.WithPipelineOptions(c.PipelineOptions()...),
	}
	if c.Runs != nil {
		opts = append(opts, mcpinternal.WithRuns(c.Runs))
	}
	mcpSrv := mcpinternal.NewServer(c, a.version, opts...)
	router.Group(func(r chi.Router) {
		r.Use(middleware.APIKeyAuth(a.apiKeys))
		r.Mount("/mcp", server.NewStreamableHTTPServer(mcpSrv.MCPServer()))
	})
}

func (a *APIServer) health(w http.ResponseWriter, _ *http.Request) {
	middleware.WriteJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"version": a.version,
	})
}

// Handler returns the fully mounted router for use with custom servers.
func (a *APIServer) Handler() http.Handler {
	srv := NewServer("", a.corsOrigins, a.client.Logger())
	a.mountRoutes(srv.Router())
	return srv.Router()
}

// ListenAndServe starts the HTTP server on addr.
func (a *APIServer) ListenAndServe(addr string) error {
	srv := NewServer(addr, a.corsOrigins, a.client.Logger())
	a.mountRoutes(srv.Router())

	a.mu.Lock()
	a.server = srv
	a.mu.Unlock()
	return srv.Start()
}

// Shutdown gracefully shuts down the server.
func (a *APIServer) Shutdown(ctx context.Context) error {
	a.mu.Lock()
	srv := a.server
	a.mu.Unlock()
	if srv == nil {
		return nil
	}
	return srv.Shutdown(ctx)
}
