// Package server serves the depview page and its exports over HTTP.
//
// Routes:
//
//	GET /              the HTML page with both panes
//	GET /graph.json    the dataset
//	GET /snapshot.png  headless 2D render (?width=&height=)
//	GET /snapshot.svg
//	GET /graph.dot     Graphviz node-link export
//	GET /graph.svg
//	GET /healthz       liveness and build version
//
// Every response carries an X-Depview-Version header. Snapshot and export
// responses are served from the render cache when possible and report it in
// X-Cache (HIT or MISS).
package server

import (
	"context"
	stderrors "errors"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/depview/pkg/cache"
	"github.com/matzehuels/depview/pkg/config"
	"github.com/matzehuels/depview/pkg/dataset"
	"github.com/matzehuels/depview/pkg/graph"
)

// Response headers.
const (
	VersionHeader = "X-Depview-Version"
	CacheHeader   = "X-Cache"
)

// Server is the HTTP front end.
type Server struct {
	cfg    config.Config
	logger *log.Logger
	source func() graph.Graph
	cache  cache.Cache
	router chi.Router
}

// Option customizes a Server.
type Option func(*Server)

// WithLogger sets the request logger. Without it requests are not logged.
func WithLogger(l *log.Logger) Option {
	return func(s *Server) { s.logger = l }
}

// WithGraph replaces the dataset source, which defaults to [dataset.Default].
func WithGraph(source func() graph.Graph) Option {
	return func(s *Server) { s.source = source }
}

// WithCache sets the render cache, replacing the backend named in the config.
func WithCache(c cache.Cache) Option {
	return func(s *Server) { s.cache = c }
}

// New builds a server for cfg. If the configured cache cannot be opened the
// server runs uncached.
func New(cfg config.Config, opts ...Option) *Server {
	s := &Server{cfg: cfg, source: dataset.Default}
	for _, o := range opts {
		o(s)
	}
	if s.cache == nil {
		c, err := cache.Open(cfg.Server.Cache, cfg.Server.CacheDir)
		if err != nil {
			if s.logger != nil {
				s.logger.Warn("render cache disabled", "error", err)
			}
			c = cache.NewNullCache()
		}
		s.cache = c
	}
	s.router = s.routes()
	return s
}

// Close releases the render cache.
func (s *Server) Close() error { return s.cache.Close() }

// Handler returns the root handler.
func (s *Server) Handler() http.Handler { return s.router }

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(versionHeader)
	r.Use(s.requestLogger)

	r.Get("/", s.handlePage)
	r.Get("/graph.json", s.handleGraph)
	r.Get("/snapshot.png", s.handleSnapshot("png"))
	r.Get("/snapshot.svg", s.handleSnapshot("svg"))
	r.Get("/graph.dot", s.handleExport("dot"))
	r.Get("/graph.svg", s.handleExport("svg"))
	r.Get("/healthz", s.handleHealth)
	r.NotFound(s.handleNotFound)
	return r
}

// ListenAndServe serves on the configured address until ctx is cancelled,
// then shuts down gracefully within the configured timeout.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Server.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve is ListenAndServe on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:      s.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Serve(ln); !stderrors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	timeout := s.cfg.Server.ShutdownTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	defer s.Close()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
