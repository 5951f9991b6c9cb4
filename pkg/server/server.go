package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"

	"blinkdeploys/tokenscope/pkg/catalog"
	"blinkdeploys/tokenscope/pkg/config"
	"blinkdeploys/tokenscope/pkg/processing"
	"blinkdeploys/tokenscope/pkg/server/middleware"
	"blinkdeploys/tokenscope/pkg/telemetry/health"
	"blinkdeploys/tokenscope/pkg/telemetry/metrics"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Deps are the collaborators the server exposes over HTTP.
type Deps struct {
	Processor *processing.Processor
	Catalog   *catalog.Catalog
	Health    *health.Checker
	Metrics   *metrics.Collector
	Version   health.VersionInfo
}

// Server is the tokenscope HTTP API server.
type Server struct {
	config     *config.Config
	deps       Deps
	httpServer *http.Server
	logger     *slog.Logger

	mu        sync.RWMutex
	isRunning bool
	addr      string
}

// New creates a new server. cfg must already be validated.
func New(cfg *config.Config, deps Deps) *Server {
	if deps.Health == nil {
		deps.Health = health.New(cfg.Telemetry.Health.CheckTimeout)
	}
	if deps.Metrics == nil {
		deps.Metrics = metrics.NewCollector(&config.MetricsConfig{}, nil)
	}

	return &Server{
		config: cfg,
		deps:   deps,
		logger: slog.Default().With("component", "server"),
	}
}

// Start listens on the configured address and serves until ctx is
// cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.isRunning {
		s.mu.Unlock()
		return errors.New("server is already running")
	}

	ln, err := net.Listen("tcp", s.config.Server.ListenAddress)
	if err != nil {
		s.mu.Unlock()
		return fmt.Errorf("failed to listen on %s: %w", s.config.Server.ListenAddress, err)
	}

	s.httpServer = &http.Server{
		Handler:      s.Handler(),
		ReadTimeout:  s.config.Server.ReadTimeout,
		WriteTimeout: s.config.Server.WriteTimeout,
		IdleTimeout:  s.config.Server.IdleTimeout,
	}
	s.addr = ln.Addr().String()
	s.isRunning = true
	s.mu.Unlock()

	errChan := make(chan error, 1)
	go func() {
		s.logger.Info("starting server", "address", s.addr)
		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("server error: %w", err)
		}
		close(errChan)
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("shutdown requested")
		return s.Shutdown(context.Background())
	case err := <-errChan:
		s.mu.Lock()
		s.isRunning = false
		s.mu.Unlock()
		return err
	}
}

// Shutdown gracefully stops the server, waiting up to the configured
// shutdown timeout for in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return nil
	}
	s.isRunning = false

	shutdownCtx, cancel := context.WithTimeout(ctx, s.config.Server.ShutdownTimeout)
	defer cancel()

	s.logger.Info("initiating graceful shutdown", "timeout", s.config.Server.ShutdownTimeout.String())
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}

	s.logger.Info("server stopped")
	return nil
}

// IsRunning returns true if the server is running.
func (s *Server) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// Addr returns the bound listen address once the server has started.
func (s *Server) Addr() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.addr
}

// Handler returns the routed handler with the full middleware chain.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery)
	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logging)
	r.Use(middleware.Metrics(s.deps.Metrics))
	r.Use(middleware.Timeout(s.config.Server.RequestTimeout))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		middleware.WriteError(w, r, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		middleware.WriteError(w, r, http.StatusMethodNotAllowed, "method not allowed")
	})

	h := &handlers{
		processor: s.deps.Processor,
		catalog:   s.deps.Catalog,
		version:   s.deps.Version,
		maxUpload: s.config.Server.MaxUploadBytes,
	}

	r.Get("/", h.root)
	r.Get("/models", h.models)
	r.Post("/analyze", h.analyze)
	r.Post("/compress", h.compress)
	r.Get("/version", health.VersionHandler(s.deps.Version))
	r.Get(s.config.Telemetry.Health.LivenessPath, s.deps.Health.LivenessHandler())
	r.Get(s.config.Telemetry.Health.ReadinessPath, s.deps.Health.ReadinessHandler())
	if s.deps.Metrics.Enabled() {
		r.Handle(s.config.Telemetry.Metrics.Path, s.deps.Metrics.Handler())
	}

	return otelhttp.NewHandler(r, "tokenscope",
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			return r.Method + " " + r.URL.Path
		}),
	)
}
