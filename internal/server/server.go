// Package server wires the HTTP router and owns the server lifecycle.
package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"url-shortener/internal/handler"
	"url-shortener/internal/middleware"
)

// Config holds server configuration.
type Config struct {
	Address         string
	ShutdownTimeout time.Duration
}

// Server represents the HTTP server.
type Server struct {
	cfg        Config
	httpServer *http.Server
	log        *zap.Logger
}

// New creates a Server routing to the given handlers, wrapped in
// request logging and permissive CORS.
func New(cfg Config, h *handler.Handler, log *zap.Logger) *Server {
	r := mux.NewRouter()

	r.HandleFunc("/", h.Health).Methods(http.MethodGet)
	r.HandleFunc("/api/health", h.APIHealth).Methods(http.MethodGet)
	r.HandleFunc("/api/shorten", h.Shorten).Methods(http.MethodPost)
	r.HandleFunc("/api/stats/{code}", h.Stats).Methods(http.MethodGet)
	r.HandleFunc("/{code}", h.Redirect).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(h.NotFound)
	r.MethodNotAllowedHandler = http.HandlerFunc(h.MethodNotAllowed)

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
	)

	return &Server{
		cfg: cfg,
		log: log,
		httpServer: &http.Server{
			Addr:         cfg.Address,
			Handler:      middleware.Logging(log)(cors(r)),
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// Handler returns the fully wrapped HTTP handler, for tests that drive
// the router through httptest without binding a port.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start starts the HTTP server. This method blocks until the server is
// stopped.
func (s *Server) Start() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// Run starts the server and blocks until a shutdown signal is received.
// It handles SIGINT and SIGTERM for graceful shutdown; cancelling the
// context also triggers shutdown.
func (s *Server) Run(ctx context.Context) error {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	errChan := make(chan error, 1)

	go func() {
		if err := s.Start(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	select {
	case <-sigChan:
		s.log.Info("shutdown signal received")
	case <-ctx.Done():
		s.log.Info("context cancelled, shutting down")
	case err := <-errChan:
		return fmt.Errorf("server error: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	return s.Shutdown(shutdownCtx)
}
