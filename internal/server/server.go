// Package server runs an http.Handler with graceful shutdown. The cu CLI uses
// it to serve the in-memory fake API for local development.
package server

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"go.uber.org/zap"
)

const (
	// DefaultAddress is the default address the server listens on.
	DefaultAddress = "localhost:7433"
	// DefaultShutdownTimeout is the default timeout for graceful shutdown.
	DefaultShutdownTimeout = 30 * time.Second
)

// Server manages the HTTP server lifecycle.
type Server struct {
	httpServer *http.Server
	log        *zap.SugaredLogger
	listener   net.Listener
	mu         sync.Mutex
	started    bool
}

// New creates a Server for handler.
// If addr is empty, DefaultAddress is used. A nil logger discards output.
func New(addr string, handler http.Handler, log *zap.SugaredLogger) *Server {
	if addr == "" {
		addr = DefaultAddress
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	return &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      handler,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		log: log,
	}
}

// Start starts the HTTP server and blocks until the server is shut down.
// It returns http.ErrServerClosed when the server is gracefully shut down.
func (s *Server) Start() error {
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		return nil
	}

	// Listen first so Addr reports the real port when addr ends in :0
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		s.mu.Unlock()
		return err
	}

	s.listener = ln
	s.started = true
	s.mu.Unlock()

	s.log.Infow("server listening", "addr", ln.Addr().String())

	return s.httpServer.Serve(ln)
}

// Shutdown gracefully shuts down the server without interrupting active connections.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	if !s.started {
		s.mu.Unlock()
		return nil
	}
	s.mu.Unlock()

	s.log.Info("shutting down server")

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}

	s.log.Info("server stopped")
	return nil
}

// Addr returns the address the server is listening on, or "" before Start.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return ""
}

// ListenAndServe starts the server and shuts it down on SIGINT, SIGTERM or
// when ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	errChan := make(chan error, 1)
	go func() {
		errChan <- s.Start()
	}()

	select {
	case err := <-errChan:
		return err
	case sig := <-sigChan:
		s.log.Infow("received signal", "signal", sig.String())
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), DefaultShutdownTimeout)
	defer cancel()

	return s.Shutdown(shutdownCtx)
}
