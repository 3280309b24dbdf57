package server

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"gamegraph/internal/config"
)

// Slow clients get this long to finish sending headers.
const readHeaderTimeout = 5 * time.Second

// Server owns the lifecycle of the HTTP listener.
type Server struct {
	inner  *http.Server
	logger *slog.Logger
}

// New wires the handler into an http.Server with the configured address and
// timeouts.
func New(logger *slog.Logger, cfg config.HTTPConfig, handler http.Handler) *Server {
	return &Server{
		inner: &http.Server{
			Addr:              net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
			Handler:           handler,
			ReadTimeout:       cfg.ReadTimeout,
			WriteTimeout:      cfg.WriteTimeout,
			IdleTimeout:       cfg.IdleTimeout,
			ReadHeaderTimeout: readHeaderTimeout,
		},
		logger: logger,
	}
}

// Start serves HTTP until the listener stops. A graceful shutdown is not
// reported as an error.
func (s *Server) Start() error {
	s.logger.Info("http server listening", "addr", s.inner.Addr)
	if err := s.inner.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown stops accepting new connections and drains in-flight requests
// until ctx expires.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("http server stopping")
	return s.inner.Shutdown(ctx)
}
