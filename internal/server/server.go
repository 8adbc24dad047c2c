package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pageza/alchemorsel-chat/backend/config"
)

// Server represents the HTTP server
type Server struct {
	http   *http.Server
	logger *slog.Logger
}

// New creates a new server instance serving router on cfg.Address()
func New(cfg *config.Config, router *gin.Engine, logger *slog.Logger) *Server {
	return &Server{
		logger: logger,
		http: &http.Server{
			Addr:              cfg.Address(),
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
			IdleTimeout:       120 * time.Second,
		},
	}
}

// Start listens and serves until the server is shut down. A clean shutdown returns nil.
func (s *Server) Start() error {
	s.logger.Info("starting server", "addr", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down server")
	return s.http.Shutdown(ctx)
}
