package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/cors"
	"github.com/sirupsen/logrus"

	"github.com/eslsoft/lingua/internal/infrastructure/config"
)

// Server wraps the HTTP listener serving the JSON API.
type Server struct {
	httpServer *http.Server
	logger     *logrus.Logger
}

// NewServer builds the application server around the API handler.
func NewServer(cfg *config.Config, logger *logrus.Logger, api http.Handler) *Server {
	handler := cors.New(cors.Options{
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type", "X-User-Id"},
	}).Handler(requestLogging(logger, api))

	return &Server{
		httpServer: &http.Server{
			Addr:              cfg.ServerAddr(),
			Handler:           handler,
			ReadHeaderTimeout: 5 * time.Second,
		},
		logger: logger,
	}
}

// Start serves until the listener closes.
func (s *Server) Start() error {
	s.logger.Infof("HTTP server starting on %s", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("serve http: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests and stops the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down server")
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	return nil
}
