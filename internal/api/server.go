package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jonesrussell/siteleads/internal/config"
	"github.com/jonesrussell/siteleads/internal/logger"
)

const shutdownTimeout = 10 * time.Second

// Server runs the HTTP API with graceful shutdown.
type Server struct {
	cfg    config.ServerConfig
	log    logger.Interface
	router *gin.Engine
}

// NewServer creates an API server around a configured router.
func NewServer(cfg config.ServerConfig, log logger.Interface, router *gin.Engine) *Server {
	return &Server{
		cfg:    cfg,
		log:    log.WithComponent("api"),
		router: router,
	}
}

// Start listens until ctx is cancelled, then drains in-flight requests.
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.Address,
		Handler:      s.router,
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("Starting API server", "address", s.cfg.Address)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	s.log.Info("Stopping API server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	return nil
}
