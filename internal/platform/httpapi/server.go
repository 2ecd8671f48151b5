// Package httpapi serves vendor stock as JSON over HTTP.
package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/vovakirdan/valleyseer/internal/catalog"
	"github.com/vovakirdan/valleyseer/internal/config"
	"github.com/vovakirdan/valleyseer/internal/storage"
)

// Config holds configuration for the HTTP server.
type Config struct {
	// Address is the host:port to listen on (e.g., ":8080").
	Address string

	// Catalog is shared read-only by every request.
	Catalog *catalog.Catalog

	// Defaults is the configuration layer under every request. Saved
	// profiles and query parameters are merged on top.
	Defaults config.File

	// Store holds saved profiles. Optional.
	Store *storage.Store

	// Logger receives request logs. A default is created if nil.
	Logger *log.Logger
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() Config {
	return Config{Address: ":8080"}
}

// Server is the JSON API.
type Server struct {
	config Config
	router *gin.Engine
	logger *log.Logger
}

// New creates a server and registers its routes.
func New(cfg Config) (*Server, error) {
	if cfg.Catalog == nil {
		return nil, errors.New("httpapi: server needs a catalog")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "valleyseer-api",
		})
	}

	s := &Server{
		config: cfg,
		router: gin.New(),
		logger: logger,
	}
	s.router.Use(gin.Recovery(), s.requestLogger())
	s.routes()
	return s, nil
}

func (s *Server) routes() {
	api := s.router.Group("/api")
	api.GET("/health", s.health)
	api.GET("/vendors", s.listVendors)
	api.GET("/vendors/:id", s.getVendor)
	api.GET("/vendors/:id/stock", s.getStock)
	api.GET("/calendar/:date", s.getDate)
	api.GET("/profiles", s.listProfiles)
}

// requestLogger logs one line per request.
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe starts the HTTP server and blocks until shutdown.
func (s *Server) ListenAndServe() error {
	srv := &http.Server{
		Addr:              s.config.Address,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	s.logger.Info("starting HTTP server", "address", s.config.Address)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	errc := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
	}()

	select {
	case err := <-errc:
		return fmt.Errorf("httpapi: %w", err)
	case <-done:
	}

	s.logger.Info("shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *Server) Addr() string {
	return s.config.Address
}
