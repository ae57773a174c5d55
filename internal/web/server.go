// Package web serves an HTTP preview of rendered profile READMEs.
package web

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/gorewood/readmegen/internal/readme"
)

const (
	maxBodyBytes    = 1 << 20
	shutdownTimeout = 5 * time.Second
)

// Config configures the preview server.
type Config struct {
	Addr      string
	CacheSize int
	IconSize  int
	// Registry receives the server metrics and backs /metrics. A fresh
	// registry is created when nil.
	Registry *prometheus.Registry
	// LogOutput receives the request log; nil means gin's default writer.
	LogOutput io.Writer
	Debug     bool
}

// Server is the HTTP preview server.
type Server struct {
	addr     string
	iconSize int
	engine   *gin.Engine
	cache    *renderCache
	metrics  *Metrics
}

// NewServer builds the gin engine and registers all routes.
func NewServer(cfg Config) (*Server, error) {
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	registry := cfg.Registry
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	metrics := MustNewMetrics(registry)

	cache, err := newRenderCache(cfg.CacheSize, metrics)
	if err != nil {
		return nil, err
	}

	iconSize := cfg.IconSize
	if iconSize <= 0 {
		iconSize = readme.DefaultIconSize
	}

	engine := gin.New()
	if cfg.LogOutput != nil {
		engine.Use(gin.LoggerWithWriter(cfg.LogOutput))
	} else {
		engine.Use(gin.Logger())
	}
	engine.Use(gin.Recovery())

	s := &Server{
		addr:     cfg.Addr,
		iconSize: iconSize,
		engine:   engine,
		cache:    cache,
		metrics:  metrics,
	}
	engine.Use(s.countRequests())
	s.routes(registry)
	return s, nil
}

func (s *Server) routes(registry *prometheus.Registry) {
	api := s.engine.Group("/api")
	api.Use(limitBody(maxBodyBytes))
	api.POST("/render", s.handleRender)
	api.POST("/readme.md", s.handleDownload)
	api.POST("/preview", s.handlePreview)
	api.GET("/schema", s.handleSchema)
	api.GET("/skills", s.handleSkills)
	api.GET("/socials", s.handleSocials)

	s.engine.GET("/healthz", s.handleHealth)
	s.engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
}

// Handler returns the server's http.Handler.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run listens on the configured address until ctx is done, then shuts down
// gracefully.
func (s *Server) Run(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              s.addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serving on %s: %w", s.addr, err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutting down: %w", err)
		}
		return nil
	}
}

// countRequests records every request by matched route and status.
func (s *Server) countRequests() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		s.metrics.observeRequest(route, strconv.Itoa(c.Writer.Status()))
	}
}

func limitBody(n int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, n)
		}
		c.Next()
	}
}
