// Package server exposes the /news proxy in front of the GNews search API.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Chackochi310/News/internal/feed"
	"github.com/Chackochi310/News/internal/logger"
)

const (
	defaultReadTimeout     = 15 * time.Second
	defaultWriteTimeout    = 30 * time.Second
	defaultIdleTimeout     = 120 * time.Second
	defaultShutdownTimeout = 5 * time.Second
)

// Searcher returns the raw upstream body for a query.
type Searcher interface {
	Search(ctx context.Context, q feed.Query) ([]byte, error)
}

type Options struct {
	Addr           string
	AllowedOrigins []string
	Debug          bool
}

type Server struct {
	opts     Options
	upstream Searcher
	log      logger.Logger
	metrics  *Metrics
	router   *gin.Engine
}

func New(opts Options, upstream Searcher, log logger.Logger) *Server {
	if opts.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		opts:     opts,
		upstream: upstream,
		log:      log,
		metrics:  NewMetrics(),
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(LoggerMiddleware(log))
	r.Use(s.metrics.Middleware())
	r.Use(corsMiddleware(opts.AllowedOrigins))

	r.GET("/health", s.health)
	r.GET("/news", s.news)
	r.GET("/metrics", gin.WrapH(s.metrics.Handler()))

	s.router = r
	return s
}

func (s *Server) Handler() http.Handler { return s.router }

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.opts.Addr,
		Handler:      s.router,
		ReadTimeout:  defaultReadTimeout,
		WriteTimeout: defaultWriteTimeout,
		IdleTimeout:  defaultIdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("Proxy listening", logger.String("addr", s.opts.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listening on %s: %w", s.opts.Addr, err)
		}
		return nil
	case <-ctx.Done():
	}

	s.log.Info("Shutting down proxy")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), defaultShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	return nil
}
