package admin

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"ledger-engine/internal/pkg/logging"
)

// Server is the admin HTTP surface for the lifetime of one engine run.
type Server struct {
	router *gin.Engine
	http   *http.Server
	log    *logging.Logger
}

// New builds a Server bound to addr, exposing /healthz and /metrics.
func New(addr string, log *logging.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), CORS())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return &Server{
		router: router,
		log:    log,
		http: &http.Server{
			Addr:         addr,
			Handler:      router,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// Start serves in the background; errors other than a clean shutdown
// are logged, not fatal — the admin surface never blocks the run it
// instruments.
func (s *Server) Start() {
	go func() {
		s.log.Info("admin surface listening", map[string]interface{}{"address": s.http.Addr})
		if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.log.Error("admin surface failed", err, nil)
		}
	}()
}

// Shutdown stops the server, bounded by ctx.
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.http.Shutdown(ctx); err != nil {
		return fmt.Errorf("admin surface shutdown: %w", err)
	}
	return nil
}
