// Package api exposes the daemon's local HTTP surface: health and status
// probes plus the execution-graph endpoints.
package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/agx-dev/agx/pkg/database"
	"github.com/agx-dev/agx/pkg/graph"
	"github.com/agx-dev/agx/pkg/queue"
)

// Server is the daemon's HTTP API.
type Server struct {
	pool       *queue.WorkerPool
	graphs     graph.Store
	runtime    *graph.Runtime
	db         *database.Client // nil when running without PostgreSQL
	logger     *slog.Logger
	httpServer *http.Server
}

// NewServer creates the API server. db may be nil.
func NewServer(pool *queue.WorkerPool, graphs graph.Store, runtime *graph.Runtime, db *database.Client) *Server {
	return &Server{
		pool:    pool,
		graphs:  graphs,
		runtime: runtime,
		db:      db,
		logger:  slog.Default().With("component", "api"),
	}
}

// Routes builds the gin engine with all endpoints registered.
func (s *Server) Routes() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), requestID())

	router.GET("/health", s.healthHandler)
	router.GET("/api/status", s.statusHandler)

	graphs := router.Group("/api/graphs")
	{
		graphs.POST("", s.createGraphHandler)
		graphs.GET("/:id", s.getGraphHandler)
		graphs.GET("/:id/events", s.getGraphEventsHandler)
		graphs.POST("/:id/nodes/:nodeId/complete", s.completeNodeHandler)
	}
	return router
}

// requestID tags every request with an X-Request-ID header, honoring one
// supplied by the caller, so daemon log lines can be correlated.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

// Start serves the API on addr until Shutdown.
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	s.logger.Info("API server listening", "addr", addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("api server failed: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
