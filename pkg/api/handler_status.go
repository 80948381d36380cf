package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/agx-dev/agx/pkg/queue"
	"github.com/agx-dev/agx/pkg/version"
)

// StatusResponse is the GET /api/status body.
type StatusResponse struct {
	Version          string            `json:"version"`
	WorkerPool       *queue.PoolHealth `json:"worker_pool,omitempty"`
	InProgressGraphs int               `json:"in_progress_graphs"`
	Durable          bool              `json:"durable"`
}

// statusHandler handles GET /api/status with a fuller operational
// snapshot than /health.
func (s *Server) statusHandler(c *gin.Context) {
	resp := StatusResponse{
		Version: version.Full(),
		Durable: s.db != nil,
	}
	if s.pool != nil {
		resp.WorkerPool = s.pool.Health()
	}
	if s.graphs != nil {
		graphs, err := s.graphs.ListInProgressGraphs(c.Request.Context())
		if err != nil {
			s.logger.Error("Failed to list in-progress graphs", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to inspect graph store"})
			return
		}
		resp.InProgressGraphs = len(graphs)
	}
	c.JSON(http.StatusOK, resp)
}
