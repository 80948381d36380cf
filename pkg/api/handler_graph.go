package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oklog/ulid/v2"

	"github.com/agx-dev/agx/pkg/graph"
)

// createGraphHandler handles POST /api/graphs: persists the submitted
// graph and enqueues its first tick.
func (s *Server) createGraphHandler(c *gin.Context) {
	var g graph.Graph
	if err := c.ShouldBindJSON(&g); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid graph: " + err.Error()})
		return
	}
	if len(g.Nodes) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "graph must have at least one node"})
		return
	}
	if g.ID == "" {
		g.ID = ulid.Make().String()
	}
	for id, node := range g.Nodes {
		if node.ID == "" {
			node.ID = id
		}
		if node.Status == "" {
			node.Status = graph.StatusPending
		}
	}

	created, err := s.graphs.CreateGraph(c.Request.Context(), &g)
	if err != nil {
		s.logger.Error("Failed to create graph", "graph_id", g.ID, "error", err)
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	if s.runtime != nil {
		if err := s.runtime.EnqueueTick(c.Request.Context(), created); err != nil {
			s.logger.Error("Failed to enqueue first tick", "graph_id", created.ID, "error", err)
		}
	}
	c.JSON(http.StatusCreated, created)
}

// getGraphHandler handles GET /api/graphs/:id.
func (s *Server) getGraphHandler(c *gin.Context) {
	g, err := s.graphs.GetGraph(c.Request.Context(), c.Param("id"))
	if errors.Is(err, graph.ErrGraphNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "graph not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, g)
}

// getGraphEventsHandler handles GET /api/graphs/:id/events.
func (s *Server) getGraphEventsHandler(c *gin.Context) {
	id := c.Param("id")
	if _, err := s.graphs.GetGraph(c.Request.Context(), id); errors.Is(err, graph.ErrGraphNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "graph not found"})
		return
	}
	events, err := s.graphs.GetEvents(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": events})
}

// completeNodeRequest is the POST .../nodes/:nodeId/complete body.
type completeNodeRequest struct {
	Status graph.NodeStatus `json:"status" binding:"required"`
	Output map[string]any   `json:"output"`
	Error  string           `json:"error"`
}

// completeNodeHandler records an external node result (a worker finishing
// or a human settling an awaiting_human gate) and triggers a tick.
func (s *Server) completeNodeHandler(c *gin.Context) {
	if s.runtime == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "graph runtime not running"})
		return
	}
	var req completeNodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}
	if !req.Status.Terminal() && req.Status != graph.StatusAwaitingHuman {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status must be terminal or awaiting_human"})
		return
	}

	err := s.runtime.CompleteNode(c.Request.Context(), c.Param("id"), c.Param("nodeId"), req.Status, req.Output, req.Error)
	if errors.Is(err, graph.ErrGraphNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "graph not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
