package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/GriffinCanCode/asymintervals/internal/monitoring"
	"github.com/GriffinCanCode/asymintervals/internal/service"
)

// Handlers contains all HTTP handlers
type Handlers struct {
	registry   *service.Registry
	metrics    *monitoring.Metrics
	maxSamples int
}

// NewHandlers creates a new handler set. maxSamples bounds the sample
// export endpoint.
func NewHandlers(registry *service.Registry, metrics *monitoring.Metrics, maxSamples int) *Handlers {
	return &Handlers{
		registry:   registry,
		metrics:    metrics,
		maxSamples: maxSamples,
	}
}

// ExecuteRequest is the body of POST /execute
type ExecuteRequest struct {
	ToolID string                 `json:"tool_id" binding:"required"`
	Params map[string]interface{} `json:"params"`
}

// Root handles health check
func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "online",
		"service": "Asymmetric Interval Service (Go)",
		"version": "1.0.0",
	})
}

// Health handles detailed health check
func (h *Handlers) Health(c *gin.Context) {
	snapshot := h.metrics.CurrentSnapshot()

	c.JSON(http.StatusOK, gin.H{
		"status":           "healthy",
		"service_registry": h.registry.Stats(),
		"uptime_seconds":   h.metrics.UptimeSeconds(),
		"requests": gin.H{
			"total":  snapshot.TotalRequests,
			"errors": snapshot.TotalErrors,
		},
	})
}

// ListTools lists available tools, optionally ranked against a query
func (h *Handlers) ListTools(c *gin.Context) {
	if q := c.Query("q"); q != "" {
		limit := 5
		if v, err := strconv.Atoi(c.Query("limit")); err == nil && v > 0 {
			limit = v
		}

		c.JSON(http.StatusOK, gin.H{
			"query":    q,
			"services": h.registry.Discover(q, limit),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"services": h.registry.List(nil),
		"stats":    h.registry.Stats(),
	})
}

// Execute executes a service tool
func (h *Handlers) Execute(c *gin.Context) {
	var req ExecuteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	timer := monitoring.NewTimer(h.metrics, req.ToolID)
	result, err := h.registry.Execute(c.Request.Context(), req.ToolID, req.Params)
	if err != nil {
		timer.Stop("error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if result.Success {
		timer.Stop("success")
	} else {
		timer.Stop("failure")
	}

	c.JSON(http.StatusOK, result)
}
