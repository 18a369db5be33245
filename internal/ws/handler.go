package ws

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/asymintervals/ain"
	"github.com/GriffinCanCode/asymintervals/internal/logging"
	"github.com/GriffinCanCode/asymintervals/internal/monitoring"
	"github.com/GriffinCanCode/asymintervals/internal/service"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins in dev
	},
}

// Message is one client frame.
type Message struct {
	Type     string                 `json:"type"`
	Interval []float64              `json:"interval,omitempty"`
	Count    int                    `json:"count,omitempty"`
	Seed     *int64                 `json:"seed,omitempty"`
	ToolID   string                 `json:"tool_id,omitempty"`
	Params   map[string]interface{} `json:"params,omitempty"`
}

// Handler manages WebSocket connections
type Handler struct {
	registry   *service.Registry
	metrics    *monitoring.Metrics
	logger     *logging.Logger
	maxSamples int
	batchSize  int
}

// NewHandler creates a new WebSocket handler. maxSamples bounds a
// single sampling request; batchSize is how many values each batch
// frame carries.
func NewHandler(registry *service.Registry, metrics *monitoring.Metrics, logger *logging.Logger, maxSamples, batchSize int) *Handler {
	if maxSamples <= 0 {
		maxSamples = 100000
	}
	if batchSize <= 0 {
		batchSize = 256
	}
	return &Handler{
		registry:   registry,
		metrics:    metrics,
		logger:     logger,
		maxSamples: maxSamples,
		batchSize:  batchSize,
	}
}

// HandleConnection handles WebSocket upgrade and messages
func (h *Handler) HandleConnection(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	h.metrics.IncWSConnections()
	defer h.metrics.DecWSConnections()

	// Get request context for propagation
	reqCtx := c.Request.Context()

	// Send welcome message
	h.send(conn, map[string]interface{}{
		"type":    "system",
		"message": "Connected to Asymmetric Interval Service (Go)",
	})

	// Listen for messages
	for {
		var msg Message
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				h.logger.Warn("websocket read error", zap.Error(err))
			}
			break
		}
		h.metrics.RecordWSMessage("in", msg.Type)

		switch msg.Type {
		case "sample":
			h.handleSample(conn, msg)
		case "execute":
			h.handleExecute(conn, msg, reqCtx)
		case "ping":
			h.send(conn, map[string]interface{}{"type": "pong"})
		default:
			h.sendError(conn, "unknown message type")
		}
	}
}

// handleSample streams draws from the requested distribution in batch
// frames, then a complete frame with the total.
func (h *Handler) handleSample(conn *websocket.Conn, msg Message) {
	x, err := ain.FromSlice(msg.Interval)
	if err != nil {
		h.sendError(conn, err.Error())
		return
	}
	if msg.Count <= 0 {
		h.sendError(conn, "count must be positive")
		return
	}
	if msg.Count > h.maxSamples {
		h.sendError(conn, fmt.Sprintf("count %d exceeds limit %d", msg.Count, h.maxSamples))
		return
	}

	var rng *rand.Rand
	if msg.Seed != nil {
		rng = rand.New(rand.NewSource(*msg.Seed))
	}

	for sent := 0; sent < msg.Count; sent += h.batchSize {
		n := h.batchSize
		if rest := msg.Count - sent; rest < n {
			n = rest
		}
		values := make([]float64, n)
		for i := range values {
			values[i] = x.Rand(rng)
		}
		if err := h.send(conn, map[string]interface{}{
			"type":   "batch",
			"index":  sent / h.batchSize,
			"values": values,
		}); err != nil {
			return
		}
	}

	h.metrics.AddSamples(msg.Count)
	h.send(conn, map[string]interface{}{
		"type":      "complete",
		"count":     msg.Count,
		"timestamp": time.Now().Unix(),
	})
}

// handleExecute runs a registry tool and answers with a result frame.
func (h *Handler) handleExecute(conn *websocket.Conn, msg Message, reqCtx context.Context) {
	if msg.ToolID == "" {
		h.sendError(conn, "tool_id required")
		return
	}

	ctx, cancel := context.WithTimeout(reqCtx, 30*time.Second)
	defer cancel()

	timer := monitoring.NewTimer(h.metrics, msg.ToolID)
	result, err := h.registry.Execute(ctx, msg.ToolID, msg.Params)
	if err != nil {
		timer.Stop("error")
		h.sendError(conn, err.Error())
		return
	}
	if result.Success {
		timer.Stop("success")
	} else {
		timer.Stop("failure")
	}

	h.send(conn, map[string]interface{}{
		"type":      "result",
		"tool_id":   msg.ToolID,
		"result":    result,
		"timestamp": time.Now().Unix(),
	})
}

func (h *Handler) send(conn *websocket.Conn, data map[string]interface{}) error {
	if t, ok := data["type"].(string); ok {
		h.metrics.RecordWSMessage("out", t)
	}
	return conn.WriteJSON(data)
}

func (h *Handler) sendError(conn *websocket.Conn, msg string) error {
	return h.send(conn, map[string]interface{}{
		"type":      "error",
		"message":   msg,
		"timestamp": time.Now().Unix(),
	})
}
