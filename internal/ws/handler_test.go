package ws

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/asymintervals/internal/logging"
	"github.com/GriffinCanCode/asymintervals/internal/monitoring"
	"github.com/GriffinCanCode/asymintervals/internal/providers/interval"
	"github.com/GriffinCanCode/asymintervals/internal/service"
)

func newTestHandler(t *testing.T, maxSamples, batchSize int) *Handler {
	t.Helper()
	registry := service.NewRegistry()
	require.NoError(t, registry.Register(interval.NewProvider(maxSamples)))
	return NewHandler(registry, monitoring.New(), logging.NewNop(), maxSamples, batchSize)
}

// dial starts a test server around the handler and opens a client
// connection. The welcome frame is left unread.
func dial(t *testing.T, h *Handler) *websocket.Conn {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/stream", h.HandleConnection)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/stream"
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	if resp != nil {
		resp.Body.Close()
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readFrame(t *testing.T, conn *websocket.Conn) map[string]interface{} {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var frame map[string]interface{}
	require.NoError(t, conn.ReadJSON(&frame))
	return frame
}

func TestConnectSendsWelcome(t *testing.T) {
	conn := dial(t, newTestHandler(t, 1000, 8))

	welcome := readFrame(t, conn)
	assert.Equal(t, "system", welcome["type"])
	assert.Contains(t, welcome["message"].(string), "Asymmetric Interval Service")
}

func TestPing(t *testing.T) {
	conn := dial(t, newTestHandler(t, 1000, 8))
	readFrame(t, conn) // welcome

	require.NoError(t, conn.WriteJSON(Message{Type: "ping"}))
	assert.Equal(t, "pong", readFrame(t, conn)["type"])
}

func TestSampleBatching(t *testing.T) {
	conn := dial(t, newTestHandler(t, 1000, 8))
	readFrame(t, conn)

	require.NoError(t, conn.WriteJSON(Message{
		Type:     "sample",
		Interval: []float64{0, 10, 2},
		Count:    20,
	}))

	// 20 values in batches of 8 arrive as 8, 8, 4.
	total := 0
	for i, want := range []int{8, 8, 4} {
		frame := readFrame(t, conn)
		require.Equal(t, "batch", frame["type"])
		assert.Equal(t, float64(i), frame["index"])

		values := frame["values"].([]interface{})
		require.Len(t, values, want)
		for _, v := range values {
			x := v.(float64)
			assert.GreaterOrEqual(t, x, 0.0)
			assert.Less(t, x, 10.0)
		}
		total += len(values)
	}
	assert.Equal(t, 20, total)

	done := readFrame(t, conn)
	assert.Equal(t, "complete", done["type"])
	assert.Equal(t, float64(20), done["count"])
}

func TestSampleSeedDeterminism(t *testing.T) {
	conn := dial(t, newTestHandler(t, 1000, 16))
	readFrame(t, conn)

	collect := func() []float64 {
		seed := int64(7)
		require.NoError(t, conn.WriteJSON(Message{
			Type:     "sample",
			Interval: []float64{2, 8, 5},
			Count:    10,
			Seed:     &seed,
		}))
		var values []float64
		for {
			frame := readFrame(t, conn)
			if frame["type"] == "complete" {
				return values
			}
			require.Equal(t, "batch", frame["type"])
			for _, v := range frame["values"].([]interface{}) {
				values = append(values, v.(float64))
			}
		}
	}

	first := collect()
	second := collect()
	require.Len(t, first, 10)
	assert.Equal(t, first, second)
}

func TestSampleRejectsBadRequests(t *testing.T) {
	conn := dial(t, newTestHandler(t, 100, 8))
	readFrame(t, conn)

	tests := []struct {
		name string
		msg  Message
		want string
	}{
		{"inverted bounds", Message{Type: "sample", Interval: []float64{5, 1}, Count: 10}, "exceeds"},
		{"wrong arity", Message{Type: "sample", Interval: []float64{1}, Count: 10}, "2 or 3"},
		{"zero count", Message{Type: "sample", Interval: []float64{0, 10, 2}, Count: 0}, "positive"},
		{"over limit", Message{Type: "sample", Interval: []float64{0, 10, 2}, Count: 101}, "limit"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, conn.WriteJSON(tt.msg))
			frame := readFrame(t, conn)
			assert.Equal(t, "error", frame["type"])
			assert.Contains(t, frame["message"].(string), tt.want)
		})
	}
}

func TestExecuteTool(t *testing.T) {
	conn := dial(t, newTestHandler(t, 1000, 8))
	readFrame(t, conn)

	require.NoError(t, conn.WriteJSON(Message{
		Type:   "execute",
		ToolID: "interval.add",
		Params: map[string]interface{}{
			"a": []interface{}{0.0, 10.0, 2.0},
			"b": []interface{}{2.0, 8.0, 5.0},
		},
	}))

	frame := readFrame(t, conn)
	require.Equal(t, "result", frame["type"])
	assert.Equal(t, "interval.add", frame["tool_id"])

	result := frame["result"].(map[string]interface{})
	require.Equal(t, true, result["success"])
	data := result["data"].(map[string]interface{})
	assert.Equal(t, []interface{}{2.0, 18.0, 7.0}, data["interval"])
}

func TestExecuteToolFailure(t *testing.T) {
	conn := dial(t, newTestHandler(t, 1000, 8))
	readFrame(t, conn)

	require.NoError(t, conn.WriteJSON(Message{Type: "execute", ToolID: "interval.bogus"}))

	frame := readFrame(t, conn)
	require.Equal(t, "result", frame["type"])
	result := frame["result"].(map[string]interface{})
	assert.Equal(t, false, result["success"])
	assert.Contains(t, result["error"].(string), "unknown tool")
}

func TestExecuteUnknownService(t *testing.T) {
	conn := dial(t, newTestHandler(t, 1000, 8))
	readFrame(t, conn)

	require.NoError(t, conn.WriteJSON(Message{Type: "execute", ToolID: "nope.add"}))

	frame := readFrame(t, conn)
	assert.Equal(t, "error", frame["type"])
	assert.Contains(t, frame["message"].(string), "not found")
}

func TestExecuteMissingToolID(t *testing.T) {
	conn := dial(t, newTestHandler(t, 1000, 8))
	readFrame(t, conn)

	require.NoError(t, conn.WriteJSON(Message{Type: "execute"}))

	frame := readFrame(t, conn)
	assert.Equal(t, "error", frame["type"])
	assert.Contains(t, frame["message"].(string), "tool_id")
}

func TestUnknownMessageType(t *testing.T) {
	conn := dial(t, newTestHandler(t, 1000, 8))
	readFrame(t, conn)

	require.NoError(t, conn.WriteJSON(Message{Type: "shout"}))

	frame := readFrame(t, conn)
	assert.Equal(t, "error", frame["type"])
	assert.Equal(t, "unknown message type", frame["message"])
}
