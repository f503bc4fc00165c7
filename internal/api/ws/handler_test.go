package ws

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	mathProvider "github.com/GriffinCanCode/SciCalc/backend/internal/providers/math"
	"github.com/GriffinCanCode/SciCalc/backend/internal/providers/theme"
	"github.com/GriffinCanCode/SciCalc/backend/internal/shared/types"
)

func dial(t *testing.T) *websocket.Conn {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger := zaptest.NewLogger(t)

	themes := theme.NewProvider(context.Background(), nil, logger)
	h := NewHandler(mathProvider.NewProvider(mathProvider.DefaultOptions(), logger), themes, logger)

	router := gin.New()
	router.GET("/stream", h.HandleConnection)
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/stream", nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	welcome := read(t, conn)
	require.Equal(t, "system", welcome["type"])
	return conn
}

func read(t *testing.T, conn *websocket.Conn) map[string]interface{} {
	t.Helper()
	var msg map[string]interface{}
	require.NoError(t, conn.ReadJSON(&msg))
	return msg
}

func TestEvaluate(t *testing.T) {
	conn := dial(t)

	require.NoError(t, conn.WriteJSON(types.StreamMessage{Type: "evaluate", Expression: "sin(30)*2"}))
	msg := read(t, conn)
	assert.Equal(t, "result", msg["type"])
	outcome := msg["outcome"].(map[string]interface{})
	assert.Equal(t, "number", outcome["kind"])
	assert.Equal(t, 1.0, outcome["value"])

	bad := -1
	require.NoError(t, conn.WriteJSON(types.StreamMessage{Type: "evaluate", Expression: "1", Precision: &bad}))
	assert.Equal(t, "error", read(t, conn)["type"])
}

func TestSampleStream(t *testing.T) {
	conn := dial(t)

	require.NoError(t, conn.WriteJSON(types.StreamMessage{Type: "sample", Expression: "1/x", Unit: "deg"}))
	start := read(t, conn)
	require.Equal(t, "sample_start", start["type"])
	require.Equal(t, 145.0, start["count"])

	var xs []float64
	for i := 0; i < 145; i++ {
		msg := read(t, conn)
		require.Equal(t, "point", msg["type"])
		assert.Equal(t, float64(i), msg["index"])
		p := msg["point"].(map[string]interface{})
		xs = append(xs, p["x"].(float64))
		if p["x"].(float64) == 0 {
			assert.Nil(t, p["y"])
		}
	}
	assert.Equal(t, -360.0, xs[0])
	assert.Equal(t, 360.0, xs[144])

	done := read(t, conn)
	assert.Equal(t, "complete", done["type"])
	assert.Equal(t, 1.0, done["gaps"])
}

func TestPingAndUnknown(t *testing.T) {
	conn := dial(t)

	require.NoError(t, conn.WriteJSON(types.StreamMessage{Type: "ping"}))
	assert.Equal(t, "pong", read(t, conn)["type"])

	require.NoError(t, conn.WriteJSON(types.StreamMessage{Type: "chat"}))
	msg := read(t, conn)
	assert.Equal(t, "error", msg["type"])
	assert.Equal(t, "unknown message type", msg["message"])

	require.NoError(t, conn.WriteJSON(types.StreamMessage{Type: "sample", Expression: "x", Unit: "grad"}))
	assert.Equal(t, "error", read(t, conn)["type"])
}
