package ws

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	mathProvider "github.com/GriffinCanCode/SciCalc/backend/internal/providers/math"
	"github.com/GriffinCanCode/SciCalc/backend/internal/providers/math/evaluator"
	"github.com/GriffinCanCode/SciCalc/backend/internal/providers/math/expr"
	"github.com/GriffinCanCode/SciCalc/backend/internal/providers/math/plot"
	"github.com/GriffinCanCode/SciCalc/backend/internal/providers/theme"
	"github.com/GriffinCanCode/SciCalc/backend/internal/shared/types"
	"github.com/GriffinCanCode/SciCalc/backend/internal/shared/utils"
)

// sampleTimeout bounds one streamed sample run
const sampleTimeout = 30 * time.Second

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // CORS is handled by the HTTP middleware
	},
}

// Handler streams evaluations and sampled points over WebSocket
type Handler struct {
	calc   *mathProvider.Provider
	theme  *theme.Provider
	logger *zap.Logger
}

// NewHandler creates a new WebSocket handler
func NewHandler(calc *mathProvider.Provider, themes *theme.Provider, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		calc:   calc,
		theme:  themes,
		logger: logger.Named("ws"),
	}
}

// HandleConnection handles WebSocket upgrade and messages
func (h *Handler) HandleConnection(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("WebSocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	reqCtx := c.Request.Context()

	h.send(conn, map[string]interface{}{
		"type":    "system",
		"message": "Connected to calculator stream",
	})

	for {
		var msg types.StreamMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				h.logger.Debug("WebSocket read error", zap.Error(err))
			}
			return
		}

		var werr error
		switch msg.Type {
		case "evaluate":
			werr = h.handleEvaluate(conn, msg)
		case "sample":
			werr = h.handleSample(reqCtx, conn, msg)
		case "ping":
			werr = h.send(conn, map[string]interface{}{"type": "pong"})
		default:
			werr = h.sendError(conn, "unknown message type")
		}
		if werr != nil {
			h.logger.Debug("WebSocket write error", zap.Error(werr))
			return
		}
	}
}

func (h *Handler) handleEvaluate(conn *websocket.Conn, msg types.StreamMessage) error {
	unit, err := h.resolve(msg)
	if err != nil {
		return h.sendError(conn, err.Error())
	}

	opts := h.calc.Options()
	precision := opts.Precision
	if msg.Precision != nil {
		precision = *msg.Precision
	}
	if err := utils.ValidatePrecision(precision, opts.MaxPrecision); err != nil {
		return h.sendError(conn, err.Error())
	}

	out := h.calc.Evaluator().EvaluateOnce(msg.Expression, unit, precision)
	return h.send(conn, map[string]interface{}{
		"type":       "result",
		"expression": msg.Expression,
		"unit":       string(unit),
		"outcome":    out,
		"timestamp":  time.Now().Unix(),
	})
}

// handleSample sends sample_start, one point message per sample and then
// complete with the chart summary.
func (h *Handler) handleSample(reqCtx context.Context, conn *websocket.Conn, msg types.StreamMessage) error {
	unit, err := h.resolve(msg)
	if err != nil {
		return h.sendError(conn, err.Error())
	}

	if err := h.send(conn, map[string]interface{}{
		"type":       "sample_start",
		"expression": msg.Expression,
		"unit":       string(unit),
		"count":      len(evaluator.SampleXs(unit)),
		"timestamp":  time.Now().Unix(),
	}); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(reqCtx, sampleTimeout)
	defer cancel()

	var points []evaluator.Point
	err = h.calc.Evaluator().SampleEach(ctx, msg.Expression, unit, func(p evaluator.Point) error {
		points = append(points, p)
		return h.send(conn, map[string]interface{}{
			"type":  "point",
			"index": len(points) - 1,
			"point": p,
		})
	})
	if err != nil {
		if ctx.Err() != nil {
			return h.sendError(conn, err.Error())
		}
		return err
	}

	chart := plot.Build(msg.Expression, unit, h.theme.IsDark(), points)
	return h.send(conn, map[string]interface{}{
		"type":      "complete",
		"gaps":      chart.Gaps,
		"y_range":   chart.YRange,
		"palette":   plot.PaletteFor(h.theme.IsDark()),
		"timestamp": time.Now().Unix(),
	})
}

func (h *Handler) resolve(msg types.StreamMessage) (expr.Unit, error) {
	opts := h.calc.Options()
	if err := utils.ValidateExpression(msg.Expression, opts.MaxExpression); err != nil {
		return "", err
	}
	if msg.Unit == "" {
		return opts.Unit, nil
	}
	return expr.ParseUnit(msg.Unit)
}

func (h *Handler) send(conn *websocket.Conn, data interface{}) error {
	return conn.WriteJSON(data)
}

func (h *Handler) sendError(conn *websocket.Conn, msg string) error {
	return h.send(conn, map[string]interface{}{
		"type":      "error",
		"message":   msg,
		"timestamp": time.Now().Unix(),
	})
}
