package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/SciCalc/backend/internal/domain/history"
	"github.com/GriffinCanCode/SciCalc/backend/internal/providers/math/evaluator"
	"github.com/GriffinCanCode/SciCalc/backend/internal/providers/math/expr"
	"github.com/GriffinCanCode/SciCalc/backend/internal/providers/math/plot"
	"github.com/GriffinCanCode/SciCalc/backend/internal/shared/types"
	"github.com/GriffinCanCode/SciCalc/backend/internal/shared/utils"
)

// UndefinedWarning is shown when an expression has no finite value
const UndefinedWarning = "Value is undefined"

// Calculate evaluates an expression once. Expressions mentioning x are also
// plotted, whatever the single-value outcome.
func (h *Handlers) Calculate(c *gin.Context) {
	var req types.CalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	unit, ok := h.parseInput(c, req.Expression, req.Unit)
	if !ok {
		return
	}

	opts := h.calc.Options()
	precision := opts.Precision
	if req.Precision != nil {
		precision = *req.Precision
	}
	if err := utils.ValidatePrecision(precision, opts.MaxPrecision); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	var out evaluator.Outcome
	h.trace(ctx, "evaluate", func(context.Context) error {
		out = h.calc.Evaluator().EvaluateOnce(req.Expression, unit, precision)
		return nil
	})
	h.metrics.RecordEvaluation(string(out.Kind), string(unit))

	body := gin.H{
		"expression": req.Expression,
		"unit":       string(unit),
		"precision":  precision,
		"outcome":    out,
	}
	status := http.StatusOK

	switch out.Kind {
	case evaluator.KindNumber:
		body["result"] = out.Value
		entry := history.Entry{
			Expression: req.Expression,
			Unit:       string(unit),
			Precision:  precision,
			Result:     out.Value,
		}
		body["display"] = entry.String()
		if saved, err := h.history.Append(ctx, entry); err != nil {
			h.logger.Error("failed to record history", zap.String("expression", req.Expression), zap.Error(err))
		} else {
			h.metrics.IncHistoryAppends()
			body["history"] = saved
		}
	case evaluator.KindUndefined:
		body["warning"] = UndefinedWarning
	default:
		body["error"] = "Error: " + out.Message
		status = http.StatusUnprocessableEntity
	}

	if evaluator.ContainsVariable(req.Expression) {
		chart, err := h.chart(ctx, req.Expression, unit)
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
			return
		}
		body["chart"] = chart
	}

	c.JSON(status, body)
}

// Plot samples an expression in x and returns its chart
func (h *Handlers) Plot(c *gin.Context) {
	var req types.PlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	unit, ok := h.parseInput(c, req.Expression, req.Unit)
	if !ok {
		return
	}

	chart, err := h.chart(c.Request.Context(), req.Expression, unit)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"expression": req.Expression,
		"unit":       string(unit),
		"chart":      chart,
	})
}

// Rewrite returns the expression with its trig calls replaced by values
func (h *Handlers) Rewrite(c *gin.Context) {
	var req types.RewriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	unit, ok := h.parseInput(c, req.Expression, req.Unit)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"expression": req.Expression,
		"unit":       string(unit),
		"rewritten":  h.calc.Evaluator().Rewrite(req.Expression, unit),
	})
}

// parseInput validates the expression and resolves the unit, writing a 400
// response when either is invalid.
func (h *Handlers) parseInput(c *gin.Context, expression, rawUnit string) (expr.Unit, bool) {
	opts := h.calc.Options()
	if err := utils.ValidateExpression(expression, opts.MaxExpression); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return "", false
	}
	if rawUnit == "" {
		return opts.Unit, true
	}
	unit, err := expr.ParseUnit(rawUnit)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return "", false
	}
	return unit, true
}

func (h *Handlers) chart(ctx context.Context, expression string, unit expr.Unit) (plot.Chart, error) {
	var points []evaluator.Point
	start := time.Now()
	err := h.trace(ctx, "sample", func(ctx context.Context) error {
		var err error
		points, err = h.calc.Evaluator().SampleContext(ctx, expression, unit)
		return err
	})
	if err != nil {
		return plot.Chart{}, err
	}

	chart := plot.Build(expression, unit, h.theme.IsDark(), points)
	h.metrics.RecordSample(string(unit), time.Since(start), chart.Gaps)
	return chart, nil
}

func (h *Handlers) trace(ctx context.Context, name string, fn func(context.Context) error) error {
	if h.tracer == nil {
		return fn(ctx)
	}
	return h.tracer.Trace(ctx, name, fn)
}
