// Package evaluator runs calculator expressions through the trig rewriter and
// the numeric engine, either once for display or across a fixed range of the
// plot variable.
package evaluator

import (
	"context"
	"fmt"
	gomath "math"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/SciCalc/backend/internal/providers/math/expr"
	"github.com/GriffinCanCode/SciCalc/backend/internal/providers/math/trig"
)

// Variable is the free variable substituted while sampling
const Variable = "x"

// Engine is the numeric evaluation capability
type Engine interface {
	Evaluate(text string) (float64, error)
	ConvertAngleUnit(value float64, from, to expr.Unit) float64
	Round(value float64, digits int) float64
}

// Evaluator is stateless apart from its collaborators and safe for concurrent use
type Evaluator struct {
	engine   Engine
	rewriter *trig.Rewriter
	logger   *zap.Logger
}

// New creates an evaluator. A nil logger disables logging.
func New(engine Engine, logger *zap.Logger) *Evaluator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Evaluator{
		engine:   engine,
		rewriter: trig.NewRewriter(engine),
		logger:   logger.Named("evaluator"),
	}
}

// Rewrite exposes the trig rewriting step
func (e *Evaluator) Rewrite(expression string, unit expr.Unit) string {
	return e.rewriter.Rewrite(expression, unit)
}

// EvaluateOnce evaluates expression to a single value rounded to precision
// decimal places.
func (e *Evaluator) EvaluateOnce(expression string, unit expr.Unit, precision int) Outcome {
	if precision < 0 {
		return Failed(fmt.Sprintf("precision must be non-negative, got %d", precision))
	}

	rewritten := e.rewriter.Rewrite(expression, unit)
	value, err := e.engine.Evaluate(rewritten)
	if err != nil {
		e.logger.Debug("evaluation failed",
			zap.String("expression", expression),
			zap.String("rewritten", rewritten),
			zap.Error(err),
		)
		return Failed(err.Error())
	}

	if gomath.IsNaN(value) || gomath.IsInf(value, 0) {
		e.logger.Debug("evaluation undefined",
			zap.String("expression", expression),
			zap.String("rewritten", rewritten),
		)
		return Undefined()
	}

	rounded := e.engine.Round(value, precision)
	e.logger.Debug("evaluated",
		zap.String("expression", expression),
		zap.String("unit", string(unit)),
		zap.Float64("result", rounded),
	)
	return Number(rounded)
}

// Sample evaluates expression at every point of the unit's sample range.
// Points that fail are NaN; the sequence always covers the whole range in
// ascending x order and is recomputed on each call.
func (e *Evaluator) Sample(expression string, unit expr.Unit) []Point {
	points, _ := e.SampleContext(context.Background(), expression, unit)
	return points
}

// SampleContext is Sample with cancellation between points. On cancellation it
// returns the points computed so far and the context error.
func (e *Evaluator) SampleContext(ctx context.Context, expression string, unit expr.Unit) ([]Point, error) {
	points := make([]Point, 0, len(SampleXs(unit)))
	err := e.SampleEach(ctx, expression, unit, func(p Point) error {
		points = append(points, p)
		return nil
	})
	return points, err
}

// SampleEach computes the same points as Sample and hands each one to fn in
// ascending x order. It stops at the first error from fn or the context.
func (e *Evaluator) SampleEach(ctx context.Context, expression string, unit expr.Unit, fn func(Point) error) error {
	start := time.Now()
	xs := SampleXs(unit)
	gaps := 0

	for _, x := range xs {
		if err := ctx.Err(); err != nil {
			return err
		}
		y := e.point(expression, unit, x)
		if gomath.IsNaN(y) {
			gaps++
		}
		if err := fn(Point{X: x, Y: y}); err != nil {
			return err
		}
	}

	e.logger.Debug("sampled",
		zap.String("expression", expression),
		zap.String("unit", string(unit)),
		zap.Int("points", len(xs)),
		zap.Int("gaps", gaps),
		zap.Duration("duration", time.Since(start)),
	)
	return nil
}

func (e *Evaluator) point(expression string, unit expr.Unit, x float64) float64 {
	substituted := strings.ReplaceAll(expression, Variable, expr.FormatNumber(x))
	y, err := e.engine.Evaluate(e.rewriter.Rewrite(substituted, unit))
	if err != nil || gomath.IsInf(y, 0) {
		return gomath.NaN()
	}
	return y
}

// SampleRange returns the inclusive range and step used for unit
func SampleRange(unit expr.Unit) (lo, hi, step float64) {
	if unit == expr.Degrees {
		return -360, 360, 5
	}
	return -2 * gomath.Pi, 2 * gomath.Pi, 0.1
}

// SampleXs lists the sample positions for unit: ceil((hi-lo)/step)+1 values
// from lo in fixed steps, with the last one clamped to hi.
func SampleXs(unit expr.Unit) []float64 {
	lo, hi, step := SampleRange(unit)
	n := int(gomath.Ceil((hi-lo)/step)) + 1

	xs := make([]float64, n)
	for i := range xs {
		xs[i] = gomath.Min(lo+float64(i)*step, hi)
	}
	xs[n-1] = hi
	return xs
}

// ContainsVariable reports whether expression should be plotted
func ContainsVariable(expression string) bool {
	return strings.Contains(expression, Variable)
}
