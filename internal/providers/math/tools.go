package math

import (
	"context"
	"fmt"
	"strings"

	"github.com/GriffinCanCode/SciCalc/backend/internal/providers/math/common"
	"github.com/GriffinCanCode/SciCalc/backend/internal/providers/math/evaluator"
	"github.com/GriffinCanCode/SciCalc/backend/internal/providers/math/expr"
	"github.com/GriffinCanCode/SciCalc/backend/internal/providers/math/plot"
	"github.com/GriffinCanCode/SciCalc/backend/internal/shared/types"
)

var (
	expressionParam = types.Parameter{Name: "expression", Type: "string", Description: "Expression to evaluate", Required: true}
	unitParam       = types.Parameter{Name: "unit", Type: "string", Description: "Angle unit: deg or rad", Required: false}
)

func tools() []types.Tool {
	return []types.Tool{
		{
			ID:          "math.evaluate",
			Name:        "Evaluate",
			Description: "Evaluate an expression and round the result",
			Parameters: []types.Parameter{
				expressionParam,
				unitParam,
				{Name: "precision", Type: "number", Description: "Decimal places to round to", Required: false},
			},
			Returns: "object",
		},
		{
			ID:          "math.sample",
			Name:        "Sample",
			Description: "Evaluate an expression in x across the unit's sample range",
			Parameters:  []types.Parameter{expressionParam, unitParam},
			Returns:     "array",
		},
		{
			ID:          "math.rewrite",
			Name:        "Rewrite",
			Description: "Replace trig calls with their evaluated values",
			Parameters:  []types.Parameter{expressionParam, unitParam},
			Returns:     "string",
		},
		{
			ID:          "math.plot",
			Name:        "Plot",
			Description: "Build a line chart of an expression in x",
			Parameters: []types.Parameter{
				expressionParam,
				unitParam,
				{Name: "theme", Type: "string", Description: "Chart colors: light or dark", Required: false},
			},
			Returns: "object",
		},
	}
}

func (p *Provider) evaluate(_ context.Context, params map[string]interface{}, _ *types.Context) (*types.Result, error) {
	expression, unit, msg := p.args(params)
	if msg != "" {
		return common.Failure(msg)
	}

	precision, present, err := common.GetInt(params, "precision")
	if err != nil {
		return common.Failure(err.Error())
	}
	if !present {
		precision = p.opts.Precision
	}
	if precision < 0 || precision > p.opts.MaxPrecision {
		return common.Failure(fmt.Sprintf("precision must be between 0 and %d", p.opts.MaxPrecision))
	}

	out := p.eval.EvaluateOnce(expression, unit, precision)
	data := map[string]interface{}{
		"expression": expression,
		"unit":       string(unit),
		"precision":  precision,
		"kind":       string(out.Kind),
		"display":    out.String(),
	}
	switch out.Kind {
	case evaluator.KindNumber:
		data["value"] = out.Value
	case evaluator.KindError:
		return common.Failure(out.Message)
	default:
		data["message"] = out.Message
	}
	return common.Success(data)
}

func (p *Provider) sample(ctx context.Context, params map[string]interface{}, _ *types.Context) (*types.Result, error) {
	expression, unit, msg := p.args(params)
	if msg != "" {
		return common.Failure(msg)
	}

	points, err := p.eval.SampleContext(ctx, expression, unit)
	if err != nil {
		return nil, err
	}
	return common.Success(map[string]interface{}{
		"expression": expression,
		"unit":       string(unit),
		"points":     points,
		"count":      len(points),
	})
}

func (p *Provider) rewrite(_ context.Context, params map[string]interface{}, _ *types.Context) (*types.Result, error) {
	expression, unit, msg := p.args(params)
	if msg != "" {
		return common.Failure(msg)
	}

	return common.Success(map[string]interface{}{
		"expression": expression,
		"unit":       string(unit),
		"rewritten":  p.eval.Rewrite(expression, unit),
	})
}

func (p *Provider) plot(ctx context.Context, params map[string]interface{}, _ *types.Context) (*types.Result, error) {
	expression, unit, msg := p.args(params)
	if msg != "" {
		return common.Failure(msg)
	}

	dark := false
	if theme, ok := common.GetString(params, "theme"); ok {
		switch strings.ToLower(theme) {
		case "dark":
			dark = true
		case "light", "":
		default:
			return common.Failure(fmt.Sprintf("invalid theme: %s", theme))
		}
	}

	points, err := p.eval.SampleContext(ctx, expression, unit)
	if err != nil {
		return nil, err
	}
	return common.Success(map[string]interface{}{
		"chart": plot.Build(expression, unit, dark, points),
	})
}

// args extracts the expression and unit shared by every tool
func (p *Provider) args(params map[string]interface{}) (string, expr.Unit, string) {
	expression, ok := common.GetString(params, "expression")
	if !ok || strings.TrimSpace(expression) == "" {
		return "", "", "expression parameter required"
	}
	if p.opts.MaxExpression > 0 && len(expression) > p.opts.MaxExpression {
		return "", "", fmt.Sprintf("expression exceeds %d characters", p.opts.MaxExpression)
	}

	unit := p.opts.Unit
	if raw, ok := common.GetString(params, "unit"); ok && raw != "" {
		parsed, err := expr.ParseUnit(raw)
		if err != nil {
			return "", "", err.Error()
		}
		unit = parsed
	}
	return expression, unit, ""
}
