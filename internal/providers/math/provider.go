package math

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/SciCalc/backend/internal/providers/math/evaluator"
	"github.com/GriffinCanCode/SciCalc/backend/internal/providers/math/expr"
	"github.com/GriffinCanCode/SciCalc/backend/internal/shared/types"
)

// Options holds the calculator defaults and limits
type Options struct {
	Unit          expr.Unit
	Precision     int
	MaxPrecision  int
	MaxExpression int
}

// DefaultOptions returns the calculator defaults
func DefaultOptions() Options {
	return Options{
		Unit:          expr.Degrees,
		Precision:     6,
		MaxPrecision:  15,
		MaxExpression: 512,
	}
}

// Provider implements the calculator tools
type Provider struct {
	eval *evaluator.Evaluator
	opts Options
}

// NewProvider creates a calculator provider backed by the expression engine
func NewProvider(opts Options, logger *zap.Logger) *Provider {
	return &Provider{
		eval: evaluator.New(expr.NewEngine(), logger),
		opts: opts,
	}
}

// Evaluator returns the underlying evaluator
func (p *Provider) Evaluator() *evaluator.Evaluator {
	return p.eval
}

// Options returns the provider defaults
func (p *Provider) Options() Options {
	return p.opts
}

// Definition returns service metadata
func (p *Provider) Definition() types.Service {
	return types.Service{
		ID:          "math",
		Name:        "Calculator Service",
		Description: "Expression evaluation with degree/radian trigonometry and plotting",
		Category:    types.CategoryMath,
		Capabilities: []string{
			"evaluate",
			"trigonometry",
			"sampling",
			"plotting",
		},
		Tools: tools(),
	}
}

// Execute routes to the tool handler
func (p *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	switch toolID {
	case "math.evaluate":
		return p.evaluate(ctx, params, appCtx)
	case "math.sample":
		return p.sample(ctx, params, appCtx)
	case "math.rewrite":
		return p.rewrite(ctx, params, appCtx)
	case "math.plot":
		return p.plot(ctx, params, appCtx)
	default:
		return nil, fmt.Errorf("unknown tool: %s", toolID)
	}
}
