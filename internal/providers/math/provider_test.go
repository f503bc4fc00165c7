package math

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/GriffinCanCode/SciCalc/backend/internal/providers/math/evaluator"
	"github.com/GriffinCanCode/SciCalc/backend/internal/providers/math/plot"
)

func newProvider(t *testing.T) *Provider {
	t.Helper()
	return NewProvider(DefaultOptions(), zaptest.NewLogger(t))
}

func TestDefinition(t *testing.T) {
	def := newProvider(t).Definition()

	assert.Equal(t, "math", def.ID)
	ids := make([]string, 0, len(def.Tools))
	for _, tool := range def.Tools {
		ids = append(ids, tool.ID)
	}
	assert.ElementsMatch(t, []string{"math.evaluate", "math.sample", "math.rewrite", "math.plot"}, ids)
}

func TestEvaluateTool(t *testing.T) {
	p := newProvider(t)
	ctx := context.Background()

	t.Run("Defaults to degrees", func(t *testing.T) {
		result, err := p.Execute(ctx, "math.evaluate", map[string]interface{}{"expression": "sin(90)"}, nil)
		require.NoError(t, err)
		require.True(t, result.Success)
		assert.Equal(t, 1.0, result.Data["value"])
		assert.Equal(t, "deg", result.Data["unit"])
		assert.Equal(t, 6, result.Data["precision"])
	})

	t.Run("Explicit precision and unit", func(t *testing.T) {
		result, err := p.Execute(ctx, "math.evaluate", map[string]interface{}{
			"expression": "acos(0)",
			"unit":       "rad",
			"precision":  float64(3),
		}, nil)
		require.NoError(t, err)
		require.True(t, result.Success)
		assert.Equal(t, 1.571, result.Data["value"])
	})

	t.Run("Undefined", func(t *testing.T) {
		result, err := p.Execute(ctx, "math.evaluate", map[string]interface{}{"expression": "1/0"}, nil)
		require.NoError(t, err)
		require.True(t, result.Success)
		assert.Equal(t, "undefined", result.Data["kind"])
		assert.NotContains(t, result.Data, "value")
	})

	t.Run("Syntax error", func(t *testing.T) {
		result, err := p.Execute(ctx, "math.evaluate", map[string]interface{}{"expression": "2+*3"}, nil)
		require.NoError(t, err)
		assert.False(t, result.Success)
		require.NotNil(t, result.Error)
	})

	t.Run("Precision out of range", func(t *testing.T) {
		result, err := p.Execute(ctx, "math.evaluate", map[string]interface{}{"expression": "1", "precision": 99}, nil)
		require.NoError(t, err)
		assert.False(t, result.Success)
	})

	t.Run("Fractional precision", func(t *testing.T) {
		result, err := p.Execute(ctx, "math.evaluate", map[string]interface{}{"expression": "1", "precision": 1.5}, nil)
		require.NoError(t, err)
		assert.False(t, result.Success)
	})

	t.Run("Missing expression", func(t *testing.T) {
		result, err := p.Execute(ctx, "math.evaluate", map[string]interface{}{}, nil)
		require.NoError(t, err)
		assert.False(t, result.Success)
		assert.Equal(t, "expression parameter required", *result.Error)
	})

	t.Run("Invalid unit", func(t *testing.T) {
		result, err := p.Execute(ctx, "math.evaluate", map[string]interface{}{"expression": "1", "unit": "grad"}, nil)
		require.NoError(t, err)
		assert.False(t, result.Success)
	})
}

func TestSampleTool(t *testing.T) {
	p := newProvider(t)

	result, err := p.Execute(context.Background(), "math.sample", map[string]interface{}{"expression": "x", "unit": "degrees"}, nil)
	require.NoError(t, err)
	require.True(t, result.Success)
	assert.Equal(t, 145, result.Data["count"])

	points, ok := result.Data["points"].([]evaluator.Point)
	require.True(t, ok)
	assert.Equal(t, -360.0, points[0].Y)
}

func TestRewriteTool(t *testing.T) {
	p := newProvider(t)

	result, err := p.Execute(context.Background(), "math.rewrite", map[string]interface{}{"expression": "2*sin(0)+cot(x)", "unit": "rad"}, nil)
	require.NoError(t, err)
	require.True(t, result.Success)
	assert.Equal(t, "2*sin(0)+NaN", result.Data["rewritten"])
}

func TestPlotTool(t *testing.T) {
	p := newProvider(t)
	ctx := context.Background()

	result, err := p.Execute(ctx, "math.plot", map[string]interface{}{"expression": "x^2", "theme": "dark"}, nil)
	require.NoError(t, err)
	require.True(t, result.Success)
	chart, ok := result.Data["chart"].(plot.Chart)
	require.True(t, ok)
	assert.Equal(t, "#4FC3F7", chart.Dataset.BorderColor)
	assert.Len(t, chart.Labels, 145)

	result, err = p.Execute(ctx, "math.plot", map[string]interface{}{"expression": "x", "theme": "sepia"}, nil)
	require.NoError(t, err)
	assert.False(t, result.Success)
}

func TestUnknownTool(t *testing.T) {
	_, err := newProvider(t).Execute(context.Background(), "math.gamma", nil, nil)
	assert.Error(t, err)
}
