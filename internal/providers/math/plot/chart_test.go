package plot

import (
	"encoding/json"
	gomath "math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/SciCalc/backend/internal/providers/math/evaluator"
	"github.com/GriffinCanCode/SciCalc/backend/internal/providers/math/expr"
)

func TestBuild(t *testing.T) {
	points := []evaluator.Point{
		{X: -5, Y: -0.2},
		{X: 0, Y: gomath.NaN()},
		{X: 5, Y: 0.2},
	}

	chart := Build("1/x", expr.Degrees, false, points)

	assert.Equal(t, "line", chart.Type)
	assert.Equal(t, []float64{-5, 0, 5}, chart.Labels)
	assert.Equal(t, "1/x", chart.Dataset.Label)
	assert.Equal(t, "blue", chart.Dataset.BorderColor)
	assert.Equal(t, 2, chart.Dataset.BorderWidth)
	assert.Equal(t, "Degrees", chart.XAxis.Title)
	assert.Equal(t, "y", chart.YAxis.Title)
	assert.Equal(t, 1, chart.Gaps)
	require.NotNil(t, chart.YRange)
	assert.Equal(t, -0.2, chart.YRange.Min)
	assert.Equal(t, 0.2, chart.YRange.Max)

	require.Len(t, chart.Dataset.Data, 3)
	assert.Nil(t, chart.Dataset.Data[1])
	assert.Equal(t, 0.2, *chart.Dataset.Data[2])
}

func TestBuildDarkPalette(t *testing.T) {
	chart := Build("x", expr.Radians, true, []evaluator.Point{{X: 0, Y: 0}})

	assert.Equal(t, "#4FC3F7", chart.Dataset.BorderColor)
	assert.Equal(t, "#555", chart.XAxis.GridColor)
	assert.Equal(t, "#f1f1f1", chart.Legend)
	assert.Equal(t, "Radians", chart.XAxis.Title)
}

func TestBuildAllGaps(t *testing.T) {
	chart := Build("x+*", expr.Radians, false, []evaluator.Point{{X: 0, Y: gomath.NaN()}})

	assert.Nil(t, chart.YRange)
	assert.Equal(t, 1, chart.Gaps)

	data, err := json.Marshal(chart)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"data":[null]`)
}
