package trig

import (
	"errors"
	gomath "math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/SciCalc/backend/internal/providers/math/expr"
)

func TestRewriteDirectFunctions(t *testing.T) {
	engine := expr.NewEngine()
	r := NewRewriter(engine)

	direct := map[string]func(float64) float64{
		"sin": gomath.Sin,
		"cos": gomath.Cos,
		"tan": gomath.Tan,
		"sec": func(a float64) float64 { return 1 / gomath.Cos(a) },
		"csc": func(a float64) float64 { return 1 / gomath.Sin(a) },
		"cot": func(a float64) float64 { return 1 / gomath.Tan(a) },
	}

	for name, fn := range direct {
		t.Run(name, func(t *testing.T) {
			deg, err := engine.Evaluate(r.Rewrite(name+"(30)", expr.Degrees))
			require.NoError(t, err)
			assert.InDelta(t, fn(30*gomath.Pi/180), deg, 1e-12)

			rad, err := engine.Evaluate(r.Rewrite(name+"(0.7)", expr.Radians))
			require.NoError(t, err)
			assert.InDelta(t, fn(0.7), rad, 1e-12)
		})
	}
}

func TestRewriteInverseFunctions(t *testing.T) {
	engine := expr.NewEngine()
	r := NewRewriter(engine)

	assert.Equal(t, "asin(0.5)*180/PI", r.Rewrite("asin(0.5)", expr.Degrees))
	assert.Equal(t, "acos(0.5)", r.Rewrite("acos(0.5)", expr.Radians))

	got, err := engine.Evaluate(r.Rewrite("atan(1)", expr.Degrees))
	require.NoError(t, err)
	assert.InDelta(t, 45, got, 1e-12)
}

func TestRewriteHyperbolicIgnoresUnit(t *testing.T) {
	r := NewRewriter(expr.NewEngine())

	for _, fn := range []string{"sinh", "cosh", "tanh"} {
		in := fn + "(1+1)"
		assert.Equal(t, in, r.Rewrite(in, expr.Degrees))
		assert.Equal(t, in, r.Rewrite(in, expr.Radians))
	}
}

func TestRewriteKeepsSurroundingText(t *testing.T) {
	r := NewRewriter(expr.NewEngine())

	assert.Equal(t, "2*sin(0.5)+1", r.Rewrite("2*sin(0.5)+1", expr.Radians))
	assert.Equal(t, "1+2", r.Rewrite("1+2", expr.Degrees))
	assert.Equal(t, "1/cos(1)*cos(2)", r.Rewrite("sec(1)*cos(2)", expr.Radians))
}

func TestRewriteUnparseableArgumentBecomesNaN(t *testing.T) {
	r := NewRewriter(expr.NewEngine())

	assert.Equal(t, "NaN", r.Rewrite("sin(x)", expr.Degrees))
	assert.Equal(t, "2*NaN", r.Rewrite("2*sin(3+*)", expr.Radians))
	assert.Equal(t, "NaN+1/cos(0)", r.Rewrite("tan(y)+sec(0)", expr.Radians))
}

func TestRewriteNestedCallsAreNotSupported(t *testing.T) {
	r := NewRewriter(expr.NewEngine())

	// the argument stops at the first ')' so the inner call is consumed as text
	assert.Equal(t, "NaN)", r.Rewrite("sin(cos(0))", expr.Radians))
}

type mockEvaluator struct {
	mock.Mock
}

func (m *mockEvaluator) Evaluate(text string) (float64, error) {
	args := m.Called(text)
	return args.Get(0).(float64), args.Error(1)
}

func (m *mockEvaluator) ConvertAngleUnit(value float64, from, to expr.Unit) float64 {
	args := m.Called(value, from, to)
	return args.Get(0).(float64)
}

func TestRewriteConvertsOnlyDirectCallsInDegrees(t *testing.T) {
	m := new(mockEvaluator)
	m.On("Evaluate", "90").Return(90.0, nil)
	m.On("Evaluate", "0.5").Return(0.5, nil)
	m.On("ConvertAngleUnit", 90.0, expr.Degrees, expr.Radians).Return(1.5).Once()

	r := NewRewriter(m)
	assert.Equal(t, "sin(1.5)+asin(0.5)*180/PI", r.Rewrite("sin(90)+asin(0.5)", expr.Degrees))
	m.AssertExpectations(t)

	m.On("Evaluate", "bad").Return(0.0, errors.New("boom"))
	assert.Equal(t, "NaN", r.Rewrite("cos(bad)", expr.Degrees))
	m.AssertNumberOfCalls(t, "ConvertAngleUnit", 1)
}
