package expr

import (
	gomath "math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngineEvaluate(t *testing.T) {
	e := NewEngine()

	tests := []struct {
		name string
		expr string
		want float64
	}{
		{"addition", "1+2", 3},
		{"precedence", "2+3*4", 14},
		{"parentheses", "(2+3)*4", 20},
		{"power", "2^10", 1024},
		{"modulo", "10%3", 1},
		{"unary minus after operator", "2*-3", -6},
		{"double negation", "5--3", 8},
		{"negative base power", "-3^2", 9},
		{"repeated prefix minus", "--3", 3},
		{"repeated prefix minus after operator", "2*--3", 6},
		{"triple minus after operand", "5---3", 2},
		{"spaced minus run", "1 - - 4", 5},
		{"minus run after parenthesis", "(--2)*3", 6},
		{"power is left associative", "2^3^2", 64},
		{"constant", "PI", gomath.Pi},
		{"function", "sqrt(16)", 4},
		{"natural log", "ln(E)", 1},
		{"log base ten", "log(1000)", 3},
		{"nested functions", "abs(sin(0)-2)", 2},
		{"whitespace", "  7 /  2 ", 3.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := e.Evaluate(tt.expr)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-12)
		})
	}
}

func TestEngineNonFinite(t *testing.T) {
	e := NewEngine()

	got, err := e.Evaluate("1/0")
	require.NoError(t, err)
	assert.True(t, gomath.IsInf(got, 1))

	got, err = e.Evaluate("asin(2)")
	require.NoError(t, err)
	assert.True(t, gomath.IsNaN(got))

	got, err = e.Evaluate("NaN+1")
	require.NoError(t, err)
	assert.True(t, gomath.IsNaN(got))

	got, err = e.Evaluate("sin(Inf)")
	require.NoError(t, err)
	assert.True(t, gomath.IsNaN(got))
}

func TestEngineErrors(t *testing.T) {
	e := NewEngine()

	for _, text := range []string{"2+*3", "x+1", "foo(2)", "(1+2", "", "1.5e3"} {
		t.Run(text, func(t *testing.T) {
			_, err := e.Evaluate(text)
			assert.Error(t, err)
		})
	}

	_, err := e.Evaluate("   ")
	assert.ErrorIs(t, err, ErrEmptyExpression)
}

func TestConvertAngleUnit(t *testing.T) {
	e := NewEngine()

	assert.InDelta(t, gomath.Pi, e.ConvertAngleUnit(180, Degrees, Radians), 1e-12)
	assert.InDelta(t, 90, e.ConvertAngleUnit(gomath.Pi/2, Radians, Degrees), 1e-12)
	assert.Equal(t, 42.0, e.ConvertAngleUnit(42, Radians, Radians))
}

func TestRound(t *testing.T) {
	e := NewEngine()

	assert.Equal(t, 3.33, e.Round(10.0/3.0, 2))
	assert.Equal(t, 2.3, e.Round(2.25, 1))
	assert.Equal(t, -2.3, e.Round(-2.25, 1))
	assert.Equal(t, 4.0, e.Round(3.5, 0))
}

func TestParseUnit(t *testing.T) {
	for in, want := range map[string]Unit{
		"deg": Degrees, "Degrees": Degrees, " rad ": Radians, "radians": Radians,
	} {
		got, err := ParseUnit(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseUnit("grad")
	assert.Error(t, err)
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "0.000001", FormatNumber(1e-6))
	assert.Equal(t, "-360", FormatNumber(-360))
	assert.Equal(t, "NaN", FormatNumber(gomath.NaN()))
	assert.Equal(t, "Inf", FormatNumber(gomath.Inf(1)))
	assert.Equal(t, "-Inf", FormatNumber(gomath.Inf(-1)))
}
