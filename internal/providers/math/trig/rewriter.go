// Package trig rewrites trig calls in calculator expressions into unit-aware
// primitive calls before numeric evaluation.
//
// Arguments are captured up to the first closing parenthesis, so calls with
// nested parentheses in the argument, such as sin(cos(x)) or sin((1+2)), are
// not rewritten correctly. This is a known limitation of the notation.
package trig

import (
	"regexp"
	"strings"

	"github.com/GriffinCanCode/SciCalc/backend/internal/providers/math/expr"
)

// NaNToken replaces a call whose argument cannot be evaluated
const NaNToken = "NaN"

var callPattern = regexp.MustCompile(`(sin|cos|tan|sec|csc|cot|asin|acos|atan|sinh|cosh|tanh)\(([^)]+)\)`)

// Evaluator is the numeric capability the rewriter needs
type Evaluator interface {
	Evaluate(text string) (float64, error)
	ConvertAngleUnit(value float64, from, to expr.Unit) float64
}

// Rewriter turns sin(30), asin(0.5), ... into calls the engine understands
type Rewriter struct {
	eval Evaluator
}

// NewRewriter creates a rewriter backed by eval
func NewRewriter(eval Evaluator) *Rewriter {
	return &Rewriter{eval: eval}
}

// Rewrite returns expression with every trig call replaced. The input is never
// modified. Rewriting an already rewritten string is not supported.
func (r *Rewriter) Rewrite(expression string, unit expr.Unit) string {
	matches := callPattern.FindAllStringSubmatchIndex(expression, -1)
	if len(matches) == 0 {
		return expression
	}

	var b strings.Builder
	last := 0
	for _, m := range matches {
		b.WriteString(expression[last:m[0]])
		b.WriteString(r.substitute(expression[m[2]:m[3]], expression[m[4]:m[5]], unit))
		last = m[1]
	}
	b.WriteString(expression[last:])

	return b.String()
}

func (r *Rewriter) substitute(fn, arg string, unit expr.Unit) string {
	angle, err := r.eval.Evaluate(arg)
	if err != nil {
		// also hit for arguments that still contain the plot variable
		return NaNToken
	}

	if unit == expr.Degrees && isDirect(fn) {
		angle = r.eval.ConvertAngleUnit(angle, expr.Degrees, expr.Radians)
	}
	a := expr.FormatNumber(angle)

	switch fn {
	case "sin", "cos", "tan":
		return fn + "(" + a + ")"
	case "sec":
		return "1/cos(" + a + ")"
	case "csc":
		return "1/sin(" + a + ")"
	case "cot":
		return "1/tan(" + a + ")"
	case "asin", "acos", "atan":
		if unit == expr.Degrees {
			return fn + "(" + arg + ")*180/PI"
		}
		return fn + "(" + arg + ")"
	default:
		// hyperbolic: raw argument, no unit handling
		return fn + "(" + arg + ")"
	}
}

func isDirect(fn string) bool {
	switch fn {
	case "sin", "cos", "tan", "sec", "csc", "cot":
		return true
	}
	return false
}
