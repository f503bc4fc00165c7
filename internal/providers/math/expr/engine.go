package expr

import (
	"errors"
	"fmt"
	gomath "math"
	"strings"
	"unicode"

	"github.com/Knetic/govaluate"
	"gonum.org/v1/gonum/floats/scalar"
)

// ErrEmptyExpression is returned when there is nothing to evaluate
var ErrEmptyExpression = errors.New("expression is empty")

// Engine evaluates infix arithmetic using govaluate with a fixed function table.
// It holds no mutable state and is safe for concurrent use.
type Engine struct {
	functions map[string]govaluate.ExpressionFunction
	constants map[string]interface{}
}

// NewEngine creates an engine with the calculator's functions and constants
func NewEngine() *Engine {
	return &Engine{
		functions: map[string]govaluate.ExpressionFunction{
			"sin":  unary("sin", gomath.Sin),
			"cos":  unary("cos", gomath.Cos),
			"tan":  unary("tan", gomath.Tan),
			"asin": unary("asin", gomath.Asin),
			"acos": unary("acos", gomath.Acos),
			"atan": unary("atan", gomath.Atan),
			"sinh": unary("sinh", gomath.Sinh),
			"cosh": unary("cosh", gomath.Cosh),
			"tanh": unary("tanh", gomath.Tanh),
			"sqrt": unary("sqrt", gomath.Sqrt),
			"abs":  unary("abs", gomath.Abs),
			"ln":   unary("ln", gomath.Log),
			"log":  unary("log", gomath.Log10),
			"exp":  unary("exp", gomath.Exp),
		},
		constants: map[string]interface{}{
			"PI":  gomath.Pi,
			"pi":  gomath.Pi,
			"E":   gomath.E,
			"NaN": gomath.NaN(),
			"Inf": gomath.Inf(1),
		},
	}
}

// Evaluate parses and evaluates text, returning the numeric result.
// Malformed syntax and undefined symbols are reported as errors; non-finite
// results are returned as values.
func (e *Engine) Evaluate(text string) (result float64, err error) {
	if strings.TrimSpace(text) == "" {
		return 0, ErrEmptyExpression
	}

	// surface evaluator panics as errors
	defer func() {
		if r := recover(); r != nil {
			result, err = 0, fmt.Errorf("invalid expression: %v", r)
		}
	}()

	parsed, err := govaluate.NewEvaluableExpressionWithFunctions(normalize(text), e.functions)
	if err != nil {
		return 0, err
	}

	value, err := parsed.Evaluate(e.constants)
	if err != nil {
		return 0, err
	}

	switch v := value.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	default:
		return 0, fmt.Errorf("expression did not produce a number (got %T)", value)
	}
}

// ConvertAngleUnit converts value between degrees and radians
func (e *Engine) ConvertAngleUnit(value float64, from, to Unit) float64 {
	if from == to {
		return value
	}
	if from == Degrees {
		return value * gomath.Pi / 180
	}
	return value * 180 / gomath.Pi
}

// Round rounds value to digits decimal places, half away from zero
func (e *Engine) Round(value float64, digits int) float64 {
	return scalar.Round(value, digits)
}

// normalize maps the calculator operator set onto govaluate's grammar.
// '^' is exponentiation here but XOR in govaluate; it keeps the left
// associativity of govaluate's '**' ("2^3^2" is 64). govaluate lexes runs of
// symbol characters as one operator, so each operator is isolated with spaces
// to let a unary minus follow another operator ("2*-3").
//
// govaluate also rejects two prefix minus signs in a row, which sampling
// produces for "-x" at negative x. A run of minus signs is folded by parity:
// after an operand the first one is binary ("5--3" is "5 + 3"), elsewhere all
// are prefix ("2*--3" is "2 * 3").
func normalize(text string) string {
	var b strings.Builder
	b.Grow(len(text) * 2)

	runes := []rune(text)
	var prev rune
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch r {
		case '^':
			b.WriteString(" ** ")
		case '-':
			n, j := 1, i+1
			for ; j < len(runes); j++ {
				if runes[j] == '-' {
					n++
				} else if !unicode.IsSpace(runes[j]) {
					break
				}
			}
			i = j - 1
			b.WriteString(minusRun(n, isOperand(prev)))
		case '+', '*', '/', '%':
			b.WriteByte(' ')
			b.WriteRune(r)
			b.WriteByte(' ')
		default:
			b.WriteRune(r)
		}
		if !unicode.IsSpace(r) {
			prev = r
		}
	}
	return b.String()
}

func minusRun(n int, binary bool) string {
	switch {
	case n%2 == 1:
		return " - "
	case binary:
		return " + "
	default:
		return " "
	}
}

// isOperand reports whether r can end an operand, making a following minus binary
func isOperand(r rune) bool {
	return r == ')' || r == '.' || r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func unary(name string, fn func(float64) float64) govaluate.ExpressionFunction {
	return func(args ...interface{}) (interface{}, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("%s expects 1 argument, got %d", name, len(args))
		}
		x, ok := args[0].(float64)
		if !ok {
			return nil, fmt.Errorf("%s expects a numeric argument", name)
		}
		return fn(x), nil
	}
}
