package evaluator

import (
	"encoding/json"
	"fmt"
	gomath "math"

	"github.com/GriffinCanCode/SciCalc/backend/internal/providers/math/expr"
)

// Kind tags an evaluation outcome
type Kind string

const (
	KindNumber    Kind = "number"
	KindUndefined Kind = "undefined"
	KindError     Kind = "error"
)

// Outcome is the result of one evaluation attempt: a rounded number, an
// undefined (non-finite) value, or an error carrying the evaluator's message.
type Outcome struct {
	Kind    Kind
	Value   float64
	Message string
}

// Number creates a successful outcome
func Number(v float64) Outcome {
	return Outcome{Kind: KindNumber, Value: v}
}

// Undefined creates an outcome for a non-finite result
func Undefined() Outcome {
	return Outcome{Kind: KindUndefined, Message: "value is undefined"}
}

// Failed creates an outcome for an evaluation error
func Failed(message string) Outcome {
	return Outcome{Kind: KindError, Message: message}
}

// IsNumber reports whether the outcome carries a value
func (o Outcome) IsNumber() bool {
	return o.Kind == KindNumber
}

func (o Outcome) String() string {
	switch o.Kind {
	case KindNumber:
		return expr.FormatNumber(o.Value)
	case KindUndefined:
		return "undefined"
	default:
		return fmt.Sprintf("error: %s", o.Message)
	}
}

// MarshalJSON only emits a value for numbers
func (o Outcome) MarshalJSON() ([]byte, error) {
	out := struct {
		Kind    Kind     `json:"kind"`
		Value   *float64 `json:"value,omitempty"`
		Message string   `json:"message,omitempty"`
	}{Kind: o.Kind, Message: o.Message}
	if o.Kind == KindNumber {
		v := o.Value
		out.Value = &v
	}
	return json.Marshal(out)
}

// Point is one sample of a plotted expression. Y is NaN where the expression
// could not be evaluated.
type Point struct {
	X float64
	Y float64
}

// Defined reports whether Y is a finite value
func (p Point) Defined() bool {
	return !gomath.IsNaN(p.Y) && !gomath.IsInf(p.Y, 0)
}

// MarshalJSON encodes gaps as null, which JSON has no NaN for
func (p Point) MarshalJSON() ([]byte, error) {
	out := struct {
		X float64  `json:"x"`
		Y *float64 `json:"y"`
	}{X: p.X}
	if p.Defined() {
		y := p.Y
		out.Y = &y
	}
	return json.Marshal(out)
}
