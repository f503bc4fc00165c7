package expr

import (
	"fmt"
	gomath "math"
	"strconv"
	"strings"
)

// Unit is the angle unit used to interpret trig arguments and results
type Unit string

const (
	Degrees Unit = "deg"
	Radians Unit = "rad"
)

// ParseUnit accepts the short wire names and their long aliases
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "deg", "degree", "degrees":
		return Degrees, nil
	case "rad", "radian", "radians":
		return Radians, nil
	default:
		return "", fmt.Errorf("unknown angle unit %q (expected deg or rad)", s)
	}
}

// Label returns the axis title for the unit
func (u Unit) Label() string {
	if u == Degrees {
		return "Degrees"
	}
	return "Radians"
}

// FormatNumber prints v as a literal the engine can read back.
// The lexer has no exponent syntax, so plain decimal notation is always used.
func FormatNumber(v float64) string {
	switch {
	case gomath.IsNaN(v):
		return "NaN"
	case gomath.IsInf(v, 1):
		return "Inf"
	case gomath.IsInf(v, -1):
		return "-Inf"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
