package common

import (
	"fmt"
	gomath "math"

	"github.com/GriffinCanCode/SciCalc/backend/internal/shared/types"
)

// Success creates a successful result
func Success(data map[string]interface{}) (*types.Result, error) {
	return &types.Result{Success: true, Data: data}, nil
}

// Failure creates a failed result
func Failure(message string) (*types.Result, error) {
	msg := message
	return &types.Result{Success: false, Error: &msg}, nil
}

// GetNumber extracts float64 from params with type coercion
func GetNumber(params map[string]interface{}, key string) (float64, bool) {
	val, ok := params[key]
	if !ok {
		return 0, false
	}

	switch v := val.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

// GetInt extracts a whole number from params
func GetInt(params map[string]interface{}, key string) (int, bool, error) {
	n, ok := GetNumber(params, key)
	if !ok {
		if _, present := params[key]; present {
			return 0, true, fmt.Errorf("%s must be a number", key)
		}
		return 0, false, nil
	}
	if n != gomath.Trunc(n) {
		return 0, true, fmt.Errorf("%s must be a whole number", key)
	}
	return int(n), true, nil
}

// GetString extracts string from params
func GetString(params map[string]interface{}, key string) (string, bool) {
	val, ok := params[key].(string)
	return val, ok
}
