package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateExpression(t *testing.T) {
	tests := []struct {
		name    string
		expr    string
		wantErr bool
	}{
		{"simple", "1+2", false},
		{"with variable", "sin(x)^2", false},
		{"empty", "", true},
		{"blank", "   ", true},
		{"too long", strings.Repeat("1", 33), true},
		{"null byte", "1+\x002", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateExpression(tt.expr, 32)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateToolID(t *testing.T) {
	assert.NoError(t, ValidateToolID("math.evaluate", "tool_id", true))
	assert.Error(t, ValidateToolID("", "tool_id", true))
	assert.Error(t, ValidateToolID("math evaluate", "tool_id", true))
	assert.NoError(t, ValidateToolID("", "tool_id", false))
}

func TestValidateCategory(t *testing.T) {
	assert.NoError(t, ValidateCategory("math", false))
	assert.NoError(t, ValidateCategory("", false))
	assert.Error(t, ValidateCategory("Math", false))
}

func TestValidatePrecision(t *testing.T) {
	assert.NoError(t, ValidatePrecision(0, 15))
	assert.NoError(t, ValidatePrecision(15, 15))
	assert.Error(t, ValidatePrecision(-1, 15))
	assert.Error(t, ValidatePrecision(16, 15))
}
