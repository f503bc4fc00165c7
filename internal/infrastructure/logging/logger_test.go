package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	logger, err := New(Config{Level: "warn"})
	require.NoError(t, err)

	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))
}

func TestNewInvalidLevel(t *testing.T) {
	_, err := New(Config{Level: "loud"})
	assert.Error(t, err)
}

func TestNewFromSettings(t *testing.T) {
	dev := NewFromSettings("", true)
	assert.True(t, dev.Core().Enabled(zapcore.DebugLevel))

	prod := NewFromSettings("error", false)
	assert.False(t, prod.Core().Enabled(zapcore.WarnLevel))

	fallback := NewFromSettings("loud", false)
	assert.True(t, fallback.Core().Enabled(zapcore.InfoLevel))
	assert.False(t, fallback.Core().Enabled(zapcore.DebugLevel))
}

func TestWrap(t *testing.T) {
	assert.NotNil(t, Wrap(nil).Logger)

	base := zap.NewExample()
	assert.Same(t, base, Wrap(base).Logger)
}
