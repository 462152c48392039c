package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  zapcore.Level
	}{
		{"", zapcore.InfoLevel},
		{"debug", zapcore.DebugLevel},
		{"WARN", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
	}

	for _, tc := range tests {
		got, err := ParseLevel(tc.input)
		require.NoError(t, err, tc.input)
		assert.Equal(t, tc.want, got, tc.input)
	}
}

func TestParseLevelRejectsUnknown(t *testing.T) {
	_, err := ParseLevel("chatty")
	assert.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger("test", "debug")
	require.NoError(t, err)
	assert.True(t, logger.Desugar().Core().Enabled(zapcore.DebugLevel))
}
