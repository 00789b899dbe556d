package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLoggerWithWriter_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	config := NewConfig(LogLevelInfo, LogFormatJSON, "test-service", "1.2.3", EnvironmentTest, false)
	InitLoggerWithWriter(config, &buf)

	slog.Info("hello", "key", "value")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hello", entry["msg"])
	assert.Equal(t, "value", entry["key"])
	assert.Equal(t, "test-service", entry["service"])
	assert.Equal(t, "1.2.3", entry["version"])
	assert.Equal(t, EnvironmentTest, entry["environment"])
}

func TestInitLoggerWithWriter_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	config := NewConfig(LogLevelWarn, LogFormatText, "test-service", "dev", EnvironmentTest, false)
	InitLoggerWithWriter(config, &buf)

	slog.Debug("debug message")
	slog.Info("info message")
	slog.Warn("warn message")

	out := buf.String()
	assert.NotContains(t, out, "debug message")
	assert.NotContains(t, out, "info message")
	assert.Contains(t, out, "warn message")
}

func TestConfig_LogLevel(t *testing.T) {
	tests := []struct {
		level    string
		expected slog.Level
	}{
		{LogLevelDebug, slog.LevelDebug},
		{LogLevelInfo, slog.LevelInfo},
		{LogLevelWarn, slog.LevelWarn},
		{LogLevelWarning, slog.LevelWarn},
		{LogLevelError, slog.LevelError},
		{"unknown", slog.LevelInfo},
		{"WARN", slog.LevelWarn}, // case-insensitive
	}

	for _, tt := range tests {
		cfg := Config{Level: tt.level}
		assert.Equal(t, tt.expected, cfg.LogLevel(), "level %q", tt.level)
	}
}

func TestFromContext_WithRequestID(t *testing.T) {
	var buf bytes.Buffer
	config := NewConfig(LogLevelInfo, LogFormatJSON, "test-service", "dev", EnvironmentTest, false)
	InitLoggerWithWriter(config, &buf)

	requestID := GenerateRequestID()
	ctx := WithRequestID(context.Background(), requestID)

	FromContext(ctx).Info("traced")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, requestID, entry[AttrKeyRequestID])
}

func TestRequestIDFromContext_Missing(t *testing.T) {
	_, ok := RequestIDFromContext(context.Background())
	assert.False(t, ok)
}
