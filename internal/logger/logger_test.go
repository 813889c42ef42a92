package logger

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigLogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
	}

	for _, tt := range tests {
		cfg := Config{Level: tt.level}
		assert.Equal(t, tt.want, cfg.LogLevel(), "level %q", tt.level)
	}
}

func TestRequestIDRoundTrip(t *testing.T) {
	id := GenerateRequestID()
	assert.NotEmpty(t, id)

	ctx := WithRequestID(context.Background(), id)
	got, ok := RequestIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, id, got)

	_, ok = RequestIDFromContext(context.Background())
	assert.False(t, ok)
}
