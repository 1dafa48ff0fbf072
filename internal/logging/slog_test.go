package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSlog(t *testing.T) {
	require.NotNil(t, NewSlog(nil).logger)

	buf := &bytes.Buffer{}
	handler := slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	logger := NewSlog(slog.New(handler))

	logger.Debug("pass completed", "created", 3)
	logger.Info("attached", "overlay", "ov-1")
	logger.Warn("skipping malformed cluster", "key", "p1")
	logger.Error("hook failed", "error", "boom")

	output := buf.String()
	assert.Contains(t, output, "level=DEBUG msg=\"pass completed\" created=3")
	assert.Contains(t, output, "level=INFO msg=attached overlay=ov-1")
	assert.Contains(t, output, "level=WARN")
	assert.Contains(t, output, "key=p1")
	assert.Contains(t, output, "level=ERROR")
}

func TestNewText(t *testing.T) {
	buf := &bytes.Buffer{}
	logger, err := NewText(buf, "warn")
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown")

	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), "shown")

	_, err = NewText(buf, "verbose")
	require.ErrorContains(t, err, "invalid log level")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"", slog.LevelInfo},
		{"info", slog.LevelInfo},
		{" DEBUG ", slog.LevelDebug},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestSlogLogger_With(t *testing.T) {
	buf := &bytes.Buffer{}
	logger, err := NewText(buf, "debug")
	require.NoError(t, err)

	logger.With("overlay", "ov-1").Debug("pass completed")

	require.Contains(t, buf.String(), "overlay=ov-1")
}
