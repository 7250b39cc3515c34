package logging

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTestLogger(t *testing.T) {
	logger := NewTestLogger()
	require.NotNil(t, logger)

	ctx := context.Background()
	assert.False(t, logger.Enabled(ctx, LevelError.SlogLevel()))

	// Verify logger can be used without panicking
	logger.ErrorContext(ctx, "should be discarded")
}

func TestNewCaptureLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewCaptureLogger(&buf)
	require.NotNil(t, logger)

	logger.Debug("debug message", "key", "value")
	logger.Error("error message")

	output := buf.String()
	assert.Contains(t, output, "debug message")
	assert.Contains(t, output, "key=value")
	assert.Contains(t, output, "level=ERROR")
}

func TestWrap(t *testing.T) {
	var buf bytes.Buffer
	wrapped := Wrap(NewCaptureLogger(&buf))
	wrapped.WithPaths("/src", "/dst").Info("copied")

	assert.Contains(t, buf.String(), "source=/src")
	assert.Contains(t, buf.String(), "target=/dst")
}

func TestWrap_NilLogger(t *testing.T) {
	wrapped := Wrap(nil)
	require.NotNil(t, wrapped)
	require.NotNil(t, wrapped.Logger)

	wrapped.Error("silently dropped")
}
