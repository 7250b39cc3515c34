package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	config := Config{
		Level:  LevelDebug,
		Format: FormatJSON,
		Output: &buf,
	}

	logger := NewLogger(config)
	if logger == nil {
		t.Fatal("Expected logger to be created, got nil")
	}

	// Test that logger works
	logger.Info("test message", "key", "value")
	output := buf.String()

	if !strings.Contains(output, "test message") {
		t.Errorf("Expected output to contain 'test message', got: %s", output)
	}
	if !strings.Contains(output, `"key":"value"`) {
		t.Errorf("Expected JSON output to contain key/value, got: %s", output)
	}
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.Level != LevelInfo {
		t.Errorf("Expected default level to be %s, got: %s", LevelInfo, config.Level)
	}
	if config.Format != FormatText {
		t.Errorf("Expected default format to be 'text', got: %s", config.Format)
	}
	if config.Output == nil {
		t.Error("Expected default output to be non-nil")
	}
}

func TestNewLogger_NilOutput(t *testing.T) {
	logger := NewLogger(Config{Level: LevelError})
	if logger == nil {
		t.Fatal("Expected logger to be created with nil output")
	}
}

func TestLoggerWithFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(Config{Level: LevelInfo, Format: FormatText, Output: &buf})

	logger.WithFields(map[string]any{"entry": "report.txt"}).Info("test message")

	output := buf.String()
	if !strings.Contains(output, "test message") {
		t.Errorf("Expected output to contain 'test message', got: %s", output)
	}
	if !strings.Contains(output, "entry=report.txt") {
		t.Errorf("Expected output to contain field, got: %s", output)
	}
}

func TestLoggerWithOperation(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(Config{Level: LevelInfo, Format: FormatText, Output: &buf})

	logger.WithOperation("copy", "op-123").Info("operation started")

	output := buf.String()
	if !strings.Contains(output, "operation=copy") {
		t.Errorf("Expected output to contain operation, got: %s", output)
	}
	if !strings.Contains(output, "op_id=op-123") {
		t.Errorf("Expected output to contain op_id, got: %s", output)
	}
}

func TestLoggerWithOperation_FieldOrder(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(Config{Level: LevelInfo, Format: FormatText, Output: &buf})

	for i := 0; i < 20; i++ {
		buf.Reset()
		logger.WithOperation("copy", "op-123").Info("operation started")

		output := buf.String()
		opIdx := strings.Index(output, "operation=copy")
		idIdx := strings.Index(output, "op_id=op-123")
		if opIdx < 0 || idIdx < 0 || opIdx > idIdx {
			t.Fatalf("Expected operation before op_id, got: %s", output)
		}
	}
}

func TestLoggerWithPaths_SinglePath(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(Config{Level: LevelInfo, Format: FormatText, Output: &buf})

	logger.WithPaths("/data/a", "").Info("deleted")

	output := buf.String()
	if !strings.Contains(output, "path=/data/a") {
		t.Errorf("Expected output to contain path, got: %s", output)
	}
	if strings.Contains(output, "target=") {
		t.Errorf("Expected no target field, got: %s", output)
	}
}

func TestLogLevels(t *testing.T) {
	tests := []struct {
		name        string
		level       LogLevel
		logFunc     func(*Logger)
		shouldLog   bool
		description string
	}{
		{"debug logs at debug", LevelDebug, func(l *Logger) { l.Debug("msg") }, true, "debug at debug"},
		{"debug dropped at info", LevelInfo, func(l *Logger) { l.Debug("msg") }, false, "debug at info"},
		{"warn logs at info", LevelInfo, func(l *Logger) { l.Warn("msg") }, true, "warn at info"},
		{"info dropped at error", LevelError, func(l *Logger) { l.Info("msg") }, false, "info at error"},
		{"error logs at error", LevelError, func(l *Logger) { l.Error("msg") }, true, "error at error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewLogger(Config{Level: tt.level, Format: FormatText, Output: &buf})

			tt.logFunc(logger)

			hasOutput := buf.Len() > 0
			if hasOutput != tt.shouldLog {
				t.Errorf("%s: expected output=%v, got output=%v", tt.description, tt.shouldLog, hasOutput)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected LogLevel
		wantErr  bool
	}{
		{"debug", LevelDebug, false},
		{"INFO", LevelInfo, false},
		{"", LevelInfo, false},
		{"warning", LevelWarn, false},
		{" error ", LevelError, false},
		{"verbose", "", true},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.expected {
			t.Errorf("ParseLevel(%q) = %s, expected %s", tt.input, got, tt.expected)
		}
	}
}

func TestSlogLevel(t *testing.T) {
	if LevelWarn.SlogLevel() != slog.LevelWarn {
		t.Errorf("Expected warn to map to slog.LevelWarn")
	}
	if LogLevel("bogus").SlogLevel() != slog.LevelInfo {
		t.Errorf("Expected unknown level to map to slog.LevelInfo")
	}
}

func TestContextLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(Config{Level: LevelInfo, Format: FormatText, Output: &buf})

	logger.ErrorContext(context.Background(), "context message", "error", "boom")

	output := buf.String()
	if !strings.Contains(output, "context message") || !strings.Contains(output, "error=boom") {
		t.Errorf("Expected context log output, got: %s", output)
	}
}
