// File: logger_test.go
// Title: Logger Tests
// Description: Tests for logger configuration, context fields, formatters and
//              error-severity mapping.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive logger tests
// - 2026-10-15 v0.2.0: Rewritten for the synchronous logger

package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	mdwerror "github.com/msto63/layerdeck/foundation/core/error"
)

func newBufferLogger(level Level, format Format) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewWithConfig(Config{Level: level, Format: format, Output: &buf, Name: "test"}), &buf
}

func TestNew(t *testing.T) {
	logger := New()

	if logger.GetLevel() != DefaultLevel() {
		t.Errorf("New() level = %v, want %v", logger.GetLevel(), DefaultLevel())
	}
	if logger.contextFields == nil {
		t.Error("New() should initialize context fields")
	}
}

func TestLoggerWithLevel(t *testing.T) {
	logger := New()
	newLogger := logger.WithLevel(LevelDebug)

	if newLogger == logger {
		t.Error("WithLevel() should return a new logger instance")
	}
	if newLogger.GetLevel() != LevelDebug {
		t.Errorf("WithLevel() level = %v, want %v", newLogger.GetLevel(), LevelDebug)
	}
	if logger.GetLevel() != DefaultLevel() {
		t.Error("WithLevel() should not modify original logger")
	}
}

func TestLevelFiltering(t *testing.T) {
	logger, buf := newBufferLogger(LevelWarn, FormatText)

	logger.Debug("hidden")
	logger.Info("hidden too")
	logger.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("entries below warn were written: %q", out)
	}
	if !strings.Contains(out, "[WRN] {test} shown") {
		t.Errorf("warn entry missing: %q", out)
	}
}

func TestTextFormatterFieldOrder(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug, FormatText)
	logger.WithField("component", "session").Debug("moved", Fields{"src": "e:0", "dst": "e:2"})

	if !strings.Contains(buf.String(), "[component=session dst=e:2 src=e:0]") {
		t.Errorf("fields not sorted: %q", buf.String())
	}
}

func TestJSONFormatter(t *testing.T) {
	logger, buf := newBufferLogger(LevelInfo, FormatJSON)
	logger.WithCorrelationID("abc").Info("opened", Field("layers", 6))

	var got map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if got["message"] != "opened" || got["level"] != "info" || got["correlation_id"] != "abc" {
		t.Errorf("unexpected entry: %v", got)
	}
	if got["layers"] != float64(6) {
		t.Errorf("layers = %v, want 6", got["layers"])
	}
}

func TestLogErrorUsesSeverity(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"low severity", mdwerror.New("no such position").WithCode(mdwerror.CodeNotFound), "[INF]"},
		{"medium severity", mdwerror.New("bad token").WithCode(mdwerror.CodeParseSyntax), "[WRN]"},
		{"high severity", mdwerror.New("disk").WithCode(mdwerror.CodeIOError), "[ERR]"},
		{"plain error", errors.New("boom"), "[WRN]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newBufferLogger(LevelTrace, FormatText)
			logger.LogError(tt.err)
			if !strings.Contains(buf.String(), tt.want) {
				t.Errorf("LogError() wrote %q, want level %s", buf.String(), tt.want)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{" WARN ", LevelWarn, false},
		{"", LevelInfo, false},
		{"verbose", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	if logger.IsLevelEnabled(LevelError) {
		t.Error("Discard() logger should not enable any level")
	}
}
