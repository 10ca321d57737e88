// File: logger_test.go
// Title: Logger Tests
// Description: Tests for logger configuration, context fields, level
//              filtering and coded-error logging.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-12
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive logger tests
// - 2026-10-12 v0.2.0: Request ids and LogError severity mapping

package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	mdwerror "github.com/msto63/chronos/foundation/core/error"
)

func newBufferLogger(level Level, format Format) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewWithConfig(Config{Level: level, Format: format, Output: &buf}), &buf
}

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var data map[string]interface{}
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &data); err != nil {
		t.Fatalf("invalid JSON output %q: %v", buf.String(), err)
	}
	return data
}

func TestNew(t *testing.T) {
	logger := New()

	if logger == nil {
		t.Fatal("New() should not return nil")
	}

	if logger.GetLevel() != DefaultLevel() {
		t.Errorf("New() level = %v, want %v", logger.GetLevel(), DefaultLevel())
	}

	if logger.contextFields == nil {
		t.Error("New() should initialize context fields")
	}
}

func TestNewWithConfig(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{
		Level:  LevelError,
		Format: FormatText,
		Output: &buf,
		Name:   "test-logger",
	})

	if logger.GetLevel() != LevelError {
		t.Errorf("NewWithConfig() level = %v, want %v", logger.GetLevel(), LevelError)
	}

	if logger.name != "test-logger" {
		t.Errorf("NewWithConfig() name = %v, want test-logger", logger.name)
	}

	if logger.output != &buf {
		t.Error("NewWithConfig() should set custom output")
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

func TestLoggerWithFieldIsolation(t *testing.T) {
	base, buf := newBufferLogger(LevelInfo, FormatJSON)
	child := base.WithField("component", "parser")

	base.Info("base message")
	data := decodeLine(t, buf)
	if _, ok := data["component"]; ok {
		t.Error("WithField() should not modify original logger")
	}

	buf.Reset()
	child.Info("child message")
	data = decodeLine(t, buf)
	if data["component"] != "parser" {
		t.Errorf("component = %v, want parser", data["component"])
	}
}

func TestLoggerWithRequestID(t *testing.T) {
	base, buf := newBufferLogger(LevelDebug, FormatJSON)
	base.WithRequestID("req-42").WithName("chronos").Debug("tagged")

	data := decodeLine(t, buf)
	if data["request_id"] != "req-42" {
		t.Errorf("request_id = %v, want req-42", data["request_id"])
	}
	if data["logger"] != "chronos" {
		t.Errorf("logger = %v, want chronos", data["logger"])
	}
}

func TestLoggerLevelFiltering(t *testing.T) {
	tests := []struct {
		name    string
		level   Level
		log     func(l *Logger)
		written bool
	}{
		{"debug below info", LevelInfo, func(l *Logger) { l.Debug("x") }, false},
		{"info at info", LevelInfo, func(l *Logger) { l.Info("x") }, true},
		{"warn above info", LevelInfo, func(l *Logger) { l.Warn("x") }, true},
		{"trace at trace", LevelTrace, func(l *Logger) { l.Trace("x") }, true},
		{"error below fatal", LevelFatal, func(l *Logger) { l.Error("x") }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newBufferLogger(tt.level, FormatText)
			tt.log(logger)
			if got := buf.Len() > 0; got != tt.written {
				t.Errorf("written = %v, want %v", got, tt.written)
			}
		})
	}
}

func TestLoggerCallFields(t *testing.T) {
	logger, buf := newBufferLogger(LevelInfo, FormatJSON)
	logger.WithField("a", 1).Info("msg", Fields{"b": "two"}, Field("c", true))

	data := decodeLine(t, buf)
	if data["a"] != float64(1) {
		t.Errorf("a = %v, want 1", data["a"])
	}
	if data["b"] != "two" {
		t.Errorf("b = %v, want two", data["b"])
	}
	if data["c"] != true {
		t.Errorf("c = %v, want true", data["c"])
	}
}

func TestLoggerErrorWithErr(t *testing.T) {
	logger, buf := newBufferLogger(LevelInfo, FormatJSON)
	logger.ErrorWithErr("write failed", errors.New("disk full"))

	data := decodeLine(t, buf)
	if data["error"] != "disk full" {
		t.Errorf("error = %v, want disk full", data["error"])
	}
	if data["level"] != "error" {
		t.Errorf("level = %v, want ERROR", data["level"])
	}
}

func TestLoggerLogError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantLevel string
		wantCode  interface{}
	}{
		{
			name:      "low severity logs at info",
			err:       mdwerror.New("bad month").WithCode(mdwerror.CodeDateRange),
			wantLevel: "info",
			wantCode:  "DATE_RANGE",
		},
		{
			name:      "high severity logs at error",
			err:       mdwerror.New("open failed").WithCode(mdwerror.CodeStorageError),
			wantLevel: "error",
			wantCode:  "STORAGE_ERROR",
		},
		{
			name:      "plain error logs at error",
			err:       errors.New("plain"),
			wantLevel: "error",
			wantCode:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newBufferLogger(LevelTrace, FormatJSON)
			logger.LogError(tt.err)

			data := decodeLine(t, buf)
			if data["level"] != tt.wantLevel {
				t.Errorf("level = %v, want %v", data["level"], tt.wantLevel)
			}
			if data["error_code"] != tt.wantCode {
				t.Errorf("error_code = %v, want %v", data["error_code"], tt.wantCode)
			}
		})
	}
}

func TestLoggerLogErrorNil(t *testing.T) {
	logger, buf := newBufferLogger(LevelTrace, FormatJSON)
	logger.LogError(nil)
	if buf.Len() != 0 {
		t.Errorf("LogError(nil) wrote %q, want nothing", buf.String())
	}
}

func TestTimerStop(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug, FormatText)
	timer := logger.StartTimer("parse").WithField("lines", 3)
	timer.Stop()

	out := buf.String()
	if !strings.Contains(out, "parse completed") {
		t.Errorf("output %q should contain completion message", out)
	}
	if !strings.Contains(out, "lines=3") {
		t.Errorf("output %q should contain timer field", out)
	}

	buf.Reset()
	if d := timer.Stop(); d != 0 {
		t.Errorf("second Stop() = %v, want 0", d)
	}
	if buf.Len() != 0 {
		t.Error("second Stop() should not log")
	}
}

func TestTimerStopWithError(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug, FormatText)
	logger.StartTimer("load").StopWithError(errors.New("boom"))

	out := buf.String()
	if !strings.Contains(out, "load failed") || !strings.Contains(out, `error="boom"`) {
		t.Errorf("output %q should report failure", out)
	}
}

func TestDefaultLogger(t *testing.T) {
	original := GetDefault()
	defer SetDefault(original)

	custom := NewNop()
	SetDefault(custom)
	if GetDefault() != custom {
		t.Error("SetDefault() did not replace the default logger")
	}
}
