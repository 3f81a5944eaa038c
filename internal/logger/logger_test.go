package logger

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name  string
		level string
	}{
		{"debug level", "debug"},
		{"info level", "info"},
		{"warn level", "warn"},
		{"error level", "error"},
		{"invalid level", "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := New(tt.level)
			if log == nil {
				t.Error("New() returned nil")
			}
		})
	}
}

func TestLevelFiltering(t *testing.T) {
	tests := []struct {
		name        string
		configLevel string
		logLevel    level
		want        bool
	}{
		{"debug logs at debug level", "debug", levelDebug, true},
		{"info logs at debug level", "debug", levelInfo, true},
		{"debug doesn't log at info level", "info", levelDebug, false},
		{"info logs at info level", "info", levelInfo, true},
		{"error always logs", "debug", levelError, true},
		{"warn doesn't log at error level", "error", levelWarn, false},
	}

	ctx := context.Background()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := NewWithWriter(&buf, tt.configLevel)

			switch tt.logLevel {
			case levelDebug:
				log.Debug(ctx, "message")
			case levelInfo:
				log.Info(ctx, "message")
			case levelWarn:
				log.Warn(ctx, "message")
			case levelError:
				log.Error(ctx, "message")
			}

			if got := buf.Len() > 0; got != tt.want {
				t.Errorf("logged = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFormatting(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "info")

	log.Info(context.Background(), "formatted message: %s %d", "test", 123)

	if !strings.Contains(buf.String(), "[INFO] formatted message: test 123") {
		t.Errorf("unexpected output: %q", buf.String())
	}
}
