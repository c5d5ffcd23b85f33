package logging

import (
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestInitialize_SilentByDefault(t *testing.T) {
	t.Setenv(LogLevelEnvVar, "")

	if err := Initialize(""); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}

	if GetLogger().Core().Enabled(zapcore.ErrorLevel) {
		t.Error("logger should be silent when no level is configured")
	}
}

func TestInitialize_FromEnv(t *testing.T) {
	t.Setenv(LogLevelEnvVar, "warn")

	if err := InitializeFromEnv(); err != nil {
		t.Fatalf("InitializeFromEnv() error = %v", err)
	}
	defer SetLogger(nil)

	core := GetLogger().Core()
	if core.Enabled(zapcore.InfoLevel) {
		t.Error("info should be disabled at warn level")
	}
	if !core.Enabled(zapcore.WarnLevel) {
		t.Error("warn should be enabled at warn level")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"verbose", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := parseLevel(tt.in); got != tt.want {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestLogAPIResponse_LevelByStatus(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := zap.New(core)

	LogAPIResponse(l, "req-1", "PATCH", "http://localhost/api/stores/1", 200, time.Millisecond)
	LogAPIResponse(l, "req-2", "DELETE", "http://localhost/api/stores/1", 409, time.Millisecond)

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("got %d log entries, want 2", len(entries))
	}
	if entries[0].Level != zapcore.DebugLevel {
		t.Errorf("2xx response logged at %v, want debug", entries[0].Level)
	}
	if entries[1].Level != zapcore.WarnLevel {
		t.Errorf("409 response logged at %v, want warn", entries[1].Level)
	}
	if got := entries[1].ContextMap()["request_id"]; got != "req-2" {
		t.Errorf("request_id = %v, want req-2", got)
	}
}
