package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		expected zapcore.Level
	}{
		{name: "debug", level: "debug", expected: zapcore.DebugLevel},
		{name: "info", level: "info", expected: zapcore.InfoLevel},
		{name: "warn", level: "warn", expected: zapcore.WarnLevel},
		{name: "error", level: "error", expected: zapcore.ErrorLevel},
		{name: "unknown falls back to info", level: "chatty", expected: zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseLevel(tt.level); got != tt.expected {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.level, got, tt.expected)
			}
		})
	}
}

func TestInitialize_SilentByDefault(t *testing.T) {
	t.Setenv(LogLevelEnvVar, "")

	if err := Initialize(""); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	if GetLogger().Core().Enabled(zapcore.ErrorLevel) {
		t.Error("expected nop logger when no level is configured")
	}
}

func TestInitialize_WritesToLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inlineedit.log")
	t.Setenv(LogFileEnvVar, path)
	t.Setenv(LogLevelEnvVar, "debug")
	defer SetLogger(nil)

	if err := InitializeFromEnv(); err != nil {
		t.Fatalf("InitializeFromEnv() error = %v", err)
	}
	LogTransition("heading1", "display", "edit", "click")
	Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), "Inline edit transition") {
		t.Errorf("log file missing transition entry, got: %s", data)
	}
}

func TestLogConfirm_TruncatesValue(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))
	defer SetLogger(nil)

	LogConfirm("para", strings.Repeat("x", 100))

	entries := logs.FilterMessage("Inline edit confirmed").All()
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["length"] != int64(100) {
		t.Errorf("length = %v, want 100", fields["length"])
	}
	if v, _ := fields["value"].(string); v != strings.Repeat("x", 64)+"..." {
		t.Errorf("value = %q, want truncated to 64 runes", v)
	}
}
