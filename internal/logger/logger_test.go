package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInit(t *testing.T) {
	configDir := filepath.Join(t.TempDir(), "config")

	if err := Init(Config{ConfigDir: configDir}); err != nil {
		t.Fatalf("Failed to initialize logger: %v", err)
	}
	t.Cleanup(func() { Logger = nil })

	if Logger == nil {
		t.Fatal("Logger is nil after initialization")
	}

	want := filepath.Join(configDir, "logs", FileName)
	if Path() != want {
		t.Errorf("Path() = %q, want %q", Path(), want)
	}

	Info("recipe added", "id", "abc")
	Debug("filtered out at info level")

	data, err := os.ReadFile(want)
	if err != nil {
		t.Fatalf("log file not written: %v", err)
	}
	if !strings.Contains(string(data), "recipe added") {
		t.Errorf("log file missing info record: %q", data)
	}
	if strings.Contains(string(data), "filtered out") {
		t.Errorf("debug record written at info level: %q", data)
	}
}

func TestInitDebugMode(t *testing.T) {
	configDir := filepath.Join(t.TempDir(), "config")

	if err := Init(Config{Debug: true, ConfigDir: configDir}); err != nil {
		t.Fatalf("Failed to initialize logger in debug mode: %v", err)
	}
	t.Cleanup(func() { Logger = nil })

	Debug("debug record")

	data, err := os.ReadFile(Path())
	if err != nil {
		t.Fatalf("log file not written: %v", err)
	}
	if !strings.Contains(string(data), "debug record") {
		t.Errorf("debug record missing in debug mode: %q", data)
	}
}

func TestLogFunctionsWithoutInit(t *testing.T) {
	Logger = nil

	// must not panic
	Debug("Test debug message")
	Info("Test info message")
	Warn("Test warning message")
	Error("Test error message")
}
