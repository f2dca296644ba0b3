package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ironsheep/image-renamer/internal/config"
)

func TestNew_NoFile(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.LogFile = ""
	cfg.Verbose = true

	var console bytes.Buffer
	l, err := New(&cfg, &console)
	if err != nil {
		t.Fatal(err)
	}
	defer l.Close()

	l.Info("test message", "path", "a.png")
	if !strings.Contains(console.String(), "test message") || !strings.Contains(console.String(), "path=a.png") {
		t.Errorf("console output: %s", console.String())
	}
}

func TestNew_WithFile(t *testing.T) {
	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.LogFile = filepath.Join(dir, "logs", "image_renamer.log")

	var console bytes.Buffer
	l, err := New(&cfg, &console)
	if err != nil {
		t.Fatal(err)
	}
	l.Error("Error extracting text", "path", "bad.jpg")
	if err := l.Close(); err != nil {
		t.Fatal(err)
	}

	b, _ := os.ReadFile(cfg.LogFile)
	if !bytes.Contains(b, []byte("level=ERROR")) || !bytes.Contains(b, []byte("bad.jpg")) {
		t.Errorf("log file content: %s", string(b))
	}
	if !strings.Contains(console.String(), "bad.jpg") {
		t.Errorf("console should mirror the file: %s", console.String())
	}
}

func TestNew_AppendsToFile(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.LogFile = filepath.Join(t.TempDir(), "run.log")

	for _, msg := range []string{"first run", "second run"} {
		l, err := New(&cfg, &bytes.Buffer{})
		if err != nil {
			t.Fatal(err)
		}
		l.Warn(msg)
		l.Close()
	}

	b, _ := os.ReadFile(cfg.LogFile)
	if !bytes.Contains(b, []byte("first run")) || !bytes.Contains(b, []byte("second run")) {
		t.Errorf("log file should keep earlier runs: %s", string(b))
	}
}

func TestNew_DefaultLevelHidesInfo(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.LogFile = ""

	var console bytes.Buffer
	l, err := New(&cfg, &console)
	if err != nil {
		t.Fatal(err)
	}
	l.Info("hidden")
	l.Warn("shown")

	if strings.Contains(console.String(), "hidden") || !strings.Contains(console.String(), "shown") {
		t.Errorf("console output: %s", console.String())
	}
}

func TestNew_InvalidLevel(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.LogFile = ""
	cfg.LogLevel = "chatty"
	if _, err := New(&cfg, &bytes.Buffer{}); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestLevel(t *testing.T) {
	tests := []struct {
		name    string
		verbose bool
		want    slog.Level
	}{
		{"", false, slog.LevelWarn},
		{"", true, slog.LevelInfo},
		{"debug", false, slog.LevelDebug},
		{"info", false, slog.LevelInfo},
		{"warn", true, slog.LevelWarn},
		{"error", false, slog.LevelError},
	}
	for _, tt := range tests {
		got, err := Level(tt.name, tt.verbose)
		if err != nil {
			t.Fatalf("Level(%q) failed: %v", tt.name, err)
		}
		if got != tt.want {
			t.Errorf("Level(%q, %v) = %v, want %v", tt.name, tt.verbose, got, tt.want)
		}
	}
}
