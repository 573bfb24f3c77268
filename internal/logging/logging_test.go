package logging

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewLevels(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "warn", "breakout")
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	logger.Info("hidden")
	logger.Warn("shown", "tick", 7)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("info message logged at warn level")
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "tick=7") {
		t.Errorf("warn message missing: %q", out)
	}
	if !strings.Contains(out, "breakout") {
		t.Errorf("prefix missing: %q", out)
	}
}

func TestNewDefaultLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "", "")
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	logger.Debug("debug")
	logger.Info("info")

	if strings.Contains(buf.String(), "debug") {
		t.Error("debug logged at default level")
	}
	if !strings.Contains(buf.String(), "info") {
		t.Error("info missing at default level")
	}
}

func TestNewInvalidLevel(t *testing.T) {
	if _, err := New(&bytes.Buffer{}, "loud", ""); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "breakout.log")

	f, err := OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	defer f.Close()

	logger, err := New(f, "info", "")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Info("written")
}

func TestDiscard(t *testing.T) {
	Discard().Error("dropped")
}
