package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(&buf, Options{Prefix: "test", Level: "warn"})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	l.Info("hidden")
	l.Warn("shown", "lives", 2)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("info message should be filtered at warn level")
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "lives=2") {
		t.Errorf("warn message missing from output: %q", out)
	}
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	if _, err := New(&bytes.Buffer{}, Options{Level: "chatty"}); err == nil {
		t.Error("unknown level should fail")
	}
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "dodge.log")
	l, closeFn, err := OpenFile(path, Options{Level: "debug"})
	if err != nil {
		t.Fatalf("OpenFile() failed: %v", err)
	}
	l.Debug("phase change", "to", "playing")
	if err := closeFn(); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "phase change") {
		t.Errorf("log file missing message: %q", data)
	}
}

func TestOpenFileEmptyPathDiscards(t *testing.T) {
	l, closeFn, err := OpenFile("", Options{})
	if err != nil || l == nil {
		t.Fatalf("OpenFile(\"\") = %v, %v", l, err)
	}
	l.Error("dropped")
	if err := closeFn(); err != nil {
		t.Error(err)
	}
}
