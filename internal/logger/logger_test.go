package logger

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestNewDefaultLevelIsWarn verifies that info records are dropped unless verbose.
func TestNewDefaultLevelIsWarn(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Writer: &buf})

	l.Info("hidden")
	l.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info record written at default level: %q", out)
	}
	if !strings.Contains(out, "shown") {
		t.Errorf("warn record missing: %q", out)
	}
}

// TestNewVerboseWritesDebug verifies that Verbose enables debug records.
func TestNewVerboseWritesDebug(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Writer: &buf, Verbose: true})

	l.Debug("starting winget", "id", "9ABC")

	out := buf.String()
	if !strings.Contains(out, "starting winget") || !strings.Contains(out, "id=9ABC") {
		t.Errorf("debug record = %q, want message and attr", out)
	}
}

// TestNewNoColorForBuffers verifies that non-terminal writers get no ANSI escapes.
func TestNewNoColorForBuffers(t *testing.T) {
	var buf bytes.Buffer
	New(Options{Writer: &buf}).Error("boom")

	if strings.Contains(buf.String(), "\x1b[") {
		t.Errorf("output contains ANSI escapes: %q", buf.String())
	}
}

// TestDiscardWriteSucceeds verifies that logging to Discard does not panic.
func TestDiscardWriteSucceeds(t *testing.T) {
	l := Discard()
	l.Error("this should not panic")
	if l.Enabled(context.Background(), slog.LevelError) {
		t.Error("Discard() logger reports enabled")
	}
}

// TestIsTerminal verifies that buffers and regular files are not terminals.
func TestIsTerminal(t *testing.T) {
	if IsTerminal(&bytes.Buffer{}) {
		t.Error("IsTerminal(bytes.Buffer) = true")
	}

	f, err := os.Create(filepath.Join(t.TempDir(), "log"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if IsTerminal(f) {
		t.Error("IsTerminal(regular file) = true")
	}
}
