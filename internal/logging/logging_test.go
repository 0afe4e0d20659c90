package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gopak/minigrep/internal/config"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() {
		SetOutput(os.Stderr)
		SetVerbose(false)
		Close()
	})
	return &buf
}

func TestDebug_OnlyWhenVerbose(t *testing.T) {
	buf := capture(t)
	SetColor(config.ColorNever)
	SetVerbose(false)
	Debug("hidden")
	if buf.Len() != 0 {
		t.Fatalf("debug printed while not verbose: %q", buf.String())
	}
	SetVerbose(true)
	Debug("shown")
	if buf.String() != "shown\n" {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}

func TestError_NoColor(t *testing.T) {
	buf := capture(t)
	SetColor(config.ColorNever)
	Error("boom")
	if buf.String() != "boom\n" {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}

func TestError_AlwaysColor(t *testing.T) {
	buf := capture(t)
	SetColor(config.ColorAlways)
	t.Cleanup(func() { SetColor(config.ColorNever) })
	Error("boom")
	if !strings.Contains(buf.String(), "\x1b[") || !strings.Contains(buf.String(), "boom") {
		t.Fatalf("expected colored output, got %q", buf.String())
	}
}

func TestInit_LogFile(t *testing.T) {
	buf := capture(t)
	on := true
	p := filepath.Join(t.TempDir(), "logs", "minigrep.log")
	if err := Init(config.Settings{Color: config.ColorNever, Verbose: &on, LogFile: p}); err != nil {
		t.Fatalf("Init: %v", err)
	}
	Debug("reading file")
	Error("failed")
	Close()
	b, err := os.ReadFile(p)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(b), "[DEBUG] reading file") || !strings.Contains(string(b), "[ERROR] failed") {
		t.Fatalf("log file missing entries: %q", string(b))
	}
	if !strings.Contains(buf.String(), "reading file") {
		t.Fatalf("debug not echoed to output: %q", buf.String())
	}
}

func TestSetColor_AutoFollowsOutput(t *testing.T) {
	buf := capture(t)
	SetColor(config.ColorAuto)
	Error("plain")
	if buf.String() != "plain\n" {
		t.Fatalf("buffer is not a terminal, got %q", buf.String())
	}

	f, err := os.Create(filepath.Join(t.TempDir(), "stderr.txt"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()
	SetOutput(f)
	SetColor(config.ColorAuto)
	Error("redirected")
	b, err := os.ReadFile(f.Name())
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(b) != "redirected\n" {
		t.Fatalf("regular file is not a terminal, got %q", string(b))
	}
}
