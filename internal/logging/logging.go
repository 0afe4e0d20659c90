package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"

	"github.com/gopak/minigrep/internal/config"
)

// Diagnostics never go to stdout; stdout carries matched lines only.
var out io.Writer = os.Stderr
var logfile *os.File
var verbose bool
var colored bool

// Init applies settings: color mode, verbosity and the optional log file.
func Init(s config.Settings) error {
	SetColor(s.Color)
	SetVerbose(s.IsVerbose())
	if s.LogFile == "" {
		log.SetOutput(io.Discard)
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(s.LogFile), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(s.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	Close()
	logfile = f
	log.SetOutput(f)
	return nil
}

func Close() {
	if logfile != nil {
		_ = logfile.Close()
		logfile = nil
	}
	log.SetOutput(io.Discard)
}

// SetOutput redirects diagnostics, mainly for tests and cobra's ErrOrStderr.
func SetOutput(w io.Writer) { out = w }

// SetColor resolves a color mode; "auto" colors only when the diagnostics
// writer is a terminal.
func SetColor(mode string) {
	switch mode {
	case config.ColorAlways:
		colored = true
		text.EnableColors()
	case config.ColorNever:
		colored = false
	default:
		colored = isTerminal(out)
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// SetVerbose toggles debug output.
func SetVerbose(v bool) { verbose = v }

func paint(c text.Color, msg string) string {
	if !colored {
		return msg
	}
	return c.Sprint(msg)
}

func Info(msg string) {
	_, _ = fmt.Fprintln(out, msg)
	log.Println(msg)
}

func Error(msg string) {
	_, _ = fmt.Fprintln(out, paint(text.FgRed, msg))
	log.Println("[ERROR] " + msg)
}

// Debug prints only when verbose mode is enabled.
func Debug(msg string) {
	if !verbose {
		return
	}
	_, _ = fmt.Fprintln(out, paint(text.FgHiBlack, msg))
	log.Println("[DEBUG] " + msg)
}
