package output

import (
	"bytes"
	"errors"
	"testing"
)

func TestWriteLines(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteLines(&buf, []string{"Rust:", "", "Trust me."}); err != nil {
		t.Fatalf("WriteLines: %v", err)
	}
	if buf.String() != "Rust:\n\nTrust me.\n" {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}

func TestWriteLines_None(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteLines(&buf, nil); err != nil {
		t.Fatalf("WriteLines: %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %q", buf.String())
	}
}

type failWriter struct{}

var errClosed = errors.New("closed pipe")

func (failWriter) Write([]byte) (int, error) { return 0, errClosed }

func TestWriteLines_WriteError(t *testing.T) {
	if err := WriteLines(failWriter{}, []string{"x"}); !errors.Is(err, errClosed) {
		t.Fatalf("want write error, got %v", err)
	}
}
