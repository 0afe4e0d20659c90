package app

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/gopak/minigrep/internal/config"
)

const poem = "I'm nobody! Who are you?\nAre you nobody, too?\nThen there's a pair of us - don't tell!\nThey'd banish us, you know.\n\nHow dreary to be somebody!\nHow public, like a frog\nTo tell your name the livelong day\nTo an admiring bog!\n"

func TestRun_CaseSensitive(t *testing.T) {
	p := filepath.Join(t.TempDir(), "poem.txt")
	if err := os.WriteFile(p, []byte(poem), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	var out bytes.Buffer
	if err := Run(config.Config{Query: "to", Filename: p, CaseSensitive: true}, &out); err != nil {
		t.Fatalf("Run: %v", err)
	}
	want := "Are you nobody, too?\nHow dreary to be somebody!\n"
	if out.String() != want {
		t.Fatalf("got %q, want %q", out.String(), want)
	}
}

func TestRun_CaseInsensitive(t *testing.T) {
	r := &Runner{
		Read: func(string) (string, error) { return poem, nil },
	}
	var out bytes.Buffer
	r.Out = &out
	if err := r.Run(config.Config{Query: "to", Filename: "poem.txt"}); err != nil {
		t.Fatalf("Run: %v", err)
	}
	want := "Are you nobody, too?\nHow dreary to be somebody!\nTo tell your name the livelong day\nTo an admiring bog!\n"
	if out.String() != want {
		t.Fatalf("got %q, want %q", out.String(), want)
	}
}

func TestRun_NoMatchesIsNotAnError(t *testing.T) {
	r := &Runner{Read: func(string) (string, error) { return poem, nil }}
	var out bytes.Buffer
	r.Out = &out
	if err := r.Run(config.Config{Query: "monomorphization", Filename: "poem.txt", CaseSensitive: true}); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("expected no output, got %q", out.String())
	}
}

func TestRun_ReadErrorPropagatesUnmodified(t *testing.T) {
	want := &fs.PathError{Op: "open", Path: "nope.txt", Err: fs.ErrNotExist}
	r := &Runner{Read: func(string) (string, error) { return "", want }, Out: &bytes.Buffer{}}
	err := r.Run(config.Config{Query: "q", Filename: "nope.txt", CaseSensitive: true})
	if err != want {
		t.Fatalf("error was modified: %v", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("want not-exist, got %v", err)
	}
}
