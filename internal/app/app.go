// Package app wires file reading, searching and output for one run.
package app

import (
	"fmt"
	"io"

	"github.com/gopak/minigrep/internal/config"
	"github.com/gopak/minigrep/internal/logging"
	"github.com/gopak/minigrep/internal/output"
	"github.com/gopak/minigrep/internal/search"
	"github.com/gopak/minigrep/internal/textio"
)

// Runner performs a search run. Read defaults to textio.ReadText.
type Runner struct {
	Read func(path string) (string, error)
	Out  io.Writer
}

func New(out io.Writer) *Runner {
	return &Runner{Read: textio.ReadText, Out: out}
}

// Run searches cfg.Filename for cfg.Query and writes every matching line.
// Read errors are returned unwrapped.
func (r *Runner) Run(cfg config.Config) error {
	logging.Debug(fmt.Sprintf("search %q in %s (case sensitive: %t)", cfg.Query, cfg.Filename, cfg.CaseSensitive))
	contents, err := r.Read(cfg.Filename)
	if err != nil {
		return err
	}
	logging.Debug(fmt.Sprintf("read %d bytes from %s", len(contents), cfg.Filename))

	// matches are views into contents, which stays alive until they are written
	matches := search.Find(cfg.Query, contents, cfg.CaseSensitive)
	logging.Debug(fmt.Sprintf("%d matching lines", len(matches)))
	return output.WriteLines(r.Out, matches)
}

// Run is a convenience for New(out).Run(cfg).
func Run(cfg config.Config, out io.Writer) error { return New(out).Run(cfg) }
