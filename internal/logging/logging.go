// Package logging builds the leveled console logger used for diagnostics.
package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// Prefix is prepended to every diagnostic line.
const Prefix = "todo"

// Options holds configuration for console logging.
type Options struct {
	Level           string
	ReportTimestamp bool
}

// DefaultOptions returns default options for console logging.
func DefaultOptions() Options {
	return Options{
		Level: "warn",
	}
}

// New creates a text logger writing to w. Diagnostics belong on the
// error stream, so callers normally pass os.Stderr.
func New(w io.Writer, opts Options) (*log.Logger, error) {
	level, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(opts.Level)))
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", opts.Level, err)
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Formatter:       log.TextFormatter,
		ReportTimestamp: opts.ReportTimestamp,
		Prefix:          Prefix,
	}), nil
}
