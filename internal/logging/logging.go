// Package logging builds the process logger: human-readable text on
// stderr and, when requested, JSON records appended to a log file.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	slogmulti "github.com/samber/slog-multi"
)

type Options struct {
	// Level applies to the terminal handler. The file handler always
	// records debug and above.
	Level slog.Leveler
	// Terminal receives text records; nil means os.Stderr.
	Terminal io.Writer
	// FilePath, when set, is opened in append mode for JSON records.
	FilePath string
	// RunID tags every file record so appended runs can be told apart.
	RunID string
}

// New returns the logger and a function releasing the log file.
func New(opts Options) (*slog.Logger, func() error, error) {
	term := opts.Terminal
	if term == nil {
		term = os.Stderr
	}
	level := opts.Level
	if level == nil {
		level = slog.LevelWarn
	}
	handlers := []slog.Handler{
		slog.NewTextHandler(term, &slog.HandlerOptions{Level: level}),
	}

	closeFn := func() error { return nil }
	if opts.FilePath != "" {
		// #nosec G304 -- path comes from the command line
		f, err := os.OpenFile(opts.FilePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		var fileHandler slog.Handler = slog.NewJSONHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})
		if opts.RunID != "" {
			fileHandler = fileHandler.WithAttrs([]slog.Attr{slog.String("run_id", opts.RunID)})
		}
		handlers = append(handlers, fileHandler)
		closeFn = f.Close
	}

	return slog.New(slogmulti.Fanout(handlers...)), closeFn, nil
}

// ParseLevel accepts debug, info, warn and error in any case.
func ParseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return lvl, nil
}
