// Package logging builds the diagnostic logger. The game owns the terminal,
// so log output always goes to a file (or nowhere), never to stdout.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/learning-adventure/internal/config"
)

// Options selects the log sink and format.
type Options struct {
	File   string // empty discards all output
	Level  string // debug, info, warn, error
	Format string // text, json, logfmt
	Prefix string
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New opens the log file (creating parent directories) and returns a logger
// writing to it. The returned closer releases the file.
func New(opts Options) (*log.Logger, io.Closer, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, nil, err
	}
	formatter, err := ParseFormat(opts.Format)
	if err != nil {
		return nil, nil, err
	}

	var (
		w      io.Writer = io.Discard
		closer io.Closer = nopCloser{}
	)
	if opts.File != "" {
		path := config.ExpandHome(opts.File)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w, closer = f, f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          opts.Prefix,
		Level:           level,
		Formatter:       formatter,
	})
	return logger, closer, nil
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}

// ParseLevel maps a level name to a log.Level. Empty means info.
func ParseLevel(s string) (log.Level, error) {
	if strings.TrimSpace(s) == "" {
		return log.InfoLevel, nil
	}
	level, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return log.InfoLevel, fmt.Errorf("invalid log level %q", s)
	}
	return level, nil
}

// ParseFormat maps a format name to a log.Formatter. Empty means text.
func ParseFormat(s string) (log.Formatter, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text":
		return log.TextFormatter, nil
	case "json":
		return log.JSONFormatter, nil
	case "logfmt":
		return log.LogfmtFormatter, nil
	default:
		return log.TextFormatter, fmt.Errorf("invalid log format %q", s)
	}
}
