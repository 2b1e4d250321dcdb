// Package logging provides structured logging configuration using slog.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// handlerType specifies the output format for the logger.
type handlerType int

const (
	handlerText handlerType = iota
	handlerJSON
)

// setup is the internal helper that configures the global slog logger.
func setup(debug bool, w io.Writer, ht handlerType) {
	if w == nil {
		w = os.Stderr
	}

	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var handler slog.Handler
	switch ht {
	case handlerJSON:
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}

	slog.SetDefault(slog.New(handler))
}

// Setup configures the global slog logger with text output.
// If debug is true, sets level to Debug; otherwise Warn.
// Output goes to the provided writer (defaults to os.Stderr if nil).
func Setup(debug bool, w io.Writer) {
	setup(debug, w, handlerText)
}

// SetupJSON configures the global slog logger with JSON output.
func SetupJSON(debug bool, w io.Writer) {
	setup(debug, w, handlerJSON)
}

// ValidateFormat checks a handler name ("text" or "json"; empty means text).
func ValidateFormat(format string) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "text", "json":
		return nil
	default:
		return fmt.Errorf("invalid log format %q (expected text|json)", format)
	}
}

// SetupFormat picks the handler by name. See ValidateFormat.
func SetupFormat(format string, debug bool, w io.Writer) error {
	if err := ValidateFormat(format); err != nil {
		return err
	}
	if strings.EqualFold(strings.TrimSpace(format), "json") {
		SetupJSON(debug, w)
		return nil
	}
	Setup(debug, w)
	return nil
}
