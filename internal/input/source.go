// Package input decodes CSV, TSV, JSON and YAML data into tables.
package input

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/term"

	"github.com/salmonumbrella/consoletable/internal/iocontext"
)

// Format is an input data format.
type Format string

const (
	// FormatAuto picks a format from the file extension or the first byte.
	FormatAuto Format = "auto"
	FormatCSV  Format = "csv"
	FormatTSV  Format = "tsv"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat converts a string to a Format.
// Empty string defaults to FormatAuto.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatAuto, "":
		return FormatAuto, nil
	case FormatCSV:
		return FormatCSV, nil
	case FormatTSV, "tab":
		return FormatTSV, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("invalid input format %q (expected auto|csv|tsv|json|yaml)", s)
	}
}

// FormatForPath infers a format from a file extension. Unknown extensions
// and "-" yield FormatAuto.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV
	case ".tsv", ".tab":
		return FormatTSV
	case ".json", ".jsonl":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatAuto
	}
}

// sniff guesses the format of data that has no usable extension.
func sniff(data []byte) Format {
	trimmed := strings.TrimSpace(string(data))
	switch {
	case strings.HasPrefix(trimmed, "["), strings.HasPrefix(trimmed, "{"):
		return FormatJSON
	case strings.HasPrefix(trimmed, "---"), strings.HasPrefix(trimmed, "- "):
		return FormatYAML
	default:
		return FormatCSV
	}
}

// SourceName is the display name of an input path.
func SourceName(path string) string {
	if path == "" || path == "-" {
		return "stdin"
	}
	return path
}

// ReadSource reads input from a file path, or from stdin when path is
// "-" or empty. Stdin comes from the context when injected.
func ReadSource(ctx context.Context, path string) ([]byte, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(iocontext.StdinOrDefault(ctx, os.Stdin))
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", path, err)
	}
	return data, nil
}

// IsInteractive reports whether r is a terminal, meaning nothing was piped in.
func IsInteractive(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
