package output

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/salmonumbrella/consoletable/internal/table"
)

// Format represents the output format type.
type Format string

const (
	// FormatText renders the table in a ConsoleTable style (default).
	FormatText Format = "text"
	// FormatJSON is pretty-printed JSON format.
	FormatJSON Format = "json"
	// FormatNDJSON is newline-delimited JSON format, one object per row.
	FormatNDJSON Format = "ndjson"
	// FormatYAML is YAML format.
	FormatYAML Format = "yaml"
)

// ParseFormat converts a string to a Format type.
// Empty string defaults to FormatText.
// Returns error if the format is invalid.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatText, "table", "":
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatNDJSON, "jsonl":
		return FormatNDJSON, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	default:
		return "", errors.New("invalid --output format (expected text|json|ndjson|jsonl|yaml)")
	}
}

// Printer handles output formatting across different formats.
type Printer struct {
	w      io.Writer
	format Format
	style  table.Style
}

// NewPrinter creates a new Printer that writes to w in the given format.
func NewPrinter(w io.Writer, format Format) *Printer {
	return &Printer{
		w:      w,
		format: format,
	}
}

// WithStyle sets the render style used by FormatText.
func (p *Printer) WithStyle(style table.Style) *Printer {
	p.style = style
	return p
}

// Print writes t in the configured format.
func (p *Printer) Print(ctx context.Context, t *table.Table) error {
	if t == nil {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	switch p.format {
	case FormatText, "":
		return t.Fprint(p.w, p.style)
	case FormatJSON:
		return p.printJSON(FromTable(t))
	case FormatNDJSON:
		return p.printNDJSON(FromTable(t))
	case FormatYAML:
		return p.printYAML(FromTable(t))
	default:
		return fmt.Errorf("unsupported format: %s", p.format)
	}
}

func (p *Printer) printJSON(data Table) error {
	enc := json.NewEncoder(p.w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

func (p *Printer) printNDJSON(data Table) error {
	enc := json.NewEncoder(p.w)
	enc.SetEscapeHTML(false)
	keys := recordKeys(data.Headers)
	for _, row := range data.Rows {
		if err := enc.Encode(record{keys: keys, values: row}); err != nil {
			return err
		}
	}
	return nil
}

// printYAML outputs data as YAML.
func (p *Printer) printYAML(data Table) error {
	enc := yaml.NewEncoder(p.w)
	enc.SetIndent(2)
	defer func() { _ = enc.Close() }()
	return enc.Encode(data)
}
