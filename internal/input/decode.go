package input

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	clierrors "github.com/salmonumbrella/consoletable/internal/errors"
	"github.com/salmonumbrella/consoletable/internal/table"
)

// Options controls decoding.
type Options struct {
	Format Format
	// NoHeader treats the first CSV/TSV record as data and labels the
	// columns "Column 1", "Column 2", ...
	NoHeader bool
	// Query is a jq expression applied to JSON/YAML documents.
	Query string
	// JSONPath is applied to JSON/YAML documents after Query.
	JSONPath string
}

// Report describes what Decode did.
type Report struct {
	Format Format
	Rows   int
	// Padded counts rows that were shorter than the header and got
	// empty cells appended.
	Padded int
}

// Decode turns raw input into a table. source names the input in errors.
func Decode(data []byte, source string, opts Options) (*table.Table, Report, error) {
	format := opts.Format
	if format == "" || format == FormatAuto {
		format = sniff(data)
	}
	report := Report{Format: format}

	if (opts.Query != "" || opts.JSONPath != "") && (format == FormatCSV || format == FormatTSV) {
		return nil, report, clierrors.NewUserError(
			"--query/--jsonpath need JSON or YAML input",
			"Use --input-format json|yaml, or drop the filter for CSV/TSV",
		)
	}

	var (
		g   grid
		err error
	)
	switch format {
	case FormatCSV:
		g, err = decodeDelimited(data, ',', source, opts.NoHeader)
	case FormatTSV:
		g, err = decodeDelimited(data, '\t', source, opts.NoHeader)
	case FormatJSON, FormatYAML:
		var doc any
		doc, err = decodeDocument(data, format, source)
		if err == nil {
			doc, err = filterDocument(doc, opts.Query, opts.JSONPath)
		}
		if err == nil {
			g, err = tabulate(doc)
		}
	default:
		err = fmt.Errorf("unsupported input format: %s", format)
	}
	if err != nil {
		return nil, report, err
	}

	if len(g.columns) == 0 {
		return nil, report, clierrors.NewUserError(
			fmt.Sprintf("no columns found in %s", source),
			"Check that the input is not empty and has a header row",
		)
	}

	t := table.New(g.columns...)
	for _, r := range g.rows {
		if err := t.AddRow(r...); err != nil {
			return nil, report, err
		}
	}
	report.Rows = t.RowCount()
	report.Padded = g.padded
	return t, report, nil
}

// grid is decoded input before it becomes a table.
type grid struct {
	columns []any
	rows    [][]any
	padded  int
}

// add appends row, padding it with nil cells when short. A row wider than
// the header is an error.
func (g *grid) add(row []any) error {
	switch {
	case len(row) > len(g.columns):
		return fmt.Errorf("row has %d fields, header has %d", len(row), len(g.columns))
	case len(row) < len(g.columns):
		row = append(row, make([]any, len(g.columns)-len(row))...)
		g.padded++
	}
	g.rows = append(g.rows, row)
	return nil
}

func decodeDelimited(data []byte, comma rune, source string, noHeader bool) (grid, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.Comma = comma
	r.FieldsPerRecord = -1
	if comma == '\t' {
		r.LazyQuotes = true
	}

	type record struct {
		fields []string
		line   int
	}
	var records []record
	width := 0
	for {
		fields, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				return grid{}, clierrors.WrapSource(source, pe.Line, pe.Err)
			}
			return grid{}, clierrors.WrapSource(source, 0, err)
		}
		line, _ := r.FieldPos(0)
		records = append(records, record{fields: fields, line: line})
		width = max(width, len(fields))
	}

	var g grid
	if len(records) == 0 {
		return g, nil
	}

	if noHeader {
		for i := 0; i < width; i++ {
			g.columns = append(g.columns, fmt.Sprintf("Column %d", i+1))
		}
	} else {
		for _, f := range records[0].fields {
			g.columns = append(g.columns, f)
		}
		records = records[1:]
	}

	for _, rec := range records {
		row := make([]any, len(rec.fields))
		for i, f := range rec.fields {
			row[i] = f
		}
		if err := g.add(row); err != nil {
			return grid{}, clierrors.WrapSource(source, rec.line, err)
		}
	}
	return g, nil
}
