package table

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// CellText returns the printable form of a cell. Absent (nil) cells print
// as the empty string.
func CellText(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// ColumnWidths returns, for each column, the length of its longest label or
// cell text. Nil cells do not count; a column with nothing to measure is 0.
func (t *Table) ColumnWidths() []int {
	widths := make([]int, len(t.columns))
	for i, label := range t.columns {
		widths[i] = measure(label)
		for _, row := range t.rows {
			if i < len(row) {
				widths[i] = max(widths[i], measure(row[i]))
			}
		}
	}
	return widths
}

func measure(v any) int {
	if v == nil {
		return 0
	}
	return utf8.RuneCountInString(CellText(v))
}

// template lays out one table line: every cell is written as
// " <delim> <value padded to width>", followed by a closing " <delim>".
// When trimmed, surrounding spaces of the template itself are dropped,
// so padding inside the cells survives.
type template struct {
	widths  []int
	delim   string
	trimmed bool
}

func newTemplate(widths []int, delim string, trimmed bool) template {
	return template{widths: widths, delim: delim, trimmed: trimmed}
}

func (tp template) line(values []any) string {
	sep := " " + tp.delim + " "
	closing := " " + tp.delim

	var b strings.Builder
	for i, w := range tp.widths {
		if i == 0 && tp.trimmed {
			b.WriteString(strings.TrimLeft(sep, " "))
		} else {
			b.WriteString(sep)
		}
		var v any
		if i < len(values) {
			v = values[i]
		}
		fmt.Fprintf(&b, "%-*s", w, CellText(v))
	}
	if tp.trimmed {
		closing = strings.TrimRight(closing, " ")
	}
	b.WriteString(closing)
	return b.String()
}
