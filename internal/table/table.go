package table

import (
	"slices"

	clierrors "github.com/salmonumbrella/consoletable/internal/errors"
)

// Options configures a new Table.
type Options struct {
	// Initial column labels
	Columns []string `yaml:"columns,omitempty"`

	// Append a " Count: N" line to default-style output
	EnableCount bool `yaml:"count,omitempty"`
}

// Table is an ordered set of column labels and rows of cell values.
type Table struct {
	columns     []any
	rows        [][]any
	enableCount bool
}

// New creates a Table with the given column labels.
func New(columns ...any) *Table {
	t := &Table{}
	return t.AddColumns(columns...)
}

// NewWithOptions creates a Table from opts.
func NewWithOptions(opts Options) *Table {
	t := &Table{enableCount: opts.EnableCount}
	for _, c := range opts.Columns {
		t.AddColumn(c)
	}
	return t
}

// Options returns the table's current settings. Columns holds the text of
// the current labels in a fresh slice.
func (t *Table) Options() Options {
	columns := make([]string, len(t.columns))
	for i, c := range t.columns {
		columns[i] = CellText(c)
	}
	return Options{Columns: columns, EnableCount: t.enableCount}
}

// SetEnableCount toggles the trailing count line of the default style.
func (t *Table) SetEnableCount(enabled bool) *Table {
	t.enableCount = enabled
	return t
}

// Columns returns a copy of the column labels.
func (t *Table) Columns() []any {
	return slices.Clone(t.columns)
}

// Rows returns a copy of the rows.
func (t *Table) Rows() [][]any {
	out := make([][]any, len(t.rows))
	for i, r := range t.rows {
		out[i] = slices.Clone(r)
	}
	return out
}

// ColumnCount returns the number of columns.
func (t *Table) ColumnCount() int {
	return len(t.columns)
}

// RowCount returns the number of rows.
func (t *Table) RowCount() int {
	return len(t.rows)
}

// AddColumn appends a column label. Existing rows are not touched, so it is
// meant for building the header before any rows are added.
func (t *Table) AddColumn(label any) *Table {
	t.columns = append(t.columns, label)
	return t
}

// AddColumns appends each label in order.
func (t *Table) AddColumns(labels ...any) *Table {
	for _, l := range labels {
		t.AddColumn(l)
	}
	return t
}

// AddRow appends a row. It needs exactly one value per column.
func (t *Table) AddRow(values ...any) error {
	if len(t.columns) == 0 {
		return &clierrors.ShapeError{Op: "add row", Got: len(values), Message: "set columns first"}
	}
	if len(values) != len(t.columns) {
		return clierrors.NewShapeError("add row", len(t.columns), len(values))
	}
	t.rows = append(t.rows, slices.Clone(values))
	return nil
}

// Attach inserts a column at index, with rowValues[i] becoming the new cell
// of row i. It needs exactly one value per existing row.
func (t *Table) Attach(index int, label any, rowValues ...any) error {
	if len(rowValues) != len(t.rows) {
		return clierrors.NewShapeError("attach", len(t.rows), len(rowValues))
	}
	if index < 0 || index > len(t.columns) {
		return &clierrors.IndexError{Op: "attach", Index: index, Len: len(t.columns) + 1}
	}

	rows := make([][]any, len(t.rows))
	for i, r := range t.rows {
		rows[i] = slices.Insert(slices.Clone(r), index, rowValues[i])
	}
	t.columns = slices.Insert(t.columns, index, label)
	t.rows = rows
	return nil
}

// AttachStart attaches a column in front of all others.
func (t *Table) AttachStart(label any, rowValues ...any) error {
	return t.Attach(0, label, rowValues...)
}

// AttachEnd attaches a column after all others.
func (t *Table) AttachEnd(label any, rowValues ...any) error {
	return t.Attach(len(t.columns), label, rowValues...)
}

// InsertColumn is Attach under the name callers usually look for.
func (t *Table) InsertColumn(index int, label any, rowValues ...any) error {
	return t.Attach(index, label, rowValues...)
}

// RemoveColumn drops the column at index from the header and every row.
func (t *Table) RemoveColumn(index int) error {
	if index < 0 || index >= len(t.columns) {
		return &clierrors.IndexError{Op: "remove column", Index: index, Len: len(t.columns)}
	}
	t.columns = slices.Delete(t.columns, index, index+1)
	for i := range t.rows {
		t.rows[i] = slices.Delete(t.rows[i], index, index+1)
	}
	return nil
}
