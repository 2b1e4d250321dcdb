package cmd

import (
	"context"
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	clierrors "github.com/salmonumbrella/consoletable/internal/errors"
	"github.com/salmonumbrella/consoletable/internal/hexfmt"
	"github.com/salmonumbrella/consoletable/internal/output"
	"github.com/salmonumbrella/consoletable/internal/table"
)

// IndexLabel labels the row number column added by --index.
const IndexLabel = "#"

// tableFlags are the presentation flags shared by render and sql.
type tableFlags struct {
	style       string
	count       bool
	dropColumns []int
	index       bool
	hex         bool
	hexPad      bool
}

func (f *tableFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVarP(&f.style, "style", "s", "", "Table style: default|markdown|alternative|minimal")
	fs.BoolVar(&f.count, "count", false, "Append a row count line (default style)")
	fs.IntSliceVar(&f.dropColumns, "drop-column", nil, "Remove the column at this zero-based index (repeatable)")
	fs.BoolVar(&f.index, "index", false, "Prepend a 1-based row number column")
	fs.BoolVar(&f.hex, "hex", false, "Show integer cells as hexadecimal (0x..)")
	fs.BoolVar(&f.hexPad, "hex-pad", false, "With --hex, pad single-digit values to two digits")

	flagAlias(fs, "drop-column", "drop")
	_ = cmd.RegisterFlagCompletionFunc("style", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		names := make([]string, len(table.Styles))
		for i, s := range table.Styles {
			names[i] = s.String()
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})
}

// resolveStyle picks the style: flag, then $CTAB_STYLE or config, then default.
func (f *tableFlags) resolveStyle(cmd *cobra.Command) (table.Style, error) {
	value := f.style
	if !commandFlagChanged(cmd, "style") {
		value = ConfigFromContext(cmd.Context()).GetStyle()
	}
	return table.ParseStyle(value)
}

// apply transforms tbl per the flags: drop columns, hex cells, row
// numbers, count. Drop indexes refer to the columns as decoded.
func (f *tableFlags) apply(cmd *cobra.Command, tbl *table.Table) (*table.Table, error) {
	drops := slices.Clone(f.dropColumns)
	slices.Sort(drops)
	drops = slices.Compact(drops)
	for i := len(drops) - 1; i >= 0; i-- {
		idx := drops[i]
		if err := tbl.RemoveColumn(idx); err != nil {
			return nil, err
		}
	}

	if f.hexPad && !f.hex {
		return nil, clierrors.NewUserError("--hex-pad requires --hex", "Add --hex")
	}
	if f.hex {
		opts := hexfmt.Default
		if f.hexPad {
			opts |= hexfmt.ZeroPad
		}
		mapped, err := mapCells(tbl, func(v any) any { return hexfmt.Cell(v, opts) })
		if err != nil {
			return nil, err
		}
		tbl = mapped
	}

	if f.index {
		numbers := make([]any, tbl.RowCount())
		for i := range numbers {
			numbers[i] = i + 1
		}
		if err := tbl.AttachStart(IndexLabel, numbers...); err != nil {
			return nil, err
		}
	}

	count := f.count
	if !commandFlagChanged(cmd, "count") {
		count = ConfigFromContext(cmd.Context()).Count
	}
	tbl.SetEnableCount(count)
	return tbl, nil
}

// mapCells returns a copy of tbl with fn applied to every cell.
func mapCells(tbl *table.Table, fn func(any) any) (*table.Table, error) {
	out := table.New(tbl.Columns()...).SetEnableCount(tbl.Options().EnableCount)
	for _, row := range tbl.Rows() {
		for i, v := range row {
			row[i] = fn(v)
		}
		if err := out.AddRow(row...); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// emitTable applies the flags and prints tbl in the context's output format.
func emitTable(ctx context.Context, cmd *cobra.Command, f *tableFlags, tbl *table.Table) error {
	style, err := f.resolveStyle(cmd)
	if err != nil {
		return err
	}
	tbl, err = f.apply(cmd, tbl)
	if err != nil {
		return err
	}
	printer := output.NewPrinter(stdoutFromContext(ctx), output.FormatFromContext(ctx)).WithStyle(style)
	if err := printer.Print(ctx, tbl); err != nil {
		return fmt.Errorf("failed to write table: %w", err)
	}
	return nil
}
