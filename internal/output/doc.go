// Package output writes tables to a stream in the format chosen on the
// command line.
//
// It supports output formats:
//   - text: the table rendered in a ConsoleTable style (default)
//   - json: {"headers": [...], "rows": [[...]]}, pretty-printed
//   - ndjson: one JSON object per row, keyed by column label
//   - yaml: the same document as json, in YAML
//
// # Context-Based Dependency Injection
//
// The format is parsed once in root.go and carried on the context:
//
//	format, err := output.ParseFormat(formatFlag)
//	if err != nil {
//	    return err
//	}
//	ctx := output.WithFormat(cmd.Context(), format)
//	cmd.SetContext(ctx)
//
// In commands:
//
//	printer := output.NewPrinter(os.Stdout, output.FormatFromContext(ctx)).WithStyle(style)
//	return printer.Print(ctx, tbl)
package output
