package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	clierrors "github.com/salmonumbrella/consoletable/internal/errors"
	"github.com/salmonumbrella/consoletable/internal/input"
	"github.com/salmonumbrella/consoletable/internal/ui"
)

func newRenderCmd() *cobra.Command {
	var (
		tf          tableFlags
		inputFormat string
		noHeader    bool
		query       string
		jsonPath    string
	)

	cmd := &cobra.Command{
		Use:     "render [file|-]",
		Aliases: []string{"r", "show"},
		Short:   "Render CSV, TSV, JSON or YAML as a table",
		Long: `Render tabular input as a console table.

Input is read from the file argument, or from stdin when the argument is
"-" or omitted. The format comes from --input-format, then the file
extension, then the input_format config key, then the first bytes.

JSON and YAML documents are tabulated as follows:
  array of objects  one column per key, in first-seen order
  array of arrays   the first array is the header
  object            a key/value table
  scalar            a single "value" column`,
		Example: `  ctab render people.csv
  ctab render -s markdown --count people.csv
  cat events.json | ctab render -q 'map({id, type})' --index
  ctab render --jsonpath '$.items[*]' list.yaml`,
		Args: usageArgs(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			path := "-"
			if len(args) == 1 {
				path = args[0]
			}
			source := input.SourceName(path)

			if source == "stdin" && input.IsInteractive(stdinFromContext(ctx)) {
				return clierrors.NewUserError(
					"no input: stdin is a terminal",
					"Pass a file path or pipe data in, e.g. cat data.csv | ctab render",
				)
			}

			format, err := resolveInputFormat(cmd, inputFormat, path)
			if err != nil {
				return err
			}

			data, err := input.ReadSource(ctx, path)
			if err != nil {
				return err
			}

			tbl, report, err := input.Decode(data, source, input.Options{
				Format:   format,
				NoHeader: noHeader,
				Query:    query,
				JSONPath: jsonPath,
			})
			if err != nil {
				return err
			}
			slog.Debug("decoded input", "source", source, "format", report.Format, "rows", report.Rows, "padded", report.Padded)

			if report.Padded > 0 {
				ui.FromContext(ctx).Warning("%s: padded %d short row(s) with empty cells", source, report.Padded)
			}
			if _, changed := input.NormalizeQuery(query); changed {
				ui.FromContext(ctx).Warning("Normalized --query by removing \\! (shell escape); use ! without backslash.")
			}

			return emitTable(ctx, cmd, &tf, tbl)
		},
	}

	tf.register(cmd)
	cmd.Flags().StringVarP(&inputFormat, "input-format", "f", "", "Input format: auto|csv|tsv|json|yaml")
	cmd.Flags().BoolVar(&noHeader, "no-header", false, "Treat the first CSV/TSV record as data")
	cmd.Flags().StringVarP(&query, "query", "q", "", "jq expression applied to JSON/YAML input")
	cmd.Flags().StringVar(&jsonPath, "jsonpath", "", "JSONPath applied to JSON/YAML input (e.g. $.items[*])")
	flagAlias(cmd.Flags(), "query", "jq")
	flagAlias(cmd.Flags(), "input-format", "if")

	return cmd
}

// resolveInputFormat picks the format: flag, file extension, config, auto.
func resolveInputFormat(cmd *cobra.Command, flagValue, path string) (input.Format, error) {
	if commandFlagChanged(cmd, "input-format") {
		f, err := input.ParseFormat(flagValue)
		if err != nil {
			return "", clierrors.WrapUserError(err, fmt.Sprintf("invalid --input-format %q", flagValue), "Use one of: auto, csv, tsv, json, yaml")
		}
		return f, nil
	}
	if f := input.FormatForPath(path); f != input.FormatAuto {
		return f, nil
	}
	if v := ConfigFromContext(cmd.Context()).InputFormat; v != "" {
		f, err := input.ParseFormat(v)
		if err != nil {
			return "", clierrors.WrapUserError(err, "invalid input_format in config", "Run: ctab config set input_format csv")
		}
		return f, nil
	}
	return input.FormatAuto, nil
}
