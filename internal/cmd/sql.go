package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/salmonumbrella/consoletable/internal/sqlsource"
)

func newSQLCmd() *cobra.Command {
	var (
		tf    tableFlags
		limit int
	)

	cmd := &cobra.Command{
		Use:   "sql <db-file> <query> [args...]",
		Short: "Render a SQLite query result as a table",
		Long: `Run a read-only query against a SQLite database file and render the
result set. Column names become the header; NULL renders as an empty cell.
Extra arguments bind to ? placeholders in order.`,
		Example: `  ctab sql app.db 'SELECT id, email FROM users ORDER BY id'
  ctab sql app.db 'SELECT * FROM jobs' --limit 20 --style alternative
  ctab sql app.db 'SELECT * FROM users WHERE team = ?' ops`,
		Args: usageArgs(cobra.MinimumNArgs(2)),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			bind := make([]any, 0, len(args)-2)
			for _, a := range args[2:] {
				bind = append(bind, a)
			}

			tbl, err := sqlsource.Query(ctx, args[0], args[1], sqlsource.Options{Limit: limit, Args: bind})
			if err != nil {
				return err
			}
			slog.Debug("query returned", "db", args[0], "rows", tbl.RowCount())

			return emitTable(ctx, cmd, &tf, tbl)
		},
	}

	tf.register(cmd)
	cmd.Flags().IntVar(&limit, "limit", 0, "Stop after this many rows (0 = no limit)")

	return cmd
}
