package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/salmonumbrella/consoletable/internal/table"
)

func newStylesCmd() *cobra.Command {
	var preview bool

	cmd := &cobra.Command{
		Use:   "styles",
		Short: "List table styles",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := stdoutFromContext(cmd.Context())

			sample := table.New("Name", "Role")
			_ = sample.AddRow("Alice", "admin")
			_ = sample.AddRow("Bob", "viewer")

			for i, style := range table.Styles {
				if !preview {
					_, _ = fmt.Fprintln(out, style)
					continue
				}
				if i > 0 {
					_, _ = fmt.Fprintln(out)
				}
				_, _ = fmt.Fprintf(out, "%s:\n", style)
				if err := sample.Fprint(out, style); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&preview, "preview", false, "Render a sample table in each style")
	return cmd
}
